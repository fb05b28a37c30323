package domain

// DataGap é um intervalo fechado de datas consecutivas sem dados sincronizados
type DataGap struct {
	DateFrom string `json:"date_from"`
	DateTo   string `json:"date_to"`
	Days     int    `json:"days"`
}

// GapDetectionResult resume uma execução da detecção de lacunas.
// DaysWithData + DaysMissing nunca passa de TotalDaysInPeriod: o dia de hoje não conta
// como faltante porque pode estar parcialmente sincronizado.
type GapDetectionResult struct {
	TotalDaysInPeriod int       `json:"total_days_in_period"`
	DaysWithData      int       `json:"days_with_data"`
	DaysMissing       int       `json:"days_missing"`
	Gaps              []DataGap `json:"gaps"`
	CoveragePercent   int       `json:"coverage_percent"`
}

// GapReport é a resposta da API de lacunas
type GapReport struct {
	AccountID      string              `json:"account_id"`
	StartDate      string              `json:"start_date"`
	EndDate        string              `json:"end_date"`
	Result         *GapDetectionResult `json:"result"`
	Summary        string              `json:"summary"`
	DaysToBackfill int                 `json:"days_to_backfill"`
}
