package domain

// ExtractedMetrics é o registro plano derivado de um RawInsight. As taxas (ctr, cpc,
// cpm, cpp) são as informadas pela plataforma, nunca recalculadas.
type ExtractedMetrics struct {
	Impressions     int64    `json:"impressions"`
	Clicks          int64    `json:"clicks"`
	Spend           float64  `json:"spend"`
	Reach           int64    `json:"reach"`
	Frequency       float64  `json:"frequency"`
	CTR             float64  `json:"ctr"`
	CPC             float64  `json:"cpc"`
	CPM             float64  `json:"cpm"`
	CPP             float64  `json:"cpp"`
	Conversions     float64  `json:"conversions"`
	ConversionValue float64  `json:"conversion_value"`
	VideoViews      float64  `json:"video_views"`
	ROAS            float64  `json:"roas"`
	CostPerResult   float64  `json:"cost_per_result"`
	Actions         []Action `json:"actions"`
	ActionValues    []Action `json:"action_values"`
}

// AggregatedMetrics é o resultado da agregação de várias linhas de métricas
type AggregatedMetrics struct {
	Impressions     int64   `json:"impressions"`
	Clicks          int64   `json:"clicks"`
	Spend           float64 `json:"spend"`
	Reach           int64   `json:"reach"`
	Frequency       float64 `json:"frequency"`
	CTR             float64 `json:"ctr"`
	CPC             float64 `json:"cpc"`
	CPM             float64 `json:"cpm"`
	Conversions     float64 `json:"conversions"`
	ConversionValue float64 `json:"conversion_value"`
	VideoViews      float64 `json:"video_views"`
	ROAS            float64 `json:"roas"`
	CostPerResult   float64 `json:"cost_per_result"`
	Days            int     `json:"days"`
}
