package domain

// Action representa um evento nomeado (compra, visualização de vídeo...) retornado pelas
// APIs de insights, com seu valor associado.
type Action struct {
	ActionType string     `json:"action_type"`
	Value      FlexNumber `json:"value"`
}

// RawInsight é uma linha da API de insights para uma entidade (campanha, conjunto ou
// anúncio) em uma data. É imutável e consumida uma única vez pelo extrator.
type RawInsight struct {
	Date         string     `json:"date"`
	AccountID    string     `json:"account_id"`
	CampaignID   string     `json:"campaign_id,omitempty"`
	CampaignName string     `json:"campaign_name,omitempty"`
	AdsetID      string     `json:"adset_id,omitempty"`
	AdsetName    string     `json:"adset_name,omitempty"`
	AdID         string     `json:"ad_id,omitempty"`
	AdName       string     `json:"ad_name,omitempty"`
	Impressions  FlexNumber `json:"impressions"`
	Clicks       FlexNumber `json:"clicks"`
	Spend        FlexNumber `json:"spend"`
	Reach        FlexNumber `json:"reach"`
	Frequency    FlexNumber `json:"frequency"`
	CTR          FlexNumber `json:"ctr"`
	CPC          FlexNumber `json:"cpc"`
	CPM          FlexNumber `json:"cpm"`
	CPP          FlexNumber `json:"cpp"`
	Actions      []Action   `json:"actions"`
	ActionValues []Action   `json:"action_values"`
}

// EntityID retorna o identificador da entidade do nível informado
func (r *RawInsight) EntityID(level InsightLevel) string {
	switch level {
	case InsightLevelAd:
		return r.AdID
	case InsightLevelAdset:
		return r.AdsetID
	default:
		return r.CampaignID
	}
}

// EntityName retorna o nome da entidade do nível informado
func (r *RawInsight) EntityName(level InsightLevel) string {
	switch level {
	case InsightLevelAd:
		return r.AdName
	case InsightLevelAdset:
		return r.AdsetName
	default:
		return r.CampaignName
	}
}
