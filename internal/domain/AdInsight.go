package domain

import (
	"time"
)

// AdInsightEntry representa uma linha de insights armazenada no banco:
// uma entidade (campanha, conjunto ou anúncio) em uma data
type AdInsightEntry struct {
	ID         int64            `json:"id"`
	AccountID  string           `json:"account_id"`
	Platform   Platform         `json:"platform"`
	Level      InsightLevel     `json:"level"`
	EntityID   string           `json:"entity_id"`
	EntityName string           `json:"entity_name"`
	CampaignID string           `json:"campaign_id,omitempty"`
	AdsetID    string           `json:"adset_id,omitempty"`
	Date       time.Time        `json:"date"`
	Metrics    ExtractedMetrics `json:"metrics"`
	CreatedAt  time.Time        `json:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at"`
}

// EntityInsight é o agregado de uma entidade no período consultado
type EntityInsight struct {
	EntityID   string            `json:"entity_id"`
	EntityName string            `json:"entity_name"`
	Level      InsightLevel      `json:"level"`
	Metrics    AggregatedMetrics `json:"metrics"`
}

// DailyInsight é um ponto da série diária usada nos gráficos de tendência
type DailyInsight struct {
	Date    string            `json:"date"`
	Metrics AggregatedMetrics `json:"metrics"`
}
