package domain

import (
	"time"
)

type InsightFilters struct {
	StartDate *time.Time
	EndDate   *time.Time
	Level     InsightLevel
}

// AdAccountInsightsResponse é a resposta da API de insights de uma conta
type AdAccountInsightsResponse struct {
	AccountID string            `json:"account_id"`
	Platform  Platform          `json:"platform"`
	Level     InsightLevel      `json:"level"`
	StartDate string            `json:"start_date"`
	EndDate   string            `json:"end_date"`
	Totals    AggregatedMetrics `json:"totals"`
	Entities  []*EntityInsight  `json:"entities"`
}

// DailyInsightsResponse é a resposta da série diária de uma conta
type DailyInsightsResponse struct {
	AccountID string          `json:"account_id"`
	Level     InsightLevel    `json:"level"`
	StartDate string          `json:"start_date"`
	EndDate   string          `json:"end_date"`
	Series    []*DailyInsight `json:"series"`
}
