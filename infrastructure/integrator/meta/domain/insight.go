package metadomain

import "github.com/vfg2006/ads-insights-api/internal/domain"

// Insight é uma linha de /act_{id}/insights com time_increment=1
type Insight struct {
	DateStart    string            `json:"date_start"`
	DateStop     string            `json:"date_stop"`
	AccountID    string            `json:"account_id"`
	CampaignID   string            `json:"campaign_id"`
	CampaignName string            `json:"campaign_name"`
	AdsetID      string            `json:"adset_id"`
	AdsetName    string            `json:"adset_name"`
	AdID         string            `json:"ad_id"`
	AdName       string            `json:"ad_name"`
	Impressions  domain.FlexNumber `json:"impressions"`
	Clicks       domain.FlexNumber `json:"clicks"`
	Spend        domain.FlexNumber `json:"spend"`
	Reach        domain.FlexNumber `json:"reach"`
	Frequency    domain.FlexNumber `json:"frequency"`
	CTR          domain.FlexNumber `json:"ctr"`
	CPC          domain.FlexNumber `json:"cpc"`
	CPM          domain.FlexNumber `json:"cpm"`
	CPP          domain.FlexNumber `json:"cpp"`
	Actions      []domain.Action   `json:"actions"`
	ActionValues []domain.Action   `json:"action_values"`
}

type Cursors struct {
	Before string `json:"before"`
	After  string `json:"after"`
}

type Paging struct {
	Cursors Cursors `json:"cursors"`
	Next    string  `json:"next"`
}

// Page é o envelope paginado das listagens da Graph API
type Page[T any] struct {
	Data   []T    `json:"data"`
	Paging Paging `json:"paging"`
}
