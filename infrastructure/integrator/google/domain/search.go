package googledomain

import "github.com/vfg2006/ads-insights-api/internal/domain"

// SearchStreamBatch é um dos lotes retornados por googleAds:searchStream
type SearchStreamBatch struct {
	Results   []Row  `json:"results"`
	FieldMask string `json:"fieldMask"`
	RequestID string `json:"requestId"`
}

// Row é uma linha GAQL. Só os recursos selecionados vêm preenchidos.
type Row struct {
	Customer  *Customer  `json:"customer,omitempty"`
	Campaign  *Campaign  `json:"campaign,omitempty"`
	AdGroup   *AdGroup   `json:"adGroup,omitempty"`
	AdGroupAd *AdGroupAd `json:"adGroupAd,omitempty"`
	Metrics   *Metrics   `json:"metrics,omitempty"`
	Segments  *Segments  `json:"segments,omitempty"`
}

type Customer struct {
	ID              string `json:"id"`
	DescriptiveName string `json:"descriptiveName"`
	CurrencyCode    string `json:"currencyCode"`
	Status          string `json:"status"`
	Manager         bool   `json:"manager"`
}

func (c *Customer) IsEnabled() bool {
	return c.Status == "ENABLED"
}

type Campaign struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type AdGroup struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Ad struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type AdGroupAd struct {
	Ad Ad `json:"ad"`
}

// Metrics usa FlexNumber porque a API envia int64 como string e double como número.
// Valores monetários vêm em micros.
type Metrics struct {
	Impressions      domain.FlexNumber `json:"impressions"`
	Clicks           domain.FlexNumber `json:"clicks"`
	CostMicros       domain.FlexNumber `json:"costMicros"`
	Ctr              domain.FlexNumber `json:"ctr"`
	AverageCpc       domain.FlexNumber `json:"averageCpc"`
	AverageCpm       domain.FlexNumber `json:"averageCpm"`
	Conversions      domain.FlexNumber `json:"conversions"`
	ConversionsValue domain.FlexNumber `json:"conversionsValue"`
	VideoViews       domain.FlexNumber `json:"videoViews"`
}

type Segments struct {
	Date string `json:"date"`
}

// ListAccessibleCustomersResponse traz nomes no formato customers/{id}
type ListAccessibleCustomersResponse struct {
	ResourceNames []string `json:"resourceNames"`
}
