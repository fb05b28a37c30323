package domain

type AdAccountStatus string

const (
	AdAccountStatusActive   AdAccountStatus = "ACTIVE"
	AdAccountStatusInactive AdAccountStatus = "INACTIVE"
)

type AdAccount struct {
	BusinessManagerID   string          `json:"business_id"`
	BusinessManagerName string          `json:"business_name"`
	Currency            string          `json:"currency"`
	ExternalID          string          `json:"external_id"`
	ID                  string          `json:"id"`
	Name                string          `json:"name"`
	Nickname            *string         `json:"nickname"`
	Platform            Platform        `json:"platform"`
	Status              AdAccountStatus `json:"status"`
}

type AdAccountResponse struct {
	ExternalID string          `json:"external_id"`
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Nickname   *string         `json:"nickname"`
	Platform   Platform        `json:"platform"`
	Status     AdAccountStatus `json:"status"`
}

type UpdateAdAccountRequest struct {
	ID       string  `json:"id"`
	Nickname *string `json:"nickname,omitempty"`
	Status   *string `json:"status,omitempty"`
}

type UpdateAdAccountResponse struct {
	ID       string  `json:"id"`
	Nickname *string `json:"nickname,omitempty"`
	Status   *string `json:"status,omitempty"`
}

type SyncAccountsResponse struct {
	Quantity int    `json:"quantity"`
	Message  string `json:"message"`
	Error    bool   `json:"error"`
}
