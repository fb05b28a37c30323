package metadomain

type Business struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type AdAccount struct {
	ID            string `json:"id"`
	AccountID     string `json:"account_id"`
	Name          string `json:"name"`
	Currency      string `json:"currency"`
	AccountStatus int    `json:"account_status"`
}

// Status 1 é ACTIVE na Graph API; os demais (desabilitada, em análise, encerrada...) não sincronizam
func (a *AdAccount) IsActive() bool {
	return a.AccountStatus == 1
}
