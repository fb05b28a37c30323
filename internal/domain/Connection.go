package domain

import "time"

// PlatformConnection guarda as credenciais OAuth de uma plataforma de anúncios.
// Os tokens ficam em texto puro apenas em memória; o repositório os cifra.
type PlatformConnection struct {
	ID           string    `json:"id"`
	Platform     Platform  `json:"platform"`
	AccessToken  string    `json:"-"`
	RefreshToken string    `json:"-"`
	TokenType    string    `json:"token_type"`
	ExpiresAt    time.Time `json:"expires_at"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ExpiresWithin indica se o token expira dentro da janela informada
func (c *PlatformConnection) ExpiresWithin(d time.Duration, now time.Time) bool {
	if c.ExpiresAt.IsZero() {
		return false
	}
	return c.ExpiresAt.Sub(now) < d
}
