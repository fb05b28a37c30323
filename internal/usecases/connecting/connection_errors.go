package connecting

import (
	"errors"
	"fmt"
)

var (
	ErrPlatformNotSupported = errors.New("plataforma sem login OAuth configurado")
	ErrInvalidState         = errors.New("parâmetro state inválido ou expirado")
	ErrMissingCode          = errors.New("código de autorização ausente")
	ErrExchangeCode         = errors.New("erro ao trocar o código de autorização")
	ErrSaveConnection       = errors.New("erro ao salvar a conexão da plataforma")
)

// ConnectionError carrega o código de erro da API e a plataforma envolvida
type ConnectionError struct {
	Err      error
	Code     string
	Platform string
	Details  string
}

func (e *ConnectionError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

func NewConnectionError(err error, code string, platform string, details string) *ConnectionError {
	return &ConnectionError{
		Err:      err,
		Code:     code,
		Platform: platform,
		Details:  details,
	}
}
