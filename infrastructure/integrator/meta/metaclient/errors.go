package metaclient

import (
	"errors"
	"fmt"
	"net/http"

	metadomain "github.com/vfg2006/ads-insights-api/infrastructure/integrator/meta/domain"
)

var (
	// ErrTokenRenewed indica que o token expirou e foi renovado; a chamada pode ser repetida
	ErrTokenRenewed = errors.New("metaclient: token expirado e renovado, por favor tente novamente")

	// ErrReauthorizationRequired indica que o token não pode mais ser renovado automaticamente
	ErrReauthorizationRequired = errors.New("metaclient: token expirado, é necessário reautorizar o aplicativo")

	// ErrNotConnected indica que nenhuma conexão com o Meta foi configurada
	ErrNotConnected = errors.New("metaclient: nenhuma conexão com o Meta configurada")
)

// APIError é uma resposta de erro da Graph API
type APIError struct {
	StatusCode int
	Response   *metadomain.ErrorResponse
	Body       string
}

func (e *APIError) Error() string {
	if e.Response != nil {
		return fmt.Sprintf("metaclient: erro na resposta da API. Status: %d, Código: %d, Mensagem: %s",
			e.StatusCode, e.Response.Error.Code, e.Response.Error.Message)
	}
	return fmt.Sprintf("metaclient: erro na resposta da API. Status: %d, Corpo: %s", e.StatusCode, e.Body)
}

func (e *APIError) IsTokenExpired() bool {
	return e.Response != nil && e.Response.IsTokenExpired()
}

// Retryable indica se vale a pena repetir a requisição
func (e *APIError) Retryable() bool {
	if e.StatusCode >= http.StatusInternalServerError || e.StatusCode == http.StatusTooManyRequests {
		return true
	}
	return e.Response != nil && e.Response.IsRateLimited()
}
