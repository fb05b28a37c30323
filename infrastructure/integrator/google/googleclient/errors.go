package googleclient

import (
	"errors"
	"fmt"
	"net/http"

	googledomain "github.com/vfg2006/ads-insights-api/infrastructure/integrator/google/domain"
)

// ErrNotConnected indica que o fluxo OAuth do Google ainda não foi concluído
var ErrNotConnected = errors.New("googleclient: nenhuma conexão com o Google Ads configurada")

// APIError é uma resposta de erro da API do Google Ads
type APIError struct {
	StatusCode int
	Response   *googledomain.ErrorResponse
	Body       string
}

func (e *APIError) Error() string {
	if e.Response != nil {
		return fmt.Sprintf("googleclient: erro na resposta da API. Status: %d (%s), Mensagem: %s",
			e.StatusCode, e.Response.Error.Status, e.Response.Error.Message)
	}
	return fmt.Sprintf("googleclient: erro na resposta da API. Status: %d, Corpo: %s", e.StatusCode, e.Body)
}

func (e *APIError) Retryable() bool {
	if e.StatusCode >= http.StatusInternalServerError || e.StatusCode == http.StatusTooManyRequests {
		return true
	}
	return e.Response != nil && (e.Response.IsRateLimited() || e.Response.IsUnavailable())
}

// parseErrorResponse aceita o objeto de erro puro e o formato em lista usado pelo searchStream
func parseErrorResponse(body []byte) *googledomain.ErrorResponse {
	var single googledomain.ErrorResponse
	if err := json.Unmarshal(body, &single); err == nil && single.Error.Code != 0 {
		return &single
	}

	var list []googledomain.ErrorResponse
	if err := json.Unmarshal(body, &list); err == nil && len(list) > 0 && list[0].Error.Code != 0 {
		return &list[0]
	}

	return nil
}
