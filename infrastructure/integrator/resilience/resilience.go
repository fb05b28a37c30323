// Package resilience reúne o controle de vazão, o circuit breaker e a classificação de
// erros compartilhados pelos clientes das plataformas de anúncios.
package resilience

import (
	"context"
	"errors"
	"net"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker/v2"
	"golang.org/x/oauth2"
	"golang.org/x/time/rate"
)

// Vazão usada quando a configuração não informa requisições por minuto
const defaultRequestsPerMinute = 60

// RetryableError é implementado pelos erros de API das plataformas
type RetryableError interface {
	error
	Retryable() bool
}

// NewLimiter cria um token bucket com a vazão por minuto configurada
func NewLimiter(requestsPerMinute int) *rate.Limiter {
	if requestsPerMinute <= 0 {
		requestsPerMinute = defaultRequestsPerMinute
	}

	burst := max(1, requestsPerMinute/4)

	return rate.NewLimiter(rate.Every(time.Minute/time.Duration(requestsPerMinute)), burst)
}

// NewBreaker abre o circuito após 5 falhas consecutivas e tenta de novo após 30s.
// Respostas de erro definitivas (4xx) não contam como falha.
func NewBreaker(name string) *gobreaker.CircuitBreaker[[]byte] {
	return gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		IsSuccessful: func(err error) bool {
			if err == nil || errors.Is(err, context.Canceled) {
				return true
			}
			var apiErr RetryableError
			if errors.As(err, &apiErr) {
				return !apiErr.Retryable()
			}
			return false
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logrus.WithFields(logrus.Fields{
				"breaker": name,
				"from":    from.String(),
				"to":      to.String(),
			}).Warn("integrator: circuit breaker mudou de estado")
		},
	})
}

// IsRetryable indica se uma falha de chamada à plataforma vale nova tentativa:
// erros de API transitórios, circuito aberto e falhas de rede.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var apiErr RetryableError
	if errors.As(err, &apiErr) {
		return apiErr.Retryable()
	}

	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return true
	}

	// refresh token revogado ou inválido exige nova autorização
	var retrieveErr *oauth2.RetrieveError
	if errors.As(err, &retrieveErr) {
		return false
	}

	var netErr net.Error
	return errors.As(err, &netErr)
}
