package handler

import (
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/ads-insights-api/internal/domain"
	"github.com/vfg2006/ads-insights-api/internal/usecases/account"
	"github.com/vfg2006/ads-insights-api/internal/usecases/authenticating"
	"github.com/vfg2006/ads-insights-api/internal/usecases/connecting"
	"github.com/vfg2006/ads-insights-api/internal/usecases/insighting"
	"github.com/vfg2006/ads-insights-api/internal/usecases/syncing"
	"github.com/vfg2006/ads-insights-api/pkg/apiErrors"
	"github.com/vfg2006/ads-insights-api/pkg/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Período padrão das consultas quando start_date e end_date não são informados
const defaultPeriodDays = 30

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		logrus.WithError(err).Error("Erro ao codificar resposta")
	}
}

// writeServiceError converte os erros tipados dos casos de uso no erro padronizado da API
func writeServiceError(w http.ResponseWriter, err error, fallback string) {
	var (
		accountErr *account.AccountError
		syncErr    *syncing.SyncError
		insightErr *insighting.InsightError
		connErr    *connecting.ConnectionError
		authErr    *authenticating.AuthError
	)

	switch {
	case errors.As(err, &accountErr):
		apiErrors.WriteError(w, accountErr.Code, accountErr.Error(), nil)
	case errors.As(err, &syncErr):
		apiErrors.WriteError(w, syncErr.Code, syncErr.Error(), map[string]any{"account_id": syncErr.AccountID})
	case errors.As(err, &insightErr):
		apiErrors.WriteError(w, insightErr.Code, insightErr.Error(), map[string]any{"account_id": insightErr.AccountID})
	case errors.As(err, &connErr):
		apiErrors.WriteError(w, connErr.Code, connErr.Error(), map[string]any{"platform": connErr.Platform})
	case errors.As(err, &authErr):
		apiErrors.WriteError(w, authErr.Code, authErr.Error(), nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallback, nil)
	}
}

func claimsFromRequest(r *http.Request) (*domain.Claims, bool) {
	claims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
	return claims, ok
}

// parsePeriod lê start_date e end_date (YYYY-MM-DD). Sem datas, usa os últimos 30 dias até ontem.
func parsePeriod(r *http.Request, now time.Time) (time.Time, time.Time, error) {
	query := r.URL.Query()

	end := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, -1)
	if value := query.Get("end_date"); value != "" {
		parsed, err := time.Parse(time.DateOnly, value)
		if err != nil {
			return time.Time{}, time.Time{}, errors.Wrap(err, "end_date inválido")
		}
		end = parsed
	}

	start := end.AddDate(0, 0, -(defaultPeriodDays - 1))
	if value := query.Get("start_date"); value != "" {
		parsed, err := time.Parse(time.DateOnly, value)
		if err != nil {
			return time.Time{}, time.Time{}, errors.Wrap(err, "start_date inválido")
		}
		start = parsed
	}

	if start.After(end) {
		return time.Time{}, time.Time{}, errors.New("start_date posterior a end_date")
	}

	return start, end, nil
}
