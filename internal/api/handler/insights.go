package handler

import (
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"

	"github.com/vfg2006/ads-insights-api/internal/domain"
	"github.com/vfg2006/ads-insights-api/internal/usecases/insighting"
	"github.com/vfg2006/ads-insights-api/pkg/apiErrors"
	"github.com/vfg2006/ads-insights-api/pkg/log"
)

type insightQuery struct {
	accountID string
	level     domain.InsightLevel
	from      time.Time
	to        time.Time
}

func parseInsightQuery(w http.ResponseWriter, r *http.Request) (insightQuery, bool) {
	accountID := httprouter.ParamsFromContext(r.Context()).ByName("id")
	if accountID == "" {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da conta é obrigatório", nil)
		return insightQuery{}, false
	}

	level, err := domain.ParseInsightLevel(r.URL.Query().Get("level"))
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
		return insightQuery{}, false
	}

	from, to, err := parsePeriod(r, time.Now())
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidPeriod, err.Error(), nil)
		return insightQuery{}, false
	}

	return insightQuery{accountID: accountID, level: level, from: from, to: to}, true
}

// GetAccountInsights retorna o agregado por entidade e os totais da conta no período
func GetAccountInsights(service insighting.Insighter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q, ok := parseInsightQuery(w, r)
		if !ok {
			return
		}

		response, err := service.GetInsights(r.Context(), q.accountID, q.level, q.from, q.to)
		if err != nil {
			log.ForContext(r.Context()).WithField("account_id", q.accountID).WithError(err).Error("Erro ao buscar insights")
			writeServiceError(w, err, "Erro ao buscar insights")
			return
		}

		writeJSON(w, http.StatusOK, response)
	}
}

// GetDailyInsights retorna a série diária usada nos gráficos
func GetDailyInsights(service insighting.Insighter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q, ok := parseInsightQuery(w, r)
		if !ok {
			return
		}

		response, err := service.GetDailySeries(r.Context(), q.accountID, q.level, q.from, q.to)
		if err != nil {
			log.ForContext(r.Context()).WithField("account_id", q.accountID).WithError(err).Error("Erro ao buscar série diária")
			writeServiceError(w, err, "Erro ao buscar série diária")
			return
		}

		writeJSON(w, http.StatusOK, response)
	}
}

func GetGaps(service insighting.Insighter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q, ok := parseInsightQuery(w, r)
		if !ok {
			return
		}

		report, err := service.GetGaps(r.Context(), q.accountID, q.from, q.to)
		if err != nil {
			log.ForContext(r.Context()).WithField("account_id", q.accountID).WithError(err).Error("Erro ao detectar lacunas")
			writeServiceError(w, err, "Erro ao detectar lacunas")
			return
		}

		writeJSON(w, http.StatusOK, report)
	}
}
