package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/julienschmidt/httprouter"

	"github.com/vfg2006/ads-insights-api/internal/usecases/syncing"
	"github.com/vfg2006/ads-insights-api/pkg/apiErrors"
	"github.com/vfg2006/ads-insights-api/pkg/log"
)

func accountPeriod(w http.ResponseWriter, r *http.Request) (string, time.Time, time.Time, bool) {
	accountID := httprouter.ParamsFromContext(r.Context()).ByName("id")
	if accountID == "" {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da conta é obrigatório", nil)
		return "", time.Time{}, time.Time{}, false
	}

	from, to, err := parsePeriod(r, time.Now())
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidPeriod, err.Error(), nil)
		return "", time.Time{}, time.Time{}, false
	}

	return accountID, from, to, true
}

// SyncAccountInsights sincroniza a conta no período de forma síncrona e devolve o job
func SyncAccountInsights(service syncing.SyncService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accountID, from, to, ok := accountPeriod(w, r)
		if !ok {
			return
		}

		job, err := service.SyncAccount(r.Context(), accountID, from, to)
		if err != nil {
			log.ForContext(r.Context()).WithField("account_id", accountID).WithError(err).Error("Erro ao sincronizar insights da conta")
			if job != nil {
				// o job falho também é informado ao cliente
				writeJSON(w, http.StatusBadGateway, job)
				return
			}
			writeServiceError(w, err, "Erro ao sincronizar insights")
			return
		}

		writeJSON(w, http.StatusOK, job)
	}
}

func BackfillGaps(service syncing.SyncService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accountID, from, to, ok := accountPeriod(w, r)
		if !ok {
			return
		}

		result, err := service.BackfillGaps(r.Context(), accountID, from, to)
		if err != nil {
			log.ForContext(r.Context()).WithField("account_id", accountID).WithError(err).Error("Erro ao preencher lacunas")
			writeServiceError(w, err, "Erro ao preencher lacunas")
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}

func ListSyncJobs(service syncing.SyncService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accountID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		limit := 0
		if value := r.URL.Query().Get("limit"); value != "" {
			parsed, err := strconv.Atoi(value)
			if err != nil || parsed < 0 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "limit inválido", nil)
				return
			}
			limit = parsed
		}

		jobs, err := service.ListJobs(r.Context(), accountID, limit)
		if err != nil {
			writeServiceError(w, err, "Erro ao listar jobs de sincronização")
			return
		}

		writeJSON(w, http.StatusOK, jobs)
	}
}
