package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/vfg2006/ads-insights-api/pkg/apiErrors"
)

const (
	CronJobTypeInsights = "insights"
	CronJobTypeAll      = "all"
)

// ManualTrigger é um agendamento que pode ser disparado fora do horário
type ManualTrigger interface {
	TriggerManualSync() bool
	GetStatus() map[string]any
}

// CronJobServices reúne os agendamentos expostos pela API
type CronJobServices struct {
	InsightSyncService ManualTrigger
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")

		switch cronType {
		case CronJobTypeInsights, CronJobTypeAll:
			if services.InsightSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de sincronização de insights não disponível", nil)
				return
			}

			if !services.InsightSyncService.TriggerManualSync() {
				apiErrors.WriteError(w, apiErrors.ErrSyncInProgress, "Sincronização de insights já em andamento", nil)
				return
			}
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: insights, all", nil)
			return
		}

		writeJSON(w, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		if services.InsightSyncService != nil {
			status[CronJobTypeInsights] = services.InsightSyncService.GetStatus()
		}

		writeJSON(w, http.StatusOK, status)
	}
}
