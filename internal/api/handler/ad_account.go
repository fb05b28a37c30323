package handler

import (
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"

	"github.com/vfg2006/ads-insights-api/internal/domain"
	"github.com/vfg2006/ads-insights-api/internal/usecases/account"
	"github.com/vfg2006/ads-insights-api/pkg/apiErrors"
	"github.com/vfg2006/ads-insights-api/pkg/log"
)

func AdAccountList(service account.AccountService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		availableStatus := make([]domain.AdAccountStatus, 0)
		if filterStatus := r.URL.Query().Get("status"); filterStatus != "" {
			for _, status := range strings.Split(filterStatus, ",") {
				availableStatus = append(availableStatus, domain.AdAccountStatus(strings.ToUpper(strings.TrimSpace(status))))
			}
		}

		adAccounts, err := service.ListAdAccounts(r.Context(), availableStatus)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao listar contas")
			writeServiceError(w, err, "Erro ao listar contas")
			return
		}

		writeJSON(w, http.StatusOK, adAccounts)
	})
}

func SyncAccounts(service account.AccountService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp, err := service.SyncAccounts(r.Context())
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao sincronizar contas")
			writeServiceError(w, err, "Erro ao sincronizar contas")
			return
		}

		writeJSON(w, http.StatusOK, resp)
	})
}

func UpdateAdAccount(service account.AccountService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da conta é obrigatório", nil)
			return
		}

		var updateRequest domain.UpdateAdAccountRequest
		if err := json.NewDecoder(r.Body).Decode(&updateRequest); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		// o ID da URL prevalece sobre o do corpo
		updateRequest.ID = id

		resp, err := service.UpdateAccount(r.Context(), &updateRequest)
		if err != nil {
			log.ForContext(r.Context()).WithFields(log.Fields{
				"account_id": id,
				"error":      err.Error(),
			}).Error("Erro ao atualizar conta")
			writeServiceError(w, err, "Erro interno ao atualizar conta")
			return
		}

		writeJSON(w, http.StatusOK, resp)
	})
}
