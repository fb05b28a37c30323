package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/vfg2006/ads-insights-api/internal/domain"
	"github.com/vfg2006/ads-insights-api/internal/usecases/connecting"
	"github.com/vfg2006/ads-insights-api/pkg/apiErrors"
	"github.com/vfg2006/ads-insights-api/pkg/log"
)

func platformParam(w http.ResponseWriter, r *http.Request) (domain.Platform, bool) {
	platform, err := domain.ParsePlatform(httprouter.ParamsFromContext(r.Context()).ByName("platform"))
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
		return "", false
	}
	return platform, true
}

// AuthorizePlatform devolve a URL de consentimento OAuth da plataforma
func AuthorizePlatform(service connecting.Connector) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		platform, ok := platformParam(w, r)
		if !ok {
			return
		}

		authURL, err := service.AuthorizeURL(r.Context(), platform)
		if err != nil {
			log.ForContext(r.Context()).WithField("platform", platform).WithError(err).Error("Erro ao gerar URL de autorização")
			writeServiceError(w, err, "Erro ao gerar URL de autorização")
			return
		}

		writeJSON(w, http.StatusOK, map[string]string{
			"authorize_url": authURL,
		})
	}
}

// PlatformCallback recebe o redirecionamento da plataforma após o consentimento
func PlatformCallback(service connecting.Connector) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		platform, ok := platformParam(w, r)
		if !ok {
			return
		}

		query := r.URL.Query()
		if reason := query.Get("error"); reason != "" {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Autorização negada: "+reason, nil)
			return
		}

		connection, err := service.HandleCallback(r.Context(), platform, query.Get("state"), query.Get("code"))
		if err != nil {
			log.ForContext(r.Context()).WithField("platform", platform).WithError(err).Error("Erro ao concluir conexão da plataforma")
			writeServiceError(w, err, "Erro ao concluir conexão da plataforma")
			return
		}

		writeJSON(w, http.StatusOK, connection)
	}
}
