package middleware

import (
	"net/http"
	"slices"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/ads-insights-api/internal/domain"
	"github.com/vfg2006/ads-insights-api/pkg/apiErrors"
)

const (
	RoleAdmin      = 1
	RoleSupervisor = 2
	RoleClient     = 3
)

// RequireRoles libera a rota apenas para os perfis informados.
// Depende das claims gravadas por AuthMiddleware.
func RequireRoles(allowedRoles ...int) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userClaims, ok := r.Context().Value(ContextKeyUser).(*domain.Claims)
			if !ok {
				logrus.WithField("path", r.URL.Path).Warn("Tentativa de acesso sem autenticação")
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
				return
			}

			if !slices.Contains(allowedRoles, userClaims.UserRoleID) {
				logrus.WithFields(logrus.Fields{
					"user_id": userClaims.UserID,
					"role_id": userClaims.UserRoleID,
					"path":    r.URL.Path,
				}).Warn("Acesso negado")
				apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem permissão para acessar este recurso", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// AdminOnly protege operações de configuração, como conectar plataformas
func AdminOnly() func(http.Handler) http.Handler {
	return RequireRoles(RoleAdmin)
}

// AdminOrSupervisor protege as operações que disparam chamadas às plataformas
func AdminOrSupervisor() func(http.Handler) http.Handler {
	return RequireRoles(RoleAdmin, RoleSupervisor)
}

func AllRoles() func(http.Handler) http.Handler {
	return RequireRoles(RoleAdmin, RoleSupervisor, RoleClient)
}
