package middleware

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/PMS-ReservationService/internal/api/handlers"
)

type ctxKey string

const (
	organizationIDKey  ctxKey = "organizationID"
	administratorIDKey ctxKey = "administratorID"
)

// Authenticator проверяет учетные данные и возвращает ID субъекта
type Authenticator interface {
	AuthenticateOrganization(ctx context.Context, email, password string) (int64, error)
	AuthenticateAdministrator(ctx context.Context, email, password string) (int64, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}

const msgUnauthorized = "authentication required"

// OrgAuth Basic-auth для кабинета организации.
// Идентичность проверяется на каждый запрос, серверных сессий нет.
func OrgAuth(auth Authenticator, logger Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			email, password, ok := r.BasicAuth()
			if !ok {
				w.Header().Set("WWW-Authenticate", `Basic realm="organization"`)
				handlers.RespondUnauthorized(w, msgUnauthorized)
				return
			}

			orgID, err := auth.AuthenticateOrganization(r.Context(), email, password)
			if err != nil {
				logger.Warn("%s %s - org auth failed for %s: %v", r.Method, r.URL.Path, email, err)
				w.Header().Set("WWW-Authenticate", `Basic realm="organization"`)
				handlers.RespondUnauthorized(w, msgUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), organizationIDKey, orgID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AdminAuth Basic-auth для административных операций
func AdminAuth(auth Authenticator, logger Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			email, password, ok := r.BasicAuth()
			if !ok {
				w.Header().Set("WWW-Authenticate", `Basic realm="admin"`)
				handlers.RespondUnauthorized(w, msgUnauthorized)
				return
			}

			adminID, err := auth.AuthenticateAdministrator(r.Context(), email, password)
			if err != nil {
				logger.Warn("%s %s - admin auth failed for %s: %v", r.Method, r.URL.Path, email, err)
				w.Header().Set("WWW-Authenticate", `Basic realm="admin"`)
				handlers.RespondUnauthorized(w, msgUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), administratorIDKey, adminID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetOrganizationID достает ID аутентифицированной организации из контекста
func GetOrganizationID(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(organizationIDKey).(int64)
	return id, ok
}

// GetAdministratorID достает ID аутентифицированного администратора из контекста
func GetAdministratorID(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(administratorIDKey).(int64)
	return id, ok
}
