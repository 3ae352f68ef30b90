package middleware

import (
	"fmt"
	"net/http"

	"github.com/peoplehub/hrms-backend-go/internal/domain/user"
	"github.com/peoplehub/hrms-backend-go/internal/handler/http/response"
	"github.com/peoplehub/hrms-backend-go/internal/pkg/tenantctx"
)

// RequirePermission checks the static role table before the handler runs.
// Services re-check permissions themselves; this just fails fast.
func RequirePermission(permission user.Permission) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			actor, err := tenantctx.ActorFromContext(r.Context())
			if err != nil {
				response.HandleError(w, err)
				return
			}

			if !user.HasPermission(actor.Role, permission) {
				response.Forbidden(w, fmt.Sprintf("Insufficient permissions: required '%s'", permission))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// SuperAdminOnly guards the platform plane.
func SuperAdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor, err := tenantctx.ActorFromContext(r.Context())
		if err != nil {
			response.HandleError(w, err)
			return
		}

		if !actor.IsSuperAdmin() {
			response.HandleError(w, user.ErrInsufficientPermissions)
			return
		}

		next.ServeHTTP(w, r)
	})
}
