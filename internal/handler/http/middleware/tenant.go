package middleware

import (
	"net/http"

	"github.com/peoplehub/hrms-backend-go/internal/handler/http/response"
	"github.com/peoplehub/hrms-backend-go/internal/pkg/tenantctx"
)

// RequireTenant guards tenant-scoped routes. Regular users always carry
// their tenant in the token. A super admin may act inside a tenant by
// sending X-Tenant-ID; without it the request is rejected rather than
// falling through to an unscoped query.
func RequireTenant(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor, err := tenantctx.ActorFromContext(r.Context())
		if err != nil {
			response.HandleError(w, err)
			return
		}

		if actor.TenantID == "" && actor.IsSuperAdmin() {
			if tenantID := r.Header.Get("X-Tenant-ID"); tenantID != "" {
				actor.TenantID = tenantID
				ctx := tenantctx.WithActor(r.Context(), actor)
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}
		}

		if actor.TenantID == "" {
			response.HandleError(w, tenantctx.ErrNoTenant)
			return
		}

		next.ServeHTTP(w, r)
	})
}
