package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/peoplehub/hrms-backend-go/internal/domain/auth"
	"github.com/peoplehub/hrms-backend-go/internal/domain/user"
	"github.com/peoplehub/hrms-backend-go/internal/handler/http/response"
	"github.com/peoplehub/hrms-backend-go/internal/pkg/tenantctx"
)

// AuthRequired verifies the access token parsed by jwtauth.Verifier and
// places the authenticated actor into the request context. Refresh tokens
// are rejected here so they can never be used against protected endpoints.
func AuthRequired(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, claims, err := jwtauth.FromContext(r.Context())
			if err != nil {
				response.Unauthorized(w, err.Error())
				return
			}

			if token == nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			tokenType, ok := claims["type"].(string)
			if !ok || tokenType != "access" {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			userID, ok := claims["user_id"].(string)
			if !ok || userID == "" {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			roleStr, ok := claims["role"].(string)
			if !ok || roleStr == "" {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			actor := tenantctx.Actor{
				UserID: userID,
				Role:   user.Role(roleStr),
			}
			if email, ok := claims["email"].(string); ok {
				actor.Email = email
			}
			if employeeID, ok := claims["employee_id"].(string); ok && employeeID != "" {
				actor.EmployeeID = &employeeID
			}
			if tenantID, ok := claims["tenant_id"].(string); ok {
				actor.TenantID = tenantID
			}

			ctx := tenantctx.WithActor(r.Context(), actor)
			next.ServeHTTP(w, r.WithContext(ctx))
		}
		return http.HandlerFunc(hfn)
	}
}
