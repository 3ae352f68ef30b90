package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peoplehub/hrms-backend-go/internal/domain/user"
	"github.com/peoplehub/hrms-backend-go/internal/pkg/jwt"
	"github.com/peoplehub/hrms-backend-go/internal/pkg/tenantctx"
)

func protectedChain(jwtService jwt.Service, extra ...func(http.Handler) http.Handler) http.Handler {
	var final http.Handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor, err := tenantctx.ActorFromContext(r.Context())
		if err != nil {
			w.WriteHeader(http.StatusTeapot)
			return
		}
		w.Header().Set("X-Actor", actor.UserID)
		w.Header().Set("X-Tenant", actor.TenantID)
		w.WriteHeader(http.StatusOK)
	})
	for i := len(extra) - 1; i >= 0; i-- {
		final = extra[i](final)
	}
	final = AuthRequired(jwtService.JWTAuth())(final)
	return jwtauth.Verifier(jwtService.JWTAuth())(final)
}

func TestAuthRequired_PopulatesActor(t *testing.T) {
	jwtService := jwt.NewJWTService("test-secret-key-for-jwt", "1h", "24h")
	tenantID := "tenant-1"
	token, _, err := jwtService.GenerateAccessToken("user-1", "a@b.cd", nil, &tenantID, user.RoleAdmin)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	protectedChain(jwtService).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user-1", rec.Header().Get("X-Actor"))
	assert.Equal(t, "tenant-1", rec.Header().Get("X-Tenant"))
}

func TestAuthRequired_RejectsMissingToken(t *testing.T) {
	jwtService := jwt.NewJWTService("test-secret-key-for-jwt", "1h", "24h")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	protectedChain(jwtService).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthRequired_RejectsRefreshToken(t *testing.T) {
	jwtService := jwt.NewJWTService("test-secret-key-for-jwt", "1h", "24h")
	token, _, err := jwtService.GenerateRefreshToken("user-1", user.RoleAdmin)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	protectedChain(jwtService).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireTenant_BlocksSuperAdminWithoutHeader(t *testing.T) {
	jwtService := jwt.NewJWTService("test-secret-key-for-jwt", "1h", "24h")
	token, _, err := jwtService.GenerateAccessToken("admin-1", "ops@example.com", nil, nil, user.RoleSuperAdmin)
	require.NoError(t, err)

	chain := protectedChain(jwtService, RequireTenant)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	chain.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// With an explicit tenant header the request goes through.
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("X-Tenant-ID", "tenant-9")
	rec = httptest.NewRecorder()
	chain.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "tenant-9", rec.Header().Get("X-Tenant"))
}

func TestRequireTenant_IgnoresHeaderForRegularUsers(t *testing.T) {
	jwtService := jwt.NewJWTService("test-secret-key-for-jwt", "1h", "24h")
	tenantID := "tenant-1"
	token, _, err := jwtService.GenerateAccessToken("user-1", "a@b.cd", nil, &tenantID, user.RoleEmployee)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("X-Tenant-ID", "tenant-2")
	rec := httptest.NewRecorder()

	protectedChain(jwtService, RequireTenant).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "tenant-1", rec.Header().Get("X-Tenant"))
}

func TestRequirePermission(t *testing.T) {
	jwtService := jwt.NewJWTService("test-secret-key-for-jwt", "1h", "24h")
	tenantID := "tenant-1"

	employeeToken, _, err := jwtService.GenerateAccessToken("user-emp", "e@b.cd", nil, &tenantID, user.RoleEmployee)
	require.NoError(t, err)
	hrToken, _, err := jwtService.GenerateAccessToken("user-hr", "hr@b.cd", nil, &tenantID, user.RoleHRManager)
	require.NoError(t, err)

	chain := protectedChain(jwtService, RequirePermission(user.PermissionGeneratePayroll))

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set("Authorization", "Bearer "+employeeToken)
	rec := httptest.NewRecorder()
	chain.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	req = httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set("Authorization", "Bearer "+hrToken)
	rec = httptest.NewRecorder()
	chain.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSuperAdminOnly(t *testing.T) {
	jwtService := jwt.NewJWTService("test-secret-key-for-jwt", "1h", "24h")
	tenantID := "tenant-1"

	adminToken, _, err := jwtService.GenerateAccessToken("user-admin", "a@b.cd", nil, &tenantID, user.RoleAdmin)
	require.NoError(t, err)
	superToken, _, err := jwtService.GenerateAccessToken("ops-1", "ops@example.com", nil, nil, user.RoleSuperAdmin)
	require.NoError(t, err)

	chain := protectedChain(jwtService, SuperAdminOnly)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	rec := httptest.NewRecorder()
	chain.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+superToken)
	rec = httptest.NewRecorder()
	chain.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
