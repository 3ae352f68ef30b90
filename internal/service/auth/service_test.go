package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/peoplehub/hrms-backend-go/internal/config"
	"github.com/peoplehub/hrms-backend-go/internal/domain/auth"
	"github.com/peoplehub/hrms-backend-go/internal/domain/employee"
	"github.com/peoplehub/hrms-backend-go/internal/domain/tenant"
	"github.com/peoplehub/hrms-backend-go/internal/domain/user"
	"github.com/peoplehub/hrms-backend-go/internal/pkg/jwt"
)

type fakeUserRepo struct {
	user.UserRepository
	users []user.User
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) GetByEmailAndTenant(_ context.Context, email, tenantID string) (user.User, error) {
	for _, u := range f.users {
		if u.Email == email && u.TenantID == tenantID {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) GetByIDAnyTenant(_ context.Context, id string) (user.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

type fakeTenantRepo struct {
	tenant.TenantRepository
	tenants map[string]tenant.Tenant
}

func (f *fakeTenantRepo) GetByID(_ context.Context, id string) (tenant.Tenant, error) {
	t, ok := f.tenants[id]
	if !ok {
		return tenant.Tenant{}, tenant.ErrTenantNotFound
	}
	return t, nil
}

func (f *fakeTenantRepo) GetBySubdomain(_ context.Context, subdomain string) (tenant.Tenant, error) {
	for _, t := range f.tenants {
		if t.Subdomain == subdomain {
			return t, nil
		}
	}
	return tenant.Tenant{}, tenant.ErrTenantNotFound
}

type fakeTokenStore struct {
	saved   map[string]string // hash -> subjectID
	revoked map[string]bool
}

func newFakeTokenStore() *fakeTokenStore {
	return &fakeTokenStore{
		saved:   make(map[string]string),
		revoked: make(map[string]bool),
	}
}

func (f *fakeTokenStore) Save(_ context.Context, _ string, subjectID string, tokenHash string, _ int64) error {
	f.saved[tokenHash] = subjectID
	return nil
}

func (f *fakeTokenStore) IsActive(_ context.Context, _ string, subjectID string, tokenHash string) (bool, error) {
	if f.revoked[tokenHash] {
		return false, nil
	}
	return f.saved[tokenHash] == subjectID, nil
}

func (f *fakeTokenStore) Revoke(_ context.Context, tokenHash string) error {
	f.revoked[tokenHash] = true
	return nil
}

func (f *fakeTokenStore) RevokeAllForSubject(_ context.Context, _ string, subjectID string) error {
	for hash, subject := range f.saved {
		if subject == subjectID {
			f.revoked[hash] = true
		}
	}
	return nil
}

type noEmployeeRepo struct {
	employee.EmployeeRepository
}

func (noEmployeeRepo) GetByID(_ context.Context, _, _ string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func mustHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func testAuthService(t *testing.T, users []user.User, tenants map[string]tenant.Tenant, tokens *fakeTokenStore) auth.AuthService {
	t.Helper()
	jwtService := jwt.NewJWTService("test-secret-key-for-jwt", "1h", "24h")
	return NewAuthService(
		nil,
		&config.Config{},
		jwtService,
		&fakeUserRepo{users: users},
		&fakeTenantRepo{tenants: tenants},
		noEmployeeRepo{},
		tokens,
	)
}

func activeTenant() map[string]tenant.Tenant {
	return map[string]tenant.Tenant{
		"t1": {ID: "t1", Name: "Acme", Subdomain: "acme", Status: tenant.StatusActive},
	}
}

func TestLogin_Success(t *testing.T) {
	users := []user.User{{
		ID:           "u1",
		TenantID:     "t1",
		Email:        "admin@acme.test",
		PasswordHash: mustHash(t, "secret-password"),
		FullName:     "Acme Admin",
		Role:         user.RoleAdmin,
	}}
	svc := testAuthService(t, users, activeTenant(), newFakeTokenStore())

	resp, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "admin@acme.test",
		Password: "secret-password",
	})
	require.NoError(t, err)
	assert.Equal(t, "u1", resp.User.ID)
	assert.Equal(t, "acme", resp.Tenant.Subdomain)
	assert.NotEmpty(t, resp.Tokens.AccessToken)
	assert.NotEmpty(t, resp.Tokens.RefreshToken)
}

func TestLogin_WrongPassword(t *testing.T) {
	users := []user.User{{
		ID:           "u1",
		TenantID:     "t1",
		Email:        "admin@acme.test",
		PasswordHash: mustHash(t, "secret-password"),
		Role:         user.RoleAdmin,
	}}
	svc := testAuthService(t, users, activeTenant(), newFakeTokenStore())

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "admin@acme.test",
		Password: "wrong-password",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLogin_UnknownEmailLooksLikeBadCredentials(t *testing.T) {
	svc := testAuthService(t, nil, activeTenant(), newFakeTokenStore())

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "ghost@acme.test",
		Password: "whatever-password",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLogin_SuspendedTenant(t *testing.T) {
	users := []user.User{{
		ID:           "u1",
		TenantID:     "t1",
		Email:        "admin@acme.test",
		PasswordHash: mustHash(t, "secret-password"),
		Role:         user.RoleAdmin,
	}}
	tenants := map[string]tenant.Tenant{
		"t1": {ID: "t1", Name: "Acme", Subdomain: "acme", Status: tenant.StatusSuspended},
	}
	svc := testAuthService(t, users, tenants, newFakeTokenStore())

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "admin@acme.test",
		Password: "secret-password",
	})
	assert.ErrorIs(t, err, auth.ErrTenantSuspended)
}

func TestLogin_SubdomainScopesLookup(t *testing.T) {
	users := []user.User{
		{ID: "u1", TenantID: "t1", Email: "shared@example.test", PasswordHash: mustHash(t, "password-one"), Role: user.RoleAdmin},
		{ID: "u2", TenantID: "t2", Email: "shared@example.test", PasswordHash: mustHash(t, "password-two"), Role: user.RoleAdmin},
	}
	tenants := map[string]tenant.Tenant{
		"t1": {ID: "t1", Name: "Acme", Subdomain: "acme", Status: tenant.StatusActive},
		"t2": {ID: "t2", Name: "Globex", Subdomain: "globex", Status: tenant.StatusActive},
	}
	svc := testAuthService(t, users, tenants, newFakeTokenStore())

	resp, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:     "shared@example.test",
		Password:  "password-two",
		Subdomain: "globex",
	})
	require.NoError(t, err)
	assert.Equal(t, "u2", resp.User.ID)
}

func TestRefresh_RotatesToken(t *testing.T) {
	users := []user.User{{
		ID:           "u1",
		TenantID:     "t1",
		Email:        "admin@acme.test",
		PasswordHash: mustHash(t, "secret-password"),
		Role:         user.RoleAdmin,
	}}
	tokens := newFakeTokenStore()
	svc := testAuthService(t, users, activeTenant(), tokens)

	login, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "admin@acme.test",
		Password: "secret-password",
	})
	require.NoError(t, err)

	refreshed, err := svc.Refresh(context.Background(), auth.RefreshTokenRequest{
		RefreshToken: login.Tokens.RefreshToken,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
	assert.NotEqual(t, login.Tokens.RefreshToken, refreshed.RefreshToken)

	// The old token is revoked by rotation and cannot be replayed.
	_, err = svc.Refresh(context.Background(), auth.RefreshTokenRequest{
		RefreshToken: login.Tokens.RefreshToken,
	})
	assert.ErrorIs(t, err, auth.ErrRefreshTokenRevoked)

	// The new one works.
	_, err = svc.Refresh(context.Background(), auth.RefreshTokenRequest{
		RefreshToken: refreshed.RefreshToken,
	})
	require.NoError(t, err)
}

func TestRefresh_RejectsGarbageToken(t *testing.T) {
	svc := testAuthService(t, nil, activeTenant(), newFakeTokenStore())

	_, err := svc.Refresh(context.Background(), auth.RefreshTokenRequest{
		RefreshToken: "not-a-jwt",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestLogout_RevokesToken(t *testing.T) {
	users := []user.User{{
		ID:           "u1",
		TenantID:     "t1",
		Email:        "admin@acme.test",
		PasswordHash: mustHash(t, "secret-password"),
		Role:         user.RoleAdmin,
	}}
	tokens := newFakeTokenStore()
	svc := testAuthService(t, users, activeTenant(), tokens)

	login, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "admin@acme.test",
		Password: "secret-password",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), auth.RefreshTokenRequest{
		RefreshToken: login.Tokens.RefreshToken,
	}))

	_, err = svc.Refresh(context.Background(), auth.RefreshTokenRequest{
		RefreshToken: login.Tokens.RefreshToken,
	})
	assert.ErrorIs(t, err, auth.ErrRefreshTokenRevoked)
}
