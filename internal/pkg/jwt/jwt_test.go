package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peoplehub/hrms-backend-go/internal/domain/user"
)

func TestGenerateAndParseRefreshToken(t *testing.T) {
	svc := NewJWTService("test-secret-key-for-jwt", "1h", "24h")

	token, expiresAt, err := svc.GenerateRefreshToken("user-1", user.RoleAdmin)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Greater(t, expiresAt, int64(0))

	subject, role, err := svc.ParseRefreshToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", subject)
	assert.Equal(t, user.RoleAdmin, role)
}

func TestParseRefreshToken_RejectsAccessToken(t *testing.T) {
	svc := NewJWTService("test-secret-key-for-jwt", "1h", "24h")

	tenantID := "tenant-1"
	token, _, err := svc.GenerateAccessToken("user-1", "a@b.cd", nil, &tenantID, user.RoleEmployee)
	require.NoError(t, err)

	_, _, err = svc.ParseRefreshToken(token)
	assert.Error(t, err)
}

func TestParseRefreshToken_RejectsForeignSecret(t *testing.T) {
	issuer := NewJWTService("secret-a", "1h", "24h")
	verifier := NewJWTService("secret-b", "1h", "24h")

	token, _, err := issuer.GenerateRefreshToken("user-1", user.RoleEmployee)
	require.NoError(t, err)

	_, _, err = verifier.ParseRefreshToken(token)
	assert.Error(t, err)
}
