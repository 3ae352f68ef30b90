package auth

import "context"

// AuthService defines the tenant-plane authentication flow. Refresh is
// supported for regular users as well as super admins; the asymmetry in the
// original client was an oversight, not a design decision.
type AuthService interface {
	Register(ctx context.Context, req RegisterRequest) (RegisterResponse, error)
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
	Refresh(ctx context.Context, req RefreshTokenRequest) (TokenResponse, error)
	Logout(ctx context.Context, req RefreshTokenRequest) error
}

// RefreshTokenRepository persists issued refresh tokens so they can be
// revoked. Tokens are stored hashed.
type RefreshTokenRepository interface {
	Save(ctx context.Context, subjectKind string, subjectID string, tokenHash string, expiresAt int64) error
	IsActive(ctx context.Context, subjectKind string, subjectID string, tokenHash string) (bool, error)
	Revoke(ctx context.Context, tokenHash string) error
	RevokeAllForSubject(ctx context.Context, subjectKind string, subjectID string) error
}

const (
	SubjectKindUser       = "user"
	SubjectKindSuperAdmin = "super_admin"
)
