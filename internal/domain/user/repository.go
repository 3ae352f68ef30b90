package user

import "context"

type UserRepository interface {
	Create(ctx context.Context, u User) (User, error)
	GetByID(ctx context.Context, id string, tenantID string) (User, error)

	// GetByIDAnyTenant resolves a user during token refresh, before any
	// tenant is established for the request.
	GetByIDAnyTenant(ctx context.Context, id string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByEmailAndTenant(ctx context.Context, email string, tenantID string) (User, error)
	UpdatePassword(ctx context.Context, id string, tenantID string, passwordHash string) error
}
