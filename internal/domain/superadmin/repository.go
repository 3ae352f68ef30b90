package superadmin

import "context"

type SuperAdminRepository interface {
	Create(ctx context.Context, admin *SuperAdmin) error
	GetByID(ctx context.Context, id string) (*SuperAdmin, error)
	GetByEmail(ctx context.Context, email string) (*SuperAdmin, error)
}

// StatsRepository exposes the platform-wide counts shown on the super admin
// dashboard. These deliberately cross tenant boundaries.
type StatsRepository interface {
	CountEmployees(ctx context.Context) (int64, error)
	CountUsers(ctx context.Context) (int64, error)
}
