package tenant

import "context"

type TenantRepository interface {
	Create(ctx context.Context, t Tenant) (Tenant, error)
	GetByID(ctx context.Context, id string) (Tenant, error)
	GetBySubdomain(ctx context.Context, subdomain string) (Tenant, error)
	List(ctx context.Context, status *Status, page, limit int) ([]Tenant, int64, error)
	UpdateStatus(ctx context.Context, id string, status Status) error
	CountByStatus(ctx context.Context) (map[Status]int64, error)
}
