package employee

import "context"

// EmployeeRepository defines data access for employees. Every method takes
// the tenant ID so no query can cross tenant boundaries.
type EmployeeRepository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)
	GetByID(ctx context.Context, id string, tenantID string) (Employee, error)
	GetByCode(ctx context.Context, organisationID string, code string, tenantID string) (Employee, error)
	List(ctx context.Context, tenantID string, filter ListFilter) ([]Employee, int64, error)
	GetActiveByTenant(ctx context.Context, tenantID string) ([]Employee, error)
	Update(ctx context.Context, req UpdateEmployeeRequest, tenantID string) error
	SetStatus(ctx context.Context, id string, tenantID string, status Status) error
}
