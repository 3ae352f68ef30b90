package department

import "context"

type DepartmentRepository interface {
	Create(ctx context.Context, dept Department) (Department, error)
	GetByID(ctx context.Context, id string, tenantID string) (Department, error)
	ListByOrganisation(ctx context.Context, organisationID string, tenantID string) ([]Department, error)
	List(ctx context.Context, tenantID string, page, limit int) ([]Department, int64, error)
	Update(ctx context.Context, req UpdateDepartmentRequest, tenantID string) error
	SetStatus(ctx context.Context, id string, tenantID string, status Status) error
}
