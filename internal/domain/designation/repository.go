package designation

import "context"

type DesignationRepository interface {
	Create(ctx context.Context, d Designation) (Designation, error)
	GetByID(ctx context.Context, id string, tenantID string) (Designation, error)
	ListByDepartment(ctx context.Context, departmentID string, tenantID string) ([]Designation, error)
	List(ctx context.Context, tenantID string, page, limit int) ([]Designation, int64, error)
	Update(ctx context.Context, req UpdateDesignationRequest, tenantID string) error
	SetStatus(ctx context.Context, id string, tenantID string, status Status) error
}
