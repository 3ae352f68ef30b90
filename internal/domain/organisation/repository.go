package organisation

import "context"

// OrganisationRepository defines data access for organisations. Every method
// takes the tenant ID so no query can cross tenant boundaries.
type OrganisationRepository interface {
	Create(ctx context.Context, org Organisation) (Organisation, error)
	GetByID(ctx context.Context, id string, tenantID string) (Organisation, error)
	GetByEmployeeID(ctx context.Context, employeeID string, tenantID string) (Organisation, error)
	List(ctx context.Context, tenantID string, page, limit int) ([]Organisation, int64, error)
	Update(ctx context.Context, req UpdateOrganisationRequest, tenantID string) error
	SetStatus(ctx context.Context, id string, tenantID string, status Status) error
}
