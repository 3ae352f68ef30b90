package tenant

import (
	"github.com/peoplehub/hrms-backend-go/internal/pkg/validator"
)

type TenantResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Subdomain string `json:"subdomain"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}

type UpdateTenantStatusRequest struct {
	ID     string `json:"-"`
	Status string `json:"status"`
}

func (r *UpdateTenantStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Status, []string{
		string(StatusActive), string(StatusSuspended), string(StatusInactive),
	}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "must be one of ACTIVE, SUSPENDED, INACTIVE",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ListTenantsFilter struct {
	Status *Status
	Page   int
	Limit  int
}

func ToResponse(t Tenant) TenantResponse {
	return TenantResponse{
		ID:        t.ID,
		Name:      t.Name,
		Subdomain: t.Subdomain,
		Status:    string(t.Status),
		CreatedAt: t.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
