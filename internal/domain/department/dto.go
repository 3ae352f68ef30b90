package department

import (
	"github.com/peoplehub/hrms-backend-go/internal/pkg/validator"
)

type DepartmentResponse struct {
	ID             string  `json:"id"`
	OrganisationID string  `json:"organisation_id"`
	Name           string  `json:"name"`
	Code           string  `json:"code"`
	Description    *string `json:"description,omitempty"`
	Status         string  `json:"status"`
}

type CreateDepartmentRequest struct {
	OrganisationID string  `json:"organisation_id"`
	Name           string  `json:"name"`
	Code           string  `json:"code"`
	Description    *string `json:"description,omitempty"`
}

func (r *CreateDepartmentRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.OrganisationID) {
		errs = append(errs, validator.ValidationError{
			Field:   "organisation_id",
			Message: "must be a valid UUID",
		})
	}
	if !validator.IsValidName(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "must be between 2 and 100 characters",
		})
	}
	if !validator.IsValidCode(r.Code) {
		errs = append(errs, validator.ValidationError{
			Field:   "code",
			Message: "must be between 1 and 20 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateDepartmentRequest struct {
	ID          string  `json:"-"`
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

func (r *UpdateDepartmentRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && !validator.IsValidName(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "must be between 2 and 100 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func ToResponse(d Department) DepartmentResponse {
	return DepartmentResponse{
		ID:             d.ID,
		OrganisationID: d.OrganisationID,
		Name:           d.Name,
		Code:           d.Code,
		Description:    d.Description,
		Status:         string(d.Status),
	}
}
