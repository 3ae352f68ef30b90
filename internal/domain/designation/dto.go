package designation

import (
	"github.com/peoplehub/hrms-backend-go/internal/pkg/validator"
)

type DesignationResponse struct {
	ID           string  `json:"id"`
	DepartmentID string  `json:"department_id"`
	Name         string  `json:"name"`
	Code         string  `json:"code"`
	Level        int     `json:"level"`
	Description  *string `json:"description,omitempty"`
	Status       string  `json:"status"`
}

type CreateDesignationRequest struct {
	DepartmentID string  `json:"department_id"`
	Name         string  `json:"name"`
	Code         string  `json:"code"`
	Level        int     `json:"level"`
	Description  *string `json:"description,omitempty"`
}

func (r *CreateDesignationRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.DepartmentID) {
		errs = append(errs, validator.ValidationError{
			Field:   "department_id",
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
	if r.Level < 1 {
		errs = append(errs, validator.ValidationError{
			Field:   "level",
			Message: "must be at least 1",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateDesignationRequest struct {
	ID          string  `json:"-"`
	Name        *string `json:"name,omitempty"`
	Level       *int    `json:"level,omitempty"`
	Description *string `json:"description,omitempty"`
}

func (r *UpdateDesignationRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && !validator.IsValidName(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "must be between 2 and 100 characters",
		})
	}
	if r.Level != nil && *r.Level < 1 {
		errs = append(errs, validator.ValidationError{
			Field:   "level",
			Message: "must be at least 1",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func ToResponse(d Designation) DesignationResponse {
	return DesignationResponse{
		ID:           d.ID,
		DepartmentID: d.DepartmentID,
		Name:         d.Name,
		Code:         d.Code,
		Level:        d.Level,
		Description:  d.Description,
		Status:       string(d.Status),
	}
}
