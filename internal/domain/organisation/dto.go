package organisation

import (
	"github.com/peoplehub/hrms-backend-go/internal/pkg/validator"
)

type OrganisationResponse struct {
	ID           string  `json:"id"`
	TenantID     string  `json:"tenant_id"`
	Name         string  `json:"name"`
	Code         string  `json:"code"`
	AddressL1    *string `json:"address_line1,omitempty"`
	AddressL2    *string `json:"address_line2,omitempty"`
	City         *string `json:"city,omitempty"`
	State        *string `json:"state,omitempty"`
	Country      *string `json:"country,omitempty"`
	PostalCode   *string `json:"postal_code,omitempty"`
	Status       string  `json:"status"`
	ShiftStart   string  `json:"shift_start"`
	GraceMinutes int     `json:"grace_minutes"`
	HalfDayHours float64 `json:"half_day_hours"`
	FullDayHours float64 `json:"full_day_hours"`
}

type CreateOrganisationRequest struct {
	Name       string  `json:"name"`
	Code       string  `json:"code"`
	AddressL1  *string `json:"address_line1,omitempty"`
	AddressL2  *string `json:"address_line2,omitempty"`
	City       *string `json:"city,omitempty"`
	State      *string `json:"state,omitempty"`
	Country    *string `json:"country,omitempty"`
	PostalCode *string `json:"postal_code,omitempty"`
}

func (r *CreateOrganisationRequest) Validate() error {
	var errs validator.ValidationErrors

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

type UpdateOrganisationRequest struct {
	ID           string   `json:"-"`
	Name         *string  `json:"name,omitempty"`
	AddressL1    *string  `json:"address_line1,omitempty"`
	AddressL2    *string  `json:"address_line2,omitempty"`
	City         *string  `json:"city,omitempty"`
	State        *string  `json:"state,omitempty"`
	Country      *string  `json:"country,omitempty"`
	PostalCode   *string  `json:"postal_code,omitempty"`
	ShiftStart   *string  `json:"shift_start,omitempty"`
	GraceMinutes *int     `json:"grace_minutes,omitempty"`
	HalfDayHours *float64 `json:"half_day_hours,omitempty"`
	FullDayHours *float64 `json:"full_day_hours,omitempty"`
}

func (r *UpdateOrganisationRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && !validator.IsValidName(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "must be between 2 and 100 characters",
		})
	}
	if r.ShiftStart != nil && !validator.IsValidClockTime(*r.ShiftStart) {
		errs = append(errs, validator.ValidationError{
			Field:   "shift_start",
			Message: "must be a valid HH:MM time",
		})
	}
	if r.GraceMinutes != nil && *r.GraceMinutes < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "grace_minutes",
			Message: "must be non-negative",
		})
	}
	if r.HalfDayHours != nil && *r.HalfDayHours <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "half_day_hours",
			Message: "must be positive",
		})
	}
	if r.FullDayHours != nil && *r.FullDayHours <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "full_day_hours",
			Message: "must be positive",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func ToResponse(org Organisation) OrganisationResponse {
	return OrganisationResponse{
		ID:           org.ID,
		TenantID:     org.TenantID,
		Name:         org.Name,
		Code:         org.Code,
		AddressL1:    org.AddressL1,
		AddressL2:    org.AddressL2,
		City:         org.City,
		State:        org.State,
		Country:      org.Country,
		PostalCode:   org.PostalCode,
		Status:       string(org.Status),
		ShiftStart:   org.ShiftStart,
		GraceMinutes: org.GraceMinutes,
		HalfDayHours: org.HalfDayHours,
		FullDayHours: org.FullDayHours,
	}
}
