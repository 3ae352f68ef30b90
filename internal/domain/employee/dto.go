package employee

import (
	"github.com/peoplehub/hrms-backend-go/internal/pkg/validator"
)

type EmployeeResponse struct {
	ID              string  `json:"id"`
	OrganisationID  string  `json:"organisation_id"`
	DepartmentID    *string `json:"department_id,omitempty"`
	DesignationID   *string `json:"designation_id,omitempty"`
	ManagerID       *string `json:"manager_id,omitempty"`
	EmployeeCode    string  `json:"employee_code"`
	FirstName       string  `json:"first_name"`
	LastName        string  `json:"last_name"`
	Email           string  `json:"email"`
	JoiningDate     string  `json:"joining_date"`
	LeavingDate     *string `json:"leaving_date,omitempty"`
	Status          string  `json:"status"`
	DepartmentName  *string `json:"department_name,omitempty"`
	DesignationName *string `json:"designation_name,omitempty"`
	ManagerName     *string `json:"manager_name,omitempty"`
}

type CreateEmployeeRequest struct {
	OrganisationID string  `json:"organisation_id"`
	DepartmentID   *string `json:"department_id,omitempty"`
	DesignationID  *string `json:"designation_id,omitempty"`
	ManagerID      *string `json:"manager_id,omitempty"`
	EmployeeCode   string  `json:"employee_code"`
	FirstName      string  `json:"first_name"`
	LastName       string  `json:"last_name"`
	Email          string  `json:"email"`
	JoiningDate    string  `json:"joining_date"` // "YYYY-MM-DD"
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.OrganisationID) {
		errs = append(errs, validator.ValidationError{
			Field:   "organisation_id",
			Message: "must be a valid UUID",
		})
	}
	if r.DepartmentID != nil && !validator.IsValidUUID(*r.DepartmentID) {
		errs = append(errs, validator.ValidationError{
			Field:   "department_id",
			Message: "must be a valid UUID",
		})
	}
	if r.DesignationID != nil && !validator.IsValidUUID(*r.DesignationID) {
		errs = append(errs, validator.ValidationError{
			Field:   "designation_id",
			Message: "must be a valid UUID",
		})
	}
	if r.ManagerID != nil && !validator.IsValidUUID(*r.ManagerID) {
		errs = append(errs, validator.ValidationError{
			Field:   "manager_id",
			Message: "must be a valid UUID",
		})
	}
	if !validator.IsValidCode(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_code",
			Message: "must be between 1 and 20 characters",
		})
	}
	if !validator.IsValidName(r.FirstName) {
		errs = append(errs, validator.ValidationError{
			Field:   "first_name",
			Message: "must be between 2 and 100 characters",
		})
	}
	if !validator.IsEmpty(r.LastName) && !validator.LengthBetween(r.LastName, 1, 100) {
		errs = append(errs, validator.ValidationError{
			Field:   "last_name",
			Message: "must not exceed 100 characters",
		})
	}
	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "must be a valid email address",
		})
	}
	if _, ok := validator.IsValidDate(r.JoiningDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "joining_date",
			Message: "must be a valid date in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID            string  `json:"-"`
	DepartmentID  *string `json:"department_id,omitempty"`
	DesignationID *string `json:"designation_id,omitempty"`
	ManagerID     *string `json:"manager_id,omitempty"`
	FirstName     *string `json:"first_name,omitempty"`
	LastName      *string `json:"last_name,omitempty"`
	Email         *string `json:"email,omitempty"`
	LeavingDate   *string `json:"leaving_date,omitempty"`
	Status        *string `json:"status,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.FirstName != nil && !validator.IsValidName(*r.FirstName) {
		errs = append(errs, validator.ValidationError{
			Field:   "first_name",
			Message: "must be between 2 and 100 characters",
		})
	}
	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "must be a valid email address",
		})
	}
	if r.LeavingDate != nil {
		if _, ok := validator.IsValidDate(*r.LeavingDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "leaving_date",
				Message: "must be a valid date in YYYY-MM-DD format",
			})
		}
	}
	if r.Status != nil && !validator.IsInSlice(*r.Status, []string{
		string(StatusActive), string(StatusInactive), string(StatusOnLeave),
		string(StatusTerminated), string(StatusResigned),
	}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "must be one of ACTIVE, INACTIVE, ON_LEAVE, TERMINATED, RESIGNED",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ListFilter struct {
	OrganisationID *string
	DepartmentID   *string
	Status         *Status
	Search         string // matches name, email or employee code
	Page           int
	Limit          int
}

type ListEmployeeResponse struct {
	Data       []EmployeeResponse `json:"data"`
	TotalCount int64              `json:"total_count"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
}

func ToResponse(e Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:              e.ID,
		OrganisationID:  e.OrganisationID,
		DepartmentID:    e.DepartmentID,
		DesignationID:   e.DesignationID,
		ManagerID:       e.ManagerID,
		EmployeeCode:    e.EmployeeCode,
		FirstName:       e.FirstName,
		LastName:        e.LastName,
		Email:           e.Email,
		JoiningDate:     e.JoiningDate.Format("2006-01-02"),
		Status:          string(e.Status),
		DepartmentName:  e.DepartmentName,
		DesignationName: e.DesignationName,
		ManagerName:     e.ManagerName,
	}
	if e.LeavingDate != nil {
		str := e.LeavingDate.Format("2006-01-02")
		resp.LeavingDate = &str
	}
	return resp
}
