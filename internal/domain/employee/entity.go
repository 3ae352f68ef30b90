package employee

import "time"

type Status string

const (
	StatusActive     Status = "ACTIVE"
	StatusInactive   Status = "INACTIVE"
	StatusOnLeave    Status = "ON_LEAVE"
	StatusTerminated Status = "TERMINATED"
	StatusResigned   Status = "RESIGNED"
)

type Employee struct {
	ID             string
	TenantID       string
	OrganisationID string
	DepartmentID   *string
	DesignationID  *string
	ManagerID      *string
	EmployeeCode   string // unique within the organisation
	FirstName      string
	LastName       string
	Email          string
	JoiningDate    time.Time
	LeavingDate    *time.Time
	Status         Status
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// Joined fields
	DepartmentName  *string
	DesignationName *string
	ManagerName     *string
}

// FullName joins first and last name for display.
func (e *Employee) FullName() string {
	if e.LastName == "" {
		return e.FirstName
	}
	return e.FirstName + " " + e.LastName
}

// IsActive reports whether the employee currently works for the organisation.
func (e *Employee) IsActive() bool {
	return e.Status == StatusActive || e.Status == StatusOnLeave
}
