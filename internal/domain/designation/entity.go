package designation

import "time"

type Status string

const (
	StatusActive   Status = "ACTIVE"
	StatusInactive Status = "INACTIVE"
)

type Designation struct {
	ID           string
	TenantID     string
	DepartmentID string
	Name         string
	Code         string
	Level        int // seniority rank within the department
	Description  *string
	Status       Status
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
