package department

import "time"

type Status string

const (
	StatusActive   Status = "ACTIVE"
	StatusInactive Status = "INACTIVE"
)

type Department struct {
	ID             string
	TenantID       string
	OrganisationID string
	Name           string
	Code           string
	Description    *string
	Status         Status
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
