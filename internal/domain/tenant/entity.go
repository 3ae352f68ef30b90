package tenant

import "time"

type Status string

const (
	StatusActive    Status = "ACTIVE"
	StatusSuspended Status = "SUSPENDED"
	StatusInactive  Status = "INACTIVE"
)

// Tenant is the root of multi-tenant isolation. Every business entity except
// super admins carries a tenant ID, directly or transitively.
type Tenant struct {
	ID        string
	Name      string
	Subdomain string
	Status    Status
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive reports whether the tenant may serve requests.
func (t *Tenant) IsActive() bool {
	return t.Status == StatusActive
}
