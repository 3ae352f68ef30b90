package superadmin

import "time"

// SuperAdmin is a platform operator account, outside tenant scoping.
type SuperAdmin struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
