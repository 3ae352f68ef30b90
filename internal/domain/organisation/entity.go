package organisation

import "time"

type Status string

const (
	StatusActive   Status = "ACTIVE"
	StatusInactive Status = "INACTIVE"
)

type Organisation struct {
	ID         string
	TenantID   string
	Name       string
	Code       string
	AddressL1  *string
	AddressL2  *string
	City       *string
	State      *string
	Country    *string
	PostalCode *string
	Status     Status

	// Shift policy applied to attendance classification for this
	// organisation's employees. Seeded from platform defaults on creation.
	ShiftStart   string // "HH:MM"
	GraceMinutes int
	HalfDayHours float64
	FullDayHours float64

	CreatedAt time.Time
	UpdatedAt time.Time
}
