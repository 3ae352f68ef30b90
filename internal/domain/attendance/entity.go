package attendance

import "time"

type Status string

const (
	StatusPresent Status = "PRESENT"
	StatusLate    Status = "LATE"
	StatusHalfDay Status = "HALF_DAY"
	StatusAbsent  Status = "ABSENT"
	StatusOnLeave Status = "ON_LEAVE"
)

type Attendance struct {
	ID            string
	TenantID      string
	EmployeeID    string
	Date          time.Time // work day, truncated to midnight
	CheckIn       *time.Time
	CheckOut      *time.Time
	WorkHours     *float64
	LateByMinutes int
	Status        Status
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Joined fields
	EmployeeName *string
	EmployeeCode *string
}
