package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access for attendance records. Every
// method takes the tenant ID so no query can cross tenant boundaries. The
// (employee_id, date) pair is unique at the database level.
type AttendanceRepository interface {
	Create(ctx context.Context, att Attendance) (Attendance, error)
	GetByID(ctx context.Context, id string, tenantID string) (Attendance, error)
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time, tenantID string) (*Attendance, error)
	Update(ctx context.Context, att Attendance) error
	ListByEmployee(ctx context.Context, employeeID string, tenantID string, filter ListFilter) ([]Attendance, int64, error)
	List(ctx context.Context, tenantID string, filter ListFilter) ([]Attendance, int64, error)

	// GetPeriodSummary aggregates day counts per employee for a payroll
	// period.
	GetPeriodSummary(ctx context.Context, tenantID string, month, year int, employeeIDs []string) ([]PeriodSummary, error)

	// ListEmployeesWithoutRecord returns active employee IDs with no
	// attendance row for the given day. Used by the nightly close job.
	ListEmployeesWithoutRecord(ctx context.Context, tenantID string, date time.Time) ([]string, error)
}

// PeriodSummary is the attendance aggregate feeding payslip generation.
type PeriodSummary struct {
	EmployeeID  string
	PresentDays int
	AbsentDays  int
	LeaveDays   int
	HalfDays    int
	LateDays    int
}
