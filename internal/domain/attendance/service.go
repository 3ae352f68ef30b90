package attendance

import "context"

// AttendanceService defines business logic for attendance operations.
type AttendanceService interface {
	// CheckIn records the employee's arrival and classifies the day.
	CheckIn(ctx context.Context, req CheckInRequest) (AttendanceResponse, error)

	// CheckOut records the departure and recomputes worked hours.
	CheckOut(ctx context.Context, req CheckOutRequest) (AttendanceResponse, error)

	// GetToday returns today's record for an employee, if any.
	GetToday(ctx context.Context, employeeID string) (*AttendanceResponse, error)

	// GetMyAttendance lists records for one employee.
	GetMyAttendance(ctx context.Context, employeeID string, filter ListFilter) (ListAttendanceResponse, error)

	// ListAttendance lists records across the tenant (admin view).
	ListAttendance(ctx context.Context, filter ListFilter) (ListAttendanceResponse, error)
}
