package attendance

import "errors"

var (
	ErrAlreadyCheckedIn   = errors.New("already checked in today")
	ErrNotCheckedIn       = errors.New("not checked in yet")
	ErrAlreadyCheckedOut  = errors.New("already checked out today")
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrDuplicateDay       = errors.New("attendance record already exists for this day")
)
