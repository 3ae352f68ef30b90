package department

import "errors"

var (
	ErrDepartmentNotFound = errors.New("department not found")
	ErrCodeExists         = errors.New("department code already exists in this organisation")
)
