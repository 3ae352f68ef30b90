package designation

import "errors"

var (
	ErrDesignationNotFound = errors.New("designation not found")
	ErrCodeExists          = errors.New("designation code already exists in this department")
)
