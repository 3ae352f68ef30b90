package employee

import "errors"

var (
	ErrEmployeeNotFound     = errors.New("employee not found")
	ErrEmployeeCodeExists   = errors.New("employee code already exists in this organisation")
	ErrEmailExists          = errors.New("email already registered in this organisation")
	ErrInvalidStatus        = errors.New("invalid employee status")
	ErrManagerNotFound      = errors.New("manager not found")
	ErrSelfManager          = errors.New("employee cannot be their own manager")
	ErrEmployeeNotActive    = errors.New("employee is not active")
	ErrLeavingBeforeJoining = errors.New("leaving date cannot be before joining date")
)
