package superadmin

import "errors"

var (
	ErrSuperAdminNotFound    = errors.New("super admin not found")
	ErrInvalidCredentials    = errors.New("invalid email or password")
	ErrSuperAdminEmailExists = errors.New("super admin with this email already exists")
)
