package tenant

import "errors"

var (
	ErrTenantNotFound   = errors.New("tenant not found")
	ErrSubdomainExists  = errors.New("subdomain already registered")
	ErrTenantSuspended  = errors.New("tenant is suspended")
	ErrInvalidStatus    = errors.New("invalid tenant status")
	ErrTenantIDRequired = errors.New("tenant ID is required")
)
