package auth

import (
	"github.com/peoplehub/hrms-backend-go/internal/pkg/validator"

	"github.com/peoplehub/hrms-backend-go/internal/domain/employee"
	"github.com/peoplehub/hrms-backend-go/internal/domain/tenant"
)

type LoginRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	Subdomain string `json:"subdomain,omitempty"` // disambiguates multi-tenant emails
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "must be a valid email address",
		})
	}
	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// RegisterRequest bootstraps a tenant with its first admin user.
type RegisterRequest struct {
	TenantName string `json:"tenant_name"`
	Subdomain  string `json:"subdomain"`
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	Password   string `json:"password"`
}

func (r *RegisterRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidName(r.TenantName) {
		errs = append(errs, validator.ValidationError{
			Field:   "tenant_name",
			Message: "must be between 2 and 100 characters",
		})
	}
	if !validator.IsValidSubdomain(r.Subdomain) {
		errs = append(errs, validator.ValidationError{
			Field:   "subdomain",
			Message: "must be 3-63 lowercase alphanumerics or hyphens",
		})
	}
	if !validator.IsValidName(r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "must be between 2 and 100 characters",
		})
	}
	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "must be a valid email address",
		})
	}
	if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "must be at least 8 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token"`
}

func (r *RefreshTokenRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.RefreshToken) {
		errs = append(errs, validator.ValidationError{
			Field:   "refresh_token",
			Message: "is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type TokenResponse struct {
	AccessToken           string `json:"access_token"`
	AccessTokenExpiresIn  int64  `json:"access_token_expires_in"`
	RefreshToken          string `json:"refresh_token"`
	RefreshTokenExpiresIn int64  `json:"refresh_token_expires_in"`
}

type AuthUserResponse struct {
	ID         string  `json:"id"`
	Email      string  `json:"email"`
	FullName   string  `json:"full_name"`
	Role       string  `json:"role"`
	EmployeeID *string `json:"employee_id,omitempty"`
}

type LoginResponse struct {
	User     AuthUserResponse           `json:"user"`
	Tenant   tenant.TenantResponse      `json:"tenant"`
	Employee *employee.EmployeeResponse `json:"employee,omitempty"`
	Tokens   TokenResponse              `json:"tokens"`
}

type RegisterResponse struct {
	User   AuthUserResponse      `json:"user"`
	Tenant tenant.TenantResponse `json:"tenant"`
	Tokens TokenResponse         `json:"tokens"`
}
