package superadmin

import (
	"time"

	"github.com/peoplehub/hrms-backend-go/internal/domain/tenant"
	"github.com/peoplehub/hrms-backend-go/internal/pkg/validator"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() validator.ValidationErrors {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "email is required"})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "email format is invalid"})
	}
	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "password is required"})
	}
	return errs
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

func (r *RefreshRequest) Validate() validator.ValidationErrors {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.RefreshToken) {
		errs = append(errs, validator.ValidationError{Field: "refresh_token", Message: "refresh_token is required"})
	}
	return errs
}

type SuperAdminResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

func (a *SuperAdmin) ToResponse() *SuperAdminResponse {
	return &SuperAdminResponse{
		ID:    a.ID,
		Email: a.Email,
		Name:  a.Name,
	}
}

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

type LoginResponse struct {
	Admin  *SuperAdminResponse `json:"admin"`
	Tokens *TokenResponse      `json:"tokens"`
}

// DashboardStats is the aggregate view over the whole platform.
type DashboardStats struct {
	TotalTenants      int64                    `json:"total_tenants"`
	TenantsByStatus   map[string]int64         `json:"tenants_by_status"`
	TotalEmployees    int64                    `json:"total_employees"`
	TotalUsers        int64                    `json:"total_users"`
	RecentTenants     []*tenant.TenantResponse `json:"recent_tenants"`
	EmailsSentToday   int64                    `json:"emails_sent_today"`
	EmailsFailedToday int64                    `json:"emails_failed_today"`
	GeneratedAt       time.Time                `json:"generated_at"`
}
