package user

import "time"

type Role string

const (
	RoleSuperAdmin Role = "SUPER_ADMIN" // Platform operator, outside tenant scope
	RoleAdmin      Role = "ADMIN"       // Tenant administrator
	RoleHRManager  Role = "HR_MANAGER"  // Runs payroll and manages employees
	RoleManager    Role = "MANAGER"     // Views team data
	RoleEmployee   Role = "EMPLOYEE"    // Self-service only
	RoleViewer     Role = "VIEWER"      // Read-only access
)

type User struct {
	ID           string
	TenantID     string
	EmployeeID   *string
	Email        string
	PasswordHash string
	FullName     string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin checks if the user administers the tenant.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// CanManageEmployees checks if the user can create or modify employee records.
func (u *User) CanManageEmployees() bool {
	return HasPermission(u.Role, PermissionManageEmployees)
}
