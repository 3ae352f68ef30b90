package response

import (
	"errors"
	"net/http"

	"github.com/peoplehub/hrms-backend-go/internal/domain/attendance"
	"github.com/peoplehub/hrms-backend-go/internal/domain/auth"
	"github.com/peoplehub/hrms-backend-go/internal/domain/department"
	"github.com/peoplehub/hrms-backend-go/internal/domain/designation"
	"github.com/peoplehub/hrms-backend-go/internal/domain/emailtemplate"
	"github.com/peoplehub/hrms-backend-go/internal/domain/employee"
	"github.com/peoplehub/hrms-backend-go/internal/domain/organisation"
	"github.com/peoplehub/hrms-backend-go/internal/domain/payroll"
	"github.com/peoplehub/hrms-backend-go/internal/domain/superadmin"
	"github.com/peoplehub/hrms-backend-go/internal/domain/tenant"
	"github.com/peoplehub/hrms-backend-go/internal/domain/user"
	"github.com/peoplehub/hrms-backend-go/internal/pkg/tenantctx"
	"github.com/peoplehub/hrms-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses. Anything unmapped is a
// 500 with a generic message; internals never leak to clients.
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth
	case errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, superadmin.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or malformed token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrTenantSuspended),
		errors.Is(err, tenant.ErrTenantSuspended):
		Forbidden(w, "Tenant is suspended")
	case errors.Is(err, tenantctx.ErrNoActor):
		Unauthorized(w, "Authentication required")
	case errors.Is(err, tenantctx.ErrNoTenant):
		Forbidden(w, "No tenant resolved for this request")
	case errors.Is(err, user.ErrInsufficientPermissions):
		Forbidden(w, "Insufficient permissions")

	// Tenant
	case errors.Is(err, tenant.ErrTenantNotFound):
		NotFound(w, "Tenant not found")
	case errors.Is(err, tenant.ErrSubdomainExists):
		Conflict(w, "Subdomain already registered")
	case errors.Is(err, tenant.ErrInvalidStatus):
		BadRequest(w, "Invalid tenant status", nil)

	// Users
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUserEmailExists):
		Conflict(w, "Email already registered in this tenant")

	// Organisation structure
	case errors.Is(err, organisation.ErrOrganisationNotFound):
		NotFound(w, "Organisation not found")
	case errors.Is(err, organisation.ErrCodeExists):
		Conflict(w, "Organisation code already exists")
	case errors.Is(err, department.ErrDepartmentNotFound):
		NotFound(w, "Department not found")
	case errors.Is(err, department.ErrCodeExists):
		Conflict(w, "Department code already exists in this organisation")
	case errors.Is(err, designation.ErrDesignationNotFound):
		NotFound(w, "Designation not found")
	case errors.Is(err, designation.ErrCodeExists):
		Conflict(w, "Designation code already exists in this department")

	// Employees
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeCodeExists):
		Conflict(w, "Employee code already exists in this organisation")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered in this organisation")
	case errors.Is(err, employee.ErrManagerNotFound):
		NotFound(w, "Manager not found")
	case errors.Is(err, employee.ErrSelfManager):
		BadRequest(w, "Employee cannot be their own manager", nil)
	case errors.Is(err, employee.ErrEmployeeNotActive):
		BadRequest(w, "Employee is not active", nil)
	case errors.Is(err, employee.ErrLeavingBeforeJoining):
		BadRequest(w, "Leaving date cannot be before joining date", nil)

	// Attendance
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		Conflict(w, "Already checked in today")
	case errors.Is(err, attendance.ErrAlreadyCheckedOut):
		Conflict(w, "Already checked out today")
	case errors.Is(err, attendance.ErrNotCheckedIn):
		BadRequest(w, "Not checked in yet", nil)
	case errors.Is(err, attendance.ErrDuplicateDay):
		Conflict(w, "Attendance record already exists for this day")

	// Payroll
	case errors.Is(err, payroll.ErrPayslipNotFound):
		NotFound(w, "Payslip not found")
	case errors.Is(err, payroll.ErrSalaryStructureNotFound):
		NotFound(w, "Salary structure not found")
	case errors.Is(err, payroll.ErrPayslipAlreadyPaid):
		Conflict(w, "Payslip already paid")
	case errors.Is(err, payroll.ErrInvalidStatusTransition):
		BadRequest(w, "Invalid payslip status transition", nil)
	case errors.Is(err, payroll.ErrInvalidPeriod):
		BadRequest(w, "Invalid payroll period", nil)

	// Platform plane
	case errors.Is(err, superadmin.ErrSuperAdminNotFound):
		NotFound(w, "Super admin not found")
	case errors.Is(err, emailtemplate.ErrTemplateNotFound):
		NotFound(w, "Email template not found")
	case errors.Is(err, emailtemplate.ErrTemplateNameExists):
		Conflict(w, "Email template with this name already exists")
	case errors.Is(err, emailtemplate.ErrTemplateInactive):
		BadRequest(w, "Email template is inactive", nil)
	case errors.Is(err, emailtemplate.ErrTemplateRender):
		BadRequest(w, "Failed to render email template", nil)

	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
