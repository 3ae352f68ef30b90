package user

type Permission string

const (
	// Wildcard grants every action.
	PermissionAll Permission = "*"

	// Tenant administration
	PermissionManageTenants Permission = "manage_tenants"

	// Organisation structure
	PermissionManageOrganisations Permission = "manage_organisations"
	PermissionManageDepartments   Permission = "manage_departments"
	PermissionManageDesignations  Permission = "manage_designations"
	PermissionViewOrganisations   Permission = "view_organisations"

	// Employee management
	PermissionManageEmployees Permission = "manage_employees"
	PermissionViewEmployees   Permission = "view_employees"

	// Attendance
	PermissionManageAttendance Permission = "manage_attendance"
	PermissionViewAttendance   Permission = "view_attendance"
	PermissionRecordAttendance Permission = "record_attendance"

	// Payroll
	PermissionGeneratePayroll Permission = "generate_payroll"
	PermissionManagePayslips  Permission = "manage_payslips"
	PermissionViewPayslips    Permission = "view_payslips"

	// Platform plane
	PermissionViewAudit            Permission = "view_audit"
	PermissionManageEmailTemplates Permission = "manage_email_templates"
)

// RolePermissions is the static role table: permission list per role.
// Loaded once at process start, never mutated at runtime.
var RolePermissions = map[Role][]Permission{
	RoleSuperAdmin: {
		PermissionAll,
	},
	RoleAdmin: {
		PermissionManageOrganisations,
		PermissionManageDepartments,
		PermissionManageDesignations,
		PermissionViewOrganisations,
		PermissionManageEmployees,
		PermissionViewEmployees,
		PermissionManageAttendance,
		PermissionViewAttendance,
		PermissionRecordAttendance,
		PermissionGeneratePayroll,
		PermissionManagePayslips,
		PermissionViewPayslips,
	},
	RoleHRManager: {
		PermissionManageDepartments,
		PermissionManageDesignations,
		PermissionViewOrganisations,
		PermissionManageEmployees,
		PermissionViewEmployees,
		PermissionManageAttendance,
		PermissionViewAttendance,
		PermissionRecordAttendance,
		PermissionGeneratePayroll,
		PermissionManagePayslips,
		PermissionViewPayslips,
	},
	RoleManager: {
		PermissionViewOrganisations,
		PermissionViewEmployees,
		PermissionViewAttendance,
		PermissionRecordAttendance,
		PermissionViewPayslips,
	},
	RoleEmployee: {
		PermissionRecordAttendance,
		PermissionViewPayslips,
	},
	RoleViewer: {
		PermissionViewOrganisations,
		PermissionViewEmployees,
		PermissionViewAttendance,
	},
}

// roleRanks orders roles by authority. A higher rank may act on behalf of a
// lower one where the handler allows it.
var roleRanks = map[Role]int{
	RoleSuperAdmin: 100,
	RoleAdmin:      90,
	RoleHRManager:  70,
	RoleManager:    50,
	RoleEmployee:   30,
	RoleViewer:     10,
}

// HasPermission checks if a role has a specific permission. The wildcard
// permission grants everything.
func HasPermission(role Role, permission Permission) bool {
	permissions, exists := RolePermissions[role]
	if !exists {
		return false
	}

	for _, p := range permissions {
		if p == PermissionAll || p == permission {
			return true
		}
	}

	return false
}

// RoleRank returns the numeric hierarchy rank for a role, 0 for unknown roles.
func RoleRank(role Role) int {
	return roleRanks[role]
}

// Outranks reports whether a strictly outranks b.
func Outranks(a, b Role) bool {
	return RoleRank(a) > RoleRank(b)
}
