package user

import "testing"

func TestHasPermission_SuperAdminWildcard(t *testing.T) {
	all := []Permission{
		PermissionManageTenants,
		PermissionManageOrganisations,
		PermissionManageEmployees,
		PermissionGeneratePayroll,
		PermissionViewAudit,
		PermissionManageEmailTemplates,
		Permission("anything_at_all"),
	}
	for _, p := range all {
		if !HasPermission(RoleSuperAdmin, p) {
			t.Errorf("HasPermission(SUPER_ADMIN, %q) = false, want true", p)
		}
	}
}

func TestHasPermission_EmployeeCannotManageEmployees(t *testing.T) {
	if HasPermission(RoleEmployee, PermissionManageEmployees) {
		t.Error("HasPermission(EMPLOYEE, manage_employees) = true, want false")
	}
	if !HasPermission(RoleEmployee, PermissionRecordAttendance) {
		t.Error("HasPermission(EMPLOYEE, record_attendance) = false, want true")
	}
}

func TestHasPermission_UnknownRole(t *testing.T) {
	if HasPermission(Role("INTERN"), PermissionViewEmployees) {
		t.Error("unknown role should have no permissions")
	}
}

func TestRoleRank(t *testing.T) {
	order := []Role{RoleViewer, RoleEmployee, RoleManager, RoleHRManager, RoleAdmin, RoleSuperAdmin}
	for i := 1; i < len(order); i++ {
		if RoleRank(order[i]) <= RoleRank(order[i-1]) {
			t.Errorf("RoleRank(%s) should exceed RoleRank(%s)", order[i], order[i-1])
		}
	}
	if RoleRank(Role("INTERN")) != 0 {
		t.Error("unknown role rank should be 0")
	}
	if !Outranks(RoleAdmin, RoleEmployee) {
		t.Error("Outranks(ADMIN, EMPLOYEE) = false, want true")
	}
}
