package payroll

import "context"

// PayrollRepository defines data access for salary structures and payslips.
// Every method takes the tenant ID so no query can cross tenant boundaries.
type PayrollRepository interface {
	// Salary structures
	UpsertSalaryStructure(ctx context.Context, structure SalaryStructure) (SalaryStructure, error)
	GetSalaryStructure(ctx context.Context, employeeID string, tenantID string) (SalaryStructure, error)
	ListSalaryStructures(ctx context.Context, tenantID string, employeeIDs []string) ([]SalaryStructure, error)

	// Payslips. UpsertPayslip overwrites on (employee_id, month, year)
	// conflict, which makes generation idempotent per period.
	UpsertPayslip(ctx context.Context, slip Payslip) (Payslip, error)
	GetPayslipByID(ctx context.Context, id string, tenantID string) (Payslip, error)
	GetPayslipByPeriod(ctx context.Context, employeeID string, month, year int, tenantID string) (Payslip, error)
	ListPayslips(ctx context.Context, tenantID string, filter PayslipFilter) ([]Payslip, int64, error)
	UpdatePayslipStatus(ctx context.Context, id string, tenantID string, status PayslipStatus) error
}
