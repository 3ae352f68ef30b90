package payroll

import "context"

// PayrollService defines business logic for payroll operations.
type PayrollService interface {
	// Salary structures
	UpsertSalaryStructure(ctx context.Context, req UpsertSalaryStructureRequest) (SalaryStructureResponse, error)
	GetSalaryStructure(ctx context.Context, employeeID string) (SalaryStructureResponse, error)

	// Generate builds payslips for every targeted active employee for the
	// period. Regeneration overwrites DRAFT/PROCESSED payslips for the same
	// period; PAID payslips are left untouched.
	Generate(ctx context.Context, req GeneratePayrollRequest) ([]PayslipResponse, error)

	GetPayslip(ctx context.Context, id string) (PayslipResponse, error)
	ListPayslips(ctx context.Context, filter PayslipFilter) (ListPayslipResponse, error)
	UpdatePayslipStatus(ctx context.Context, req UpdatePayslipStatusRequest) (PayslipResponse, error)
}
