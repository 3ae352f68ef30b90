package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/peoplehub/hrms-backend-go/internal/domain/payroll"
	"github.com/peoplehub/hrms-backend-go/internal/pkg/database"
)

type payrollRepositoryImpl struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepositoryImpl{db: db}
}

const salaryStructureColumns = `
	id, tenant_id, employee_id,
	basic, hra, conveyance, medical_allowance, special_allowance, bonus,
	provident_fund, professional_tax, income_tax, other_deductions,
	created_at, updated_at
`

func scanSalaryStructure(row pgx.Row) (payroll.SalaryStructure, error) {
	var s payroll.SalaryStructure
	err := row.Scan(
		&s.ID, &s.TenantID, &s.EmployeeID,
		&s.Basic, &s.HRA, &s.Conveyance, &s.MedicalAllowance, &s.SpecialAllowance, &s.Bonus,
		&s.ProvidentFund, &s.ProfessionalTax, &s.IncomeTax, &s.OtherDeductions,
		&s.CreatedAt, &s.UpdatedAt,
	)
	return s, err
}

// UpsertSalaryStructure implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) UpsertSalaryStructure(ctx context.Context, structure payroll.SalaryStructure) (payroll.SalaryStructure, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO salary_structures (
			tenant_id, employee_id,
			basic, hra, conveyance, medical_allowance, special_allowance, bonus,
			provident_fund, professional_tax, income_tax, other_deductions
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (employee_id) DO UPDATE SET
			basic = EXCLUDED.basic,
			hra = EXCLUDED.hra,
			conveyance = EXCLUDED.conveyance,
			medical_allowance = EXCLUDED.medical_allowance,
			special_allowance = EXCLUDED.special_allowance,
			bonus = EXCLUDED.bonus,
			provident_fund = EXCLUDED.provident_fund,
			professional_tax = EXCLUDED.professional_tax,
			income_tax = EXCLUDED.income_tax,
			other_deductions = EXCLUDED.other_deductions,
			updated_at = NOW()
		RETURNING ` + salaryStructureColumns

	saved, err := scanSalaryStructure(q.QueryRow(ctx, query,
		structure.TenantID, structure.EmployeeID,
		structure.Basic, structure.HRA, structure.Conveyance,
		structure.MedicalAllowance, structure.SpecialAllowance, structure.Bonus,
		structure.ProvidentFund, structure.ProfessionalTax, structure.IncomeTax, structure.OtherDeductions,
	))
	if err != nil {
		return payroll.SalaryStructure{}, fmt.Errorf("upsert salary structure: %w", err)
	}
	return saved, nil
}

// GetSalaryStructure implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) GetSalaryStructure(ctx context.Context, employeeID string, tenantID string) (payroll.SalaryStructure, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + salaryStructureColumns + ` FROM salary_structures WHERE employee_id = $1 AND tenant_id = $2`

	found, err := scanSalaryStructure(q.QueryRow(ctx, query, employeeID, tenantID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.SalaryStructure{}, payroll.ErrSalaryStructureNotFound
		}
		return payroll.SalaryStructure{}, fmt.Errorf("get salary structure: %w", err)
	}
	return found, nil
}

// ListSalaryStructures implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) ListSalaryStructures(ctx context.Context, tenantID string, employeeIDs []string) ([]payroll.SalaryStructure, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + salaryStructureColumns + ` FROM salary_structures WHERE tenant_id = $1 AND employee_id = ANY($2)`

	rows, err := q.Query(ctx, query, tenantID, employeeIDs)
	if err != nil {
		return nil, fmt.Errorf("list salary structures: %w", err)
	}
	defer rows.Close()

	var structures []payroll.SalaryStructure
	for rows.Next() {
		s, err := scanSalaryStructure(rows)
		if err != nil {
			return nil, fmt.Errorf("scan salary structure: %w", err)
		}
		structures = append(structures, s)
	}
	return structures, rows.Err()
}

const payslipSelect = `
	SELECT p.id, p.tenant_id, p.employee_id, p.month, p.year,
		p.basic, p.hra, p.conveyance, p.medical_allowance, p.special_allowance, p.bonus,
		p.provident_fund, p.professional_tax, p.income_tax, p.other_deductions,
		p.total_earnings, p.total_deductions, p.net_pay,
		p.working_days, p.present_days, p.absent_days, p.leave_days,
		p.status, p.paid_on, p.created_at, p.updated_at,
		e.first_name || ' ' || e.last_name AS employee_name,
		e.employee_code
	FROM payslips p
	JOIN employees e ON e.id = p.employee_id
`

func scanPayslip(row pgx.Row) (payroll.Payslip, error) {
	var p payroll.Payslip
	err := row.Scan(
		&p.ID, &p.TenantID, &p.EmployeeID, &p.Month, &p.Year,
		&p.Basic, &p.HRA, &p.Conveyance, &p.MedicalAllowance, &p.SpecialAllowance, &p.Bonus,
		&p.ProvidentFund, &p.ProfessionalTax, &p.IncomeTax, &p.OtherDeductions,
		&p.TotalEarnings, &p.TotalDeductions, &p.NetPay,
		&p.WorkingDays, &p.PresentDays, &p.AbsentDays, &p.LeaveDays,
		&p.Status, &p.PaidOn, &p.CreatedAt, &p.UpdatedAt,
		&p.EmployeeName, &p.EmployeeCode,
	)
	return p, err
}

// UpsertPayslip implements payroll.PayrollRepository. A payslip that already
// exists for the (employee, month, year) period is overwritten, so repeated
// generation runs converge on the same result.
func (r *payrollRepositoryImpl) UpsertPayslip(ctx context.Context, slip payroll.Payslip) (payroll.Payslip, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payslips (
			tenant_id, employee_id, month, year,
			basic, hra, conveyance, medical_allowance, special_allowance, bonus,
			provident_fund, professional_tax, income_tax, other_deductions,
			total_earnings, total_deductions, net_pay,
			working_days, present_days, absent_days, leave_days, status
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)
		ON CONFLICT (employee_id, month, year) DO UPDATE SET
			basic = EXCLUDED.basic,
			hra = EXCLUDED.hra,
			conveyance = EXCLUDED.conveyance,
			medical_allowance = EXCLUDED.medical_allowance,
			special_allowance = EXCLUDED.special_allowance,
			bonus = EXCLUDED.bonus,
			provident_fund = EXCLUDED.provident_fund,
			professional_tax = EXCLUDED.professional_tax,
			income_tax = EXCLUDED.income_tax,
			other_deductions = EXCLUDED.other_deductions,
			total_earnings = EXCLUDED.total_earnings,
			total_deductions = EXCLUDED.total_deductions,
			net_pay = EXCLUDED.net_pay,
			working_days = EXCLUDED.working_days,
			present_days = EXCLUDED.present_days,
			absent_days = EXCLUDED.absent_days,
			leave_days = EXCLUDED.leave_days,
			status = EXCLUDED.status,
			updated_at = NOW()
		RETURNING id
	`

	var id string
	err := q.QueryRow(ctx, query,
		slip.TenantID, slip.EmployeeID, slip.Month, slip.Year,
		slip.Basic, slip.HRA, slip.Conveyance, slip.MedicalAllowance, slip.SpecialAllowance, slip.Bonus,
		slip.ProvidentFund, slip.ProfessionalTax, slip.IncomeTax, slip.OtherDeductions,
		slip.TotalEarnings, slip.TotalDeductions, slip.NetPay,
		slip.WorkingDays, slip.PresentDays, slip.AbsentDays, slip.LeaveDays, slip.Status,
	).Scan(&id)
	if err != nil {
		return payroll.Payslip{}, fmt.Errorf("upsert payslip: %w", err)
	}
	return r.GetPayslipByID(ctx, id, slip.TenantID)
}

// GetPayslipByID implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) GetPayslipByID(ctx context.Context, id string, tenantID string) (payroll.Payslip, error) {
	q := GetQuerier(ctx, r.db)

	query := payslipSelect + ` WHERE p.id = $1 AND p.tenant_id = $2`

	found, err := scanPayslip(q.QueryRow(ctx, query, id, tenantID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.Payslip{}, payroll.ErrPayslipNotFound
		}
		return payroll.Payslip{}, fmt.Errorf("get payslip by id: %w", err)
	}
	return found, nil
}

// GetPayslipByPeriod implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) GetPayslipByPeriod(ctx context.Context, employeeID string, month, year int, tenantID string) (payroll.Payslip, error) {
	q := GetQuerier(ctx, r.db)

	query := payslipSelect + ` WHERE p.employee_id = $1 AND p.month = $2 AND p.year = $3 AND p.tenant_id = $4`

	found, err := scanPayslip(q.QueryRow(ctx, query, employeeID, month, year, tenantID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.Payslip{}, payroll.ErrPayslipNotFound
		}
		return payroll.Payslip{}, fmt.Errorf("get payslip by period: %w", err)
	}
	return found, nil
}

// ListPayslips implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) ListPayslips(ctx context.Context, tenantID string, filter payroll.PayslipFilter) ([]payroll.Payslip, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := " WHERE p.tenant_id = $1"
	args := []interface{}{tenantID}

	if filter.Month != nil {
		where += fmt.Sprintf(" AND p.month = $%d", len(args)+1)
		args = append(args, *filter.Month)
	}
	if filter.Year != nil {
		where += fmt.Sprintf(" AND p.year = $%d", len(args)+1)
		args = append(args, *filter.Year)
	}
	if filter.EmployeeID != nil {
		where += fmt.Sprintf(" AND p.employee_id = $%d", len(args)+1)
		args = append(args, *filter.EmployeeID)
	}
	if filter.Status != nil {
		where += fmt.Sprintf(" AND p.status = $%d", len(args)+1)
		args = append(args, *filter.Status)
	}

	var total int64
	countQuery := "SELECT COUNT(*) FROM payslips p JOIN employees e ON e.id = p.employee_id" + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count payslips: %w", err)
	}

	query := payslipSelect + where +
		fmt.Sprintf(" ORDER BY p.year DESC, p.month DESC, e.employee_code ASC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list payslips: %w", err)
	}
	defer rows.Close()

	var slips []payroll.Payslip
	for rows.Next() {
		p, err := scanPayslip(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan payslip: %w", err)
		}
		slips = append(slips, p)
	}
	return slips, total, rows.Err()
}

// UpdatePayslipStatus implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) UpdatePayslipStatus(ctx context.Context, id string, tenantID string, status payroll.PayslipStatus) error {
	q := GetQuerier(ctx, r.db)

	var paidOn *time.Time
	if status == payroll.PayslipStatusPaid {
		now := time.Now()
		paidOn = &now
	}

	tag, err := q.Exec(ctx,
		`UPDATE payslips SET status = $1, paid_on = COALESCE($2, paid_on), updated_at = NOW() WHERE id = $3 AND tenant_id = $4`,
		status, paidOn, id, tenantID)
	if err != nil {
		return fmt.Errorf("update payslip status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrPayslipNotFound
	}
	return nil
}
