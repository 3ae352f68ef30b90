package payroll

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peoplehub/hrms-backend-go/internal/domain/attendance"
	"github.com/peoplehub/hrms-backend-go/internal/domain/employee"
	"github.com/peoplehub/hrms-backend-go/internal/domain/payroll"
	"github.com/peoplehub/hrms-backend-go/internal/domain/user"
	"github.com/peoplehub/hrms-backend-go/internal/pkg/tenantctx"
)

type fakePayrollRepo struct {
	structures map[string]payroll.SalaryStructure // keyed by tenantID/employeeID
	payslips   map[string]payroll.Payslip         // keyed by id
	nextID     int
}

func newFakePayrollRepo() *fakePayrollRepo {
	return &fakePayrollRepo{
		structures: make(map[string]payroll.SalaryStructure),
		payslips:   make(map[string]payroll.Payslip),
	}
}

func structureKey(tenantID, employeeID string) string {
	return tenantID + "/" + employeeID
}

func (f *fakePayrollRepo) UpsertSalaryStructure(_ context.Context, s payroll.SalaryStructure) (payroll.SalaryStructure, error) {
	if s.ID == "" {
		f.nextID++
		s.ID = fmt.Sprintf("structure-%d", f.nextID)
	}
	f.structures[structureKey(s.TenantID, s.EmployeeID)] = s
	return s, nil
}

func (f *fakePayrollRepo) GetSalaryStructure(_ context.Context, employeeID, tenantID string) (payroll.SalaryStructure, error) {
	s, ok := f.structures[structureKey(tenantID, employeeID)]
	if !ok {
		return payroll.SalaryStructure{}, payroll.ErrSalaryStructureNotFound
	}
	return s, nil
}

func (f *fakePayrollRepo) ListSalaryStructures(_ context.Context, tenantID string, employeeIDs []string) ([]payroll.SalaryStructure, error) {
	var out []payroll.SalaryStructure
	for _, id := range employeeIDs {
		if s, ok := f.structures[structureKey(tenantID, id)]; ok {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakePayrollRepo) UpsertPayslip(_ context.Context, slip payroll.Payslip) (payroll.Payslip, error) {
	for id, existing := range f.payslips {
		if existing.TenantID == slip.TenantID && existing.EmployeeID == slip.EmployeeID &&
			existing.Month == slip.Month && existing.Year == slip.Year {
			slip.ID = id
			f.payslips[id] = slip
			return slip, nil
		}
	}
	f.nextID++
	slip.ID = fmt.Sprintf("payslip-%d", f.nextID)
	f.payslips[slip.ID] = slip
	return slip, nil
}

func (f *fakePayrollRepo) GetPayslipByID(_ context.Context, id, tenantID string) (payroll.Payslip, error) {
	slip, ok := f.payslips[id]
	if !ok || slip.TenantID != tenantID {
		return payroll.Payslip{}, payroll.ErrPayslipNotFound
	}
	return slip, nil
}

func (f *fakePayrollRepo) GetPayslipByPeriod(_ context.Context, employeeID string, month, year int, tenantID string) (payroll.Payslip, error) {
	for _, slip := range f.payslips {
		if slip.TenantID == tenantID && slip.EmployeeID == employeeID && slip.Month == month && slip.Year == year {
			return slip, nil
		}
	}
	return payroll.Payslip{}, payroll.ErrPayslipNotFound
}

func (f *fakePayrollRepo) ListPayslips(_ context.Context, tenantID string, filter payroll.PayslipFilter) ([]payroll.Payslip, int64, error) {
	var out []payroll.Payslip
	for _, slip := range f.payslips {
		if slip.TenantID != tenantID {
			continue
		}
		if filter.EmployeeID != nil && slip.EmployeeID != *filter.EmployeeID {
			continue
		}
		out = append(out, slip)
	}
	return out, int64(len(out)), nil
}

func (f *fakePayrollRepo) UpdatePayslipStatus(_ context.Context, id, tenantID string, status payroll.PayslipStatus) error {
	slip, ok := f.payslips[id]
	if !ok || slip.TenantID != tenantID {
		return payroll.ErrPayslipNotFound
	}
	slip.Status = status
	f.payslips[id] = slip
	return nil
}

type fakeAttendanceSummaryRepo struct {
	attendance.AttendanceRepository
	summaries []attendance.PeriodSummary
}

func (f *fakeAttendanceSummaryRepo) GetPeriodSummary(_ context.Context, _ string, _, _ int, _ []string) ([]attendance.PeriodSummary, error) {
	return f.summaries, nil
}

type fakeEmployeeDirectory struct {
	employee.EmployeeRepository
	employees map[string]employee.Employee // keyed by tenantID/id
}

func (f *fakeEmployeeDirectory) GetByID(_ context.Context, id, tenantID string) (employee.Employee, error) {
	emp, ok := f.employees[tenantID+"/"+id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (f *fakeEmployeeDirectory) GetActiveByTenant(_ context.Context, tenantID string) ([]employee.Employee, error) {
	var out []employee.Employee
	for key, emp := range f.employees {
		if emp.IsActive() && key == tenantID+"/"+emp.ID {
			out = append(out, emp)
		}
	}
	return out, nil
}

func hrManagerContext(tenantID string) context.Context {
	return tenantctx.WithActor(context.Background(), tenantctx.Actor{
		UserID:   "user-hr",
		Email:    "hr@example.com",
		Role:     user.RoleHRManager,
		TenantID: tenantID,
	})
}

func testStructure(tenantID, employeeID string) payroll.SalaryStructure {
	return payroll.SalaryStructure{
		TenantID:         tenantID,
		EmployeeID:       employeeID,
		Basic:            decimal.NewFromInt(30000),
		HRA:              decimal.NewFromInt(12000),
		Conveyance:       decimal.NewFromInt(1600),
		MedicalAllowance: decimal.NewFromInt(1250),
		ProvidentFund:    decimal.NewFromInt(3600),
		IncomeTax:        decimal.NewFromInt(2500),
	}
}

func testService(payrollRepo *fakePayrollRepo, summaries []attendance.PeriodSummary, employees map[string]employee.Employee) payroll.PayrollService {
	return NewPayrollService(
		payrollRepo,
		&fakeAttendanceSummaryRepo{summaries: summaries},
		&fakeEmployeeDirectory{employees: employees},
	)
}

func TestGenerate_CreatesPayslipPerStructure(t *testing.T) {
	repo := newFakePayrollRepo()
	_, err := repo.UpsertSalaryStructure(context.Background(), testStructure("t1", "emp-1"))
	require.NoError(t, err)

	svc := testService(repo, []attendance.PeriodSummary{
		{EmployeeID: "emp-1", PresentDays: 18, HalfDays: 2, AbsentDays: 2},
	}, map[string]employee.Employee{
		"t1/emp-1": {ID: "emp-1", TenantID: "t1", Status: employee.StatusActive, JoiningDate: time.Now().AddDate(-1, 0, 0)},
	})

	results, err := svc.Generate(hrManagerContext("t1"), payroll.GeneratePayrollRequest{Month: 7, Year: 2026})
	require.NoError(t, err)
	require.Len(t, results, 1)

	slip := results[0]
	assert.Equal(t, "emp-1", slip.EmployeeID)
	assert.Equal(t, 7, slip.Month)
	assert.Equal(t, 2026, slip.Year)
	assert.Equal(t, string(payroll.PayslipStatusDraft), slip.Status)
	// Present days on the slip include half days.
	assert.Equal(t, 20, slip.PresentDays)
}

func TestGenerate_IsIdempotentPerPeriod(t *testing.T) {
	repo := newFakePayrollRepo()
	_, err := repo.UpsertSalaryStructure(context.Background(), testStructure("t1", "emp-1"))
	require.NoError(t, err)

	svc := testService(repo, []attendance.PeriodSummary{
		{EmployeeID: "emp-1", PresentDays: 20},
	}, map[string]employee.Employee{
		"t1/emp-1": {ID: "emp-1", TenantID: "t1", Status: employee.StatusActive},
	})

	ctx := hrManagerContext("t1")
	first, err := svc.Generate(ctx, payroll.GeneratePayrollRequest{Month: 7, Year: 2026})
	require.NoError(t, err)
	second, err := svc.Generate(ctx, payroll.GeneratePayrollRequest{Month: 7, Year: 2026})
	require.NoError(t, err)

	require.Len(t, first, 1)
	require.Len(t, second, 1)
	assert.Equal(t, first[0].ID, second[0].ID)
	assert.Len(t, repo.payslips, 1)
}

func TestGenerate_SkipsPaidPayslips(t *testing.T) {
	repo := newFakePayrollRepo()
	_, err := repo.UpsertSalaryStructure(context.Background(), testStructure("t1", "emp-1"))
	require.NoError(t, err)

	svc := testService(repo, []attendance.PeriodSummary{
		{EmployeeID: "emp-1", PresentDays: 20},
	}, map[string]employee.Employee{
		"t1/emp-1": {ID: "emp-1", TenantID: "t1", Status: employee.StatusActive},
	})

	ctx := hrManagerContext("t1")
	first, err := svc.Generate(ctx, payroll.GeneratePayrollRequest{Month: 7, Year: 2026})
	require.NoError(t, err)
	require.Len(t, first, 1)

	paid := repo.payslips[first[0].ID]
	netBefore := paid.NetPay
	paid.Status = payroll.PayslipStatusPaid
	repo.payslips[first[0].ID] = paid

	second, err := svc.Generate(ctx, payroll.GeneratePayrollRequest{Month: 7, Year: 2026})
	require.NoError(t, err)
	require.Len(t, second, 1)
	assert.Equal(t, string(payroll.PayslipStatusPaid), second[0].Status)
	assert.True(t, repo.payslips[first[0].ID].NetPay.Equal(netBefore))
}

func TestUpdatePayslipStatus_Transitions(t *testing.T) {
	repo := newFakePayrollRepo()
	_, err := repo.UpsertSalaryStructure(context.Background(), testStructure("t1", "emp-1"))
	require.NoError(t, err)

	svc := testService(repo, []attendance.PeriodSummary{
		{EmployeeID: "emp-1", PresentDays: 20},
	}, map[string]employee.Employee{
		"t1/emp-1": {ID: "emp-1", TenantID: "t1", Status: employee.StatusActive},
	})

	ctx := hrManagerContext("t1")
	slips, err := svc.Generate(ctx, payroll.GeneratePayrollRequest{Month: 7, Year: 2026})
	require.NoError(t, err)
	id := slips[0].ID

	// DRAFT cannot jump straight to PAID.
	_, err = svc.UpdatePayslipStatus(ctx, payroll.UpdatePayslipStatusRequest{ID: id, Status: "PAID"})
	assert.ErrorIs(t, err, payroll.ErrInvalidStatusTransition)

	updated, err := svc.UpdatePayslipStatus(ctx, payroll.UpdatePayslipStatusRequest{ID: id, Status: "PROCESSED"})
	require.NoError(t, err)
	assert.Equal(t, string(payroll.PayslipStatusProcessed), updated.Status)

	updated, err = svc.UpdatePayslipStatus(ctx, payroll.UpdatePayslipStatusRequest{ID: id, Status: "PAID"})
	require.NoError(t, err)
	assert.Equal(t, string(payroll.PayslipStatusPaid), updated.Status)

	// Paid is final.
	_, err = svc.UpdatePayslipStatus(ctx, payroll.UpdatePayslipStatusRequest{ID: id, Status: "DRAFT"})
	assert.ErrorIs(t, err, payroll.ErrPayslipAlreadyPaid)
}

func TestGetPayslip_EmployeeSeesOnlyOwn(t *testing.T) {
	repo := newFakePayrollRepo()
	_, err := repo.UpsertSalaryStructure(context.Background(), testStructure("t1", "emp-1"))
	require.NoError(t, err)

	svc := testService(repo, []attendance.PeriodSummary{
		{EmployeeID: "emp-1", PresentDays: 20},
	}, map[string]employee.Employee{
		"t1/emp-1": {ID: "emp-1", TenantID: "t1", Status: employee.StatusActive},
	})

	slips, err := svc.Generate(hrManagerContext("t1"), payroll.GeneratePayrollRequest{Month: 7, Year: 2026})
	require.NoError(t, err)
	id := slips[0].ID

	other := "emp-2"
	employeeCtx := tenantctx.WithActor(context.Background(), tenantctx.Actor{
		UserID:     "user-emp",
		EmployeeID: &other,
		Role:       user.RoleEmployee,
		TenantID:   "t1",
	})

	_, err = svc.GetPayslip(employeeCtx, id)
	assert.ErrorIs(t, err, payroll.ErrPayslipNotFound)

	own := "emp-1"
	ownerCtx := tenantctx.WithActor(context.Background(), tenantctx.Actor{
		UserID:     "user-owner",
		EmployeeID: &own,
		Role:       user.RoleEmployee,
		TenantID:   "t1",
	})
	slip, err := svc.GetPayslip(ownerCtx, id)
	require.NoError(t, err)
	assert.Equal(t, "emp-1", slip.EmployeeID)
}

func TestGetPayslip_CrossTenantLooksMissing(t *testing.T) {
	repo := newFakePayrollRepo()
	_, err := repo.UpsertSalaryStructure(context.Background(), testStructure("t1", "emp-1"))
	require.NoError(t, err)

	svc := testService(repo, []attendance.PeriodSummary{
		{EmployeeID: "emp-1", PresentDays: 20},
	}, map[string]employee.Employee{
		"t1/emp-1": {ID: "emp-1", TenantID: "t1", Status: employee.StatusActive},
	})

	slips, err := svc.Generate(hrManagerContext("t1"), payroll.GeneratePayrollRequest{Month: 7, Year: 2026})
	require.NoError(t, err)

	_, err = svc.GetPayslip(hrManagerContext("t2"), slips[0].ID)
	assert.ErrorIs(t, err, payroll.ErrPayslipNotFound)
}
