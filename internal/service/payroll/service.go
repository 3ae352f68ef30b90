package payroll

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/peoplehub/hrms-backend-go/internal/domain/attendance"
	"github.com/peoplehub/hrms-backend-go/internal/domain/employee"
	"github.com/peoplehub/hrms-backend-go/internal/domain/payroll"
	"github.com/peoplehub/hrms-backend-go/internal/domain/user"
	"github.com/peoplehub/hrms-backend-go/internal/pkg/tenantctx"
)

type PayrollServiceImpl struct {
	payrollRepo    payroll.PayrollRepository
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
}

func NewPayrollService(
	payrollRepo payroll.PayrollRepository,
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		payrollRepo:    payrollRepo,
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
	}
}

// UpsertSalaryStructure implements payroll.PayrollService.
func (s *PayrollServiceImpl) UpsertSalaryStructure(ctx context.Context, req payroll.UpsertSalaryStructureRequest) (payroll.SalaryStructureResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.SalaryStructureResponse{}, err
	}

	actor, err := tenantctx.ActorFromContext(ctx)
	if err != nil {
		return payroll.SalaryStructureResponse{}, err
	}
	tenantID, err := tenantctx.TenantID(ctx)
	if err != nil {
		return payroll.SalaryStructureResponse{}, err
	}
	if !user.HasPermission(actor.Role, user.PermissionManagePayslips) {
		return payroll.SalaryStructureResponse{}, user.ErrInsufficientPermissions
	}

	// The employee lookup doubles as the tenant boundary check.
	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID, tenantID); err != nil {
		return payroll.SalaryStructureResponse{}, err
	}

	saved, err := s.payrollRepo.UpsertSalaryStructure(ctx, payroll.SalaryStructure{
		TenantID:   tenantID,
		EmployeeID: req.EmployeeID,

		Basic:            req.Basic,
		HRA:              req.HRA,
		Conveyance:       req.Conveyance,
		MedicalAllowance: req.MedicalAllowance,
		SpecialAllowance: req.SpecialAllowance,
		Bonus:            req.Bonus,

		ProvidentFund:   req.ProvidentFund,
		ProfessionalTax: req.ProfessionalTax,
		IncomeTax:       req.IncomeTax,
		OtherDeductions: req.OtherDeductions,
	})
	if err != nil {
		return payroll.SalaryStructureResponse{}, err
	}
	return payroll.ToSalaryStructureResponse(saved), nil
}

// GetSalaryStructure implements payroll.PayrollService.
func (s *PayrollServiceImpl) GetSalaryStructure(ctx context.Context, employeeID string) (payroll.SalaryStructureResponse, error) {
	actor, err := tenantctx.ActorFromContext(ctx)
	if err != nil {
		return payroll.SalaryStructureResponse{}, err
	}
	tenantID, err := tenantctx.TenantID(ctx)
	if err != nil {
		return payroll.SalaryStructureResponse{}, err
	}
	if !user.HasPermission(actor.Role, user.PermissionManagePayslips) {
		return payroll.SalaryStructureResponse{}, user.ErrInsufficientPermissions
	}

	structure, err := s.payrollRepo.GetSalaryStructure(ctx, employeeID, tenantID)
	if err != nil {
		return payroll.SalaryStructureResponse{}, err
	}
	return payroll.ToSalaryStructureResponse(structure), nil
}

// Generate implements payroll.PayrollService. It aggregates attendance for
// the period and upserts one payslip per employee with a salary structure.
// Employees whose payslip for the period is already PAID are skipped, so
// regeneration never rewrites settled pay.
func (s *PayrollServiceImpl) Generate(ctx context.Context, req payroll.GeneratePayrollRequest) ([]payroll.PayslipResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	actor, err := tenantctx.ActorFromContext(ctx)
	if err != nil {
		return nil, err
	}
	tenantID, err := tenantctx.TenantID(ctx)
	if err != nil {
		return nil, err
	}
	if !user.HasPermission(actor.Role, user.PermissionGeneratePayroll) {
		return nil, user.ErrInsufficientPermissions
	}

	employeeIDs := req.EmployeeIDs
	if len(employeeIDs) == 0 {
		active, err := s.employeeRepo.GetActiveByTenant(ctx, tenantID)
		if err != nil {
			return nil, fmt.Errorf("list active employees: %w", err)
		}
		for _, emp := range active {
			employeeIDs = append(employeeIDs, emp.ID)
		}
	}
	if len(employeeIDs) == 0 {
		return []payroll.PayslipResponse{}, nil
	}

	structures, err := s.payrollRepo.ListSalaryStructures(ctx, tenantID, employeeIDs)
	if err != nil {
		return nil, fmt.Errorf("list salary structures: %w", err)
	}

	summaries, err := s.attendanceRepo.GetPeriodSummary(ctx, tenantID, req.Month, req.Year, employeeIDs)
	if err != nil {
		return nil, fmt.Errorf("aggregate attendance: %w", err)
	}
	summaryByEmployee := make(map[string]attendance.PeriodSummary, len(summaries))
	for _, summary := range summaries {
		summaryByEmployee[summary.EmployeeID] = summary
	}

	workingDays := payroll.WorkingDaysInMonth(req.Month, req.Year)

	var responses []payroll.PayslipResponse
	for _, structure := range structures {
		existing, err := s.payrollRepo.GetPayslipByPeriod(ctx, structure.EmployeeID, req.Month, req.Year, tenantID)
		if err != nil && !errors.Is(err, payroll.ErrPayslipNotFound) {
			return nil, err
		}
		if err == nil && existing.Status == payroll.PayslipStatusPaid {
			slog.Info("Skipping paid payslip during generation",
				"employee_id", structure.EmployeeID, "month", req.Month, "year", req.Year)
			responses = append(responses, payroll.ToPayslipResponse(existing))
			continue
		}

		summary := summaryByEmployee[structure.EmployeeID]
		slip := payroll.BuildPayslip(structure, payroll.DayCounts{
			WorkingDays: workingDays,
			PresentDays: summary.PresentDays + summary.HalfDays,
			AbsentDays:  summary.AbsentDays,
			LeaveDays:   summary.LeaveDays,
		}, req.Month, req.Year)

		saved, err := s.payrollRepo.UpsertPayslip(ctx, slip)
		if err != nil {
			return nil, fmt.Errorf("upsert payslip for employee %s: %w", structure.EmployeeID, err)
		}
		responses = append(responses, payroll.ToPayslipResponse(saved))
	}
	return responses, nil
}

// GetPayslip implements payroll.PayrollService.
func (s *PayrollServiceImpl) GetPayslip(ctx context.Context, id string) (payroll.PayslipResponse, error) {
	actor, err := tenantctx.ActorFromContext(ctx)
	if err != nil {
		return payroll.PayslipResponse{}, err
	}
	tenantID, err := tenantctx.TenantID(ctx)
	if err != nil {
		return payroll.PayslipResponse{}, err
	}
	if !user.HasPermission(actor.Role, user.PermissionViewPayslips) {
		return payroll.PayslipResponse{}, user.ErrInsufficientPermissions
	}

	slip, err := s.payrollRepo.GetPayslipByID(ctx, id, tenantID)
	if err != nil {
		return payroll.PayslipResponse{}, err
	}

	// Employees only see their own payslips.
	if !user.HasPermission(actor.Role, user.PermissionManagePayslips) {
		if actor.EmployeeID == nil || *actor.EmployeeID != slip.EmployeeID {
			return payroll.PayslipResponse{}, payroll.ErrPayslipNotFound
		}
	}
	return payroll.ToPayslipResponse(slip), nil
}

// ListPayslips implements payroll.PayrollService.
func (s *PayrollServiceImpl) ListPayslips(ctx context.Context, filter payroll.PayslipFilter) (payroll.ListPayslipResponse, error) {
	actor, err := tenantctx.ActorFromContext(ctx)
	if err != nil {
		return payroll.ListPayslipResponse{}, err
	}
	tenantID, err := tenantctx.TenantID(ctx)
	if err != nil {
		return payroll.ListPayslipResponse{}, err
	}
	if !user.HasPermission(actor.Role, user.PermissionViewPayslips) {
		return payroll.ListPayslipResponse{}, user.ErrInsufficientPermissions
	}

	// Employees only see their own payslips.
	if !user.HasPermission(actor.Role, user.PermissionManagePayslips) {
		if actor.EmployeeID == nil {
			return payroll.ListPayslipResponse{}, user.ErrInsufficientPermissions
		}
		filter.EmployeeID = actor.EmployeeID
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}

	slips, total, err := s.payrollRepo.ListPayslips(ctx, tenantID, filter)
	if err != nil {
		return payroll.ListPayslipResponse{}, err
	}

	data := make([]payroll.PayslipResponse, 0, len(slips))
	for _, slip := range slips {
		data = append(data, payroll.ToPayslipResponse(slip))
	}
	return payroll.ListPayslipResponse{
		Data:       data,
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

// UpdatePayslipStatus implements payroll.PayrollService.
func (s *PayrollServiceImpl) UpdatePayslipStatus(ctx context.Context, req payroll.UpdatePayslipStatusRequest) (payroll.PayslipResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayslipResponse{}, err
	}

	actor, err := tenantctx.ActorFromContext(ctx)
	if err != nil {
		return payroll.PayslipResponse{}, err
	}
	tenantID, err := tenantctx.TenantID(ctx)
	if err != nil {
		return payroll.PayslipResponse{}, err
	}
	if !user.HasPermission(actor.Role, user.PermissionManagePayslips) {
		return payroll.PayslipResponse{}, user.ErrInsufficientPermissions
	}

	slip, err := s.payrollRepo.GetPayslipByID(ctx, req.ID, tenantID)
	if err != nil {
		return payroll.PayslipResponse{}, err
	}

	next := payroll.PayslipStatus(req.Status)
	if !validTransition(slip.Status, next) {
		if slip.Status == payroll.PayslipStatusPaid {
			return payroll.PayslipResponse{}, payroll.ErrPayslipAlreadyPaid
		}
		return payroll.PayslipResponse{}, payroll.ErrInvalidStatusTransition
	}

	if err := s.payrollRepo.UpdatePayslipStatus(ctx, req.ID, tenantID, next); err != nil {
		return payroll.PayslipResponse{}, err
	}
	updated, err := s.payrollRepo.GetPayslipByID(ctx, req.ID, tenantID)
	if err != nil {
		return payroll.PayslipResponse{}, err
	}
	return payroll.ToPayslipResponse(updated), nil
}

// validTransition enforces the DRAFT -> PROCESSED -> PAID progression. Paid
// payslips are final.
func validTransition(from, to payroll.PayslipStatus) bool {
	switch from {
	case payroll.PayslipStatusDraft:
		return to == payroll.PayslipStatusProcessed
	case payroll.PayslipStatusProcessed:
		return to == payroll.PayslipStatusPaid || to == payroll.PayslipStatusDraft
	default:
		return false
	}
}
