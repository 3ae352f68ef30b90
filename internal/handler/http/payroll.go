package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/peoplehub/hrms-backend-go/internal/domain/audit"
	domain "github.com/peoplehub/hrms-backend-go/internal/domain/payroll"
	"github.com/peoplehub/hrms-backend-go/internal/handler/http/response"
)

type PayrollHandler interface {
	UpsertSalaryStructure(w http.ResponseWriter, r *http.Request)
	GetSalaryStructure(w http.ResponseWriter, r *http.Request)
	Generate(w http.ResponseWriter, r *http.Request)
	GetPayslip(w http.ResponseWriter, r *http.Request)
	ListPayslips(w http.ResponseWriter, r *http.Request)
	UpdatePayslipStatus(w http.ResponseWriter, r *http.Request)
}

type PayrollHandlerImpl struct {
	payrollService domain.PayrollService
	auditRepo      audit.AuditRepository
}

func NewPayrollHandler(payrollService domain.PayrollService, auditRepo audit.AuditRepository) PayrollHandler {
	return &PayrollHandlerImpl{
		payrollService: payrollService,
		auditRepo:      auditRepo,
	}
}

// UpsertSalaryStructure implements PayrollHandler.
func (p *PayrollHandlerImpl) UpsertSalaryStructure(w http.ResponseWriter, r *http.Request) {
	var req domain.UpsertSalaryStructureRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpsertSalaryStructure decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.EmployeeID = chi.URLParam(r, "id")

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := p.payrollService.UpsertSalaryStructure(r.Context(), req)
	if err != nil {
		slog.Error("UpsertSalaryStructure service error", "error", err)
		response.HandleError(w, err)
		return
	}

	recordAudit(r.Context(), r, p.auditRepo, audit.ActionUpdate, "salary_structure", req.EmployeeID, nil, result)
	response.SuccessWithMessage(w, "Salary structure saved", result)
}

// GetSalaryStructure implements PayrollHandler.
func (p *PayrollHandlerImpl) GetSalaryStructure(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")

	result, err := p.payrollService.GetSalaryStructure(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Generate implements PayrollHandler. The period comes from the month and
// year path segments; an optional body narrows the employee set.
func (p *PayrollHandlerImpl) Generate(w http.ResponseWriter, r *http.Request) {
	var req domain.GeneratePayrollRequest

	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			slog.Error("GeneratePayroll decode error", "error", err)
			response.BadRequest(w, "Invalid request format", nil)
			return
		}
	}

	req.Month, _ = strconv.Atoi(chi.URLParam(r, "month"))
	req.Year, _ = strconv.Atoi(chi.URLParam(r, "year"))

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	results, err := p.payrollService.Generate(r.Context(), req)
	if err != nil {
		slog.Error("GeneratePayroll service error", "month", req.Month, "year", req.Year, "error", err)
		response.HandleError(w, err)
		return
	}

	recordAudit(r.Context(), r, p.auditRepo, audit.ActionCreate, "payroll_run", "", nil, map[string]interface{}{
		"month":    req.Month,
		"year":     req.Year,
		"payslips": len(results),
	})
	slog.Info("Payroll generated", "month", req.Month, "year", req.Year, "payslips", len(results))
	response.SuccessWithMessage(w, "Payroll generated", results)
}

// GetPayslip implements PayrollHandler.
func (p *PayrollHandlerImpl) GetPayslip(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := p.payrollService.GetPayslip(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListPayslips implements PayrollHandler.
func (p *PayrollHandlerImpl) ListPayslips(w http.ResponseWriter, r *http.Request) {
	var filter domain.PayslipFilter
	filter.Page, filter.Limit = parsePagination(r)

	if m := r.URL.Query().Get("month"); m != "" {
		if month, err := strconv.Atoi(m); err == nil {
			filter.Month = &month
		}
	}
	if y := r.URL.Query().Get("year"); y != "" {
		if year, err := strconv.Atoi(y); err == nil {
			filter.Year = &year
		}
	}
	if v := r.URL.Query().Get("employee_id"); v != "" {
		filter.EmployeeID = &v
	}
	if s := r.URL.Query().Get("status"); s != "" {
		status := domain.PayslipStatus(s)
		filter.Status = &status
	}

	result, err := p.payrollService.ListPayslips(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Data, listMeta(result.Page, result.Limit, result.TotalCount))
}

// UpdatePayslipStatus implements PayrollHandler.
func (p *PayrollHandlerImpl) UpdatePayslipStatus(w http.ResponseWriter, r *http.Request) {
	var req domain.UpdatePayslipStatusRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdatePayslipStatus decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := p.payrollService.UpdatePayslipStatus(r.Context(), req)
	if err != nil {
		slog.Error("UpdatePayslipStatus service error", "payslip_id", req.ID, "error", err)
		response.HandleError(w, err)
		return
	}

	recordAudit(r.Context(), r, p.auditRepo, audit.ActionStatus, "payslip", req.ID, nil, req)
	response.SuccessWithMessage(w, "Payslip status updated", result)
}
