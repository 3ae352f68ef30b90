package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/peoplehub/hrms-backend-go/internal/domain/audit"
	domain "github.com/peoplehub/hrms-backend-go/internal/domain/employee"
	"github.com/peoplehub/hrms-backend-go/internal/handler/http/response"
	"github.com/peoplehub/hrms-backend-go/internal/service/employee"
)

type EmployeeHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	SetStatus(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type EmployeeHandlerImpl struct {
	employeeService employee.EmployeeService
	auditRepo       audit.AuditRepository
}

func NewEmployeeHandler(employeeService employee.EmployeeService, auditRepo audit.AuditRepository) EmployeeHandler {
	return &EmployeeHandlerImpl{
		employeeService: employeeService,
		auditRepo:       auditRepo,
	}
}

// Create implements EmployeeHandler.
func (e *EmployeeHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateEmployeeRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateEmployee decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := e.employeeService.Create(r.Context(), req)
	if err != nil {
		slog.Error("CreateEmployee service error", "error", err)
		response.HandleError(w, err)
		return
	}

	recordAudit(r.Context(), r, e.auditRepo, audit.ActionCreate, "employee", result.ID, nil, result)
	response.Created(w, "Employee created successfully", result)
}

// Get implements EmployeeHandler.
func (e *EmployeeHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := e.employeeService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements EmployeeHandler.
func (e *EmployeeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := domain.ListFilter{Search: r.URL.Query().Get("search")}
	filter.Page, filter.Limit = parsePagination(r)

	if v := r.URL.Query().Get("organisation_id"); v != "" {
		filter.OrganisationID = &v
	}
	if v := r.URL.Query().Get("department_id"); v != "" {
		filter.DepartmentID = &v
	}
	if v := r.URL.Query().Get("status"); v != "" {
		status := domain.Status(v)
		filter.Status = &status
	}

	result, err := e.employeeService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Data, listMeta(result.Page, result.Limit, result.TotalCount))
}

// Update implements EmployeeHandler.
func (e *EmployeeHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req domain.UpdateEmployeeRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateEmployee decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := e.employeeService.Update(r.Context(), req)
	if err != nil {
		slog.Error("UpdateEmployee service error", "error", err)
		response.HandleError(w, err)
		return
	}

	recordAudit(r.Context(), r, e.auditRepo, audit.ActionUpdate, "employee", result.ID, nil, result)
	response.SuccessWithMessage(w, "Employee updated successfully", result)
}

// SetStatus implements EmployeeHandler.
func (e *EmployeeHandlerImpl) SetStatus(w http.ResponseWriter, r *http.Request) {
	var req setStatusRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	status := domain.Status(req.Status)
	switch status {
	case domain.StatusActive, domain.StatusInactive, domain.StatusOnLeave, domain.StatusTerminated:
	default:
		response.BadRequest(w, "Status must be one of ACTIVE, INACTIVE, ON_LEAVE, TERMINATED", nil)
		return
	}

	id := chi.URLParam(r, "id")
	if err := e.employeeService.SetStatus(r.Context(), id, status); err != nil {
		slog.Error("SetEmployeeStatus service error", "error", err)
		response.HandleError(w, err)
		return
	}

	recordAudit(r.Context(), r, e.auditRepo, audit.ActionStatus, "employee", id, nil, req)
	response.SuccessWithMessage(w, "Employee status updated", nil)
}

// Delete implements EmployeeHandler. Deletion is soft: the employee is
// marked TERMINATED and the record stays for payroll history.
func (e *EmployeeHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := e.employeeService.SetStatus(r.Context(), id, domain.StatusTerminated); err != nil {
		slog.Error("DeleteEmployee service error", "error", err)
		response.HandleError(w, err)
		return
	}

	recordAudit(r.Context(), r, e.auditRepo, audit.ActionDelete, "employee", id, nil, nil)
	response.SuccessWithMessage(w, "Employee removed", nil)
}
