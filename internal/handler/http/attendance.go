package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	domain "github.com/peoplehub/hrms-backend-go/internal/domain/attendance"
	"github.com/peoplehub/hrms-backend-go/internal/domain/audit"
	"github.com/peoplehub/hrms-backend-go/internal/handler/http/response"
	"github.com/peoplehub/hrms-backend-go/internal/pkg/tenantctx"
)

type AttendanceHandler interface {
	CheckIn(w http.ResponseWriter, r *http.Request)
	CheckOut(w http.ResponseWriter, r *http.Request)
	GetToday(w http.ResponseWriter, r *http.Request)
	GetMyAttendance(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService domain.AttendanceService
	auditRepo         audit.AuditRepository
}

func NewAttendanceHandler(attendanceService domain.AttendanceService, auditRepo audit.AuditRepository) AttendanceHandler {
	return &AttendanceHandlerImpl{
		attendanceService: attendanceService,
		auditRepo:         auditRepo,
	}
}

// resolveEmployeeID defaults an empty employee_id to the caller's own
// employee record. Users without one must name an employee explicitly.
func resolveEmployeeID(r *http.Request, requested string) (string, bool) {
	if requested != "" {
		return requested, true
	}
	actor, err := tenantctx.ActorFromContext(r.Context())
	if err != nil || actor.EmployeeID == nil {
		return "", false
	}
	return *actor.EmployeeID, true
}

// CheckIn implements AttendanceHandler.
func (a *AttendanceHandlerImpl) CheckIn(w http.ResponseWriter, r *http.Request) {
	var req domain.CheckInRequest

	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			slog.Error("CheckIn decode error", "error", err)
			response.BadRequest(w, "Invalid request format", nil)
			return
		}
	}

	employeeID, ok := resolveEmployeeID(r, req.EmployeeID)
	if !ok {
		response.BadRequest(w, "No employee record linked to this account", nil)
		return
	}
	req.EmployeeID = employeeID

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := a.attendanceService.CheckIn(r.Context(), req)
	if err != nil {
		slog.Warn("CheckIn failed", "employee_id", req.EmployeeID, "error", err)
		response.HandleError(w, err)
		return
	}

	recordAudit(r.Context(), r, a.auditRepo, audit.ActionCreate, "attendance", result.ID, nil, result)
	response.Created(w, "Checked in", result)
}

// CheckOut implements AttendanceHandler.
func (a *AttendanceHandlerImpl) CheckOut(w http.ResponseWriter, r *http.Request) {
	var req domain.CheckOutRequest

	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			slog.Error("CheckOut decode error", "error", err)
			response.BadRequest(w, "Invalid request format", nil)
			return
		}
	}

	employeeID, ok := resolveEmployeeID(r, req.EmployeeID)
	if !ok {
		response.BadRequest(w, "No employee record linked to this account", nil)
		return
	}
	req.EmployeeID = employeeID

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := a.attendanceService.CheckOut(r.Context(), req)
	if err != nil {
		slog.Warn("CheckOut failed", "employee_id", req.EmployeeID, "error", err)
		response.HandleError(w, err)
		return
	}

	recordAudit(r.Context(), r, a.auditRepo, audit.ActionUpdate, "attendance", result.ID, nil, result)
	response.SuccessWithMessage(w, "Checked out", result)
}

// GetToday implements AttendanceHandler. The employee comes from the
// employeeId path segment when present, defaulting to the caller.
func (a *AttendanceHandlerImpl) GetToday(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := resolveEmployeeID(r, chi.URLParam(r, "employeeId"))
	if !ok {
		response.BadRequest(w, "No employee record linked to this account", nil)
		return
	}

	result, err := a.attendanceService.GetToday(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetMyAttendance implements AttendanceHandler.
func (a *AttendanceHandlerImpl) GetMyAttendance(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := resolveEmployeeID(r, r.URL.Query().Get("employee_id"))
	if !ok {
		response.BadRequest(w, "No employee record linked to this account", nil)
		return
	}

	result, err := a.attendanceService.GetMyAttendance(r.Context(), employeeID, parseAttendanceFilter(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Data, listMeta(result.Page, result.Limit, result.TotalCount))
}

// List implements AttendanceHandler.
func (a *AttendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := a.attendanceService.ListAttendance(r.Context(), parseAttendanceFilter(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Data, listMeta(result.Page, result.Limit, result.TotalCount))
}

func parseAttendanceFilter(r *http.Request) domain.ListFilter {
	var filter domain.ListFilter
	filter.Page, filter.Limit = parsePagination(r)

	if from := r.URL.Query().Get("from"); from != "" {
		filter.From = &from
	}
	if to := r.URL.Query().Get("to"); to != "" {
		filter.To = &to
	}
	if s := r.URL.Query().Get("status"); s != "" {
		status := domain.Status(s)
		filter.Status = &status
	}

	return filter
}
