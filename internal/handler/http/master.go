package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/peoplehub/hrms-backend-go/internal/domain/audit"
	"github.com/peoplehub/hrms-backend-go/internal/domain/department"
	"github.com/peoplehub/hrms-backend-go/internal/domain/designation"
	"github.com/peoplehub/hrms-backend-go/internal/domain/organisation"
	"github.com/peoplehub/hrms-backend-go/internal/handler/http/response"
	"github.com/peoplehub/hrms-backend-go/internal/service/master"
)

// MasterHandler serves the organisation structure: organisations,
// departments and designations.
type MasterHandler interface {
	CreateOrganisation(w http.ResponseWriter, r *http.Request)
	GetOrganisation(w http.ResponseWriter, r *http.Request)
	ListOrganisations(w http.ResponseWriter, r *http.Request)
	UpdateOrganisation(w http.ResponseWriter, r *http.Request)
	SetOrganisationStatus(w http.ResponseWriter, r *http.Request)
	DeleteOrganisation(w http.ResponseWriter, r *http.Request)

	CreateDepartment(w http.ResponseWriter, r *http.Request)
	GetDepartment(w http.ResponseWriter, r *http.Request)
	ListDepartments(w http.ResponseWriter, r *http.Request)
	UpdateDepartment(w http.ResponseWriter, r *http.Request)
	SetDepartmentStatus(w http.ResponseWriter, r *http.Request)
	DeleteDepartment(w http.ResponseWriter, r *http.Request)

	CreateDesignation(w http.ResponseWriter, r *http.Request)
	GetDesignation(w http.ResponseWriter, r *http.Request)
	ListDesignations(w http.ResponseWriter, r *http.Request)
	UpdateDesignation(w http.ResponseWriter, r *http.Request)
	SetDesignationStatus(w http.ResponseWriter, r *http.Request)
	DeleteDesignation(w http.ResponseWriter, r *http.Request)
}

type MasterHandlerImpl struct {
	masterService master.MasterService
	auditRepo     audit.AuditRepository
}

func NewMasterHandler(masterService master.MasterService, auditRepo audit.AuditRepository) MasterHandler {
	return &MasterHandlerImpl{
		masterService: masterService,
		auditRepo:     auditRepo,
	}
}

type setStatusRequest struct {
	Status string `json:"status"`
}

func parsePagination(r *http.Request) (page, limit int) {
	page, limit = 1, 20
	if p := r.URL.Query().Get("page"); p != "" {
		if pageNum, err := strconv.Atoi(p); err == nil && pageNum > 0 {
			page = pageNum
		}
	}
	if l := r.URL.Query().Get("limit"); l != "" {
		if limitNum, err := strconv.Atoi(l); err == nil && limitNum > 0 {
			limit = limitNum
		}
	}
	return page, limit
}

func listMeta(page, limit int, total int64) *response.Meta {
	totalPages := 0
	if limit > 0 {
		totalPages = int((total + int64(limit) - 1) / int64(limit))
	}
	return &response.Meta{
		Page:       page,
		Limit:      limit,
		TotalItems: total,
		TotalPages: totalPages,
	}
}

// CreateOrganisation implements MasterHandler.
func (m *MasterHandlerImpl) CreateOrganisation(w http.ResponseWriter, r *http.Request) {
	var req organisation.CreateOrganisationRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateOrganisation decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := m.masterService.CreateOrganisation(r.Context(), req)
	if err != nil {
		slog.Error("CreateOrganisation service error", "error", err)
		response.HandleError(w, err)
		return
	}

	recordAudit(r.Context(), r, m.auditRepo, audit.ActionCreate, "organisation", result.ID, nil, result)
	response.Created(w, "Organisation created successfully", result)
}

// GetOrganisation implements MasterHandler.
func (m *MasterHandlerImpl) GetOrganisation(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := m.masterService.GetOrganisation(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListOrganisations implements MasterHandler.
func (m *MasterHandlerImpl) ListOrganisations(w http.ResponseWriter, r *http.Request) {
	page, limit := parsePagination(r)

	results, total, err := m.masterService.ListOrganisations(r.Context(), page, limit)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, results, listMeta(page, limit, total))
}

// UpdateOrganisation implements MasterHandler.
func (m *MasterHandlerImpl) UpdateOrganisation(w http.ResponseWriter, r *http.Request) {
	var req organisation.UpdateOrganisationRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateOrganisation decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	before, err := m.masterService.GetOrganisation(r.Context(), req.ID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := m.masterService.UpdateOrganisation(r.Context(), req)
	if err != nil {
		slog.Error("UpdateOrganisation service error", "error", err)
		response.HandleError(w, err)
		return
	}

	recordAudit(r.Context(), r, m.auditRepo, audit.ActionUpdate, "organisation", result.ID, before, result)
	response.SuccessWithMessage(w, "Organisation updated successfully", result)
}

// SetOrganisationStatus implements MasterHandler.
func (m *MasterHandlerImpl) SetOrganisationStatus(w http.ResponseWriter, r *http.Request) {
	var req setStatusRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	status := organisation.Status(req.Status)
	if status != organisation.StatusActive && status != organisation.StatusInactive {
		response.BadRequest(w, "Status must be one of ACTIVE, INACTIVE", nil)
		return
	}

	id := chi.URLParam(r, "id")
	if err := m.masterService.SetOrganisationStatus(r.Context(), id, status); err != nil {
		slog.Error("SetOrganisationStatus service error", "error", err)
		response.HandleError(w, err)
		return
	}

	recordAudit(r.Context(), r, m.auditRepo, audit.ActionStatus, "organisation", id, nil, req)
	response.SuccessWithMessage(w, "Organisation status updated", nil)
}

// DeleteOrganisation implements MasterHandler. Deletion is soft: the
// organisation is switched to INACTIVE and stays queryable.
func (m *MasterHandlerImpl) DeleteOrganisation(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := m.masterService.SetOrganisationStatus(r.Context(), id, organisation.StatusInactive); err != nil {
		slog.Error("DeleteOrganisation service error", "error", err)
		response.HandleError(w, err)
		return
	}

	recordAudit(r.Context(), r, m.auditRepo, audit.ActionDelete, "organisation", id, nil, nil)
	response.SuccessWithMessage(w, "Organisation deactivated", nil)
}

// CreateDepartment implements MasterHandler.
func (m *MasterHandlerImpl) CreateDepartment(w http.ResponseWriter, r *http.Request) {
	var req department.CreateDepartmentRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateDepartment decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := m.masterService.CreateDepartment(r.Context(), req)
	if err != nil {
		slog.Error("CreateDepartment service error", "error", err)
		response.HandleError(w, err)
		return
	}

	recordAudit(r.Context(), r, m.auditRepo, audit.ActionCreate, "department", result.ID, nil, result)
	response.Created(w, "Department created successfully", result)
}

// GetDepartment implements MasterHandler.
func (m *MasterHandlerImpl) GetDepartment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := m.masterService.GetDepartment(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListDepartments implements MasterHandler.
func (m *MasterHandlerImpl) ListDepartments(w http.ResponseWriter, r *http.Request) {
	page, limit := parsePagination(r)

	var organisationID *string
	if v := r.URL.Query().Get("organisation_id"); v != "" {
		organisationID = &v
	}

	results, total, err := m.masterService.ListDepartments(r.Context(), organisationID, page, limit)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, results, listMeta(page, limit, total))
}

// UpdateDepartment implements MasterHandler.
func (m *MasterHandlerImpl) UpdateDepartment(w http.ResponseWriter, r *http.Request) {
	var req department.UpdateDepartmentRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateDepartment decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := m.masterService.UpdateDepartment(r.Context(), req)
	if err != nil {
		slog.Error("UpdateDepartment service error", "error", err)
		response.HandleError(w, err)
		return
	}

	recordAudit(r.Context(), r, m.auditRepo, audit.ActionUpdate, "department", result.ID, nil, result)
	response.SuccessWithMessage(w, "Department updated successfully", result)
}

// SetDepartmentStatus implements MasterHandler.
func (m *MasterHandlerImpl) SetDepartmentStatus(w http.ResponseWriter, r *http.Request) {
	var req setStatusRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	status := department.Status(req.Status)
	if status != department.StatusActive && status != department.StatusInactive {
		response.BadRequest(w, "Status must be one of ACTIVE, INACTIVE", nil)
		return
	}

	id := chi.URLParam(r, "id")
	if err := m.masterService.SetDepartmentStatus(r.Context(), id, status); err != nil {
		slog.Error("SetDepartmentStatus service error", "error", err)
		response.HandleError(w, err)
		return
	}

	recordAudit(r.Context(), r, m.auditRepo, audit.ActionStatus, "department", id, nil, req)
	response.SuccessWithMessage(w, "Department status updated", nil)
}

// DeleteDepartment implements MasterHandler.
func (m *MasterHandlerImpl) DeleteDepartment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := m.masterService.SetDepartmentStatus(r.Context(), id, department.StatusInactive); err != nil {
		slog.Error("DeleteDepartment service error", "error", err)
		response.HandleError(w, err)
		return
	}

	recordAudit(r.Context(), r, m.auditRepo, audit.ActionDelete, "department", id, nil, nil)
	response.SuccessWithMessage(w, "Department deactivated", nil)
}

// CreateDesignation implements MasterHandler.
func (m *MasterHandlerImpl) CreateDesignation(w http.ResponseWriter, r *http.Request) {
	var req designation.CreateDesignationRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateDesignation decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := m.masterService.CreateDesignation(r.Context(), req)
	if err != nil {
		slog.Error("CreateDesignation service error", "error", err)
		response.HandleError(w, err)
		return
	}

	recordAudit(r.Context(), r, m.auditRepo, audit.ActionCreate, "designation", result.ID, nil, result)
	response.Created(w, "Designation created successfully", result)
}

// GetDesignation implements MasterHandler.
func (m *MasterHandlerImpl) GetDesignation(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := m.masterService.GetDesignation(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListDesignations implements MasterHandler.
func (m *MasterHandlerImpl) ListDesignations(w http.ResponseWriter, r *http.Request) {
	page, limit := parsePagination(r)

	var departmentID *string
	if v := r.URL.Query().Get("department_id"); v != "" {
		departmentID = &v
	}

	results, total, err := m.masterService.ListDesignations(r.Context(), departmentID, page, limit)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, results, listMeta(page, limit, total))
}

// UpdateDesignation implements MasterHandler.
func (m *MasterHandlerImpl) UpdateDesignation(w http.ResponseWriter, r *http.Request) {
	var req designation.UpdateDesignationRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateDesignation decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := m.masterService.UpdateDesignation(r.Context(), req)
	if err != nil {
		slog.Error("UpdateDesignation service error", "error", err)
		response.HandleError(w, err)
		return
	}

	recordAudit(r.Context(), r, m.auditRepo, audit.ActionUpdate, "designation", result.ID, nil, result)
	response.SuccessWithMessage(w, "Designation updated successfully", result)
}

// SetDesignationStatus implements MasterHandler.
func (m *MasterHandlerImpl) SetDesignationStatus(w http.ResponseWriter, r *http.Request) {
	var req setStatusRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	status := designation.Status(req.Status)
	if status != designation.StatusActive && status != designation.StatusInactive {
		response.BadRequest(w, "Status must be one of ACTIVE, INACTIVE", nil)
		return
	}

	id := chi.URLParam(r, "id")
	if err := m.masterService.SetDesignationStatus(r.Context(), id, status); err != nil {
		slog.Error("SetDesignationStatus service error", "error", err)
		response.HandleError(w, err)
		return
	}

	recordAudit(r.Context(), r, m.auditRepo, audit.ActionStatus, "designation", id, nil, req)
	response.SuccessWithMessage(w, "Designation status updated", nil)
}

// DeleteDesignation implements MasterHandler.
func (m *MasterHandlerImpl) DeleteDesignation(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := m.masterService.SetDesignationStatus(r.Context(), id, designation.StatusInactive); err != nil {
		slog.Error("DeleteDesignation service error", "error", err)
		response.HandleError(w, err)
		return
	}

	recordAudit(r.Context(), r, m.auditRepo, audit.ActionDelete, "designation", id, nil, nil)
	response.SuccessWithMessage(w, "Designation deactivated", nil)
}
