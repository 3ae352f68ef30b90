package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/peoplehub/hrms-backend-go/internal/domain/audit"
	"github.com/peoplehub/hrms-backend-go/internal/domain/emailtemplate"
	domain "github.com/peoplehub/hrms-backend-go/internal/domain/superadmin"
	"github.com/peoplehub/hrms-backend-go/internal/domain/tenant"
	"github.com/peoplehub/hrms-backend-go/internal/handler/http/response"
	"github.com/peoplehub/hrms-backend-go/internal/service/superadmin"
)

type SuperAdminHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
	RefreshToken(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)

	GetDashboard(w http.ResponseWriter, r *http.Request)
	ListTenants(w http.ResponseWriter, r *http.Request)
	UpdateTenantStatus(w http.ResponseWriter, r *http.Request)

	ListAuditLogs(w http.ResponseWriter, r *http.Request)
	GetAuditStats(w http.ResponseWriter, r *http.Request)
	GetAuditFilters(w http.ResponseWriter, r *http.Request)

	CreateEmailTemplate(w http.ResponseWriter, r *http.Request)
	GetEmailTemplate(w http.ResponseWriter, r *http.Request)
	ListEmailTemplates(w http.ResponseWriter, r *http.Request)
	UpdateEmailTemplate(w http.ResponseWriter, r *http.Request)
	DeleteEmailTemplate(w http.ResponseWriter, r *http.Request)
	TestSendEmailTemplate(w http.ResponseWriter, r *http.Request)
	ListEmailLogs(w http.ResponseWriter, r *http.Request)
	GetEmailLogStats(w http.ResponseWriter, r *http.Request)
}

type SuperAdminHandlerImpl struct {
	superAdminService superadmin.SuperAdminService
	auditRepo         audit.AuditRepository
}

func NewSuperAdminHandler(superAdminService superadmin.SuperAdminService, auditRepo audit.AuditRepository) SuperAdminHandler {
	return &SuperAdminHandlerImpl{
		superAdminService: superAdminService,
		auditRepo:         auditRepo,
	}
}

// Login implements SuperAdminHandler.
func (s *SuperAdminHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var loginReq domain.LoginRequest

	if err := json.NewDecoder(r.Body).Decode(&loginReq); err != nil {
		slog.Error("SuperAdmin login decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if errs := loginReq.Validate(); len(errs) > 0 {
		response.ValidationError(w, errs.ToMap())
		return
	}

	result, err := s.superAdminService.Login(r.Context(), loginReq)
	if err != nil {
		slog.Warn("SuperAdmin login failed", "email", loginReq.Email, "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Login successful", result)
}

// RefreshToken implements SuperAdminHandler.
func (s *SuperAdminHandlerImpl) RefreshToken(w http.ResponseWriter, r *http.Request) {
	var refreshReq domain.RefreshRequest

	if err := json.NewDecoder(r.Body).Decode(&refreshReq); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if errs := refreshReq.Validate(); len(errs) > 0 {
		response.ValidationError(w, errs.ToMap())
		return
	}

	result, err := s.superAdminService.Refresh(r.Context(), refreshReq)
	if err != nil {
		slog.Warn("SuperAdmin refresh failed", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Logout implements SuperAdminHandler.
func (s *SuperAdminHandlerImpl) Logout(w http.ResponseWriter, r *http.Request) {
	var logoutReq domain.RefreshRequest

	if err := json.NewDecoder(r.Body).Decode(&logoutReq); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if errs := logoutReq.Validate(); len(errs) > 0 {
		response.ValidationError(w, errs.ToMap())
		return
	}

	if err := s.superAdminService.Logout(r.Context(), logoutReq); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Logged out successfully", nil)
}

// GetDashboard implements SuperAdminHandler.
func (s *SuperAdminHandlerImpl) GetDashboard(w http.ResponseWriter, r *http.Request) {
	result, err := s.superAdminService.GetDashboard(r.Context())
	if err != nil {
		slog.Error("GetDashboard service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListTenants implements SuperAdminHandler.
func (s *SuperAdminHandlerImpl) ListTenants(w http.ResponseWriter, r *http.Request) {
	page, limit := parsePagination(r)

	var status *tenant.Status
	if v := r.URL.Query().Get("status"); v != "" {
		st := tenant.Status(v)
		status = &st
	}

	results, total, err := s.superAdminService.ListTenants(r.Context(), status, page, limit)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, results, listMeta(page, limit, total))
}

// UpdateTenantStatus implements SuperAdminHandler.
func (s *SuperAdminHandlerImpl) UpdateTenantStatus(w http.ResponseWriter, r *http.Request) {
	var req setStatusRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	id := chi.URLParam(r, "id")
	result, err := s.superAdminService.UpdateTenantStatus(r.Context(), id, tenant.Status(req.Status))
	if err != nil {
		slog.Error("UpdateTenantStatus service error", "tenant_id", id, "error", err)
		response.HandleError(w, err)
		return
	}

	recordAudit(r.Context(), r, s.auditRepo, audit.ActionStatus, "tenant", id, nil, req)
	response.SuccessWithMessage(w, "Tenant status updated", result)
}

// ListAuditLogs implements SuperAdminHandler.
func (s *SuperAdminHandlerImpl) ListAuditLogs(w http.ResponseWriter, r *http.Request) {
	filter := audit.Filter{
		TenantID:   r.URL.Query().Get("tenant_id"),
		ActorID:    r.URL.Query().Get("actor_id"),
		Action:     r.URL.Query().Get("action"),
		EntityType: r.URL.Query().Get("entity_type"),
	}
	filter.Page, filter.Limit = parsePagination(r)

	if v := r.URL.Query().Get("from"); v != "" {
		if from, err := time.Parse("2006-01-02", v); err == nil {
			filter.From = &from
		}
	}
	if v := r.URL.Query().Get("to"); v != "" {
		if to, err := time.Parse("2006-01-02", v); err == nil {
			filter.To = &to
		}
	}

	result, err := s.superAdminService.ListAuditLogs(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Entries, listMeta(result.Page, result.Limit, result.Total))
}

// GetAuditStats implements SuperAdminHandler.
func (s *SuperAdminHandlerImpl) GetAuditStats(w http.ResponseWriter, r *http.Request) {
	result, err := s.superAdminService.GetAuditStats(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetAuditFilters implements SuperAdminHandler.
func (s *SuperAdminHandlerImpl) GetAuditFilters(w http.ResponseWriter, r *http.Request) {
	result, err := s.superAdminService.GetAuditFilters(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// CreateEmailTemplate implements SuperAdminHandler.
func (s *SuperAdminHandlerImpl) CreateEmailTemplate(w http.ResponseWriter, r *http.Request) {
	var req emailtemplate.CreateTemplateRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateEmailTemplate decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if errs := req.Validate(); len(errs) > 0 {
		response.ValidationError(w, errs.ToMap())
		return
	}

	result, err := s.superAdminService.CreateEmailTemplate(r.Context(), req)
	if err != nil {
		slog.Error("CreateEmailTemplate service error", "error", err)
		response.HandleError(w, err)
		return
	}

	recordAudit(r.Context(), r, s.auditRepo, audit.ActionCreate, "email_template", result.ID, nil, result)
	response.Created(w, "Email template created", result)
}

// GetEmailTemplate implements SuperAdminHandler.
func (s *SuperAdminHandlerImpl) GetEmailTemplate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := s.superAdminService.GetEmailTemplate(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListEmailTemplates implements SuperAdminHandler.
func (s *SuperAdminHandlerImpl) ListEmailTemplates(w http.ResponseWriter, r *http.Request) {
	results, err := s.superAdminService.ListEmailTemplates(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// UpdateEmailTemplate implements SuperAdminHandler.
func (s *SuperAdminHandlerImpl) UpdateEmailTemplate(w http.ResponseWriter, r *http.Request) {
	var req emailtemplate.UpdateTemplateRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateEmailTemplate decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if errs := req.Validate(); len(errs) > 0 {
		response.ValidationError(w, errs.ToMap())
		return
	}

	id := chi.URLParam(r, "id")
	result, err := s.superAdminService.UpdateEmailTemplate(r.Context(), id, req)
	if err != nil {
		slog.Error("UpdateEmailTemplate service error", "template_id", id, "error", err)
		response.HandleError(w, err)
		return
	}

	recordAudit(r.Context(), r, s.auditRepo, audit.ActionUpdate, "email_template", id, nil, result)
	response.SuccessWithMessage(w, "Email template updated", result)
}

// DeleteEmailTemplate implements SuperAdminHandler.
func (s *SuperAdminHandlerImpl) DeleteEmailTemplate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := s.superAdminService.DeleteEmailTemplate(r.Context(), id); err != nil {
		slog.Error("DeleteEmailTemplate service error", "template_id", id, "error", err)
		response.HandleError(w, err)
		return
	}

	recordAudit(r.Context(), r, s.auditRepo, audit.ActionDelete, "email_template", id, nil, nil)
	response.SuccessWithMessage(w, "Email template deleted", nil)
}

// TestSendEmailTemplate implements SuperAdminHandler.
func (s *SuperAdminHandlerImpl) TestSendEmailTemplate(w http.ResponseWriter, r *http.Request) {
	var req emailtemplate.TestSendRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if errs := req.Validate(); len(errs) > 0 {
		response.ValidationError(w, errs.ToMap())
		return
	}

	id := chi.URLParam(r, "id")
	if err := s.superAdminService.TestSendEmailTemplate(r.Context(), id, req); err != nil {
		slog.Error("TestSendEmailTemplate service error", "template_id", id, "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Test email sent", nil)
}

// ListEmailLogs implements SuperAdminHandler.
func (s *SuperAdminHandlerImpl) ListEmailLogs(w http.ResponseWriter, r *http.Request) {
	filter := emailtemplate.LogFilter{
		TemplateID: r.URL.Query().Get("template_id"),
		Recipient:  r.URL.Query().Get("recipient"),
	}
	filter.Page, filter.Limit = parsePagination(r)

	if v := r.URL.Query().Get("status"); v != "" {
		filter.Status = emailtemplate.LogStatus(v)
	}

	result, err := s.superAdminService.ListEmailLogs(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Logs, listMeta(result.Page, result.Limit, result.Total))
}

// GetEmailLogStats implements SuperAdminHandler.
func (s *SuperAdminHandlerImpl) GetEmailLogStats(w http.ResponseWriter, r *http.Request) {
	result, err := s.superAdminService.GetEmailLogStats(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
