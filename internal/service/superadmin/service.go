package superadmin

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/peoplehub/hrms-backend-go/internal/domain/audit"
	"github.com/peoplehub/hrms-backend-go/internal/domain/auth"
	"github.com/peoplehub/hrms-backend-go/internal/domain/emailtemplate"
	"github.com/peoplehub/hrms-backend-go/internal/domain/superadmin"
	"github.com/peoplehub/hrms-backend-go/internal/domain/tenant"
	"github.com/peoplehub/hrms-backend-go/internal/domain/user"
	"github.com/peoplehub/hrms-backend-go/internal/pkg/email"
	"github.com/peoplehub/hrms-backend-go/internal/pkg/jwt"
)

// SuperAdminService is the platform operations plane: its own auth, the
// dashboard, tenant lifecycle, audit log access and email template
// management.
type SuperAdminService interface {
	Login(ctx context.Context, req superadmin.LoginRequest) (*superadmin.LoginResponse, error)
	Refresh(ctx context.Context, req superadmin.RefreshRequest) (*superadmin.TokenResponse, error)
	Logout(ctx context.Context, req superadmin.RefreshRequest) error

	GetDashboard(ctx context.Context) (*superadmin.DashboardStats, error)

	ListTenants(ctx context.Context, status *tenant.Status, page, limit int) ([]tenant.TenantResponse, int64, error)
	UpdateTenantStatus(ctx context.Context, id string, status tenant.Status) (tenant.TenantResponse, error)

	ListAuditLogs(ctx context.Context, filter audit.Filter) (*audit.ListResponse, error)
	GetAuditStats(ctx context.Context) (*audit.Stats, error)
	GetAuditFilters(ctx context.Context) (*audit.Filters, error)

	CreateEmailTemplate(ctx context.Context, req emailtemplate.CreateTemplateRequest) (*emailtemplate.TemplateResponse, error)
	GetEmailTemplate(ctx context.Context, id string) (*emailtemplate.TemplateResponse, error)
	ListEmailTemplates(ctx context.Context) ([]*emailtemplate.TemplateResponse, error)
	UpdateEmailTemplate(ctx context.Context, id string, req emailtemplate.UpdateTemplateRequest) (*emailtemplate.TemplateResponse, error)
	DeleteEmailTemplate(ctx context.Context, id string) error
	TestSendEmailTemplate(ctx context.Context, id string, req emailtemplate.TestSendRequest) error
	ListEmailLogs(ctx context.Context, filter emailtemplate.LogFilter) (*emailtemplate.LogListResponse, error)
	GetEmailLogStats(ctx context.Context) (*emailtemplate.LogStats, error)
}

type SuperAdminServiceImpl struct {
	jwtService   jwt.Service
	adminRepo    superadmin.SuperAdminRepository
	statsRepo    superadmin.StatsRepository
	tenantRepo   tenant.TenantRepository
	auditRepo    audit.AuditRepository
	templateRepo emailtemplate.TemplateRepository
	logRepo      emailtemplate.LogRepository
	tokenRepo    auth.RefreshTokenRepository
	emailService email.EmailService
}

func NewSuperAdminService(
	jwtService jwt.Service,
	adminRepo superadmin.SuperAdminRepository,
	statsRepo superadmin.StatsRepository,
	tenantRepo tenant.TenantRepository,
	auditRepo audit.AuditRepository,
	templateRepo emailtemplate.TemplateRepository,
	logRepo emailtemplate.LogRepository,
	tokenRepo auth.RefreshTokenRepository,
	emailService email.EmailService,
) SuperAdminService {
	return &SuperAdminServiceImpl{
		jwtService:   jwtService,
		adminRepo:    adminRepo,
		statsRepo:    statsRepo,
		tenantRepo:   tenantRepo,
		auditRepo:    auditRepo,
		templateRepo: templateRepo,
		logRepo:      logRepo,
		tokenRepo:    tokenRepo,
		emailService: emailService,
	}
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// Login implements SuperAdminService.
func (s *SuperAdminServiceImpl) Login(ctx context.Context, req superadmin.LoginRequest) (*superadmin.LoginResponse, error) {
	if errs := req.Validate(); len(errs) > 0 {
		return nil, errs
	}

	admin, err := s.adminRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if err == superadmin.ErrSuperAdminNotFound {
			return nil, superadmin.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)); err != nil {
		return nil, superadmin.ErrInvalidCredentials
	}

	tokens, err := s.issueTokens(ctx, admin)
	if err != nil {
		return nil, err
	}

	return &superadmin.LoginResponse{
		Admin:  admin.ToResponse(),
		Tokens: tokens,
	}, nil
}

// Refresh implements SuperAdminService.
func (s *SuperAdminServiceImpl) Refresh(ctx context.Context, req superadmin.RefreshRequest) (*superadmin.TokenResponse, error) {
	if errs := req.Validate(); len(errs) > 0 {
		return nil, errs
	}

	subjectID, _, err := s.jwtService.ParseRefreshToken(req.RefreshToken)
	if err != nil {
		return nil, auth.ErrInvalidToken
	}

	tokenHash := hashToken(req.RefreshToken)
	active, err := s.tokenRepo.IsActive(ctx, auth.SubjectKindSuperAdmin, subjectID, tokenHash)
	if err != nil {
		return nil, err
	}
	if !active {
		return nil, auth.ErrRefreshTokenRevoked
	}

	admin, err := s.adminRepo.GetByID(ctx, subjectID)
	if err != nil {
		return nil, err
	}

	if err := s.tokenRepo.Revoke(ctx, tokenHash); err != nil {
		return nil, err
	}
	return s.issueTokens(ctx, admin)
}

// Logout implements SuperAdminService.
func (s *SuperAdminServiceImpl) Logout(ctx context.Context, req superadmin.RefreshRequest) error {
	if errs := req.Validate(); len(errs) > 0 {
		return errs
	}
	return s.tokenRepo.Revoke(ctx, hashToken(req.RefreshToken))
}

func (s *SuperAdminServiceImpl) issueTokens(ctx context.Context, admin *superadmin.SuperAdmin) (*superadmin.TokenResponse, error) {
	accessToken, accessExp, err := s.jwtService.GenerateAccessToken(admin.ID, admin.Email, nil, nil, user.RoleSuperAdmin)
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	refreshToken, refreshExp, err := s.jwtService.GenerateRefreshToken(admin.ID, user.RoleSuperAdmin)
	if err != nil {
		return nil, fmt.Errorf("generate refresh token: %w", err)
	}

	if err := s.tokenRepo.Save(ctx, auth.SubjectKindSuperAdmin, admin.ID, hashToken(refreshToken), refreshExp); err != nil {
		return nil, fmt.Errorf("save refresh token: %w", err)
	}

	return &superadmin.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    accessExp,
	}, nil
}

// GetDashboard implements SuperAdminService.
func (s *SuperAdminServiceImpl) GetDashboard(ctx context.Context) (*superadmin.DashboardStats, error) {
	tenantCounts, err := s.tenantRepo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}

	stats := &superadmin.DashboardStats{
		TenantsByStatus: make(map[string]int64, len(tenantCounts)),
		GeneratedAt:     time.Now().UTC(),
	}
	for status, count := range tenantCounts {
		stats.TenantsByStatus[string(status)] = count
		stats.TotalTenants += count
	}

	if stats.TotalEmployees, err = s.statsRepo.CountEmployees(ctx); err != nil {
		return nil, err
	}
	if stats.TotalUsers, err = s.statsRepo.CountUsers(ctx); err != nil {
		return nil, err
	}

	recent, _, err := s.tenantRepo.List(ctx, nil, 1, 5)
	if err != nil {
		return nil, err
	}
	for _, t := range recent {
		resp := tenant.ToResponse(t)
		stats.RecentTenants = append(stats.RecentTenants, &resp)
	}

	emailStats, err := s.logRepo.GetStats(ctx)
	if err != nil {
		return nil, err
	}
	stats.EmailsSentToday = emailStats.SentToday
	stats.EmailsFailedToday = emailStats.FailedToday

	return stats, nil
}

// ListTenants implements SuperAdminService.
func (s *SuperAdminServiceImpl) ListTenants(ctx context.Context, status *tenant.Status, page, limit int) ([]tenant.TenantResponse, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	tenants, total, err := s.tenantRepo.List(ctx, status, page, limit)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]tenant.TenantResponse, 0, len(tenants))
	for _, t := range tenants {
		responses = append(responses, tenant.ToResponse(t))
	}
	return responses, total, nil
}

// UpdateTenantStatus implements SuperAdminService.
func (s *SuperAdminServiceImpl) UpdateTenantStatus(ctx context.Context, id string, status tenant.Status) (tenant.TenantResponse, error) {
	switch status {
	case tenant.StatusActive, tenant.StatusSuspended, tenant.StatusInactive:
	default:
		return tenant.TenantResponse{}, tenant.ErrInvalidStatus
	}

	if err := s.tenantRepo.UpdateStatus(ctx, id, status); err != nil {
		return tenant.TenantResponse{}, err
	}
	updated, err := s.tenantRepo.GetByID(ctx, id)
	if err != nil {
		return tenant.TenantResponse{}, err
	}
	return tenant.ToResponse(updated), nil
}

// ListAuditLogs implements SuperAdminService.
func (s *SuperAdminServiceImpl) ListAuditLogs(ctx context.Context, filter audit.Filter) (*audit.ListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}

	entries, total, err := s.auditRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]*audit.EntryResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, entry.ToResponse())
	}
	return &audit.ListResponse{
		Entries: responses,
		Total:   total,
		Page:    filter.Page,
		Limit:   filter.Limit,
	}, nil
}

// GetAuditStats implements SuperAdminService.
func (s *SuperAdminServiceImpl) GetAuditStats(ctx context.Context) (*audit.Stats, error) {
	return s.auditRepo.GetStats(ctx)
}

// GetAuditFilters implements SuperAdminService.
func (s *SuperAdminServiceImpl) GetAuditFilters(ctx context.Context) (*audit.Filters, error) {
	return s.auditRepo.GetFilters(ctx)
}

// CreateEmailTemplate implements SuperAdminService.
func (s *SuperAdminServiceImpl) CreateEmailTemplate(ctx context.Context, req emailtemplate.CreateTemplateRequest) (*emailtemplate.TemplateResponse, error) {
	if errs := req.Validate(); len(errs) > 0 {
		return nil, errs
	}

	tpl := &emailtemplate.EmailTemplate{
		Name:      req.Name,
		Subject:   req.Subject,
		Body:      req.Body,
		Variables: req.Variables,
		IsActive:  true,
	}
	if req.IsActive != nil {
		tpl.IsActive = *req.IsActive
	}

	if err := s.templateRepo.Create(ctx, tpl); err != nil {
		return nil, err
	}
	return tpl.ToResponse(), nil
}

// GetEmailTemplate implements SuperAdminService.
func (s *SuperAdminServiceImpl) GetEmailTemplate(ctx context.Context, id string) (*emailtemplate.TemplateResponse, error) {
	tpl, err := s.templateRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return tpl.ToResponse(), nil
}

// ListEmailTemplates implements SuperAdminService.
func (s *SuperAdminServiceImpl) ListEmailTemplates(ctx context.Context) ([]*emailtemplate.TemplateResponse, error) {
	templates, err := s.templateRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]*emailtemplate.TemplateResponse, 0, len(templates))
	for _, tpl := range templates {
		responses = append(responses, tpl.ToResponse())
	}
	return responses, nil
}

// UpdateEmailTemplate implements SuperAdminService.
func (s *SuperAdminServiceImpl) UpdateEmailTemplate(ctx context.Context, id string, req emailtemplate.UpdateTemplateRequest) (*emailtemplate.TemplateResponse, error) {
	if errs := req.Validate(); len(errs) > 0 {
		return nil, errs
	}

	tpl, err := s.templateRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Subject != nil {
		tpl.Subject = *req.Subject
	}
	if req.Body != nil {
		tpl.Body = *req.Body
	}
	if req.Variables != nil {
		tpl.Variables = req.Variables
	}
	if req.IsActive != nil {
		tpl.IsActive = *req.IsActive
	}

	if err := s.templateRepo.Update(ctx, tpl); err != nil {
		return nil, err
	}
	return tpl.ToResponse(), nil
}

// DeleteEmailTemplate implements SuperAdminService.
func (s *SuperAdminServiceImpl) DeleteEmailTemplate(ctx context.Context, id string) error {
	return s.templateRepo.Delete(ctx, id)
}

// TestSendEmailTemplate implements SuperAdminService. Inactive templates can
// be test-sent; only production sends require an active template.
func (s *SuperAdminServiceImpl) TestSendEmailTemplate(ctx context.Context, id string, req emailtemplate.TestSendRequest) error {
	if errs := req.Validate(); len(errs) > 0 {
		return errs
	}

	tpl, err := s.templateRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	return s.emailService.SendTemplate(ctx, tpl, req.Recipient, req.Data)
}

// ListEmailLogs implements SuperAdminService.
func (s *SuperAdminServiceImpl) ListEmailLogs(ctx context.Context, filter emailtemplate.LogFilter) (*emailtemplate.LogListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}

	logs, total, err := s.logRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]*emailtemplate.LogResponse, 0, len(logs))
	for _, log := range logs {
		responses = append(responses, log.ToResponse())
	}
	return &emailtemplate.LogListResponse{
		Logs:  responses,
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}, nil
}

// GetEmailLogStats implements SuperAdminService.
func (s *SuperAdminServiceImpl) GetEmailLogStats(ctx context.Context) (*emailtemplate.LogStats, error) {
	return s.logRepo.GetStats(ctx)
}
