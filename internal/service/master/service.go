// Package master implements the organisation structure services:
// organisations, their departments and the designations within them.
package master

import (
	"context"

	"github.com/peoplehub/hrms-backend-go/internal/config"
	"github.com/peoplehub/hrms-backend-go/internal/domain/department"
	"github.com/peoplehub/hrms-backend-go/internal/domain/designation"
	"github.com/peoplehub/hrms-backend-go/internal/domain/organisation"
	"github.com/peoplehub/hrms-backend-go/internal/domain/user"
	"github.com/peoplehub/hrms-backend-go/internal/pkg/tenantctx"
)

// MasterService covers CRUD over the tenant's organisation structure.
type MasterService interface {
	CreateOrganisation(ctx context.Context, req organisation.CreateOrganisationRequest) (organisation.OrganisationResponse, error)
	GetOrganisation(ctx context.Context, id string) (organisation.OrganisationResponse, error)
	ListOrganisations(ctx context.Context, page, limit int) ([]organisation.OrganisationResponse, int64, error)
	UpdateOrganisation(ctx context.Context, req organisation.UpdateOrganisationRequest) (organisation.OrganisationResponse, error)
	SetOrganisationStatus(ctx context.Context, id string, status organisation.Status) error

	CreateDepartment(ctx context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error)
	GetDepartment(ctx context.Context, id string) (department.DepartmentResponse, error)
	ListDepartments(ctx context.Context, organisationID *string, page, limit int) ([]department.DepartmentResponse, int64, error)
	UpdateDepartment(ctx context.Context, req department.UpdateDepartmentRequest) (department.DepartmentResponse, error)
	SetDepartmentStatus(ctx context.Context, id string, status department.Status) error

	CreateDesignation(ctx context.Context, req designation.CreateDesignationRequest) (designation.DesignationResponse, error)
	GetDesignation(ctx context.Context, id string) (designation.DesignationResponse, error)
	ListDesignations(ctx context.Context, departmentID *string, page, limit int) ([]designation.DesignationResponse, int64, error)
	UpdateDesignation(ctx context.Context, req designation.UpdateDesignationRequest) (designation.DesignationResponse, error)
	SetDesignationStatus(ctx context.Context, id string, status designation.Status) error
}

type MasterServiceImpl struct {
	cfg              *config.Config
	organisationRepo organisation.OrganisationRepository
	departmentRepo   department.DepartmentRepository
	designationRepo  designation.DesignationRepository
}

func NewMasterService(
	cfg *config.Config,
	organisationRepo organisation.OrganisationRepository,
	departmentRepo department.DepartmentRepository,
	designationRepo designation.DesignationRepository,
) MasterService {
	return &MasterServiceImpl{
		cfg:              cfg,
		organisationRepo: organisationRepo,
		departmentRepo:   departmentRepo,
		designationRepo:  designationRepo,
	}
}

func (s *MasterServiceImpl) authorize(ctx context.Context, permission user.Permission) (string, error) {
	actor, err := tenantctx.ActorFromContext(ctx)
	if err != nil {
		return "", err
	}
	tenantID, err := tenantctx.TenantID(ctx)
	if err != nil {
		return "", err
	}
	if !user.HasPermission(actor.Role, permission) {
		return "", user.ErrInsufficientPermissions
	}
	return tenantID, nil
}

func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return page, limit
}

// CreateOrganisation implements MasterService. New organisations start with
// the platform default shift policy.
func (s *MasterServiceImpl) CreateOrganisation(ctx context.Context, req organisation.CreateOrganisationRequest) (organisation.OrganisationResponse, error) {
	if err := req.Validate(); err != nil {
		return organisation.OrganisationResponse{}, err
	}
	tenantID, err := s.authorize(ctx, user.PermissionManageOrganisations)
	if err != nil {
		return organisation.OrganisationResponse{}, err
	}

	created, err := s.organisationRepo.Create(ctx, organisation.Organisation{
		TenantID:   tenantID,
		Name:       req.Name,
		Code:       req.Code,
		AddressL1:  req.AddressL1,
		AddressL2:  req.AddressL2,
		City:       req.City,
		State:      req.State,
		Country:    req.Country,
		PostalCode: req.PostalCode,
		Status:     organisation.StatusActive,

		ShiftStart:   s.cfg.Attendance.ShiftStart,
		GraceMinutes: s.cfg.Attendance.GraceMinutes,
		HalfDayHours: s.cfg.Attendance.HalfDayHours,
		FullDayHours: s.cfg.Attendance.FullDayHours,
	})
	if err != nil {
		return organisation.OrganisationResponse{}, err
	}
	return organisation.ToResponse(created), nil
}

// GetOrganisation implements MasterService.
func (s *MasterServiceImpl) GetOrganisation(ctx context.Context, id string) (organisation.OrganisationResponse, error) {
	tenantID, err := s.authorize(ctx, user.PermissionViewOrganisations)
	if err != nil {
		return organisation.OrganisationResponse{}, err
	}

	org, err := s.organisationRepo.GetByID(ctx, id, tenantID)
	if err != nil {
		return organisation.OrganisationResponse{}, err
	}
	return organisation.ToResponse(org), nil
}

// ListOrganisations implements MasterService.
func (s *MasterServiceImpl) ListOrganisations(ctx context.Context, page, limit int) ([]organisation.OrganisationResponse, int64, error) {
	tenantID, err := s.authorize(ctx, user.PermissionViewOrganisations)
	if err != nil {
		return nil, 0, err
	}

	page, limit = normalizePage(page, limit)
	orgs, total, err := s.organisationRepo.List(ctx, tenantID, page, limit)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]organisation.OrganisationResponse, 0, len(orgs))
	for _, org := range orgs {
		responses = append(responses, organisation.ToResponse(org))
	}
	return responses, total, nil
}

// UpdateOrganisation implements MasterService.
func (s *MasterServiceImpl) UpdateOrganisation(ctx context.Context, req organisation.UpdateOrganisationRequest) (organisation.OrganisationResponse, error) {
	if err := req.Validate(); err != nil {
		return organisation.OrganisationResponse{}, err
	}
	tenantID, err := s.authorize(ctx, user.PermissionManageOrganisations)
	if err != nil {
		return organisation.OrganisationResponse{}, err
	}

	if err := s.organisationRepo.Update(ctx, req, tenantID); err != nil {
		return organisation.OrganisationResponse{}, err
	}
	updated, err := s.organisationRepo.GetByID(ctx, req.ID, tenantID)
	if err != nil {
		return organisation.OrganisationResponse{}, err
	}
	return organisation.ToResponse(updated), nil
}

// SetOrganisationStatus implements MasterService.
func (s *MasterServiceImpl) SetOrganisationStatus(ctx context.Context, id string, status organisation.Status) error {
	tenantID, err := s.authorize(ctx, user.PermissionManageOrganisations)
	if err != nil {
		return err
	}
	return s.organisationRepo.SetStatus(ctx, id, tenantID, status)
}

// CreateDepartment implements MasterService.
func (s *MasterServiceImpl) CreateDepartment(ctx context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error) {
	if err := req.Validate(); err != nil {
		return department.DepartmentResponse{}, err
	}
	tenantID, err := s.authorize(ctx, user.PermissionManageDepartments)
	if err != nil {
		return department.DepartmentResponse{}, err
	}

	// Parent organisation must exist in this tenant.
	if _, err := s.organisationRepo.GetByID(ctx, req.OrganisationID, tenantID); err != nil {
		return department.DepartmentResponse{}, err
	}

	created, err := s.departmentRepo.Create(ctx, department.Department{
		TenantID:       tenantID,
		OrganisationID: req.OrganisationID,
		Name:           req.Name,
		Code:           req.Code,
		Description:    req.Description,
		Status:         department.StatusActive,
	})
	if err != nil {
		return department.DepartmentResponse{}, err
	}
	return department.ToResponse(created), nil
}

// GetDepartment implements MasterService.
func (s *MasterServiceImpl) GetDepartment(ctx context.Context, id string) (department.DepartmentResponse, error) {
	tenantID, err := s.authorize(ctx, user.PermissionViewOrganisations)
	if err != nil {
		return department.DepartmentResponse{}, err
	}

	dept, err := s.departmentRepo.GetByID(ctx, id, tenantID)
	if err != nil {
		return department.DepartmentResponse{}, err
	}
	return department.ToResponse(dept), nil
}

// ListDepartments implements MasterService.
func (s *MasterServiceImpl) ListDepartments(ctx context.Context, organisationID *string, page, limit int) ([]department.DepartmentResponse, int64, error) {
	tenantID, err := s.authorize(ctx, user.PermissionViewOrganisations)
	if err != nil {
		return nil, 0, err
	}

	var depts []department.Department
	var total int64
	if organisationID != nil {
		depts, err = s.departmentRepo.ListByOrganisation(ctx, *organisationID, tenantID)
		total = int64(len(depts))
	} else {
		page, limit = normalizePage(page, limit)
		depts, total, err = s.departmentRepo.List(ctx, tenantID, page, limit)
	}
	if err != nil {
		return nil, 0, err
	}

	responses := make([]department.DepartmentResponse, 0, len(depts))
	for _, dept := range depts {
		responses = append(responses, department.ToResponse(dept))
	}
	return responses, total, nil
}

// UpdateDepartment implements MasterService.
func (s *MasterServiceImpl) UpdateDepartment(ctx context.Context, req department.UpdateDepartmentRequest) (department.DepartmentResponse, error) {
	if err := req.Validate(); err != nil {
		return department.DepartmentResponse{}, err
	}
	tenantID, err := s.authorize(ctx, user.PermissionManageDepartments)
	if err != nil {
		return department.DepartmentResponse{}, err
	}

	if err := s.departmentRepo.Update(ctx, req, tenantID); err != nil {
		return department.DepartmentResponse{}, err
	}
	updated, err := s.departmentRepo.GetByID(ctx, req.ID, tenantID)
	if err != nil {
		return department.DepartmentResponse{}, err
	}
	return department.ToResponse(updated), nil
}

// SetDepartmentStatus implements MasterService.
func (s *MasterServiceImpl) SetDepartmentStatus(ctx context.Context, id string, status department.Status) error {
	tenantID, err := s.authorize(ctx, user.PermissionManageDepartments)
	if err != nil {
		return err
	}
	return s.departmentRepo.SetStatus(ctx, id, tenantID, status)
}

// CreateDesignation implements MasterService.
func (s *MasterServiceImpl) CreateDesignation(ctx context.Context, req designation.CreateDesignationRequest) (designation.DesignationResponse, error) {
	if err := req.Validate(); err != nil {
		return designation.DesignationResponse{}, err
	}
	tenantID, err := s.authorize(ctx, user.PermissionManageDesignations)
	if err != nil {
		return designation.DesignationResponse{}, err
	}

	// Parent department must exist in this tenant.
	if _, err := s.departmentRepo.GetByID(ctx, req.DepartmentID, tenantID); err != nil {
		return designation.DesignationResponse{}, err
	}

	created, err := s.designationRepo.Create(ctx, designation.Designation{
		TenantID:     tenantID,
		DepartmentID: req.DepartmentID,
		Name:         req.Name,
		Code:         req.Code,
		Level:        req.Level,
		Description:  req.Description,
		Status:       designation.StatusActive,
	})
	if err != nil {
		return designation.DesignationResponse{}, err
	}
	return designation.ToResponse(created), nil
}

// GetDesignation implements MasterService.
func (s *MasterServiceImpl) GetDesignation(ctx context.Context, id string) (designation.DesignationResponse, error) {
	tenantID, err := s.authorize(ctx, user.PermissionViewOrganisations)
	if err != nil {
		return designation.DesignationResponse{}, err
	}

	desig, err := s.designationRepo.GetByID(ctx, id, tenantID)
	if err != nil {
		return designation.DesignationResponse{}, err
	}
	return designation.ToResponse(desig), nil
}

// ListDesignations implements MasterService.
func (s *MasterServiceImpl) ListDesignations(ctx context.Context, departmentID *string, page, limit int) ([]designation.DesignationResponse, int64, error) {
	tenantID, err := s.authorize(ctx, user.PermissionViewOrganisations)
	if err != nil {
		return nil, 0, err
	}

	var designations []designation.Designation
	var total int64
	if departmentID != nil {
		designations, err = s.designationRepo.ListByDepartment(ctx, *departmentID, tenantID)
		total = int64(len(designations))
	} else {
		page, limit = normalizePage(page, limit)
		designations, total, err = s.designationRepo.List(ctx, tenantID, page, limit)
	}
	if err != nil {
		return nil, 0, err
	}

	responses := make([]designation.DesignationResponse, 0, len(designations))
	for _, desig := range designations {
		responses = append(responses, designation.ToResponse(desig))
	}
	return responses, total, nil
}

// UpdateDesignation implements MasterService.
func (s *MasterServiceImpl) UpdateDesignation(ctx context.Context, req designation.UpdateDesignationRequest) (designation.DesignationResponse, error) {
	if err := req.Validate(); err != nil {
		return designation.DesignationResponse{}, err
	}
	tenantID, err := s.authorize(ctx, user.PermissionManageDesignations)
	if err != nil {
		return designation.DesignationResponse{}, err
	}

	if err := s.designationRepo.Update(ctx, req, tenantID); err != nil {
		return designation.DesignationResponse{}, err
	}
	updated, err := s.designationRepo.GetByID(ctx, req.ID, tenantID)
	if err != nil {
		return designation.DesignationResponse{}, err
	}
	return designation.ToResponse(updated), nil
}

// SetDesignationStatus implements MasterService.
func (s *MasterServiceImpl) SetDesignationStatus(ctx context.Context, id string, status designation.Status) error {
	tenantID, err := s.authorize(ctx, user.PermissionManageDesignations)
	if err != nil {
		return err
	}
	return s.designationRepo.SetStatus(ctx, id, tenantID, status)
}
