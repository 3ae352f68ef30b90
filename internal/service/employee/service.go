package employee

import (
	"context"
	"time"

	"github.com/peoplehub/hrms-backend-go/internal/domain/department"
	"github.com/peoplehub/hrms-backend-go/internal/domain/designation"
	"github.com/peoplehub/hrms-backend-go/internal/domain/employee"
	"github.com/peoplehub/hrms-backend-go/internal/domain/organisation"
	"github.com/peoplehub/hrms-backend-go/internal/domain/user"
	"github.com/peoplehub/hrms-backend-go/internal/pkg/tenantctx"
)

type EmployeeService interface {
	Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error)
	Get(ctx context.Context, id string) (employee.EmployeeResponse, error)
	List(ctx context.Context, filter employee.ListFilter) (employee.ListEmployeeResponse, error)
	Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error)
	SetStatus(ctx context.Context, id string, status employee.Status) error
}

type EmployeeServiceImpl struct {
	employeeRepo     employee.EmployeeRepository
	organisationRepo organisation.OrganisationRepository
	departmentRepo   department.DepartmentRepository
	designationRepo  designation.DesignationRepository
}

func NewEmployeeService(
	employeeRepo employee.EmployeeRepository,
	organisationRepo organisation.OrganisationRepository,
	departmentRepo department.DepartmentRepository,
	designationRepo designation.DesignationRepository,
) EmployeeService {
	return &EmployeeServiceImpl{
		employeeRepo:     employeeRepo,
		organisationRepo: organisationRepo,
		departmentRepo:   departmentRepo,
		designationRepo:  designationRepo,
	}
}

func (s *EmployeeServiceImpl) authorize(ctx context.Context, permission user.Permission) (tenantctx.Actor, string, error) {
	actor, err := tenantctx.ActorFromContext(ctx)
	if err != nil {
		return tenantctx.Actor{}, "", err
	}
	tenantID, err := tenantctx.TenantID(ctx)
	if err != nil {
		return tenantctx.Actor{}, "", err
	}
	if !user.HasPermission(actor.Role, permission) {
		return tenantctx.Actor{}, "", user.ErrInsufficientPermissions
	}
	return actor, tenantID, nil
}

// Create implements EmployeeService.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}
	_, tenantID, err := s.authorize(ctx, user.PermissionManageEmployees)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	// Referenced rows must belong to this tenant. A foreign ID from another
	// tenant is indistinguishable from a missing one.
	if _, err := s.organisationRepo.GetByID(ctx, req.OrganisationID, tenantID); err != nil {
		return employee.EmployeeResponse{}, err
	}
	if req.DepartmentID != nil {
		if _, err := s.departmentRepo.GetByID(ctx, *req.DepartmentID, tenantID); err != nil {
			return employee.EmployeeResponse{}, err
		}
	}
	if req.DesignationID != nil {
		if _, err := s.designationRepo.GetByID(ctx, *req.DesignationID, tenantID); err != nil {
			return employee.EmployeeResponse{}, err
		}
	}
	if req.ManagerID != nil {
		if _, err := s.employeeRepo.GetByID(ctx, *req.ManagerID, tenantID); err != nil {
			return employee.EmployeeResponse{}, employee.ErrManagerNotFound
		}
	}

	joiningDate, _ := time.Parse("2006-01-02", req.JoiningDate)

	created, err := s.employeeRepo.Create(ctx, employee.Employee{
		TenantID:       tenantID,
		OrganisationID: req.OrganisationID,
		DepartmentID:   req.DepartmentID,
		DesignationID:  req.DesignationID,
		ManagerID:      req.ManagerID,
		EmployeeCode:   req.EmployeeCode,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		JoiningDate:    joiningDate,
		Status:         employee.StatusActive,
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToResponse(created), nil
}

// Get implements EmployeeService.
func (s *EmployeeServiceImpl) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	actor, err := tenantctx.ActorFromContext(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	tenantID, err := tenantctx.TenantID(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	// Everyone may read their own record.
	ownRecord := actor.EmployeeID != nil && *actor.EmployeeID == id
	if !ownRecord && !user.HasPermission(actor.Role, user.PermissionViewEmployees) {
		return employee.EmployeeResponse{}, user.ErrInsufficientPermissions
	}

	emp, err := s.employeeRepo.GetByID(ctx, id, tenantID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToResponse(emp), nil
}

// List implements EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context, filter employee.ListFilter) (employee.ListEmployeeResponse, error) {
	_, tenantID, err := s.authorize(ctx, user.PermissionViewEmployees)
	if err != nil {
		return employee.ListEmployeeResponse{}, err
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}

	employees, total, err := s.employeeRepo.List(ctx, tenantID, filter)
	if err != nil {
		return employee.ListEmployeeResponse{}, err
	}

	data := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		data = append(data, employee.ToResponse(emp))
	}
	return employee.ListEmployeeResponse{
		Data:       data,
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

// Update implements EmployeeService.
func (s *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}
	_, tenantID, err := s.authorize(ctx, user.PermissionManageEmployees)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	current, err := s.employeeRepo.GetByID(ctx, req.ID, tenantID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.ManagerID != nil {
		if *req.ManagerID == req.ID {
			return employee.EmployeeResponse{}, employee.ErrSelfManager
		}
		if _, err := s.employeeRepo.GetByID(ctx, *req.ManagerID, tenantID); err != nil {
			return employee.EmployeeResponse{}, employee.ErrManagerNotFound
		}
	}
	if req.DepartmentID != nil {
		if _, err := s.departmentRepo.GetByID(ctx, *req.DepartmentID, tenantID); err != nil {
			return employee.EmployeeResponse{}, err
		}
	}
	if req.DesignationID != nil {
		if _, err := s.designationRepo.GetByID(ctx, *req.DesignationID, tenantID); err != nil {
			return employee.EmployeeResponse{}, err
		}
	}
	if req.LeavingDate != nil {
		leaving, _ := time.Parse("2006-01-02", *req.LeavingDate)
		if leaving.Before(current.JoiningDate) {
			return employee.EmployeeResponse{}, employee.ErrLeavingBeforeJoining
		}
	}

	if err := s.employeeRepo.Update(ctx, req, tenantID); err != nil {
		return employee.EmployeeResponse{}, err
	}
	updated, err := s.employeeRepo.GetByID(ctx, req.ID, tenantID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToResponse(updated), nil
}

// SetStatus implements EmployeeService.
func (s *EmployeeServiceImpl) SetStatus(ctx context.Context, id string, status employee.Status) error {
	_, tenantID, err := s.authorize(ctx, user.PermissionManageEmployees)
	if err != nil {
		return err
	}
	return s.employeeRepo.SetStatus(ctx, id, tenantID, status)
}
