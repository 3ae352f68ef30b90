package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/peoplehub/hrms-backend-go/internal/domain/attendance"
	"github.com/peoplehub/hrms-backend-go/internal/domain/employee"
	"github.com/peoplehub/hrms-backend-go/internal/domain/organisation"
	"github.com/peoplehub/hrms-backend-go/internal/domain/user"
	"github.com/peoplehub/hrms-backend-go/internal/pkg/tenantctx"
)

type AttendanceServiceImpl struct {
	attendanceRepo   attendance.AttendanceRepository
	employeeRepo     employee.EmployeeRepository
	organisationRepo organisation.OrganisationRepository
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	organisationRepo organisation.OrganisationRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		attendanceRepo:   attendanceRepo,
		employeeRepo:     employeeRepo,
		organisationRepo: organisationRepo,
	}
}

// canActOn reports whether the actor may record attendance for the employee.
// Everyone may record their own; recording for someone else needs the manage
// permission.
func canActOn(actor tenantctx.Actor, employeeID string) bool {
	if actor.EmployeeID != nil && *actor.EmployeeID == employeeID {
		return user.HasPermission(actor.Role, user.PermissionRecordAttendance)
	}
	return user.HasPermission(actor.Role, user.PermissionManageAttendance)
}

// CheckIn implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CheckIn(ctx context.Context, req attendance.CheckInRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	actor, err := tenantctx.ActorFromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	tenantID, err := tenantctx.TenantID(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if !canActOn(actor, req.EmployeeID) {
		return attendance.AttendanceResponse{}, user.ErrInsufficientPermissions
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID, tenantID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if !emp.IsActive() {
		return attendance.AttendanceResponse{}, employee.ErrEmployeeNotActive
	}

	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	existing, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, req.EmployeeID, today, tenantID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if existing != nil && existing.CheckIn != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedIn
	}

	policy, err := s.shiftPolicy(ctx, emp.OrganisationID, tenantID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	classification, err := attendance.Classify(today, &now, nil, policy)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("classify check-in: %w", err)
	}

	if existing != nil {
		// Day was pre-marked (e.g. ABSENT by the nightly close); overwrite.
		existing.CheckIn = &now
		existing.Status = classification.Status
		existing.LateByMinutes = classification.LateByMinutes
		existing.WorkHours = nil
		if err := s.attendanceRepo.Update(ctx, *existing); err != nil {
			return attendance.AttendanceResponse{}, err
		}
		updated, err := s.attendanceRepo.GetByID(ctx, existing.ID, tenantID)
		if err != nil {
			return attendance.AttendanceResponse{}, err
		}
		return attendance.ToResponse(updated), nil
	}

	created, err := s.attendanceRepo.Create(ctx, attendance.Attendance{
		TenantID:      tenantID,
		EmployeeID:    req.EmployeeID,
		Date:          today,
		CheckIn:       &now,
		LateByMinutes: classification.LateByMinutes,
		Status:        classification.Status,
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	return attendance.ToResponse(created), nil
}

// CheckOut implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CheckOut(ctx context.Context, req attendance.CheckOutRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	actor, err := tenantctx.ActorFromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	tenantID, err := tenantctx.TenantID(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if !canActOn(actor, req.EmployeeID) {
		return attendance.AttendanceResponse{}, user.ErrInsufficientPermissions
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID, tenantID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	record, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, req.EmployeeID, today, tenantID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if record == nil || record.CheckIn == nil {
		return attendance.AttendanceResponse{}, attendance.ErrNotCheckedIn
	}
	if record.CheckOut != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedOut
	}

	policy, err := s.shiftPolicy(ctx, emp.OrganisationID, tenantID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	classification, err := attendance.Classify(today, record.CheckIn, &now, policy)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("classify check-out: %w", err)
	}

	record.CheckOut = &now
	record.WorkHours = classification.WorkHours
	record.LateByMinutes = classification.LateByMinutes
	record.Status = classification.Status

	if err := s.attendanceRepo.Update(ctx, *record); err != nil {
		return attendance.AttendanceResponse{}, err
	}
	updated, err := s.attendanceRepo.GetByID(ctx, record.ID, tenantID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	return attendance.ToResponse(updated), nil
}

// GetToday implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetToday(ctx context.Context, employeeID string) (*attendance.AttendanceResponse, error) {
	actor, err := tenantctx.ActorFromContext(ctx)
	if err != nil {
		return nil, err
	}
	tenantID, err := tenantctx.TenantID(ctx)
	if err != nil {
		return nil, err
	}

	ownRecord := actor.EmployeeID != nil && *actor.EmployeeID == employeeID
	if !ownRecord && !user.HasPermission(actor.Role, user.PermissionViewAttendance) {
		return nil, user.ErrInsufficientPermissions
	}

	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	record, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, employeeID, today, tenantID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, nil
	}
	resp := attendance.ToResponse(*record)
	return &resp, nil
}

// GetMyAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetMyAttendance(ctx context.Context, employeeID string, filter attendance.ListFilter) (attendance.ListAttendanceResponse, error) {
	actor, err := tenantctx.ActorFromContext(ctx)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}
	tenantID, err := tenantctx.TenantID(ctx)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	ownRecord := actor.EmployeeID != nil && *actor.EmployeeID == employeeID
	if !ownRecord && !user.HasPermission(actor.Role, user.PermissionViewAttendance) {
		return attendance.ListAttendanceResponse{}, user.ErrInsufficientPermissions
	}

	normalizeFilter(&filter)
	records, total, err := s.attendanceRepo.ListByEmployee(ctx, employeeID, tenantID, filter)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}
	return listResponse(records, total, filter), nil
}

// ListAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListAttendance(ctx context.Context, filter attendance.ListFilter) (attendance.ListAttendanceResponse, error) {
	actor, err := tenantctx.ActorFromContext(ctx)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}
	tenantID, err := tenantctx.TenantID(ctx)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}
	if !user.HasPermission(actor.Role, user.PermissionViewAttendance) {
		return attendance.ListAttendanceResponse{}, user.ErrInsufficientPermissions
	}

	normalizeFilter(&filter)
	records, total, err := s.attendanceRepo.List(ctx, tenantID, filter)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}
	return listResponse(records, total, filter), nil
}

func (s *AttendanceServiceImpl) shiftPolicy(ctx context.Context, organisationID, tenantID string) (attendance.ShiftPolicy, error) {
	org, err := s.organisationRepo.GetByID(ctx, organisationID, tenantID)
	if err != nil {
		return attendance.ShiftPolicy{}, err
	}
	return attendance.ShiftPolicy{
		ShiftStart:   org.ShiftStart,
		GraceMinutes: org.GraceMinutes,
		HalfDayHours: org.HalfDayHours,
		FullDayHours: org.FullDayHours,
	}, nil
}

func normalizeFilter(filter *attendance.ListFilter) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}
}

func listResponse(records []attendance.Attendance, total int64, filter attendance.ListFilter) attendance.ListAttendanceResponse {
	data := make([]attendance.AttendanceResponse, 0, len(records))
	for _, r := range records {
		data = append(data, attendance.ToResponse(r))
	}
	return attendance.ListAttendanceResponse{
		Data:       data,
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}
}
