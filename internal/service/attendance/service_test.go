package attendance

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peoplehub/hrms-backend-go/internal/domain/attendance"
	"github.com/peoplehub/hrms-backend-go/internal/domain/employee"
	"github.com/peoplehub/hrms-backend-go/internal/domain/organisation"
	"github.com/peoplehub/hrms-backend-go/internal/domain/user"
	"github.com/peoplehub/hrms-backend-go/internal/pkg/tenantctx"
)

// employee IDs in request DTOs must be UUIDs to pass validation
const (
	empOne = "11111111-1111-4111-8111-111111111111"
	empTwo = "22222222-2222-4222-8222-222222222222"
)

type fakeAttendanceRepo struct {
	attendance.AttendanceRepository
	records map[string]attendance.Attendance
	nextID  int
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{records: make(map[string]attendance.Attendance)}
}

func (f *fakeAttendanceRepo) Create(_ context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	for _, existing := range f.records {
		if existing.EmployeeID == att.EmployeeID && existing.Date.Equal(att.Date) {
			return attendance.Attendance{}, attendance.ErrDuplicateDay
		}
	}
	f.nextID++
	att.ID = fmt.Sprintf("att-%d", f.nextID)
	f.records[att.ID] = att
	return att, nil
}

func (f *fakeAttendanceRepo) GetByID(_ context.Context, id, tenantID string) (attendance.Attendance, error) {
	att, ok := f.records[id]
	if !ok || att.TenantID != tenantID {
		return attendance.Attendance{}, attendance.ErrAttendanceNotFound
	}
	return att, nil
}

func (f *fakeAttendanceRepo) GetByEmployeeAndDate(_ context.Context, employeeID string, date time.Time, tenantID string) (*attendance.Attendance, error) {
	for _, att := range f.records {
		if att.TenantID == tenantID && att.EmployeeID == employeeID && att.Date.Equal(date) {
			copied := att
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeAttendanceRepo) Update(_ context.Context, att attendance.Attendance) error {
	if _, ok := f.records[att.ID]; !ok {
		return attendance.ErrAttendanceNotFound
	}
	f.records[att.ID] = att
	return nil
}

type fakeEmployeeRepo struct {
	employee.EmployeeRepository
	employees map[string]employee.Employee // keyed by tenantID/id
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id, tenantID string) (employee.Employee, error) {
	emp, ok := f.employees[tenantID+"/"+id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

type fakeOrganisationRepo struct {
	organisation.OrganisationRepository
	orgs map[string]organisation.Organisation
}

func (f *fakeOrganisationRepo) GetByID(_ context.Context, id, _ string) (organisation.Organisation, error) {
	org, ok := f.orgs[id]
	if !ok {
		return organisation.Organisation{}, organisation.ErrOrganisationNotFound
	}
	return org, nil
}

// lenientPolicy never marks anyone late, which keeps wall-clock driven
// tests deterministic.
func lenientPolicy() organisation.Organisation {
	return organisation.Organisation{
		ID:           "org-1",
		TenantID:     "t1",
		Name:         "HQ",
		ShiftStart:   "00:00",
		GraceMinutes: 24 * 60,
		HalfDayHours: 0,
		FullDayHours: 8,
	}
}

func testAttendanceService(attRepo *fakeAttendanceRepo) attendance.AttendanceService {
	return NewAttendanceService(
		attRepo,
		&fakeEmployeeRepo{employees: map[string]employee.Employee{
			"t1/" + empOne: {ID: empOne, TenantID: "t1", OrganisationID: "org-1", Status: employee.StatusActive},
			"t1/" + empTwo: {ID: empTwo, TenantID: "t1", OrganisationID: "org-1", Status: employee.StatusInactive},
		}},
		&fakeOrganisationRepo{orgs: map[string]organisation.Organisation{
			"org-1": lenientPolicy(),
		}},
	)
}

func selfContext(employeeID string) context.Context {
	id := employeeID
	return tenantctx.WithActor(context.Background(), tenantctx.Actor{
		UserID:     "user-1",
		EmployeeID: &id,
		Role:       user.RoleEmployee,
		TenantID:   "t1",
	})
}

func TestCheckIn_ThenCheckOut(t *testing.T) {
	repo := newFakeAttendanceRepo()
	svc := testAttendanceService(repo)
	ctx := selfContext(empOne)

	checkedIn, err := svc.CheckIn(ctx, attendance.CheckInRequest{EmployeeID: empOne})
	require.NoError(t, err)
	assert.NotNil(t, checkedIn.CheckIn)
	assert.Nil(t, checkedIn.CheckOut)
	assert.Nil(t, checkedIn.WorkHours)

	checkedOut, err := svc.CheckOut(ctx, attendance.CheckOutRequest{EmployeeID: empOne})
	require.NoError(t, err)
	assert.NotNil(t, checkedOut.CheckOut)
	require.NotNil(t, checkedOut.WorkHours)
	assert.GreaterOrEqual(t, *checkedOut.WorkHours, 0.0)
}

func TestCheckIn_Twice(t *testing.T) {
	repo := newFakeAttendanceRepo()
	svc := testAttendanceService(repo)
	ctx := selfContext(empOne)

	_, err := svc.CheckIn(ctx, attendance.CheckInRequest{EmployeeID: empOne})
	require.NoError(t, err)

	_, err = svc.CheckIn(ctx, attendance.CheckInRequest{EmployeeID: empOne})
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)
}

func TestCheckOut_WithoutCheckIn(t *testing.T) {
	repo := newFakeAttendanceRepo()
	svc := testAttendanceService(repo)

	_, err := svc.CheckOut(selfContext(empOne), attendance.CheckOutRequest{EmployeeID: empOne})
	assert.ErrorIs(t, err, attendance.ErrNotCheckedIn)
}

func TestCheckOut_Twice(t *testing.T) {
	repo := newFakeAttendanceRepo()
	svc := testAttendanceService(repo)
	ctx := selfContext(empOne)

	_, err := svc.CheckIn(ctx, attendance.CheckInRequest{EmployeeID: empOne})
	require.NoError(t, err)
	_, err = svc.CheckOut(ctx, attendance.CheckOutRequest{EmployeeID: empOne})
	require.NoError(t, err)

	_, err = svc.CheckOut(ctx, attendance.CheckOutRequest{EmployeeID: empOne})
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedOut)
}

func TestCheckIn_OverwritesPreMarkedAbsence(t *testing.T) {
	repo := newFakeAttendanceRepo()
	svc := testAttendanceService(repo)

	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	premarked, err := repo.Create(context.Background(), attendance.Attendance{
		TenantID:   "t1",
		EmployeeID: empOne,
		Date:       today,
		Status:     attendance.StatusAbsent,
	})
	require.NoError(t, err)

	result, err := svc.CheckIn(selfContext(empOne), attendance.CheckInRequest{EmployeeID: empOne})
	require.NoError(t, err)
	assert.Equal(t, premarked.ID, result.ID)
	assert.NotEqual(t, string(attendance.StatusAbsent), result.Status)
	assert.NotNil(t, result.CheckIn)
}

func TestCheckIn_InactiveEmployee(t *testing.T) {
	repo := newFakeAttendanceRepo()
	svc := testAttendanceService(repo)

	_, err := svc.CheckIn(selfContext(empTwo), attendance.CheckInRequest{EmployeeID: empTwo})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotActive)
}

func TestCheckIn_ForSomeoneElseNeedsManagePermission(t *testing.T) {
	repo := newFakeAttendanceRepo()
	svc := testAttendanceService(repo)

	// An employee cannot record another employee's attendance.
	_, err := svc.CheckIn(selfContext(empTwo), attendance.CheckInRequest{EmployeeID: empOne})
	assert.ErrorIs(t, err, user.ErrInsufficientPermissions)

	// An HR manager can.
	hrCtx := tenantctx.WithActor(context.Background(), tenantctx.Actor{
		UserID:   "user-hr",
		Role:     user.RoleHRManager,
		TenantID: "t1",
	})
	_, err = svc.CheckIn(hrCtx, attendance.CheckInRequest{EmployeeID: empOne})
	require.NoError(t, err)
}

func TestCheckIn_CrossTenantEmployeeLooksMissing(t *testing.T) {
	repo := newFakeAttendanceRepo()
	svc := testAttendanceService(repo)

	foreignCtx := tenantctx.WithActor(context.Background(), tenantctx.Actor{
		UserID:   "user-other",
		Role:     user.RoleHRManager,
		TenantID: "t2",
	})
	_, err := svc.CheckIn(foreignCtx, attendance.CheckInRequest{EmployeeID: empOne})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}
