package employee

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peoplehub/hrms-backend-go/internal/domain/department"
	"github.com/peoplehub/hrms-backend-go/internal/domain/designation"
	"github.com/peoplehub/hrms-backend-go/internal/domain/employee"
	"github.com/peoplehub/hrms-backend-go/internal/domain/organisation"
	"github.com/peoplehub/hrms-backend-go/internal/domain/user"
	"github.com/peoplehub/hrms-backend-go/internal/pkg/tenantctx"
)

const (
	orgT1  = "aaaaaaaa-aaaa-4aaa-8aaa-aaaaaaaaaaaa"
	deptT2 = "bbbbbbbb-bbbb-4bbb-8bbb-bbbbbbbbbbbb" // belongs to tenant t2
)

type fakeEmployeeStore struct {
	employee.EmployeeRepository
	employees map[string]employee.Employee // keyed by tenantID/id
	nextID    int
}

func newFakeEmployeeStore() *fakeEmployeeStore {
	return &fakeEmployeeStore{employees: make(map[string]employee.Employee)}
}

func (f *fakeEmployeeStore) Create(_ context.Context, emp employee.Employee) (employee.Employee, error) {
	f.nextID++
	emp.ID = fmt.Sprintf("00000000-0000-4000-8000-%012d", f.nextID)
	f.employees[emp.TenantID+"/"+emp.ID] = emp
	return emp, nil
}

func (f *fakeEmployeeStore) GetByID(_ context.Context, id, tenantID string) (employee.Employee, error) {
	emp, ok := f.employees[tenantID+"/"+id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (f *fakeEmployeeStore) Update(_ context.Context, req employee.UpdateEmployeeRequest, tenantID string) error {
	key := tenantID + "/" + req.ID
	emp, ok := f.employees[key]
	if !ok {
		return employee.ErrEmployeeNotFound
	}
	if req.ManagerID != nil {
		emp.ManagerID = req.ManagerID
	}
	if req.FirstName != nil {
		emp.FirstName = *req.FirstName
	}
	f.employees[key] = emp
	return nil
}

type fakeOrgStore struct {
	organisation.OrganisationRepository
}

func (fakeOrgStore) GetByID(_ context.Context, id, tenantID string) (organisation.Organisation, error) {
	if id == orgT1 && tenantID == "t1" {
		return organisation.Organisation{ID: id, TenantID: tenantID, Name: "HQ"}, nil
	}
	return organisation.Organisation{}, organisation.ErrOrganisationNotFound
}

type fakeDeptStore struct {
	department.DepartmentRepository
}

func (fakeDeptStore) GetByID(_ context.Context, id, tenantID string) (department.Department, error) {
	if id == deptT2 && tenantID == "t2" {
		return department.Department{ID: id, TenantID: tenantID, Name: "Engineering"}, nil
	}
	return department.Department{}, department.ErrDepartmentNotFound
}

type fakeDesigStore struct {
	designation.DesignationRepository
}

func (fakeDesigStore) GetByID(_ context.Context, _, _ string) (designation.Designation, error) {
	return designation.Designation{}, designation.ErrDesignationNotFound
}

func hrContext(tenantID string) context.Context {
	return tenantctx.WithActor(context.Background(), tenantctx.Actor{
		UserID:   "user-hr",
		Role:     user.RoleHRManager,
		TenantID: tenantID,
	})
}

func newTestService(store *fakeEmployeeStore) EmployeeService {
	return NewEmployeeService(store, fakeOrgStore{}, fakeDeptStore{}, fakeDesigStore{})
}

func validCreateRequest() employee.CreateEmployeeRequest {
	return employee.CreateEmployeeRequest{
		OrganisationID: orgT1,
		EmployeeCode:   "EMP-001",
		FirstName:      "Ada",
		LastName:       "Lovelace",
		Email:          "ada@acme.test",
		JoiningDate:    "2024-01-15",
	}
}

func TestCreate_Success(t *testing.T) {
	store := newFakeEmployeeStore()
	svc := newTestService(store)

	resp, err := svc.Create(hrContext("t1"), validCreateRequest())
	require.NoError(t, err)
	assert.Equal(t, "EMP-001", resp.EmployeeCode)
	assert.Equal(t, string(employee.StatusActive), resp.Status)
}

func TestCreate_DepartmentFromAnotherTenantLooksMissing(t *testing.T) {
	store := newFakeEmployeeStore()
	svc := newTestService(store)

	req := validCreateRequest()
	foreign := deptT2
	req.DepartmentID = &foreign

	// The department exists, but under tenant t2. For t1 it must read as
	// not found, never as forbidden.
	_, err := svc.Create(hrContext("t1"), req)
	assert.ErrorIs(t, err, department.ErrDepartmentNotFound)
}

func TestCreate_RequiresManagePermission(t *testing.T) {
	store := newFakeEmployeeStore()
	svc := newTestService(store)

	viewerCtx := tenantctx.WithActor(context.Background(), tenantctx.Actor{
		UserID:   "user-viewer",
		Role:     user.RoleViewer,
		TenantID: "t1",
	})
	_, err := svc.Create(viewerCtx, validCreateRequest())
	assert.ErrorIs(t, err, user.ErrInsufficientPermissions)
}

func TestGet_OwnRecordWithoutViewPermission(t *testing.T) {
	store := newFakeEmployeeStore()
	svc := newTestService(store)

	created, err := svc.Create(hrContext("t1"), validCreateRequest())
	require.NoError(t, err)

	ownID := created.ID
	selfCtx := tenantctx.WithActor(context.Background(), tenantctx.Actor{
		UserID:     "user-self",
		EmployeeID: &ownID,
		Role:       user.RoleEmployee,
		TenantID:   "t1",
	})
	resp, err := svc.Get(selfCtx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, resp.ID)

	// The same employee cannot read a colleague's record.
	otherID := "99999999-9999-4999-8999-999999999999"
	_, err = svc.Get(selfCtx, otherID)
	assert.ErrorIs(t, err, user.ErrInsufficientPermissions)
}

func TestGet_CrossTenantLooksMissing(t *testing.T) {
	store := newFakeEmployeeStore()
	svc := newTestService(store)

	created, err := svc.Create(hrContext("t1"), validCreateRequest())
	require.NoError(t, err)

	_, err = svc.Get(hrContext("t2"), created.ID)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestUpdate_SelfManagerRejected(t *testing.T) {
	store := newFakeEmployeeStore()
	svc := newTestService(store)

	created, err := svc.Create(hrContext("t1"), validCreateRequest())
	require.NoError(t, err)

	self := created.ID
	_, err = svc.Update(hrContext("t1"), employee.UpdateEmployeeRequest{
		ID:        created.ID,
		ManagerID: &self,
	})
	assert.ErrorIs(t, err, employee.ErrSelfManager)
}

func TestUpdate_UnknownManagerRejected(t *testing.T) {
	store := newFakeEmployeeStore()
	svc := newTestService(store)

	created, err := svc.Create(hrContext("t1"), validCreateRequest())
	require.NoError(t, err)

	ghost := "99999999-9999-4999-8999-999999999999"
	_, err = svc.Update(hrContext("t1"), employee.UpdateEmployeeRequest{
		ID:        created.ID,
		ManagerID: &ghost,
	})
	assert.ErrorIs(t, err, employee.ErrManagerNotFound)
}

func TestUpdate_LeavingBeforeJoiningRejected(t *testing.T) {
	store := newFakeEmployeeStore()
	svc := newTestService(store)

	created, err := svc.Create(hrContext("t1"), validCreateRequest())
	require.NoError(t, err)

	early := "2023-12-31"
	_, err = svc.Update(hrContext("t1"), employee.UpdateEmployeeRequest{
		ID:          created.ID,
		LeavingDate: &early,
	})
	assert.ErrorIs(t, err, employee.ErrLeavingBeforeJoining)
}

func TestUpdate_ManagerAssignment(t *testing.T) {
	store := newFakeEmployeeStore()
	svc := newTestService(store)
	ctx := hrContext("t1")

	manager, err := svc.Create(ctx, validCreateRequest())
	require.NoError(t, err)

	reportReq := validCreateRequest()
	reportReq.EmployeeCode = "EMP-002"
	reportReq.Email = "grace@acme.test"
	reportReq.FirstName = "Grace"
	report, err := svc.Create(ctx, reportReq)
	require.NoError(t, err)

	managerID := manager.ID
	updated, err := svc.Update(ctx, employee.UpdateEmployeeRequest{
		ID:        report.ID,
		ManagerID: &managerID,
	})
	require.NoError(t, err)
	require.NotNil(t, updated.ManagerID)
	assert.Equal(t, manager.ID, *updated.ManagerID)
}
