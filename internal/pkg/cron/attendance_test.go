package cron

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peoplehub/hrms-backend-go/internal/domain/attendance"
	"github.com/peoplehub/hrms-backend-go/internal/domain/tenant"
)

type fakeTenantLister struct {
	tenant.TenantRepository
	tenants []tenant.Tenant
}

func (f *fakeTenantLister) List(_ context.Context, _ *tenant.Status, page, _ int) ([]tenant.Tenant, int64, error) {
	if page > 1 {
		return nil, int64(len(f.tenants)), nil
	}
	return f.tenants, int64(len(f.tenants)), nil
}

type fakeAbsenceStore struct {
	attendance.AttendanceRepository
	missing map[string][]string // tenantID -> employee IDs without a record
	created []attendance.Attendance
}

func (f *fakeAbsenceStore) ListEmployeesWithoutRecord(_ context.Context, tenantID string, _ time.Time) ([]string, error) {
	return f.missing[tenantID], nil
}

func (f *fakeAbsenceStore) Create(_ context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	f.created = append(f.created, att)
	return att, nil
}

func newAbsenceJobs(store attendance.AttendanceRepository, tenants ...tenant.Tenant) *AttendanceJobs {
	return NewAttendanceJobs(store, &fakeTenantLister{tenants: tenants})
}

func TestCloseDay_MarksWeekdayAbsences(t *testing.T) {
	store := &fakeAbsenceStore{missing: map[string][]string{
		"t1": {"emp-1", "emp-2"},
	}}
	jobs := newAbsenceJobs(store, tenant.Tenant{ID: "t1", Status: tenant.StatusActive})

	monday := time.Date(2026, 2, 9, 3, 15, 0, 0, time.UTC)
	require.NoError(t, jobs.closeDay(context.Background(), monday))

	require.Len(t, store.created, 2)
	for _, att := range store.created {
		assert.Equal(t, "t1", att.TenantID)
		assert.Equal(t, attendance.StatusAbsent, att.Status)
		assert.Equal(t, "2026-02-09", att.Date.Format("2006-01-02"))
	}
}

func TestCloseDay_SkipsWeekends(t *testing.T) {
	store := &fakeAbsenceStore{missing: map[string][]string{
		"t1": {"emp-1"},
	}}
	jobs := newAbsenceJobs(store, tenant.Tenant{ID: "t1", Status: tenant.StatusActive})

	saturday := time.Date(2026, 2, 7, 0, 30, 0, 0, time.UTC)
	require.NoError(t, jobs.closeDay(context.Background(), saturday))
	assert.Empty(t, store.created)

	sunday := time.Date(2026, 2, 8, 0, 30, 0, 0, time.UTC)
	require.NoError(t, jobs.closeDay(context.Background(), sunday))
	assert.Empty(t, store.created)
}

func TestCloseDay_ToleratesRecordCreatedMeanwhile(t *testing.T) {
	store := &racyAbsenceStore{}
	store.missing = map[string][]string{"t1": {"emp-1", "emp-2"}}
	jobs := newAbsenceJobs(store, tenant.Tenant{ID: "t1", Status: tenant.StatusActive})

	monday := time.Date(2026, 2, 9, 0, 5, 0, 0, time.UTC)
	require.NoError(t, jobs.closeDay(context.Background(), monday))
	require.Len(t, store.created, 1)
}

// racyAbsenceStore rejects the first insert as a duplicate, as if the
// employee's record appeared between listing and insert.
type racyAbsenceStore struct {
	fakeAbsenceStore
	calls int
}

func (f *racyAbsenceStore) Create(_ context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	f.calls++
	if f.calls == 1 {
		return attendance.Attendance{}, attendance.ErrDuplicateDay
	}
	f.created = append(f.created, att)
	return att, nil
}
