package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peoplehub/hrms-backend-go/internal/domain/audit"
	domain "github.com/peoplehub/hrms-backend-go/internal/domain/employee"
	"github.com/peoplehub/hrms-backend-go/internal/service/employee"
)

type fakeEmployeeService struct {
	employee.EmployeeService
	statusCalls map[string]domain.Status
}

func (f *fakeEmployeeService) SetStatus(_ context.Context, id string, status domain.Status) error {
	if f.statusCalls == nil {
		f.statusCalls = make(map[string]domain.Status)
	}
	f.statusCalls[id] = status
	return nil
}

func TestDeleteEmployee_MarksTerminated(t *testing.T) {
	svc := &fakeEmployeeService{}
	auditRepo := &recordingAuditRepo{}
	handler := NewEmployeeHandler(svc, auditRepo)

	req := newHandlerRequest(http.MethodDelete, "/api/v1/employees/emp-1", map[string]string{"id": "emp-1"})
	rec := httptest.NewRecorder()
	handler.Delete(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.StatusTerminated, svc.statusCalls["emp-1"])

	require.Len(t, auditRepo.entries, 1)
	assert.Equal(t, audit.ActionDelete, auditRepo.entries[0].Action)
	assert.Equal(t, "employee", auditRepo.entries[0].EntityType)
}
