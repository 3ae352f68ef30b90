package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	domain "github.com/peoplehub/hrms-backend-go/internal/domain/attendance"
)

type fakeAttendanceService struct {
	domain.AttendanceService
	todayFor string
}

func (f *fakeAttendanceService) GetToday(_ context.Context, employeeID string) (*domain.AttendanceResponse, error) {
	f.todayFor = employeeID
	return &domain.AttendanceResponse{EmployeeID: employeeID, Status: string(domain.StatusPresent)}, nil
}

func TestGetToday_EmployeeFromPath(t *testing.T) {
	svc := &fakeAttendanceService{}
	handler := NewAttendanceHandler(svc, nil)

	req := newHandlerRequest(http.MethodGet, "/api/v1/attendance/today/emp-7", map[string]string{"employeeId": "emp-7"})
	rec := httptest.NewRecorder()
	handler.GetToday(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "emp-7", svc.todayFor)
}
