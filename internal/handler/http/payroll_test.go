package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	domain "github.com/peoplehub/hrms-backend-go/internal/domain/payroll"
)

type fakePayrollService struct {
	domain.PayrollService
	gotMonth int
	gotYear  int
}

func (f *fakePayrollService) Generate(_ context.Context, req domain.GeneratePayrollRequest) ([]domain.PayslipResponse, error) {
	f.gotMonth = req.Month
	f.gotYear = req.Year
	return nil, nil
}

func TestGenerate_PeriodFromPath(t *testing.T) {
	svc := &fakePayrollService{}
	auditRepo := &recordingAuditRepo{}
	handler := NewPayrollHandler(svc, auditRepo)

	req := newHandlerRequest(http.MethodPost, "/api/v1/payroll/generate/3/2026", map[string]string{
		"month": "3",
		"year":  "2026",
	})
	rec := httptest.NewRecorder()
	handler.Generate(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 3, svc.gotMonth)
	assert.Equal(t, 2026, svc.gotYear)
}
