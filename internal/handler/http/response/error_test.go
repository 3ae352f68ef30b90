package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peoplehub/hrms-backend-go/internal/domain/attendance"
	"github.com/peoplehub/hrms-backend-go/internal/domain/auth"
	"github.com/peoplehub/hrms-backend-go/internal/domain/employee"
	"github.com/peoplehub/hrms-backend-go/internal/domain/payroll"
	"github.com/peoplehub/hrms-backend-go/internal/domain/tenant"
	"github.com/peoplehub/hrms-backend-go/internal/domain/user"
	"github.com/peoplehub/hrms-backend-go/internal/pkg/validator"
)

func TestHandleError_StatusMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"invalid credentials", auth.ErrInvalidCredentials, http.StatusUnauthorized},
		{"expired token", auth.ErrTokenExpired, http.StatusUnauthorized},
		{"revoked refresh token", auth.ErrRefreshTokenRevoked, http.StatusUnauthorized},
		{"suspended tenant", auth.ErrTenantSuspended, http.StatusForbidden},
		{"insufficient permissions", user.ErrInsufficientPermissions, http.StatusForbidden},
		{"tenant not found", tenant.ErrTenantNotFound, http.StatusNotFound},
		{"employee not found", employee.ErrEmployeeNotFound, http.StatusNotFound},
		{"payslip not found", payroll.ErrPayslipNotFound, http.StatusNotFound},
		{"subdomain taken", tenant.ErrSubdomainExists, http.StatusConflict},
		{"already checked in", attendance.ErrAlreadyCheckedIn, http.StatusConflict},
		{"payslip already paid", payroll.ErrPayslipAlreadyPaid, http.StatusConflict},
		{"not checked in", attendance.ErrNotCheckedIn, http.StatusBadRequest},
		{"self manager", employee.ErrSelfManager, http.StatusBadRequest},
		{"bad status transition", payroll.ErrInvalidStatusTransition, http.StatusBadRequest},
		{"unknown error", errors.New("database exploded"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			HandleError(rec, tc.err)
			assert.Equal(t, tc.want, rec.Code)

			var body Response
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.False(t, body.Success)
			assert.NotEmpty(t, body.Message)
		})
	}
}

func TestHandleError_WrappedSentinel(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleError(rec, fmt.Errorf("load employee: %w", employee.ErrEmployeeNotFound))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleError_InternalErrorHidesDetail(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleError(rec, errors.New("pq: connection refused"))

	var body Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "An unexpected error occurred", body.Message)
	assert.NotContains(t, rec.Body.String(), "connection refused")
}

func TestHandleError_ValidationErrors(t *testing.T) {
	errs := validator.ValidationErrors{
		{Field: "email", Message: "must be a valid email address"},
		{Field: "password", Message: "must be at least 8 characters"},
	}

	rec := httptest.NewRecorder()
	HandleError(rec, errs)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var body Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, "must be a valid email address", body.Errors["email"])
	assert.Equal(t, "must be at least 8 characters", body.Errors["password"])
}
