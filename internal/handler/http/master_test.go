package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peoplehub/hrms-backend-go/internal/domain/audit"
	"github.com/peoplehub/hrms-backend-go/internal/domain/organisation"
	"github.com/peoplehub/hrms-backend-go/internal/domain/user"
	"github.com/peoplehub/hrms-backend-go/internal/pkg/tenantctx"
	"github.com/peoplehub/hrms-backend-go/internal/service/master"
)

// newHandlerRequest builds a request carrying chi URL params and an
// authenticated actor, the way the router middleware would.
func newHandlerRequest(method, target string, params map[string]string) *http.Request {
	r := httptest.NewRequest(method, target, nil)

	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	ctx := context.WithValue(r.Context(), chi.RouteCtxKey, rctx)
	ctx = tenantctx.WithActor(ctx, tenantctx.Actor{
		UserID:   "user-hr",
		Email:    "hr@acme.test",
		Role:     user.RoleHRManager,
		TenantID: "t1",
	})
	return r.WithContext(ctx)
}

type recordingAuditRepo struct {
	audit.AuditRepository
	entries []*audit.Entry
}

func (f *recordingAuditRepo) Record(_ context.Context, entry *audit.Entry) error {
	f.entries = append(f.entries, entry)
	return nil
}

type fakeMasterService struct {
	master.MasterService
	statusCalls map[string]string // id -> status set
}

func (f *fakeMasterService) SetOrganisationStatus(_ context.Context, id string, status organisation.Status) error {
	if f.statusCalls == nil {
		f.statusCalls = make(map[string]string)
	}
	f.statusCalls[id] = string(status)
	return nil
}

func TestDeleteOrganisation_SoftDeactivates(t *testing.T) {
	svc := &fakeMasterService{}
	auditRepo := &recordingAuditRepo{}
	handler := NewMasterHandler(svc, auditRepo)

	req := newHandlerRequest(http.MethodDelete, "/api/v1/organisations/org-1", map[string]string{"id": "org-1"})
	rec := httptest.NewRecorder()
	handler.DeleteOrganisation(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, string(organisation.StatusInactive), svc.statusCalls["org-1"])

	require.Len(t, auditRepo.entries, 1)
	assert.Equal(t, audit.ActionDelete, auditRepo.entries[0].Action)
	assert.Equal(t, "organisation", auditRepo.entries[0].EntityType)
	assert.Equal(t, "org-1", auditRepo.entries[0].EntityID)
}
