package superadmin

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peoplehub/hrms-backend-go/internal/domain/audit"
)

type fakeAuditStore struct {
	audit.AuditRepository
	filters   audit.Filters
	gotFilter audit.Filter
}

func (f *fakeAuditStore) GetFilters(_ context.Context) (*audit.Filters, error) {
	return &f.filters, nil
}

func (f *fakeAuditStore) List(_ context.Context, filter audit.Filter) ([]*audit.Entry, int64, error) {
	f.gotFilter = filter
	return nil, 0, nil
}

func newAuditOnlyService(repo audit.AuditRepository) SuperAdminService {
	return NewSuperAdminService(nil, nil, nil, nil, repo, nil, nil, nil, nil)
}

func TestGetAuditFilters_ReturnsDistinctValues(t *testing.T) {
	repo := &fakeAuditStore{filters: audit.Filters{
		Actions:     []string{"create", "status_change"},
		EntityTypes: []string{"employee", "organisation"},
		ActorEmails: []string{"hr@acme.test"},
	}}
	svc := newAuditOnlyService(repo)

	got, err := svc.GetAuditFilters(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"create", "status_change"}, got.Actions)
	assert.Equal(t, []string{"employee", "organisation"}, got.EntityTypes)
	assert.Equal(t, []string{"hr@acme.test"}, got.ActorEmails)
}

func TestListAuditLogs_ClampsPagination(t *testing.T) {
	repo := &fakeAuditStore{}
	svc := newAuditOnlyService(repo)

	_, err := svc.ListAuditLogs(context.Background(), audit.Filter{Page: -2, Limit: 5000})
	require.NoError(t, err)
	assert.Equal(t, 1, repo.gotFilter.Page)
	assert.Equal(t, 20, repo.gotFilter.Limit)
}
