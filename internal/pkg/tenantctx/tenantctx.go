// Package tenantctx carries the authenticated actor and its tenant through
// request context. Every tenant-scoped repository call takes the tenant ID
// resolved here, so a query can never silently drop the tenant predicate.
package tenantctx

import (
	"context"
	"errors"

	"github.com/peoplehub/hrms-backend-go/internal/domain/user"
)

type contextKey int

const (
	actorKey contextKey = iota
)

var (
	ErrNoActor  = errors.New("no authenticated actor in context")
	ErrNoTenant = errors.New("no tenant resolved for this request")
)

// Actor is the authenticated principal of the current request.
type Actor struct {
	UserID     string
	EmployeeID *string
	Email      string
	Role       user.Role
	TenantID   string // empty for super admins acting outside a tenant
}

// IsSuperAdmin reports whether the actor belongs to the platform plane.
func (a Actor) IsSuperAdmin() bool {
	return a.Role == user.RoleSuperAdmin
}

// WithActor returns a context carrying the actor.
func WithActor(ctx context.Context, a Actor) context.Context {
	return context.WithValue(ctx, actorKey, a)
}

// ActorFromContext returns the request actor.
func ActorFromContext(ctx context.Context) (Actor, error) {
	a, ok := ctx.Value(actorKey).(Actor)
	if !ok {
		return Actor{}, ErrNoActor
	}
	return a, nil
}

// TenantID returns the tenant the request is scoped to. Super admins without
// an explicit tenant get ErrNoTenant; tenant-scoped endpoints treat that as
// an authorization failure rather than falling back to an unscoped query.
func TenantID(ctx context.Context) (string, error) {
	a, err := ActorFromContext(ctx)
	if err != nil {
		return "", err
	}
	if a.TenantID == "" {
		return "", ErrNoTenant
	}
	return a.TenantID, nil
}
