package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/peoplehub/hrms-backend-go/internal/domain/audit"
	"github.com/peoplehub/hrms-backend-go/internal/pkg/tenantctx"
)

// recordAudit writes an audit entry for a mutating request. Audit failures
// are logged and swallowed; they must never fail the request itself.
func recordAudit(ctx context.Context, r *http.Request, repo audit.AuditRepository, action, entityType, entityID string, before, after interface{}) {
	if repo == nil {
		return
	}

	actor, err := tenantctx.ActorFromContext(ctx)
	if err != nil {
		slog.Warn("audit entry skipped, no actor in context", "action", action, "entity_type", entityType)
		return
	}

	entry := &audit.Entry{
		ActorID:    actor.UserID,
		ActorEmail: actor.Email,
		ActorRole:  string(actor.Role),
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		RequestID:  middleware.GetReqID(ctx),
		IPAddress:  r.RemoteAddr,
	}
	if actor.TenantID != "" {
		tenantID := actor.TenantID
		entry.TenantID = &tenantID
	}
	if before != nil {
		if raw, err := json.Marshal(before); err == nil {
			entry.Before = raw
		}
	}
	if after != nil {
		if raw, err := json.Marshal(after); err == nil {
			entry.After = raw
		}
	}

	if err := repo.Record(ctx, entry); err != nil {
		slog.Error("audit record failed", "action", action, "entity_type", entityType, "entity_id", entityID, "error", err)
	}
}
