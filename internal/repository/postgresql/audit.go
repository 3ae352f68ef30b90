package postgresql

import (
	"context"
	"fmt"

	"github.com/peoplehub/hrms-backend-go/internal/domain/audit"
	"github.com/peoplehub/hrms-backend-go/internal/pkg/database"
)

type auditRepositoryImpl struct {
	db *database.DB
}

func NewAuditRepository(db *database.DB) audit.AuditRepository {
	return &auditRepositoryImpl{db: db}
}

// Record implements audit.AuditRepository.
func (r *auditRepositoryImpl) Record(ctx context.Context, entry *audit.Entry) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `
		INSERT INTO audit_logs (
			tenant_id, actor_id, actor_email, actor_role,
			action, entity_type, entity_id, before_json, after_json,
			request_id, ip_address
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`,
		entry.TenantID, entry.ActorID, entry.ActorEmail, entry.ActorRole,
		entry.Action, entry.EntityType, entry.EntityID, entry.Before, entry.After,
		entry.RequestID, entry.IPAddress,
	)
	if err != nil {
		return fmt.Errorf("record audit entry: %w", err)
	}
	return nil
}

// List implements audit.AuditRepository.
func (r *auditRepositoryImpl) List(ctx context.Context, filter audit.Filter) ([]*audit.Entry, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := " WHERE 1=1"
	args := []interface{}{}

	if filter.TenantID != "" {
		where += fmt.Sprintf(" AND tenant_id = $%d", len(args)+1)
		args = append(args, filter.TenantID)
	}
	if filter.ActorID != "" {
		where += fmt.Sprintf(" AND actor_id = $%d", len(args)+1)
		args = append(args, filter.ActorID)
	}
	if filter.Action != "" {
		where += fmt.Sprintf(" AND action = $%d", len(args)+1)
		args = append(args, filter.Action)
	}
	if filter.EntityType != "" {
		where += fmt.Sprintf(" AND entity_type = $%d", len(args)+1)
		args = append(args, filter.EntityType)
	}
	if filter.From != nil {
		where += fmt.Sprintf(" AND created_at >= $%d", len(args)+1)
		args = append(args, *filter.From)
	}
	if filter.To != nil {
		where += fmt.Sprintf(" AND created_at <= $%d", len(args)+1)
		args = append(args, *filter.To)
	}

	var total int64
	if err := q.QueryRow(ctx, "SELECT COUNT(*) FROM audit_logs"+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count audit entries: %w", err)
	}

	query := `
		SELECT id, tenant_id, actor_id, actor_email, actor_role,
			action, entity_type, entity_id, before_json, after_json,
			request_id, ip_address, created_at
		FROM audit_logs` + where +
		fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list audit entries: %w", err)
	}
	defer rows.Close()

	var entries []*audit.Entry
	for rows.Next() {
		var e audit.Entry
		if err := rows.Scan(
			&e.ID, &e.TenantID, &e.ActorID, &e.ActorEmail, &e.ActorRole,
			&e.Action, &e.EntityType, &e.EntityID, &e.Before, &e.After,
			&e.RequestID, &e.IPAddress, &e.CreatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("scan audit entry: %w", err)
		}
		entries = append(entries, &e)
	}
	return entries, total, rows.Err()
}

// GetStats implements audit.AuditRepository.
func (r *auditRepositoryImpl) GetStats(ctx context.Context) (*audit.Stats, error) {
	q := GetQuerier(ctx, r.db)

	stats := &audit.Stats{}
	err := q.QueryRow(ctx, `
		SELECT COUNT(*),
			COUNT(*) FILTER (WHERE created_at > NOW() - INTERVAL '24 hours')
		FROM audit_logs
	`).Scan(&stats.TotalEntries, &stats.Last24Hours)
	if err != nil {
		return nil, fmt.Errorf("get audit stats: %w", err)
	}

	rows, err := q.Query(ctx, `
		SELECT action, COUNT(*)
		FROM audit_logs
		GROUP BY action
		ORDER BY COUNT(*) DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("get audit action counts: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var c audit.ActionCount
		if err := rows.Scan(&c.Action, &c.Count); err != nil {
			return nil, fmt.Errorf("scan audit action count: %w", err)
		}
		stats.ByAction = append(stats.ByAction, c)
	}
	return stats, rows.Err()
}

// GetFilters implements audit.AuditRepository.
func (r *auditRepositoryImpl) GetFilters(ctx context.Context) (*audit.Filters, error) {
	q := GetQuerier(ctx, r.db)

	filters := &audit.Filters{}
	columns := []struct {
		query string
		dest  *[]string
	}{
		{"SELECT DISTINCT action FROM audit_logs ORDER BY action", &filters.Actions},
		{"SELECT DISTINCT entity_type FROM audit_logs ORDER BY entity_type", &filters.EntityTypes},
		{"SELECT DISTINCT actor_email FROM audit_logs ORDER BY actor_email", &filters.ActorEmails},
	}

	for _, col := range columns {
		rows, err := q.Query(ctx, col.query)
		if err != nil {
			return nil, fmt.Errorf("get audit filters: %w", err)
		}
		for rows.Next() {
			var v string
			if err := rows.Scan(&v); err != nil {
				rows.Close()
				return nil, fmt.Errorf("scan audit filter value: %w", err)
			}
			*col.dest = append(*col.dest, v)
		}
		rows.Close()
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("get audit filters: %w", err)
		}
	}
	return filters, nil
}
