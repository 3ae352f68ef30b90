package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/peoplehub/hrms-backend-go/internal/domain/tenant"
	"github.com/peoplehub/hrms-backend-go/internal/pkg/database"
)

type tenantRepositoryImpl struct {
	db *database.DB
}

func NewTenantRepository(db *database.DB) tenant.TenantRepository {
	return &tenantRepositoryImpl{db: db}
}

// Create implements tenant.TenantRepository.
func (r *tenantRepositoryImpl) Create(ctx context.Context, t tenant.Tenant) (tenant.Tenant, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO tenants (name, subdomain, status)
		VALUES ($1, $2, $3)
		RETURNING id, name, subdomain, status, created_at, updated_at
	`

	var created tenant.Tenant
	err := q.QueryRow(ctx, query, t.Name, t.Subdomain, t.Status).
		Scan(&created.ID, &created.Name, &created.Subdomain, &created.Status, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		if database.IsUniqueViolation(err, "tenants_subdomain_key") {
			return tenant.Tenant{}, tenant.ErrSubdomainExists
		}
		return tenant.Tenant{}, fmt.Errorf("create tenant: %w", err)
	}
	return created, nil
}

// GetByID implements tenant.TenantRepository.
func (r *tenantRepositoryImpl) GetByID(ctx context.Context, id string) (tenant.Tenant, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, subdomain, status, created_at, updated_at
		FROM tenants
		WHERE id = $1
	`

	var found tenant.Tenant
	err := q.QueryRow(ctx, query, id).
		Scan(&found.ID, &found.Name, &found.Subdomain, &found.Status, &found.CreatedAt, &found.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return tenant.Tenant{}, tenant.ErrTenantNotFound
		}
		return tenant.Tenant{}, fmt.Errorf("get tenant by id: %w", err)
	}
	return found, nil
}

// GetBySubdomain implements tenant.TenantRepository.
func (r *tenantRepositoryImpl) GetBySubdomain(ctx context.Context, subdomain string) (tenant.Tenant, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, subdomain, status, created_at, updated_at
		FROM tenants
		WHERE subdomain = $1
	`

	var found tenant.Tenant
	err := q.QueryRow(ctx, query, subdomain).
		Scan(&found.ID, &found.Name, &found.Subdomain, &found.Status, &found.CreatedAt, &found.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return tenant.Tenant{}, tenant.ErrTenantNotFound
		}
		return tenant.Tenant{}, fmt.Errorf("get tenant by subdomain: %w", err)
	}
	return found, nil
}

// List implements tenant.TenantRepository.
func (r *tenantRepositoryImpl) List(ctx context.Context, status *tenant.Status, page, limit int) ([]tenant.Tenant, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := ""
	args := []interface{}{}
	if status != nil {
		where = " WHERE status = $1"
		args = append(args, *status)
	}

	var total int64
	if err := q.QueryRow(ctx, "SELECT COUNT(*) FROM tenants"+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count tenants: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT id, name, subdomain, status, created_at, updated_at
		FROM tenants%s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d
	`, where, len(args)+1, len(args)+2)
	args = append(args, limit, (page-1)*limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list tenants: %w", err)
	}
	defer rows.Close()

	var tenants []tenant.Tenant
	for rows.Next() {
		var t tenant.Tenant
		if err := rows.Scan(&t.ID, &t.Name, &t.Subdomain, &t.Status, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan tenant: %w", err)
		}
		tenants = append(tenants, t)
	}
	return tenants, total, rows.Err()
}

// UpdateStatus implements tenant.TenantRepository.
func (r *tenantRepositoryImpl) UpdateStatus(ctx context.Context, id string, status tenant.Status) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE tenants SET status = $1, updated_at = NOW() WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("update tenant status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return tenant.ErrTenantNotFound
	}
	return nil
}

// CountByStatus implements tenant.TenantRepository.
func (r *tenantRepositoryImpl) CountByStatus(ctx context.Context) (map[tenant.Status]int64, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT status, COUNT(*) FROM tenants GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("count tenants by status: %w", err)
	}
	defer rows.Close()

	counts := make(map[tenant.Status]int64)
	for rows.Next() {
		var status tenant.Status
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("scan tenant count: %w", err)
		}
		counts[status] = count
	}
	return counts, rows.Err()
}
