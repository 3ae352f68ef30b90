package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/peoplehub/hrms-backend-go/internal/domain/organisation"
	"github.com/peoplehub/hrms-backend-go/internal/pkg/database"
)

type organisationRepositoryImpl struct {
	db *database.DB
}

func NewOrganisationRepository(db *database.DB) organisation.OrganisationRepository {
	return &organisationRepositoryImpl{db: db}
}

const organisationColumns = `
	id, tenant_id, name, code,
	address_line1, address_line2, city, state, country, postal_code,
	status, shift_start, grace_minutes, half_day_hours, full_day_hours,
	created_at, updated_at
`

func scanOrganisation(row pgx.Row) (organisation.Organisation, error) {
	var org organisation.Organisation
	err := row.Scan(
		&org.ID, &org.TenantID, &org.Name, &org.Code,
		&org.AddressL1, &org.AddressL2, &org.City, &org.State, &org.Country, &org.PostalCode,
		&org.Status, &org.ShiftStart, &org.GraceMinutes, &org.HalfDayHours, &org.FullDayHours,
		&org.CreatedAt, &org.UpdatedAt,
	)
	return org, err
}

// Create implements organisation.OrganisationRepository.
func (r *organisationRepositoryImpl) Create(ctx context.Context, org organisation.Organisation) (organisation.Organisation, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO organisations (
			tenant_id, name, code,
			address_line1, address_line2, city, state, country, postal_code,
			status, shift_start, grace_minutes, half_day_hours, full_day_hours
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING ` + organisationColumns

	created, err := scanOrganisation(q.QueryRow(ctx, query,
		org.TenantID, org.Name, org.Code,
		org.AddressL1, org.AddressL2, org.City, org.State, org.Country, org.PostalCode,
		org.Status, org.ShiftStart, org.GraceMinutes, org.HalfDayHours, org.FullDayHours,
	))
	if err != nil {
		if database.IsUniqueViolation(err, "organisations_tenant_id_code_key") {
			return organisation.Organisation{}, organisation.ErrCodeExists
		}
		return organisation.Organisation{}, fmt.Errorf("create organisation: %w", err)
	}
	return created, nil
}

// GetByID implements organisation.OrganisationRepository.
func (r *organisationRepositoryImpl) GetByID(ctx context.Context, id string, tenantID string) (organisation.Organisation, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + organisationColumns + ` FROM organisations WHERE id = $1 AND tenant_id = $2`

	found, err := scanOrganisation(q.QueryRow(ctx, query, id, tenantID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return organisation.Organisation{}, organisation.ErrOrganisationNotFound
		}
		return organisation.Organisation{}, fmt.Errorf("get organisation by id: %w", err)
	}
	return found, nil
}

// GetByEmployeeID implements organisation.OrganisationRepository.
func (r *organisationRepositoryImpl) GetByEmployeeID(ctx context.Context, employeeID string, tenantID string) (organisation.Organisation, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT o.id, o.tenant_id, o.name, o.code,
			o.address_line1, o.address_line2, o.city, o.state, o.country, o.postal_code,
			o.status, o.shift_start, o.grace_minutes, o.half_day_hours, o.full_day_hours,
			o.created_at, o.updated_at
		FROM organisations o
		JOIN employees e ON e.organisation_id = o.id AND e.tenant_id = o.tenant_id
		WHERE e.id = $1 AND e.tenant_id = $2
	`

	found, err := scanOrganisation(q.QueryRow(ctx, query, employeeID, tenantID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return organisation.Organisation{}, organisation.ErrOrganisationNotFound
		}
		return organisation.Organisation{}, fmt.Errorf("get organisation by employee: %w", err)
	}
	return found, nil
}

// List implements organisation.OrganisationRepository.
func (r *organisationRepositoryImpl) List(ctx context.Context, tenantID string, page, limit int) ([]organisation.Organisation, int64, error) {
	q := GetQuerier(ctx, r.db)

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM organisations WHERE tenant_id = $1`, tenantID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count organisations: %w", err)
	}

	query := `
		SELECT ` + organisationColumns + `
		FROM organisations
		WHERE tenant_id = $1
		ORDER BY name ASC
		LIMIT $2 OFFSET $3
	`

	rows, err := q.Query(ctx, query, tenantID, limit, (page-1)*limit)
	if err != nil {
		return nil, 0, fmt.Errorf("list organisations: %w", err)
	}
	defer rows.Close()

	var orgs []organisation.Organisation
	for rows.Next() {
		org, err := scanOrganisation(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan organisation: %w", err)
		}
		orgs = append(orgs, org)
	}
	return orgs, total, rows.Err()
}

// Update implements organisation.OrganisationRepository.
func (r *organisationRepositoryImpl) Update(ctx context.Context, req organisation.UpdateOrganisationRequest, tenantID string) error {
	q := GetQuerier(ctx, r.db)

	updates := make(map[string]interface{})
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.AddressL1 != nil {
		updates["address_line1"] = *req.AddressL1
	}
	if req.AddressL2 != nil {
		updates["address_line2"] = *req.AddressL2
	}
	if req.City != nil {
		updates["city"] = *req.City
	}
	if req.State != nil {
		updates["state"] = *req.State
	}
	if req.Country != nil {
		updates["country"] = *req.Country
	}
	if req.PostalCode != nil {
		updates["postal_code"] = *req.PostalCode
	}
	if req.ShiftStart != nil {
		updates["shift_start"] = *req.ShiftStart
	}
	if req.GraceMinutes != nil {
		updates["grace_minutes"] = *req.GraceMinutes
	}
	if req.HalfDayHours != nil {
		updates["half_day_hours"] = *req.HalfDayHours
	}
	if req.FullDayHours != nil {
		updates["full_day_hours"] = *req.FullDayHours
	}
	if len(updates) == 0 {
		return fmt.Errorf("no updatable fields provided for organisation update")
	}
	updates["updated_at"] = time.Now()

	setClauses := make([]string, 0, len(updates))
	args := make([]interface{}, 0, len(updates)+2)
	i := 1
	for col, val := range updates {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", col, i))
		args = append(args, val)
		i++
	}

	sql := "UPDATE organisations SET " + strings.Join(setClauses, ", ") +
		fmt.Sprintf(" WHERE id = $%d AND tenant_id = $%d RETURNING id", i, i+1)
	args = append(args, req.ID, tenantID)

	var updatedID string
	if err := q.QueryRow(ctx, sql, args...).Scan(&updatedID); err != nil {
		if err == pgx.ErrNoRows {
			return organisation.ErrOrganisationNotFound
		}
		return fmt.Errorf("update organisation: %w", err)
	}
	return nil
}

// SetStatus implements organisation.OrganisationRepository.
func (r *organisationRepositoryImpl) SetStatus(ctx context.Context, id string, tenantID string, status organisation.Status) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx,
		`UPDATE organisations SET status = $1, updated_at = NOW() WHERE id = $2 AND tenant_id = $3`,
		status, id, tenantID)
	if err != nil {
		return fmt.Errorf("set organisation status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return organisation.ErrOrganisationNotFound
	}
	return nil
}
