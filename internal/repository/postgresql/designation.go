package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/peoplehub/hrms-backend-go/internal/domain/designation"
	"github.com/peoplehub/hrms-backend-go/internal/pkg/database"
)

type designationRepositoryImpl struct {
	db *database.DB
}

func NewDesignationRepository(db *database.DB) designation.DesignationRepository {
	return &designationRepositoryImpl{db: db}
}

const designationColumns = `id, tenant_id, department_id, name, code, level, description, status, created_at, updated_at`

func scanDesignation(row pgx.Row) (designation.Designation, error) {
	var d designation.Designation
	err := row.Scan(&d.ID, &d.TenantID, &d.DepartmentID, &d.Name, &d.Code, &d.Level, &d.Description, &d.Status, &d.CreatedAt, &d.UpdatedAt)
	return d, err
}

// Create implements designation.DesignationRepository.
func (r *designationRepositoryImpl) Create(ctx context.Context, d designation.Designation) (designation.Designation, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO designations (tenant_id, department_id, name, code, level, description, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + designationColumns

	created, err := scanDesignation(q.QueryRow(ctx, query,
		d.TenantID, d.DepartmentID, d.Name, d.Code, d.Level, d.Description, d.Status))
	if err != nil {
		if database.IsUniqueViolation(err, "designations_department_id_code_key") {
			return designation.Designation{}, designation.ErrCodeExists
		}
		return designation.Designation{}, fmt.Errorf("create designation: %w", err)
	}
	return created, nil
}

// GetByID implements designation.DesignationRepository.
func (r *designationRepositoryImpl) GetByID(ctx context.Context, id string, tenantID string) (designation.Designation, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + designationColumns + ` FROM designations WHERE id = $1 AND tenant_id = $2`

	found, err := scanDesignation(q.QueryRow(ctx, query, id, tenantID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return designation.Designation{}, designation.ErrDesignationNotFound
		}
		return designation.Designation{}, fmt.Errorf("get designation by id: %w", err)
	}
	return found, nil
}

// ListByDepartment implements designation.DesignationRepository.
func (r *designationRepositoryImpl) ListByDepartment(ctx context.Context, departmentID string, tenantID string) ([]designation.Designation, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + designationColumns + `
		FROM designations
		WHERE department_id = $1 AND tenant_id = $2
		ORDER BY level ASC, name ASC
	`

	rows, err := q.Query(ctx, query, departmentID, tenantID)
	if err != nil {
		return nil, fmt.Errorf("list designations by department: %w", err)
	}
	defer rows.Close()

	var designations []designation.Designation
	for rows.Next() {
		d, err := scanDesignation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan designation: %w", err)
		}
		designations = append(designations, d)
	}
	return designations, rows.Err()
}

// List implements designation.DesignationRepository.
func (r *designationRepositoryImpl) List(ctx context.Context, tenantID string, page, limit int) ([]designation.Designation, int64, error) {
	q := GetQuerier(ctx, r.db)

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM designations WHERE tenant_id = $1`, tenantID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count designations: %w", err)
	}

	query := `
		SELECT ` + designationColumns + `
		FROM designations
		WHERE tenant_id = $1
		ORDER BY name ASC
		LIMIT $2 OFFSET $3
	`

	rows, err := q.Query(ctx, query, tenantID, limit, (page-1)*limit)
	if err != nil {
		return nil, 0, fmt.Errorf("list designations: %w", err)
	}
	defer rows.Close()

	var designations []designation.Designation
	for rows.Next() {
		d, err := scanDesignation(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan designation: %w", err)
		}
		designations = append(designations, d)
	}
	return designations, total, rows.Err()
}

// Update implements designation.DesignationRepository.
func (r *designationRepositoryImpl) Update(ctx context.Context, req designation.UpdateDesignationRequest, tenantID string) error {
	q := GetQuerier(ctx, r.db)

	updates := make(map[string]interface{})
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Level != nil {
		updates["level"] = *req.Level
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if len(updates) == 0 {
		return fmt.Errorf("no updatable fields provided for designation update")
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

	sql := "UPDATE designations SET " + strings.Join(setClauses, ", ") +
		fmt.Sprintf(" WHERE id = $%d AND tenant_id = $%d RETURNING id", i, i+1)
	args = append(args, req.ID, tenantID)

	var updatedID string
	if err := q.QueryRow(ctx, sql, args...).Scan(&updatedID); err != nil {
		if err == pgx.ErrNoRows {
			return designation.ErrDesignationNotFound
		}
		return fmt.Errorf("update designation: %w", err)
	}
	return nil
}

// SetStatus implements designation.DesignationRepository.
func (r *designationRepositoryImpl) SetStatus(ctx context.Context, id string, tenantID string, status designation.Status) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx,
		`UPDATE designations SET status = $1, updated_at = NOW() WHERE id = $2 AND tenant_id = $3`,
		status, id, tenantID)
	if err != nil {
		return fmt.Errorf("set designation status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return designation.ErrDesignationNotFound
	}
	return nil
}
