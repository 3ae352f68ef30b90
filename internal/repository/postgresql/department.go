package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/peoplehub/hrms-backend-go/internal/domain/department"
	"github.com/peoplehub/hrms-backend-go/internal/pkg/database"
)

type departmentRepositoryImpl struct {
	db *database.DB
}

func NewDepartmentRepository(db *database.DB) department.DepartmentRepository {
	return &departmentRepositoryImpl{db: db}
}

const departmentColumns = `id, tenant_id, organisation_id, name, code, description, status, created_at, updated_at`

func scanDepartment(row pgx.Row) (department.Department, error) {
	var d department.Department
	err := row.Scan(&d.ID, &d.TenantID, &d.OrganisationID, &d.Name, &d.Code, &d.Description, &d.Status, &d.CreatedAt, &d.UpdatedAt)
	return d, err
}

// Create implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) Create(ctx context.Context, dept department.Department) (department.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO departments (tenant_id, organisation_id, name, code, description, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + departmentColumns

	created, err := scanDepartment(q.QueryRow(ctx, query,
		dept.TenantID, dept.OrganisationID, dept.Name, dept.Code, dept.Description, dept.Status))
	if err != nil {
		if database.IsUniqueViolation(err, "departments_organisation_id_code_key") {
			return department.Department{}, department.ErrCodeExists
		}
		return department.Department{}, fmt.Errorf("create department: %w", err)
	}
	return created, nil
}

// GetByID implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) GetByID(ctx context.Context, id string, tenantID string) (department.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + departmentColumns + ` FROM departments WHERE id = $1 AND tenant_id = $2`

	found, err := scanDepartment(q.QueryRow(ctx, query, id, tenantID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return department.Department{}, department.ErrDepartmentNotFound
		}
		return department.Department{}, fmt.Errorf("get department by id: %w", err)
	}
	return found, nil
}

// ListByOrganisation implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) ListByOrganisation(ctx context.Context, organisationID string, tenantID string) ([]department.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + departmentColumns + `
		FROM departments
		WHERE organisation_id = $1 AND tenant_id = $2
		ORDER BY name ASC
	`

	rows, err := q.Query(ctx, query, organisationID, tenantID)
	if err != nil {
		return nil, fmt.Errorf("list departments by organisation: %w", err)
	}
	defer rows.Close()

	var depts []department.Department
	for rows.Next() {
		d, err := scanDepartment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan department: %w", err)
		}
		depts = append(depts, d)
	}
	return depts, rows.Err()
}

// List implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) List(ctx context.Context, tenantID string, page, limit int) ([]department.Department, int64, error) {
	q := GetQuerier(ctx, r.db)

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM departments WHERE tenant_id = $1`, tenantID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count departments: %w", err)
	}

	query := `
		SELECT ` + departmentColumns + `
		FROM departments
		WHERE tenant_id = $1
		ORDER BY name ASC
		LIMIT $2 OFFSET $3
	`

	rows, err := q.Query(ctx, query, tenantID, limit, (page-1)*limit)
	if err != nil {
		return nil, 0, fmt.Errorf("list departments: %w", err)
	}
	defer rows.Close()

	var depts []department.Department
	for rows.Next() {
		d, err := scanDepartment(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan department: %w", err)
		}
		depts = append(depts, d)
	}
	return depts, total, rows.Err()
}

// Update implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) Update(ctx context.Context, req department.UpdateDepartmentRequest, tenantID string) error {
	q := GetQuerier(ctx, r.db)

	updates := make(map[string]interface{})
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if len(updates) == 0 {
		return fmt.Errorf("no updatable fields provided for department update")
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

	sql := "UPDATE departments SET " + strings.Join(setClauses, ", ") +
		fmt.Sprintf(" WHERE id = $%d AND tenant_id = $%d RETURNING id", i, i+1)
	args = append(args, req.ID, tenantID)

	var updatedID string
	if err := q.QueryRow(ctx, sql, args...).Scan(&updatedID); err != nil {
		if err == pgx.ErrNoRows {
			return department.ErrDepartmentNotFound
		}
		return fmt.Errorf("update department: %w", err)
	}
	return nil
}

// SetStatus implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) SetStatus(ctx context.Context, id string, tenantID string, status department.Status) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx,
		`UPDATE departments SET status = $1, updated_at = NOW() WHERE id = $2 AND tenant_id = $3`,
		status, id, tenantID)
	if err != nil {
		return fmt.Errorf("set department status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return department.ErrDepartmentNotFound
	}
	return nil
}
