package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/peoplehub/hrms-backend-go/internal/domain/employee"
	"github.com/peoplehub/hrms-backend-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeSelect = `
	SELECT e.id, e.tenant_id, e.organisation_id, e.department_id, e.designation_id, e.manager_id,
		e.employee_code, e.first_name, e.last_name, e.email,
		e.joining_date, e.leaving_date, e.status, e.created_at, e.updated_at,
		d.name AS department_name,
		g.name AS designation_name,
		CASE WHEN m.id IS NULL THEN NULL ELSE m.first_name || ' ' || m.last_name END AS manager_name
	FROM employees e
	LEFT JOIN departments d ON d.id = e.department_id
	LEFT JOIN designations g ON g.id = e.designation_id
	LEFT JOIN employees m ON m.id = e.manager_id
`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(
		&e.ID, &e.TenantID, &e.OrganisationID, &e.DepartmentID, &e.DesignationID, &e.ManagerID,
		&e.EmployeeCode, &e.FirstName, &e.LastName, &e.Email,
		&e.JoiningDate, &e.LeavingDate, &e.Status, &e.CreatedAt, &e.UpdatedAt,
		&e.DepartmentName, &e.DesignationName, &e.ManagerName,
	)
	return e, err
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (
			tenant_id, organisation_id, department_id, designation_id, manager_id,
			employee_code, first_name, last_name, email, joining_date, status
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id
	`

	var id string
	err := q.QueryRow(ctx, query,
		emp.TenantID, emp.OrganisationID, emp.DepartmentID, emp.DesignationID, emp.ManagerID,
		emp.EmployeeCode, emp.FirstName, emp.LastName, emp.Email, emp.JoiningDate, emp.Status,
	).Scan(&id)
	if err != nil {
		if database.IsUniqueViolation(err, "employees_organisation_id_employee_code_key") {
			return employee.Employee{}, employee.ErrEmployeeCodeExists
		}
		if database.IsUniqueViolation(err, "employees_organisation_id_email_key") {
			return employee.Employee{}, employee.ErrEmailExists
		}
		return employee.Employee{}, fmt.Errorf("create employee: %w", err)
	}
	return r.GetByID(ctx, id, emp.TenantID)
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string, tenantID string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := employeeSelect + ` WHERE e.id = $1 AND e.tenant_id = $2`

	found, err := scanEmployee(q.QueryRow(ctx, query, id, tenantID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("get employee by id: %w", err)
	}
	return found, nil
}

// GetByCode implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByCode(ctx context.Context, organisationID string, code string, tenantID string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := employeeSelect + ` WHERE e.organisation_id = $1 AND e.employee_code = $2 AND e.tenant_id = $3`

	found, err := scanEmployee(q.QueryRow(ctx, query, organisationID, code, tenantID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("get employee by code: %w", err)
	}
	return found, nil
}

// List implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) List(ctx context.Context, tenantID string, filter employee.ListFilter) ([]employee.Employee, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := " WHERE e.tenant_id = $1"
	args := []interface{}{tenantID}

	if filter.OrganisationID != nil {
		where += fmt.Sprintf(" AND e.organisation_id = $%d", len(args)+1)
		args = append(args, *filter.OrganisationID)
	}
	if filter.DepartmentID != nil {
		where += fmt.Sprintf(" AND e.department_id = $%d", len(args)+1)
		args = append(args, *filter.DepartmentID)
	}
	if filter.Status != nil {
		where += fmt.Sprintf(" AND e.status = $%d", len(args)+1)
		args = append(args, *filter.Status)
	}
	if filter.Search != "" {
		pos := len(args) + 1
		where += fmt.Sprintf(" AND (e.first_name ILIKE $%d OR e.last_name ILIKE $%d OR e.email ILIKE $%d OR e.employee_code ILIKE $%d)", pos, pos, pos, pos)
		args = append(args, "%"+filter.Search+"%")
	}

	var total int64
	if err := q.QueryRow(ctx, "SELECT COUNT(*) FROM employees e"+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count employees: %w", err)
	}

	query := employeeSelect + where +
		fmt.Sprintf(" ORDER BY e.first_name ASC, e.last_name ASC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan employee: %w", err)
		}
		employees = append(employees, e)
	}
	return employees, total, rows.Err()
}

// GetActiveByTenant implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetActiveByTenant(ctx context.Context, tenantID string) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := employeeSelect + ` WHERE e.tenant_id = $1 AND e.status IN ('ACTIVE', 'ON_LEAVE') ORDER BY e.employee_code ASC`

	rows, err := q.Query(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("get active employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		employees = append(employees, e)
	}
	return employees, rows.Err()
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest, tenantID string) error {
	q := GetQuerier(ctx, r.db)

	updates := make(map[string]interface{})
	if req.DepartmentID != nil {
		updates["department_id"] = *req.DepartmentID
	}
	if req.DesignationID != nil {
		updates["designation_id"] = *req.DesignationID
	}
	if req.ManagerID != nil {
		updates["manager_id"] = *req.ManagerID
	}
	if req.FirstName != nil {
		updates["first_name"] = *req.FirstName
	}
	if req.LastName != nil {
		updates["last_name"] = *req.LastName
	}
	if req.Email != nil {
		updates["email"] = *req.Email
	}
	if req.LeavingDate != nil {
		updates["leaving_date"] = *req.LeavingDate
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}
	if len(updates) == 0 {
		return fmt.Errorf("no updatable fields provided for employee update")
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

	sql := "UPDATE employees SET " + strings.Join(setClauses, ", ") +
		fmt.Sprintf(" WHERE id = $%d AND tenant_id = $%d RETURNING id", i, i+1)
	args = append(args, req.ID, tenantID)

	var updatedID string
	if err := q.QueryRow(ctx, sql, args...).Scan(&updatedID); err != nil {
		if err == pgx.ErrNoRows {
			return employee.ErrEmployeeNotFound
		}
		if database.IsUniqueViolation(err, "employees_organisation_id_email_key") {
			return employee.ErrEmailExists
		}
		return fmt.Errorf("update employee: %w", err)
	}
	return nil
}

// SetStatus implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) SetStatus(ctx context.Context, id string, tenantID string, status employee.Status) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx,
		`UPDATE employees SET status = $1, updated_at = NOW() WHERE id = $2 AND tenant_id = $3`,
		status, id, tenantID)
	if err != nil {
		return fmt.Errorf("set employee status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}
