package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/peoplehub/hrms-backend-go/internal/domain/attendance"
	"github.com/peoplehub/hrms-backend-go/internal/pkg/database"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

const attendanceSelect = `
	SELECT a.id, a.tenant_id, a.employee_id, a.date, a.check_in, a.check_out,
		a.work_hours, a.late_by_minutes, a.status, a.created_at, a.updated_at,
		e.first_name || ' ' || e.last_name AS employee_name,
		e.employee_code
	FROM attendance a
	JOIN employees e ON e.id = a.employee_id
`

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var a attendance.Attendance
	err := row.Scan(
		&a.ID, &a.TenantID, &a.EmployeeID, &a.Date, &a.CheckIn, &a.CheckOut,
		&a.WorkHours, &a.LateByMinutes, &a.Status, &a.CreatedAt, &a.UpdatedAt,
		&a.EmployeeName, &a.EmployeeCode,
	)
	return a, err
}

// Create implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance (tenant_id, employee_id, date, check_in, check_out, work_hours, late_by_minutes, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`

	var id string
	err := q.QueryRow(ctx, query,
		att.TenantID, att.EmployeeID, att.Date, att.CheckIn, att.CheckOut,
		att.WorkHours, att.LateByMinutes, att.Status,
	).Scan(&id)
	if err != nil {
		if database.IsUniqueViolation(err, "attendance_employee_id_date_key") {
			return attendance.Attendance{}, attendance.ErrDuplicateDay
		}
		return attendance.Attendance{}, fmt.Errorf("create attendance: %w", err)
	}
	return r.GetByID(ctx, id, att.TenantID)
}

// GetByID implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetByID(ctx context.Context, id string, tenantID string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := attendanceSelect + ` WHERE a.id = $1 AND a.tenant_id = $2`

	found, err := scanAttendance(q.QueryRow(ctx, query, id, tenantID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("get attendance by id: %w", err)
	}
	return found, nil
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository. Returns
// nil without error when no record exists for the day.
func (r *attendanceRepositoryImpl) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time, tenantID string) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := attendanceSelect + ` WHERE a.employee_id = $1 AND a.date = $2 AND a.tenant_id = $3`

	found, err := scanAttendance(q.QueryRow(ctx, query, employeeID, date, tenantID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get attendance by employee and date: %w", err)
	}
	return &found, nil
}

// Update implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Update(ctx context.Context, att attendance.Attendance) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE attendance
		SET check_in = $1, check_out = $2, work_hours = $3, late_by_minutes = $4, status = $5, updated_at = NOW()
		WHERE id = $6 AND tenant_id = $7
	`, att.CheckIn, att.CheckOut, att.WorkHours, att.LateByMinutes, att.Status, att.ID, att.TenantID)
	if err != nil {
		return fmt.Errorf("update attendance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}
	return nil
}

func attendanceFilterClause(where string, args []interface{}, filter attendance.ListFilter) (string, []interface{}) {
	if filter.From != nil {
		where += fmt.Sprintf(" AND a.date >= $%d", len(args)+1)
		args = append(args, *filter.From)
	}
	if filter.To != nil {
		where += fmt.Sprintf(" AND a.date <= $%d", len(args)+1)
		args = append(args, *filter.To)
	}
	if filter.Status != nil {
		where += fmt.Sprintf(" AND a.status = $%d", len(args)+1)
		args = append(args, *filter.Status)
	}
	return where, args
}

// ListByEmployee implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string, tenantID string, filter attendance.ListFilter) ([]attendance.Attendance, int64, error) {
	where := " WHERE a.employee_id = $1 AND a.tenant_id = $2"
	args := []interface{}{employeeID, tenantID}
	where, args = attendanceFilterClause(where, args, filter)
	return r.list(ctx, where, args, filter)
}

// List implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) List(ctx context.Context, tenantID string, filter attendance.ListFilter) ([]attendance.Attendance, int64, error) {
	where := " WHERE a.tenant_id = $1"
	args := []interface{}{tenantID}
	where, args = attendanceFilterClause(where, args, filter)
	return r.list(ctx, where, args, filter)
}

func (r *attendanceRepositoryImpl) list(ctx context.Context, where string, args []interface{}, filter attendance.ListFilter) ([]attendance.Attendance, int64, error) {
	q := GetQuerier(ctx, r.db)

	var total int64
	countQuery := "SELECT COUNT(*) FROM attendance a JOIN employees e ON e.id = a.employee_id" + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count attendance: %w", err)
	}

	query := attendanceSelect + where +
		fmt.Sprintf(" ORDER BY a.date DESC, e.employee_code ASC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list attendance: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		a, err := scanAttendance(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan attendance: %w", err)
		}
		records = append(records, a)
	}
	return records, total, rows.Err()
}

// GetPeriodSummary implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetPeriodSummary(ctx context.Context, tenantID string, month, year int, employeeIDs []string) ([]attendance.PeriodSummary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT employee_id,
			COUNT(*) FILTER (WHERE status IN ('PRESENT', 'LATE')) AS present_days,
			COUNT(*) FILTER (WHERE status = 'ABSENT') AS absent_days,
			COUNT(*) FILTER (WHERE status = 'ON_LEAVE') AS leave_days,
			COUNT(*) FILTER (WHERE status = 'HALF_DAY') AS half_days,
			COUNT(*) FILTER (WHERE status = 'LATE') AS late_days
		FROM attendance
		WHERE tenant_id = $1
		  AND EXTRACT(MONTH FROM date) = $2
		  AND EXTRACT(YEAR FROM date) = $3
		  AND employee_id = ANY($4)
		GROUP BY employee_id
	`

	rows, err := q.Query(ctx, query, tenantID, month, year, employeeIDs)
	if err != nil {
		return nil, fmt.Errorf("get period summary: %w", err)
	}
	defer rows.Close()

	var summaries []attendance.PeriodSummary
	for rows.Next() {
		var s attendance.PeriodSummary
		if err := rows.Scan(&s.EmployeeID, &s.PresentDays, &s.AbsentDays, &s.LeaveDays, &s.HalfDays, &s.LateDays); err != nil {
			return nil, fmt.Errorf("scan period summary: %w", err)
		}
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}

// ListEmployeesWithoutRecord implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListEmployeesWithoutRecord(ctx context.Context, tenantID string, date time.Time) ([]string, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.id
		FROM employees e
		WHERE e.tenant_id = $1
		  AND e.status IN ('ACTIVE', 'ON_LEAVE')
		  AND e.joining_date <= $2
		  AND NOT EXISTS (
			SELECT 1 FROM attendance a WHERE a.employee_id = e.id AND a.date = $2
		  )
	`

	rows, err := q.Query(ctx, query, tenantID, date)
	if err != nil {
		return nil, fmt.Errorf("list employees without record: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan employee id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
