package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/peoplehub/hrms-backend-go/internal/domain/emailtemplate"
	"github.com/peoplehub/hrms-backend-go/internal/pkg/database"
)

type emailTemplateRepositoryImpl struct {
	db *database.DB
}

func NewEmailTemplateRepository(db *database.DB) emailtemplate.TemplateRepository {
	return &emailTemplateRepositoryImpl{db: db}
}

const emailTemplateColumns = `id, name, subject, body, variables, is_active, created_at, updated_at`

func scanEmailTemplate(row pgx.Row) (*emailtemplate.EmailTemplate, error) {
	var t emailtemplate.EmailTemplate
	if err := row.Scan(&t.ID, &t.Name, &t.Subject, &t.Body, &t.Variables, &t.IsActive, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return nil, err
	}
	return &t, nil
}

// Create implements emailtemplate.TemplateRepository.
func (r *emailTemplateRepositoryImpl) Create(ctx context.Context, tpl *emailtemplate.EmailTemplate) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO email_templates (name, subject, body, variables, is_active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, tpl.Name, tpl.Subject, tpl.Body, tpl.Variables, tpl.IsActive).
		Scan(&tpl.ID, &tpl.CreatedAt, &tpl.UpdatedAt)
	if err != nil {
		if database.IsUniqueViolation(err, "email_templates_name_key") {
			return emailtemplate.ErrTemplateNameExists
		}
		return fmt.Errorf("create email template: %w", err)
	}
	return nil
}

// GetByID implements emailtemplate.TemplateRepository.
func (r *emailTemplateRepositoryImpl) GetByID(ctx context.Context, id string) (*emailtemplate.EmailTemplate, error) {
	q := GetQuerier(ctx, r.db)

	found, err := scanEmailTemplate(q.QueryRow(ctx, `SELECT `+emailTemplateColumns+` FROM email_templates WHERE id = $1`, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, emailtemplate.ErrTemplateNotFound
		}
		return nil, fmt.Errorf("get email template by id: %w", err)
	}
	return found, nil
}

// GetByName implements emailtemplate.TemplateRepository.
func (r *emailTemplateRepositoryImpl) GetByName(ctx context.Context, name string) (*emailtemplate.EmailTemplate, error) {
	q := GetQuerier(ctx, r.db)

	found, err := scanEmailTemplate(q.QueryRow(ctx, `SELECT `+emailTemplateColumns+` FROM email_templates WHERE name = $1`, name))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, emailtemplate.ErrTemplateNotFound
		}
		return nil, fmt.Errorf("get email template by name: %w", err)
	}
	return found, nil
}

// List implements emailtemplate.TemplateRepository.
func (r *emailTemplateRepositoryImpl) List(ctx context.Context) ([]*emailtemplate.EmailTemplate, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT `+emailTemplateColumns+` FROM email_templates ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("list email templates: %w", err)
	}
	defer rows.Close()

	var templates []*emailtemplate.EmailTemplate
	for rows.Next() {
		t, err := scanEmailTemplate(rows)
		if err != nil {
			return nil, fmt.Errorf("scan email template: %w", err)
		}
		templates = append(templates, t)
	}
	return templates, rows.Err()
}

// Update implements emailtemplate.TemplateRepository.
func (r *emailTemplateRepositoryImpl) Update(ctx context.Context, tpl *emailtemplate.EmailTemplate) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE email_templates
		SET subject = $1, body = $2, variables = $3, is_active = $4, updated_at = NOW()
		WHERE id = $5
	`, tpl.Subject, tpl.Body, tpl.Variables, tpl.IsActive, tpl.ID)
	if err != nil {
		return fmt.Errorf("update email template: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return emailtemplate.ErrTemplateNotFound
	}
	return nil
}

// Delete implements emailtemplate.TemplateRepository.
func (r *emailTemplateRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM email_templates WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete email template: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return emailtemplate.ErrTemplateNotFound
	}
	return nil
}

type emailLogRepositoryImpl struct {
	db *database.DB
}

func NewEmailLogRepository(db *database.DB) emailtemplate.LogRepository {
	return &emailLogRepositoryImpl{db: db}
}

// Create implements emailtemplate.LogRepository.
func (r *emailLogRepositoryImpl) Create(ctx context.Context, log *emailtemplate.EmailLog) error {
	q := GetQuerier(ctx, r.db)

	err := q.QueryRow(ctx, `
		INSERT INTO email_logs (template_id, recipient, subject, status, error_message, sent_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING id, sent_at
	`, log.TemplateID, log.Recipient, log.Subject, log.Status, log.ErrorMessage).
		Scan(&log.ID, &log.SentAt)
	if err != nil {
		return fmt.Errorf("create email log: %w", err)
	}
	return nil
}

// List implements emailtemplate.LogRepository.
func (r *emailLogRepositoryImpl) List(ctx context.Context, filter emailtemplate.LogFilter) ([]*emailtemplate.EmailLog, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := " WHERE 1=1"
	args := []interface{}{}

	if filter.TemplateID != "" {
		where += fmt.Sprintf(" AND l.template_id = $%d", len(args)+1)
		args = append(args, filter.TemplateID)
	}
	if filter.Status != "" {
		where += fmt.Sprintf(" AND l.status = $%d", len(args)+1)
		args = append(args, filter.Status)
	}
	if filter.Recipient != "" {
		where += fmt.Sprintf(" AND l.recipient ILIKE $%d", len(args)+1)
		args = append(args, "%"+filter.Recipient+"%")
	}

	var total int64
	if err := q.QueryRow(ctx, "SELECT COUNT(*) FROM email_logs l"+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count email logs: %w", err)
	}

	query := `
		SELECT l.id, l.template_id, COALESCE(t.name, ''), l.recipient, l.subject, l.status, l.error_message, l.sent_at
		FROM email_logs l
		LEFT JOIN email_templates t ON t.id = l.template_id` + where +
		fmt.Sprintf(" ORDER BY l.sent_at DESC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list email logs: %w", err)
	}
	defer rows.Close()

	var logs []*emailtemplate.EmailLog
	for rows.Next() {
		var l emailtemplate.EmailLog
		if err := rows.Scan(&l.ID, &l.TemplateID, &l.TemplateName, &l.Recipient, &l.Subject, &l.Status, &l.ErrorMessage, &l.SentAt); err != nil {
			return nil, 0, fmt.Errorf("scan email log: %w", err)
		}
		logs = append(logs, &l)
	}
	return logs, total, rows.Err()
}

// GetStats implements emailtemplate.LogRepository.
func (r *emailLogRepositoryImpl) GetStats(ctx context.Context) (*emailtemplate.LogStats, error) {
	q := GetQuerier(ctx, r.db)

	stats := &emailtemplate.LogStats{}
	err := q.QueryRow(ctx, `
		SELECT
			COUNT(*) FILTER (WHERE status = 'SENT'),
			COUNT(*) FILTER (WHERE status = 'FAILED'),
			COUNT(*) FILTER (WHERE status = 'SENT' AND sent_at::date = CURRENT_DATE),
			COUNT(*) FILTER (WHERE status = 'FAILED' AND sent_at::date = CURRENT_DATE)
		FROM email_logs
	`).Scan(&stats.TotalSent, &stats.TotalFailed, &stats.SentToday, &stats.FailedToday)
	if err != nil {
		return nil, fmt.Errorf("get email log stats: %w", err)
	}
	return stats, nil
}
