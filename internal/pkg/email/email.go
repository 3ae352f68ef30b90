package email

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/smtp"
	"text/template"
	"time"

	"github.com/peoplehub/hrms-backend-go/internal/config"
	"github.com/peoplehub/hrms-backend-go/internal/domain/emailtemplate"
)

const maxRetries = 3

// EmailService renders platform managed templates and delivers them over
// SMTP. Every delivery attempt is recorded as an email log row, failed or
// not.
type EmailService interface {
	// Send looks the template up by name, renders it with data and
	// delivers it to the recipient.
	Send(ctx context.Context, templateName, to string, data map[string]string) error

	// SendTemplate delivers an already loaded template. Used by the test
	// send endpoint so inactive templates can still be exercised.
	SendTemplate(ctx context.Context, tpl *emailtemplate.EmailTemplate, to string, data map[string]string) error
}

type emailServiceImpl struct {
	cfg       config.SMTPConfig
	templates emailtemplate.TemplateRepository
	logs      emailtemplate.LogRepository
}

// NewEmailService creates a new email service instance
func NewEmailService(cfg config.SMTPConfig, templates emailtemplate.TemplateRepository, logs emailtemplate.LogRepository) EmailService {
	return &emailServiceImpl{
		cfg:       cfg,
		templates: templates,
		logs:      logs,
	}
}

// Send implements EmailService.
func (s *emailServiceImpl) Send(ctx context.Context, templateName, to string, data map[string]string) error {
	tpl, err := s.templates.GetByName(ctx, templateName)
	if err != nil {
		return err
	}
	if !tpl.IsActive {
		return emailtemplate.ErrTemplateInactive
	}
	return s.SendTemplate(ctx, tpl, to, data)
}

// SendTemplate implements EmailService.
func (s *emailServiceImpl) SendTemplate(ctx context.Context, tpl *emailtemplate.EmailTemplate, to string, data map[string]string) error {
	subject, body, err := render(tpl, data)
	if err != nil {
		return fmt.Errorf("%w: %v", emailtemplate.ErrTemplateRender, err)
	}

	sendErr := s.deliver(to, subject, body)
	s.record(ctx, tpl, to, subject, sendErr)
	return sendErr
}

func render(tpl *emailtemplate.EmailTemplate, data map[string]string) (subject, body string, err error) {
	subjectTmpl, err := template.New("subject").Parse(tpl.Subject)
	if err != nil {
		return "", "", fmt.Errorf("parse subject: %w", err)
	}
	bodyTmpl, err := template.New("body").Parse(tpl.Body)
	if err != nil {
		return "", "", fmt.Errorf("parse body: %w", err)
	}

	var subjectBuf, bodyBuf bytes.Buffer
	if err := subjectTmpl.Execute(&subjectBuf, data); err != nil {
		return "", "", fmt.Errorf("render subject: %w", err)
	}
	if err := bodyTmpl.Execute(&bodyBuf, data); err != nil {
		return "", "", fmt.Errorf("render body: %w", err)
	}
	return subjectBuf.String(), bodyBuf.String(), nil
}

func (s *emailServiceImpl) record(ctx context.Context, tpl *emailtemplate.EmailTemplate, to, subject string, sendErr error) {
	log := &emailtemplate.EmailLog{
		TemplateID: &tpl.ID,
		Recipient:  to,
		Subject:    subject,
		Status:     emailtemplate.LogStatusSent,
	}
	if sendErr != nil {
		msg := sendErr.Error()
		log.Status = emailtemplate.LogStatusFailed
		log.ErrorMessage = &msg
	}
	if err := s.logs.Create(ctx, log); err != nil {
		slog.Error("Failed to record email log", "to", to, "error", err)
	}
}

func (s *emailServiceImpl) deliver(to, subject, htmlBody string) error {
	// Skip sending if SMTP is not configured
	if s.cfg.Host == "" {
		slog.Warn("SMTP not configured, skipping email send", "to", to, "subject", subject)
		return nil
	}

	from := s.cfg.From

	headers := fmt.Sprintf("From: %s <%s>\r\n", s.cfg.FromName, from)
	headers += fmt.Sprintf("To: %s\r\n", to)
	headers += fmt.Sprintf("Subject: %s\r\n", subject)
	headers += "MIME-Version: 1.0\r\n"
	headers += "Content-Type: text/html; charset=\"UTF-8\"\r\n"
	headers += "\r\n"

	message := []byte(headers + htmlBody)

	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)

	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		err := smtp.SendMail(addr, auth, from, []string{to}, message)
		if err == nil {
			slog.Info("Email sent successfully", "to", to, "subject", subject, "attempt", attempt)
			return nil
		}

		lastErr = err
		slog.Error("Failed to send email",
			"to", to,
			"subject", subject,
			"attempt", attempt,
			"max_retries", maxRetries,
			"error", err,
		)

		// Exponential backoff: 1s, 2s, 4s
		if attempt < maxRetries {
			time.Sleep(time.Duration(1<<(attempt-1)) * time.Second)
		}
	}

	return fmt.Errorf("failed to send email after %d attempts: %w", maxRetries, lastErr)
}
