package emailtemplate

import (
	"time"

	"github.com/peoplehub/hrms-backend-go/internal/pkg/validator"
)

type CreateTemplateRequest struct {
	Name      string   `json:"name"`
	Subject   string   `json:"subject"`
	Body      string   `json:"body"`
	Variables []string `json:"variables"`
	IsActive  *bool    `json:"is_active"`
}

func (r *CreateTemplateRequest) Validate() validator.ValidationErrors {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	} else if !validator.LengthBetween(r.Name, 2, 100) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name must be between 2 and 100 characters"})
	}
	if validator.IsEmpty(r.Subject) {
		errs = append(errs, validator.ValidationError{Field: "subject", Message: "subject is required"})
	}
	if validator.IsEmpty(r.Body) {
		errs = append(errs, validator.ValidationError{Field: "body", Message: "body is required"})
	}
	return errs
}

type UpdateTemplateRequest struct {
	Subject   *string  `json:"subject"`
	Body      *string  `json:"body"`
	Variables []string `json:"variables"`
	IsActive  *bool    `json:"is_active"`
}

func (r *UpdateTemplateRequest) Validate() validator.ValidationErrors {
	var errs validator.ValidationErrors
	if r.Subject != nil && validator.IsEmpty(*r.Subject) {
		errs = append(errs, validator.ValidationError{Field: "subject", Message: "subject cannot be empty"})
	}
	if r.Body != nil && validator.IsEmpty(*r.Body) {
		errs = append(errs, validator.ValidationError{Field: "body", Message: "body cannot be empty"})
	}
	return errs
}

type TestSendRequest struct {
	Recipient string            `json:"recipient"`
	Data      map[string]string `json:"data"`
}

func (r *TestSendRequest) Validate() validator.ValidationErrors {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.Recipient) {
		errs = append(errs, validator.ValidationError{Field: "recipient", Message: "recipient is required"})
	} else if !validator.IsValidEmail(r.Recipient) {
		errs = append(errs, validator.ValidationError{Field: "recipient", Message: "recipient must be a valid email"})
	}
	return errs
}

type TemplateResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Subject   string    `json:"subject"`
	Body      string    `json:"body"`
	Variables []string  `json:"variables"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (t *EmailTemplate) ToResponse() *TemplateResponse {
	return &TemplateResponse{
		ID:        t.ID,
		Name:      t.Name,
		Subject:   t.Subject,
		Body:      t.Body,
		Variables: t.Variables,
		IsActive:  t.IsActive,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

type LogResponse struct {
	ID           string    `json:"id"`
	TemplateID   *string   `json:"template_id,omitempty"`
	TemplateName string    `json:"template_name,omitempty"`
	Recipient    string    `json:"recipient"`
	Subject      string    `json:"subject"`
	Status       LogStatus `json:"status"`
	ErrorMessage *string   `json:"error_message,omitempty"`
	SentAt       time.Time `json:"sent_at"`
}

func (l *EmailLog) ToResponse() *LogResponse {
	return &LogResponse{
		ID:           l.ID,
		TemplateID:   l.TemplateID,
		TemplateName: l.TemplateName,
		Recipient:    l.Recipient,
		Subject:      l.Subject,
		Status:       l.Status,
		ErrorMessage: l.ErrorMessage,
		SentAt:       l.SentAt,
	}
}

type LogListResponse struct {
	Logs  []*LogResponse `json:"logs"`
	Total int64          `json:"total"`
	Page  int            `json:"page"`
	Limit int            `json:"limit"`
}
