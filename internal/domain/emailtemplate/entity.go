package emailtemplate

import "time"

// EmailTemplate is a platform managed message template. Subject and body
// use Go text/template syntax; Variables documents the placeholders the
// template expects.
type EmailTemplate struct {
	ID        string
	Name      string
	Subject   string
	Body      string
	Variables []string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

type LogStatus string

const (
	LogStatusSent   LogStatus = "SENT"
	LogStatusFailed LogStatus = "FAILED"
)

// EmailLog records one delivery attempt, successful or not.
type EmailLog struct {
	ID           string
	TemplateID   *string
	TemplateName string
	Recipient    string
	Subject      string
	Status       LogStatus
	ErrorMessage *string
	SentAt       time.Time
}

type LogFilter struct {
	TemplateID string
	Status     LogStatus
	Recipient  string
	Page       int
	Limit      int
}

type LogStats struct {
	TotalSent   int64 `json:"total_sent"`
	TotalFailed int64 `json:"total_failed"`
	SentToday   int64 `json:"sent_today"`
	FailedToday int64 `json:"failed_today"`
}
