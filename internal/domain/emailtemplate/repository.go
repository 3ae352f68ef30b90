package emailtemplate

import "context"

type TemplateRepository interface {
	Create(ctx context.Context, tpl *EmailTemplate) error
	GetByID(ctx context.Context, id string) (*EmailTemplate, error)
	GetByName(ctx context.Context, name string) (*EmailTemplate, error)
	List(ctx context.Context) ([]*EmailTemplate, error)
	Update(ctx context.Context, tpl *EmailTemplate) error
	Delete(ctx context.Context, id string) error
}

type LogRepository interface {
	Create(ctx context.Context, log *EmailLog) error
	List(ctx context.Context, filter LogFilter) ([]*EmailLog, int64, error)
	GetStats(ctx context.Context) (*LogStats, error)
}
