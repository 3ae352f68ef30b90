package audit

import "context"

type AuditRepository interface {
	Record(ctx context.Context, entry *Entry) error
	List(ctx context.Context, filter Filter) ([]*Entry, int64, error)
	GetStats(ctx context.Context) (*Stats, error)
	GetFilters(ctx context.Context) (*Filters, error)
}
