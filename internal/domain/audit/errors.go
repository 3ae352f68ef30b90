package audit

import "errors"

var ErrAuditEntryNotFound = errors.New("audit entry not found")
