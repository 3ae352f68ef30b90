package audit

import (
	"encoding/json"
	"time"
)

// Entry records a single mutating action performed through the API.
type Entry struct {
	ID         string
	TenantID   *string
	ActorID    string
	ActorEmail string
	ActorRole  string
	Action     string
	EntityType string
	EntityID   string
	Before     json.RawMessage
	After      json.RawMessage
	RequestID  string
	IPAddress  string
	CreatedAt  time.Time
}

// Well known action verbs. Handlers compose them with an entity type,
// e.g. "create" + "employee".
const (
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
	ActionLogin  = "login"
	ActionStatus = "status_change"
)

type Filter struct {
	TenantID   string
	ActorID    string
	Action     string
	EntityType string
	From       *time.Time
	To         *time.Time
	Page       int
	Limit      int
}

// ActionCount is used by the super admin activity breakdown.
type ActionCount struct {
	Action string `json:"action"`
	Count  int64  `json:"count"`
}

type Stats struct {
	TotalEntries int64         `json:"total_entries"`
	Last24Hours  int64         `json:"last_24_hours"`
	ByAction     []ActionCount `json:"by_action"`
}
