package audit

import (
	"encoding/json"
	"time"
)

type EntryResponse struct {
	ID         string          `json:"id"`
	TenantID   *string         `json:"tenant_id,omitempty"`
	ActorID    string          `json:"actor_id"`
	ActorEmail string          `json:"actor_email"`
	ActorRole  string          `json:"actor_role"`
	Action     string          `json:"action"`
	EntityType string          `json:"entity_type"`
	EntityID   string          `json:"entity_id"`
	Before     json.RawMessage `json:"before,omitempty"`
	After      json.RawMessage `json:"after,omitempty"`
	RequestID  string          `json:"request_id,omitempty"`
	IPAddress  string          `json:"ip_address,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
}

func (e *Entry) ToResponse() *EntryResponse {
	return &EntryResponse{
		ID:         e.ID,
		TenantID:   e.TenantID,
		ActorID:    e.ActorID,
		ActorEmail: e.ActorEmail,
		ActorRole:  e.ActorRole,
		Action:     e.Action,
		EntityType: e.EntityType,
		EntityID:   e.EntityID,
		Before:     e.Before,
		After:      e.After,
		RequestID:  e.RequestID,
		IPAddress:  e.IPAddress,
		CreatedAt:  e.CreatedAt,
	}
}

type ListResponse struct {
	Entries []*EntryResponse `json:"entries"`
	Total   int64            `json:"total"`
	Page    int              `json:"page"`
	Limit   int              `json:"limit"`
}

// Filters holds the distinct values seen in the log, used to populate
// the audit log filter dropdowns.
type Filters struct {
	Actions     []string `json:"actions"`
	EntityTypes []string `json:"entity_types"`
	ActorEmails []string `json:"actor_emails"`
}
