package audit

import (
	"time"
)

// Action identifies the kind of event being recorded.
type Action string

const (
	ActionToolCall   Action = "tool_call"
	ActionAuthDenied Action = "auth_denied"
)

// Outcome represents the result of an audited action.
type Outcome string

const (
	OutcomeSuccess Outcome = "success"
	OutcomeError   Outcome = "error"
	OutcomeDenied  Outcome = "denied"
)

// Event is a single audit log entry.
// Immutable once created; the trail is append-only.
type Event struct {
	ID        string    `json:"id"`
	Action    Action    `json:"action"`
	Actor     string    `json:"actor"`
	ToolName  *string   `json:"tool_name,omitempty"`
	Category  *string   `json:"category,omitempty"`
	Outcome   Outcome   `json:"outcome"`
	Detail    *string   `json:"detail,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
