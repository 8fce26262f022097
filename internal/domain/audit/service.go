// Package audit records what the server did and who asked for it.
// All operations are append-only; no updates or deletes are supported.
package audit

import (
	"context"
	"database/sql"
	"time"

	"github.com/gary8403/my-binance-spot-mcp-server/pkg/uuid"
)

// Service provides audit logging backed by SQLite.
type Service struct {
	db *sql.DB
}

// NewService creates a new audit service.
func NewService(db *sql.DB) *Service {
	return &Service{db: db}
}

// Record persists a new audit event. This is the ONLY way to create audit
// events; there are no updates and no deletes.
func (s *Service) Record(ctx context.Context, event *Event) error {
	if event.ID == "" {
		event.ID = uuid.NewV7().String()
	}
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO audit_events (id, action, actor, tool_name, category, outcome, detail, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		event.ID,
		string(event.Action),
		event.Actor,
		event.ToolName,
		event.Category,
		string(event.Outcome),
		event.Detail,
		event.CreatedAt.Format(time.RFC3339Nano),
	)
	return err
}

// RecordToolCall is a helper for the common case of logging a tool invocation.
func (s *Service) RecordToolCall(ctx context.Context, actor, tool, category string, outcome Outcome, detail string) error {
	event := &Event{
		Action:   ActionToolCall,
		Actor:    actor,
		ToolName: &tool,
		Category: &category,
		Outcome:  outcome,
	}
	if detail != "" {
		event.Detail = &detail
	}
	return s.Record(ctx, event)
}

// RecordAuthDenied logs a rejected request at the credential gate.
func (s *Service) RecordAuthDenied(ctx context.Context, detail string) error {
	event := &Event{
		Action:  ActionAuthDenied,
		Actor:   "anonymous",
		Outcome: OutcomeDenied,
	}
	if detail != "" {
		event.Detail = &detail
	}
	return s.Record(ctx, event)
}

// ListRecent retrieves the most recent audit events, newest first.
func (s *Service) ListRecent(ctx context.Context, limit int) ([]*Event, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, action, actor, tool_name, category, outcome, detail, created_at
		FROM audit_events
		ORDER BY created_at DESC, id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []*Event
	for rows.Next() {
		var (
			ev        Event
			action    string
			outcome   string
			createdAt string
		)
		if err := rows.Scan(&ev.ID, &action, &ev.Actor, &ev.ToolName, &ev.Category, &outcome, &ev.Detail, &createdAt); err != nil {
			return nil, err
		}
		ev.Action = Action(action)
		ev.Outcome = Outcome(outcome)
		if ts, err := time.Parse(time.RFC3339Nano, createdAt); err == nil {
			ev.CreatedAt = ts
		}
		events = append(events, &ev)
	}
	return events, rows.Err()
}
