package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/vigil-labs/vigil/pkg/repository"
)

type repo struct {
	db     *sql.DB
	logger *slog.Logger
}

// New creates an event log repository implementing the System interface.
func New(db *sql.DB, logger *slog.Logger) System {
	return &repo{
		db:     db,
		logger: logger.With("system", "events"),
	}
}

// Append writes a new event through the caller's querier, which may be a
// transaction so the event commits atomically with the state change it records.
func (r *repo) Append(
	ctx context.Context,
	q repository.Querier,
	contentID uuid.UUID,
	p Payload,
) (*Event, error) {
	payload, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("marshal event payload: %w", err)
	}

	insert := `
		INSERT INTO moderation_events(id, content_id, event_type, payload)
		VALUES ($1, $2, $3, $4)
		RETURNING id, content_id, event_type, payload, created_at`

	args := []any{uuid.New(), contentID, string(p.EventType()), payload}

	e, err := repository.QueryOne(ctx, q, insert, args, scanEvent)
	if err != nil {
		return nil, fmt.Errorf("append %s event: %w", p.EventType(), err)
	}

	return &e, nil
}

// ListByContent returns all events for a content item in creation order,
// with a stable id tie-break for events sharing a timestamp.
func (r *repo) ListByContent(ctx context.Context, contentID uuid.UUID) ([]Event, error) {
	q := `
		SELECT id, content_id, event_type, payload, created_at
		FROM moderation_events
		WHERE content_id = $1
		ORDER BY created_at, id`

	items, err := repository.QueryMany(ctx, r.db, q, []any{contentID}, scanEvent)
	if err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}

	return items, nil
}

func scanEvent(s repository.Scanner) (Event, error) {
	var (
		e         Event
		eventType string
		payload   []byte
	)

	if err := s.Scan(&e.ID, &e.ContentID, &eventType, &payload, &e.CreatedAt); err != nil {
		return Event{}, err
	}

	e.EventType = Type(eventType)
	e.Payload = json.RawMessage(payload)
	return e, nil
}
