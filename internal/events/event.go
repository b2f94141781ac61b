// Package events implements the moderation event log for Vigil.
// Events are an append-only record of content lifecycle transitions used for
// timeline rendering and time-series analytics. They are never updated or
// deleted; corrections are made by appending new events.
package events

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Type identifies the lifecycle transition an event records.
type Type string

const (
	TypeCreated   Type = "CREATED"
	TypeUpdated   Type = "UPDATED"
	TypeModerated Type = "MODERATED"
)

// Types lists all valid event types.
var Types = []Type{TypeCreated, TypeUpdated, TypeModerated}

// ParseType validates a raw event type value.
func ParseType(s string) (Type, error) {
	t := Type(s)
	switch t {
	case TypeCreated, TypeUpdated, TypeModerated:
		return t, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidType, s)
}

// Event is one lifecycle marker for a content item. Payload holds the raw
// stored document; use Decode or FinalStatus to interpret it by type.
type Event struct {
	ID        uuid.UUID       `json:"id"`
	ContentID uuid.UUID       `json:"content_id"`
	EventType Type            `json:"event_type"`
	Payload   json.RawMessage `json:"payload"`
	CreatedAt time.Time       `json:"created_at"`
}

// Decode unmarshals the event payload into its typed form.
func (e Event) Decode() (Payload, error) {
	switch e.EventType {
	case TypeCreated:
		return CreatedPayload{}, nil
	case TypeModerated:
		var p ModeratedPayload
		if err := json.Unmarshal(e.Payload, &p); err != nil {
			return nil, fmt.Errorf("decode moderated payload: %w", err)
		}
		return p, nil
	case TypeUpdated:
		var p UpdatedPayload
		if err := json.Unmarshal(e.Payload, &p); err != nil {
			return nil, fmt.Errorf("decode updated payload: %w", err)
		}
		return p, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrInvalidType, e.EventType)
}

// FinalStatus returns the final status this event transitioned the content to.
// Only MODERATED and UPDATED events carry one; ok is false otherwise.
func (e Event) FinalStatus() (string, bool) {
	p, err := e.Decode()
	if err != nil {
		return "", false
	}

	switch v := p.(type) {
	case ModeratedPayload:
		return v.FinalStatus, v.FinalStatus != ""
	case UpdatedPayload:
		return v.New.FinalStatus, v.New.FinalStatus != ""
	}
	return "", false
}
