// Package audits implements the human review audit trail for Vigil.
// Every override or review action is recorded permanently with its reason;
// records are never mutated or deleted.
package audits

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Action identifies the kind of human decision an audit records.
type Action string

const (
	ActionReviewed   Action = "REVIEWED"
	ActionOverridden Action = "OVERRIDDEN"
)

// ParseAction validates a raw audit action value.
func ParseAction(s string) (Action, error) {
	a := Action(s)
	switch a {
	case ActionReviewed, ActionOverridden:
		return a, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidAction, s)
}

// Audit is one immutable record of a human moderation decision.
type Audit struct {
	ID        uuid.UUID `json:"id"`
	ContentID uuid.UUID `json:"content_id"`
	Action    Action    `json:"action"`
	Reason    string    `json:"reason"`
	CreatedAt time.Time `json:"created_at"`
}
