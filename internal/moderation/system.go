package moderation

import (
	"context"

	"github.com/google/uuid"
)

// System defines the public contract for moderation result operations.
// Results are append-only; there is no update or delete.
type System interface {
	Handler() *Handler

	Record(ctx context.Context, contentID uuid.UUID, cmd RecordCommand) (*Result, error)
	ListByContent(ctx context.Context, contentID uuid.UUID) ([]Result, error)
}
