package events

import (
	"context"

	"github.com/google/uuid"

	"github.com/vigil-labs/vigil/pkg/repository"
)

// System defines the public contract for event log operations.
// There is no update or delete; the log is write-once, read-many.
type System interface {
	Append(
		ctx context.Context,
		q repository.Querier,
		contentID uuid.UUID,
		p Payload,
	) (*Event, error)

	ListByContent(ctx context.Context, contentID uuid.UUID) ([]Event, error)
}
