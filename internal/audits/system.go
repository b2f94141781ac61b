package audits

import (
	"context"

	"github.com/google/uuid"

	"github.com/vigil-labs/vigil/pkg/repository"
)

// System defines the public contract for audit trail operations.
// There is no update or delete; the trail is write-once, read-many.
type System interface {
	Append(
		ctx context.Context,
		q repository.Querier,
		contentID uuid.UUID,
		action Action,
		reason string,
	) (*Audit, error)

	ListByContent(ctx context.Context, contentID uuid.UUID) ([]Audit, error)
}
