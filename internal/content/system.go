package content

import (
	"context"

	"github.com/google/uuid"

	"github.com/vigil-labs/vigil/internal/audits"
	"github.com/vigil-labs/vigil/pkg/pagination"
)

// System defines the public contract for content domain operations.
// There is no delete: content is logically retired by its final status.
type System interface {
	Handler() *Handler

	List(ctx context.Context) ([]Content, error)

	Search(
		ctx context.Context,
		page pagination.PageRequest,
		filters Filters,
	) (*pagination.PageResult[Content], error)

	Find(ctx context.Context, id uuid.UUID) (*Content, error)
	Create(ctx context.Context, cmd CreateCommand) (*Content, error)
	Override(ctx context.Context, cmd OverrideCommand) (*Content, error)
	Review(ctx context.Context, id uuid.UUID, cmd ReviewCommand) (*audits.Audit, error)
}
