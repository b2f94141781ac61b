package content

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/vigil-labs/vigil/internal/audits"
	"github.com/vigil-labs/vigil/internal/events"
	"github.com/vigil-labs/vigil/pkg/pagination"
	"github.com/vigil-labs/vigil/pkg/query"
	"github.com/vigil-labs/vigil/pkg/repository"
)

const selectForUpdate = `
	SELECT id, text, image, video, text_status, image_status, video_status,
	       final_status, created_at, updated_at
	FROM contents
	WHERE id = $1
	FOR UPDATE`

type repo struct {
	db         *sql.DB
	events     events.System
	audits     audits.System
	logger     *slog.Logger
	pagination pagination.Config
}

// New creates a content repository implementing the System interface.
// Event and audit appends ride inside content transactions so a validation
// or write failure never leaves a partial record behind.
func New(
	db *sql.DB,
	evts events.System,
	auds audits.System,
	logger *slog.Logger,
	pagination pagination.Config,
) System {
	return &repo{
		db:         db,
		events:     evts,
		audits:     auds,
		logger:     logger.With("system", "content"),
		pagination: pagination,
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.events, r.audits, r.logger, r.pagination)
}

// List returns every content record, newest first. The review table consumes
// this as a plain array; use Search for paginated access.
func (r *repo) List(ctx context.Context) ([]Content, error) {
	q, args := query.NewBuilder(projection, defaultSort).Build()

	items, err := repository.QueryMany(ctx, r.db, q, args, scanContent)
	if err != nil {
		return nil, fmt.Errorf("query contents: %w", err)
	}

	return items, nil
}

func (r *repo) Search(
	ctx context.Context,
	page pagination.PageRequest,
	filters Filters,
) (*pagination.PageResult[Content], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort).
		WhereSearch(page.Search, "Text")

	filters.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count contents: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	items, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanContent)
	if err != nil {
		return nil, fmt.Errorf("query contents: %w", err)
	}

	result := pagination.NewPageResult(items, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Content, error) {
	q, args := query.NewBuilder(projection).BuildSingle("ID", id)

	c, err := repository.QueryOne(ctx, r.db, q, args, scanContent)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &c, nil
}

// Create registers a new content record with every status PENDING and appends
// the CREATED event in the same transaction.
func (r *repo) Create(ctx context.Context, cmd CreateCommand) (*Content, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	insert := `
		INSERT INTO contents(id, text, image, video)
		VALUES ($1, $2, $3, $4)
		RETURNING id, text, image, video, text_status, image_status, video_status,
		          final_status, created_at, updated_at`

	args := []any{uuid.New(), cmd.Text, cmd.Image, cmd.Video}

	c, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Content, error) {
		created, err := repository.QueryOne(ctx, tx, insert, args, scanContent)
		if err != nil {
			return Content{}, err
		}

		if _, err := r.events.Append(ctx, tx, created.ID, events.CreatedPayload{}); err != nil {
			return Content{}, err
		}

		return created, nil
	})

	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("content created", "id", c.ID, "final_status", c.FinalStatus)
	return &c, nil
}

// Override applies a human status assignment. The content row is locked for
// the duration so a concurrent moderation pass cannot interleave, and the
// OVERRIDDEN audit plus UPDATED event commit atomically with the new statuses.
func (r *repo) Override(ctx context.Context, cmd OverrideCommand) (*Content, error) {
	next, err := cmd.Validate()
	if err != nil {
		return nil, err
	}

	update := `
		UPDATE contents
		SET text_status = $1, image_status = $2, video_status = $3,
		    final_status = $4, updated_at = NOW()
		WHERE id = $5
		RETURNING id, text, image, video, text_status, image_status, video_status,
		          final_status, created_at, updated_at`

	c, err := repository.WithTxRetry(ctx, r.db, func(tx *sql.Tx) (Content, error) {
		current, err := repository.QueryOne(ctx, tx, selectForUpdate, []any{cmd.ContentID}, scanContent)
		if err != nil {
			return Content{}, err
		}

		updateArgs := []any{
			string(next.TextStatus),
			string(next.ImageStatus),
			string(next.VideoStatus),
			string(next.FinalStatus),
			cmd.ContentID,
		}

		updated, err := repository.QueryOne(ctx, tx, update, updateArgs, scanContent)
		if err != nil {
			return Content{}, err
		}

		if _, err := r.audits.Append(
			ctx, tx,
			updated.ID,
			audits.ActionOverridden,
			cmd.Reason,
		); err != nil {
			return Content{}, err
		}

		payload := events.UpdatedPayload{
			Old: statusSet(current.Snapshot()),
			New: statusSet(updated.Snapshot()),
		}

		if _, err := r.events.Append(ctx, tx, updated.ID, payload); err != nil {
			return Content{}, err
		}

		return updated, nil
	})

	if err != nil {
		if repository.IsSerializationFailure(err) {
			return nil, fmt.Errorf("%w: %v", ErrConflict, err)
		}
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info(
		"content overridden",
		"id", c.ID,
		"final_status", c.FinalStatus,
		"reason", cmd.Reason,
	)
	return &c, nil
}

// Review records a human review pass in the audit trail without touching
// any status.
func (r *repo) Review(ctx context.Context, id uuid.UUID, cmd ReviewCommand) (*audits.Audit, error) {
	if _, err := r.Find(ctx, id); err != nil {
		return nil, err
	}

	a, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (*audits.Audit, error) {
		return r.audits.Append(ctx, tx, id, audits.ActionReviewed, cmd.Reason)
	})

	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("content reviewed", "id", id)
	return a, nil
}

func statusSet(s StatusSnapshot) events.StatusSet {
	return events.StatusSet{
		TextStatus:  string(s.TextStatus),
		ImageStatus: string(s.ImageStatus),
		VideoStatus: string(s.VideoStatus),
		FinalStatus: string(s.FinalStatus),
	}
}
