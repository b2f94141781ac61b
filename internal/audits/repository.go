package audits

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/vigil-labs/vigil/pkg/repository"
)

type repo struct {
	db     *sql.DB
	logger *slog.Logger
}

// New creates an audit trail repository implementing the System interface.
func New(db *sql.DB, logger *slog.Logger) System {
	return &repo{
		db:     db,
		logger: logger.With("system", "audits"),
	}
}

// Append writes a new audit record through the caller's querier, which may be
// a transaction so the record commits atomically with the action it documents.
// An OVERRIDDEN action requires a non-empty reason.
func (r *repo) Append(
	ctx context.Context,
	q repository.Querier,
	contentID uuid.UUID,
	action Action,
	reason string,
) (*Audit, error) {
	if _, err := ParseAction(string(action)); err != nil {
		return nil, err
	}
	if action == ActionOverridden && strings.TrimSpace(reason) == "" {
		return nil, ErrEmptyReason
	}

	insert := `
		INSERT INTO audits(id, content_id, action, reason)
		VALUES ($1, $2, $3, $4)
		RETURNING id, content_id, action, reason, created_at`

	args := []any{uuid.New(), contentID, string(action), reason}

	a, err := repository.QueryOne(ctx, q, insert, args, scanAudit)
	if err != nil {
		return nil, fmt.Errorf("append %s audit: %w", action, err)
	}

	return &a, nil
}

// ListByContent returns all audit records for a content item in creation
// order, with a stable id tie-break for records sharing a timestamp.
func (r *repo) ListByContent(ctx context.Context, contentID uuid.UUID) ([]Audit, error) {
	q := `
		SELECT id, content_id, action, reason, created_at
		FROM audits
		WHERE content_id = $1
		ORDER BY created_at, id`

	items, err := repository.QueryMany(ctx, r.db, q, []any{contentID}, scanAudit)
	if err != nil {
		return nil, fmt.Errorf("query audits: %w", err)
	}

	return items, nil
}

func scanAudit(s repository.Scanner) (Audit, error) {
	var (
		a      Audit
		action string
	)

	if err := s.Scan(&a.ID, &a.ContentID, &action, &a.Reason, &a.CreatedAt); err != nil {
		return Audit{}, err
	}

	a.Action = Action(action)
	return a, nil
}
