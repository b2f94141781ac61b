package moderation

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/vigil-labs/vigil/internal/content"
	"github.com/vigil-labs/vigil/internal/events"
	"github.com/vigil-labs/vigil/pkg/repository"
)

const lockContent = `
	SELECT id, text, image, video, text_status, image_status, video_status,
	       final_status, created_at, updated_at
	FROM contents
	WHERE id = $1
	FOR UPDATE`

type repo struct {
	db     *sql.DB
	events events.System
	logger *slog.Logger
}

// New creates a moderation result repository implementing the System interface.
func New(db *sql.DB, evts events.System, logger *slog.Logger) System {
	return &repo{
		db:     db,
		events: evts,
		logger: logger.With("system", "moderation"),
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger)
}

// Record persists a new assessment and recomputes the assessed facet's status
// and the derived final status as one logical unit. The content row is locked
// for the duration, so concurrent submissions for different facets of the same
// content serialize and read each other's committed statuses rather than a
// stale snapshot. A serialization failure is retried once before surfacing.
func (r *repo) Record(ctx context.Context, contentID uuid.UUID, cmd RecordCommand) (*Result, error) {
	media, status, err := cmd.Validate()
	if err != nil {
		return nil, err
	}

	insert := `
		INSERT INTO moderation_results(id, content_id, media_type, status, risk_score, explanation)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, content_id, media_type, status, risk_score, explanation, created_at`

	res, err := repository.WithTxRetry(ctx, r.db, func(tx *sql.Tx) (Result, error) {
		c, err := repository.QueryOne(ctx, tx, lockContent, []any{contentID}, scanLockedContent)
		if err != nil {
			return Result{}, err
		}

		facets := c.Facets()
		switch media {
		case MediaText:
			if !facets.Text.Present {
				return Result{}, ErrFacetAbsent
			}
			facets.Text.Status = status
		case MediaImage:
			if !facets.Image.Present {
				return Result{}, ErrFacetAbsent
			}
			facets.Image.Status = status
		case MediaVideo:
			if !facets.Video.Present {
				return Result{}, ErrFacetAbsent
			}
			facets.Video.Status = status
		}

		final, err := content.Derive(facets)
		if err != nil {
			return Result{}, err
		}

		insertArgs := []any{
			uuid.New(),
			contentID,
			string(media),
			string(status),
			cmd.RiskScore,
			cmd.Explanation,
		}

		recorded, err := repository.QueryOne(ctx, tx, insert, insertArgs, scanResult)
		if err != nil {
			return Result{}, fmt.Errorf("insert moderation result: %w", err)
		}

		if err := repository.ExecExpectOne(
			ctx, tx,
			fmt.Sprintf(
				"UPDATE contents SET %s = $1, final_status = $2, updated_at = NOW() WHERE id = $3",
				facetColumn(media),
			),
			string(status), string(final), contentID,
		); err != nil {
			return Result{}, fmt.Errorf("update content statuses: %w", err)
		}

		payload := events.ModeratedPayload{
			MediaType:   string(media),
			Status:      string(status),
			RiskScore:   cmd.RiskScore,
			FinalStatus: string(final),
		}

		if _, err := r.events.Append(ctx, tx, contentID, payload); err != nil {
			return Result{}, err
		}

		return recorded, nil
	})

	if err != nil {
		if repository.IsSerializationFailure(err) {
			return nil, fmt.Errorf("%w: %v", content.ErrConflict, err)
		}
		return nil, repository.MapError(err, content.ErrNotFound, ErrDuplicate)
	}

	r.logger.Info(
		"moderation result recorded",
		"id", res.ID,
		"content_id", contentID,
		"media_type", res.MediaType,
		"status", res.Status,
		"risk_score", res.RiskScore,
	)
	return &res, nil
}

// ListByContent returns all results for a content item in creation order,
// with a stable id tie-break for results sharing a timestamp.
func (r *repo) ListByContent(ctx context.Context, contentID uuid.UUID) ([]Result, error) {
	q := `
		SELECT id, content_id, media_type, status, risk_score, explanation, created_at
		FROM moderation_results
		WHERE content_id = $1
		ORDER BY created_at, id`

	items, err := repository.QueryMany(ctx, r.db, q, []any{contentID}, scanResult)
	if err != nil {
		return nil, fmt.Errorf("query moderation results: %w", err)
	}

	return items, nil
}

func facetColumn(media MediaType) string {
	switch media {
	case MediaText:
		return "text_status"
	case MediaImage:
		return "image_status"
	default:
		return "video_status"
	}
}

func scanResult(s repository.Scanner) (Result, error) {
	var (
		res       Result
		mediaType string
		status    string
	)

	err := s.Scan(
		&res.ID,
		&res.ContentID,
		&mediaType,
		&status,
		&res.RiskScore,
		&res.Explanation,
		&res.CreatedAt,
	)
	if err != nil {
		return Result{}, err
	}

	res.MediaType = MediaType(mediaType)
	res.Status = content.Status(status)
	return res, nil
}

func scanLockedContent(s repository.Scanner) (content.Content, error) {
	var c content.Content
	err := s.Scan(
		&c.ID,
		&c.Text,
		&c.Image,
		&c.Video,
		&c.TextStatus,
		&c.ImageStatus,
		&c.VideoStatus,
		&c.FinalStatus,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	return c, err
}
