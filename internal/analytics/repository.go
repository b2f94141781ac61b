package analytics

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/vigil-labs/vigil/internal/content"
	"github.com/vigil-labs/vigil/internal/events"
	"github.com/vigil-labs/vigil/internal/moderation"
	"github.com/vigil-labs/vigil/pkg/repository"
)

const (
	summaryWindowDays = 7
	seriesWindowDays  = 30
)

type repo struct {
	db     *sql.DB
	loc    *time.Location
	logger *slog.Logger
	now    func() time.Time
}

// New creates an analytics repository implementing the System interface.
// All day-boundary arithmetic uses loc, fixed at configuration time.
func New(db *sql.DB, loc *time.Location, logger *slog.Logger) System {
	return &repo{
		db:     db,
		loc:    loc,
		logger: logger.With("system", "analytics"),
		now:    time.Now,
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger)
}

func (r *repo) Summary(ctx context.Context) (*Summary, error) {
	var s Summary

	contentQ := `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE final_status = 'PENDING'),
		       COUNT(*) FILTER (WHERE final_status = 'APPROVED'),
		       COUNT(*) FILTER (WHERE final_status = 'REJECTED'),
		       COUNT(*) FILTER (WHERE final_status = 'FLAGGED'),
		       COUNT(*) FILTER (WHERE created_at >= $1)
		FROM contents`

	weekStart := WindowStart(r.now(), summaryWindowDays, r.loc)

	err := r.db.QueryRowContext(ctx, contentQ, weekStart).Scan(
		&s.TotalContent,
		&s.PendingCount,
		&s.ApprovedCount,
		&s.RejectedCount,
		&s.FlaggedCount,
		&s.ContentLastWeek,
	)
	if err != nil {
		return nil, fmt.Errorf("summarize contents: %w", err)
	}

	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM audits").Scan(&s.TotalAudits); err != nil {
		return nil, fmt.Errorf("count audits: %w", err)
	}

	avgQ := "SELECT COALESCE(AVG(risk_score), 0) FROM moderation_results"
	if err := r.db.QueryRowContext(ctx, avgQ).Scan(&s.AvgRiskScore); err != nil {
		return nil, fmt.Errorf("average risk score: %w", err)
	}

	return &s, nil
}

func (r *repo) StatusDistribution(ctx context.Context) ([]LabelCount, error) {
	q := "SELECT final_status, COUNT(*) FROM contents GROUP BY final_status"

	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("query status distribution: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int, len(content.Statuses))
	for rows.Next() {
		var (
			status string
			count  int
		)
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[status] = count
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	result := make([]LabelCount, 0, len(content.Statuses))
	for _, status := range content.Statuses {
		result = append(result, LabelCount{
			Label: string(status),
			Value: counts[string(status)],
		})
	}
	return result, nil
}

func (r *repo) MediaTypeBreakdown(ctx context.Context) ([]LabelCount, error) {
	q := "SELECT COUNT(text), COUNT(image), COUNT(video) FROM contents"

	var text, image, video int
	if err := r.db.QueryRowContext(ctx, q).Scan(&text, &image, &video); err != nil {
		return nil, fmt.Errorf("query media type breakdown: %w", err)
	}

	return []LabelCount{
		{Label: string(moderation.MediaText), Value: text},
		{Label: string(moderation.MediaImage), Value: image},
		{Label: string(moderation.MediaVideo), Value: video},
	}, nil
}

func (r *repo) RiskScoreDistribution(ctx context.Context) ([]RangeCount, error) {
	scores, err := repository.QueryMany(
		ctx, r.db,
		"SELECT risk_score FROM moderation_results",
		nil,
		func(s repository.Scanner) (float64, error) {
			var score float64
			err := s.Scan(&score)
			return score, err
		},
	)
	if err != nil {
		return nil, fmt.Errorf("query risk scores: %w", err)
	}

	return Histogram(scores), nil
}

func (r *repo) ModerationOverTime(ctx context.Context) (*TimeSeries, error) {
	now := r.now()
	start := WindowStart(now, seriesWindowDays, r.loc)

	q := `
		SELECT event_type, payload, created_at
		FROM moderation_events
		WHERE event_type IN ('MODERATED', 'UPDATED') AND created_at >= $1
		ORDER BY created_at, id`

	evts, err := repository.QueryMany(ctx, r.db, q, []any{start}, scanSeriesEvent)
	if err != nil {
		return nil, fmt.Errorf("query moderation events: %w", err)
	}

	series := ModerationSeries(evts, now, seriesWindowDays, r.loc)
	return &series, nil
}

func (r *repo) AuditActivity(ctx context.Context) (*TimeSeries, error) {
	now := r.now()
	start := WindowStart(now, seriesWindowDays, r.loc)

	times, err := repository.QueryMany(
		ctx, r.db,
		"SELECT created_at FROM audits WHERE created_at >= $1",
		[]any{start},
		func(s repository.Scanner) (time.Time, error) {
			var t time.Time
			err := s.Scan(&t)
			return t, err
		},
	)
	if err != nil {
		return nil, fmt.Errorf("query audit activity: %w", err)
	}

	series := ActivitySeries("audits", times, now, seriesWindowDays, r.loc)
	return &series, nil
}

func (r *repo) StatusByMediaType(ctx context.Context) ([]MediaTypeStatuses, error) {
	q := `
		SELECT
			COUNT(*) FILTER (WHERE text IS NOT NULL AND text_status = 'APPROVED'),
			COUNT(*) FILTER (WHERE text IS NOT NULL AND text_status = 'REJECTED'),
			COUNT(*) FILTER (WHERE text IS NOT NULL AND text_status = 'FLAGGED'),
			COUNT(*) FILTER (WHERE text IS NOT NULL AND text_status = 'PENDING'),
			COUNT(*) FILTER (WHERE image IS NOT NULL AND image_status = 'APPROVED'),
			COUNT(*) FILTER (WHERE image IS NOT NULL AND image_status = 'REJECTED'),
			COUNT(*) FILTER (WHERE image IS NOT NULL AND image_status = 'FLAGGED'),
			COUNT(*) FILTER (WHERE image IS NOT NULL AND image_status = 'PENDING'),
			COUNT(*) FILTER (WHERE video IS NOT NULL AND video_status = 'APPROVED'),
			COUNT(*) FILTER (WHERE video IS NOT NULL AND video_status = 'REJECTED'),
			COUNT(*) FILTER (WHERE video IS NOT NULL AND video_status = 'FLAGGED'),
			COUNT(*) FILTER (WHERE video IS NOT NULL AND video_status = 'PENDING')
		FROM contents`

	rows := []MediaTypeStatuses{
		{MediaType: string(moderation.MediaText)},
		{MediaType: string(moderation.MediaImage)},
		{MediaType: string(moderation.MediaVideo)},
	}

	err := r.db.QueryRowContext(ctx, q).Scan(
		&rows[0].Approved, &rows[0].Rejected, &rows[0].Flagged, &rows[0].Pending,
		&rows[1].Approved, &rows[1].Rejected, &rows[1].Flagged, &rows[1].Pending,
		&rows[2].Approved, &rows[2].Rejected, &rows[2].Flagged, &rows[2].Pending,
	)
	if err != nil {
		return nil, fmt.Errorf("query status by media type: %w", err)
	}

	return rows, nil
}

// Dashboard fetches every view concurrently; reads take no locks, so the
// combined result may reflect any consistent prior point in time.
func (r *repo) Dashboard(ctx context.Context) (*Dashboard, error) {
	var d Dashboard

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		d.Summary, err = r.Summary(ctx)
		return err
	})
	g.Go(func() (err error) {
		d.StatusDistribution, err = r.StatusDistribution(ctx)
		return err
	})
	g.Go(func() (err error) {
		d.MediaTypeBreakdown, err = r.MediaTypeBreakdown(ctx)
		return err
	})
	g.Go(func() (err error) {
		d.RiskScoreDistribution, err = r.RiskScoreDistribution(ctx)
		return err
	})
	g.Go(func() (err error) {
		d.ModerationOverTime, err = r.ModerationOverTime(ctx)
		return err
	})
	g.Go(func() (err error) {
		d.AuditActivity, err = r.AuditActivity(ctx)
		return err
	})
	g.Go(func() (err error) {
		d.StatusByMediaType, err = r.StatusByMediaType(ctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &d, nil
}

func scanSeriesEvent(s repository.Scanner) (events.Event, error) {
	var (
		e         events.Event
		eventType string
		payload   []byte
	)

	if err := s.Scan(&eventType, &payload, &e.CreatedAt); err != nil {
		return events.Event{}, err
	}

	e.EventType = events.Type(eventType)
	e.Payload = json.RawMessage(payload)
	return e, nil
}
