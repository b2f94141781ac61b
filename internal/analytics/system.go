package analytics

import "context"

// System defines the public contract for analytics queries. Every method is
// a pure read over committed state.
type System interface {
	Handler() *Handler

	Summary(ctx context.Context) (*Summary, error)
	StatusDistribution(ctx context.Context) ([]LabelCount, error)
	MediaTypeBreakdown(ctx context.Context) ([]LabelCount, error)
	RiskScoreDistribution(ctx context.Context) ([]RangeCount, error)
	ModerationOverTime(ctx context.Context) (*TimeSeries, error)
	AuditActivity(ctx context.Context) (*TimeSeries, error)
	StatusByMediaType(ctx context.Context) ([]MediaTypeStatuses, error)
	Dashboard(ctx context.Context) (*Dashboard, error)
}
