// Package analytics implements the read-only aggregation views over the
// content, moderation, event, and audit stores. Every query degrades to
// zero-filled or empty results on empty stores and mutates nothing.
package analytics

// Summary holds the dashboard headline counts.
type Summary struct {
	TotalContent    int     `json:"total_content"`
	PendingCount    int     `json:"pending_count"`
	ApprovedCount   int     `json:"approved_count"`
	RejectedCount   int     `json:"rejected_count"`
	FlaggedCount    int     `json:"flagged_count"`
	TotalAudits     int     `json:"total_audits"`
	AvgRiskScore    float64 `json:"avg_risk_score"`
	ContentLastWeek int     `json:"content_last_week"`
}

// LabelCount is one labeled bucket of a categorical distribution.
type LabelCount struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

// RangeCount is one bucket of the risk score histogram.
type RangeCount struct {
	Range string `json:"range"`
	Count int    `json:"count"`
}

// Dataset is one aligned-index series of a time-bucketed aggregation.
type Dataset struct {
	Label string `json:"label"`
	Data  []int  `json:"data"`
}

// TimeSeries is the chart-ready shape for time-bucketed aggregations:
// one label per calendar day and one aligned-index entry per dataset.
type TimeSeries struct {
	Labels   []string  `json:"labels"`
	Datasets []Dataset `json:"datasets"`
}

// MediaTypeStatuses is one cross-tabulation row: for a single media type,
// the count of content whose corresponding facet holds each status.
type MediaTypeStatuses struct {
	MediaType string `json:"media_type"`
	Approved  int    `json:"approved"`
	Rejected  int    `json:"rejected"`
	Flagged   int    `json:"flagged"`
	Pending   int    `json:"pending"`
}

// Dashboard bundles every aggregation view for a single combined fetch.
type Dashboard struct {
	Summary               *Summary            `json:"summary"`
	StatusDistribution    []LabelCount        `json:"status_distribution"`
	MediaTypeBreakdown    []LabelCount        `json:"media_type_breakdown"`
	RiskScoreDistribution []RangeCount        `json:"risk_score_distribution"`
	ModerationOverTime    *TimeSeries         `json:"moderation_over_time"`
	AuditActivity         *TimeSeries         `json:"audit_activity"`
	StatusByMediaType     []MediaTypeStatuses `json:"status_by_media_type"`
}
