package analytics

import (
	"log/slog"
	"net/http"

	"github.com/vigil-labs/vigil/pkg/handlers"
	"github.com/vigil-labs/vigil/pkg/routes"
)

// Handler provides HTTP endpoints for the aggregation views.
type Handler struct {
	sys    System
	logger *slog.Logger
}

// listResponse wraps categorical results so chart consumers receive a
// consistent {data: [...]} envelope.
type listResponse[T any] struct {
	Data []T `json:"data"`
}

// NewHandler creates a Handler with the given system and logger.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "analytics"),
	}
}

// Routes returns the route group definition for analytics endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/analytics",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/summary", Handler: h.Summary},
			{Method: "GET", Pattern: "/status-distribution", Handler: h.StatusDistribution},
			{Method: "GET", Pattern: "/media-type-breakdown", Handler: h.MediaTypeBreakdown},
			{Method: "GET", Pattern: "/risk-score-distribution", Handler: h.RiskScoreDistribution},
			{Method: "GET", Pattern: "/moderation-over-time", Handler: h.ModerationOverTime},
			{Method: "GET", Pattern: "/audit-activity", Handler: h.AuditActivity},
			{Method: "GET", Pattern: "/status-by-media-type", Handler: h.StatusByMediaType},
			{Method: "GET", Pattern: "/dashboard", Handler: h.Dashboard},
		},
	}
}

func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	s, err := h.sys.Summary(r.Context())
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, s)
}

func (h *Handler) StatusDistribution(w http.ResponseWriter, r *http.Request) {
	result, err := h.sys.StatusDistribution(r.Context())
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, listResponse[LabelCount]{Data: result})
}

func (h *Handler) MediaTypeBreakdown(w http.ResponseWriter, r *http.Request) {
	result, err := h.sys.MediaTypeBreakdown(r.Context())
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, listResponse[LabelCount]{Data: result})
}

func (h *Handler) RiskScoreDistribution(w http.ResponseWriter, r *http.Request) {
	result, err := h.sys.RiskScoreDistribution(r.Context())
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, listResponse[RangeCount]{Data: result})
}

func (h *Handler) ModerationOverTime(w http.ResponseWriter, r *http.Request) {
	series, err := h.sys.ModerationOverTime(r.Context())
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, series)
}

func (h *Handler) AuditActivity(w http.ResponseWriter, r *http.Request) {
	series, err := h.sys.AuditActivity(r.Context())
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, series)
}

func (h *Handler) StatusByMediaType(w http.ResponseWriter, r *http.Request) {
	result, err := h.sys.StatusByMediaType(r.Context())
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, listResponse[MediaTypeStatuses]{Data: result})
}

func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	d, err := h.sys.Dashboard(r.Context())
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, d)
}
