package moderation

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/vigil-labs/vigil/pkg/handlers"
	"github.com/vigil-labs/vigil/pkg/routes"
)

// Handler provides HTTP endpoints for moderation result ingestion and reads.
type Handler struct {
	sys    System
	logger *slog.Logger
}

// NewHandler creates a Handler with the given system and logger.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "moderation"),
	}
}

// Routes returns the route group for result endpoints, nested under content.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/content",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/{id}/results", Handler: h.ListByContent},
			{Method: "POST", Pattern: "/{id}/results", Handler: h.Record},
		},
	}
}

// Record ingests a new assessment from the external scoring pipeline.
func (h *Handler) Record(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidBody)
		return
	}

	var cmd RecordCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidBody)
		return
	}

	res, err := h.sys.Record(r.Context(), id, cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, res)
}

// ListByContent returns the results for a content record in creation order.
func (h *Handler) ListByContent(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidBody)
		return
	}

	items, err := h.sys.ListByContent(r.Context(), id)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, items)
}
