package api

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"path/filepath"
	"strconv"

	"github.com/google/uuid"

	"github.com/vigil-labs/vigil/pkg/handlers"
	"github.com/vigil-labs/vigil/pkg/routes"
	"github.com/vigil-labs/vigil/pkg/storage"
)

// mediaHandler fronts the external blob store. Clients upload image or video
// binaries here and submit the returned key as the content's facet reference;
// the domain stores and compares those keys as opaque strings.
type mediaHandler struct {
	store         storage.System
	logger        *slog.Logger
	maxUploadSize int64
}

type mediaUploadResult struct {
	Key         string `json:"key"`
	ContentType string `json:"content_type"`
	SizeBytes   int64  `json:"size_bytes"`
}

func newMediaHandler(
	store storage.System,
	logger *slog.Logger,
	maxUploadSize int64,
) *mediaHandler {
	return &mediaHandler{
		store:         store,
		logger:        logger.With("handler", "media"),
		maxUploadSize: maxUploadSize,
	}
}

func (h *mediaHandler) routes() routes.Group {
	return routes.Group{
		Prefix: "/media",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "", Handler: h.upload},
			{Method: "GET", Pattern: "/{key...}", Handler: h.download},
		},
	}
}

func (h *mediaHandler) upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(h.maxUploadSize); err != nil {
		handlers.RespondError(
			w, h.logger,
			http.StatusRequestEntityTooLarge,
			fmt.Errorf("parse upload: %w", err),
		)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}
	defer file.Close()

	key := buildMediaKey(uuid.New(), header.Filename)
	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	if err := h.store.Upload(r.Context(), key, file, contentType); err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	h.logger.Info("media uploaded", "key", key, "size", header.Size)

	handlers.RespondJSON(w, http.StatusCreated, mediaUploadResult{
		Key:         key,
		ContentType: contentType,
		SizeBytes:   header.Size,
	})
}

func (h *mediaHandler) download(w http.ResponseWriter, r *http.Request) {
	key := r.PathValue("key")

	result, err := h.store.Download(r.Context(), key)
	if err != nil {
		handlers.RespondError(w, h.logger, storage.MapHTTPStatus(err), err)
		return
	}
	defer result.Body.Close()

	w.Header().Set("Content-Type", result.ContentType)

	if result.ContentLength > 0 {
		w.Header().Set(
			"Content-Length",
			strconv.FormatInt(result.ContentLength, 10),
		)
	}
	w.Header().Set(
		"Content-Disposition",
		fmt.Sprintf("inline; filename=%q", path.Base(key)),
	)
	w.WriteHeader(http.StatusOK)
	io.Copy(w, result.Body)
}

func buildMediaKey(id uuid.UUID, filename string) string {
	name := filepath.Base(filename)
	if name == "." || name == "" {
		name = "media"
	}
	return fmt.Sprintf("media/%s/%s", id, url.PathEscape(name))
}
