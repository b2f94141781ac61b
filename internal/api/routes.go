package api

import (
	"net/http"

	"github.com/vigil-labs/vigil/internal/config"
	"github.com/vigil-labs/vigil/pkg/routes"
)

func registerRoutes(
	mux *http.ServeMux,
	domain *Domain,
	cfg *config.Config,
	runtime *Runtime,
) {
	contentHandler := domain.Content.Handler()

	media := newMediaHandler(
		runtime.Storage,
		runtime.Logger,
		cfg.API.MaxUploadSizeBytes(),
	)

	routes.Register(
		mux,
		contentHandler.Routes(),
		contentHandler.UploadRoutes(),
		domain.Moderation.Handler().Routes(),
		domain.Analytics.Handler().Routes(),
		media.routes(),
	)
}
