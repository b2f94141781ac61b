package api

import (
	"github.com/vigil-labs/vigil/internal/analytics"
	"github.com/vigil-labs/vigil/internal/audits"
	"github.com/vigil-labs/vigil/internal/content"
	"github.com/vigil-labs/vigil/internal/events"
	"github.com/vigil-labs/vigil/internal/moderation"
)

// Domain holds all domain systems that comprise the API.
type Domain struct {
	Content    content.System
	Moderation moderation.System
	Events     events.System
	Audits     audits.System
	Analytics  analytics.System
}

// NewDomain creates all domain systems from the API runtime.
func NewDomain(runtime *Runtime) *Domain {
	db := runtime.Database.Connection()

	eventsSystem := events.New(db, runtime.Logger)
	auditsSystem := audits.New(db, runtime.Logger)

	contentSystem := content.New(
		db,
		eventsSystem,
		auditsSystem,
		runtime.Logger,
		runtime.Pagination,
	)

	moderationSystem := moderation.New(db, eventsSystem, runtime.Logger)

	analyticsSystem := analytics.New(db, runtime.Location, runtime.Logger)

	return &Domain{
		Content:    contentSystem,
		Moderation: moderationSystem,
		Events:     eventsSystem,
		Audits:     auditsSystem,
		Analytics:  analyticsSystem,
	}
}
