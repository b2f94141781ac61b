package content

import (
	"net/url"

	"github.com/vigil-labs/vigil/pkg/query"
	"github.com/vigil-labs/vigil/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "contents", "c").
	Project("id", "ID").
	Project("text", "Text").
	Project("image", "Image").
	Project("video", "Video").
	Project("text_status", "TextStatus").
	Project("image_status", "ImageStatus").
	Project("video_status", "VideoStatus").
	Project("final_status", "FinalStatus").
	Project("created_at", "CreatedAt").
	Project("updated_at", "UpdatedAt")

var defaultSort = query.SortField{
	Field:      "CreatedAt",
	Descending: true,
}

// Filters contains optional filtering criteria for content queries.
// Nil fields are ignored. Status fields use exact matching; Text uses
// case-insensitive contains matching.
type Filters struct {
	FinalStatus *string `json:"final_status,omitempty"`
	TextStatus  *string `json:"text_status,omitempty"`
	ImageStatus *string `json:"image_status,omitempty"`
	VideoStatus *string `json:"video_status,omitempty"`
	Text        *string `json:"text,omitempty"`
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	return b.
		WhereEquals("FinalStatus", f.FinalStatus).
		WhereEquals("TextStatus", f.TextStatus).
		WhereEquals("ImageStatus", f.ImageStatus).
		WhereEquals("VideoStatus", f.VideoStatus).
		WhereContains("Text", f.Text)
}

// FiltersFromQuery extracts filter values from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if s := values.Get("final_status"); s != "" {
		f.FinalStatus = &s
	}
	if s := values.Get("text_status"); s != "" {
		f.TextStatus = &s
	}
	if s := values.Get("image_status"); s != "" {
		f.ImageStatus = &s
	}
	if s := values.Get("video_status"); s != "" {
		f.VideoStatus = &s
	}
	if s := values.Get("text"); s != "" {
		f.Text = &s
	}

	return f
}

func scanContent(s repository.Scanner) (Content, error) {
	var c Content
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
