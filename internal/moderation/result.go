// Package moderation implements the moderation result recorder for Vigil.
// It appends machine-produced scoring records and recomputes facet and final
// statuses through the content rule table. Results are immutable once written;
// re-scoring appends a new record and the latest per facet is authoritative.
package moderation

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vigil-labs/vigil/internal/content"
)

// MediaType identifies which facet of a content item a result assesses.
type MediaType string

const (
	MediaText  MediaType = "TXT"
	MediaImage MediaType = "IMG"
	MediaVideo MediaType = "VIDEO"
)

// MediaTypes lists all valid media type values.
var MediaTypes = []MediaType{MediaText, MediaImage, MediaVideo}

// ParseMediaType validates a raw media type value.
func ParseMediaType(s string) (MediaType, error) {
	m := MediaType(s)
	switch m {
	case MediaText, MediaImage, MediaVideo:
		return m, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidMediaType, s)
}

// Result is one machine assessment for one facet of one content item.
// RiskScore is a normalized [0,1] likelihood of policy violation produced by
// the external scoring pipeline and consumed here as an opaque input.
type Result struct {
	ID          uuid.UUID      `json:"id"`
	ContentID   uuid.UUID      `json:"content_id"`
	MediaType   MediaType      `json:"media_type"`
	Status      content.Status `json:"status"`
	RiskScore   float64        `json:"risk_score"`
	Explanation string         `json:"explanation,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
}

// RecordCommand carries a new assessment from the scoring pipeline.
type RecordCommand struct {
	MediaType   string  `json:"media_type"`
	Status      string  `json:"status"`
	RiskScore   float64 `json:"risk_score"`
	Explanation string  `json:"explanation"`
}

// Validate parses the enum values and bounds-checks the risk score.
func (cmd *RecordCommand) Validate() (MediaType, content.Status, error) {
	media, err := ParseMediaType(cmd.MediaType)
	if err != nil {
		return "", "", err
	}

	status, err := content.ParseStatus(cmd.Status)
	if err != nil {
		return "", "", err
	}

	if cmd.RiskScore < 0 || cmd.RiskScore > 1 {
		return "", "", fmt.Errorf("%w: %v", ErrInvalidRiskScore, cmd.RiskScore)
	}

	return media, status, nil
}
