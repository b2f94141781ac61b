// Package content implements the content domain for Vigil. It owns Content
// records and their lifecycle and is the single source of truth for per-facet
// and final moderation statuses. Records are never physically deleted;
// moderation requires a permanent record.
package content

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Content represents one submitted item with up to three media facets.
// Text holds the submitted text itself; Image and Video hold opaque
// references into the external media store.
type Content struct {
	ID          uuid.UUID `json:"id"`
	Text        *string   `json:"text,omitempty"`
	Image       *string   `json:"image,omitempty"`
	Video       *string   `json:"video,omitempty"`
	TextStatus  Status    `json:"text_status"`
	ImageStatus Status    `json:"image_status"`
	VideoStatus Status    `json:"video_status"`
	FinalStatus Status    `json:"final_status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Facets returns the per-channel moderation state, marking absent channels.
func (c *Content) Facets() Facets {
	return Facets{
		Text:  Facet{Present: c.Text != nil, Status: c.TextStatus},
		Image: Facet{Present: c.Image != nil, Status: c.ImageStatus},
		Video: Facet{Present: c.Video != nil, Status: c.VideoStatus},
	}
}

// StatusSnapshot captures the full status assignment of a content item,
// used for recording before/after state on override events.
type StatusSnapshot struct {
	TextStatus  Status `json:"text_status"`
	ImageStatus Status `json:"image_status"`
	VideoStatus Status `json:"video_status"`
	FinalStatus Status `json:"final_status"`
}

// Snapshot returns the current status assignment.
func (c *Content) Snapshot() StatusSnapshot {
	return StatusSnapshot{
		TextStatus:  c.TextStatus,
		ImageStatus: c.ImageStatus,
		VideoStatus: c.VideoStatus,
		FinalStatus: c.FinalStatus,
	}
}

// CreateCommand carries the data needed to submit new content.
// At least one facet must be present.
type CreateCommand struct {
	Text  *string `json:"text,omitempty"`
	Image *string `json:"image,omitempty"`
	Video *string `json:"video,omitempty"`
}

// Validate normalizes empty facets to absent and rejects facet-less submissions.
func (cmd *CreateCommand) Validate() error {
	cmd.Text = normalizeFacet(cmd.Text)
	cmd.Image = normalizeFacet(cmd.Image)
	cmd.Video = normalizeFacet(cmd.Video)

	if cmd.Text == nil && cmd.Image == nil && cmd.Video == nil {
		return ErrNoFacets
	}
	return nil
}

// OverrideCommand carries a full status assignment from an authorized human
// reviewer plus the mandatory reason. This is the only path allowed to set
// the final status out of derived order.
type OverrideCommand struct {
	ContentID   uuid.UUID `json:"content_id"`
	TextStatus  string    `json:"text_status"`
	ImageStatus string    `json:"image_status"`
	VideoStatus string    `json:"video_status"`
	FinalStatus string    `json:"final_status"`
	Reason      string    `json:"reason"`
}

// Validate checks the reason and parses every status value.
func (cmd *OverrideCommand) Validate() (StatusSnapshot, error) {
	if strings.TrimSpace(cmd.Reason) == "" {
		return StatusSnapshot{}, ErrEmptyReason
	}

	var (
		snap StatusSnapshot
		err  error
	)

	if snap.TextStatus, err = ParseStatus(cmd.TextStatus); err != nil {
		return StatusSnapshot{}, err
	}
	if snap.ImageStatus, err = ParseStatus(cmd.ImageStatus); err != nil {
		return StatusSnapshot{}, err
	}
	if snap.VideoStatus, err = ParseStatus(cmd.VideoStatus); err != nil {
		return StatusSnapshot{}, err
	}
	if snap.FinalStatus, err = ParseStatus(cmd.FinalStatus); err != nil {
		return StatusSnapshot{}, err
	}

	return snap, nil
}

// ReviewCommand records a human review pass without changing any status.
type ReviewCommand struct {
	Reason string `json:"reason"`
}

func normalizeFacet(v *string) *string {
	if v == nil {
		return nil
	}
	if strings.TrimSpace(*v) == "" {
		return nil
	}
	return v
}
