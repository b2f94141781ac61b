package content

import "fmt"

// Status is the moderation state of a facet or of a content item as a whole.
type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
	StatusFlagged  Status = "FLAGGED"
)

// Statuses lists all valid status values.
var Statuses = []Status{StatusPending, StatusApproved, StatusRejected, StatusFlagged}

// ParseStatus validates a raw status value.
func ParseStatus(s string) (Status, error) {
	st := Status(s)
	switch st {
	case StatusPending, StatusApproved, StatusRejected, StatusFlagged:
		return st, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
}

// Facet is one media channel of a content item. Absent facets are fixed at
// PENDING and excluded from final-status derivation.
type Facet struct {
	Present bool
	Status  Status
}

// Facets holds the per-channel moderation state of a content item.
type Facets struct {
	Text  Facet
	Image Facet
	Video Facet
}

// present returns the statuses of the facets the content actually carries.
func (f Facets) present() []Status {
	var statuses []Status
	for _, facet := range []Facet{f.Text, f.Image, f.Video} {
		if facet.Present {
			statuses = append(statuses, facet.Status)
		}
	}
	return statuses
}

// precedence is the ordered rule table for final-status derivation: the first
// status any present facet holds wins. Only an all-APPROVED content item falls
// through to APPROVED. This table is the single source of truth shared by the
// creation, moderation, and override paths.
var precedence = []Status{StatusRejected, StatusFlagged, StatusPending}

// Derive computes the final status from the present facets using strict
// precedence REJECTED > FLAGGED > PENDING > APPROVED. A content item with no
// present facets is invalid; creation must reject it upstream.
func Derive(f Facets) (Status, error) {
	statuses := f.present()
	if len(statuses) == 0 {
		return "", ErrNoFacets
	}

	for _, dominant := range precedence {
		for _, s := range statuses {
			if s == dominant {
				return dominant, nil
			}
		}
	}

	return StatusApproved, nil
}
