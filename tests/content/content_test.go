package content_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"testing"

	"github.com/google/uuid"

	"github.com/vigil-labs/vigil/internal/content"
)

func ptr(s string) *string { return &s }

func TestCreateCommandValidate(t *testing.T) {
	tests := []struct {
		name    string
		cmd     content.CreateCommand
		wantErr error
	}{
		{
			name: "text only",
			cmd:  content.CreateCommand{Text: ptr("hello")},
		},
		{
			name: "image only",
			cmd:  content.CreateCommand{Image: ptr("media/abc/cat.jpg")},
		},
		{
			name: "all facets",
			cmd: content.CreateCommand{
				Text:  ptr("hello"),
				Image: ptr("media/abc/cat.jpg"),
				Video: ptr("media/abc/cat.mp4"),
			},
		},
		{
			name:    "no facets",
			cmd:     content.CreateCommand{},
			wantErr: content.ErrNoFacets,
		},
		{
			name: "whitespace facets normalize to absent",
			cmd: content.CreateCommand{
				Text:  ptr("   "),
				Image: ptr(""),
			},
			wantErr: content.ErrNoFacets,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cmd.Validate()
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Validate() unexpected error: %v", err)
			}
		})
	}
}

func TestCreateCommandNormalization(t *testing.T) {
	cmd := content.CreateCommand{
		Text:  ptr("   "),
		Image: ptr("media/abc/cat.jpg"),
	}

	if err := cmd.Validate(); err != nil {
		t.Fatalf("Validate() unexpected error: %v", err)
	}
	if cmd.Text != nil {
		t.Errorf("whitespace text should normalize to nil, got %q", *cmd.Text)
	}
	if cmd.Image == nil {
		t.Error("image should survive normalization")
	}
}

func TestOverrideCommandValidate(t *testing.T) {
	valid := content.OverrideCommand{
		ContentID:   uuid.New(),
		TextStatus:  "APPROVED",
		ImageStatus: "REJECTED",
		VideoStatus: "PENDING",
		FinalStatus: "REJECTED",
		Reason:      "manual takedown",
	}

	t.Run("valid command", func(t *testing.T) {
		snap, err := valid.Validate()
		if err != nil {
			t.Fatalf("Validate() unexpected error: %v", err)
		}
		if snap.TextStatus != content.StatusApproved {
			t.Errorf("text status = %v, want APPROVED", snap.TextStatus)
		}
		if snap.FinalStatus != content.StatusRejected {
			t.Errorf("final status = %v, want REJECTED", snap.FinalStatus)
		}
	})

	t.Run("empty reason", func(t *testing.T) {
		cmd := valid
		cmd.Reason = "   "
		if _, err := cmd.Validate(); !errors.Is(err, content.ErrEmptyReason) {
			t.Errorf("Validate() error = %v, want ErrEmptyReason", err)
		}
	})

	t.Run("invalid status", func(t *testing.T) {
		cmd := valid
		cmd.ImageStatus = "BANNED"
		if _, err := cmd.Validate(); !errors.Is(err, content.ErrInvalidStatus) {
			t.Errorf("Validate() error = %v, want ErrInvalidStatus", err)
		}
	})

	t.Run("invalid final status", func(t *testing.T) {
		cmd := valid
		cmd.FinalStatus = "approved"
		if _, err := cmd.Validate(); !errors.Is(err, content.ErrInvalidStatus) {
			t.Errorf("Validate() error = %v, want ErrInvalidStatus", err)
		}
	})
}

func TestContentFacets(t *testing.T) {
	c := content.Content{
		Text:        ptr("hello"),
		TextStatus:  content.StatusApproved,
		ImageStatus: content.StatusPending,
		VideoStatus: content.StatusPending,
	}

	f := c.Facets()
	if !f.Text.Present || f.Text.Status != content.StatusApproved {
		t.Errorf("text facet = %+v, want present APPROVED", f.Text)
	}
	if f.Image.Present {
		t.Error("image facet should be absent")
	}
	if f.Video.Present {
		t.Error("video facet should be absent")
	}
}

func TestContentSnapshot(t *testing.T) {
	c := content.Content{
		TextStatus:  content.StatusApproved,
		ImageStatus: content.StatusFlagged,
		VideoStatus: content.StatusPending,
		FinalStatus: content.StatusFlagged,
	}

	snap := c.Snapshot()
	want := content.StatusSnapshot{
		TextStatus:  content.StatusApproved,
		ImageStatus: content.StatusFlagged,
		VideoStatus: content.StatusPending,
		FinalStatus: content.StatusFlagged,
	}
	if snap != want {
		t.Errorf("Snapshot() = %+v, want %+v", snap, want)
	}
}

func TestFiltersFromQuery(t *testing.T) {
	values := url.Values{}
	values.Set("final_status", "FLAGGED")
	values.Set("text", "spam")

	f := content.FiltersFromQuery(values)

	if f.FinalStatus == nil || *f.FinalStatus != "FLAGGED" {
		t.Errorf("FinalStatus = %v, want FLAGGED", f.FinalStatus)
	}
	if f.Text == nil || *f.Text != "spam" {
		t.Errorf("Text = %v, want spam", f.Text)
	}
	if f.TextStatus != nil || f.ImageStatus != nil || f.VideoStatus != nil {
		t.Error("unset filters should be nil")
	}
}

func TestFiltersFromQueryEmpty(t *testing.T) {
	f := content.FiltersFromQuery(url.Values{})
	if f.FinalStatus != nil || f.TextStatus != nil || f.ImageStatus != nil ||
		f.VideoStatus != nil || f.Text != nil {
		t.Errorf("empty query should produce zero filters, got %+v", f)
	}
}

func TestMapHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", content.ErrNotFound, http.StatusNotFound},
		{"duplicate", content.ErrDuplicate, http.StatusConflict},
		{"conflict", content.ErrConflict, http.StatusConflict},
		{"no facets", content.ErrNoFacets, http.StatusBadRequest},
		{"empty reason", content.ErrEmptyReason, http.StatusBadRequest},
		{"invalid status", content.ErrInvalidStatus, http.StatusBadRequest},
		{"invalid body", content.ErrInvalidBody, http.StatusBadRequest},
		{
			"wrapped not found",
			fmt.Errorf("find content: %w", content.ErrNotFound),
			http.StatusNotFound,
		},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := content.MapHTTPStatus(tt.err); got != tt.want {
				t.Errorf("MapHTTPStatus() = %d, want %d", got, tt.want)
			}
		})
	}
}
