package audits_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/vigil-labs/vigil/internal/audits"
)

func TestParseAction(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    audits.Action
		wantErr bool
	}{
		{"reviewed", "REVIEWED", audits.ActionReviewed, false},
		{"overridden", "OVERRIDDEN", audits.ActionOverridden, false},
		{"lowercase rejected", "reviewed", "", true},
		{"empty rejected", "", "", true},
		{"unknown rejected", "ESCALATED", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := audits.ParseAction(tt.input)
			if tt.wantErr {
				if !errors.Is(err, audits.ErrInvalidAction) {
					t.Errorf("ParseAction(%q) error = %v, want ErrInvalidAction", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseAction(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseAction(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestMapHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", audits.ErrNotFound, http.StatusNotFound},
		{"invalid action", audits.ErrInvalidAction, http.StatusBadRequest},
		{"empty reason", audits.ErrEmptyReason, http.StatusBadRequest},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := audits.MapHTTPStatus(tt.err); got != tt.want {
				t.Errorf("MapHTTPStatus() = %d, want %d", got, tt.want)
			}
		})
	}
}
