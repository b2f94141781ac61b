package events_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/vigil-labs/vigil/internal/events"
)

func TestParseType(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    events.Type
		wantErr bool
	}{
		{"created", "CREATED", events.TypeCreated, false},
		{"updated", "UPDATED", events.TypeUpdated, false},
		{"moderated", "MODERATED", events.TypeModerated, false},
		{"lowercase rejected", "created", "", true},
		{"empty rejected", "", "", true},
		{"unknown rejected", "DELETED", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := events.ParseType(tt.input)
			if tt.wantErr {
				if !errors.Is(err, events.ErrInvalidType) {
					t.Errorf("ParseType(%q) error = %v, want ErrInvalidType", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseType(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseType(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestPayloadEventTypes(t *testing.T) {
	tests := []struct {
		name    string
		payload events.Payload
		want    events.Type
	}{
		{"created", events.CreatedPayload{}, events.TypeCreated},
		{"moderated", events.ModeratedPayload{}, events.TypeModerated},
		{"updated", events.UpdatedPayload{}, events.TypeUpdated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.payload.EventType(); got != tt.want {
				t.Errorf("EventType() = %v, want %v", got, tt.want)
			}
		})
	}
}

func marshal(t *testing.T, v any) json.RawMessage {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	return data
}

func TestDecodeModerated(t *testing.T) {
	payload := events.ModeratedPayload{
		MediaType:   "IMG",
		Status:      "FLAGGED",
		RiskScore:   0.83,
		FinalStatus: "FLAGGED",
	}

	e := events.Event{
		EventType: events.TypeModerated,
		Payload:   marshal(t, payload),
	}

	decoded, err := e.Decode()
	if err != nil {
		t.Fatalf("Decode() unexpected error: %v", err)
	}

	got, ok := decoded.(events.ModeratedPayload)
	if !ok {
		t.Fatalf("Decode() type = %T, want ModeratedPayload", decoded)
	}
	if got != payload {
		t.Errorf("Decode() = %+v, want %+v", got, payload)
	}
}

func TestDecodeUpdated(t *testing.T) {
	payload := events.UpdatedPayload{
		Old: events.StatusSet{
			TextStatus:  "PENDING",
			ImageStatus: "PENDING",
			VideoStatus: "PENDING",
			FinalStatus: "PENDING",
		},
		New: events.StatusSet{
			TextStatus:  "APPROVED",
			ImageStatus: "APPROVED",
			VideoStatus: "APPROVED",
			FinalStatus: "APPROVED",
		},
	}

	e := events.Event{
		EventType: events.TypeUpdated,
		Payload:   marshal(t, payload),
	}

	decoded, err := e.Decode()
	if err != nil {
		t.Fatalf("Decode() unexpected error: %v", err)
	}

	got, ok := decoded.(events.UpdatedPayload)
	if !ok {
		t.Fatalf("Decode() type = %T, want UpdatedPayload", decoded)
	}
	if got != payload {
		t.Errorf("Decode() = %+v, want %+v", got, payload)
	}
}

func TestDecodeCreated(t *testing.T) {
	e := events.Event{
		EventType: events.TypeCreated,
		Payload:   json.RawMessage(`{}`),
	}

	decoded, err := e.Decode()
	if err != nil {
		t.Fatalf("Decode() unexpected error: %v", err)
	}
	if _, ok := decoded.(events.CreatedPayload); !ok {
		t.Errorf("Decode() type = %T, want CreatedPayload", decoded)
	}
}

func TestDecodeInvalidType(t *testing.T) {
	e := events.Event{
		EventType: events.Type("DELETED"),
		Payload:   json.RawMessage(`{}`),
	}

	if _, err := e.Decode(); !errors.Is(err, events.ErrInvalidType) {
		t.Errorf("Decode() error = %v, want ErrInvalidType", err)
	}
}

func TestFinalStatus(t *testing.T) {
	tests := []struct {
		name   string
		event  events.Event
		want   string
		wantOK bool
	}{
		{
			name: "moderated carries final status",
			event: events.Event{
				EventType: events.TypeModerated,
				Payload:   json.RawMessage(`{"media_type":"TXT","status":"REJECTED","risk_score":0.9,"final_status":"REJECTED"}`),
			},
			want:   "REJECTED",
			wantOK: true,
		},
		{
			name: "updated carries the new final status",
			event: events.Event{
				EventType: events.TypeUpdated,
				Payload:   json.RawMessage(`{"old":{"final_status":"FLAGGED"},"new":{"final_status":"APPROVED"}}`),
			},
			want:   "APPROVED",
			wantOK: true,
		},
		{
			name: "created carries none",
			event: events.Event{
				EventType: events.TypeCreated,
				Payload:   json.RawMessage(`{}`),
			},
			wantOK: false,
		},
		{
			name: "malformed payload carries none",
			event: events.Event{
				EventType: events.TypeModerated,
				Payload:   json.RawMessage(`not json`),
			},
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.event.FinalStatus()
			if ok != tt.wantOK {
				t.Fatalf("FinalStatus() ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("FinalStatus() = %q, want %q", got, tt.want)
			}
		})
	}
}
