package events

// Payload is the typed content of an event. Each event type has a fixed
// payload schema rather than an arbitrary map, so downstream consumers can
// derive time series without guessing at keys.
type Payload interface {
	EventType() Type
}

// CreatedPayload accompanies CREATED events. It carries no fields; the
// content record itself holds the submitted facets.
type CreatedPayload struct{}

func (CreatedPayload) EventType() Type { return TypeCreated }

// ModeratedPayload accompanies MODERATED events, summarizing the machine
// assessment that was recorded and the final status it produced.
type ModeratedPayload struct {
	MediaType   string  `json:"media_type"`
	Status      string  `json:"status"`
	RiskScore   float64 `json:"risk_score"`
	FinalStatus string  `json:"final_status"`
}

func (ModeratedPayload) EventType() Type { return TypeModerated }

// StatusSet captures a full status assignment at a point in time.
type StatusSet struct {
	TextStatus  string `json:"text_status"`
	ImageStatus string `json:"image_status"`
	VideoStatus string `json:"video_status"`
	FinalStatus string `json:"final_status"`
}

// UpdatedPayload accompanies UPDATED events, recording the statuses before
// and after a human override.
type UpdatedPayload struct {
	Old StatusSet `json:"old"`
	New StatusSet `json:"new"`
}

func (UpdatedPayload) EventType() Type { return TypeUpdated }
