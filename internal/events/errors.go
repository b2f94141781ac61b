package events

import (
	"errors"
	"net/http"
)

// Domain errors for event log operations.
var (
	ErrNotFound    = errors.New("event not found")
	ErrInvalidType = errors.New("invalid event type")
)

// MapHTTPStatus maps event domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrInvalidType) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
