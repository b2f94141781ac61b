package moderation

import (
	"errors"
	"net/http"

	"github.com/vigil-labs/vigil/internal/content"
)

// Domain errors for moderation result operations.
var (
	ErrNotFound         = errors.New("moderation result not found")
	ErrDuplicate        = errors.New("moderation result already exists")
	ErrInvalidMediaType = errors.New("invalid media type")
	ErrInvalidRiskScore = errors.New("risk score must be within [0.0, 1.0]")
	ErrFacetAbsent      = errors.New("content does not carry the assessed facet")
	ErrInvalidBody      = errors.New("invalid request body")
)

// MapHTTPStatus maps moderation domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) || errors.Is(err, content.ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrDuplicate) {
		return http.StatusConflict
	}
	if errors.Is(err, content.ErrConflict) {
		return http.StatusConflict
	}
	if errors.Is(err, ErrInvalidMediaType) ||
		errors.Is(err, ErrInvalidRiskScore) ||
		errors.Is(err, ErrFacetAbsent) ||
		errors.Is(err, ErrInvalidBody) ||
		errors.Is(err, content.ErrInvalidStatus) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
