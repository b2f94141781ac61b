package content

import (
	"errors"
	"net/http"
)

// Domain errors for content operations.
var (
	ErrNotFound      = errors.New("content not found")
	ErrDuplicate     = errors.New("content already exists")
	ErrNoFacets      = errors.New("content must carry at least one facet")
	ErrEmptyReason   = errors.New("override reason must not be empty")
	ErrInvalidStatus = errors.New("invalid status")
	ErrInvalidBody   = errors.New("invalid request body")
	ErrConflict      = errors.New("concurrent status update conflict")
)

// MapHTTPStatus maps content domain errors to appropriate HTTP status codes.
// Validation failures and not-found are reported distinctly per the error model.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrDuplicate) {
		return http.StatusConflict
	}
	if errors.Is(err, ErrConflict) {
		return http.StatusConflict
	}
	if errors.Is(err, ErrNoFacets) ||
		errors.Is(err, ErrEmptyReason) ||
		errors.Is(err, ErrInvalidStatus) ||
		errors.Is(err, ErrInvalidBody) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
