package audits

import (
	"errors"
	"net/http"
)

// Domain errors for audit trail operations.
var (
	ErrNotFound      = errors.New("audit not found")
	ErrInvalidAction = errors.New("invalid audit action")
	ErrEmptyReason   = errors.New("audit reason must not be empty")
)

// MapHTTPStatus maps audit domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrInvalidAction) || errors.Is(err, ErrEmptyReason) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
