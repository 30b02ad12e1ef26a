package salesreps

import (
	"errors"
	"fmt"
	"net/http"
)

// Domain errors for sales rep operations.
var (
	ErrNotFound      = errors.New("sales rep not found")
	ErrDuplicateSlug = errors.New("a sales rep with this name already exists")
	ErrValidation    = errors.New("invalid sales rep")
)

// ErrInvalidID rejects a path id that is not a UUID.
var ErrInvalidID = fmt.Errorf("%w: malformed id", ErrValidation)

// MapHTTPStatus maps sales rep domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrDuplicateSlug) {
		return http.StatusConflict
	}
	if errors.Is(err, ErrValidation) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
