package storage

import (
	"context"
	"errors"
	"net/http"
)

var (
	ErrNotFound          = errors.New("blob not found")
	ErrEmptyKey          = errors.New("storage key must not be empty")
	ErrInvalidKey        = errors.New("storage key contains invalid path segment")
	ErrInvalidMaxResults = errors.New("max_results must be a positive integer")
)

// MapHTTPStatus maps storage errors to HTTP status codes. A blob call that
// outlives its request deadline is reported as a gateway timeout.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrEmptyKey), errors.Is(err, ErrInvalidKey), errors.Is(err, ErrInvalidMaxResults):
		return http.StatusBadRequest
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	}
	return http.StatusInternalServerError
}
