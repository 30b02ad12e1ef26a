package evaluations

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrNotFound   = errors.New("evaluation not found")
	ErrValidation = errors.New("invalid evaluation")
)

// ErrInvalidID rejects a path id that is not a UUID.
var ErrInvalidID = fmt.Errorf("%w: malformed id", ErrValidation)

// MapHTTPStatus maps an evaluation error to its HTTP status code.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrValidation) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
