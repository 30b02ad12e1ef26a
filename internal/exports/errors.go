package exports

import (
	"errors"
	"net/http"

	"github.com/JaimeStill/assessor/pkg/storage"
)

var (
	ErrUnknownDataset  = errors.New("unknown export dataset")
	ErrStorageDisabled = errors.New("export archiving requires blob storage")
	ErrNotArchive      = errors.New("key is not an export archive")
)

// MapHTTPStatus maps an export error to its HTTP status code.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrUnknownDataset):
		return http.StatusNotFound
	case errors.Is(err, ErrStorageDisabled):
		return http.StatusServiceUnavailable
	case errors.Is(err, ErrNotArchive):
		return http.StatusBadRequest
	}
	return storage.MapHTTPStatus(err)
}
