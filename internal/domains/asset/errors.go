package asset

import (
	"errors"
	"net/http"
)

var (
	// ErrAssetNotFound - no durable blob stored under the key
	ErrAssetNotFound = errors.New("asset not found")

	// ErrHandleNotFound - handle id unknown, already released, or never issued
	ErrHandleNotFound = errors.New("handle not found")

	// ErrInvalidAsset - upload rejected before touching storage
	ErrInvalidAsset = errors.New("invalid asset")

	// ErrStorageUnavailable - durable I/O failed; the operation must be
	// re-invoked explicitly, there is no automatic retry
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// GetHTTPStatusCode maps domain errors to HTTP status codes
func GetHTTPStatusCode(err error) int {
	switch {
	case errors.Is(err, ErrAssetNotFound), errors.Is(err, ErrHandleNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidAsset):
		return http.StatusBadRequest
	case errors.Is(err, ErrStorageUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
