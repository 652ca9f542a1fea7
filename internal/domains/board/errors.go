package board

import (
	"errors"
	"net/http"
)

// ============================================================
// SENTINEL ERRORS
// ============================================================

var (
	// ErrPageNotFound - referenced page id/path is absent
	ErrPageNotFound = errors.New("page not found")

	// ErrTileNotFound - tile id absent within its page
	ErrTileNotFound = errors.New("tile not found")

	// ErrDuplicateKey - create with a page id or path already in use
	ErrDuplicateKey = errors.New("page id or path already exists")

	// ErrAuthFailed - submitted password does not match the stored secret
	ErrAuthFailed = errors.New("wrong password")

	// ErrStorageUnavailable - durable write/read failed; caller must
	// re-invoke explicitly, no automatic retry
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// ValidationError wraps input validation failures so handlers can map
// them to 400 while keeping the field detail.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string {
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// GetHTTPStatusCode maps domain errors to HTTP status codes
func GetHTTPStatusCode(err error) int {
	switch {
	case errors.Is(err, ErrPageNotFound), errors.Is(err, ErrTileNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicateKey):
		return http.StatusConflict
	case errors.Is(err, ErrAuthFailed):
		return http.StatusUnauthorized
	case errors.Is(err, ErrStorageUnavailable):
		return http.StatusServiceUnavailable
	case IsValidationError(err):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
