package session

import (
	"errors"
	"net/http"

	"aacboard-backend/internal/domains/board"
)

// ============================================================
// SENTINEL ERRORS
// ============================================================

var (
	// ErrSessionNotFound - unknown or already closed session id
	ErrSessionNotFound = errors.New("session not found")

	// ErrNotAuthorized - draft access on a session still in Locked state
	ErrNotAuthorized = errors.New("session not authorized")

	// ErrSessionExpired - deadline passed; the draft has been discarded
	ErrSessionExpired = errors.New("session expired")
)

// GetHTTPStatusCode maps session errors to HTTP status codes. Errors
// surfaced from the board layer (wrong password, page not found,
// storage failures on save) keep their board mapping.
func GetHTTPStatusCode(err error) int {
	switch {
	case errors.Is(err, ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrNotAuthorized), errors.Is(err, ErrSessionExpired):
		return http.StatusUnauthorized
	default:
		return board.GetHTTPStatusCode(err)
	}
}
