package navigation

import (
	"context"

	"aacboard-backend/internal/domains/board"
)

// ResolvedPage is a renderable page plus the background color actually
// in effect, after ancestor inheritance.
type ResolvedPage struct {
	Page board.Page `json:"page"`

	// Background is always set: the page's own color, the nearest
	// ancestor's explicit color, or the process-wide default.
	Background string `json:"background"`
}

// Service translates a requested path into a renderable page.
// The effective background is computed at resolve time and never
// cached, so editing an ancestor re-colors descendants with no
// propagation step.
type Service interface {
	// Resolve returns board.ErrPageNotFound for an unknown path; the
	// caller renders a not-found state, nothing fatal.
	Resolve(ctx context.Context, path string) (*ResolvedPage, error)
}
