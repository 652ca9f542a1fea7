package session

import (
	"context"
	"time"

	"aacboard-backend/internal/domains/board"
)

// ============================================================
// SERVICE INTERFACE
// ============================================================

// Service manages editing sessions. Expiry is enforced lazily: every
// draft access checks the deadline first, and a stale session is moved
// to Expired with its draft dropped before the error is returned.
type Service interface {
	// Open creates a Locked session whose draft is a deep copy of the
	// target page. board.ErrPageNotFound if the page is absent.
	Open(ctx context.Context, pageID string) (*Session, error)

	// Authorize verifies the board password. On success the session
	// gains a deadline and the returned token carries the session id;
	// on mismatch it returns board.ErrAuthFailed and the session stays
	// Locked with retries unbounded.
	Authorize(ctx context.Context, id, password string) (token string, deadline time.Time, err error)

	Get(ctx context.Context, id string) (*Session, error)
	Draft(ctx context.Context, id string) (*board.Page, error)

	UpdateDraft(ctx context.Context, id string, patch *board.PagePatch) (*board.Page, error)
	AddDraftTile(ctx context.Context, id string, req *board.TileReq) (*board.Tile, error)
	UpdateDraftTile(ctx context.Context, id, tileID string, patch *board.TilePatch) (*board.Tile, error)
	RemoveDraftTile(ctx context.Context, id, tileID string) error

	// ChangePassword re-hashes and stores the new secret immediately;
	// it does not wait for Save.
	ChangePassword(ctx context.Context, id, password string) error

	// Save commits the draft to the store in one batched replace and
	// closes the session as Committed. A storage failure leaves both
	// the store and the session untouched so the caller can retry.
	Save(ctx context.Context, id string) (*board.Page, error)

	// Cancel discards the draft with no store mutation.
	Cancel(ctx context.Context, id string) error
}
