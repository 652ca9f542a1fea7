package session

import (
	"time"

	"aacboard-backend/internal/domains/board"
)

// Status tracks a session through its lifecycle. A session starts
// Locked and stays there through any number of failed password
// attempts; only Authorized sessions may touch the draft.
type Status string

const (
	StatusLocked     Status = "locked"
	StatusAuthorized Status = "authorized"
	StatusCommitted  Status = "committed"
	StatusExpired    Status = "expired"
	StatusCancelled  Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

// Session is a short-lived editing session against one page. Edits are
// staged on Draft, a deep copy of the page taken at open time, and hit
// the store only on Save. The deadline is set at authorization and
// checked lazily on every access; there is no background sweeper.
type Session struct {
	ID       string    `json:"id"`
	PageID   string    `json:"page_id"`
	Status   Status    `json:"status"`
	OpenedAt time.Time `json:"opened_at"`

	// Deadline is zero until the session is authorized.
	Deadline time.Time `json:"deadline,omitempty"`

	Draft *board.Page `json:"draft,omitempty"`
}
