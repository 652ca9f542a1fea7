package board

import "context"

// ============================================================
// REPOSITORY INTERFACE
// ============================================================

// Repository persists the board record. The whole page tree plus the
// password hash is one keyed, versioned document; every successful
// Save is durable before it returns (write-through).
type Repository interface {
	// Load returns the stored record. found=false on first run.
	Load(ctx context.Context) (state *State, found bool, err error)

	// Save writes the record durably. Callers must not reuse state
	// after a failed save without re-loading.
	Save(ctx context.Context, state *State) error
}
