package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"aacboard-backend/internal/domains/board"
)

type boardRepository struct {
	db *sql.DB
}

// NewBoardRepository creates the SQLite-backed board repository
func NewBoardRepository(db *sql.DB) board.Repository {
	return &boardRepository{db: db}
}

// Load reads the single board record
func (r *boardRepository) Load(ctx context.Context) (*board.State, bool, error) {
	var version int
	var data string

	row := r.db.QueryRowContext(ctx, `SELECT version, data FROM board_state WHERE id = 1`)
	if err := row.Scan(&version, &data); err != nil {
		if err == sql.ErrNoRows {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("%w: load board state: %v", board.ErrStorageUnavailable, err)
	}

	state := &board.State{}
	if err := json.Unmarshal([]byte(data), state); err != nil {
		return nil, false, fmt.Errorf("%w: decode board state: %v", board.ErrStorageUnavailable, err)
	}

	migrated, err := migrateState(state, version)
	if err != nil {
		return nil, false, err
	}
	return migrated, true, nil
}

// Save writes the record durably before returning (write-through)
func (r *boardRepository) Save(ctx context.Context, state *board.State) error {
	state.Version = board.SchemaVersion

	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("%w: encode board state: %v", board.ErrStorageUnavailable, err)
	}

	_, err = r.db.ExecContext(ctx, `
        INSERT INTO board_state (id, version, data, updated_at)
        VALUES (1, ?, ?, ?)
        ON CONFLICT (id) DO UPDATE SET
            version = excluded.version,
            data = excluded.data,
            updated_at = excluded.updated_at
    `,
		board.SchemaVersion,
		string(data),
		time.Now().UTC().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("%w: save board state: %v", board.ErrStorageUnavailable, err)
	}

	return nil
}

// migrateState upgrades older record versions in memory. The next Save
// persists the current schema.
func migrateState(state *board.State, version int) (*board.State, error) {
	switch {
	case version == board.SchemaVersion:
		return state, nil
	case version < board.SchemaVersion:
		// Version 1 is the first schema; nothing to upgrade yet.
		state.Version = board.SchemaVersion
		return state, nil
	default:
		return nil, fmt.Errorf("%w: board state version %d is newer than supported %d",
			board.ErrStorageUnavailable, version, board.SchemaVersion)
	}
}
