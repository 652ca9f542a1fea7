package database

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"aacboard-backend/internal/config"
	"aacboard-backend/internal/infrastructure/database/migrations"

	_ "modernc.org/sqlite"
)

// SQLiteDB wraps the single database file holding board state and
// asset blobs. The system is single-device and offline-first, so one
// embedded file is the durable store.
type SQLiteDB struct {
	DB     *sql.DB
	Config *config.StorageConfig
}

// buildDSN appends the pragmas every connection needs. WAL keeps a
// write-through mutation from blocking the read path; the busy timeout
// serializes writers that land on the same file.
func (db *SQLiteDB) buildDSN() string {
	return fmt.Sprintf(
		"%s?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=%d&_synchronous=NORMAL",
		filepath.Clean(db.Config.Path),
		db.Config.BusyTimeoutMS,
	)
}

// NewSQLiteDB opens the database file and applies embedded migrations.
func NewSQLiteDB(cfg *config.StorageConfig) (*SQLiteDB, error) {
	if strings.TrimSpace(cfg.Path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	db := &SQLiteDB{Config: cfg}

	sqlDB, err := sql.Open("sqlite", db.buildDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite db: %w", err)
	}

	// A single writer connection sidesteps SQLITE_BUSY between the
	// store's write-through calls.
	sqlDB.SetMaxOpenConns(1)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to ping sqlite db: %w", err)
	}

	if err := ApplyMigrations(sqlDB, migrations.FS); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	db.DB = sqlDB
	return db, nil
}

// HealthCheck verifies the database file is still reachable
func (db *SQLiteDB) HealthCheck(ctx context.Context) error {
	if db == nil || db.DB == nil {
		return fmt.Errorf("database is not initialized")
	}
	return db.DB.PingContext(ctx)
}

// Close closes the database handle
func (db *SQLiteDB) Close() error {
	if db == nil || db.DB == nil {
		return nil
	}
	return db.DB.Close()
}
