package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"aacboard-backend/internal/domains/asset"
)

type assetRepository struct {
	db *sql.DB
}

// NewAssetRepository creates the SQLite-backed asset repository
func NewAssetRepository(db *sql.DB) asset.Repository {
	return &assetRepository{db: db}
}

func (r *assetRepository) Insert(ctx context.Context, a *asset.Asset) error {
	_, err := r.db.ExecContext(ctx, `
        INSERT INTO assets (key, kind, name, blob, created_at)
        VALUES (?, ?, ?, ?, ?)
    `,
		a.Key,
		a.Kind.String(),
		a.Name,
		a.Blob,
		a.CreatedAt.UTC().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("%w: insert asset: %v", asset.ErrStorageUnavailable, err)
	}
	return nil
}

func (r *assetRepository) GetByKey(ctx context.Context, key string) (*asset.Asset, bool, error) {
	var a asset.Asset
	var kind string
	var createdAt int64

	row := r.db.QueryRowContext(ctx, `
        SELECT key, kind, name, blob, created_at FROM assets WHERE key = ?
    `, key)
	if err := row.Scan(&a.Key, &kind, &a.Name, &a.Blob, &createdAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("%w: load asset: %v", asset.ErrStorageUnavailable, err)
	}

	a.Kind = asset.Kind(kind)
	a.SizeBytes = int64(len(a.Blob))
	a.CreatedAt = time.UnixMilli(createdAt).UTC()
	return &a, true, nil
}

func (r *assetRepository) Delete(ctx context.Context, key string) (bool, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM assets WHERE key = ?`, key)
	if err != nil {
		return false, fmt.Errorf("%w: delete asset: %v", asset.ErrStorageUnavailable, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: delete asset: %v", asset.ErrStorageUnavailable, err)
	}
	return affected > 0, nil
}

func (r *assetRepository) List(ctx context.Context, kind *asset.Kind) ([]asset.Asset, error) {
	query := `SELECT key, kind, name, LENGTH(blob), created_at FROM assets`
	args := []interface{}{}
	if kind != nil {
		query += ` WHERE kind = ?`
		args = append(args, kind.String())
	}
	query += ` ORDER BY created_at DESC, key`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: list assets: %v", asset.ErrStorageUnavailable, err)
	}
	defer rows.Close()

	var assets []asset.Asset
	for rows.Next() {
		var a asset.Asset
		var k string
		var createdAt int64
		if err := rows.Scan(&a.Key, &k, &a.Name, &a.SizeBytes, &createdAt); err != nil {
			return nil, fmt.Errorf("%w: scan asset: %v", asset.ErrStorageUnavailable, err)
		}
		a.Kind = asset.Kind(k)
		a.CreatedAt = time.UnixMilli(createdAt).UTC()
		assets = append(assets, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: list assets: %v", asset.ErrStorageUnavailable, err)
	}
	return assets, nil
}
