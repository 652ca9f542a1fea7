package asset

import "context"

// Repository persists asset blobs. Records are independent of the
// board record; tiles reference assets by key, never by embedding.
type Repository interface {
	Insert(ctx context.Context, a *Asset) error

	// GetByKey loads the full record including the blob.
	// found=false for an unknown key, never an error.
	GetByKey(ctx context.Context, key string) (a *Asset, found bool, err error)

	// Delete removes the durable blob. found=false when the key was
	// already absent.
	Delete(ctx context.Context, key string) (found bool, err error)

	// List returns metadata only (no blobs), newest first, optionally
	// filtered by kind.
	List(ctx context.Context, kind *Kind) ([]Asset, error)
}
