package asset

import "context"

// Service is the asset cache: durable blob storage plus the transient
// handle table backing playback and rendering.
//
// Handles are single-owner. Every handle obtained from GetHandle must
// be released exactly once, after the consumer no longer needs it.
// Deleting an asset never revokes outstanding handles.
type Service interface {
	Put(ctx context.Context, kind Kind, name string, blob []byte) (key string, err error)
	Get(ctx context.Context, key string) (*Asset, error)
	List(ctx context.Context, kind *Kind) ([]Asset, error)
	Delete(ctx context.Context, key string) error

	GetHandle(ctx context.Context, key string) (*Handle, error)
	LookupHandle(handleID string) (*Handle, bool)
	ReleaseHandle(handleID string) error

	// OpenHandles reports the number of outstanding handles. A number
	// that only ever grows is a leaked acquire/release pair somewhere.
	OpenHandles() int
}
