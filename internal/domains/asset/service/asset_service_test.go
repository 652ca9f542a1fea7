package service

import (
	"context"
	"testing"

	"aacboard-backend/internal/domains/asset"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRepo mirrors the SQLite repository contract: GetByKey returns a
// fresh copy per call, List carries metadata only.
type fakeRepo struct {
	records map[string]asset.Asset
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{records: make(map[string]asset.Asset)}
}

func (r *fakeRepo) Insert(ctx context.Context, a *asset.Asset) error {
	stored := *a
	stored.Blob = append([]byte(nil), a.Blob...)
	r.records[a.Key] = stored
	return nil
}

func (r *fakeRepo) GetByKey(ctx context.Context, key string) (*asset.Asset, bool, error) {
	stored, ok := r.records[key]
	if !ok {
		return nil, false, nil
	}
	out := stored
	out.Blob = append([]byte(nil), stored.Blob...)
	return &out, true, nil
}

func (r *fakeRepo) Delete(ctx context.Context, key string) (bool, error) {
	if _, ok := r.records[key]; !ok {
		return false, nil
	}
	delete(r.records, key)
	return true, nil
}

func (r *fakeRepo) List(ctx context.Context, kind *asset.Kind) ([]asset.Asset, error) {
	var out []asset.Asset
	for _, stored := range r.records {
		if kind != nil && stored.Kind != *kind {
			continue
		}
		meta := stored
		meta.Blob = nil
		out = append(out, meta)
	}
	return out, nil
}

func TestPutAndGet(t *testing.T) {
	svc := NewAssetService(newFakeRepo())
	ctx := context.Background()

	key, err := svc.Put(ctx, asset.KindAudio, "hello.mp3", []byte("audio-bytes"))
	require.NoError(t, err)
	assert.NotEmpty(t, key)

	a, err := svc.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, asset.KindAudio, a.Kind)
	assert.Equal(t, "hello.mp3", a.Name)
	assert.Equal(t, []byte("audio-bytes"), a.Blob)
	assert.Equal(t, int64(len("audio-bytes")), a.SizeBytes)

	_, err = svc.Get(ctx, "unknown")
	assert.ErrorIs(t, err, asset.ErrAssetNotFound)
}

func TestPutRejectsInvalidInput(t *testing.T) {
	svc := NewAssetService(newFakeRepo())
	ctx := context.Background()

	cases := []struct {
		name string
		kind asset.Kind
		file string
		blob []byte
	}{
		{"bad kind", asset.Kind("video"), "a.mp4", []byte("x")},
		{"empty name", asset.KindImage, "", []byte("x")},
		{"empty blob", asset.KindImage, "a.png", nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Put(ctx, tc.kind, tc.file, tc.blob)
			assert.ErrorIs(t, err, asset.ErrInvalidAsset)
		})
	}
}

func TestListFiltersByKind(t *testing.T) {
	svc := NewAssetService(newFakeRepo())
	ctx := context.Background()

	_, err := svc.Put(ctx, asset.KindAudio, "a.mp3", []byte("a"))
	require.NoError(t, err)
	_, err = svc.Put(ctx, asset.KindImage, "b.png", []byte("b"))
	require.NoError(t, err)

	all, err := svc.List(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)
	for _, a := range all {
		assert.Nil(t, a.Blob, "listing is metadata only")
	}

	images := asset.KindImage
	filtered, err := svc.List(ctx, &images)
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "b.png", filtered[0].Name)
}

func TestHandlesAreIndependent(t *testing.T) {
	svc := NewAssetService(newFakeRepo())
	ctx := context.Background()

	key, err := svc.Put(ctx, asset.KindImage, "pic.png", []byte("pixels"))
	require.NoError(t, err)

	h1, err := svc.GetHandle(ctx, key)
	require.NoError(t, err)
	h2, err := svc.GetHandle(ctx, key)
	require.NoError(t, err)

	// Never interned: each call mints its own handle.
	assert.NotEqual(t, h1.ID, h2.ID)
	assert.Equal(t, 2, svc.OpenHandles())

	// Releasing one does not touch the other.
	require.NoError(t, svc.ReleaseHandle(h1.ID))
	_, ok := svc.LookupHandle(h1.ID)
	assert.False(t, ok)
	got, ok := svc.LookupHandle(h2.ID)
	require.True(t, ok)
	assert.Equal(t, []byte("pixels"), got.Data)

	assert.ErrorIs(t, svc.ReleaseHandle(h1.ID), asset.ErrHandleNotFound)

	_, err = svc.GetHandle(ctx, "unknown")
	assert.ErrorIs(t, err, asset.ErrAssetNotFound)
}

func TestDeleteLeavesOutstandingHandlesValid(t *testing.T) {
	svc := NewAssetService(newFakeRepo())
	ctx := context.Background()

	key, err := svc.Put(ctx, asset.KindAudio, "song.mp3", []byte("notes"))
	require.NoError(t, err)

	h, err := svc.GetHandle(ctx, key)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, key))

	// The durable blob is gone, but the handle keeps serving its bytes
	// until explicitly released.
	_, err = svc.Get(ctx, key)
	assert.ErrorIs(t, err, asset.ErrAssetNotFound)

	got, ok := svc.LookupHandle(h.ID)
	require.True(t, ok)
	assert.Equal(t, []byte("notes"), got.Data)

	// No new handles for a deleted key.
	_, err = svc.GetHandle(ctx, key)
	assert.ErrorIs(t, err, asset.ErrAssetNotFound)

	assert.ErrorIs(t, svc.Delete(ctx, key), asset.ErrAssetNotFound)
}
