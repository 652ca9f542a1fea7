package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"aacboard-backend/internal/domains/asset"
	"aacboard-backend/pkg/logger"

	"github.com/google/uuid"
)

type assetServiceImpl struct {
	repository asset.Repository

	mu      sync.Mutex
	handles map[string]*asset.Handle
}

// NewAssetService creates the asset cache over a blob repository
func NewAssetService(repo asset.Repository) asset.Service {
	return &assetServiceImpl{
		repository: repo,
		handles:    make(map[string]*asset.Handle),
	}
}

func (s *assetServiceImpl) Put(ctx context.Context, kind asset.Kind, name string, blob []byte) (string, error) {
	if !kind.IsValid() {
		return "", fmt.Errorf("%w: kind must be audio or image", asset.ErrInvalidAsset)
	}
	if name == "" {
		return "", fmt.Errorf("%w: name is required", asset.ErrInvalidAsset)
	}
	if len(blob) == 0 {
		return "", fmt.Errorf("%w: blob is empty", asset.ErrInvalidAsset)
	}

	a := &asset.Asset{
		Key:       uuid.New().String(),
		Kind:      kind,
		Name:      name,
		SizeBytes: int64(len(blob)),
		Blob:      blob,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repository.Insert(ctx, a); err != nil {
		return "", err
	}

	logger.Info("asset stored", map[string]interface{}{
		"key":  a.Key,
		"kind": kind.String(),
		"name": name,
		"size": a.SizeBytes,
	})
	return a.Key, nil
}

func (s *assetServiceImpl) Get(ctx context.Context, key string) (*asset.Asset, error) {
	a, found, err := s.repository.GetByKey(ctx, key)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("%w: key=%s", asset.ErrAssetNotFound, key)
	}
	return a, nil
}

func (s *assetServiceImpl) List(ctx context.Context, kind *asset.Kind) ([]asset.Asset, error) {
	return s.repository.List(ctx, kind)
}

// Delete removes the durable blob only. Outstanding handles keep their
// copy of the bytes; a tile still citing the key renders its fallback.
func (s *assetServiceImpl) Delete(ctx context.Context, key string) error {
	found, err := s.repository.Delete(ctx, key)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("%w: key=%s", asset.ErrAssetNotFound, key)
	}

	logger.Info("asset deleted", map[string]interface{}{"key": key})
	return nil
}

// GetHandle mints a new independent handle for the asset's bytes.
// Handles are never interned: two back-to-back calls return two
// handles, each owned by its caller.
func (s *assetServiceImpl) GetHandle(ctx context.Context, key string) (*asset.Handle, error) {
	a, found, err := s.repository.GetByKey(ctx, key)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("%w: key=%s", asset.ErrAssetNotFound, key)
	}

	handle := &asset.Handle{
		ID:          "hnd_" + uuid.New().String(),
		AssetKey:    a.Key,
		Kind:        a.Kind,
		ContentType: a.ContentType(),
		IssuedAt:    time.Now().UTC(),
		Data:        a.Blob,
	}

	s.mu.Lock()
	s.handles[handle.ID] = handle
	s.mu.Unlock()

	return handle, nil
}

func (s *assetServiceImpl) LookupHandle(handleID string) (*asset.Handle, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	handle, ok := s.handles[handleID]
	return handle, ok
}

func (s *assetServiceImpl) ReleaseHandle(handleID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.handles[handleID]; !ok {
		return fmt.Errorf("%w: id=%s", asset.ErrHandleNotFound, handleID)
	}
	delete(s.handles, handleID)
	return nil
}

func (s *assetServiceImpl) OpenHandles() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.handles)
}
