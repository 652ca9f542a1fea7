package service

import (
	"context"
	"fmt"
	"sync"

	"aacboard-backend/internal/domains/board"
	"aacboard-backend/pkg/logger"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// boardServiceImpl keeps the authoritative board record in memory and
// writes it through to the repository on every mutation. A mutation is
// applied to a clone first, persisted, and only then published, so a
// failed write leaves both memory and disk unchanged.
type boardServiceImpl struct {
	repository board.Repository
	bcryptCost int

	mu    sync.Mutex
	state *board.State
}

// NewBoardService loads the stored record, seeding the built-in board
// on first run.
func NewBoardService(repo board.Repository, bcryptCost int) (board.Service, error) {
	ctx := context.Background()

	state, found, err := repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load board: %w", err)
	}

	if !found {
		hash, err := bcrypt.GenerateFromPassword([]byte(board.DefaultPassword), bcryptCost)
		if err != nil {
			return nil, fmt.Errorf("hash default password: %w", err)
		}
		state = &board.State{
			Version:      board.SchemaVersion,
			Pages:        board.DefaultPages(),
			PasswordHash: string(hash),
		}
		if err := repo.Save(ctx, state); err != nil {
			return nil, fmt.Errorf("seed default board: %w", err)
		}
		logger.Info("seeded default board", map[string]interface{}{
			"pages": len(state.Pages),
		})
	}

	return &boardServiceImpl{
		repository: repo,
		bcryptCost: bcryptCost,
		state:      state,
	}, nil
}

// mutate applies fn to a clone of the record, persists it, and
// publishes it on success. No caller ever observes a partial update.
func (s *boardServiceImpl) mutate(ctx context.Context, fn func(*board.State) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.state.Clone()
	if err := fn(next); err != nil {
		return err
	}
	if err := s.repository.Save(ctx, next); err != nil {
		logger.Error("board write-through failed", err)
		return err
	}
	s.state = next
	return nil
}

// duplicateTileID returns the first tile id appearing twice, or "".
// Tile ids must be unique within their page on every insertion path,
// not just single-tile adds.
func duplicateTileID(tiles []board.Tile) string {
	seen := make(map[string]bool, len(tiles))
	for i := range tiles {
		if seen[tiles[i].ID] {
			return tiles[i].ID
		}
		seen[tiles[i].ID] = true
	}
	return ""
}

func (s *boardServiceImpl) CreatePage(ctx context.Context, req *board.CreatePageReq) (*board.Page, error) {
	if req == nil {
		return nil, &board.ValidationError{Err: fmt.Errorf("request is required")}
	}
	if err := req.Validate(); err != nil {
		return nil, &board.ValidationError{Err: err}
	}

	page := req.ToPage()
	for i := range page.Tiles {
		if page.Tiles[i].ID == "" {
			page.Tiles[i].ID = uuid.New().String()
		}
	}
	if dup := duplicateTileID(page.Tiles); dup != "" {
		return nil, fmt.Errorf("%w: tile id=%s", board.ErrDuplicateKey, dup)
	}

	err := s.mutate(ctx, func(state *board.State) error {
		if state.PageIndexByID(page.ID) >= 0 || state.PageIndexByPath(page.Path) >= 0 {
			return fmt.Errorf("%w: id=%s path=%s", board.ErrDuplicateKey, page.ID, page.Path)
		}
		state.Pages = append(state.Pages, *page.Clone())
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("page created", map[string]interface{}{
		"page_id": page.ID,
		"path":    page.Path,
	})
	return page, nil
}

func (s *boardServiceImpl) UpdatePage(ctx context.Context, id string, patch *board.PagePatch) (*board.Page, error) {
	if patch == nil {
		patch = &board.PagePatch{}
	}
	if err := patch.Validate(); err != nil {
		return nil, &board.ValidationError{Err: err}
	}

	var updated *board.Page
	err := s.mutate(ctx, func(state *board.State) error {
		idx := state.PageIndexByID(id)
		if idx < 0 {
			return fmt.Errorf("%w: id=%s", board.ErrPageNotFound, id)
		}
		if patch.Path != nil {
			if other := state.PageIndexByPath(*patch.Path); other >= 0 && other != idx {
				return fmt.Errorf("%w: path=%s", board.ErrDuplicateKey, *patch.Path)
			}
		}
		patch.ApplyTo(&state.Pages[idx])
		updated = state.Pages[idx].Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *boardServiceImpl) DeletePage(ctx context.Context, id string) error {
	err := s.mutate(ctx, func(state *board.State) error {
		idx := state.PageIndexByID(id)
		if idx < 0 {
			return fmt.Errorf("%w: id=%s", board.ErrPageNotFound, id)
		}
		// Link tiles elsewhere keep their target id; navigation to a
		// deleted page is a soft no-op, never a cascade.
		state.Pages = append(state.Pages[:idx], state.Pages[idx+1:]...)
		return nil
	})
	if err != nil {
		return err
	}

	logger.Info("page deleted", map[string]interface{}{"page_id": id})
	return nil
}

func (s *boardServiceImpl) ReplacePage(ctx context.Context, page *board.Page) (*board.Page, error) {
	if page == nil {
		return nil, &board.ValidationError{Err: fmt.Errorf("page is required")}
	}

	replacement := page.Clone()
	for i := range replacement.Tiles {
		if replacement.Tiles[i].ID == "" {
			replacement.Tiles[i].ID = uuid.New().String()
		}
	}
	if dup := duplicateTileID(replacement.Tiles); dup != "" {
		return nil, fmt.Errorf("%w: tile id=%s", board.ErrDuplicateKey, dup)
	}

	err := s.mutate(ctx, func(state *board.State) error {
		idx := state.PageIndexByID(replacement.ID)
		if idx < 0 {
			return fmt.Errorf("%w: id=%s", board.ErrPageNotFound, replacement.ID)
		}
		if other := state.PageIndexByPath(replacement.Path); other >= 0 && other != idx {
			return fmt.Errorf("%w: path=%s", board.ErrDuplicateKey, replacement.Path)
		}
		state.Pages[idx] = *replacement.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return replacement, nil
}

func (s *boardServiceImpl) AddTile(ctx context.Context, pageID string, req *board.TileReq) (*board.Tile, error) {
	if req == nil {
		return nil, &board.ValidationError{Err: fmt.Errorf("request is required")}
	}
	if err := req.Validate(); err != nil {
		return nil, &board.ValidationError{Err: err}
	}

	tile := req.ToTile()
	if tile.ID == "" {
		tile.ID = uuid.New().String()
	}

	err := s.mutate(ctx, func(state *board.State) error {
		idx := state.PageIndexByID(pageID)
		if idx < 0 {
			return fmt.Errorf("%w: id=%s", board.ErrPageNotFound, pageID)
		}
		if state.Pages[idx].TileIndex(tile.ID) >= 0 {
			return fmt.Errorf("%w: tile id=%s", board.ErrDuplicateKey, tile.ID)
		}
		state.Pages[idx].Tiles = append(state.Pages[idx].Tiles, tile.Clone())
		return nil
	})
	if err != nil {
		return nil, err
	}
	return tile, nil
}

func (s *boardServiceImpl) UpdateTile(ctx context.Context, pageID, tileID string, patch *board.TilePatch) (*board.Tile, error) {
	if patch == nil {
		patch = &board.TilePatch{}
	}
	if err := patch.Validate(); err != nil {
		return nil, err
	}

	var updated board.Tile
	err := s.mutate(ctx, func(state *board.State) error {
		idx := state.PageIndexByID(pageID)
		if idx < 0 {
			return fmt.Errorf("%w: id=%s", board.ErrPageNotFound, pageID)
		}
		tileIdx := state.Pages[idx].TileIndex(tileID)
		if tileIdx < 0 {
			return fmt.Errorf("%w: tile id=%s", board.ErrTileNotFound, tileID)
		}
		patch.ApplyTo(&state.Pages[idx].Tiles[tileIdx])
		updated = state.Pages[idx].Tiles[tileIdx].Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *boardServiceImpl) RemoveTile(ctx context.Context, pageID, tileID string) error {
	return s.mutate(ctx, func(state *board.State) error {
		idx := state.PageIndexByID(pageID)
		if idx < 0 {
			return fmt.Errorf("%w: id=%s", board.ErrPageNotFound, pageID)
		}
		tileIdx := state.Pages[idx].TileIndex(tileID)
		if tileIdx < 0 {
			return fmt.Errorf("%w: tile id=%s", board.ErrTileNotFound, tileID)
		}
		// Removal closes the gap; the remaining order is preserved.
		tiles := state.Pages[idx].Tiles
		state.Pages[idx].Tiles = append(tiles[:tileIdx], tiles[tileIdx+1:]...)
		return nil
	})
}

func (s *boardServiceImpl) GetByID(ctx context.Context, id string) (*board.Page, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.state.PageIndexByID(id)
	if idx < 0 {
		return nil, false
	}
	return s.state.Pages[idx].Clone(), true
}

func (s *boardServiceImpl) GetByPath(ctx context.Context, path string) (*board.Page, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.state.PageIndexByPath(path)
	if idx < 0 {
		return nil, false
	}
	return s.state.Pages[idx].Clone(), true
}

func (s *boardServiceImpl) ListPages(ctx context.Context) []board.Page {
	s.mu.Lock()
	defer s.mu.Unlock()

	pages := make([]board.Page, 0, len(s.state.Pages))
	for i := range s.state.Pages {
		pages = append(pages, *s.state.Pages[i].Clone())
	}
	return pages
}

func (s *boardServiceImpl) PageCount(ctx context.Context) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.state.Pages)
}

func (s *boardServiceImpl) VerifyPassword(ctx context.Context, password string) error {
	s.mu.Lock()
	hash := s.state.PasswordHash
	s.mu.Unlock()

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return board.ErrAuthFailed
	}
	return nil
}

func (s *boardServiceImpl) SetPassword(ctx context.Context, password string) error {
	if password == "" {
		return &board.ValidationError{Err: fmt.Errorf("password must not be empty")}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	return s.mutate(ctx, func(state *board.State) error {
		state.PasswordHash = string(hash)
		return nil
	})
}
