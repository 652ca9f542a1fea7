package board

import "context"

// ============================================================
// SERVICE INTERFACE
// ============================================================

// Service is the sole writer of page/tile data and the single source
// of truth. Every mutation is atomic with respect to in-process
// callers and durable before it returns. Lookups return an explicit
// absent flag, never an error, for missing keys.
type Service interface {
	CreatePage(ctx context.Context, req *CreatePageReq) (*Page, error)
	UpdatePage(ctx context.Context, id string, patch *PagePatch) (*Page, error)
	DeletePage(ctx context.Context, id string) error

	// ReplacePage swaps a whole page, tiles included, in one durable
	// write. The settings session commits through this so a draft is
	// never half-applied.
	ReplacePage(ctx context.Context, page *Page) (*Page, error)

	AddTile(ctx context.Context, pageID string, req *TileReq) (*Tile, error)
	UpdateTile(ctx context.Context, pageID, tileID string, patch *TilePatch) (*Tile, error)
	RemoveTile(ctx context.Context, pageID, tileID string) error

	GetByID(ctx context.Context, id string) (*Page, bool)
	GetByPath(ctx context.Context, path string) (*Page, bool)
	ListPages(ctx context.Context) []Page
	PageCount(ctx context.Context) int

	// VerifyPassword compares against the stored secret; mismatch is
	// ErrAuthFailed, which callers may retry without limit.
	VerifyPassword(ctx context.Context, password string) error
	SetPassword(ctx context.Context, password string) error
}
