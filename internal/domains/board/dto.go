package board

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var pathPattern = regexp.MustCompile(`^/[A-Za-z0-9_\-/.]*$`)

// ========================================
// REQUEST DTOs
// ========================================

type GridReq struct {
	Columns int `json:"columns"`
	Rows    int `json:"rows"`
}

// CreatePageReq - request body for POST /v1/pages
type CreatePageReq struct {
	ID              string    `json:"id" binding:"required"`
	Path            string    `json:"path" binding:"required"`
	Title           string    `json:"title" binding:"required"`
	BackgroundColor *string   `json:"background_color,omitempty"`
	ParentID        *string   `json:"parent_id,omitempty"`
	Grid            GridReq   `json:"grid"`
	Tiles           []TileReq `json:"tiles,omitempty"`
}

func (r CreatePageReq) Validate() error {
	err := validation.ValidateStruct(&r,
		validation.Field(&r.ID,
			validation.Required.Error("page id is required"),
			validation.Length(1, 128),
		),
		validation.Field(&r.Path,
			validation.Required.Error("page path is required"),
			validation.Match(pathPattern).Error("path must start with / and contain only url-safe characters"),
		),
		validation.Field(&r.Title,
			validation.Required.Error("page title is required"),
			validation.Length(1, 255),
		),
		validation.Field(&r.Grid),
	)
	if err != nil {
		return err
	}
	for _, t := range r.Tiles {
		if err := t.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func (g GridReq) Validate() error {
	return validation.ValidateStruct(&g,
		validation.Field(&g.Columns, validation.Min(1).Error("grid columns must be at least 1")),
		validation.Field(&g.Rows, validation.Min(1).Error("grid rows must be at least 1")),
	)
}

// ToPage converts the request into a model entity
func (r *CreatePageReq) ToPage() *Page {
	page := &Page{
		ID:              r.ID,
		Path:            r.Path,
		Title:           r.Title,
		BackgroundColor: r.BackgroundColor,
		ParentID:        r.ParentID,
		Grid:            Grid{Columns: r.Grid.Columns, Rows: r.Grid.Rows},
		Tiles:           make([]Tile, 0, len(r.Tiles)),
	}
	for i := range r.Tiles {
		page.Tiles = append(page.Tiles, *r.Tiles[i].ToTile())
	}
	return page
}

// PagePatch - partial update for PUT /v1/pages/:id.
// Only non-nil fields are applied; an empty patch is a valid no-op.
type PagePatch struct {
	Path            *string  `json:"path,omitempty"`
	Title           *string  `json:"title,omitempty"`
	BackgroundColor *string  `json:"background_color,omitempty"`
	ParentID        *string  `json:"parent_id,omitempty"`
	Grid            *GridReq `json:"grid,omitempty"`
}

func (p PagePatch) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Path,
			validation.NilOrNotEmpty.Error("path must not be empty"),
			validation.Match(pathPattern).Error("path must start with / and contain only url-safe characters"),
		),
		validation.Field(&p.Title,
			validation.NilOrNotEmpty.Error("title must not be empty"),
		),
		validation.Field(&p.Grid),
	)
}

// ApplyTo merges the patch onto a page in place
func (p *PagePatch) ApplyTo(page *Page) {
	if p.Path != nil {
		page.Path = *p.Path
	}
	if p.Title != nil {
		page.Title = *p.Title
	}
	if p.BackgroundColor != nil {
		page.BackgroundColor = clonePtr(p.BackgroundColor)
	}
	if p.ParentID != nil {
		// An empty parent id detaches the page from its ancestor chain
		if *p.ParentID == "" {
			page.ParentID = nil
		} else {
			page.ParentID = clonePtr(p.ParentID)
		}
	}
	if p.Grid != nil {
		page.Grid = Grid{Columns: p.Grid.Columns, Rows: p.Grid.Rows}
	}
}

// TileReq - request body for adding a tile. Omitted ID is generated.
type TileReq struct {
	ID            string   `json:"id,omitempty"`
	Kind          TileKind `json:"kind" binding:"required"`
	Label         string   `json:"label" binding:"required"`
	ColumnSpan    int      `json:"column_span,omitempty"`
	ImageAssetKey *string  `json:"image_asset_key,omitempty"`
	AudioAssetKey *string  `json:"audio_asset_key,omitempty"`
	LinkTargetID  *string  `json:"link_target_id,omitempty"`
}

func (r TileReq) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Kind,
			validation.Required.Error("tile kind is required"),
			validation.In(TileKindAudio, TileKindLink).Error("tile kind must be audio or link"),
		),
		validation.Field(&r.Label,
			validation.Required.Error("tile label is required"),
			validation.Length(1, 255),
		),
		// Oversized spans may overflow the grid; only non-positive
		// spans are rejected.
		validation.Field(&r.ColumnSpan, validation.Min(0)),
	)
}

// ToTile converts the request into a model entity
func (r *TileReq) ToTile() *Tile {
	span := r.ColumnSpan
	if span < 1 {
		span = 1
	}
	return &Tile{
		ID:            r.ID,
		Kind:          r.Kind,
		Label:         r.Label,
		ColumnSpan:    span,
		ImageAssetKey: clonePtr(r.ImageAssetKey),
		AudioAssetKey: clonePtr(r.AudioAssetKey),
		LinkTargetID:  clonePtr(r.LinkTargetID),
	}
}

// TilePatch - partial update for a tile. Only non-nil fields apply.
// An empty string in an asset key or link target clears the reference.
type TilePatch struct {
	Kind          *TileKind `json:"kind,omitempty"`
	Label         *string   `json:"label,omitempty"`
	ColumnSpan    *int      `json:"column_span,omitempty"`
	ImageAssetKey *string   `json:"image_asset_key,omitempty"`
	AudioAssetKey *string   `json:"audio_asset_key,omitempty"`
	LinkTargetID  *string   `json:"link_target_id,omitempty"`
}

func (p TilePatch) Validate() error {
	if p.Kind != nil && !p.Kind.IsValid() {
		return &ValidationError{Err: validation.NewError("tile_kind", "tile kind must be audio or link")}
	}
	if p.Label != nil && *p.Label == "" {
		return &ValidationError{Err: validation.NewError("tile_label", "tile label must not be empty")}
	}
	if p.ColumnSpan != nil && *p.ColumnSpan < 1 {
		return &ValidationError{Err: validation.NewError("tile_column_span", "column span must be at least 1")}
	}
	return nil
}

// ApplyTo merges the patch onto a tile in place
func (p *TilePatch) ApplyTo(tile *Tile) {
	if p.Kind != nil {
		tile.Kind = *p.Kind
	}
	if p.Label != nil {
		tile.Label = *p.Label
	}
	if p.ColumnSpan != nil {
		tile.ColumnSpan = *p.ColumnSpan
	}
	if p.ImageAssetKey != nil {
		tile.ImageAssetKey = emptyClears(p.ImageAssetKey)
	}
	if p.AudioAssetKey != nil {
		tile.AudioAssetKey = emptyClears(p.AudioAssetKey)
	}
	if p.LinkTargetID != nil {
		tile.LinkTargetID = emptyClears(p.LinkTargetID)
	}
}

func emptyClears(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return clonePtr(s)
}
