package board

// TileKind represents the two tile behaviors
type TileKind string

const (
	TileKindAudio TileKind = "audio"
	TileKindLink  TileKind = "link"
)

func (k TileKind) IsValid() bool {
	switch k {
	case TileKindAudio, TileKindLink:
		return true
	}
	return false
}

func (k TileKind) String() string {
	return string(k)
}

// Grid is a layout hint only. It is never enforced against the tile
// count or a tile's column span.
type Grid struct {
	Columns int `json:"columns"`
	Rows    int `json:"rows"`
}

// Tile is a single interactive element on a page. An audio tile plays
// its asset (or falls back to speech of the label); a link tile
// navigates to another page.
type Tile struct {
	ID         string   `json:"id"`
	Kind       TileKind `json:"kind"`
	Label      string   `json:"label"`
	ColumnSpan int      `json:"column_span"`

	// Asset references by key. A key pointing at a deleted asset is a
	// soft dangling reference, never an error.
	ImageAssetKey *string `json:"image_asset_key,omitempty"`
	AudioAssetKey *string `json:"audio_asset_key,omitempty"`

	// LinkTargetID references another page's ID. Meaningful only for
	// link tiles; a dangling target makes navigation a no-op.
	LinkTargetID *string `json:"link_target_id,omitempty"`
}

// Clone returns an independent copy of the tile
func (t *Tile) Clone() Tile {
	clone := *t
	clone.ImageAssetKey = clonePtr(t.ImageAssetKey)
	clone.AudioAssetKey = clonePtr(t.AudioAssetKey)
	clone.LinkTargetID = clonePtr(t.LinkTargetID)
	return clone
}

// Page is a named, addressable screen holding an ordered tile list.
// Insertion order is display order.
type Page struct {
	ID    string `json:"id"`
	Path  string `json:"path"`
	Title string `json:"title"`

	// BackgroundColor may be absent; the navigation resolver then
	// inherits the nearest ancestor's explicit value.
	BackgroundColor *string `json:"background_color,omitempty"`

	// ParentID is used only for background inheritance. A dangling
	// parent resolves to the default background, not an error.
	ParentID *string `json:"parent_id,omitempty"`

	Grid  Grid   `json:"grid"`
	Tiles []Tile `json:"tiles"`
}

// Clone returns a deep copy so callers can never mutate stored state
func (p *Page) Clone() *Page {
	clone := *p
	clone.BackgroundColor = clonePtr(p.BackgroundColor)
	clone.ParentID = clonePtr(p.ParentID)
	clone.Tiles = make([]Tile, len(p.Tiles))
	for i := range p.Tiles {
		clone.Tiles[i] = p.Tiles[i].Clone()
	}
	return &clone
}

// TileIndex returns the position of a tile, or -1 when absent
func (p *Page) TileIndex(tileID string) int {
	for i := range p.Tiles {
		if p.Tiles[i].ID == tileID {
			return i
		}
	}
	return -1
}

// SchemaVersion gates forward migrations of the persisted record
const SchemaVersion = 1

// State is the single persisted board record: every page plus the
// password hash gating the settings session.
type State struct {
	Version      int    `json:"version"`
	Pages        []Page `json:"pages"`
	PasswordHash string `json:"password_hash"`
}

// Clone returns a deep copy of the whole record
func (s *State) Clone() *State {
	clone := &State{
		Version:      s.Version,
		PasswordHash: s.PasswordHash,
		Pages:        make([]Page, 0, len(s.Pages)),
	}
	for i := range s.Pages {
		clone.Pages = append(clone.Pages, *s.Pages[i].Clone())
	}
	return clone
}

// PageIndexByID returns the position of a page, or -1 when absent
func (s *State) PageIndexByID(id string) int {
	for i := range s.Pages {
		if s.Pages[i].ID == id {
			return i
		}
	}
	return -1
}

// PageIndexByPath returns the position of a page, or -1 when absent
func (s *State) PageIndexByPath(path string) int {
	for i := range s.Pages {
		if s.Pages[i].Path == path {
			return i
		}
	}
	return -1
}

func clonePtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
