package service

import (
	"context"
	"testing"

	"aacboard-backend/internal/domains/board"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// fakeRepo is an in-memory board.Repository. Save clones so the service
// cannot alias the stored record, same as the SQLite implementation.
type fakeRepo struct {
	state   *board.State
	saveErr error
	saves   int
}

func (r *fakeRepo) Load(ctx context.Context) (*board.State, bool, error) {
	if r.state == nil {
		return nil, false, nil
	}
	return r.state.Clone(), true, nil
}

func (r *fakeRepo) Save(ctx context.Context, state *board.State) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.state = state.Clone()
	r.saves++
	return nil
}

func seededRepo(t *testing.T, pages []board.Page) *fakeRepo {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("123"), bcrypt.MinCost)
	require.NoError(t, err)
	return &fakeRepo{state: &board.State{
		Version:      board.SchemaVersion,
		Pages:        pages,
		PasswordHash: string(hash),
	}}
}

func strp(s string) *string { return &s }

func testPages() []board.Page {
	return []board.Page{
		{
			ID:    "home",
			Path:  "/",
			Title: "Home",
			Grid:  board.Grid{Columns: 3, Rows: 4},
			Tiles: []board.Tile{
				{ID: "t-hello", Kind: board.TileKindAudio, Label: "hello", ColumnSpan: 1},
				{ID: "t-food", Kind: board.TileKindLink, Label: "food", ColumnSpan: 1, LinkTargetID: strp("food")},
				{ID: "t-bye", Kind: board.TileKindAudio, Label: "bye", ColumnSpan: 2},
			},
		},
		{
			ID:       "food",
			Path:     "/p/food",
			Title:    "Food",
			ParentID: strp("home"),
			Grid:     board.Grid{Columns: 3, Rows: 4},
		},
	}
}

func newTestService(t *testing.T) (board.Service, *fakeRepo) {
	t.Helper()
	repo := seededRepo(t, testPages())
	svc, err := NewBoardService(repo, bcrypt.MinCost)
	require.NoError(t, err)
	return svc, repo
}

func TestNewBoardServiceSeedsDefaultBoard(t *testing.T) {
	repo := &fakeRepo{}
	svc, err := NewBoardService(repo, bcrypt.MinCost)
	require.NoError(t, err)

	ctx := context.Background()
	assert.Equal(t, len(board.DefaultPages()), svc.PageCount(ctx))

	home, found := svc.GetByPath(ctx, "/")
	require.True(t, found)
	assert.Equal(t, "home", home.ID)

	// The seed is written through before the constructor returns.
	require.NotNil(t, repo.state)
	assert.NoError(t, svc.VerifyPassword(ctx, board.DefaultPassword))
}

func TestCreatePage(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	page, err := svc.CreatePage(ctx, &board.CreatePageReq{
		ID:    "drinks",
		Path:  "/p/drinks",
		Title: "Drinks",
		Grid:  board.GridReq{Columns: 2, Rows: 3},
		Tiles: []board.TileReq{{Kind: board.TileKindAudio, Label: "water"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "drinks", page.ID)
	require.Len(t, page.Tiles, 1)
	assert.NotEmpty(t, page.Tiles[0].ID, "omitted tile id is generated")
	assert.Equal(t, 1, page.Tiles[0].ColumnSpan, "span defaults to 1")

	got, found := svc.GetByPath(ctx, "/p/drinks")
	require.True(t, found)
	assert.Equal(t, "drinks", got.ID)

	// Durable before return.
	assert.Equal(t, 3, len(repo.state.Pages))
}

func TestCreatePageDuplicateLeavesStoreUnchanged(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()
	savesBefore := repo.saves

	cases := []struct {
		name string
		req  board.CreatePageReq
	}{
		{"duplicate id", board.CreatePageReq{ID: "home", Path: "/p/other", Title: "Other", Grid: board.GridReq{Columns: 1, Rows: 1}}},
		{"duplicate path", board.CreatePageReq{ID: "other", Path: "/", Title: "Other", Grid: board.GridReq{Columns: 1, Rows: 1}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreatePage(ctx, &tc.req)
			assert.ErrorIs(t, err, board.ErrDuplicateKey)
		})
	}

	assert.Equal(t, 2, svc.PageCount(ctx))
	assert.Equal(t, savesBefore, repo.saves, "no write happened")
}

func TestCreatePageRejectsDuplicateTileIDs(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreatePage(ctx, &board.CreatePageReq{
		ID:    "drinks",
		Path:  "/p/drinks",
		Title: "Drinks",
		Grid:  board.GridReq{Columns: 2, Rows: 2},
		Tiles: []board.TileReq{
			{ID: "same", Kind: board.TileKindAudio, Label: "one"},
			{ID: "same", Kind: board.TileKindAudio, Label: "two"},
		},
	})
	assert.ErrorIs(t, err, board.ErrDuplicateKey)

	_, found := svc.GetByID(ctx, "drinks")
	assert.False(t, found, "rejected page must not be stored")
}

func TestReplacePageRejectsDuplicateTileIDs(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	before, _ := svc.GetByID(ctx, "home")

	_, err := svc.ReplacePage(ctx, &board.Page{
		ID:    "home",
		Path:  "/",
		Title: "Home",
		Grid:  board.Grid{Columns: 2, Rows: 2},
		Tiles: []board.Tile{
			{ID: "same", Kind: board.TileKindAudio, Label: "one", ColumnSpan: 1},
			{ID: "same", Kind: board.TileKindAudio, Label: "two", ColumnSpan: 1},
		},
	})
	assert.ErrorIs(t, err, board.ErrDuplicateKey)

	after, _ := svc.GetByID(ctx, "home")
	assert.Equal(t, before, after, "rejected replacement must not land")
}

func TestCreatePageFailedWriteLeavesMemoryUnchanged(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()
	repo.saveErr = board.ErrStorageUnavailable

	_, err := svc.CreatePage(ctx, &board.CreatePageReq{
		ID:    "drinks",
		Path:  "/p/drinks",
		Title: "Drinks",
		Grid:  board.GridReq{Columns: 1, Rows: 1},
	})
	assert.ErrorIs(t, err, board.ErrStorageUnavailable)

	_, found := svc.GetByID(ctx, "drinks")
	assert.False(t, found, "rejected create must not be observable")
}

func TestUpdatePage(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	updated, err := svc.UpdatePage(ctx, "food", &board.PagePatch{
		Title:           strp("Meals"),
		BackgroundColor: strp("#E0F2FE"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Meals", updated.Title)
	require.NotNil(t, updated.BackgroundColor)
	assert.Equal(t, "#E0F2FE", *updated.BackgroundColor)

	// Unpatched fields survive.
	assert.Equal(t, "/p/food", updated.Path)

	_, err = svc.UpdatePage(ctx, "nope", &board.PagePatch{Title: strp("x")})
	assert.ErrorIs(t, err, board.ErrPageNotFound)

	_, err = svc.UpdatePage(ctx, "food", &board.PagePatch{Path: strp("/")})
	assert.ErrorIs(t, err, board.ErrDuplicateKey)
}

func TestUpdatePageEmptyPatchIsNoOp(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	before, _ := svc.GetByID(ctx, "food")
	after, err := svc.UpdatePage(ctx, "food", &board.PagePatch{})
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestDeletePageNeverCascades(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.DeletePage(ctx, "food"))

	_, found := svc.GetByID(ctx, "food")
	assert.False(t, found)

	// The link tile on home still names the deleted page; navigation
	// treats it as a no-op rather than a broken reference.
	home, found := svc.GetByID(ctx, "home")
	require.True(t, found)
	idx := home.TileIndex("t-food")
	require.GreaterOrEqual(t, idx, 0)
	require.NotNil(t, home.Tiles[idx].LinkTargetID)
	assert.Equal(t, "food", *home.Tiles[idx].LinkTargetID)

	assert.ErrorIs(t, svc.DeletePage(ctx, "food"), board.ErrPageNotFound)
}

func TestReplacePage(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	replacement := &board.Page{
		ID:    "food",
		Path:  "/p/meals",
		Title: "Meals",
		Grid:  board.Grid{Columns: 4, Rows: 4},
		Tiles: []board.Tile{
			{ID: "t-pasta", Kind: board.TileKindAudio, Label: "pasta", ColumnSpan: 1},
		},
	}
	got, err := svc.ReplacePage(ctx, replacement)
	require.NoError(t, err)
	assert.Equal(t, "Meals", got.Title)

	stored, found := svc.GetByID(ctx, "food")
	require.True(t, found)
	assert.Equal(t, "/p/meals", stored.Path)
	require.Len(t, stored.Tiles, 1)
	assert.Equal(t, "t-pasta", stored.Tiles[0].ID)

	// Path uniqueness holds for replacements too.
	replacement.Path = "/"
	_, err = svc.ReplacePage(ctx, replacement)
	assert.ErrorIs(t, err, board.ErrDuplicateKey)

	_, err = svc.ReplacePage(ctx, &board.Page{ID: "nope", Path: "/p/nope", Title: "x"})
	assert.ErrorIs(t, err, board.ErrPageNotFound)
}

func TestAddTile(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	tile, err := svc.AddTile(ctx, "food", &board.TileReq{
		Kind:  board.TileKindAudio,
		Label: "pizza",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, tile.ID)

	page, _ := svc.GetByID(ctx, "food")
	require.Len(t, page.Tiles, 1)
	assert.Equal(t, "pizza", page.Tiles[0].Label)

	_, err = svc.AddTile(ctx, "nope", &board.TileReq{Kind: board.TileKindAudio, Label: "x"})
	assert.ErrorIs(t, err, board.ErrPageNotFound)

	_, err = svc.AddTile(ctx, "food", &board.TileReq{ID: tile.ID, Kind: board.TileKindAudio, Label: "dup"})
	assert.ErrorIs(t, err, board.ErrDuplicateKey)
}

func TestUpdateTileAbsentLeavesTilesUnchanged(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	before, _ := svc.GetByID(ctx, "home")

	_, err := svc.UpdateTile(ctx, "home", "nope", &board.TilePatch{Label: strp("x")})
	assert.ErrorIs(t, err, board.ErrTileNotFound)

	after, _ := svc.GetByID(ctx, "home")
	assert.Equal(t, before.Tiles, after.Tiles)
}

func TestUpdateTileClearsReferencesOnEmptyString(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	tile, err := svc.UpdateTile(ctx, "home", "t-food", &board.TilePatch{
		LinkTargetID: strp(""),
	})
	require.NoError(t, err)
	assert.Nil(t, tile.LinkTargetID)
}

func TestRemoveTileClosesGap(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.RemoveTile(ctx, "home", "t-food"))

	page, _ := svc.GetByID(ctx, "home")
	require.Len(t, page.Tiles, 2)
	assert.Equal(t, "t-hello", page.Tiles[0].ID)
	assert.Equal(t, "t-bye", page.Tiles[1].ID)

	assert.ErrorIs(t, svc.RemoveTile(ctx, "home", "t-food"), board.ErrTileNotFound)
}

func TestPasswords(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	assert.NoError(t, svc.VerifyPassword(ctx, "123"))
	assert.ErrorIs(t, svc.VerifyPassword(ctx, "wrong"), board.ErrAuthFailed)

	require.NoError(t, svc.SetPassword(ctx, "456"))
	assert.NoError(t, svc.VerifyPassword(ctx, "456"))
	assert.ErrorIs(t, svc.VerifyPassword(ctx, "123"), board.ErrAuthFailed)

	err := svc.SetPassword(ctx, "")
	assert.True(t, board.IsValidationError(err))
}

func TestLookupsReturnCopies(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	page, found := svc.GetByID(ctx, "home")
	require.True(t, found)
	page.Title = "mutated"
	page.Tiles[0].Label = "mutated"

	again, _ := svc.GetByID(ctx, "home")
	assert.Equal(t, "Home", again.Title)
	assert.Equal(t, "hello", again.Tiles[0].Label)
}
