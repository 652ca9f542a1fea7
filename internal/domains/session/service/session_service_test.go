package service

import (
	"context"
	"testing"
	"time"

	"aacboard-backend/internal/domains/board"
	boardService "aacboard-backend/internal/domains/board/service"
	"aacboard-backend/internal/domains/session"
	"aacboard-backend/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testTTL = 30 * time.Second

type fakeRepo struct {
	state   *board.State
	saveErr error
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
	return nil
}

func strp(s string) *string { return &s }

type fixture struct {
	repo     *fakeRepo
	boardSvc board.Service
	tokens   *jwt.Manager
	svc      *sessionServiceImpl
	clock    time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("123"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := &fakeRepo{state: &board.State{
		Version: board.SchemaVersion,
		Pages: []board.Page{
			{
				ID:    "home",
				Path:  "/",
				Title: "Home",
				Grid:  board.Grid{Columns: 3, Rows: 4},
				Tiles: []board.Tile{
					{ID: "t-hello", Kind: board.TileKindAudio, Label: "hello", ColumnSpan: 1},
				},
			},
		},
		PasswordHash: string(hash),
	}}

	boardSvc, err := boardService.NewBoardService(repo, bcrypt.MinCost)
	require.NoError(t, err)

	tokens := jwt.NewManager("test-secret")
	f := &fixture{
		repo:     repo,
		boardSvc: boardSvc,
		tokens:   tokens,
		svc:      NewSessionService(boardSvc, tokens, testTTL).(*sessionServiceImpl),
		clock:    time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC),
	}
	f.svc.now = func() time.Time { return f.clock }
	return f
}

func (f *fixture) advance(d time.Duration) {
	f.clock = f.clock.Add(d)
}

func (f *fixture) openAuthorized(t *testing.T) string {
	t.Helper()
	ctx := context.Background()
	sess, err := f.svc.Open(ctx, "home")
	require.NoError(t, err)
	_, _, err = f.svc.Authorize(ctx, sess.ID, "123")
	require.NoError(t, err)
	return sess.ID
}

func TestOpenUnknownPage(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.Open(context.Background(), "nope")
	assert.ErrorIs(t, err, board.ErrPageNotFound)
}

func TestOpenStartsLockedWithDraftCopy(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	sess, err := f.svc.Open(ctx, "home")
	require.NoError(t, err)
	assert.Equal(t, session.StatusLocked, sess.Status)
	require.NotNil(t, sess.Draft)
	assert.Equal(t, "Home", sess.Draft.Title)
	assert.True(t, sess.Deadline.IsZero(), "no deadline until authorized")

	// Draft ops are rejected while locked.
	_, err = f.svc.UpdateDraft(ctx, sess.ID, &board.PagePatch{Title: strp("x")})
	assert.ErrorIs(t, err, session.ErrNotAuthorized)
}

func TestAuthorize(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	sess, err := f.svc.Open(ctx, "home")
	require.NoError(t, err)

	// Wrong password: stays locked, retries allowed.
	_, _, err = f.svc.Authorize(ctx, sess.ID, "wrong")
	assert.ErrorIs(t, err, board.ErrAuthFailed)
	got, err := f.svc.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, session.StatusLocked, got.Status)

	token, deadline, err := f.svc.Authorize(ctx, sess.ID, "123")
	require.NoError(t, err)
	assert.Equal(t, f.clock.Add(testTTL), deadline)

	claims, err := f.tokens.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, sess.ID, claims.SessionID)
	assert.Equal(t, "home", claims.PageID)

	_, _, err = f.svc.Authorize(ctx, "nope", "123")
	assert.ErrorIs(t, err, session.ErrSessionNotFound)
}

func TestDraftEditsStayOffTheStoreUntilSave(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id := f.openAuthorized(t)

	_, err := f.svc.UpdateDraft(ctx, id, &board.PagePatch{Title: strp("Home v2")})
	require.NoError(t, err)

	tile, err := f.svc.AddDraftTile(ctx, id, &board.TileReq{Kind: board.TileKindAudio, Label: "bye"})
	require.NoError(t, err)
	assert.NotEmpty(t, tile.ID)

	_, err = f.svc.UpdateDraftTile(ctx, id, "t-hello", &board.TilePatch{Label: strp("hi")})
	require.NoError(t, err)

	// The store still holds the original page.
	stored, _ := f.boardSvc.GetByID(ctx, "home")
	assert.Equal(t, "Home", stored.Title)
	require.Len(t, stored.Tiles, 1)
	assert.Equal(t, "hello", stored.Tiles[0].Label)

	// Save commits everything in one replace.
	page, err := f.svc.Save(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Home v2", page.Title)

	stored, _ = f.boardSvc.GetByID(ctx, "home")
	assert.Equal(t, "Home v2", stored.Title)
	require.Len(t, stored.Tiles, 2)
	assert.Equal(t, "hi", stored.Tiles[0].Label)
	assert.Equal(t, "bye", stored.Tiles[1].Label)

	// Committed sessions are gone.
	_, err = f.svc.Get(ctx, id)
	assert.ErrorIs(t, err, session.ErrSessionNotFound)
}

func TestRemoveDraftTile(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id := f.openAuthorized(t)

	require.NoError(t, f.svc.RemoveDraftTile(ctx, id, "t-hello"))
	assert.ErrorIs(t, f.svc.RemoveDraftTile(ctx, id, "t-hello"), board.ErrTileNotFound)

	draft, err := f.svc.Draft(ctx, id)
	require.NoError(t, err)
	assert.Empty(t, draft.Tiles)
}

func TestExpiryDiscardsDraft(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id := f.openAuthorized(t)

	_, err := f.svc.UpdateDraft(ctx, id, &board.PagePatch{Title: strp("never lands")})
	require.NoError(t, err)

	f.advance(testTTL + time.Second)

	_, err = f.svc.UpdateDraft(ctx, id, &board.PagePatch{Title: strp("x")})
	assert.ErrorIs(t, err, session.ErrSessionExpired)

	// Expired sessions are evicted on detection, so they look the same
	// as sessions that never existed.
	_, err = f.svc.Get(ctx, id)
	assert.ErrorIs(t, err, session.ErrSessionNotFound)

	_, err = f.svc.Save(ctx, id)
	assert.ErrorIs(t, err, session.ErrSessionNotFound)

	// The store never saw the draft.
	stored, _ := f.boardSvc.GetByID(ctx, "home")
	assert.Equal(t, "Home", stored.Title)
}

func TestExpiryDetectedByGetEvicts(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id := f.openAuthorized(t)

	f.advance(testTTL + time.Second)

	// The first lookup past the deadline reports the expiry and drops
	// the session from the registry.
	got, err := f.svc.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, session.StatusExpired, got.Status)
	assert.Nil(t, got.Draft)

	_, err = f.svc.Get(ctx, id)
	assert.ErrorIs(t, err, session.ErrSessionNotFound)
}

func TestSaveRightAtDeadlineStillCounts(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id := f.openAuthorized(t)

	f.advance(testTTL)

	_, err := f.svc.Save(ctx, id)
	assert.NoError(t, err, "deadline is inclusive")
}

func TestCancelDiscardsDraft(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id := f.openAuthorized(t)

	_, err := f.svc.UpdateDraft(ctx, id, &board.PagePatch{Title: strp("discarded")})
	require.NoError(t, err)

	require.NoError(t, f.svc.Cancel(ctx, id))

	stored, _ := f.boardSvc.GetByID(ctx, "home")
	assert.Equal(t, "Home", stored.Title)

	_, err = f.svc.Get(ctx, id)
	assert.ErrorIs(t, err, session.ErrSessionNotFound)
}

func TestCancelWorksWhileLocked(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// Never authorized; the session must still be dismissable.
	sess, err := f.svc.Open(ctx, "home")
	require.NoError(t, err)

	require.NoError(t, f.svc.Cancel(ctx, sess.ID))

	_, err = f.svc.Get(ctx, sess.ID)
	assert.ErrorIs(t, err, session.ErrSessionNotFound)
}

func TestSaveFailureKeepsSessionAndStore(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id := f.openAuthorized(t)

	_, err := f.svc.UpdateDraft(ctx, id, &board.PagePatch{Title: strp("retry me")})
	require.NoError(t, err)

	f.repo.saveErr = board.ErrStorageUnavailable
	_, err = f.svc.Save(ctx, id)
	assert.ErrorIs(t, err, board.ErrStorageUnavailable)

	// Session survives so the caller can retry after fixing storage.
	got, err := f.svc.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, session.StatusAuthorized, got.Status)
	require.NotNil(t, got.Draft)
	assert.Equal(t, "retry me", got.Draft.Title)

	stored, _ := f.boardSvc.GetByID(ctx, "home")
	assert.Equal(t, "Home", stored.Title)

	f.repo.saveErr = nil
	_, err = f.svc.Save(ctx, id)
	require.NoError(t, err)
	stored, _ = f.boardSvc.GetByID(ctx, "home")
	assert.Equal(t, "retry me", stored.Title)
}

func TestChangePassword(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id := f.openAuthorized(t)

	require.NoError(t, f.svc.ChangePassword(ctx, id, "456"))

	// Takes effect immediately, independent of Save.
	assert.NoError(t, f.boardSvc.VerifyPassword(ctx, "456"))
	assert.ErrorIs(t, f.boardSvc.VerifyPassword(ctx, "123"), board.ErrAuthFailed)
}
