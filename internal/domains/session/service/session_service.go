package service

import (
	"context"
	"sync"
	"time"

	"aacboard-backend/internal/domains/board"
	"aacboard-backend/internal/domains/session"
	"aacboard-backend/pkg/jwt"
	"aacboard-backend/pkg/logger"

	"github.com/google/uuid"
)

type sessionServiceImpl struct {
	boardService board.Service
	tokens       *jwt.Manager
	ttl          time.Duration

	// now is swappable so expiry can be tested without sleeping
	now func() time.Time

	mu       sync.Mutex
	sessions map[string]*session.Session
}

// NewSessionService creates the session registry. Sessions live only in
// memory; a restart locks everything, which is the safe direction.
func NewSessionService(boardService board.Service, tokens *jwt.Manager, ttl time.Duration) session.Service {
	return &sessionServiceImpl{
		boardService: boardService,
		tokens:       tokens,
		ttl:          ttl,
		now:          time.Now,
		sessions:     make(map[string]*session.Session),
	}
}

// ========== LIFECYCLE ==========

func (s *sessionServiceImpl) Open(ctx context.Context, pageID string) (*session.Session, error) {
	page, found := s.boardService.GetByID(ctx, pageID)
	if !found {
		return nil, board.ErrPageNotFound
	}

	sess := &session.Session{
		ID:       uuid.NewString(),
		PageID:   pageID,
		Status:   session.StatusLocked,
		OpenedAt: s.now(),
		Draft:    page.Clone(),
	}

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()

	logger.Info("Settings session opened", map[string]interface{}{
		"session_id": sess.ID,
		"page_id":    pageID,
	})
	return snapshot(sess), nil
}

func (s *sessionServiceImpl) Authorize(ctx context.Context, id, password string) (string, time.Time, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return "", time.Time{}, session.ErrSessionNotFound
	}
	if sess.Status != session.StatusLocked {
		if err := s.live(sess); err != nil {
			return "", time.Time{}, err
		}
		// Already authorized; fall through and re-issue with a fresh
		// deadline, matching the source's re-unlock behavior.
	}

	if err := s.boardService.VerifyPassword(ctx, password); err != nil {
		// Session stays Locked; the caller may retry indefinitely.
		return "", time.Time{}, err
	}

	deadline := s.now().Add(s.ttl)
	token, err := s.tokens.GenerateSessionToken(sess.ID, sess.PageID, s.ttl)
	if err != nil {
		return "", time.Time{}, err
	}

	sess.Status = session.StatusAuthorized
	sess.Deadline = deadline

	logger.Info("Settings session authorized", map[string]interface{}{
		"session_id": sess.ID,
		"deadline":   deadline,
	})
	return token, deadline, nil
}

func (s *sessionServiceImpl) Get(ctx context.Context, id string) (*session.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, session.ErrSessionNotFound
	}
	s.expireIfStale(sess)
	return snapshot(sess), nil
}

func (s *sessionServiceImpl) Save(ctx context.Context, id string) (*board.Page, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, session.ErrSessionNotFound
	}
	if err := s.live(sess); err != nil {
		return nil, err
	}

	// One batched replace so a crash mid-save can never leave the page
	// half new, half old.
	page, err := s.boardService.ReplacePage(ctx, sess.Draft)
	if err != nil {
		return nil, err
	}

	sess.Status = session.StatusCommitted
	sess.Draft = nil
	delete(s.sessions, id)

	logger.Info("Settings session committed", map[string]interface{}{
		"session_id": id,
		"page_id":    page.ID,
	})
	return page, nil
}

func (s *sessionServiceImpl) Cancel(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return session.ErrSessionNotFound
	}

	sess.Status = session.StatusCancelled
	sess.Draft = nil
	delete(s.sessions, id)

	logger.Info("Settings session cancelled", map[string]interface{}{
		"session_id": id,
	})
	return nil
}

// ========== DRAFT EDITING ==========

func (s *sessionServiceImpl) Draft(ctx context.Context, id string) (*board.Page, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.liveSession(id)
	if err != nil {
		return nil, err
	}
	return sess.Draft.Clone(), nil
}

func (s *sessionServiceImpl) UpdateDraft(ctx context.Context, id string, patch *board.PagePatch) (*board.Page, error) {
	if err := patch.Validate(); err != nil {
		return nil, &board.ValidationError{Err: err}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.liveSession(id)
	if err != nil {
		return nil, err
	}
	patch.ApplyTo(sess.Draft)
	return sess.Draft.Clone(), nil
}

func (s *sessionServiceImpl) AddDraftTile(ctx context.Context, id string, req *board.TileReq) (*board.Tile, error) {
	if err := req.Validate(); err != nil {
		return nil, &board.ValidationError{Err: err}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.liveSession(id)
	if err != nil {
		return nil, err
	}

	tile := req.ToTile()
	if tile.ID == "" {
		tile.ID = uuid.NewString()
	}
	if sess.Draft.TileIndex(tile.ID) >= 0 {
		return nil, board.ErrDuplicateKey
	}
	sess.Draft.Tiles = append(sess.Draft.Tiles, *tile)
	added := tile.Clone()
	return &added, nil
}

func (s *sessionServiceImpl) UpdateDraftTile(ctx context.Context, id, tileID string, patch *board.TilePatch) (*board.Tile, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.liveSession(id)
	if err != nil {
		return nil, err
	}

	idx := sess.Draft.TileIndex(tileID)
	if idx < 0 {
		return nil, board.ErrTileNotFound
	}
	patch.ApplyTo(&sess.Draft.Tiles[idx])
	updated := sess.Draft.Tiles[idx].Clone()
	return &updated, nil
}

func (s *sessionServiceImpl) RemoveDraftTile(ctx context.Context, id, tileID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.liveSession(id)
	if err != nil {
		return err
	}

	idx := sess.Draft.TileIndex(tileID)
	if idx < 0 {
		return board.ErrTileNotFound
	}
	sess.Draft.Tiles = append(sess.Draft.Tiles[:idx], sess.Draft.Tiles[idx+1:]...)
	return nil
}

func (s *sessionServiceImpl) ChangePassword(ctx context.Context, id, password string) error {
	s.mu.Lock()
	sess, err := s.liveSession(id)
	s.mu.Unlock()
	if err != nil {
		return err
	}

	if err := s.boardService.SetPassword(ctx, password); err != nil {
		return err
	}
	logger.Info("Board password changed", map[string]interface{}{
		"session_id": sess.ID,
	})
	return nil
}

// ========== EXPIRY ==========

// liveSession looks up the session and requires it to be Authorized
// with an unexpired deadline. Caller holds s.mu.
func (s *sessionServiceImpl) liveSession(id string) (*session.Session, error) {
	sess, ok := s.sessions[id]
	if !ok {
		return nil, session.ErrSessionNotFound
	}
	if err := s.live(sess); err != nil {
		return nil, err
	}
	return sess, nil
}

func (s *sessionServiceImpl) live(sess *session.Session) error {
	switch sess.Status {
	case session.StatusLocked:
		return session.ErrNotAuthorized
	case session.StatusAuthorized:
		if s.expireIfStale(sess) {
			return session.ErrSessionExpired
		}
		return nil
	default:
		// Committed, Cancelled and Expired sessions are evicted on the
		// spot, so anything else in the map is a bug.
		return session.ErrSessionNotFound
	}
}

// expireIfStale flips an overdue session to Expired and evicts it from
// the registry; the draft is gone for good. Caller holds s.mu.
func (s *sessionServiceImpl) expireIfStale(sess *session.Session) bool {
	if sess.Status != session.StatusAuthorized || !s.now().After(sess.Deadline) {
		return false
	}
	sess.Status = session.StatusExpired
	sess.Draft = nil
	delete(s.sessions, sess.ID)
	logger.Info("Settings session expired", map[string]interface{}{
		"session_id": sess.ID,
	})
	return true
}

// snapshot copies the session so callers cannot reach the live draft
func snapshot(sess *session.Session) *session.Session {
	out := *sess
	if sess.Draft != nil {
		out.Draft = sess.Draft.Clone()
	}
	return &out
}
