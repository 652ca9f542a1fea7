package service

import (
	"context"

	"aacboard-backend/internal/domains/board"
	"aacboard-backend/internal/domains/navigation"
)

type navigationServiceImpl struct {
	boardService      board.Service
	defaultBackground string
}

// NewNavigationService creates a resolver on top of the board service.
// defaultBackground is the fallback color when neither the page nor
// any ancestor declares one.
func NewNavigationService(boardService board.Service, defaultBackground string) navigation.Service {
	return &navigationServiceImpl{
		boardService:      boardService,
		defaultBackground: defaultBackground,
	}
}

func (s *navigationServiceImpl) Resolve(ctx context.Context, path string) (*navigation.ResolvedPage, error) {
	page, found := s.boardService.GetByPath(ctx, path)
	if !found {
		return nil, board.ErrPageNotFound
	}

	return &navigation.ResolvedPage{
		Page:       *page,
		Background: s.effectiveBackground(ctx, page),
	}, nil
}

// effectiveBackground walks the parent chain until it finds an explicit
// color. The walk is capped at the current page count so a parent cycle
// terminates instead of looping; a dangling parent reference or an
// all-inherit chain falls through to the default.
func (s *navigationServiceImpl) effectiveBackground(ctx context.Context, page *board.Page) string {
	if page.BackgroundColor != nil {
		return *page.BackgroundColor
	}

	current := page
	for steps := s.boardService.PageCount(ctx); steps > 0; steps-- {
		if current.ParentID == nil {
			break
		}
		parent, found := s.boardService.GetByID(ctx, *current.ParentID)
		if !found {
			break
		}
		if parent.BackgroundColor != nil {
			return *parent.BackgroundColor
		}
		current = parent
	}

	return s.defaultBackground
}
