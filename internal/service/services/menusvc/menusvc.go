package menusvc

import (
	"context"

	"github.com/adarshpandey515/etaverse-orders/internal/service/models/menuitem"
)

// menuRepository returns the current list of sellable items.
type menuRepository interface {
	LoadAll(ctx context.Context) ([]menuitem.MenuItem, error)
}

// MenuService is the read-only view of the menu catalog consumed by the
// ordering surface.
type MenuService struct {
	repo menuRepository
}

// option is a function that configures the MenuService.
type option func(*MenuService)

// MustNewMenuService creates a new MenuService.
func MustNewMenuService(opts ...option) *MenuService {
	s := &MenuService{}
	for _, opt := range opts {
		opt(s)
	}

	if s.repo == nil {
		panic("menusvc: menu repository is required")
	}

	return s
}

// WithRepository sets the menu repository for the MenuService.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithRepository(repo menuRepository) option {
	return func(s *MenuService) {
		s.repo = repo
	}
}

// Items returns the sellable items. The repository already degrades to
// an empty list on failure, so the menu is always renderable.
func (s *MenuService) Items(ctx context.Context) []menuitem.MenuItem {
	items, err := s.repo.LoadAll(ctx)
	if err != nil {
		return []menuitem.MenuItem{}
	}

	return items
}
