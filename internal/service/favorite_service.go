package service

import (
	"context"

	"github.com/ikigaiwif606-acc/pickleball-dashboard/internal/repository/ports"
)

// FavoriteService exposes the favorite set as membership plus toggle.
// Toggle is a read-modify-write over the repository and is safe only under
// the single-writer contract; concurrent toggles from multiple logical
// callers are not coordinated.
type FavoriteService struct {
	favorites ports.FavoriteRepository
}

func NewFavoriteService(favoriteRepo ports.FavoriteRepository) *FavoriteService {
	return &FavoriteService{favorites: favoriteRepo}
}

// List returns the favorited court ids in stored order.
func (s *FavoriteService) List(ctx context.Context) ([]string, error) {
	return s.favorites.Load(ctx)
}

// IsFavorite reports whether courtID is currently favorited.
func (s *FavoriteService) IsFavorite(ctx context.Context, courtID string) (bool, error) {
	ids, err := s.favorites.Load(ctx)
	if err != nil {
		return false, err
	}
	for _, id := range ids {
		if id == courtID {
			return true, nil
		}
	}
	return false, nil
}

// Toggle adds courtID to the favorite set when absent and removes it when
// present, then persists the whole set. It returns the new membership
// state. Toggling an id that was never favorited simply adds it; removing
// one that is absent is a no-op by construction.
func (s *FavoriteService) Toggle(ctx context.Context, courtID string) (bool, error) {
	ids, err := s.favorites.Load(ctx)
	if err != nil {
		return false, err
	}

	next := make([]string, 0, len(ids)+1)
	removed := false
	for _, id := range ids {
		if id == courtID {
			removed = true
			continue
		}
		next = append(next, id)
	}
	if !removed {
		next = append(next, courtID)
	}

	if err := s.favorites.Save(ctx, next); err != nil {
		return false, err
	}
	return !removed, nil
}
