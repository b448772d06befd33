package localfile

import (
	"context"
	"encoding/json"
)

const favoritesSlot = "favorites"

// FavoriteRepository stores the favorite set as a JSON array of court ids.
type FavoriteRepository struct {
	store *Store
}

func NewFavoriteRepo(store *Store) *FavoriteRepository {
	return &FavoriteRepository{store: store}
}

// Load returns the persisted favorite ids in stored order. Missing slots,
// non-JSON content, and non-array JSON all yield an empty slice; non-string
// array elements are filtered out silently.
func (r *FavoriteRepository) Load(ctx context.Context) ([]string, error) {
	data, ok := r.store.readSlot(favoritesSlot)
	if !ok {
		return []string{}, nil
	}

	var raw []any
	if err := json.Unmarshal(data, &raw); err != nil {
		return []string{}, nil
	}

	ids := make([]string, 0, len(raw))
	for _, v := range raw {
		if id, ok := v.(string); ok {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

// Save overwrites the persisted favorite set wholesale, preserving the
// given order.
func (r *FavoriteRepository) Save(ctx context.Context, ids []string) error {
	if ids == nil {
		ids = []string{}
	}
	data, err := json.Marshal(ids)
	if err != nil {
		return err
	}
	return r.store.writeSlot(favoritesSlot, data)
}
