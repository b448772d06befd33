package ports

import "context"

// FavoriteRepository persists the set of favorited court identifiers.
// Load never fails its caller: missing, corrupt, or non-array data comes
// back as an empty slice. Save overwrites the persisted state wholesale.
type FavoriteRepository interface {
	Load(ctx context.Context) ([]string, error)
	Save(ctx context.Context, ids []string) error
}
