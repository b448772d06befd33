package ports

import (
	"context"

	"github.com/ikigaiwif606-acc/pickleball-dashboard/internal/domain"
)

// ReviewRepository persists the full review collection keyed by court id,
// each court's reviews newest-first. LoadAll drops malformed records
// individually and returns an empty map on corrupt top-level data; SaveAll
// overwrites the collection wholesale and never persists empty lists.
type ReviewRepository interface {
	LoadAll(ctx context.Context) (map[string][]domain.Review, error)
	SaveAll(ctx context.Context, all map[string][]domain.Review) error
}
