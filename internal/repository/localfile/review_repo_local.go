package localfile

import (
	"context"
	"encoding/json"
	"math"

	"github.com/ikigaiwif606-acc/pickleball-dashboard/internal/domain"
)

const reviewsSlot = "reviews"

// ReviewRepository stores the review collection as a JSON object mapping
// court ids to arrays of review records.
type ReviewRepository struct {
	store *Store
}

func NewReviewRepo(store *Store) *ReviewRepository {
	return &ReviewRepository{store: store}
}

// storedReview tolerates prior on-disk states: the rating may have been
// written as any JSON number.
type storedReview struct {
	ID        string       `json:"id"`
	CourtID   string       `json:"courtId"`
	Author    string       `json:"author"`
	Rating    *json.Number `json:"rating"`
	Comment   string       `json:"comment"`
	CreatedAt string       `json:"createdAt"`
}

// LoadAll returns the persisted collection, newest-first per court as
// stored. Corrupt top-level data yields an empty map. Records missing an
// id, court id, author, numeric rating, or timestamp are dropped one by
// one without invalidating the rest; surviving ratings are clamped to
// [1,5].
func (r *ReviewRepository) LoadAll(ctx context.Context) (map[string][]domain.Review, error) {
	all := make(map[string][]domain.Review)

	data, ok := r.store.readSlot(reviewsSlot)
	if !ok {
		return all, nil
	}

	var raw map[string][]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return all, nil
	}

	for courtID, entries := range raw {
		reviews := make([]domain.Review, 0, len(entries))
		for _, entry := range entries {
			if review, ok := decodeReview(entry); ok {
				reviews = append(reviews, review)
			}
		}
		if len(reviews) > 0 {
			all[courtID] = reviews
		}
	}
	return all, nil
}

// SaveAll overwrites the persisted collection wholesale. Courts with no
// reviews are omitted so the slot never carries empty-list residue.
func (r *ReviewRepository) SaveAll(ctx context.Context, all map[string][]domain.Review) error {
	compact := make(map[string][]domain.Review, len(all))
	for courtID, reviews := range all {
		if len(reviews) > 0 {
			compact[courtID] = reviews
		}
	}
	data, err := json.Marshal(compact)
	if err != nil {
		return err
	}
	return r.store.writeSlot(reviewsSlot, data)
}

func decodeReview(entry json.RawMessage) (domain.Review, bool) {
	var sr storedReview
	if err := json.Unmarshal(entry, &sr); err != nil {
		return domain.Review{}, false
	}
	if sr.ID == "" || sr.CourtID == "" || sr.Author == "" || sr.CreatedAt == "" || sr.Rating == nil {
		return domain.Review{}, false
	}
	value, err := sr.Rating.Float64()
	if err != nil {
		return domain.Review{}, false
	}

	rating := int(math.Round(value))
	if rating < 1 {
		rating = 1
	}
	if rating > 5 {
		rating = 5
	}

	return domain.Review{
		ID:        sr.ID,
		CourtID:   sr.CourtID,
		Author:    sr.Author,
		Rating:    rating,
		Comment:   sr.Comment,
		CreatedAt: sr.CreatedAt,
	}, true
}
