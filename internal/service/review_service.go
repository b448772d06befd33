package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ikigaiwif606-acc/pickleball-dashboard/internal/domain"
	"github.com/ikigaiwif606-acc/pickleball-dashboard/internal/repository/ports"
)

var ErrReviewValidation = errors.New("review validation failed")

// ReviewService manages the per-court review lists. Reviews are immutable
// once created; the newest-first order of each list is maintained by
// inserting at the front, never by re-sorting on read.
type ReviewService struct {
	reviews ports.ReviewRepository

	now   func() time.Time
	newID func() string
}

func NewReviewService(reviewRepo ports.ReviewRepository) *ReviewService {
	return &ReviewService{
		reviews: reviewRepo,
		now:     time.Now,
		newID:   uuid.NewString,
	}
}

// ListForCourt returns courtID's reviews newest-first. Unknown courts yield
// an empty list.
func (s *ReviewService) ListForCourt(ctx context.Context, courtID string) ([]domain.Review, error) {
	all, err := s.reviews.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	reviews := all[courtID]
	if reviews == nil {
		return []domain.Review{}, nil
	}
	return reviews, nil
}

// ListAll returns the whole collection keyed by court id.
func (s *ReviewService) ListAll(ctx context.Context) (map[string][]domain.Review, error) {
	return s.reviews.LoadAll(ctx)
}

// Add creates a review for courtID and persists it at the front of the
// court's list. The rating is rounded to the nearest integer and clamped
// into [1,5]; out-of-range input is normalized, never rejected.
func (s *ReviewService) Add(ctx context.Context, courtID, author string, rating float64, comment string) (*domain.Review, error) {
	courtID = strings.TrimSpace(courtID)
	author = strings.TrimSpace(author)
	if courtID == "" {
		return nil, fmt.Errorf("%w: court id is required", ErrReviewValidation)
	}
	if author == "" {
		return nil, fmt.Errorf("%w: author is required", ErrReviewValidation)
	}

	review := domain.Review{
		ID:        s.newID(),
		CourtID:   courtID,
		Author:    author,
		Rating:    clampRating(rating),
		Comment:   strings.TrimSpace(comment),
		CreatedAt: s.now().UTC().Format(time.RFC3339),
	}

	all, err := s.reviews.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	all[courtID] = append([]domain.Review{review}, all[courtID]...)

	if err := s.reviews.SaveAll(ctx, all); err != nil {
		return nil, err
	}
	return &review, nil
}

// Remove deletes exactly one review by id. A missing court or review id is
// a no-op, not an error. When the court's last review goes away its entry
// is dropped from the persisted collection entirely.
func (s *ReviewService) Remove(ctx context.Context, courtID, reviewID string) error {
	all, err := s.reviews.LoadAll(ctx)
	if err != nil {
		return err
	}

	reviews, ok := all[courtID]
	if !ok {
		return nil
	}

	kept := make([]domain.Review, 0, len(reviews))
	removed := false
	for _, r := range reviews {
		if !removed && r.ID == reviewID {
			removed = true
			continue
		}
		kept = append(kept, r)
	}
	if !removed {
		return nil
	}

	if len(kept) == 0 {
		delete(all, courtID)
	} else {
		all[courtID] = kept
	}
	return s.reviews.SaveAll(ctx, all)
}

// AverageRating returns the unrounded mean of the given ratings, or nil for
// an empty list. Formatting is the display layer's concern.
func AverageRating(reviews []domain.Review) *float64 {
	if len(reviews) == 0 {
		return nil
	}
	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	avg := float64(sum) / float64(len(reviews))
	return &avg
}

func clampRating(rating float64) int {
	r := int(math.Round(rating))
	if r < 1 {
		return 1
	}
	if r > 5 {
		return 5
	}
	return r
}
