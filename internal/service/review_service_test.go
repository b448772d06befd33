package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ikigaiwif606-acc/pickleball-dashboard/internal/domain"
)

// memoryReviewRepository is an in-memory stand-in for the localfile store.
type memoryReviewRepository struct {
	all   map[string][]domain.Review
	loads int
	saves int
}

func newMemoryReviewRepository() *memoryReviewRepository {
	return &memoryReviewRepository{all: make(map[string][]domain.Review)}
}

func (m *memoryReviewRepository) LoadAll(ctx context.Context) (map[string][]domain.Review, error) {
	m.loads++
	out := make(map[string][]domain.Review, len(m.all))
	for k, v := range m.all {
		out[k] = append([]domain.Review(nil), v...)
	}
	return out, nil
}

func (m *memoryReviewRepository) SaveAll(ctx context.Context, all map[string][]domain.Review) error {
	m.saves++
	next := make(map[string][]domain.Review, len(all))
	for k, v := range all {
		if len(v) > 0 {
			next[k] = append([]domain.Review(nil), v...)
		}
	}
	m.all = next
	return nil
}

func newTestReviewService(repo *memoryReviewRepository) *ReviewService {
	svc := NewReviewService(repo)
	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	calls := 0
	svc.now = func() time.Time {
		calls++
		return base.Add(time.Duration(calls) * time.Minute)
	}
	seq := 0
	svc.newID = func() string {
		seq++
		return string(rune('a' + seq - 1))
	}
	return svc
}

func TestReviewService_AddClampsRating(t *testing.T) {
	ctx := context.Background()
	svc := newTestReviewService(newMemoryReviewRepository())

	cases := []struct {
		input float64
		want  int
	}{
		{0, 1},
		{-3, 1},
		{10, 5},
		{3, 3},
		{3.4, 3},
		{3.6, 4},
		{5, 5},
	}
	for _, tc := range cases {
		review, err := svc.Add(ctx, "court-1", "Aina", tc.input, "")
		if err != nil {
			t.Fatalf("Add(%v) returned error: %v", tc.input, err)
		}
		if review.Rating != tc.want {
			t.Errorf("Add(%v) rating = %d, want %d", tc.input, review.Rating, tc.want)
		}
	}
}

func TestReviewService_AddInsertsNewestFirst(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryReviewRepository()
	svc := newTestReviewService(repo)

	first, err := svc.Add(ctx, "court-1", "Aina", 4, "solid courts")
	if err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	second, err := svc.Add(ctx, "court-1", "Ben", 5, "love the lighting")
	if err != nil {
		t.Fatalf("Add returned error: %v", err)
	}

	reviews, err := svc.ListForCourt(ctx, "court-1")
	if err != nil {
		t.Fatalf("ListForCourt returned error: %v", err)
	}
	if len(reviews) != 2 {
		t.Fatalf("expected 2 reviews, got %d", len(reviews))
	}
	if reviews[0].ID != second.ID || reviews[1].ID != first.ID {
		t.Fatalf("expected newest-first order [%s %s], got [%s %s]",
			second.ID, first.ID, reviews[0].ID, reviews[1].ID)
	}
}

func TestReviewService_AddValidatesAuthorAndCourt(t *testing.T) {
	ctx := context.Background()
	svc := newTestReviewService(newMemoryReviewRepository())

	if _, err := svc.Add(ctx, "court-1", "   ", 4, ""); !errors.Is(err, ErrReviewValidation) {
		t.Fatalf("expected ErrReviewValidation for blank author, got %v", err)
	}
	if _, err := svc.Add(ctx, "", "Aina", 4, ""); !errors.Is(err, ErrReviewValidation) {
		t.Fatalf("expected ErrReviewValidation for empty court id, got %v", err)
	}
}

func TestReviewService_RemoveLastReviewDropsCourtKey(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryReviewRepository()
	svc := newTestReviewService(repo)

	review, err := svc.Add(ctx, "court-1", "Aina", 4, "")
	if err != nil {
		t.Fatalf("Add returned error: %v", err)
	}

	if err := svc.Remove(ctx, "court-1", review.ID); err != nil {
		t.Fatalf("Remove returned error: %v", err)
	}

	all, err := svc.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll returned error: %v", err)
	}
	if _, ok := all["court-1"]; ok {
		t.Fatal("expected court-1 entry to be gone after deleting its last review")
	}
}

func TestReviewService_RemoveMissingIsNoOp(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryReviewRepository()
	svc := newTestReviewService(repo)

	existing, err := svc.Add(ctx, "court-1", "Aina", 4, "")
	if err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	savesBefore := repo.saves

	if err := svc.Remove(ctx, "no-such-court", "whatever"); err != nil {
		t.Fatalf("Remove of unknown court returned error: %v", err)
	}
	if err := svc.Remove(ctx, "court-1", "no-such-review"); err != nil {
		t.Fatalf("Remove of unknown review returned error: %v", err)
	}
	if repo.saves != savesBefore {
		t.Fatalf("expected no-op removals to skip persistence, saves went %d -> %d", savesBefore, repo.saves)
	}

	reviews, err := svc.ListForCourt(ctx, "court-1")
	if err != nil {
		t.Fatalf("ListForCourt returned error: %v", err)
	}
	if len(reviews) != 1 || reviews[0].ID != existing.ID {
		t.Fatalf("expected existing review untouched, got %v", reviews)
	}
}

func TestReviewService_RemoveDeletesExactlyOne(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryReviewRepository()
	svc := newTestReviewService(repo)

	a, _ := svc.Add(ctx, "court-1", "Aina", 4, "")
	b, _ := svc.Add(ctx, "court-1", "Ben", 5, "")
	c, _ := svc.Add(ctx, "court-1", "Chen", 3, "")

	if err := svc.Remove(ctx, "court-1", b.ID); err != nil {
		t.Fatalf("Remove returned error: %v", err)
	}

	reviews, err := svc.ListForCourt(ctx, "court-1")
	if err != nil {
		t.Fatalf("ListForCourt returned error: %v", err)
	}
	if len(reviews) != 2 {
		t.Fatalf("expected 2 reviews left, got %d", len(reviews))
	}
	if reviews[0].ID != c.ID || reviews[1].ID != a.ID {
		t.Fatalf("expected [%s %s], got [%s %s]", c.ID, a.ID, reviews[0].ID, reviews[1].ID)
	}
}

func TestAverageRating(t *testing.T) {
	if avg := AverageRating(nil); avg != nil {
		t.Fatalf("expected nil average for empty input, got %v", *avg)
	}

	reviews := []domain.Review{
		{Rating: 5}, {Rating: 3}, {Rating: 4},
	}
	avg := AverageRating(reviews)
	if avg == nil {
		t.Fatal("expected non-nil average")
	}
	if *avg != 4 {
		t.Fatalf("average of [5 3 4] = %v, want 4", *avg)
	}

	uneven := []domain.Review{{Rating: 4}, {Rating: 5}}
	if got := AverageRating(uneven); got == nil || *got != 4.5 {
		t.Fatalf("average of [4 5] = %v, want 4.5 unrounded", got)
	}
}

func TestReviewService_CreatedAtIsRFC3339(t *testing.T) {
	ctx := context.Background()
	svc := newTestReviewService(newMemoryReviewRepository())

	review, err := svc.Add(ctx, "court-1", "Aina", 4, "")
	if err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	if _, err := time.Parse(time.RFC3339, review.CreatedAt); err != nil {
		t.Fatalf("CreatedAt %q is not RFC3339: %v", review.CreatedAt, err)
	}
}
