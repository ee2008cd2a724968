package app

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"siamstay/internal/domain"
)

// freshReviewDate is the display label for a just-submitted review.
const freshReviewDate = "เมื่อสักครู่"

var defaultStayType = "เดินทางคนเดียว"

// ReviewThreads holds the per-hotel review lists. Threads are seeded on
// first touch and live only in memory; a restart resets them, mirroring the
// storefront's reload behavior.
type ReviewThreads struct {
	catalog domain.CatalogRepository
	seed    func() []domain.Review

	mu      sync.Mutex
	threads map[string]*thread
}

type thread struct {
	reviews []domain.Review
	// helpful votes already cast, reviewID -> viewer set
	voted map[string]map[string]struct{}
}

func NewReviewThreads(catalog domain.CatalogRepository, seed func() []domain.Review) *ReviewThreads {
	return &ReviewThreads{
		catalog: catalog,
		seed:    seed,
		threads: make(map[string]*thread),
	}
}

func (s *ReviewThreads) get(ctx context.Context, hotelID string) (*thread, error) {
	if _, err := s.catalog.GetHotel(ctx, hotelID); err != nil {
		return nil, err
	}
	t, ok := s.threads[hotelID]
	if !ok {
		t = &thread{voted: make(map[string]map[string]struct{})}
		if s.seed != nil {
			t.reviews = s.seed()
		}
		s.threads[hotelID] = t
	}
	return t, nil
}

// Sorted returns a sorted copy of a hotel's reviews. Newest preserves the
// list order (new reviews are prepended); highest/lowest sort by rating with
// stable ties.
func (s *ReviewThreads) Sorted(ctx context.Context, hotelID string, key domain.ReviewSort) ([]domain.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, err := s.get(ctx, hotelID)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Review, len(t.reviews))
	copy(out, t.reviews)
	switch key {
	case domain.ReviewSortHighest:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	case domain.ReviewSortLowest:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Rating < out[j].Rating })
	default:
		// newest: insertion order
	}
	return out, nil
}

// Distribution buckets ratings into [9,10], [7,9), [5,7), [3,5), [0,3).
// An empty thread yields zero counts and zero percentages.
func (s *ReviewThreads) Distribution(ctx context.Context, hotelID string) (domain.RatingDistribution, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, err := s.get(ctx, hotelID)
	if err != nil {
		return domain.RatingDistribution{}, err
	}

	var d domain.RatingDistribution
	for _, r := range t.reviews {
		switch {
		case r.Rating >= 9:
			d.Excellent++
		case r.Rating >= 7:
			d.Great++
		case r.Rating >= 5:
			d.Good++
		case r.Rating >= 3:
			d.Fair++
		default:
			d.Poor++
		}
	}
	total := len(t.reviews)
	if total == 0 {
		total = 1 // all-zero percentages instead of dividing by zero
	}
	d.ExcellentPct = float64(d.Excellent) / float64(total) * 100
	d.GreatPct = float64(d.Great) / float64(total) * 100
	d.GoodPct = float64(d.Good) / float64(total) * 100
	d.FairPct = float64(d.Fair) / float64(total) * 100
	d.PoorPct = float64(d.Poor) / float64(total) * 100
	return d, nil
}

// Add validates a submission and prepends the new review. Unlike the booking
// wizard, each violation is reported as its own field.
func (s *ReviewThreads) Add(ctx context.Context, hotelID string, sub domain.ReviewSubmission) (domain.Review, error) {
	var fields []string
	if strings.TrimSpace(sub.Author) == "" {
		fields = append(fields, "author")
	}
	if sub.Rating < 1 || sub.Rating > 10 {
		fields = append(fields, "rating")
	}
	if strings.TrimSpace(sub.Comment) == "" {
		fields = append(fields, "comment")
	}
	if len(fields) > 0 {
		return domain.Review{}, &domain.ValidationError{Msg: "invalid review submission", Fields: fields}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	t, err := s.get(ctx, hotelID)
	if err != nil {
		return domain.Review{}, err
	}

	r := domain.Review{
		ID:       uuid.NewString(),
		Author:   sub.Author,
		Rating:   float64(sub.Rating),
		Date:     freshReviewDate,
		Comment:  sub.Comment,
		StayType: &defaultStayType,
	}
	t.reviews = append([]domain.Review{r}, t.reviews...)
	return r, nil
}

// MarkHelpful increments a review's helpful count at most once per viewer.
// Repeats return the current count unchanged.
func (s *ReviewThreads) MarkHelpful(ctx context.Context, hotelID, reviewID, viewerID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, err := s.get(ctx, hotelID)
	if err != nil {
		return 0, err
	}

	for i := range t.reviews {
		if t.reviews[i].ID != reviewID {
			continue
		}
		voters := t.voted[reviewID]
		if voters == nil {
			voters = make(map[string]struct{})
			t.voted[reviewID] = voters
		}
		if _, seen := voters[viewerID]; !seen {
			voters[viewerID] = struct{}{}
			t.reviews[i].HelpfulCount++
		}
		return t.reviews[i].HelpfulCount, nil
	}
	return 0, domain.ErrNotFound
}
