package app_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"siamstay/internal/app"
	"siamstay/internal/domain"
	"siamstay/internal/storage/memory"
)

func seedFn(reviews []domain.Review) func() []domain.Review {
	return func() []domain.Review {
		out := make([]domain.Review, len(reviews))
		copy(out, reviews)
		return out
	}
}

func TestReviews_SortedNewestKeepsInsertionOrder(t *testing.T) {
	s := app.NewReviewThreads(memory.NewStore(), seedFn([]domain.Review{
		{ID: "a", Author: "A", Rating: 8},
		{ID: "b", Author: "B", Rating: 9},
	}))
	ctx := context.Background()

	_, err := s.Add(ctx, "1", domain.ReviewSubmission{Author: "C", Rating: 7, Comment: "ดีมาก"})
	require.NoError(t, err)

	got, err := s.Sorted(ctx, "1", domain.ReviewSortNewest)
	require.NoError(t, err)
	require.Len(t, got, 3)
	require.Equal(t, "C", got[0].Author, "new review is prepended")
	require.Equal(t, "a", got[1].ID)
	require.Equal(t, "b", got[2].ID)
}

func TestReviews_SortedByRatingStable(t *testing.T) {
	s := app.NewReviewThreads(memory.NewStore(), seedFn([]domain.Review{
		{ID: "a", Rating: 9},
		{ID: "b", Rating: 7},
		{ID: "c", Rating: 9}, // tie with a; must stay after it
		{ID: "d", Rating: 5},
	}))
	ctx := context.Background()

	high, err := s.Sorted(ctx, "1", domain.ReviewSortHighest)
	require.NoError(t, err)
	require.Equal(t, []string{"a", "c", "b", "d"}, reviewIDs(high))

	low, err := s.Sorted(ctx, "1", domain.ReviewSortLowest)
	require.NoError(t, err)
	require.Equal(t, []string{"d", "b", "a", "c"}, reviewIDs(low))
}

func TestReviews_DistributionBuckets(t *testing.T) {
	s := app.NewReviewThreads(memory.NewStore(), seedFn([]domain.Review{
		{ID: "a", Rating: 10},  // excellent [9,10]
		{ID: "b", Rating: 9},   // excellent boundary
		{ID: "c", Rating: 8.9}, // great [7,9)
		{ID: "d", Rating: 5},   // good [5,7)
		{ID: "e", Rating: 3},   // fair [3,5)
		{ID: "f", Rating: 1},   // poor [0,3)
	}))

	d, err := s.Distribution(context.Background(), "1")
	require.NoError(t, err)
	require.Equal(t, 2, d.Excellent)
	require.Equal(t, 1, d.Great)
	require.Equal(t, 1, d.Good)
	require.Equal(t, 1, d.Fair)
	require.Equal(t, 1, d.Poor)
	require.InDelta(t, 33.33, d.ExcellentPct, 0.01)
}

func TestReviews_EmptyDistributionIsAllZeros(t *testing.T) {
	s := app.NewReviewThreads(memory.NewStore(), nil)

	d, err := s.Distribution(context.Background(), "1")
	require.NoError(t, err)
	require.Equal(t, domain.RatingDistribution{}, d)
}

func TestReviews_AddValidatesPerField(t *testing.T) {
	s := app.NewReviewThreads(memory.NewStore(), nil)
	ctx := context.Background()

	_, err := s.Add(ctx, "1", domain.ReviewSubmission{})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, []string{"author", "rating", "comment"}, verr.Fields)

	_, err = s.Add(ctx, "1", domain.ReviewSubmission{Author: "สมชาย", Rating: 11, Comment: "ดี"})
	require.ErrorAs(t, err, &verr)
	require.Equal(t, []string{"rating"}, verr.Fields)

	r, err := s.Add(ctx, "1", domain.ReviewSubmission{Author: "สมชาย", Rating: 10, Comment: "ดี"})
	require.NoError(t, err)
	require.NotEmpty(t, r.ID)
	require.Equal(t, 10.0, r.Rating)
	require.Equal(t, 0, r.HelpfulCount)
}

func TestReviews_UnknownHotel(t *testing.T) {
	s := app.NewReviewThreads(memory.NewStore(), nil)
	_, err := s.Sorted(context.Background(), "999", domain.ReviewSortNewest)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestReviews_HelpfulOncePerViewer(t *testing.T) {
	s := app.NewReviewThreads(memory.NewStore(), seedFn([]domain.Review{
		{ID: "a", Rating: 9, HelpfulCount: 2},
	}))
	ctx := context.Background()

	n, err := s.MarkHelpful(ctx, "1", "a", "viewer-1")
	require.NoError(t, err)
	require.Equal(t, 3, n)

	// Same viewer again: count unchanged.
	n, err = s.MarkHelpful(ctx, "1", "a", "viewer-1")
	require.NoError(t, err)
	require.Equal(t, 3, n)

	// A different viewer still counts.
	n, err = s.MarkHelpful(ctx, "1", "a", "viewer-2")
	require.NoError(t, err)
	require.Equal(t, 4, n)

	_, err = s.MarkHelpful(ctx, "1", "missing", "viewer-1")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func reviewIDs(rs []domain.Review) []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = r.ID
	}
	return out
}
