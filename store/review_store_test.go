package store_test

import (
	"context"
	"testing"
	"time"

	"safarihub/models"
	"safarihub/store"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTourReviewsAverage(t *testing.T) {
	s, db := newTestStore(t)
	ctx := context.Background()
	category := makeCategory(t, db, "Safari")
	tour := makeTour(t, db, category.ID, "Rated Tour", false, true, time.Now())

	for _, rating := range []int{3, 4, 5} {
		review := models.Review{TourID: tour.ID, UserID: uuid.New(), Rating: rating}
		require.NoError(t, db.Create(&review).Error)
	}

	page, kind := s.TourReviews(ctx, tour.ID, 1, 10)
	require.Equal(t, store.KindNone, kind)
	assert.Equal(t, int64(3), page.TotalCount)
	assert.Equal(t, 4.0, page.AverageRating)
}

func TestTourReviewsAverageZeroWhenEmpty(t *testing.T) {
	s, db := newTestStore(t)
	ctx := context.Background()
	category := makeCategory(t, db, "Safari")
	tour := makeTour(t, db, category.ID, "Unrated Tour", false, true, time.Now())

	page, kind := s.TourReviews(ctx, tour.ID, 1, 10)
	require.Equal(t, store.KindNone, kind)
	assert.Equal(t, int64(0), page.TotalCount)
	assert.Equal(t, 0.0, page.AverageRating)
	assert.Empty(t, page.Reviews)
}

func TestTourReviewsPaginationBoundary(t *testing.T) {
	s, db := newTestStore(t)
	ctx := context.Background()
	category := makeCategory(t, db, "Safari")
	tour := makeTour(t, db, category.ID, "Popular Tour", false, true, time.Now())

	for i := 0; i < 15; i++ {
		review := models.Review{TourID: tour.ID, UserID: uuid.New(), Rating: 4}
		require.NoError(t, db.Create(&review).Error)
	}

	page, kind := s.TourReviews(ctx, tour.ID, 2, 10)
	require.Equal(t, store.KindNone, kind)
	assert.Len(t, page.Reviews, 5)
	assert.Equal(t, int64(15), page.TotalCount)
}

func TestTourReviewsScopedToTour(t *testing.T) {
	s, db := newTestStore(t)
	ctx := context.Background()
	category := makeCategory(t, db, "Safari")
	rated := makeTour(t, db, category.ID, "Rated Tour", false, true, time.Now())
	other := makeTour(t, db, category.ID, "Other Tour", false, true, time.Now())

	require.NoError(t, db.Create(&models.Review{TourID: rated.ID, UserID: uuid.New(), Rating: 5}).Error)
	require.NoError(t, db.Create(&models.Review{TourID: other.ID, UserID: uuid.New(), Rating: 1}).Error)

	page, kind := s.TourReviews(ctx, rated.ID, 1, 10)
	require.Equal(t, store.KindNone, kind)
	assert.Equal(t, int64(1), page.TotalCount)
	assert.Equal(t, 5.0, page.AverageRating)
}

func TestCreateReviewUsesPrincipalUser(t *testing.T) {
	s, db := newTestStore(t)
	ctx := context.Background()
	category := makeCategory(t, db, "Safari")
	tour := makeTour(t, db, category.ID, "Rated Tour", false, true, time.Now())

	userID := uuid.New()
	review := models.Review{TourID: tour.ID, UserID: uuid.New(), Rating: 5}
	kind := s.CreateReview(ctx, store.Principal{UserID: userID, Role: models.RoleUser}, &review)
	require.Equal(t, store.KindNone, kind)
	assert.Equal(t, userID, review.UserID)

	// Anonymous callers cannot review.
	anonymous := models.Review{TourID: tour.ID, Rating: 3}
	assert.Equal(t, store.KindForbidden, s.CreateReview(ctx, store.Principal{}, &anonymous))
}

func TestDeleteReviewOwnerOrAdmin(t *testing.T) {
	s, db := newTestStore(t)
	ctx := context.Background()
	category := makeCategory(t, db, "Safari")
	tour := makeTour(t, db, category.ID, "Rated Tour", false, true, time.Now())

	owner := uuid.New()
	review := models.Review{TourID: tour.ID, UserID: owner, Rating: 2}
	require.NoError(t, db.Create(&review).Error)

	stranger := store.Principal{UserID: uuid.New(), Role: models.RoleUser}
	assert.Equal(t, store.KindForbidden, s.DeleteReview(ctx, stranger, review.ID))

	assert.Equal(t, store.KindNone, s.DeleteReview(ctx, store.Principal{UserID: owner, Role: models.RoleUser}, review.ID))
	assert.Equal(t, store.KindNotFound, s.DeleteReview(ctx, adminPrincipal, review.ID))
}
