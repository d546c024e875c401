package store

import (
	"context"

	"safarihub/models"

	"github.com/google/uuid"
)

// ReviewPage is one page of a tour's reviews plus the aggregates the detail
// view renders.
type ReviewPage struct {
	Reviews       []models.Review `json:"reviews"`
	TotalCount    int64           `json:"totalCount"`
	AverageRating float64         `json:"averageRating"`
}

// TourReviews returns a page of reviews with total count and average rating.
// The average comes from a storage-side aggregate and defaults to 0 when the
// tour has no reviews.
func (s *Store) TourReviews(ctx context.Context, tourID uuid.UUID, page, limit int) (ReviewPage, ErrorKind) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	empty := ReviewPage{Reviews: []models.Review{}}

	var total int64
	if err := s.db.WithContext(ctx).Model(&models.Review{}).Where("tour_id = ?", tourID).Count(&total).Error; err != nil {
		return empty, fail("tour reviews: count", err)
	}

	var avg float64
	err := s.db.WithContext(ctx).Model(&models.Review{}).
		Where("tour_id = ?", tourID).
		Select("COALESCE(AVG(rating), 0)").
		Scan(&avg).Error
	if err != nil {
		return empty, fail("tour reviews: average", err)
	}

	reviews := []models.Review{}
	err = s.db.WithContext(ctx).
		Where("tour_id = ?", tourID).
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&reviews).Error
	if err != nil {
		return empty, fail("tour reviews: page", err)
	}

	return ReviewPage{Reviews: reviews, TotalCount: total, AverageRating: avg}, KindNone
}

// CreateReview writes a review for the authenticated user. The rating range
// is validated at the HTTP boundary.
func (s *Store) CreateReview(ctx context.Context, p Principal, review *models.Review) ErrorKind {
	if p.UserID == uuid.Nil {
		return KindForbidden
	}

	review.UserID = p.UserID
	if err := s.db.WithContext(ctx).Create(review).Error; err != nil {
		return fail("create review", err)
	}

	return KindNone
}

// DeleteReview removes a review. Admins can delete any review, users only
// their own.
func (s *Store) DeleteReview(ctx context.Context, p Principal, id uuid.UUID) ErrorKind {
	var review models.Review
	if err := s.db.WithContext(ctx).First(&review, "id = ?", id).Error; err != nil {
		return fail("delete review: load", err)
	}

	if !p.IsAdmin() && review.UserID != p.UserID {
		return KindForbidden
	}

	if err := s.db.WithContext(ctx).Delete(&review).Error; err != nil {
		return fail("delete review", err)
	}

	return KindNone
}
