package store

import (
	"context"
	"fmt"
	"strings"

	"safarihub/models"
	"safarihub/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	defaultFeaturedLimit = 6
	defaultSimilarLimit  = 6
	searchLimit          = 10
)

// FeaturedTours returns active featured tours, newest first.
func (s *Store) FeaturedTours(ctx context.Context, limit int) ([]models.Tour, ErrorKind) {
	if limit <= 0 {
		limit = defaultFeaturedLimit
	}

	key := fmt.Sprintf("tours:featured:%d", limit)
	if cached, ok := s.cache.Get(key); ok {
		return cached.([]models.Tour), KindNone
	}

	tours := []models.Tour{}
	err := s.db.WithContext(ctx).
		Where("active = ? AND featured = ?", true, true).
		Order("created_at DESC").
		Limit(limit).
		Preload("Category").
		Find(&tours).Error
	if err != nil {
		return []models.Tour{}, fail("featured tours", err)
	}

	s.cache.Set(key, tours, cacheStale)
	return tours, KindNone
}

// MoreTours returns active non-featured tours, newest first, offset/limit.
func (s *Store) MoreTours(ctx context.Context, skip, take int) ([]models.Tour, ErrorKind) {
	if take <= 0 {
		take = defaultFeaturedLimit
	}
	if skip < 0 {
		skip = 0
	}

	tours := []models.Tour{}
	err := s.db.WithContext(ctx).
		Where("active = ? AND featured = ?", true, false).
		Order("created_at DESC").
		Offset(skip).
		Limit(take).
		Preload("Category").
		Find(&tours).Error
	if err != nil {
		return []models.Tour{}, fail("more tours", err)
	}

	return tours, KindNone
}

// ToursByCategorySlug returns active tours in a category, featured first.
func (s *Store) ToursByCategorySlug(ctx context.Context, slug string) ([]models.Tour, ErrorKind) {
	key := "tours:category:" + slug
	if cached, ok := s.cache.Get(key); ok {
		return cached.([]models.Tour), KindNone
	}

	tours := []models.Tour{}
	err := s.db.WithContext(ctx).
		Joins("JOIN categories ON categories.id = tours.category_id").
		Where("categories.slug = ? AND tours.active = ?", slug, true).
		Order("tours.featured DESC, tours.created_at DESC").
		Preload("Category").
		Find(&tours).Error
	if err != nil {
		return []models.Tour{}, fail("tours by category", err)
	}

	s.cache.Set(key, tours, cacheStale)
	return tours, KindNone
}

// SimilarTours returns other active tours from the same category.
func (s *Store) SimilarTours(ctx context.Context, categoryID, excludeTourID uuid.UUID, limit int) ([]models.Tour, ErrorKind) {
	if limit <= 0 {
		limit = defaultSimilarLimit
	}

	tours := []models.Tour{}
	err := s.db.WithContext(ctx).
		Where("category_id = ? AND active = ? AND id <> ?", categoryID, true, excludeTourID).
		Order("created_at DESC").
		Limit(limit).
		Preload("Category").
		Find(&tours).Error
	if err != nil {
		return []models.Tour{}, fail("similar tours", err)
	}

	return tours, KindNone
}

// SearchTours matches the query case-insensitively against title, short
// description, description, location and category title. Queries shorter than
// two characters return empty without touching storage.
func (s *Store) SearchTours(ctx context.Context, q string) ([]models.Tour, ErrorKind) {
	q = strings.TrimSpace(q)
	if len([]rune(q)) < 2 {
		return []models.Tour{}, KindNone
	}

	needle := "%" + strings.ToLower(q) + "%"
	tours := []models.Tour{}
	err := s.db.WithContext(ctx).
		Joins("JOIN categories ON categories.id = tours.category_id").
		Where("tours.active = ?", true).
		Where(
			"LOWER(tours.title) LIKE ? OR LOWER(tours.short_description) LIKE ? OR LOWER(tours.description) LIKE ? OR LOWER(tours.location) LIKE ? OR LOWER(categories.title) LIKE ?",
			needle, needle, needle, needle, needle,
		).
		Order("tours.created_at DESC").
		Limit(searchLimit).
		Find(&tours).Error
	if err != nil {
		return []models.Tour{}, fail("search tours", err)
	}

	return tours, KindNone
}

// TourBySlug is the public detail read. Inactive tours are not found.
func (s *Store) TourBySlug(ctx context.Context, slug string) (*models.Tour, ErrorKind) {
	var tour models.Tour
	err := s.db.WithContext(ctx).
		Where("slug = ? AND active = ?", slug, true).
		Preload("Category").
		Preload("Destination").
		Preload("Itinerary", func(db *gorm.DB) *gorm.DB {
			return db.Order("day ASC")
		}).
		Preload("Attractions", func(db *gorm.DB) *gorm.DB {
			return db.Order("visit_order ASC, created_at ASC")
		}).
		Preload("Attractions.Attraction").
		First(&tour).Error
	if err != nil {
		return nil, fail("tour by slug", err)
	}

	return &tour, KindNone
}

func (s *Store) TourByID(ctx context.Context, id uuid.UUID) (*models.Tour, ErrorKind) {
	var tour models.Tour
	err := s.db.WithContext(ctx).Preload("Category").First(&tour, "id = ?", id).Error
	if err != nil {
		return nil, fail("tour by id", err)
	}
	return &tour, KindNone
}

// AllTours is the admin list: no active filter.
func (s *Store) AllTours(ctx context.Context, p Principal) ([]models.Tour, ErrorKind) {
	if !p.IsAdmin() {
		return []models.Tour{}, KindForbidden
	}

	tours := []models.Tour{}
	err := s.db.WithContext(ctx).
		Order("created_at DESC").
		Preload("Category").
		Find(&tours).Error
	if err != nil {
		return []models.Tour{}, fail("all tours", err)
	}

	return tours, KindNone
}

func (s *Store) CreateTour(ctx context.Context, p Principal, tour *models.Tour) ErrorKind {
	if !p.IsAdmin() {
		return KindForbidden
	}

	tour.Slug = utils.Slugify(tour.Title)
	if err := s.db.WithContext(ctx).Create(tour).Error; err != nil {
		return fail("create tour", err)
	}

	s.cache.InvalidatePrefix("tours:")
	return KindNone
}

// TourPatch carries a partial update; only non-nil fields are applied. A new
// title also regenerates the slug.
type TourPatch struct {
	Title            *string
	ShortDescription *string
	Description      *string
	Price            *float64
	DiscountPrice    *float64
	Duration         *int
	MaxGroupSize     *int
	Difficulty       *models.TourDifficulty
	Location         *string
	Coordinates      *string
	Includes         *[]string
	Excludes         *[]string
	Images           *[]string
	Featured         *bool
	Active           *bool
	CategoryID       *uuid.UUID
	DestinationID    *uuid.UUID
}

func (p TourPatch) changes() map[string]interface{} {
	updates := map[string]interface{}{}
	if p.Title != nil {
		updates["title"] = *p.Title
		updates["slug"] = utils.Slugify(*p.Title)
	}
	if p.ShortDescription != nil {
		updates["short_description"] = *p.ShortDescription
	}
	if p.Description != nil {
		updates["description"] = *p.Description
	}
	if p.Price != nil {
		updates["price"] = *p.Price
	}
	if p.DiscountPrice != nil {
		updates["discount_price"] = *p.DiscountPrice
	}
	if p.Duration != nil {
		updates["duration"] = *p.Duration
	}
	if p.MaxGroupSize != nil {
		updates["max_group_size"] = *p.MaxGroupSize
	}
	if p.Difficulty != nil {
		updates["difficulty"] = *p.Difficulty
	}
	if p.Location != nil {
		updates["location"] = *p.Location
	}
	if p.Coordinates != nil {
		updates["coordinates"] = *p.Coordinates
	}
	if p.Includes != nil {
		updates["includes"] = JSONList(*p.Includes)
	}
	if p.Excludes != nil {
		updates["excludes"] = JSONList(*p.Excludes)
	}
	if p.Images != nil {
		updates["images"] = JSONList(*p.Images)
	}
	if p.Featured != nil {
		updates["featured"] = *p.Featured
	}
	if p.Active != nil {
		updates["active"] = *p.Active
	}
	if p.CategoryID != nil {
		updates["category_id"] = *p.CategoryID
	}
	if p.DestinationID != nil {
		updates["destination_id"] = *p.DestinationID
	}
	return updates
}

func (s *Store) UpdateTour(ctx context.Context, p Principal, id uuid.UUID, patch TourPatch) (*models.Tour, ErrorKind) {
	if !p.IsAdmin() {
		return nil, KindForbidden
	}

	var tour models.Tour
	if err := s.db.WithContext(ctx).First(&tour, "id = ?", id).Error; err != nil {
		return nil, fail("update tour: load", err)
	}

	updates := patch.changes()
	if len(updates) > 0 {
		if err := s.db.WithContext(ctx).Model(&tour).Updates(updates).Error; err != nil {
			return nil, fail("update tour", err)
		}
		if err := s.db.WithContext(ctx).First(&tour, "id = ?", id).Error; err != nil {
			return nil, fail("update tour: reload", err)
		}
	}

	s.cache.InvalidatePrefix("tours:")
	return &tour, KindNone
}

func (s *Store) DeleteTour(ctx context.Context, p Principal, id uuid.UUID) ErrorKind {
	if !p.IsAdmin() {
		return KindForbidden
	}

	res := s.db.WithContext(ctx).Delete(&models.Tour{}, "id = ?", id)
	if res.Error != nil {
		return fail("delete tour", res.Error)
	}
	if res.RowsAffected == 0 {
		return KindNotFound
	}

	s.cache.InvalidatePrefix("tours:")
	return KindNone
}
