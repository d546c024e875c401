package store

import (
	"context"

	"safarihub/models"

	"github.com/google/uuid"
)

func (s *Store) AllAttractions(ctx context.Context) ([]models.Attraction, ErrorKind) {
	attractions := []models.Attraction{}
	err := s.db.WithContext(ctx).Order("created_at DESC").Find(&attractions).Error
	if err != nil {
		return []models.Attraction{}, fail("all attractions", err)
	}
	return attractions, KindNone
}

func (s *Store) AttractionByID(ctx context.Context, id uuid.UUID) (*models.Attraction, ErrorKind) {
	var attraction models.Attraction
	if err := s.db.WithContext(ctx).First(&attraction, "id = ?", id).Error; err != nil {
		return nil, fail("attraction by id", err)
	}
	return &attraction, KindNone
}

func (s *Store) CreateAttraction(ctx context.Context, p Principal, attraction *models.Attraction) ErrorKind {
	if !p.IsAdmin() {
		return KindForbidden
	}
	if err := s.db.WithContext(ctx).Create(attraction).Error; err != nil {
		return fail("create attraction", err)
	}
	return KindNone
}

type AttractionPatch struct {
	Name        *string
	Type        *models.AttractionType
	Location    *string
	Description *string
	Images      *[]string
}

func (s *Store) UpdateAttraction(ctx context.Context, p Principal, id uuid.UUID, patch AttractionPatch) (*models.Attraction, ErrorKind) {
	if !p.IsAdmin() {
		return nil, KindForbidden
	}

	var attraction models.Attraction
	if err := s.db.WithContext(ctx).First(&attraction, "id = ?", id).Error; err != nil {
		return nil, fail("update attraction: load", err)
	}

	updates := map[string]interface{}{}
	if patch.Name != nil {
		updates["name"] = *patch.Name
	}
	if patch.Type != nil {
		updates["type"] = *patch.Type
	}
	if patch.Location != nil {
		updates["location"] = *patch.Location
	}
	if patch.Description != nil {
		updates["description"] = *patch.Description
	}
	if patch.Images != nil {
		updates["images"] = JSONList(*patch.Images)
	}

	if len(updates) > 0 {
		if err := s.db.WithContext(ctx).Model(&attraction).Updates(updates).Error; err != nil {
			return nil, fail("update attraction", err)
		}
		if err := s.db.WithContext(ctx).First(&attraction, "id = ?", id).Error; err != nil {
			return nil, fail("update attraction: reload", err)
		}
	}

	return &attraction, KindNone
}

func (s *Store) DeleteAttraction(ctx context.Context, p Principal, id uuid.UUID) ErrorKind {
	if !p.IsAdmin() {
		return KindForbidden
	}

	res := s.db.WithContext(ctx).Delete(&models.Attraction{}, "id = ?", id)
	if res.Error != nil {
		return fail("delete attraction", res.Error)
	}
	if res.RowsAffected == 0 {
		return KindNotFound
	}
	return KindNone
}

// TourAttractions returns a tour's linked attractions in visiting sequence.
// created_at breaks ties between equal visit orders.
func (s *Store) TourAttractions(ctx context.Context, tourID uuid.UUID) ([]models.TourAttraction, ErrorKind) {
	links := []models.TourAttraction{}
	err := s.db.WithContext(ctx).
		Where("tour_id = ?", tourID).
		Order("visit_order ASC, created_at ASC").
		Preload("Attraction").
		Find(&links).Error
	if err != nil {
		return []models.TourAttraction{}, fail("tour attractions", err)
	}
	return links, KindNone
}

// LinkAttraction attaches an attraction to a tour with a caller-assigned
// visit order. Linking the same pair twice is a conflict.
func (s *Store) LinkAttraction(ctx context.Context, p Principal, link *models.TourAttraction) ErrorKind {
	if !p.IsAdmin() {
		return KindForbidden
	}

	if err := s.db.WithContext(ctx).Create(link).Error; err != nil {
		return fail("link attraction", err)
	}

	s.cache.InvalidatePrefix("tours:")
	return KindNone
}

func (s *Store) UpdateAttractionLink(ctx context.Context, p Principal, id uuid.UUID, visitOrder *int, duration *string) ErrorKind {
	if !p.IsAdmin() {
		return KindForbidden
	}

	updates := map[string]interface{}{}
	if visitOrder != nil {
		updates["visit_order"] = *visitOrder
	}
	if duration != nil {
		updates["duration"] = *duration
	}
	if len(updates) == 0 {
		return KindNone
	}

	res := s.db.WithContext(ctx).Model(&models.TourAttraction{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return fail("update attraction link", res.Error)
	}
	if res.RowsAffected == 0 {
		return KindNotFound
	}

	s.cache.InvalidatePrefix("tours:")
	return KindNone
}

func (s *Store) UnlinkAttraction(ctx context.Context, p Principal, id uuid.UUID) ErrorKind {
	if !p.IsAdmin() {
		return KindForbidden
	}

	res := s.db.WithContext(ctx).Delete(&models.TourAttraction{}, "id = ?", id)
	if res.Error != nil {
		return fail("unlink attraction", res.Error)
	}
	if res.RowsAffected == 0 {
		return KindNotFound
	}

	s.cache.InvalidatePrefix("tours:")
	return KindNone
}

// AvailableToursForAttraction returns active tours not yet linked to the
// attraction, for the admin picker.
func (s *Store) AvailableToursForAttraction(ctx context.Context, p Principal, attractionID uuid.UUID) ([]models.Tour, ErrorKind) {
	if !p.IsAdmin() {
		return []models.Tour{}, KindForbidden
	}

	linked := s.db.Model(&models.TourAttraction{}).
		Select("tour_id").
		Where("attraction_id = ?", attractionID)

	tours := []models.Tour{}
	err := s.db.WithContext(ctx).
		Where("active = ?", true).
		Where("id NOT IN (?)", linked).
		Order("created_at DESC").
		Find(&tours).Error
	if err != nil {
		return []models.Tour{}, fail("available tours for attraction", err)
	}

	return tours, KindNone
}
