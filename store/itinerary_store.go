package store

import (
	"context"

	"safarihub/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ItineraryForTour returns itinerary rows ordered by day ascending.
func (s *Store) ItineraryForTour(ctx context.Context, tourID uuid.UUID) ([]models.TourItinerary, ErrorKind) {
	days := []models.TourItinerary{}
	err := s.db.WithContext(ctx).
		Where("tour_id = ?", tourID).
		Order("day ASC").
		Find(&days).Error
	if err != nil {
		return []models.TourItinerary{}, fail("itinerary for tour", err)
	}
	return days, KindNone
}

func (s *Store) AddItineraryDay(ctx context.Context, p Principal, day *models.TourItinerary) ErrorKind {
	if !p.IsAdmin() {
		return KindForbidden
	}

	if err := s.db.WithContext(ctx).Create(day).Error; err != nil {
		return fail("add itinerary day", err)
	}

	s.cache.InvalidatePrefix("tours:")
	return KindNone
}

type ItineraryPatch struct {
	Day         *int
	Title       *string
	Description *string
	Activities  *[]string
}

func (s *Store) UpdateItineraryDay(ctx context.Context, p Principal, id uuid.UUID, patch ItineraryPatch) ErrorKind {
	if !p.IsAdmin() {
		return KindForbidden
	}

	updates := map[string]interface{}{}
	if patch.Day != nil {
		updates["day"] = *patch.Day
	}
	if patch.Title != nil {
		updates["title"] = *patch.Title
	}
	if patch.Description != nil {
		updates["description"] = *patch.Description
	}
	if patch.Activities != nil {
		updates["activities"] = JSONList(*patch.Activities)
	}
	if len(updates) == 0 {
		return KindNone
	}

	res := s.db.WithContext(ctx).Model(&models.TourItinerary{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return fail("update itinerary day", res.Error)
	}
	if res.RowsAffected == 0 {
		return KindNotFound
	}

	s.cache.InvalidatePrefix("tours:")
	return KindNone
}

func (s *Store) DeleteItineraryDay(ctx context.Context, p Principal, id uuid.UUID) ErrorKind {
	if !p.IsAdmin() {
		return KindForbidden
	}

	res := s.db.WithContext(ctx).Delete(&models.TourItinerary{}, "id = ?", id)
	if res.Error != nil {
		return fail("delete itinerary day", res.Error)
	}
	if res.RowsAffected == 0 {
		return KindNotFound
	}

	s.cache.InvalidatePrefix("tours:")
	return KindNone
}

// DayAssignment pairs an itinerary row with its new day number.
type DayAssignment struct {
	ID  uuid.UUID `json:"id" binding:"required"`
	Day int       `json:"day" binding:"required"`
}

// ReorderItinerary persists a batch of day assignments in one transaction.
// The (tour_id, day) unique index is not deferrable, so rows first move to
// negated day numbers; permutations that reuse existing days (swaps,
// rotations) then apply cleanly in a second pass. Any failing row rolls back
// the whole batch, so the itinerary can never be left half-renumbered.
func (s *Store) ReorderItinerary(ctx context.Context, p Principal, tourID uuid.UUID, assignments []DayAssignment) ErrorKind {
	if !p.IsAdmin() {
		return KindForbidden
	}
	if len(assignments) == 0 {
		return KindNone
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, a := range assignments {
			res := tx.Model(&models.TourItinerary{}).
				Where("id = ? AND tour_id = ?", a.ID, tourID).
				Update("day", -a.Day)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return gorm.ErrRecordNotFound
			}
		}
		for _, a := range assignments {
			err := tx.Model(&models.TourItinerary{}).
				Where("id = ? AND tour_id = ?", a.ID, tourID).
				Update("day", a.Day).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fail("reorder itinerary", err)
	}

	s.cache.InvalidatePrefix("tours:")
	return KindNone
}
