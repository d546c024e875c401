package store

import (
	"context"

	"safarihub/models"
	"safarihub/utils"

	"github.com/google/uuid"
)

// ActiveDestinations is the public list.
func (s *Store) ActiveDestinations(ctx context.Context) ([]models.Destination, ErrorKind) {
	key := "destinations:active"
	if cached, ok := s.cache.Get(key); ok {
		return cached.([]models.Destination), KindNone
	}

	destinations := []models.Destination{}
	err := s.db.WithContext(ctx).
		Where("active = ?", true).
		Order("created_at DESC").
		Find(&destinations).Error
	if err != nil {
		return []models.Destination{}, fail("active destinations", err)
	}

	s.cache.Set(key, destinations, cacheStale)
	return destinations, KindNone
}

func (s *Store) DestinationBySlug(ctx context.Context, slug string) (*models.Destination, ErrorKind) {
	var destination models.Destination
	err := s.db.WithContext(ctx).Where("slug = ? AND active = ?", slug, true).First(&destination).Error
	if err != nil {
		return nil, fail("destination by slug", err)
	}
	return &destination, KindNone
}

func (s *Store) AllDestinations(ctx context.Context, p Principal) ([]models.Destination, ErrorKind) {
	if !p.IsAdmin() {
		return []models.Destination{}, KindForbidden
	}

	destinations := []models.Destination{}
	err := s.db.WithContext(ctx).Order("created_at DESC").Find(&destinations).Error
	if err != nil {
		return []models.Destination{}, fail("all destinations", err)
	}
	return destinations, KindNone
}

// CreateDestination derives the slug from the name. Two names that slugify to
// the same value surface as a Conflict from the unique index.
func (s *Store) CreateDestination(ctx context.Context, p Principal, destination *models.Destination) ErrorKind {
	if !p.IsAdmin() {
		return KindForbidden
	}

	destination.Slug = utils.Slugify(destination.Name)
	if err := s.db.WithContext(ctx).Create(destination).Error; err != nil {
		return fail("create destination", err)
	}

	s.cache.InvalidatePrefix("destinations:")
	return KindNone
}

type DestinationPatch struct {
	Name        *string
	Description *string
	Country     *string
	Climate     *models.Climate
	Active      *bool
	Verified    *bool
	Images      *[]string
}

func (s *Store) UpdateDestination(ctx context.Context, p Principal, id uuid.UUID, patch DestinationPatch) (*models.Destination, ErrorKind) {
	if !p.IsAdmin() {
		return nil, KindForbidden
	}

	var destination models.Destination
	if err := s.db.WithContext(ctx).First(&destination, "id = ?", id).Error; err != nil {
		return nil, fail("update destination: load", err)
	}

	updates := map[string]interface{}{}
	if patch.Name != nil {
		updates["name"] = *patch.Name
		updates["slug"] = utils.Slugify(*patch.Name)
	}
	if patch.Description != nil {
		updates["description"] = *patch.Description
	}
	if patch.Country != nil {
		updates["country"] = *patch.Country
	}
	if patch.Climate != nil {
		updates["climate"] = *patch.Climate
	}
	if patch.Active != nil {
		updates["active"] = *patch.Active
	}
	if patch.Verified != nil {
		updates["verified"] = *patch.Verified
	}
	if patch.Images != nil {
		updates["images"] = JSONList(*patch.Images)
	}

	if len(updates) > 0 {
		if err := s.db.WithContext(ctx).Model(&destination).Updates(updates).Error; err != nil {
			return nil, fail("update destination", err)
		}
		if err := s.db.WithContext(ctx).First(&destination, "id = ?", id).Error; err != nil {
			return nil, fail("update destination: reload", err)
		}
	}

	s.cache.InvalidatePrefix("destinations:")
	return &destination, KindNone
}

func (s *Store) DeleteDestination(ctx context.Context, p Principal, id uuid.UUID) ErrorKind {
	if !p.IsAdmin() {
		return KindForbidden
	}

	res := s.db.WithContext(ctx).Delete(&models.Destination{}, "id = ?", id)
	if res.Error != nil {
		return fail("delete destination", res.Error)
	}
	if res.RowsAffected == 0 {
		return KindNotFound
	}

	s.cache.InvalidatePrefix("destinations:")
	return KindNone
}
