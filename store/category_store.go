package store

import (
	"context"

	"safarihub/models"
	"safarihub/utils"

	"github.com/google/uuid"
)

func (s *Store) AllCategories(ctx context.Context) ([]models.Category, ErrorKind) {
	categories := []models.Category{}
	err := s.db.WithContext(ctx).Order("title ASC").Find(&categories).Error
	if err != nil {
		return []models.Category{}, fail("all categories", err)
	}
	return categories, KindNone
}

func (s *Store) CategoryBySlug(ctx context.Context, slug string) (*models.Category, ErrorKind) {
	var category models.Category
	if err := s.db.WithContext(ctx).Where("slug = ?", slug).First(&category).Error; err != nil {
		return nil, fail("category by slug", err)
	}
	return &category, KindNone
}

func (s *Store) CreateCategory(ctx context.Context, p Principal, category *models.Category) ErrorKind {
	if !p.IsAdmin() {
		return KindForbidden
	}

	category.Slug = utils.Slugify(category.Title)
	if err := s.db.WithContext(ctx).Create(category).Error; err != nil {
		return fail("create category", err)
	}

	s.cache.InvalidatePrefix("tours:")
	return KindNone
}

type CategoryPatch struct {
	Title       *string
	Description *string
	Image       *string
}

func (s *Store) UpdateCategory(ctx context.Context, p Principal, id uuid.UUID, patch CategoryPatch) (*models.Category, ErrorKind) {
	if !p.IsAdmin() {
		return nil, KindForbidden
	}

	var category models.Category
	if err := s.db.WithContext(ctx).First(&category, "id = ?", id).Error; err != nil {
		return nil, fail("update category: load", err)
	}

	updates := map[string]interface{}{}
	if patch.Title != nil {
		updates["title"] = *patch.Title
		updates["slug"] = utils.Slugify(*patch.Title)
	}
	if patch.Description != nil {
		updates["description"] = *patch.Description
	}
	if patch.Image != nil {
		updates["image"] = *patch.Image
	}

	if len(updates) > 0 {
		if err := s.db.WithContext(ctx).Model(&category).Updates(updates).Error; err != nil {
			return nil, fail("update category", err)
		}
		if err := s.db.WithContext(ctx).First(&category, "id = ?", id).Error; err != nil {
			return nil, fail("update category: reload", err)
		}
	}

	s.cache.InvalidatePrefix("tours:")
	return &category, KindNone
}

func (s *Store) DeleteCategory(ctx context.Context, p Principal, id uuid.UUID) ErrorKind {
	if !p.IsAdmin() {
		return KindForbidden
	}

	res := s.db.WithContext(ctx).Delete(&models.Category{}, "id = ?", id)
	if res.Error != nil {
		return fail("delete category", res.Error)
	}
	if res.RowsAffected == 0 {
		return KindNotFound
	}

	s.cache.InvalidatePrefix("tours:")
	return KindNone
}
