package store

import (
	"context"

	"safarihub/models"
	"safarihub/utils"

	"github.com/google/uuid"
)

// PublishedBlogs is the public list, featured first then newest.
func (s *Store) PublishedBlogs(ctx context.Context) ([]models.Blog, ErrorKind) {
	key := "blogs:published"
	if cached, ok := s.cache.Get(key); ok {
		return cached.([]models.Blog), KindNone
	}

	blogs := []models.Blog{}
	err := s.db.WithContext(ctx).
		Where("published = ?", true).
		Order("featured DESC, created_at DESC").
		Preload("Author").
		Preload("Category").
		Find(&blogs).Error
	if err != nil {
		return []models.Blog{}, fail("published blogs", err)
	}

	s.cache.Set(key, blogs, cacheStale)
	return blogs, KindNone
}

func (s *Store) BlogBySlug(ctx context.Context, slug string) (*models.Blog, ErrorKind) {
	var blog models.Blog
	err := s.db.WithContext(ctx).
		Where("slug = ? AND published = ?", slug, true).
		Preload("Author").
		Preload("Category").
		First(&blog).Error
	if err != nil {
		return nil, fail("blog by slug", err)
	}
	return &blog, KindNone
}

func (s *Store) AllBlogs(ctx context.Context, p Principal) ([]models.Blog, ErrorKind) {
	if !p.IsAdmin() {
		return []models.Blog{}, KindForbidden
	}

	blogs := []models.Blog{}
	err := s.db.WithContext(ctx).
		Order("created_at DESC").
		Preload("Category").
		Find(&blogs).Error
	if err != nil {
		return []models.Blog{}, fail("all blogs", err)
	}
	return blogs, KindNone
}

func (s *Store) CreateBlog(ctx context.Context, p Principal, blog *models.Blog) ErrorKind {
	if !p.IsAdmin() {
		return KindForbidden
	}

	blog.AuthorID = p.UserID
	blog.Slug = utils.Slugify(blog.Title)
	if err := s.db.WithContext(ctx).Create(blog).Error; err != nil {
		return fail("create blog", err)
	}

	s.cache.InvalidatePrefix("blogs:")
	return KindNone
}

type BlogPatch struct {
	Title      *string
	Excerpt    *string
	Content    *string
	Image      *string
	CategoryID *uuid.UUID
	Published  *bool
	Featured   *bool
}

func (s *Store) UpdateBlog(ctx context.Context, p Principal, id uuid.UUID, patch BlogPatch) (*models.Blog, ErrorKind) {
	if !p.IsAdmin() {
		return nil, KindForbidden
	}

	var blog models.Blog
	if err := s.db.WithContext(ctx).First(&blog, "id = ?", id).Error; err != nil {
		return nil, fail("update blog: load", err)
	}

	updates := map[string]interface{}{}
	if patch.Title != nil {
		updates["title"] = *patch.Title
		updates["slug"] = utils.Slugify(*patch.Title)
	}
	if patch.Excerpt != nil {
		updates["excerpt"] = *patch.Excerpt
	}
	if patch.Content != nil {
		updates["content"] = *patch.Content
	}
	if patch.Image != nil {
		updates["image"] = *patch.Image
	}
	if patch.CategoryID != nil {
		updates["category_id"] = *patch.CategoryID
	}
	if patch.Published != nil {
		updates["published"] = *patch.Published
	}
	if patch.Featured != nil {
		updates["featured"] = *patch.Featured
	}

	if len(updates) > 0 {
		if err := s.db.WithContext(ctx).Model(&blog).Updates(updates).Error; err != nil {
			return nil, fail("update blog", err)
		}
		if err := s.db.WithContext(ctx).First(&blog, "id = ?", id).Error; err != nil {
			return nil, fail("update blog: reload", err)
		}
	}

	s.cache.InvalidatePrefix("blogs:")
	return &blog, KindNone
}

func (s *Store) DeleteBlog(ctx context.Context, p Principal, id uuid.UUID) ErrorKind {
	if !p.IsAdmin() {
		return KindForbidden
	}

	res := s.db.WithContext(ctx).Delete(&models.Blog{}, "id = ?", id)
	if res.Error != nil {
		return fail("delete blog", res.Error)
	}
	if res.RowsAffected == 0 {
		return KindNotFound
	}

	s.cache.InvalidatePrefix("blogs:")
	return KindNone
}

func (s *Store) AllBlogCategories(ctx context.Context) ([]models.BlogCategory, ErrorKind) {
	categories := []models.BlogCategory{}
	err := s.db.WithContext(ctx).Order("title ASC").Find(&categories).Error
	if err != nil {
		return []models.BlogCategory{}, fail("all blog categories", err)
	}
	return categories, KindNone
}

func (s *Store) CreateBlogCategory(ctx context.Context, p Principal, category *models.BlogCategory) ErrorKind {
	if !p.IsAdmin() {
		return KindForbidden
	}

	category.Slug = utils.Slugify(category.Title)
	if err := s.db.WithContext(ctx).Create(category).Error; err != nil {
		return fail("create blog category", err)
	}
	return KindNone
}

func (s *Store) DeleteBlogCategory(ctx context.Context, p Principal, id uuid.UUID) ErrorKind {
	if !p.IsAdmin() {
		return KindForbidden
	}

	res := s.db.WithContext(ctx).Delete(&models.BlogCategory{}, "id = ?", id)
	if res.Error != nil {
		return fail("delete blog category", res.Error)
	}
	if res.RowsAffected == 0 {
		return KindNotFound
	}
	return KindNone
}
