package store_test

import (
	"context"
	"testing"

	"safarihub/models"
	"safarihub/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoriesAlphabetical(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	for _, title := range []string{"Wildlife", "Adventure", "Cultural"} {
		category := models.Category{Title: title}
		require.Equal(t, store.KindNone, s.CreateCategory(ctx, adminPrincipal, &category))
	}

	categories, kind := s.AllCategories(ctx)
	require.Equal(t, store.KindNone, kind)
	require.Len(t, categories, 3)
	assert.Equal(t, "Adventure", categories[0].Title)
	assert.Equal(t, "Cultural", categories[1].Title)
	assert.Equal(t, "Wildlife", categories[2].Title)
}

func TestCreateCategoryDuplicateTitleConflicts(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	first := models.Category{Title: "Wildlife"}
	require.Equal(t, store.KindNone, s.CreateCategory(ctx, adminPrincipal, &first))

	second := models.Category{Title: "WILDLIFE"}
	assert.Equal(t, store.KindConflict, s.CreateCategory(ctx, adminPrincipal, &second))
}

func TestUpdateCategoryTitleRegeneratesSlug(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	category := models.Category{Title: "Old Title"}
	require.Equal(t, store.KindNone, s.CreateCategory(ctx, adminPrincipal, &category))

	title := "Water Sports"
	updated, kind := s.UpdateCategory(ctx, adminPrincipal, category.ID, store.CategoryPatch{Title: &title})
	require.Equal(t, store.KindNone, kind)
	assert.Equal(t, "water-sports", updated.Slug)

	found, kind := s.CategoryBySlug(ctx, "water-sports")
	require.Equal(t, store.KindNone, kind)
	assert.Equal(t, category.ID, found.ID)
}
