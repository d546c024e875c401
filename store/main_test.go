package store_test

import (
	"fmt"
	"testing"
	"time"

	"safarihub/cache"
	"safarihub/database"
	"safarihub/models"
	"safarihub/store"
	"safarihub/utils"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var adminPrincipal = store.Principal{UserID: uuid.New(), Role: models.RoleAdmin}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func newTestStore(t *testing.T) (*store.Store, *gorm.DB) {
	t.Helper()

	db := newTestDB(t)
	c := cache.NewMemory(time.Minute)
	t.Cleanup(c.Close)
	return store.New(db, c), db
}

func newNoopCache(t *testing.T) cache.Store {
	t.Helper()

	c := cache.NewMemory(time.Minute)
	t.Cleanup(c.Close)
	return c
}

func makeCategory(t *testing.T, db *gorm.DB, title string) models.Category {
	t.Helper()

	category := models.Category{Title: title, Slug: utils.Slugify(title)}
	require.NoError(t, db.Create(&category).Error)
	return category
}

func makeTour(t *testing.T, db *gorm.DB, categoryID uuid.UUID, title string, featured, active bool, createdAt time.Time) models.Tour {
	t.Helper()

	tour := models.Tour{
		Title:      title,
		Slug:       utils.Slugify(title),
		Price:      100,
		Featured:   featured,
		Active:     active,
		CategoryID: categoryID,
		CreatedAt:  createdAt,
	}
	require.NoError(t, db.Create(&tour).Error)
	return tour
}
