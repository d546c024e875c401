package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"safarihub/cache"
	"safarihub/database"
	"safarihub/handlers"
	"safarihub/models"
	"safarihub/store"
	"safarihub/utils"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// newTestRouter wires the handlers against a fresh in-memory database and
// returns the engine plus the raw DB handle for seeding.
func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()

	gin.SetMode(gin.TestMode)
	t.Setenv("JWT_SECRET", "test-secret")

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	c := cache.NewMemory(time.Minute)
	t.Cleanup(c.Close)
	handlers.Init(store.New(db, c), nil)

	r := gin.New()
	api := r.Group("/api")
	{
		api.GET("/search", handlers.SearchTours)
		api.GET("/tours/featured", handlers.GetFeaturedTours)
		api.GET("/categories/:slug/tours", handlers.GetToursByCategory)
		api.GET("/tours/:slug", handlers.GetTourBySlug)
		api.GET("/tours/:slug/similar", handlers.GetSimilarTours)
		api.POST("/auth/register", handlers.Register)
		api.POST("/auth/login", handlers.Login)
	}
	admin := api.Group("/admin")
	{
		admin.GET("/tours", handlers.GetAllTours)
		admin.POST("/tours", handlers.CreateTour)
	}
	return r, db
}

func adminToken(t *testing.T) string {
	t.Helper()

	token, err := utils.GenerateJWT(uuid.NewString(), "admin@example.com", string(models.RoleAdmin))
	require.NoError(t, err)
	return token
}

func userToken(t *testing.T) string {
	t.Helper()

	token, err := utils.GenerateJWT(uuid.NewString(), "user@example.com", string(models.RoleUser))
	require.NoError(t, err)
	return token
}

func doRequest(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func seedCategory(t *testing.T, db *gorm.DB, title string) models.Category {
	t.Helper()

	category := models.Category{Title: title, Slug: utils.Slugify(title)}
	require.NoError(t, db.Create(&category).Error)
	return category
}

func seedTour(t *testing.T, db *gorm.DB, categoryID uuid.UUID, title string, featured, active bool) models.Tour {
	t.Helper()

	tour := models.Tour{
		Title:      title,
		Slug:       utils.Slugify(title),
		Price:      100,
		Featured:   featured,
		Active:     active,
		CategoryID: categoryID,
	}
	require.NoError(t, db.Create(&tour).Error)
	return tour
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}
