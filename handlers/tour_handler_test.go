package handlers_test

import (
	"net/http"
	"testing"

	"safarihub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetFeaturedToursAlwaysAnswers200(t *testing.T) {
	r, db := newTestRouter(t)
	category := seedCategory(t, db, "Safari")
	seedTour(t, db, category.ID, "Star Tour", true, true)
	seedTour(t, db, category.ID, "Plain Tour", false, true)

	var tours []models.Tour
	w := doRequest(t, r, "GET", "/api/tours/featured", "", nil)
	decodeBody(t, w, &tours)

	require.Len(t, tours, 1)
	assert.Equal(t, "Star Tour", tours[0].Title)

	// Empty catalog is still a 200 with an array.
	empty, _ := newTestRouter(t)
	w = doRequest(t, empty, "GET", "/api/tours/featured", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestGetTourBySlugStatuses(t *testing.T) {
	r, db := newTestRouter(t)
	category := seedCategory(t, db, "Safari")
	seedTour(t, db, category.ID, "Gorilla Trek", false, true)
	seedTour(t, db, category.ID, "Retired Classic", false, false)

	var tour models.Tour
	w := doRequest(t, r, "GET", "/api/tours/gorilla-trek", "", nil)
	decodeBody(t, w, &tour)
	assert.Equal(t, "Gorilla Trek", tour.Title)

	w = doRequest(t, r, "GET", "/api/tours/retired-classic", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateTourAuth(t *testing.T) {
	r, db := newTestRouter(t)
	category := seedCategory(t, db, "Safari")

	body := map[string]interface{}{
		"title":      "Murchison Falls Cruise",
		"price":      180.0,
		"categoryId": category.ID.String(),
	}

	w := doRequest(t, r, "POST", "/api/admin/tours", "", body)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doRequest(t, r, "POST", "/api/admin/tours", userToken(t), body)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doRequest(t, r, "POST", "/api/admin/tours", adminToken(t), body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"slug":"murchison-falls-cruise"`)
}

func TestCreateTourValidation(t *testing.T) {
	r, db := newTestRouter(t)
	category := seedCategory(t, db, "Safari")
	token := adminToken(t)

	// Missing required price.
	w := doRequest(t, r, "POST", "/api/admin/tours", token, map[string]interface{}{
		"title":      "No Price",
		"categoryId": category.ID.String(),
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(t, r, "POST", "/api/admin/tours", token, map[string]interface{}{
		"title":      "Bad Difficulty",
		"price":      50.0,
		"difficulty": "extreme",
		"categoryId": category.ID.String(),
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(t, r, "POST", "/api/admin/tours", token, map[string]interface{}{
		"title":      "Bad Category",
		"price":      50.0,
		"categoryId": "not-a-uuid",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetAllToursAdminSeesInactive(t *testing.T) {
	r, db := newTestRouter(t)
	category := seedCategory(t, db, "Safari")
	seedTour(t, db, category.ID, "Visible", false, true)
	seedTour(t, db, category.ID, "Hidden", false, false)

	w := doRequest(t, r, "GET", "/api/admin/tours", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doRequest(t, r, "GET", "/api/admin/tours", userToken(t), nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	var tours []models.Tour
	w = doRequest(t, r, "GET", "/api/admin/tours", adminToken(t), nil)
	decodeBody(t, w, &tours)
	assert.Len(t, tours, 2)
}
