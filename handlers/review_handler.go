package handlers

import (
	"net/http"

	"safarihub/models"
	"safarihub/store"
	"safarihub/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GetTourReviews returns a page of reviews plus total count and average
// rating for a tour, addressed by slug.
func GetTourReviews(c *gin.Context) {
	tour, kind := dataStore.TourBySlug(c.Request.Context(), c.Param("slug"))
	if kind != store.KindNone {
		abortForKind(c, kind)
		return
	}

	p := utils.GetPagination(c)
	page, _ := dataStore.TourReviews(c.Request.Context(), tour.ID, p.Page, p.Limit)
	c.JSON(http.StatusOK, page)
}

func CreateReview(c *gin.Context) {
	principal, err := principalFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	tour, kind := dataStore.TourBySlug(c.Request.Context(), c.Param("slug"))
	if kind != store.KindNone {
		abortForKind(c, kind)
		return
	}

	var input struct {
		Rating  int    `json:"rating" binding:"required"`
		Title   string `json:"title"`
		Comment string `json:"comment"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Rating < 1 || input.Rating > 5 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "rating must be between 1 and 5"})
		return
	}

	review := models.Review{
		TourID:  tour.ID,
		Rating:  input.Rating,
		Title:   input.Title,
		Comment: input.Comment,
	}

	if kind := dataStore.CreateReview(c.Request.Context(), principal, &review); kind != store.KindNone {
		abortForKind(c, kind)
		return
	}

	c.JSON(http.StatusCreated, review)
}

func DeleteReview(c *gin.Context) {
	principal, err := principalFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid review ID"})
		return
	}

	if kind := dataStore.DeleteReview(c.Request.Context(), principal, id); kind != store.KindNone {
		abortForKind(c, kind)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Review deleted successfully"})
}
