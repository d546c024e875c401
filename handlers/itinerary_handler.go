package handlers

import (
	"net/http"

	"safarihub/models"
	"safarihub/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func GetTourItinerary(c *gin.Context) {
	tourID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid tour ID"})
		return
	}

	days, _ := dataStore.ItineraryForTour(c.Request.Context(), tourID)
	c.JSON(http.StatusOK, days)
}

func AddItineraryDay(c *gin.Context) {
	principal, err := principalFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	tourID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid tour ID"})
		return
	}

	var input struct {
		Day         int      `json:"day" binding:"required"`
		Title       string   `json:"title" binding:"required"`
		Description string   `json:"description"`
		Activities  []string `json:"activities"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	day := models.TourItinerary{
		TourID:      tourID,
		Day:         input.Day,
		Title:       input.Title,
		Description: input.Description,
		Activities:  store.JSONList(input.Activities),
	}

	if kind := dataStore.AddItineraryDay(c.Request.Context(), principal, &day); kind != store.KindNone {
		if kind == store.KindConflict {
			c.JSON(http.StatusConflict, gin.H{"error": "day already exists for tour"})
			return
		}
		abortForKind(c, kind)
		return
	}

	c.JSON(http.StatusCreated, day)
}

func UpdateItineraryDay(c *gin.Context) {
	principal, err := principalFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid itinerary ID"})
		return
	}

	var input struct {
		Day         *int      `json:"day"`
		Title       *string   `json:"title"`
		Description *string   `json:"description"`
		Activities  *[]string `json:"activities"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	patch := store.ItineraryPatch{
		Day:         input.Day,
		Title:       input.Title,
		Description: input.Description,
		Activities:  input.Activities,
	}

	if kind := dataStore.UpdateItineraryDay(c.Request.Context(), principal, id, patch); kind != store.KindNone {
		abortForKind(c, kind)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Itinerary day updated successfully"})
}

func DeleteItineraryDay(c *gin.Context) {
	principal, err := principalFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid itinerary ID"})
		return
	}

	if kind := dataStore.DeleteItineraryDay(c.Request.Context(), principal, id); kind != store.KindNone {
		abortForKind(c, kind)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Itinerary day deleted successfully"})
}

// ReorderItinerary applies a batch of day reassignments atomically.
func ReorderItinerary(c *gin.Context) {
	principal, err := principalFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	tourID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid tour ID"})
		return
	}

	var input struct {
		Days []store.DayAssignment `json:"days" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if kind := dataStore.ReorderItinerary(c.Request.Context(), principal, tourID, input.Days); kind != store.KindNone {
		abortForKind(c, kind)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Itinerary reordered successfully"})
}
