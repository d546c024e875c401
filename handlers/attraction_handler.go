package handlers

import (
	"net/http"

	"safarihub/models"
	"safarihub/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func GetAttractions(c *gin.Context) {
	attractions, _ := dataStore.AllAttractions(c.Request.Context())
	c.JSON(http.StatusOK, attractions)
}

func GetAttraction(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid attraction ID"})
		return
	}

	attraction, kind := dataStore.AttractionByID(c.Request.Context(), id)
	if kind != store.KindNone {
		abortForKind(c, kind)
		return
	}
	c.JSON(http.StatusOK, attraction)
}

func CreateAttraction(c *gin.Context) {
	principal, err := principalFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var input struct {
		Name        string   `json:"name" binding:"required"`
		Type        string   `json:"type" binding:"required"`
		Location    string   `json:"location"`
		Description string   `json:"description"`
		Images      []string `json:"images"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	attractionType := models.AttractionType(input.Type)
	switch attractionType {
	case models.Natural, models.Cultural, models.Historical, models.Adventure, models.Wildlife:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid attraction type"})
		return
	}

	attraction := models.Attraction{
		Name:        input.Name,
		Type:        attractionType,
		Location:    input.Location,
		Description: input.Description,
		Images:      store.JSONList(input.Images),
	}

	if kind := dataStore.CreateAttraction(c.Request.Context(), principal, &attraction); kind != store.KindNone {
		abortForKind(c, kind)
		return
	}

	c.JSON(http.StatusCreated, attraction)
}

func UpdateAttraction(c *gin.Context) {
	principal, err := principalFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid attraction ID"})
		return
	}

	var input struct {
		Name        *string   `json:"name"`
		Type        *string   `json:"type"`
		Location    *string   `json:"location"`
		Description *string   `json:"description"`
		Images      *[]string `json:"images"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	patch := store.AttractionPatch{
		Name:        input.Name,
		Location:    input.Location,
		Description: input.Description,
		Images:      input.Images,
	}
	if input.Type != nil {
		attractionType := models.AttractionType(*input.Type)
		switch attractionType {
		case models.Natural, models.Cultural, models.Historical, models.Adventure, models.Wildlife:
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid attraction type"})
			return
		}
		patch.Type = &attractionType
	}

	attraction, kind := dataStore.UpdateAttraction(c.Request.Context(), principal, id, patch)
	if kind != store.KindNone {
		abortForKind(c, kind)
		return
	}

	c.JSON(http.StatusOK, attraction)
}

func DeleteAttraction(c *gin.Context) {
	principal, err := principalFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid attraction ID"})
		return
	}

	if kind := dataStore.DeleteAttraction(c.Request.Context(), principal, id); kind != store.KindNone {
		abortForKind(c, kind)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Attraction deleted successfully"})
}

func GetTourAttractions(c *gin.Context) {
	tourID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid tour ID"})
		return
	}

	links, _ := dataStore.TourAttractions(c.Request.Context(), tourID)
	c.JSON(http.StatusOK, links)
}

func LinkAttraction(c *gin.Context) {
	principal, err := principalFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var input struct {
		TourID       string `json:"tourId" binding:"required"`
		AttractionID string `json:"attractionId" binding:"required"`
		VisitOrder   int    `json:"visitOrder" binding:"required"`
		Duration     string `json:"duration"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tourID, err := uuid.Parse(input.TourID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid tourId"})
		return
	}
	attractionID, err := uuid.Parse(input.AttractionID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid attractionId"})
		return
	}

	link := models.TourAttraction{
		TourID:       tourID,
		AttractionID: attractionID,
		VisitOrder:   input.VisitOrder,
		Duration:     input.Duration,
	}

	if kind := dataStore.LinkAttraction(c.Request.Context(), principal, &link); kind != store.KindNone {
		if kind == store.KindConflict {
			c.JSON(http.StatusConflict, gin.H{"error": "attraction already linked to tour"})
			return
		}
		abortForKind(c, kind)
		return
	}

	c.JSON(http.StatusCreated, link)
}

func UpdateAttractionLink(c *gin.Context) {
	principal, err := principalFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid link ID"})
		return
	}

	var input struct {
		VisitOrder *int    `json:"visitOrder"`
		Duration   *string `json:"duration"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if kind := dataStore.UpdateAttractionLink(c.Request.Context(), principal, id, input.VisitOrder, input.Duration); kind != store.KindNone {
		abortForKind(c, kind)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Link updated successfully"})
}

func UnlinkAttraction(c *gin.Context) {
	principal, err := principalFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid link ID"})
		return
	}

	if kind := dataStore.UnlinkAttraction(c.Request.Context(), principal, id); kind != store.KindNone {
		abortForKind(c, kind)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Attraction unlinked successfully"})
}

// GetAvailableToursForAttraction backs the admin picker: active tours not yet
// linked to this attraction.
func GetAvailableToursForAttraction(c *gin.Context) {
	principal, err := principalFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	attractionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid attraction ID"})
		return
	}

	tours, kind := dataStore.AvailableToursForAttraction(c.Request.Context(), principal, attractionID)
	if kind == store.KindForbidden {
		abortForKind(c, kind)
		return
	}
	c.JSON(http.StatusOK, tours)
}
