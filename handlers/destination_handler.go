package handlers

import (
	"net/http"

	"safarihub/models"
	"safarihub/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func GetDestinations(c *gin.Context) {
	destinations, _ := dataStore.ActiveDestinations(c.Request.Context())
	c.JSON(http.StatusOK, destinations)
}

func GetDestinationBySlug(c *gin.Context) {
	destination, kind := dataStore.DestinationBySlug(c.Request.Context(), c.Param("slug"))
	if kind != store.KindNone {
		abortForKind(c, kind)
		return
	}
	c.JSON(http.StatusOK, destination)
}

func GetAllDestinations(c *gin.Context) {
	principal, err := principalFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	destinations, kind := dataStore.AllDestinations(c.Request.Context(), principal)
	if kind == store.KindForbidden {
		abortForKind(c, kind)
		return
	}
	c.JSON(http.StatusOK, destinations)
}

func CreateDestination(c *gin.Context) {
	principal, err := principalFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var input struct {
		Name        string   `json:"name" binding:"required"`
		Description string   `json:"description"`
		Country     string   `json:"country"`
		Climate     string   `json:"climate"`
		Verified    bool     `json:"verified"`
		Images      []string `json:"images"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	climate := models.Climate(input.Climate)
	if input.Climate != "" && climate != models.Tropical && climate != models.Temperate && climate != models.Arid && climate != models.Alpine {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid climate"})
		return
	}

	destination := models.Destination{
		Name:        input.Name,
		Description: input.Description,
		Country:     input.Country,
		Climate:     climate,
		Active:      true,
		Verified:    input.Verified,
		Images:      store.JSONList(input.Images),
	}

	if kind := dataStore.CreateDestination(c.Request.Context(), principal, &destination); kind != store.KindNone {
		if kind == store.KindConflict {
			c.JSON(http.StatusConflict, gin.H{"error": "destination already exists"})
			return
		}
		abortForKind(c, kind)
		return
	}

	c.JSON(http.StatusCreated, destination)
}

func UpdateDestination(c *gin.Context) {
	principal, err := principalFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid destination ID"})
		return
	}

	var input struct {
		Name        *string   `json:"name"`
		Description *string   `json:"description"`
		Country     *string   `json:"country"`
		Climate     *string   `json:"climate"`
		Active      *bool     `json:"active"`
		Verified    *bool     `json:"verified"`
		Images      *[]string `json:"images"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	patch := store.DestinationPatch{
		Name:        input.Name,
		Description: input.Description,
		Country:     input.Country,
		Active:      input.Active,
		Verified:    input.Verified,
		Images:      input.Images,
	}
	if input.Climate != nil {
		climate := models.Climate(*input.Climate)
		if climate != models.Tropical && climate != models.Temperate && climate != models.Arid && climate != models.Alpine {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid climate"})
			return
		}
		patch.Climate = &climate
	}

	destination, kind := dataStore.UpdateDestination(c.Request.Context(), principal, id, patch)
	if kind != store.KindNone {
		abortForKind(c, kind)
		return
	}

	c.JSON(http.StatusOK, destination)
}

func DeleteDestination(c *gin.Context) {
	principal, err := principalFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid destination ID"})
		return
	}

	if kind := dataStore.DeleteDestination(c.Request.Context(), principal, id); kind != store.KindNone {
		abortForKind(c, kind)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Destination deleted successfully"})
}
