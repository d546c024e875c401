package handlers

import (
	"net/http"

	"safarihub/models"
	"safarihub/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func GetCategories(c *gin.Context) {
	categories, _ := dataStore.AllCategories(c.Request.Context())
	c.JSON(http.StatusOK, categories)
}

func CreateCategory(c *gin.Context) {
	principal, err := principalFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var input struct {
		Title       string `json:"title" binding:"required"`
		Description string `json:"description"`
		Image       string `json:"image"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category := models.Category{
		Title:       input.Title,
		Description: input.Description,
		Image:       input.Image,
	}

	if kind := dataStore.CreateCategory(c.Request.Context(), principal, &category); kind != store.KindNone {
		if kind == store.KindConflict {
			c.JSON(http.StatusConflict, gin.H{"error": "category already exists"})
			return
		}
		abortForKind(c, kind)
		return
	}

	c.JSON(http.StatusCreated, category)
}

func UpdateCategory(c *gin.Context) {
	principal, err := principalFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid category ID"})
		return
	}

	var input struct {
		Title       *string `json:"title"`
		Description *string `json:"description"`
		Image       *string `json:"image"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	patch := store.CategoryPatch{
		Title:       input.Title,
		Description: input.Description,
		Image:       input.Image,
	}

	category, kind := dataStore.UpdateCategory(c.Request.Context(), principal, id, patch)
	if kind != store.KindNone {
		abortForKind(c, kind)
		return
	}

	c.JSON(http.StatusOK, category)
}

func DeleteCategory(c *gin.Context) {
	principal, err := principalFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid category ID"})
		return
	}

	if kind := dataStore.DeleteCategory(c.Request.Context(), principal, id); kind != store.KindNone {
		abortForKind(c, kind)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
}
