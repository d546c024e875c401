package handlers

import (
	"net/http"

	"safarihub/models"
	"safarihub/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func GetBlogs(c *gin.Context) {
	blogs, _ := dataStore.PublishedBlogs(c.Request.Context())
	c.JSON(http.StatusOK, blogs)
}

func GetBlogBySlug(c *gin.Context) {
	blog, kind := dataStore.BlogBySlug(c.Request.Context(), c.Param("slug"))
	if kind != store.KindNone {
		abortForKind(c, kind)
		return
	}
	c.JSON(http.StatusOK, blog)
}

func GetBlogCategories(c *gin.Context) {
	categories, _ := dataStore.AllBlogCategories(c.Request.Context())
	c.JSON(http.StatusOK, categories)
}

func GetAllBlogs(c *gin.Context) {
	principal, err := principalFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	blogs, kind := dataStore.AllBlogs(c.Request.Context(), principal)
	if kind == store.KindForbidden {
		abortForKind(c, kind)
		return
	}
	c.JSON(http.StatusOK, blogs)
}

func CreateBlog(c *gin.Context) {
	principal, err := principalFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var input struct {
		Title      string `json:"title" binding:"required"`
		Excerpt    string `json:"excerpt"`
		Content    string `json:"content" binding:"required"`
		Image      string `json:"image"`
		CategoryID string `json:"categoryId" binding:"required"`
		Published  bool   `json:"published"`
		Featured   bool   `json:"featured"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	categoryID, err := uuid.Parse(input.CategoryID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid categoryId"})
		return
	}

	blog := models.Blog{
		Title:      input.Title,
		Excerpt:    input.Excerpt,
		Content:    input.Content,
		Image:      input.Image,
		CategoryID: categoryID,
		Published:  input.Published,
		Featured:   input.Featured,
	}

	if kind := dataStore.CreateBlog(c.Request.Context(), principal, &blog); kind != store.KindNone {
		abortForKind(c, kind)
		return
	}

	c.JSON(http.StatusCreated, blog)
}

func UpdateBlog(c *gin.Context) {
	principal, err := principalFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid blog ID"})
		return
	}

	var input struct {
		Title      *string `json:"title"`
		Excerpt    *string `json:"excerpt"`
		Content    *string `json:"content"`
		Image      *string `json:"image"`
		CategoryID *string `json:"categoryId"`
		Published  *bool   `json:"published"`
		Featured   *bool   `json:"featured"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	patch := store.BlogPatch{
		Title:     input.Title,
		Excerpt:   input.Excerpt,
		Content:   input.Content,
		Image:     input.Image,
		Published: input.Published,
		Featured:  input.Featured,
	}
	if input.CategoryID != nil {
		categoryID, err := uuid.Parse(*input.CategoryID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid categoryId"})
			return
		}
		patch.CategoryID = &categoryID
	}

	blog, kind := dataStore.UpdateBlog(c.Request.Context(), principal, id, patch)
	if kind != store.KindNone {
		abortForKind(c, kind)
		return
	}

	c.JSON(http.StatusOK, blog)
}

func DeleteBlog(c *gin.Context) {
	principal, err := principalFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid blog ID"})
		return
	}

	if kind := dataStore.DeleteBlog(c.Request.Context(), principal, id); kind != store.KindNone {
		abortForKind(c, kind)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Blog deleted successfully"})
}

func CreateBlogCategory(c *gin.Context) {
	principal, err := principalFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var input struct {
		Title string `json:"title" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category := models.BlogCategory{Title: input.Title}
	if kind := dataStore.CreateBlogCategory(c.Request.Context(), principal, &category); kind != store.KindNone {
		if kind == store.KindConflict {
			c.JSON(http.StatusConflict, gin.H{"error": "blog category already exists"})
			return
		}
		abortForKind(c, kind)
		return
	}

	c.JSON(http.StatusCreated, category)
}

func DeleteBlogCategory(c *gin.Context) {
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

	if kind := dataStore.DeleteBlogCategory(c.Request.Context(), principal, id); kind != store.KindNone {
		abortForKind(c, kind)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Blog category deleted successfully"})
}
