package handlers

import (
	"net/http"
	"strconv"

	"safarihub/models"
	"safarihub/store"
	"safarihub/tracing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GetFeaturedTours renders the promotional strip. List reads are fail-soft:
// an empty list goes out whatever the storage outcome.
func GetFeaturedTours(c *gin.Context) {
	ctx, span := tracing.Tracer().Start(c.Request.Context(), "tours-featured")
	defer span.End()

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "6"))

	tours, _ := dataStore.FeaturedTours(ctx, limit)
	c.JSON(http.StatusOK, tours)
}

func GetMoreTours(c *gin.Context) {
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "6"))
	take, _ := strconv.Atoi(c.DefaultQuery("take", "6"))

	tours, _ := dataStore.MoreTours(c.Request.Context(), skip, take)
	c.JSON(http.StatusOK, tours)
}

func GetToursByCategory(c *gin.Context) {
	tours, _ := dataStore.ToursByCategorySlug(c.Request.Context(), c.Param("slug"))
	c.JSON(http.StatusOK, tours)
}

func GetTourBySlug(c *gin.Context) {
	ctx, span := tracing.Tracer().Start(c.Request.Context(), "tour-by-slug")
	defer span.End()

	tour, kind := dataStore.TourBySlug(ctx, c.Param("slug"))
	if kind != store.KindNone {
		recordSpanError(span, kind)
		abortForKind(c, kind)
		return
	}
	c.JSON(http.StatusOK, tour)
}

func GetSimilarTours(c *gin.Context) {
	tour, kind := dataStore.TourBySlug(c.Request.Context(), c.Param("slug"))
	if kind != store.KindNone {
		c.JSON(http.StatusOK, []models.Tour{})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "6"))
	tours, _ := dataStore.SimilarTours(c.Request.Context(), tour.CategoryID, tour.ID, limit)
	c.JSON(http.StatusOK, tours)
}

func GetAllTours(c *gin.Context) {
	principal, err := principalFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	tours, kind := dataStore.AllTours(c.Request.Context(), principal)
	if kind == store.KindForbidden {
		abortForKind(c, kind)
		return
	}
	c.JSON(http.StatusOK, tours)
}

type tourInput struct {
	Title            string   `json:"title" binding:"required"`
	ShortDescription string   `json:"shortDescription"`
	Description      string   `json:"description"`
	Price            float64  `json:"price" binding:"required"`
	DiscountPrice    *float64 `json:"discountPrice"`
	Duration         int      `json:"duration"`
	MaxGroupSize     int      `json:"maxGroupSize"`
	Difficulty       string   `json:"difficulty"`
	Location         string   `json:"location"`
	Coordinates      string   `json:"coordinates"`
	Includes         []string `json:"includes"`
	Excludes         []string `json:"excludes"`
	Images           []string `json:"images"`
	Featured         bool     `json:"featured"`
	CategoryID       string   `json:"categoryId" binding:"required"`
	DestinationID    *string  `json:"destinationId"`
}

func CreateTour(c *gin.Context) {
	principal, err := principalFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var input tourInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	difficulty := models.TourDifficulty(input.Difficulty)
	if input.Difficulty == "" {
		difficulty = models.Medium
	} else if difficulty != models.Easy && difficulty != models.Medium && difficulty != models.Difficult {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid difficulty"})
		return
	}

	categoryID, err := uuid.Parse(input.CategoryID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid categoryId"})
		return
	}

	tour := models.Tour{
		Title:            input.Title,
		ShortDescription: input.ShortDescription,
		Description:      input.Description,
		Price:            input.Price,
		DiscountPrice:    input.DiscountPrice,
		Duration:         input.Duration,
		MaxGroupSize:     input.MaxGroupSize,
		Difficulty:       difficulty,
		Location:         input.Location,
		Coordinates:      input.Coordinates,
		Includes:         store.JSONList(input.Includes),
		Excludes:         store.JSONList(input.Excludes),
		Images:           store.JSONList(input.Images),
		Featured:         input.Featured,
		Active:           true,
		CategoryID:       categoryID,
	}

	if input.DestinationID != nil {
		destinationID, err := uuid.Parse(*input.DestinationID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid destinationId"})
			return
		}
		tour.DestinationID = &destinationID
	}

	if kind := dataStore.CreateTour(c.Request.Context(), principal, &tour); kind != store.KindNone {
		abortForKind(c, kind)
		return
	}

	c.JSON(http.StatusCreated, tour)
}

type tourPatchInput struct {
	Title            *string   `json:"title"`
	ShortDescription *string   `json:"shortDescription"`
	Description      *string   `json:"description"`
	Price            *float64  `json:"price"`
	DiscountPrice    *float64  `json:"discountPrice"`
	Duration         *int      `json:"duration"`
	MaxGroupSize     *int      `json:"maxGroupSize"`
	Difficulty       *string   `json:"difficulty"`
	Location         *string   `json:"location"`
	Coordinates      *string   `json:"coordinates"`
	Includes         *[]string `json:"includes"`
	Excludes         *[]string `json:"excludes"`
	Images           *[]string `json:"images"`
	Featured         *bool     `json:"featured"`
	Active           *bool     `json:"active"`
	CategoryID       *string   `json:"categoryId"`
	DestinationID    *string   `json:"destinationId"`
}

func UpdateTour(c *gin.Context) {
	principal, err := principalFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid tour ID"})
		return
	}

	var input tourPatchInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	patch := store.TourPatch{
		Title:            input.Title,
		ShortDescription: input.ShortDescription,
		Description:      input.Description,
		Price:            input.Price,
		DiscountPrice:    input.DiscountPrice,
		Duration:         input.Duration,
		MaxGroupSize:     input.MaxGroupSize,
		Location:         input.Location,
		Coordinates:      input.Coordinates,
		Includes:         input.Includes,
		Excludes:         input.Excludes,
		Images:           input.Images,
		Featured:         input.Featured,
		Active:           input.Active,
	}

	if input.Difficulty != nil {
		difficulty := models.TourDifficulty(*input.Difficulty)
		if difficulty != models.Easy && difficulty != models.Medium && difficulty != models.Difficult {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid difficulty"})
			return
		}
		patch.Difficulty = &difficulty
	}
	if input.CategoryID != nil {
		categoryID, err := uuid.Parse(*input.CategoryID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid categoryId"})
			return
		}
		patch.CategoryID = &categoryID
	}
	if input.DestinationID != nil {
		destinationID, err := uuid.Parse(*input.DestinationID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid destinationId"})
			return
		}
		patch.DestinationID = &destinationID
	}

	tour, kind := dataStore.UpdateTour(c.Request.Context(), principal, id, patch)
	if kind != store.KindNone {
		abortForKind(c, kind)
		return
	}

	c.JSON(http.StatusOK, tour)
}

func DeleteTour(c *gin.Context) {
	principal, err := principalFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid tour ID"})
		return
	}

	if kind := dataStore.DeleteTour(c.Request.Context(), principal, id); kind != store.KindNone {
		abortForKind(c, kind)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Tour deleted successfully"})
}
