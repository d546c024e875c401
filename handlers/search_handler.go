package handlers

import (
	"net/http"

	"safarihub/models"
	"safarihub/tracing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// SearchItem is the wire shape of one search hit.
type SearchItem struct {
	ID               uuid.UUID      `json:"id"`
	Title            string         `json:"title"`
	Slug             string         `json:"slug"`
	Price            float64        `json:"price"`
	DiscountPrice    *float64       `json:"discountPrice"`
	Images           datatypes.JSON `json:"images"`
	ShortDescription string         `json:"shortDescription"`
	Location         string         `json:"location"`
	Duration         int            `json:"duration"`
}

// SearchTours handles GET /api/search?q=. Short queries and internal
// failures both answer 200 with an empty array; "no results" is never an
// error status.
func SearchTours(c *gin.Context) {
	ctx, span := tracing.Tracer().Start(c.Request.Context(), "tours-search")
	defer span.End()

	tours, _ := dataStore.SearchTours(ctx, c.Query("q"))

	items := make([]SearchItem, 0, len(tours))
	for _, t := range tours {
		items = append(items, searchItemFromTour(t))
	}

	c.JSON(http.StatusOK, items)
}

func searchItemFromTour(t models.Tour) SearchItem {
	return SearchItem{
		ID:               t.ID,
		Title:            t.Title,
		Slug:             t.Slug,
		Price:            t.Price,
		DiscountPrice:    t.DiscountPrice,
		Images:           t.Images,
		ShortDescription: t.ShortDescription,
		Location:         t.Location,
		Duration:         t.Duration,
	}
}
