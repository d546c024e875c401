package main

import (
	"context"
	"log"
	"os"
	"time"

	"safarihub/cache"
	"safarihub/database"
	"safarihub/handlers"
	"safarihub/payments"
	"safarihub/store"
	"safarihub/tracing"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/nats-io/nats.go"
)

func main() {
	connStr := os.Getenv("DATABASE_URL")
	if connStr == "" {
		if err := godotenv.Load(); err != nil {
			log.Println(err)
		}
		connStr = os.Getenv("DATABASE_URL")
	}

	shutdown := tracing.Init(context.Background())
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			log.Printf("Failed to shut down tracing: %v", err)
		}
	}()

	database.Connect(connStr)
	defer database.Close()

	queryCache := cache.NewMemory(30 * time.Minute)
	defer queryCache.Close()

	dataStore := store.New(database.GORM_DB, queryCache)

	var paymentClient *payments.Client
	if url := os.Getenv("PAYMENT_API_URL"); url != "" {
		paymentClient = payments.NewClient(url)
	}

	if natsURL := os.Getenv("NATS_URL"); natsURL != "" {
		natsConn, err := nats.Connect(natsURL)
		if err != nil {
			log.Printf("Failed to connect to NATS: %v", err)
		} else {
			defer natsConn.Close()
			if err := payments.Subscribe(natsConn, dataStore); err != nil {
				log.Printf("Failed to subscribe to payment events: %v", err)
			}
		}
	}

	handlers.Init(dataStore, paymentClient)

	r := gin.Default()

	r.Static("/uploads", "./static/uploads")

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	api := r.Group("/api")

	api.GET("/search", handlers.SearchTours)

	api.GET("/tours/featured", handlers.GetFeaturedTours)
	api.GET("/tours/more", handlers.GetMoreTours)
	api.GET("/tours/:slug", handlers.GetTourBySlug)
	api.GET("/tours/:slug/similar", handlers.GetSimilarTours)
	api.GET("/tours/:slug/reviews", handlers.GetTourReviews)
	api.POST("/tours/:slug/reviews", handlers.CreateReview)

	api.GET("/categories", handlers.GetCategories)
	api.GET("/categories/:slug/tours", handlers.GetToursByCategory)

	api.GET("/destinations", handlers.GetDestinations)
	api.GET("/destinations/:slug", handlers.GetDestinationBySlug)

	api.GET("/attractions", handlers.GetAttractions)
	api.GET("/attractions/:id", handlers.GetAttraction)

	api.GET("/team", handlers.GetTeam)

	api.GET("/blogs", handlers.GetBlogs)
	api.GET("/blogs/:slug", handlers.GetBlogBySlug)
	api.GET("/blog-categories", handlers.GetBlogCategories)

	api.POST("/auth/register", handlers.Register)
	api.POST("/auth/login", handlers.Login)

	api.POST("/bookings", handlers.CreateBooking)
	api.GET("/bookings/mine", handlers.GetMyBookings)

	admin := api.Group("/admin")

	admin.GET("/tours", handlers.GetAllTours)
	admin.POST("/tours", handlers.CreateTour)
	admin.PUT("/tours/:id", handlers.UpdateTour)
	admin.DELETE("/tours/:id", handlers.DeleteTour)

	admin.POST("/categories", handlers.CreateCategory)
	admin.PUT("/categories/:id", handlers.UpdateCategory)
	admin.DELETE("/categories/:id", handlers.DeleteCategory)

	admin.GET("/destinations", handlers.GetAllDestinations)
	admin.POST("/destinations", handlers.CreateDestination)
	admin.PUT("/destinations/:id", handlers.UpdateDestination)
	admin.DELETE("/destinations/:id", handlers.DeleteDestination)

	admin.POST("/attractions", handlers.CreateAttraction)
	admin.PUT("/attractions/:id", handlers.UpdateAttraction)
	admin.DELETE("/attractions/:id", handlers.DeleteAttraction)
	admin.GET("/attractions/:id/available-tours", handlers.GetAvailableToursForAttraction)

	admin.GET("/tours/:id/attractions", handlers.GetTourAttractions)
	admin.POST("/tour-attractions", handlers.LinkAttraction)
	admin.PUT("/tour-attractions/:id", handlers.UpdateAttractionLink)
	admin.DELETE("/tour-attractions/:id", handlers.UnlinkAttraction)

	admin.GET("/tours/:id/itinerary", handlers.GetTourItinerary)
	admin.POST("/tours/:id/itinerary", handlers.AddItineraryDay)
	admin.PUT("/tours/:id/itinerary/reorder", handlers.ReorderItinerary)
	admin.PUT("/itinerary/:id", handlers.UpdateItineraryDay)
	admin.DELETE("/itinerary/:id", handlers.DeleteItineraryDay)

	admin.DELETE("/reviews/:id", handlers.DeleteReview)

	admin.GET("/team", handlers.GetAllTeam)
	admin.POST("/team", handlers.CreateTeamMember)
	admin.PUT("/team/:id", handlers.UpdateTeamMember)
	admin.DELETE("/team/:id", handlers.DeleteTeamMember)

	admin.GET("/blogs", handlers.GetAllBlogs)
	admin.POST("/blogs", handlers.CreateBlog)
	admin.PUT("/blogs/:id", handlers.UpdateBlog)
	admin.DELETE("/blogs/:id", handlers.DeleteBlog)
	admin.POST("/blog-categories", handlers.CreateBlogCategory)
	admin.DELETE("/blog-categories/:id", handlers.DeleteBlogCategory)

	admin.GET("/users", handlers.GetAllUsers)

	admin.GET("/bookings", handlers.GetAllBookings)
	admin.PUT("/bookings/:id/status", handlers.UpdateBookingStatus)

	admin.POST("/uploads/:route", handlers.UploadImages)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
