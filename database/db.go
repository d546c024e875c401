package database

import (
	"log"
	"time"

	"safarihub/models"

	"github.com/uptrace/opentelemetry-go-extra/otelgorm"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var GORM_DB *gorm.DB

func Connect(connStr string) {
	if connStr == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	db, err := gorm.Open(postgres.Open(connStr), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}

	if err := Migrate(db); err != nil {
		log.Fatal("Failed to migrate database: ", err)
	}

	if err := db.Use(otelgorm.NewPlugin()); err != nil {
		log.Fatal("Failed to use otelgorm: ", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal("Failed to get underlying *sql.DB: ", err)
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	GORM_DB = db
}

// Migrate keeps the schema in sync. Separate from Connect so tests can run it
// against their own handle.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Destination{},
		&models.Tour{},
		&models.Attraction{},
		&models.TourAttraction{},
		&models.TourItinerary{},
		&models.Review{},
		&models.Booking{},
		&models.Team{},
		&models.BlogCategory{},
		&models.Blog{},
	)
}

func Close() {
	if GORM_DB == nil {
		return
	}
	sqlDB, err := GORM_DB.DB()
	if err != nil {
		log.Printf("Error getting underlying *sql.DB to close: %v", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database connection: %v", err)
	}
}
