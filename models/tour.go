package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type TourDifficulty string

const (
	Easy      TourDifficulty = "easy"
	Medium    TourDifficulty = "medium"
	Difficult TourDifficulty = "difficult"
)

type Tour struct {
	ID               uuid.UUID        `gorm:"type:uuid;primaryKey" json:"id"`
	Title            string           `gorm:"type:varchar(255);not null" json:"title"`
	Slug             string           `gorm:"type:varchar(255);uniqueIndex;not null" json:"slug"`
	ShortDescription string           `gorm:"type:text" json:"shortDescription"`
	Description      string           `gorm:"type:text" json:"description"`
	Price            float64          `gorm:"not null" json:"price"`
	DiscountPrice    *float64         `json:"discountPrice"`
	Duration         int              `json:"duration"`
	MaxGroupSize     int              `json:"maxGroupSize"`
	Difficulty       TourDifficulty   `gorm:"type:varchar(20);default:'medium'" json:"difficulty"`
	Location         string           `gorm:"type:varchar(255)" json:"location"`
	Coordinates      string           `gorm:"type:varchar(255)" json:"coordinates"`
	Includes         datatypes.JSON   `gorm:"type:jsonb" json:"includes"`
	Excludes         datatypes.JSON   `gorm:"type:jsonb" json:"excludes"`
	Images           datatypes.JSON   `gorm:"type:jsonb" json:"images"`
	Featured         bool             `gorm:"default:false" json:"featured"`
	Active           bool             `json:"active"`
	CategoryID       uuid.UUID        `gorm:"type:uuid;not null;index" json:"categoryId"`
	Category         Category         `gorm:"foreignKey:CategoryID" json:"category"`
	DestinationID    *uuid.UUID       `gorm:"type:uuid;index" json:"destinationId"`
	Destination      *Destination     `gorm:"foreignKey:DestinationID" json:"destination,omitempty"`
	Itinerary        []TourItinerary  `gorm:"foreignKey:TourID" json:"itinerary,omitempty"`
	Attractions      []TourAttraction `gorm:"foreignKey:TourID" json:"attractions,omitempty"`
	CreatedAt        time.Time        `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt        time.Time        `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (t *Tour) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
