package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// TourItinerary is one day of a tour. (tour_id, day) is unique; fetches order
// by day ascending.
type TourItinerary struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	TourID      uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_tour_day" json:"tourId"`
	Day         int            `gorm:"not null;uniqueIndex:idx_tour_day" json:"day"`
	Title       string         `gorm:"type:varchar(255);not null" json:"title"`
	Description string         `gorm:"type:text" json:"description"`
	Activities  datatypes.JSON `gorm:"type:jsonb" json:"activities"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"createdAt"`
}

func (ti *TourItinerary) BeforeCreate(tx *gorm.DB) error {
	if ti.ID == uuid.Nil {
		ti.ID = uuid.New()
	}
	return nil
}
