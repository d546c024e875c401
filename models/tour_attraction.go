package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TourAttraction links a tour to an attraction. VisitOrder defines the
// visiting sequence inside the tour; (tour_id, attraction_id) is unique so
// the same attraction cannot be linked twice.
type TourAttraction struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	TourID       uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_tour_attraction" json:"tourId"`
	AttractionID uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_tour_attraction" json:"attractionId"`
	Attraction   Attraction `gorm:"foreignKey:AttractionID" json:"attraction"`
	VisitOrder   int        `gorm:"not null" json:"visitOrder"`
	Duration     string     `gorm:"type:varchar(100)" json:"duration"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"createdAt"`
}

func (ta *TourAttraction) BeforeCreate(tx *gorm.DB) error {
	if ta.ID == uuid.Nil {
		ta.ID = uuid.New()
	}
	return nil
}
