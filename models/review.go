package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Review struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	TourID    uuid.UUID `gorm:"type:uuid;not null;index" json:"tourId"`
	UserID    uuid.UUID `gorm:"type:uuid;not null" json:"userId"`
	Rating    int       `gorm:"not null" json:"rating"`
	Title     string    `gorm:"type:varchar(255)" json:"title"`
	Comment   string    `gorm:"type:text" json:"comment"`
	Verified  bool      `gorm:"default:false" json:"verified"`
	Helpful   int       `gorm:"default:0" json:"helpful"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
