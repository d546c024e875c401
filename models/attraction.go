package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type AttractionType string

const (
	Natural    AttractionType = "natural"
	Cultural   AttractionType = "cultural"
	Historical AttractionType = "historical"
	Adventure  AttractionType = "adventure"
	Wildlife   AttractionType = "wildlife"
)

type Attraction struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string         `gorm:"type:varchar(255);not null" json:"name"`
	Type        AttractionType `gorm:"type:varchar(20)" json:"type"`
	Location    string         `gorm:"type:varchar(255)" json:"location"`
	Description string         `gorm:"type:text" json:"description"`
	Images      datatypes.JSON `gorm:"type:jsonb" json:"images"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"createdAt"`
}

func (a *Attraction) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
