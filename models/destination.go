package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Climate string

const (
	Tropical  Climate = "tropical"
	Temperate Climate = "temperate"
	Arid      Climate = "arid"
	Alpine    Climate = "alpine"
)

type Destination struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string         `gorm:"type:varchar(255);not null" json:"name"`
	Slug        string         `gorm:"type:varchar(255);uniqueIndex;not null" json:"slug"`
	Description string         `gorm:"type:text" json:"description"`
	Country     string         `gorm:"type:varchar(100)" json:"country"`
	Climate     Climate        `gorm:"type:varchar(20)" json:"climate"`
	Active      bool           `json:"active"`
	Verified    bool           `gorm:"default:false" json:"verified"`
	Images      datatypes.JSON `gorm:"type:jsonb" json:"images"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"createdAt"`
}

func (d *Destination) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}
