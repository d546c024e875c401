package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Team struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Nickname  string    `gorm:"type:varchar(100)" json:"nickname"`
	Position  string    `gorm:"type:varchar(255)" json:"position"`
	Image     string    `gorm:"type:text" json:"image"`
	Bio       string    `gorm:"type:text" json:"bio"`
	Status    bool      `json:"status"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (t *Team) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
