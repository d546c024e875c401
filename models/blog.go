package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Blog struct {
	ID         uuid.UUID    `gorm:"type:uuid;primaryKey" json:"id"`
	Title      string       `gorm:"type:varchar(255);not null" json:"title"`
	Slug       string       `gorm:"type:varchar(255);uniqueIndex;not null" json:"slug"`
	Excerpt    string       `gorm:"type:text" json:"excerpt"`
	Content    string       `gorm:"type:text" json:"content"`
	Image      string       `gorm:"type:text" json:"image"`
	AuthorID   uuid.UUID    `gorm:"type:uuid;not null" json:"authorId"`
	Author     User         `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	CategoryID uuid.UUID    `gorm:"type:uuid;not null" json:"categoryId"`
	Category   BlogCategory `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Published  bool         `gorm:"default:false" json:"published"`
	Featured   bool         `gorm:"default:false" json:"featured"`
	CreatedAt  time.Time    `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt  time.Time    `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (b *Blog) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}
