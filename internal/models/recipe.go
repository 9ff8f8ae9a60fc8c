package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Recipe struct {
	ID              uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
	UserID          uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Title           string         `gorm:"size:255;not null" json:"title"`
	Description     string         `gorm:"type:text" json:"description"`
	PreparationTime int            `gorm:"not null;default:0" json:"preparation_time"`
	Ingredients     string         `gorm:"type:text;not null" json:"ingredients"`
	Directions      string         `gorm:"type:text;not null" json:"directions"`
	RecipeImage     string         `gorm:"size:255" json:"recipe_image"`
	Upvotes         int            `gorm:"not null;default:0" json:"upvotes"`
	Downvotes       int            `gorm:"not null;default:0" json:"downvotes"`
	Views           int            `gorm:"not null;default:0" json:"views"`
	FavoritesCount  int            `gorm:"not null;default:0" json:"favorites_count"`
}

func (r *Recipe) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
