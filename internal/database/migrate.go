package database

import (
	"gorm.io/gorm"

	"github.com/tastebud-app/tastebud/internal/models"
)

// AutoMigrate creates or updates the schema for every domain model.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Recipe{},
		&models.Review{},
		&models.Vote{},
		&models.Favorite{},
	)
}
