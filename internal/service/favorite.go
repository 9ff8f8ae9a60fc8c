package service

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tastebud-app/tastebud/internal/models"
)

// FavoriteService tracks which recipes each user has favorited and
// keeps the per-recipe favorites counter in step.
type FavoriteService struct {
	db *gorm.DB
}

func NewFavoriteService(db *gorm.DB) *FavoriteService {
	return &FavoriteService{db: db}
}

// Add favorites a recipe for a user. Favoriting twice is an error.
func (s *FavoriteService) Add(recipeID, userID uuid.UUID) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var recipe models.Recipe
		if err := tx.First(&recipe, "id = ?", recipeID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		var existing models.Favorite
		err := tx.Where("recipe_id = ? AND user_id = ?", recipeID, userID).First(&existing).Error
		if err == nil {
			return ErrDuplicateFavorite
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		favorite := models.Favorite{RecipeID: recipeID, UserID: userID}
		if err := tx.Create(&favorite).Error; err != nil {
			return err
		}
		return tx.Model(&recipe).
			UpdateColumn("favorites_count", gorm.Expr("favorites_count + 1")).Error
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) || errors.Is(err, ErrDuplicateFavorite) {
			return err
		}
		return fmt.Errorf("adding favorite: %w", err)
	}
	return nil
}

// Remove unfavorites a recipe for a user.
func (s *FavoriteService) Remove(recipeID, userID uuid.UUID) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var favorite models.Favorite
		err := tx.Where("recipe_id = ? AND user_id = ?", recipeID, userID).First(&favorite).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if err := tx.Delete(&favorite).Error; err != nil {
			return err
		}
		return tx.Model(&models.Recipe{}).
			Where("id = ?", recipeID).
			UpdateColumn("favorites_count", gorm.Expr("favorites_count - 1")).Error
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return err
		}
		return fmt.Errorf("removing favorite: %w", err)
	}
	return nil
}

// ListByUser returns the recipes a user has favorited, most recently
// favorited first.
func (s *FavoriteService) ListByUser(userID uuid.UUID) ([]models.Recipe, int64, error) {
	var recipes []models.Recipe
	err := s.db.
		Joins("JOIN favorites ON favorites.recipe_id = recipes.id").
		Where("favorites.user_id = ?", userID).
		Order("favorites.created_at DESC").
		Find(&recipes).Error
	if err != nil {
		return nil, 0, fmt.Errorf("listing favorites: %w", err)
	}
	return recipes, int64(len(recipes)), nil
}
