package service

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tastebud-app/tastebud/internal/models"
)

// ReviewService stores and lists recipe reviews.
type ReviewService struct {
	db *gorm.DB
}

func NewReviewService(db *gorm.DB) *ReviewService {
	return &ReviewService{db: db}
}

// Add posts a review on a recipe and returns it with the author loaded.
func (s *ReviewService) Add(recipeID, userID uuid.UUID, content string) (*models.Review, error) {
	var recipe models.Recipe
	if err := s.db.First(&recipe, "id = ?", recipeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("fetching recipe: %w", err)
	}

	review := models.Review{
		RecipeID: recipeID,
		UserID:   userID,
		Content:  content,
	}
	if err := s.db.Create(&review).Error; err != nil {
		return nil, fmt.Errorf("creating review: %w", err)
	}
	if err := s.db.Preload("User").First(&review, "id = ?", review.ID).Error; err != nil {
		return nil, fmt.Errorf("loading review author: %w", err)
	}
	return &review, nil
}

// List returns one page of a recipe's reviews, newest first, together
// with the recipe's total review count.
func (s *ReviewService) List(recipeID uuid.UUID, limit, offset int) ([]models.Review, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 5
	}
	if offset < 0 {
		offset = 0
	}

	var total int64
	err := s.db.Model(&models.Review{}).Where("recipe_id = ?", recipeID).Count(&total).Error
	if err != nil {
		return nil, 0, fmt.Errorf("counting reviews: %w", err)
	}

	var reviews []models.Review
	err = s.db.Preload("User").
		Where("recipe_id = ?", recipeID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&reviews).Error
	if err != nil {
		return nil, 0, fmt.Errorf("listing reviews: %w", err)
	}
	return reviews, total, nil
}

// Delete removes a review. Only its author may do so.
func (s *ReviewService) Delete(reviewID, userID uuid.UUID) error {
	var review models.Review
	if err := s.db.First(&review, "id = ?", reviewID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("fetching review: %w", err)
	}
	if review.UserID != userID {
		return ErrNotOwner
	}
	if err := s.db.Delete(&review).Error; err != nil {
		return fmt.Errorf("deleting review: %w", err)
	}
	return nil
}
