package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/tastebud-app/tastebud/internal/models"
)

const (
	popularCacheKey = "recipes:popular"
	popularCacheTTL = 10 * time.Minute
)

// ListParams narrows and orders a recipe listing.
type ListParams struct {
	Search string
	Sort   string
	Order  string
	Limit  int
	Offset int
}

// VoteResult reports the recipe's counters after a vote together with
// the change the vote caused. Clients apply the deltas to whatever
// counts they already hold.
type VoteResult struct {
	Upvotes       int `json:"upvotes"`
	Downvotes     int `json:"downvotes"`
	UpvoteDelta   int `json:"upvote_delta"`
	DownvoteDelta int `json:"downvote_delta"`
}

// RecipeService owns recipe persistence, listing, voting and the
// popular-recipes cache. The redis client is optional; with a nil
// client every read goes to the database.
type RecipeService struct {
	db    *gorm.DB
	redis *redis.Client
}

func NewRecipeService(db *gorm.DB, redisClient *redis.Client) *RecipeService {
	return &RecipeService{
		db:    db,
		redis: redisClient,
	}
}

// Create stores a new recipe owned by userID.
func (s *RecipeService) Create(recipe *models.Recipe, userID uuid.UUID) error {
	recipe.UserID = userID
	if err := s.db.Create(recipe).Error; err != nil {
		return fmt.Errorf("creating recipe: %w", err)
	}
	return nil
}

// Get fetches one recipe and counts the view.
func (s *RecipeService) Get(id uuid.UUID) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := s.db.First(&recipe, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("fetching recipe: %w", err)
	}

	if err := s.db.Model(&recipe).UpdateColumn("views", gorm.Expr("views + 1")).Error; err != nil {
		log.Printf("Failed to count view for recipe %s: %v", id, err)
	} else {
		recipe.Views++
	}
	return &recipe, nil
}

// List returns a page of recipes plus the total count matching the
// search. Popular listings (sort=upvotes, order=desc) are served from
// the cache when one is configured.
func (s *RecipeService) List(ctx context.Context, params ListParams) ([]models.Recipe, int64, error) {
	if params.Limit <= 0 || params.Limit > 100 {
		params.Limit = 20
	}

	if s.cacheable(params) {
		if recipes, total, ok := s.popularFromCache(ctx, params.Limit); ok {
			return recipes, total, nil
		}
	}

	query := s.db.Model(&models.Recipe{})
	if params.Search != "" {
		pattern := "%" + params.Search + "%"
		query = query.Where("title LIKE ? OR ingredients LIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("counting recipes: %w", err)
	}

	order := "created_at DESC"
	if params.Sort == "upvotes" {
		order = "upvotes DESC"
		if params.Order == "asc" {
			order = "upvotes ASC"
		}
	}

	var recipes []models.Recipe
	err := query.Order(order).Limit(params.Limit).Offset(params.Offset).Find(&recipes).Error
	if err != nil {
		return nil, 0, fmt.Errorf("listing recipes: %w", err)
	}

	if s.cacheable(params) {
		s.storePopular(ctx, recipes, total)
	}
	return recipes, total, nil
}

// ByUser returns every recipe a user has added, newest first.
func (s *RecipeService) ByUser(userID uuid.UUID) ([]models.Recipe, int64, error) {
	var recipes []models.Recipe
	err := s.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&recipes).Error
	if err != nil {
		return nil, 0, fmt.Errorf("listing user recipes: %w", err)
	}
	return recipes, int64(len(recipes)), nil
}

// Update applies changes to a recipe the user owns.
func (s *RecipeService) Update(ctx context.Context, id, userID uuid.UUID, changes *models.Recipe) (*models.Recipe, error) {
	recipe, err := s.owned(id, userID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"title":            changes.Title,
		"description":      changes.Description,
		"preparation_time": changes.PreparationTime,
		"ingredients":      changes.Ingredients,
		"directions":       changes.Directions,
	}
	if changes.RecipeImage != "" {
		updates["recipe_image"] = changes.RecipeImage
	}
	if err := s.db.Model(recipe).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("updating recipe: %w", err)
	}

	s.invalidatePopular(ctx)
	return recipe, nil
}

// Delete removes a recipe the user owns, along with its reviews,
// votes and favorites.
func (s *RecipeService) Delete(ctx context.Context, id, userID uuid.UUID) error {
	if _, err := s.owned(id, userID); err != nil {
		return err
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("recipe_id = ?", id).Delete(&models.Review{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", id).Delete(&models.Vote{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", id).Delete(&models.Favorite{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Recipe{}, "id = ?", id).Error
	})
	if err != nil {
		return fmt.Errorf("deleting recipe: %w", err)
	}

	s.invalidatePopular(ctx)
	return nil
}

// Vote records an up or down vote. Repeating a vote removes it and
// voting the other way switches it; the returned deltas describe the
// net effect on the recipe's counters.
func (s *RecipeService) Vote(ctx context.Context, recipeID, userID uuid.UUID, kind string) (*VoteResult, error) {
	if kind != models.VoteUp && kind != models.VoteDown {
		return nil, fmt.Errorf("unknown vote kind %q", kind)
	}

	var result VoteResult
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var recipe models.Recipe
		if err := tx.First(&recipe, "id = ?", recipeID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		var existing models.Vote
		err := tx.Where("recipe_id = ? AND user_id = ?", recipeID, userID).First(&existing).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			vote := models.Vote{RecipeID: recipeID, UserID: userID, Kind: kind}
			if err := tx.Create(&vote).Error; err != nil {
				return err
			}
			result = voteDeltas(kind, 1, 0)
		case err != nil:
			return err
		case existing.Kind == kind:
			if err := tx.Delete(&existing).Error; err != nil {
				return err
			}
			result = voteDeltas(kind, -1, 0)
		default:
			if err := tx.Model(&existing).Update("kind", kind).Error; err != nil {
				return err
			}
			result = voteDeltas(kind, 1, -1)
		}

		updates := map[string]interface{}{
			"upvotes":   gorm.Expr("upvotes + ?", result.UpvoteDelta),
			"downvotes": gorm.Expr("downvotes + ?", result.DownvoteDelta),
		}
		if err := tx.Model(&recipe).Updates(updates).Error; err != nil {
			return err
		}

		result.Upvotes = recipe.Upvotes + result.UpvoteDelta
		result.Downvotes = recipe.Downvotes + result.DownvoteDelta
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("voting on recipe: %w", err)
	}

	s.invalidatePopular(ctx)
	return &result, nil
}

func voteDeltas(kind string, same, other int) VoteResult {
	if kind == models.VoteUp {
		return VoteResult{UpvoteDelta: same, DownvoteDelta: other}
	}
	return VoteResult{UpvoteDelta: other, DownvoteDelta: same}
}

func (s *RecipeService) owned(id, userID uuid.UUID) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := s.db.First(&recipe, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("fetching recipe: %w", err)
	}
	if recipe.UserID != userID {
		return nil, ErrNotOwner
	}
	return &recipe, nil
}

func (s *RecipeService) cacheable(params ListParams) bool {
	return s.redis != nil &&
		params.Search == "" &&
		params.Sort == "upvotes" &&
		params.Order != "asc" &&
		params.Offset == 0
}

type popularPage struct {
	Recipes []models.Recipe `json:"recipes"`
	Total   int64           `json:"total"`
}

func (s *RecipeService) popularFromCache(ctx context.Context, limit int) ([]models.Recipe, int64, bool) {
	data, err := s.redis.Get(ctx, popularCacheKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Printf("Failed to read popular recipes cache: %v", err)
		}
		return nil, 0, false
	}

	var page popularPage
	if err := json.Unmarshal(data, &page); err != nil {
		log.Printf("Failed to decode popular recipes cache: %v", err)
		return nil, 0, false
	}
	if len(page.Recipes) < limit && page.Total > int64(len(page.Recipes)) {
		return nil, 0, false
	}
	if len(page.Recipes) > limit {
		page.Recipes = page.Recipes[:limit]
	}
	return page.Recipes, page.Total, true
}

func (s *RecipeService) storePopular(ctx context.Context, recipes []models.Recipe, total int64) {
	data, err := json.Marshal(popularPage{Recipes: recipes, Total: total})
	if err != nil {
		return
	}
	if err := s.redis.Set(ctx, popularCacheKey, data, popularCacheTTL).Err(); err != nil {
		log.Printf("Failed to store popular recipes cache: %v", err)
	}
}

func (s *RecipeService) invalidatePopular(ctx context.Context) {
	if s.redis == nil {
		return
	}
	if err := s.redis.Del(ctx, popularCacheKey).Err(); err != nil {
		log.Printf("Failed to invalidate popular recipes cache: %v", err)
	}
}
