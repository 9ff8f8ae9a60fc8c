package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tastebud-app/tastebud/internal/middleware"
	"github.com/tastebud-app/tastebud/internal/models"
	"github.com/tastebud-app/tastebud/internal/service"
)

// RecipeHandler exposes the recipe catalog, CRUD, voting and
// favoriting.
type RecipeHandler struct {
	recipeService   *service.RecipeService
	favoriteService *service.FavoriteService
	authService     *service.AuthService
	rateLimiter     *middleware.RateLimiter
}

func NewRecipeHandler(
	recipeService *service.RecipeService,
	favoriteService *service.FavoriteService,
	authService *service.AuthService,
	rateLimiter *middleware.RateLimiter,
) *RecipeHandler {
	return &RecipeHandler{
		recipeService:   recipeService,
		favoriteService: favoriteService,
		authService:     authService,
		rateLimiter:     rateLimiter,
	}
}

func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	recipes := router.Group("/recipes")
	auth := middleware.AuthMiddleware(h.authService)
	limited := h.rateLimiter.Middleware()
	{
		recipes.GET("", h.ListRecipes)
		recipes.GET("/:id", h.GetRecipe)
		recipes.POST("", auth, limited, h.CreateRecipe)
		recipes.PUT("/:id", auth, limited, h.UpdateRecipe)
		recipes.DELETE("/:id", auth, h.DeleteRecipe)
		recipes.POST("/:id/votes", auth, limited, h.Vote)
		recipes.POST("/:id/favorites", auth, limited, h.FavoriteRecipe)
		recipes.DELETE("/:id/favorites", auth, h.UnfavoriteRecipe)
	}
}

func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	params := service.ListParams{
		Search: c.Query("search"),
		Sort:   c.Query("sort"),
		Order:  c.Query("order"),
		Limit:  intQuery(c, "limit", 20),
		Offset: intQuery(c, "offset", 0),
	}

	recipes, total, err := h.recipeService.List(c.Request.Context(), params)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	writeSuccess(c, http.StatusOK, "recipes fetched", gin.H{
		"recipes":     recipes,
		"total_count": total,
	})
}

func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	recipe, err := h.recipeService.Get(id)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	writeSuccess(c, http.StatusOK, "recipe fetched", gin.H{"recipe": recipe})
}

type recipeRequest struct {
	Title           string `json:"title" binding:"required"`
	Description     string `json:"description"`
	PreparationTime int    `json:"preparation_time" binding:"min=0"`
	Ingredients     string `json:"ingredients" binding:"required"`
	Directions      string `json:"directions" binding:"required"`
	RecipeImage     string `json:"recipe_image"`
}

func (r *recipeRequest) toModel() *models.Recipe {
	return &models.Recipe{
		Title:           r.Title,
		Description:     r.Description,
		PreparationTime: r.PreparationTime,
		Ingredients:     r.Ingredients,
		Directions:      r.Directions,
		RecipeImage:     r.RecipeImage,
	}
}

func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	var req recipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeFail(c, http.StatusBadRequest, "invalid recipe payload: "+err.Error())
		return
	}

	recipe := req.toModel()
	if err := h.recipeService.Create(recipe, currentUserID(c)); err != nil {
		writeServiceError(c, err)
		return
	}

	writeSuccess(c, http.StatusCreated, "recipe created", gin.H{"recipe": recipe})
}

func (h *RecipeHandler) UpdateRecipe(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req recipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeFail(c, http.StatusBadRequest, "invalid recipe payload: "+err.Error())
		return
	}

	recipe, err := h.recipeService.Update(c.Request.Context(), id, currentUserID(c), req.toModel())
	if err != nil {
		writeServiceError(c, err)
		return
	}

	writeSuccess(c, http.StatusOK, "recipe updated", gin.H{"recipe": recipe})
}

func (h *RecipeHandler) DeleteRecipe(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	if err := h.recipeService.Delete(c.Request.Context(), id, currentUserID(c)); err != nil {
		writeServiceError(c, err)
		return
	}

	writeSuccess(c, http.StatusOK, "recipe deleted", gin.H{"id": id})
}

type voteRequest struct {
	Kind string `json:"kind" binding:"required,oneof=up down"`
}

// Vote applies an up or down vote and reports the deltas it caused so
// clients can adjust counts they already hold.
func (h *RecipeHandler) Vote(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req voteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeFail(c, http.StatusBadRequest, "invalid vote payload: "+err.Error())
		return
	}

	result, err := h.recipeService.Vote(c.Request.Context(), id, currentUserID(c), req.Kind)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	writeSuccess(c, http.StatusOK, "vote recorded", gin.H{
		"upvotes":        result.Upvotes,
		"downvotes":      result.Downvotes,
		"upvote_delta":   result.UpvoteDelta,
		"downvote_delta": result.DownvoteDelta,
	})
}

func (h *RecipeHandler) FavoriteRecipe(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	if err := h.favoriteService.Add(id, currentUserID(c)); err != nil {
		writeServiceError(c, err)
		return
	}

	writeSuccess(c, http.StatusCreated, "recipe favorited", gin.H{"recipe_id": id})
}

func (h *RecipeHandler) UnfavoriteRecipe(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	if err := h.favoriteService.Remove(id, currentUserID(c)); err != nil {
		writeServiceError(c, err)
		return
	}

	writeSuccess(c, http.StatusOK, "recipe unfavorited", gin.H{"recipe_id": id})
}

func intQuery(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}
