package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/tastebud-app/tastebud/internal/middleware"
	"github.com/tastebud-app/tastebud/internal/service"
)

// UserHandler exposes profiles and per-user recipe listings.
type UserHandler struct {
	userService     *service.UserService
	recipeService   *service.RecipeService
	favoriteService *service.FavoriteService
	authService     *service.AuthService
}

func NewUserHandler(
	userService *service.UserService,
	recipeService *service.RecipeService,
	favoriteService *service.FavoriteService,
	authService *service.AuthService,
) *UserHandler {
	return &UserHandler{
		userService:     userService,
		recipeService:   recipeService,
		favoriteService: favoriteService,
		authService:     authService,
	}
}

func (h *UserHandler) RegisterRoutes(router *gin.RouterGroup) {
	users := router.Group("/users")
	auth := middleware.AuthMiddleware(h.authService)
	{
		users.GET("/:id", auth, h.GetProfile)
		users.PUT("/:id", auth, h.UpdateProfile)
		users.GET("/:id/recipes", auth, h.ListRecipes)
		users.GET("/:id/favorites", auth, h.ListFavorites)
	}
}

func (h *UserHandler) GetProfile(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	user, err := h.userService.Get(id)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	writeSuccess(c, http.StatusOK, "profile fetched", gin.H{"user": user})
}

type profileRequest struct {
	FullName  string `json:"full_name"`
	About     string `json:"about"`
	UserImage string `json:"user_image"`
}

// UpdateProfile edits a profile. Users may only edit their own.
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	if id != currentUserID(c) {
		writeFail(c, http.StatusForbidden, "you may only edit your own profile")
		return
	}

	var req profileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeFail(c, http.StatusBadRequest, "invalid profile payload: "+err.Error())
		return
	}

	user, err := h.userService.Update(id, service.ProfileUpdate{
		FullName:  req.FullName,
		About:     req.About,
		UserImage: req.UserImage,
	})
	if err != nil {
		writeServiceError(c, err)
		return
	}

	writeSuccess(c, http.StatusOK, "profile updated", gin.H{"user": user})
}

func (h *UserHandler) ListRecipes(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	recipes, total, err := h.recipeService.ByUser(id)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	writeSuccess(c, http.StatusOK, "recipes fetched", gin.H{
		"recipes":     recipes,
		"total_count": total,
	})
}

func (h *UserHandler) ListFavorites(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	recipes, total, err := h.favoriteService.ListByUser(id)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	writeSuccess(c, http.StatusOK, "favorites fetched", gin.H{
		"recipes":     recipes,
		"total_count": total,
	})
}

// pathUUID parses a UUID path parameter, writing the failure itself.
func pathUUID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		writeFail(c, http.StatusBadRequest, "invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}

// currentUserID returns the authenticated user's id. It is only valid
// behind AuthMiddleware.
func currentUserID(c *gin.Context) uuid.UUID {
	return c.MustGet("user_id").(uuid.UUID)
}
