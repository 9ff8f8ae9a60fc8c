package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/tastebud-app/tastebud/config"
	"github.com/tastebud-app/tastebud/internal/middleware"
	"github.com/tastebud-app/tastebud/internal/service"
)

// Options carries the optional collaborators of the API. Both may be
// nil: without Redis listings skip the cache and writes skip rate
// limiting, without S3 image uploads are rejected.
type Options struct {
	Redis *redis.Client
	S3    *config.S3Config
}

// SetupAPI mounts every route group under /api/v1.
func SetupAPI(router *gin.Engine, db *gorm.DB, jwtSecret string, opts Options) {
	v1 := router.Group("/api/v1")
	{
		authService := service.NewAuthService(db, jwtSecret)
		userService := service.NewUserService(db)
		recipeService := service.NewRecipeService(db, opts.Redis)
		reviewService := service.NewReviewService(db)
		favoriteService := service.NewFavoriteService(db)

		var imageService *service.ImageService
		if opts.S3 != nil {
			imageService = service.NewImageService(opts.S3)
		}

		rateLimiter := middleware.NewRateLimiter(opts.Redis, middleware.RateLimitConfig{
			Window:    time.Minute,
			Limit:     30,
			KeyPrefix: "ratelimit:writes",
		})

		NewAuthHandler(authService).RegisterRoutes(v1)
		NewUserHandler(userService, recipeService, favoriteService, authService).RegisterRoutes(v1)
		NewRecipeHandler(recipeService, favoriteService, authService, rateLimiter).RegisterRoutes(v1)
		NewReviewHandler(reviewService, authService, rateLimiter).RegisterRoutes(v1)
		NewImageHandler(imageService, authService).RegisterRoutes(v1)
	}
}
