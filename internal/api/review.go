package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tastebud-app/tastebud/internal/middleware"
	"github.com/tastebud-app/tastebud/internal/service"
)

// ReviewHandler exposes paginated reviews nested under recipes.
type ReviewHandler struct {
	reviewService *service.ReviewService
	authService   *service.AuthService
	rateLimiter   *middleware.RateLimiter
}

func NewReviewHandler(
	reviewService *service.ReviewService,
	authService *service.AuthService,
	rateLimiter *middleware.RateLimiter,
) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
		authService:   authService,
		rateLimiter:   rateLimiter,
	}
}

func (h *ReviewHandler) RegisterRoutes(router *gin.RouterGroup) {
	recipes := router.Group("/recipes")
	auth := middleware.AuthMiddleware(h.authService)
	{
		recipes.GET("/:id/reviews", h.ListReviews)
		recipes.POST("/:id/reviews", auth, h.rateLimiter.Middleware(), h.PostReview)
		recipes.DELETE("/:id/reviews/:reviewID", auth, h.DeleteReview)
	}
}

// ListReviews returns one page of a recipe's reviews, newest first,
// plus the recipe's total review count so clients can tell when they
// have them all.
func (h *ReviewHandler) ListReviews(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	limit := intQuery(c, "limit", 5)
	offset := intQuery(c, "offset", 0)

	reviews, total, err := h.reviewService.List(id, limit, offset)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	writeSuccess(c, http.StatusOK, "reviews fetched", gin.H{
		"reviews":       toReviewResponses(reviews),
		"reviews_count": total,
	})
}

type reviewRequest struct {
	Content string `json:"content" binding:"required,max=2000"`
}

func (h *ReviewHandler) PostReview(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req reviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeFail(c, http.StatusBadRequest, "invalid review payload: "+err.Error())
		return
	}

	review, err := h.reviewService.Add(id, currentUserID(c), req.Content)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	writeSuccess(c, http.StatusCreated, "review posted", gin.H{
		"review": toReviewResponse(review),
	})
}

func (h *ReviewHandler) DeleteReview(c *gin.Context) {
	reviewID, ok := pathUUID(c, "reviewID")
	if !ok {
		return
	}

	if err := h.reviewService.Delete(reviewID, currentUserID(c)); err != nil {
		writeServiceError(c, err)
		return
	}

	writeSuccess(c, http.StatusOK, "review deleted", gin.H{"id": reviewID})
}
