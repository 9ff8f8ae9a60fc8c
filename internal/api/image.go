package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tastebud-app/tastebud/internal/middleware"
	"github.com/tastebud-app/tastebud/internal/service"
)

const maxImageSize = 10 << 20 // 10 MB

// ImageHandler accepts multipart image uploads and stores them in S3.
type ImageHandler struct {
	imageService *service.ImageService
	authService  *service.AuthService
}

func NewImageHandler(imageService *service.ImageService, authService *service.AuthService) *ImageHandler {
	return &ImageHandler{
		imageService: imageService,
		authService:  authService,
	}
}

func (h *ImageHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/images", middleware.AuthMiddleware(h.authService), h.Upload)
}

func (h *ImageHandler) Upload(c *gin.Context) {
	if h.imageService == nil {
		writeFail(c, http.StatusServiceUnavailable, "image uploads are not configured")
		return
	}

	header, err := c.FormFile("image")
	if err != nil {
		writeFail(c, http.StatusBadRequest, "missing image file")
		return
	}
	if header.Size > maxImageSize {
		writeFail(c, http.StatusRequestEntityTooLarge, "image exceeds the 10MB limit")
		return
	}

	file, err := header.Open()
	if err != nil {
		writeError(c, err)
		return
	}
	defer func() { _ = file.Close() }()

	url, err := h.imageService.Upload(c.Request.Context(), header.Filename, file)
	if err != nil {
		writeError(c, err)
		return
	}

	writeSuccess(c, http.StatusCreated, "image uploaded", gin.H{"image_url": url})
}
