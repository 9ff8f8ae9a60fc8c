package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tastebud-app/tastebud/internal/service"
)

// AuthHandler exposes signup and signin.
type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) RegisterRoutes(router *gin.RouterGroup) {
	users := router.Group("/users")
	{
		users.POST("/signup", h.SignUp)
		users.POST("/signin", h.SignIn)
	}
}

type signupRequest struct {
	FullName string `json:"full_name" binding:"required"`
	Username string `json:"username" binding:"required,min=3,max=32"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

func (h *AuthHandler) SignUp(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeFail(c, http.StatusBadRequest, "invalid signup payload: "+err.Error())
		return
	}

	user, token, err := h.authService.Register(req.FullName, req.Username, req.Email, req.Password)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	writeSuccess(c, http.StatusCreated, "account created", gin.H{
		"user": toAuthenticatedUser(user, token),
	})
}

type signinRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) SignIn(c *gin.Context) {
	var req signinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeFail(c, http.StatusBadRequest, "invalid signin payload: "+err.Error())
		return
	}

	user, token, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	writeSuccess(c, http.StatusOK, "signed in", gin.H{
		"user": toAuthenticatedUser(user, token),
	})
}
