package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tastebud-app/tastebud/internal/service"
)

// Every response carries the same envelope: a status of Success, Fail
// or Error, a human-readable message and an optional data payload.
// Fail means the request was rejected; Error means the server broke.

func writeSuccess(c *gin.Context, code int, message string, data gin.H) {
	c.JSON(code, gin.H{
		"status":  "Success",
		"message": message,
		"data":    data,
	})
}

func writeFail(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{
		"status":  "Fail",
		"message": message,
	})
}

func writeError(c *gin.Context, err error) {
	log.Printf("Internal error handling %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	c.JSON(http.StatusInternalServerError, gin.H{
		"status":  "Error",
		"message": "something went wrong",
	})
}

// writeServiceError translates the service sentinels into envelope
// failures and everything else into a 500.
func writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		writeFail(c, http.StatusNotFound, "not found")
	case errors.Is(err, service.ErrNotOwner):
		writeFail(c, http.StatusForbidden, "you do not own this resource")
	case errors.Is(err, service.ErrDuplicateFavorite):
		writeFail(c, http.StatusConflict, "recipe is already a favorite")
	case errors.Is(err, service.ErrUserExists):
		writeFail(c, http.StatusConflict, "an account with that email or username already exists")
	case errors.Is(err, service.ErrInvalidCredentials):
		writeFail(c, http.StatusUnauthorized, "invalid email or password")
	default:
		writeError(c, err)
	}
}
