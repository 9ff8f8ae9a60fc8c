package server

import (
	"context"
	"log"
	"net"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/tastebud-app/tastebud/config"
	"github.com/tastebud-app/tastebud/internal/api"
	"github.com/tastebud-app/tastebud/internal/middleware"
)

// Server wraps the HTTP server and the gin router it serves.
type Server struct {
	router *gin.Engine
	http   *http.Server
}

// New builds the router, mounts the API and prepares the listener.
func New(cfg *config.Config, db *gorm.DB, opts api.Options, allowedOrigins []string) *Server {
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()
	router.Use(middleware.CORS(allowedOrigins))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api.SetupAPI(router, db, cfg.JWTSecret, opts)

	return &Server{
		router: router,
		http: &http.Server{
			Addr:    net.JoinHostPort(cfg.ServerHost, cfg.ServerPort),
			Handler: router,
		},
	}
}

// Start serves until the listener fails or Shutdown is called.
func (s *Server) Start() error {
	log.Printf("Listening on %s", s.http.Addr)
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests and stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
