package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/mealfinder/backend/config"
	"github.com/mealfinder/backend/internal/api"
	"github.com/mealfinder/backend/internal/middleware"
)

// Server is the HTTP front of the application.
type Server struct {
	router *gin.Engine
	http   *http.Server
}

// New assembles the gin engine, middleware and routes.
func New(cfg *config.Config, db *gorm.DB) *Server {
	router := gin.Default()
	router.Use(middleware.CORS(cfg.CORSOrigins))

	api.RegisterRoutes(router, db, cfg)

	return &Server{
		router: router,
		http: &http.Server{
			Addr:    ":" + cfg.ServerPort,
			Handler: router,
		},
	}
}

// Start blocks serving requests until the listener fails or Shutdown is
// called.
func (s *Server) Start() error {
	log.WithField("addr", s.http.Addr).Info("starting server")
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests with a bounded grace period.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return s.http.Shutdown(ctx)
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}
