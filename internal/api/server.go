// Package api exposes the scan engine over HTTP.
package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/snacktrack-dev/snacktrack/internal/application/services"
	"github.com/snacktrack-dev/snacktrack/internal/domain/repositories"
	"github.com/snacktrack-dev/snacktrack/internal/infrastructure/validation"
)

// Server wires the HTTP routes to the application services.
type Server struct {
	router    *gin.Engine
	scans     *services.ScanService
	profiles  repositories.ProfileRepository
	validator *validation.ProfileValidator
}

// NewServer creates the HTTP server and registers all routes.
func NewServer(scans *services.ScanService, profiles repositories.ProfileRepository, validator *validation.ProfileValidator) *Server {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(RequestLogger(), gin.Recovery())

	s := &Server{
		router:    router,
		scans:     scans,
		profiles:  profiles,
		validator: validator,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.router.GET("/healthz", s.health)

	v1 := s.router.Group("/api/v1")
	v1.POST("/profile", s.createProfile)
	v1.GET("/profile/:id", s.getProfile)
	v1.POST("/scan", s.scan)
	v1.GET("/scans", s.listScans)
	v1.GET("/scans/:id", s.getScan)
}

// Handler returns the underlying handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves HTTP on the given address until the listener fails.
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}
