// Package server exposes the matching engine over HTTP for interactive
// front ends. The engine stays pure; this layer validates payloads at the
// trust boundary and stamps run metadata on the report.
package server

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"bank-reconciliation/internal/config"
	"bank-reconciliation/internal/matcher"
)

// Server is the HTTP API server.
type Server struct {
	port   int
	engine *matcher.Engine
	logger *logrus.Logger
	router *gin.Engine
}

// New creates a server wired with middleware and routes.
func New(cfg config.ServerConfig, engine *matcher.Engine, logger *logrus.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)

	s := &Server{
		port:   cfg.Port,
		engine: engine,
		logger: logger,
		router: gin.New(),
	}

	s.router.Use(gin.Recovery(), requestLogger(logger))
	s.routes()

	return s
}

func (s *Server) routes() {
	s.router.GET("/healthz", s.health)

	v1 := s.router.Group("/api/v1")
	v1.POST("/reconcile", s.reconcile)
}

// Handler exposes the router for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run blocks serving HTTP on the configured port.
func (s *Server) Run() error {
	return s.router.Run(fmt.Sprintf(":%d", s.port))
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
