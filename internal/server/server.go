package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ovenly/costbook/backend/config"
	"github.com/ovenly/costbook/backend/pkg/logger"
)

// Server wraps the HTTP server around the configured router.
type Server struct {
	http *http.Server
	log  *logger.Logger
}

// New creates a new server instance
func New(cfg *config.Config, router *gin.Engine, log *logger.Logger) *Server {
	return &Server{
		http: &http.Server{
			Addr:    cfg.ServerHost + ":" + cfg.ServerPort,
			Handler: router,
		},
		log: log,
	}
}

// Start starts the server and blocks until it stops.
func (s *Server) Start() error {
	s.log.Infow("server listening", "addr", s.http.Addr)
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
