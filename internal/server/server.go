package server

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Server wraps the HTTP server lifecycle.
type Server struct {
	router *gin.Engine
	http   *http.Server
}

// New creates a new server around the configured router
func New(router *gin.Engine, port string) *Server {
	return &Server{
		router: router,
		http: &http.Server{
			Addr:    ":" + port,
			Handler: router,
		},
	}
}

// Start begins serving requests and blocks until the listener stops
func (s *Server) Start() error {
	log.Printf("Listening on %s", s.http.Addr)
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
