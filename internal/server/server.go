// Package server provides the HTTP server.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sanixdarker/gql-jddf/internal/app"
	"github.com/sanixdarker/gql-jddf/internal/server/handlers"
	servermw "github.com/sanixdarker/gql-jddf/internal/server/middleware"
)

// Server represents the HTTP server.
type Server struct {
	app    *app.App
	server *http.Server
	router *chi.Mux
}

// New creates a new Server.
func New(application *app.App) *Server {
	s := &Server{
		app:    application,
		router: chi.NewRouter(),
	}

	s.setupMiddleware()
	s.setupRoutes()

	s.server = &http.Server{
		Addr:         fmt.Sprintf(":%d", application.Config.Port),
		Handler:      s.router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(servermw.SecurityHeaders)
	s.router.Use(servermw.Logger(s.app.Logger))
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Compress(5))

	limiter := servermw.NewRateLimiter(s.app.Config.RateRPS, s.app.Config.RateBurst)
	s.router.Use(limiter.Limit)
}

func (s *Server) setupRoutes() {
	convertHandler := handlers.NewConvertHandler(s.app)
	validateHandler := handlers.NewValidateHandler(s.app)
	mergeHandler := handlers.NewMergeHandler(s.app)

	s.router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	s.router.Post("/api/convert", convertHandler.Convert)
	s.router.Post("/api/detect", convertHandler.DetectFormat)
	s.router.Get("/api/formats", convertHandler.Formats)
	s.router.Post("/api/validate", validateHandler.Validate)
	s.router.Post("/api/merge", mergeHandler.Merge)
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}
