package rest

import (
	"context"
	"fmt"
	"net/http"

	"domain-market-web/internal/auth"
	"domain-market-web/internal/configs"
	"domain-market-web/internal/core/port"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Server - the REST API server behind the catalog and dashboard pages.
type Server struct {
	httpServer *http.Server
	logger     port.LoggerPort
}

// NewServer builds the router and wires the public and admin route groups.
func NewServer(cfg *configs.Config, catalogHandler *CatalogHandler,
	adminHandler *AdminHandler, sessions *auth.SessionManager,
	baseLogger port.LoggerPort) *Server {

	r := newRouter(cfg, catalogHandler, adminHandler, sessions, baseLogger)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	return &Server{
		httpServer: srv,
		logger:     baseLogger,
	}
}

func newRouter(cfg *configs.Config, catalogHandler *CatalogHandler,
	adminHandler *AdminHandler, sessions *auth.SessionManager,
	baseLogger port.LoggerPort) chi.Router {

	r := chi.NewRouter()

	r.Use(middleware.RealIP, LoggerMiddleware(baseLogger), middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.AllowedOrigin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Session-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	authMiddleware := NewAuthMiddleware(sessions)

	// Public routes.
	r.Route("/api/v1/catalog", func(r chi.Router) {
		r.Get("/", catalogHandler.GetCatalog)
		r.Get("/{slug}", catalogHandler.GetListingBySlug)
	})

	r.Route("/api/v1/admin", func(r chi.Router) {
		// Session lifecycle stays outside the auth middleware: login creates
		// the session and logout only needs the id it is clearing.
		r.Post("/session", adminHandler.Login)
		r.Delete("/session", adminHandler.Logout)

		// Everything else requires a verified session.
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			r.Get("/listings", adminHandler.ListListings)
			r.Post("/listings", adminHandler.CreateListing)
			r.Put("/listings/{id}", adminHandler.UpdateListing)
			r.Delete("/listings/{id}", adminHandler.DeleteListing)
			r.Post("/recalculate-brl", adminHandler.RecalculateBRL)
		})
	})

	return r
}

// Start runs the HTTP server until Stop is called.
func (s *Server) Start() error {
	s.logger.Info("Starting REST API server", port.Fields{"address": s.httpServer.Addr})
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		s.logger.Error("Could not start server", err, nil)
		return fmt.Errorf("could not start server: %w", err)
	}
	return nil
}

// Stop shuts the server down gracefully.
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping REST API server...", nil)
	return s.httpServer.Shutdown(ctx)
}
