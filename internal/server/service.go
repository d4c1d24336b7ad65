// Package server provides the HTTP API service for TeamFlow.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/teamflow/pms/internal/auth"
	"github.com/teamflow/pms/internal/config"
	"github.com/teamflow/pms/internal/insight"
	"github.com/teamflow/pms/internal/store"
)

// DefaultHTTPTimeout is the per-request timeout.
const DefaultHTTPTimeout = 30 * time.Second

// Service wires the store, auth and insight components into an HTTP
// server.
type Service struct {
	version string
	config  *config.Config

	store     *store.Store
	responder *insight.Responder
	tokens    *auth.Manager

	router    *chi.Mux
	server    *http.Server
	startTime time.Time
}

// NewService creates the API service around an existing store.
func NewService(version string, cfg *config.Config, st *store.Store) *Service {
	svc := &Service{
		version:   version,
		config:    cfg,
		store:     st,
		responder: insight.NewResponder(st),
		tokens:    auth.NewManager(cfg.TokenSecret, cfg.TokenTTL),
		router:    chi.NewRouter(),
		startTime: time.Now(),
	}
	svc.setupMiddleware()
	svc.setupRoutes()
	return svc
}

// setupMiddleware configures HTTP middleware.
func (s *Service) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Timeout(DefaultHTTPTimeout))
	s.router.Use(SecurityHeaders(s.config.AllowedOrigins))
	s.router.Use(MaxBodySize(s.config.MaxBodyBytes))
}

// setupRoutes configures HTTP routes.
func (s *Service) setupRoutes() {
	s.router.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", s.handleHealth)
		r.Post("/auth/login", s.handleLogin)

		// Everything below requires a valid bearer token.
		r.Group(func(r chi.Router) {
			r.Use(s.requireUser)

			r.Get("/auth/me", s.handleMe)

			r.Route("/projects", func(r chi.Router) {
				r.Get("/", s.handleListProjects)
				r.Route("/{projectID}", func(r chi.Router) {
					r.Get("/", s.handleGetProject)

					r.Get("/tasks", s.handleListTasks)
					r.Post("/tasks", s.handleCreateTask)
					r.Put("/tasks/{taskID}", s.handleUpdateTask)
					r.Delete("/tasks/{taskID}", s.handleDeleteTask)

					r.Get("/requirements", s.handleListRequirements)
					r.Post("/requirements", s.handleCreateRequirement)
					r.Put("/requirements/{requirementID}", s.handleUpdateRequirement)

					r.Get("/sprints", s.handleListSprints)
					r.Post("/sprints", s.handleCreateSprint)

					r.Get("/backlog-items", s.handleListBacklogItems)
					r.Post("/backlog-items", s.handleCreateBacklogItem)

					r.Get("/risk", s.handleGetRisk)
					r.Post("/risk/refresh", s.handleRefreshRisk)

					r.Get("/quality", s.handleGetQuality)

					r.Get("/notifications", s.handleListNotifications)
					r.Post("/notifications/{notificationID}/read", s.handleMarkNotificationRead)
				})
			})

			r.Get("/budgets", s.handleGetBudgets)
			r.Get("/executive", s.handleGetExecutive)

			r.Route("/integrations", func(r chi.Router) {
				r.Get("/", s.handleListIntegrations)
				r.Get("/logs", s.handleListIntegrationLogs)
				r.Patch("/{integrationID}", s.handleUpdateIntegration)
			})

			r.Post("/ai/chat", s.handleChat)
			r.Post("/ai/reports", s.handleReport)
		})
	})
}

// Start begins serving HTTP requests. It blocks until the server stops.
func (s *Service) Start() error {
	addr := fmt.Sprintf(":%d", s.config.Port)
	s.server = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.Info().Str("addr", addr).Msg("API server listening")
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

// Shutdown gracefully stops the HTTP server.
func (s *Service) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	log.Info().Msg("Shutting down API server")
	return s.server.Shutdown(ctx)
}
