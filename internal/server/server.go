package server

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"

	"todo-manager/internal/auth"
	"todo-manager/internal/config"
	"todo-manager/internal/services"
)

// Server exposes the actor-scoped task API over HTTP
type Server struct {
	cfg      *config.Config
	tasks    services.TaskService
	resolver auth.Resolver
	logger   *log.Logger
	mux      *http.ServeMux
}

// New creates a server with all task routes registered
func New(cfg *config.Config, tasks services.TaskService, resolver auth.Resolver, logger *log.Logger) *Server {
	s := &Server{
		cfg:      cfg,
		tasks:    tasks,
		resolver: resolver,
		logger:   logger,
		mux:      http.NewServeMux(),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mux.HandleFunc("GET /healthz", s.handleHealth)

	s.mux.Handle("GET /tasks", s.requireAuth(s.handleListTasks))
	s.mux.Handle("POST /tasks", s.requireAuth(s.handleCreateTask))
	s.mux.Handle("GET /tasks/{id}", s.requireAuth(s.handleGetTask))
	s.mux.Handle("PUT /tasks/{id}", s.requireAuth(s.handleUpdateTask))
	s.mux.Handle("DELETE /tasks/{id}", s.requireAuth(s.handleDeleteTask))
	s.mux.Handle("PATCH /tasks/{id}/toggle-complete", s.requireAuth(s.handleToggleTask))
}

func (s *Server) requireAuth(h http.HandlerFunc) http.Handler {
	return auth.RequireAPI(s.resolver, h)
}

// Handler returns the full middleware chain for the server
func (s *Server) Handler() http.Handler {
	return s.withRequestID(s.withRequestLog(s.mux))
}

// withRequestID tags every request and response with an X-Request-ID
func (s *Server) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", requestID)
		next.ServeHTTP(w, r)
	})
}

func (s *Server) withRequestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		if s.logger != nil {
			s.logger.Printf("%s %s %s (%s)", r.Method, r.URL.Path, w.Header().Get("X-Request-ID"), time.Since(start).Round(time.Millisecond))
		}
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"status": "ok"})
}

// ListenAndServe runs the server until the context is cancelled, then shuts
// down gracefully within the configured timeout.
func (s *Server) ListenAndServe(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:         s.cfg.Server.Addr,
		Handler:      s.Handler(),
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpServer.ListenAndServe()
	}()

	if s.logger != nil {
		s.logger.Printf("listening on %s", s.cfg.Server.Addr)
	}

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	}
}
