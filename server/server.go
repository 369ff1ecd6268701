package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/umputun/iotd/pkg/domain"
)

//go:generate moq -out mocks/supervisor.go -pkg mocks -skip-ensure -fmt goimports . Supervisor

// Server represents the status HTTP server
type Server struct {
	supervisor Supervisor
	listen     string
	version    string
	debug      bool

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// Supervisor reports update state and accepts on-demand updates
type Supervisor interface {
	Status() domain.Status
	Trigger() bool
}

// Config for the server
type Config struct {
	Listen  string
	Version string
	Debug   bool
}

// New initializes a new server instance
func New(supervisor Supervisor, cfg Config) *Server {
	s := &Server{
		supervisor: supervisor,
		listen:     cfg.Listen,
		version:    cfg.Version,
		debug:      cfg.Debug,
		router:     routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	log.Printf("[INFO] starting status server on %s", s.listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:              s.listen,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       30 * time.Second,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		log.Printf("[INFO] shutting down status server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		s.lock.Lock()
		defer s.lock.Unlock()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("iotd", "umputun", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(10))
	s.router.Use(rest.SizeLimit(1024))
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)
		r.HandleFunc("POST /update", s.updateHandler)
	})
}

// statusHandler returns the supervisor state
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	resp := struct {
		domain.Status
		Version string    `json:"version"`
		Time    time.Time `json:"time"`
	}{
		Status:  s.supervisor.Status(),
		Version: s.version,
		Time:    time.Now().UTC(),
	}
	RenderJSON(w, r, http.StatusOK, resp)
}

// updateHandler wakes the supervisor; the update itself runs in the supervisor loop
func (s *Server) updateHandler(w http.ResponseWriter, r *http.Request) {
	if !s.supervisor.Trigger() {
		RenderJSON(w, r, http.StatusAccepted, map[string]any{"triggered": false, "reason": "update already pending"})
		return
	}
	RenderJSON(w, r, http.StatusAccepted, map[string]any{"triggered": true})
}

// RenderJSON sends JSON response
func RenderJSON(w http.ResponseWriter, _ *http.Request, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}
