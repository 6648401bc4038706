package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/umputun/newswire/pkg/domain"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store
//go:generate moq -out mocks/scheduler.go -pkg mocks -skip-ensure -fmt goimports . Scheduler

// Server represents HTTP server instance
type Server struct {
	config    ConfigProvider
	store     Store
	scheduler Scheduler
	events    http.Handler
	version   string
	debug     bool

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// Store provides read access to sources, items and their statistics
type Store interface {
	GetRecentItems(ctx context.Context, limit int, minScore float64) ([]domain.ItemWithSource, error)
	GetSources(ctx context.Context) ([]domain.Source, error)
	GetFeedStats(ctx context.Context) (domain.FeedStats, error)
}

// Scheduler interface for on-demand polls and stats
type Scheduler interface {
	PollNow(ctx context.Context) *domain.PollCycleResult
	Stats() domain.SchedulerStats
	ResetStats()
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
	GetBaseURL() string
}

// New initializes a new server instance. events serves the live event stream, it may be nil.
func New(cfg ConfigProvider, store Store, scheduler Scheduler, events http.Handler, version string, debug bool) *Server {
	s := &Server{
		config:    cfg,
		store:     store,
		scheduler: scheduler,
		events:    events,
		version:   version,
		debug:     debug,
		router:    routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	lgr.Printf("[INFO] starting server on %s", listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:              listen,
		Handler:           s.router,
		ReadHeaderTimeout: timeout,
		ReadTimeout:       timeout,
		WriteTimeout:      timeout,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		lgr.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			lgr.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("newswire", "umputun", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(1024 * 1024)) // 1MB
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)
		r.HandleFunc("GET /scheduler/stats", s.schedulerStatsHandler)
		r.HandleFunc("POST /scheduler/poll", s.pollHandler)
		r.HandleFunc("POST /scheduler/stats/reset", s.resetStatsHandler)
		r.HandleFunc("GET /feeds/stats", s.feedStatsHandler)
		if s.events != nil {
			r.Handle("GET /events", s.events)
		}
	})

	s.router.HandleFunc("GET /rss", s.rssHandler)
	s.router.HandleFunc("GET /opml", s.opmlHandler)
}

// renderJSON sends JSON response
func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			lgr.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// renderError sends error response as JSON
func renderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	renderJSON(w, r, code, rest.JSON{"error": errMsg})
}
