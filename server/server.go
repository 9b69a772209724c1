package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/askeland/newswatch/pkg/db"
	"github.com/askeland/newswatch/pkg/domain"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/database.go -pkg mocks -skip-ensure -fmt goimports . Database
//go:generate moq -out mocks/scheduler.go -pkg mocks -skip-ensure -fmt goimports . Scheduler

// Server represents HTTP server instance
type Server struct {
	config    ConfigProvider
	db        Database
	scheduler Scheduler
	version   string
	debug     bool

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// Database interface for server operations
type Database interface {
	GetStats(ctx context.Context) (*db.Stats, error)
	GetArticles(ctx context.Context, q db.ArticlesQuery) ([]*domain.Article, error)
	GetArticle(ctx context.Context, url string) (*domain.Article, error)
	GetRejected(ctx context.Context, limit int) ([]*domain.RejectedArticle, error)
	GetRecentRuns(ctx context.Context, limit int) ([]domain.PipelineRun, error)
	GetCategories(ctx context.Context) ([]db.CountRow, error)
}

// Scheduler interface for on-demand operations
type Scheduler interface {
	RunNow(ctx context.Context) error
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
}

// New initializes a new server instance
func New(cfg ConfigProvider, database Database, scheduler Scheduler, version string, debug bool) *Server {
	s := &Server{
		config:    cfg,
		db:        database,
		scheduler: scheduler,
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
	log.Printf("[INFO] starting server on %s", listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:         listen,
		Handler:      s.router,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		log.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

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
	s.router.Use(rest.AppInfo("newswatch", "askeland", s.version))
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
		r.HandleFunc("GET /stats", s.statsHandler)
		r.HandleFunc("GET /articles", s.articlesHandler)
		r.HandleFunc("GET /article", s.articleHandler)
		r.HandleFunc("GET /rejected", s.rejectedHandler)
		r.HandleFunc("GET /runs", s.runsHandler)
		r.HandleFunc("GET /categories", s.categoriesHandler)
		r.HandleFunc("POST /run", s.triggerRunHandler)
	})
}

// statusHandler returns server status
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]interface{}{
		"status":  "ok",
		"version": s.version,
		"time":    time.Now().UTC(),
	}
	RenderJSON(w, r, http.StatusOK, status)
}

// statsHandler returns aggregate collection statistics
func (s *Server) statsHandler(w http.ResponseWriter, r *http.Request) {
	stats, err := s.db.GetStats(r.Context())
	if err != nil {
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}
	RenderJSON(w, r, http.StatusOK, stats)
}

// articlesHandler lists processed articles with optional filters:
// category, language, ai_only, limit
func (s *Server) articlesHandler(w http.ResponseWriter, r *http.Request) {
	q := db.ArticlesQuery{
		Category: r.URL.Query().Get("category"),
		Language: r.URL.Query().Get("language"),
		AIOnly:   r.URL.Query().Get("ai_only") == "true",
		Limit:    queryInt(r, "limit", 50),
	}

	articles, err := s.db.GetArticles(r.Context(), q)
	if err != nil {
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}
	RenderJSON(w, r, http.StatusOK, map[string]interface{}{
		"articles": articles,
		"count":    len(articles),
	})
}

// articleHandler returns a single article by its url query parameter
func (s *Server) articleHandler(w http.ResponseWriter, r *http.Request) {
	url := r.URL.Query().Get("url")
	if url == "" {
		RenderError(w, r, fmt.Errorf("url parameter is required"), http.StatusBadRequest)
		return
	}

	article, err := s.db.GetArticle(r.Context(), url)
	if err != nil {
		RenderError(w, r, fmt.Errorf("article not found"), http.StatusNotFound)
		return
	}
	RenderJSON(w, r, http.StatusOK, article)
}

// rejectedHandler lists recently rejected articles with their reasons
func (s *Server) rejectedHandler(w http.ResponseWriter, r *http.Request) {
	rejected, err := s.db.GetRejected(r.Context(), queryInt(r, "limit", 50))
	if err != nil {
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}
	RenderJSON(w, r, http.StatusOK, map[string]interface{}{
		"rejected": rejected,
		"count":    len(rejected),
	})
}

// runsHandler lists recent pipeline runs, newest first
func (s *Server) runsHandler(w http.ResponseWriter, r *http.Request) {
	runs, err := s.db.GetRecentRuns(r.Context(), queryInt(r, "limit", 20))
	if err != nil {
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}
	RenderJSON(w, r, http.StatusOK, map[string]interface{}{
		"runs":  runs,
		"count": len(runs),
	})
}

// categoriesHandler returns domain categories with article counts
func (s *Server) categoriesHandler(w http.ResponseWriter, r *http.Request) {
	categories, err := s.db.GetCategories(r.Context())
	if err != nil {
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}
	RenderJSON(w, r, http.StatusOK, map[string]interface{}{"categories": categories})
}

// triggerRunHandler starts a batch in the background, 409 if one is running
func (s *Server) triggerRunHandler(w http.ResponseWriter, r *http.Request) {
	// the batch must outlive this request
	if err := s.scheduler.RunNow(context.WithoutCancel(r.Context())); err != nil {
		RenderError(w, r, err, http.StatusConflict)
		return
	}
	RenderJSON(w, r, http.StatusAccepted, map[string]string{"status": "started"})
}

// queryInt parses an integer query parameter, falling back to def
func queryInt(r *http.Request, name string, def int) int {
	v := r.URL.Query().Get(name)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return def
	}
	return n
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

// RenderError sends error response as JSON
func RenderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	RenderJSON(w, r, code, map[string]string{"error": errMsg})
}
