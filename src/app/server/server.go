// Package server provides HTTP server initialization and lifecycle management.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"kioku/src/app/http/handler"
	"kioku/src/app/middleware"
	"kioku/src/core/ports"
	"kioku/src/core/usecase"
	"kioku/src/infra/config"
)

// Deps carries the infrastructure adapters the server wires into services.
// FeedCache may be nil, in which case the feed is recomputed per request.
type Deps struct {
	DocRepo     ports.DocRepository
	NoteRepo    ports.NoteRepository
	YoutubeRepo ports.YoutubeRepository
	UserRepo    ports.UserRepository

	DocFeed     ports.DocKiokuSource
	NoteFeed    ports.NoteKiokuSource
	YoutubeFeed ports.YoutubeKiokuSource

	NotePort    ports.NotePort
	YoutubePort ports.YoutubePort
	Clock       ports.TimePort
	Storage     ports.StoragePort
	FeedCache   ports.FeedCache

	HealthComponents map[string]ports.Repository
}

// Server wraps the HTTP server and its dependencies.
type Server struct {
	cfg    *config.Config
	log    *slog.Logger
	router *gin.Engine
	http   *http.Server

	// Handlers
	healthHandler  *handler.HealthHandler
	docHandler     *handler.DocHandler
	noteHandler    *handler.NoteHandler
	youtubeHandler *handler.YoutubeHandler
	userHandler    *handler.UserHandler
	kiokuHandler   *handler.KiokuHandler
	fileHandler    *handler.FileHandler
	rssHandler     *handler.RSSHandler
}

// New creates a new Server with all dependencies wired up.
func New(cfg *config.Config, log *slog.Logger, deps Deps) *Server {
	// Set Gin mode based on log level
	if cfg.Log.Level == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create router without default middleware
	router := gin.New()

	// Create services
	healthService := usecase.NewHealthService(log, deps.HealthComponents)
	docService := usecase.NewDocService(deps.DocRepo, deps.Clock, log)
	noteService := usecase.NewNoteService(deps.NoteRepo, deps.NotePort, deps.Clock, log)
	youtubeService := usecase.NewYoutubeService(deps.YoutubeRepo, deps.YoutubePort, deps.Clock, log)
	userService := usecase.NewUserService(deps.UserRepo, deps.Clock, log)
	kiokuService := usecase.NewKiokuService(deps.DocFeed, deps.NoteFeed, deps.YoutubeFeed, deps.FeedCache, log)
	systemService := usecase.NewSystemService(deps.Storage, log)

	s := &Server{
		cfg:            cfg,
		log:            log,
		router:         router,
		healthHandler:  handler.NewHealthHandler(healthService),
		docHandler:     handler.NewDocHandler(docService),
		noteHandler:    handler.NewNoteHandler(noteService),
		youtubeHandler: handler.NewYoutubeHandler(youtubeService),
		userHandler:    handler.NewUserHandler(userService),
		kiokuHandler:   handler.NewKiokuHandler(kiokuService),
		fileHandler:    handler.NewFileHandler(systemService),
		rssHandler:     handler.NewRSSHandler(docService, cfg.Server.SiteBaseURL),
	}

	s.setupMiddleware()
	s.setupRoutes()
	s.setupHTTPServer()

	return s
}

// setupMiddleware configures global middleware.
func (s *Server) setupMiddleware() {
	// Order matters: Recovery should be first to catch all panics
	s.router.Use(middleware.Recovery(s.log))
	s.router.Use(middleware.RequestID())
	s.router.Use(middleware.CORS())
	s.router.Use(middleware.Logging(s.log))
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() {
	// Health check endpoints (no auth required)
	s.router.GET("/health", s.healthHandler.Health)
	s.router.GET("/health/detailed", s.healthHandler.DetailedHealth)

	// API v1 routes
	v1 := s.router.Group("/v1")
	{
		// Public reads. Identity is optional here; anonymous callers only
		// ever see public documents.
		v1.GET("/docs", middleware.Identity(false), s.docHandler.Search)
		v1.GET("/docs/rss", s.rssHandler.Docs)
		v1.GET("/docs/:doc_id", middleware.Identity(false), s.docHandler.Get)

		// Content mutations, profile, and the aggregated feed require an
		// identity
		authed := v1.Group("", middleware.Identity(true))
		{
			authed.GET("/kioku", s.kiokuHandler.Get)

			authed.POST("/docs", s.docHandler.Create)
			authed.PUT("/docs/:doc_id", s.docHandler.Update)
			authed.DELETE("/docs/:doc_id", s.docHandler.Delete)

			authed.POST("/notes", s.noteHandler.Create)
			authed.POST("/youtubes", s.youtubeHandler.Create)

			authed.GET("/users/me", s.userHandler.Me)
			authed.PUT("/users/me", s.userHandler.Update)

			authed.POST("/files", s.fileHandler.Upload)
		}
	}

	// Handle 404
	s.router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": gin.H{
				"code":       "NOT_FOUND",
				"message":    "The requested resource was not found",
				"request_id": middleware.GetRequestID(c),
			},
		})
	})
}

// setupHTTPServer configures the underlying HTTP server.
func (s *Server) setupHTTPServer() {
	s.http = &http.Server{
		Addr:         s.cfg.Server.Addr(),
		Handler:      s.router,
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
	}
}

// Run starts the HTTP server and blocks until shutdown.
// It handles graceful shutdown on SIGINT/SIGTERM.
func (s *Server) Run() error {
	// Channel to receive shutdown signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Channel to receive server errors
	errCh := make(chan error, 1)

	// Start server in goroutine
	go func() {
		s.log.Info("starting HTTP server",
			"addr", s.cfg.Server.Addr(),
		)
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("server error: %w", err)
		}
	}()

	// Wait for shutdown signal or error
	select {
	case sig := <-quit:
		s.log.Info("received shutdown signal", "signal", sig.String())
	case err := <-errCh:
		return err
	}

	// Graceful shutdown
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown() error {
	s.log.Info("shutting down server", "timeout", s.cfg.Server.ShutdownTimeout)

	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := s.http.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown error: %w", err)
	}

	s.log.Info("server stopped gracefully")
	return nil
}

// Router returns the Gin router for testing.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// WaitForReady waits until the server is ready to accept connections.
// Useful for integration tests.
func (s *Server) WaitForReady(timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		resp, err := http.Get(fmt.Sprintf("http://%s/health", s.cfg.Server.Addr()))
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return nil
			}
		}
		time.Sleep(10 * time.Millisecond)
	}
	return fmt.Errorf("server not ready after %v", timeout)
}
