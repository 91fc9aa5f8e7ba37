// Package main is the entry point for the Kioku API server.
// It initializes all dependencies and starts the HTTP server.
package main

import (
	"context"
	"log"
	"os"

	"kioku/src/app/server"
	"kioku/src/core/ports"
	"kioku/src/infra/cache"
	"kioku/src/infra/clock"
	"kioku/src/infra/config"
	"kioku/src/infra/db"
	"kioku/src/infra/logger"
	"kioku/src/infra/noteapi"
	"kioku/src/infra/repo"
	"kioku/src/infra/storage"
	"kioku/src/infra/youtubeapi"
)

func main() {
	if err := run(); err != nil {
		log.Printf("fatal error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration from environment variables
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Initialize logger
	log := logger.New(cfg.Log)
	log.Info("starting application",
		"port", cfg.Server.Port,
		"log_level", cfg.Log.Level,
	)

	ctx := context.Background()

	// Run embedded migrations before opening the pool
	if cfg.Database.Migrate {
		if err := db.Migrate(ctx, cfg.Database, log); err != nil {
			return err
		}
	}

	// Initialize database connection
	pg, err := db.New(ctx, cfg.Database, log)
	if err != nil {
		return err
	}
	defer pg.Close()

	// Initialize repositories
	docRepo := repo.NewDocRepository(pg, log)
	noteRepo := repo.NewNoteRepository(pg, log)
	youtubeRepo := repo.NewYoutubeRepository(pg, log)
	userRepo := repo.NewUserRepository(pg, log)

	// Initialize external adapters
	store, err := storage.NewMinioStore(cfg.Storage, log)
	if err != nil {
		return err
	}

	// The feed cache is optional; without a redis address the feed is
	// recomputed on every request.
	var feedCache ports.FeedCache
	if cfg.Redis.Addr != "" {
		fc := cache.NewFeedCache(cfg.Redis, log)
		defer fc.Close()
		feedCache = fc
	}

	deps := server.Deps{
		DocRepo:     docRepo,
		NoteRepo:    noteRepo,
		YoutubeRepo: youtubeRepo,
		UserRepo:    userRepo,

		DocFeed:     docRepo,
		NoteFeed:    noteRepo,
		YoutubeFeed: youtubeRepo,

		NotePort:    noteapi.New(cfg.Note, log),
		YoutubePort: youtubeapi.New(cfg.Youtube, log),
		Clock:       clock.NewSystemClock(),
		Storage:     store,
		FeedCache:   feedCache,

		HealthComponents: map[string]ports.Repository{
			"database": pg,
		},
	}

	// Create and run HTTP server
	srv := server.New(cfg, log, deps)

	// Run blocks until shutdown signal is received
	return srv.Run()
}
