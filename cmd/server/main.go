package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tuanphamm/ytsplit/internal/api"
	"github.com/tuanphamm/ytsplit/internal/config"
	"github.com/tuanphamm/ytsplit/internal/database"
	"github.com/tuanphamm/ytsplit/internal/domain/repositories"
	"github.com/tuanphamm/ytsplit/internal/services"
	"github.com/tuanphamm/ytsplit/internal/services/media"
	"github.com/tuanphamm/ytsplit/internal/services/youtube"
	"github.com/tuanphamm/ytsplit/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.New(logger.Config{Level: "info"}).Fatalf("Failed to load configuration: %v", err)
	}

	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})

	log.Infof("Starting ytsplit server v%s", cfg.Version)

	// Pick the playlist backend
	var repo repositories.PlaylistRepository
	var db *database.DB
	if cfg.UseDatabase {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		db, err = database.Connect(ctx, database.DefaultConfig(cfg.DatabaseURL), log)
		cancel()
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer db.Close()
		repo = repositories.NewDatabasePlaylistRepository(db)
	} else {
		repo = repositories.NewFilePlaylistRepository(cfg.PlaylistDir)
		log.WithField("dir", cfg.PlaylistDir).Info("Using file-based playlist storage")
	}

	ytService, err := youtube.NewService(youtube.Options{
		MediaDir: cfg.MediaDir,
		Format:   cfg.YtDlpFormat,
		CacheLen: cfg.CacheSize,
		CacheTTL: time.Duration(cfg.CacheTTLMinutes) * time.Minute,
	}, log)
	if err != nil {
		log.Fatalf("Failed to initialize YouTube service: %v", err)
	}

	transformer, err := media.NewTransformer(cfg.MediaDir, log)
	if err != nil {
		log.Fatalf("Failed to initialize ffmpeg transformer: %v", err)
	}

	playlistService := services.NewPlaylistService(repo, log)
	libraryService := services.NewLibraryService(cfg.MediaDir, log)
	downloadService := services.NewDownloadService(
		ytService, transformer, cfg.SegmentSeconds, cfg.WorkerCount, cfg.MaxQueueSize, log)

	downloadService.Start()

	server := api.New(cfg, api.Services{
		Playlists:   playlistService,
		Library:     libraryService,
		Downloads:   downloadService,
		Transformer: transformer,
	}, log)

	go func() {
		if err := server.Start(); err != nil {
			log.Fatalf("HTTP server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	log.Info("Shutting down gracefully...")
	if err := server.Shutdown(); err != nil {
		log.WithError(err).Warn("HTTP shutdown failed")
	}
	downloadService.Stop()
	log.Info("Server stopped")
}
