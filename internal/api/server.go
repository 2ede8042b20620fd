package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tuanphamm/ytsplit/internal/api/handlers"
	"github.com/tuanphamm/ytsplit/internal/config"
	"github.com/tuanphamm/ytsplit/internal/services"
	"github.com/tuanphamm/ytsplit/internal/services/media"
	"github.com/tuanphamm/ytsplit/pkg/logger"
)

// Server wires the HTTP surface over the playlist, library, download and
// transform services
type Server struct {
	cfg    *config.Config
	logger *logger.Logger
	router *gin.Engine
	http   *http.Server
}

// Services bundles the collaborators the HTTP layer exposes
type Services struct {
	Playlists   *services.PlaylistService
	Library     *services.LibraryService
	Downloads   *services.DownloadService
	Transformer *media.Transformer
}

// New creates a configured server
func New(cfg *config.Config, svc Services, log *logger.Logger) *Server {
	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{
		cfg:    cfg,
		logger: log,
		router: gin.Default(),
	}

	s.setupMiddleware()
	s.setupRoutes(svc)

	return s
}

func (s *Server) setupMiddleware() {
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type"}

	s.router.Use(cors.New(corsConfig))
}

func (s *Server) setupRoutes(svc Services) {
	playlistHandler := handlers.NewPlaylistHandler(svc.Playlists, svc.Library)
	filesHandler := handlers.NewFilesHandler(svc.Library, svc.Playlists)
	downloadHandler := handlers.NewDownloadHandler(svc.Downloads)
	clipsHandler := handlers.NewClipsHandler(svc.Transformer, s.cfg.MediaDir)

	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "ytsplit", "version": s.cfg.Version})
	})
	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := s.router.Group("/api/v1")
	{
		v1.GET("/playlists", playlistHandler.GetPlaylists)
		v1.POST("/playlists", playlistHandler.CreatePlaylist)
		v1.DELETE("/playlists/:name", playlistHandler.DeletePlaylist)
		v1.GET("/playlists/:name/songs", playlistHandler.GetSongs)
		v1.POST("/playlists/:name/songs", playlistHandler.AddSong)
		v1.DELETE("/playlists/:name/songs", playlistHandler.RemoveSong)

		v1.GET("/files", filesHandler.GetFiles)
		v1.GET("/files/playlists", filesHandler.GetContainingPlaylists)

		v1.POST("/downloads", downloadHandler.CreateDownload)
		v1.GET("/downloads/:id", downloadHandler.GetDownload)

		v1.POST("/clips/trim", clipsHandler.Trim)
		v1.POST("/clips/concat", clipsHandler.Concat)
		v1.POST("/clips/gif", clipsHandler.GIF)
	}
}

// Start runs the server on the configured address, blocking until shutdown
func (s *Server) Start() error {
	s.http = &http.Server{
		Addr:    s.cfg.ListenAddr,
		Handler: s.router,
	}

	s.logger.WithField("addr", s.cfg.ListenAddr).Info("HTTP server listening")

	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests and stops the listener
func (s *Server) Shutdown() error {
	if s.http == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return s.http.Shutdown(ctx)
}
