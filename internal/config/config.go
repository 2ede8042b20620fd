package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// Server
	ListenAddr string
	Version    string

	// Directories
	MediaDir    string
	PlaylistDir string

	// Segmentation
	SegmentSeconds float64

	// Database
	DatabaseURL string
	UseDatabase bool

	// Downloads
	YtDlpFormat  string
	WorkerCount  int
	MaxQueueSize int

	// Info cache
	CacheSize       int
	CacheTTLMinutes int

	// Logging
	LogLevel  string
	LogFormat string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	// Database configuration
	databaseUser := os.Getenv("POSTGRES_USER")
	databasePassword := os.Getenv("POSTGRES_PASSWORD")
	databaseName := os.Getenv("POSTGRES_DB")
	databaseHost := os.Getenv("POSTGRES_HOST")
	databasePort := os.Getenv("POSTGRES_PORT")

	useDatabase := getEnvBool("USE_DATABASE", false)
	var databaseURL string
	if useDatabase {
		databaseURL = fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
			databaseUser, databasePassword, databaseHost, databasePort, databaseName)
	}

	cfg := &Config{
		ListenAddr: getEnvOrDefault("LISTEN_ADDR", ":8080"),
		Version:    getEnvOrDefault("VERSION", "1.0.0"),

		MediaDir:    getEnvOrDefault("MEDIA_DIR", "./downloads"),
		PlaylistDir: getEnvOrDefault("PLAYLIST_DIR", "./playlists"),

		// 30 minutes per segment unless overridden
		SegmentSeconds: float64(getEnvInt("SEGMENT_SECONDS", 1800)),

		DatabaseURL: databaseURL,
		UseDatabase: useDatabase,

		// Format 18 is 360p H.264 + AAC MP4, playable everywhere
		YtDlpFormat:  getEnvOrDefault("YTDLP_FORMAT", "18"),
		WorkerCount:  getEnvInt("WORKER_COUNT", 2),
		MaxQueueSize: getEnvInt("MAX_QUEUE_SIZE", 50),

		CacheSize:       getEnvInt("CACHE_SIZE", 200),
		CacheTTLMinutes: getEnvInt("CACHE_TTL_MINUTES", 5),

		LogLevel:  getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat: getEnvOrDefault("LOG_FORMAT", "text"),
	}

	if cfg.SegmentSeconds <= 0 {
		return nil, fmt.Errorf("SEGMENT_SECONDS must be positive, got %v", cfg.SegmentSeconds)
	}

	if err := os.MkdirAll(cfg.MediaDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create media directory: %w", err)
	}

	// Playlist directory is only needed for the file-based backend
	if !cfg.UseDatabase {
		if err := os.MkdirAll(cfg.PlaylistDir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create playlist directory: %w", err)
		}
	}

	return cfg, nil
}

// Helper functions

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		switch value {
		case "true", "1", "yes", "True", "TRUE", "YES":
			return true
		case "false", "0", "no", "False", "FALSE", "NO":
			return false
		}
	}
	return defaultValue
}
