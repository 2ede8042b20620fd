package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"path/filepath"
	"time"

	apperrors "github.com/tuanphamm/ytsplit/internal/errors"
	"github.com/tuanphamm/ytsplit/internal/utils"
	"github.com/tuanphamm/ytsplit/pkg/logger"
)

// Info represents extracted YouTube video information
type Info struct {
	ID         string  `json:"id"`
	Title      string  `json:"title"`
	Duration   float64 `json:"duration"`
	Uploader   string  `json:"uploader"`
	WebpageURL string  `json:"webpage_url"`
}

// Service downloads media and extracts metadata via the yt-dlp binary
type Service struct {
	cache     *utils.Cache
	logger    *logger.Logger
	ytDlpPath string
	mediaDir  string
	format    string
}

// Options configures the yt-dlp service
type Options struct {
	MediaDir string
	Format   string // yt-dlp format selector
	CacheTTL time.Duration
	CacheLen int
}

// NewService creates a new YouTube service.
// Fails if yt-dlp is not installed.
func NewService(opts Options, log *logger.Logger) (*Service, error) {
	ytDlpPath, err := exec.LookPath("yt-dlp")
	if err != nil {
		return nil, fmt.Errorf("yt-dlp not found in PATH: please install yt-dlp")
	}

	if opts.CacheLen <= 0 {
		opts.CacheLen = 200
	}
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = 5 * time.Minute
	}

	log.WithField("ytdlp_path", ytDlpPath).Info("YouTube service initialized")

	return &Service{
		cache:     utils.NewCache(opts.CacheLen, opts.CacheTTL),
		logger:    log,
		ytDlpPath: ytDlpPath,
		mediaDir:  opts.MediaDir,
		format:    opts.Format,
	}, nil
}

// ExtractInfo extracts video metadata (title, duration) without downloading
func (s *Service) ExtractInfo(ctx context.Context, url string) (*Info, error) {
	if cached, ok := s.cache.Get(url); ok {
		s.logger.Debug("Cache hit for URL")
		return cached.(*Info), nil
	}

	s.logger.WithField("url", url).Info("Extracting video info...")

	args := []string{
		"--dump-json",
		"--no-playlist",
		"--no-check-certificate",
		"--geo-bypass",
		url,
	}

	cmd := exec.CommandContext(ctx, s.ytDlpPath, args...)
	output, err := cmd.Output()
	if err != nil {
		s.logger.WithError(err).Error("yt-dlp extraction failed")
		return nil, apperrors.Wrap(apperrors.ErrExternalTool, "yt-dlp info extraction: %v", err)
	}

	var info Info
	if err := json.Unmarshal(output, &info); err != nil {
		return nil, fmt.Errorf("failed to parse video info: %w", err)
	}

	s.cache.Set(url, &info)

	s.logger.WithFields(map[string]interface{}{
		"title":    info.Title,
		"duration": info.Duration,
	}).Info("Successfully extracted video info")

	return &info, nil
}

// Download fetches the video as <baseName>.mp4 in the media directory and
// returns the local path.
func (s *Service) Download(ctx context.Context, url, baseName string) (string, error) {
	outputPath := filepath.Join(s.mediaDir, baseName+".mp4")

	s.logger.WithFields(map[string]interface{}{
		"url":  url,
		"path": outputPath,
	}).Info("Downloading video...")

	args := []string{
		"--format", s.format,
		"--output", outputPath,
		"--no-playlist",
		"--no-check-certificate",
		"--geo-bypass",
		"--merge-output-format", "mp4",
		url,
	}

	cmd := exec.CommandContext(ctx, s.ytDlpPath, args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		s.logger.WithError(err).WithField("output", string(output)).Error("yt-dlp download failed")
		return "", apperrors.Wrap(apperrors.ErrExternalTool, "yt-dlp download: %v", err)
	}

	s.logger.WithField("path", outputPath).Info("Download complete")
	return outputPath, nil
}
