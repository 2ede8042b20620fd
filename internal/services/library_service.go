package services

import (
	"fmt"
	"os"
	"strings"

	"github.com/tuanphamm/ytsplit/internal/domain/entities"
	"github.com/tuanphamm/ytsplit/pkg/logger"
)

// mediaExtensions are the file types presented by the catalog
var mediaExtensions = []string{".mp4", ".mp3", ".m4a", ".webm", ".mkv", ".gif"}

// LibraryService reconciles playlist contents against the media files
// actually present in the storage directory.
type LibraryService struct {
	mediaDir string
	logger   *logger.Logger
}

// NewLibraryService creates a new library service
func NewLibraryService(mediaDir string, log *logger.Logger) *LibraryService {
	return &LibraryService{
		mediaDir: mediaDir,
		logger:   log,
	}
}

// ListFiles enumerates the media files in the storage directory
func (s *LibraryService) ListFiles() ([]entities.MediaFile, error) {
	entries, err := os.ReadDir(s.mediaDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []entities.MediaFile{}, nil
		}
		return nil, fmt.Errorf("failed to read media directory: %w", err)
	}

	files := make([]entities.MediaFile, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !isMediaFile(entry.Name()) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			s.logger.WithError(err).WithField("file", entry.Name()).Warn("Skipping unreadable file")
			continue
		}
		files = append(files, entities.MediaFile{
			Filename:     entry.Name(),
			SizeBytes:    info.Size(),
			ModifiedTime: info.ModTime(),
		})
	}

	return files, nil
}

// FileSet returns the set of media filenames currently on disk
func (s *LibraryService) FileSet() (map[string]struct{}, error) {
	files, err := s.ListFiles()
	if err != nil {
		return nil, err
	}

	set := make(map[string]struct{}, len(files))
	for _, f := range files {
		set[f.Filename] = struct{}{}
	}
	return set, nil
}

// SongsOnDisk filters a playlist's songs down to those that still exist as
// files, preserving playlist order. Dead references to deleted media are
// dropped from the view but left in the persisted record.
func (s *LibraryService) SongsOnDisk(songs []string) ([]string, error) {
	existing, err := s.FileSet()
	if err != nil {
		return nil, err
	}
	return Intersect(songs, existing), nil
}

// Intersect keeps the entries of songs that are present in existing,
// preserving the order of songs.
func Intersect(songs []string, existing map[string]struct{}) []string {
	result := make([]string, 0, len(songs))
	for _, song := range songs {
		if _, ok := existing[song]; ok {
			result = append(result, song)
		}
	}
	return result
}

func isMediaFile(name string) bool {
	lower := strings.ToLower(name)
	for _, ext := range mediaExtensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}
