package repositories

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tuanphamm/ytsplit/internal/domain/entities"
	apperrors "github.com/tuanphamm/ytsplit/internal/errors"
)

// FilePlaylistRepository persists one JSON file per playlist under baseDir.
// The record key derives deterministically from the playlist name, so the
// same name always maps to the same file.
type FilePlaylistRepository struct {
	baseDir string
}

// NewFilePlaylistRepository creates a new file-backed playlist repository
func NewFilePlaylistRepository(baseDir string) *FilePlaylistRepository {
	return &FilePlaylistRepository{
		baseDir: baseDir,
	}
}

// playlistRecord mirrors entities.Playlist but keeps Songs as a pointer so a
// record with the field missing entirely can be told apart from an empty list.
type playlistRecord struct {
	Name  string    `json:"name"`
	Songs *[]string `json:"songs"`
}

// List returns all playlist names
func (r *FilePlaylistRepository) List() ([]string, error) {
	entries, err := os.ReadDir(r.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to read playlist directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasSuffix(name, ".json") {
			names = append(names, strings.TrimSuffix(name, ".json"))
		}
	}

	return names, nil
}

// Load loads a playlist from disk
func (r *FilePlaylistRepository) Load(name string) (*entities.Playlist, error) {
	path := r.getPath(name)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil // Playlist doesn't exist
		}
		return nil, fmt.Errorf("failed to read playlist file: %w", err)
	}

	var record playlistRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrPlaylistCorrupt, "%s: %v", name, err)
	}

	// A record without a songs field is corrupt, not implicitly empty
	if record.Songs == nil {
		return nil, apperrors.Wrap(apperrors.ErrPlaylistCorrupt, "%s: missing songs field", name)
	}

	return &entities.Playlist{
		Name:  record.Name,
		Songs: *record.Songs,
	}, nil
}

// Save saves a playlist to disk
func (r *FilePlaylistRepository) Save(playlist *entities.Playlist) error {
	if err := os.MkdirAll(r.baseDir, 0755); err != nil {
		return fmt.Errorf("failed to create playlist directory: %w", err)
	}

	data, err := json.MarshalIndent(playlist, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal playlist: %w", err)
	}

	path := r.getPath(playlist.Name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write playlist file: %w", err)
	}

	return nil
}

// Delete deletes a playlist record
func (r *FilePlaylistRepository) Delete(name string) error {
	path := r.getPath(name)

	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return apperrors.Wrap(apperrors.ErrPlaylistNotFound, "%s", name)
		}
		return fmt.Errorf("failed to delete playlist: %w", err)
	}

	return nil
}

// Exists checks if a playlist exists
func (r *FilePlaylistRepository) Exists(name string) bool {
	_, err := os.Stat(r.getPath(name))
	return err == nil
}

// getPath returns the file path for a playlist
func (r *FilePlaylistRepository) getPath(name string) string {
	// Replace spaces with underscores for filename safety
	safeName := strings.ReplaceAll(name, " ", "_")
	return filepath.Join(r.baseDir, safeName+".json")
}
