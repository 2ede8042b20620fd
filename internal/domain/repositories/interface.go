package repositories

import (
	"github.com/tuanphamm/ytsplit/internal/domain/entities"
)

// PlaylistRepository defines the persistence contract for playlist records.
// Load returns (nil, nil) when the record does not exist; a record that
// exists but cannot be parsed yields apperrors.ErrPlaylistCorrupt.
type PlaylistRepository interface {
	// List returns all persisted playlist names
	List() ([]string, error)

	// Load loads a playlist by name
	Load(name string) (*entities.Playlist, error)

	// Save persists a playlist (full record replacement)
	Save(playlist *entities.Playlist) error

	// Delete removes a playlist record
	Delete(name string) error

	// Exists checks if a playlist record is persisted
	Exists(name string) bool
}
