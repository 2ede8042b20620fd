package services

import (
	"errors"
	"sync"

	"github.com/tuanphamm/ytsplit/internal/domain/entities"
	"github.com/tuanphamm/ytsplit/internal/domain/repositories"
	apperrors "github.com/tuanphamm/ytsplit/internal/errors"
	"github.com/tuanphamm/ytsplit/pkg/logger"
)

// PlaylistService manages playlist operations. Every mutation of a given
// playlist name is serialized through a per-name mutex, so concurrent HTTP
// requests cannot lose updates in the read-modify-write cycle.
type PlaylistService struct {
	repo   repositories.PlaylistRepository
	logger *logger.Logger

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewPlaylistService creates a new playlist service
func NewPlaylistService(repo repositories.PlaylistRepository, log *logger.Logger) *PlaylistService {
	return &PlaylistService{
		repo:   repo,
		logger: log,
		locks:  make(map[string]*sync.Mutex),
	}
}

// nameLock returns the mutex serializing operations on one playlist name
func (s *PlaylistService) nameLock(name string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, ok := s.locks[name]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[name] = lock
	}
	return lock
}

// Create creates a new empty playlist.
// Fails with ErrPlaylistExists if the name is already taken.
func (s *PlaylistService) Create(name string) error {
	if name == "" {
		return apperrors.Wrap(apperrors.ErrInvalidName, "playlist name cannot be empty")
	}

	lock := s.nameLock(name)
	lock.Lock()
	defer lock.Unlock()

	if s.repo.Exists(name) {
		return apperrors.Wrap(apperrors.ErrPlaylistExists, "%s", name)
	}

	if err := s.repo.Save(entities.NewPlaylist(name)); err != nil {
		s.logger.WithError(err).WithField("name", name).Error("Failed to create playlist")
		return err
	}

	s.logger.WithField("name", name).Info("Playlist created")
	return nil
}

// Delete removes a playlist.
// Fails with ErrPlaylistNotFound if no record exists.
func (s *PlaylistService) Delete(name string) error {
	lock := s.nameLock(name)
	lock.Lock()
	defer lock.Unlock()

	if err := s.repo.Delete(name); err != nil {
		if !errors.Is(err, apperrors.ErrPlaylistNotFound) {
			s.logger.WithError(err).WithField("name", name).Error("Failed to delete playlist")
		}
		return err
	}

	s.logger.WithField("name", name).Info("Playlist deleted")
	return nil
}

// AddSong appends a filename to a playlist, creating the playlist implicitly
// if it does not exist yet. Fails with ErrSongAlreadyInPlaylist if the
// filename is already present.
func (s *PlaylistService) AddSong(name, filename string) error {
	lock := s.nameLock(name)
	lock.Lock()
	defer lock.Unlock()

	playlist, err := s.repo.Load(name)
	if err != nil {
		return err
	}
	if playlist == nil {
		playlist = entities.NewPlaylist(name)
	}

	if !playlist.AddSong(filename) {
		return apperrors.Wrap(apperrors.ErrSongAlreadyInPlaylist, "%s in %s", filename, name)
	}

	if err := s.repo.Save(playlist); err != nil {
		s.logger.WithError(err).WithField("name", name).Error("Failed to save playlist")
		return err
	}

	s.logger.WithFields(map[string]interface{}{
		"name": name,
		"file": filename,
	}).Info("Song added to playlist")
	return nil
}

// RemoveSong removes a filename from a playlist.
// Fails with ErrPlaylistNotFound if the playlist record does not exist, or
// ErrSongNotInPlaylist if the filename is absent.
func (s *PlaylistService) RemoveSong(name, filename string) error {
	lock := s.nameLock(name)
	lock.Lock()
	defer lock.Unlock()

	playlist, err := s.repo.Load(name)
	if err != nil {
		return err
	}
	if playlist == nil {
		return apperrors.Wrap(apperrors.ErrPlaylistNotFound, "%s", name)
	}

	if !playlist.RemoveSong(filename) {
		return apperrors.Wrap(apperrors.ErrSongNotInPlaylist, "%s in %s", filename, name)
	}

	if err := s.repo.Save(playlist); err != nil {
		s.logger.WithError(err).WithField("name", name).Error("Failed to save playlist")
		return err
	}

	s.logger.WithFields(map[string]interface{}{
		"name": name,
		"file": filename,
	}).Info("Song removed from playlist")
	return nil
}

// ListAll returns the names of all persisted playlists
func (s *PlaylistService) ListAll() ([]string, error) {
	names, err := s.repo.List()
	if err != nil {
		s.logger.WithError(err).Error("Failed to list playlists")
		return nil, err
	}
	return names, nil
}

// GetSongs returns the ordered filenames of a playlist. A missing playlist
// yields an empty list, not an error; callers that need existence checks use
// Delete/RemoveSong semantics instead.
func (s *PlaylistService) GetSongs(name string) ([]string, error) {
	lock := s.nameLock(name)
	lock.Lock()
	defer lock.Unlock()

	playlist, err := s.repo.Load(name)
	if err != nil {
		return nil, err
	}
	if playlist == nil {
		return []string{}, nil
	}
	return playlist.Songs, nil
}

// FindContaining returns the names of every playlist whose songs contain the
// given filename. Records that fail to parse are skipped and logged; a corrupt
// record never aborts the scan.
func (s *PlaylistService) FindContaining(filename string) ([]string, error) {
	names, err := s.repo.List()
	if err != nil {
		return nil, err
	}

	containing := make([]string, 0)
	for _, name := range names {
		playlist, err := s.repo.Load(name)
		if err != nil {
			s.logger.WithError(err).WithField("name", name).Warn("Skipping unreadable playlist record")
			continue
		}
		if playlist == nil {
			continue
		}
		if playlist.HasSong(filename) {
			containing = append(containing, name)
		}
	}

	return containing, nil
}
