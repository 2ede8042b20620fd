package errors

import (
	"errors"
	"fmt"
)

// Common error types for better error handling
var (
	// Playlist errors
	ErrPlaylistNotFound = errors.New("playlist not found")
	ErrPlaylistExists   = errors.New("playlist already exists")
	ErrPlaylistCorrupt  = errors.New("playlist record is corrupt")

	// Song membership errors
	ErrSongAlreadyInPlaylist = errors.New("song is already in the playlist")
	ErrSongNotInPlaylist     = errors.New("song is not in the playlist")

	// Media errors
	ErrFileNotFound  = errors.New("media file not found")
	ErrExternalTool  = errors.New("external tool failed")
	ErrInvalidURL    = errors.New("invalid URL")
	ErrInvalidName   = errors.New("invalid name")
	ErrInvalidWindow = errors.New("invalid time window")

	// Job errors
	ErrJobNotFound    = errors.New("download job not found")
	ErrQueueFull      = errors.New("download queue is full")
	ErrServiceStopped = errors.New("service is stopped")
)

// Wrap attaches contextual detail to a sentinel error
func Wrap(sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", sentinel, fmt.Sprintf(format, args...))
}

// IsNotFound reports whether err is any of the not-found sentinels
func IsNotFound(err error) bool {
	return errors.Is(err, ErrPlaylistNotFound) ||
		errors.Is(err, ErrSongNotInPlaylist) ||
		errors.Is(err, ErrFileNotFound) ||
		errors.Is(err, ErrJobNotFound)
}

// IsConflict reports whether err is a membership/uniqueness conflict
func IsConflict(err error) bool {
	return errors.Is(err, ErrPlaylistExists) || errors.Is(err, ErrSongAlreadyInPlaylist)
}
