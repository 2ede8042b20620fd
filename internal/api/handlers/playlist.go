package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/tuanphamm/ytsplit/internal/errors"
	"github.com/tuanphamm/ytsplit/internal/metrics"
	"github.com/tuanphamm/ytsplit/internal/services"
)

// PlaylistHandler handles playlist-related requests
type PlaylistHandler struct {
	playlists *services.PlaylistService
	library   *services.LibraryService
}

// NewPlaylistHandler creates a new PlaylistHandler instance
func NewPlaylistHandler(playlists *services.PlaylistService, library *services.LibraryService) *PlaylistHandler {
	return &PlaylistHandler{playlists: playlists, library: library}
}

// CreatePlaylist creates a new empty playlist
func (h *PlaylistHandler) CreatePlaylist(c *gin.Context) {
	var input struct {
		Name string `json:"name" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.playlists.Create(input.Name); err != nil {
		metrics.PlaylistOps.WithLabelValues("create", "error").Inc()
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	metrics.PlaylistOps.WithLabelValues("create", "ok").Inc()
	c.JSON(http.StatusCreated, gin.H{"message": "Playlist created", "name": input.Name})
}

// DeletePlaylist removes a playlist record
func (h *PlaylistHandler) DeletePlaylist(c *gin.Context) {
	name := c.Param("name")

	if err := h.playlists.Delete(name); err != nil {
		metrics.PlaylistOps.WithLabelValues("delete", "error").Inc()
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	metrics.PlaylistOps.WithLabelValues("delete", "ok").Inc()
	c.JSON(http.StatusOK, gin.H{"message": "Playlist deleted", "name": name})
}

// GetPlaylists lists all playlist names
func (h *PlaylistHandler) GetPlaylists(c *gin.Context) {
	names, err := h.playlists.ListAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list playlists"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": names})
}

// GetSongs returns the songs of a playlist restricted to files present on
// disk, in playlist order.
func (h *PlaylistHandler) GetSongs(c *gin.Context) {
	name := c.Param("name")

	songs, err := h.playlists.GetSongs(name)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	onDisk, err := h.library.SongsOnDisk(songs)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read media directory"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"name": name, "songs": onDisk})
}

// AddSong appends a song to a playlist
func (h *PlaylistHandler) AddSong(c *gin.Context) {
	name := c.Param("name")

	var input struct {
		File string `json:"file" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.playlists.AddSong(name, input.File); err != nil {
		metrics.PlaylistOps.WithLabelValues("add_song", "error").Inc()
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	metrics.PlaylistOps.WithLabelValues("add_song", "ok").Inc()
	c.JSON(http.StatusOK, gin.H{"message": "Song added", "name": name, "file": input.File})
}

// RemoveSong removes a song from a playlist. The filename comes from the
// query string because media filenames may contain characters that do not
// survive path segments.
func (h *PlaylistHandler) RemoveSong(c *gin.Context) {
	name := c.Param("name")
	file := c.Query("file")

	if file == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file query parameter is required"})
		return
	}

	if err := h.playlists.RemoveSong(name, file); err != nil {
		metrics.PlaylistOps.WithLabelValues("remove_song", "error").Inc()
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	metrics.PlaylistOps.WithLabelValues("remove_song", "ok").Inc()
	c.JSON(http.StatusOK, gin.H{"message": "Song removed", "name": name, "file": file})
}

// statusFor maps service errors onto HTTP status codes
func statusFor(err error) int {
	switch {
	case apperrors.IsNotFound(err):
		return http.StatusNotFound
	case apperrors.IsConflict(err):
		return http.StatusConflict
	case isInvalidInput(err):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
