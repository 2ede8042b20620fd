package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/tuanphamm/ytsplit/internal/errors"
	"github.com/tuanphamm/ytsplit/internal/services"
)

// FilesHandler handles media catalog requests
type FilesHandler struct {
	library   *services.LibraryService
	playlists *services.PlaylistService
}

// NewFilesHandler creates a new FilesHandler instance
func NewFilesHandler(library *services.LibraryService, playlists *services.PlaylistService) *FilesHandler {
	return &FilesHandler{library: library, playlists: playlists}
}

// GetFiles lists the media files present in the storage directory
func (h *FilesHandler) GetFiles(c *gin.Context) {
	files, err := h.library.ListFiles()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read media directory"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": files})
}

// GetContainingPlaylists returns the playlists whose songs include the given
// file.
func (h *FilesHandler) GetContainingPlaylists(c *gin.Context) {
	file := c.Query("file")
	if file == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file query parameter is required"})
		return
	}

	names, err := h.playlists.FindContaining(file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to scan playlists"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"file": file, "playlists": names})
}

// isInvalidInput reports whether err stems from bad caller input
func isInvalidInput(err error) bool {
	return errors.Is(err, apperrors.ErrInvalidURL) ||
		errors.Is(err, apperrors.ErrInvalidName) ||
		errors.Is(err, apperrors.ErrInvalidWindow)
}
