package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/tuanphamm/ytsplit/internal/errors"
	"github.com/tuanphamm/ytsplit/internal/services"
)

// DownloadHandler handles download job requests
type DownloadHandler struct {
	downloads *services.DownloadService
}

// NewDownloadHandler creates a new DownloadHandler instance
func NewDownloadHandler(downloads *services.DownloadService) *DownloadHandler {
	return &DownloadHandler{downloads: downloads}
}

// CreateDownload queues a download job and returns its ID.
// With split=true the video is cut into fixed-length segments after download.
func (h *DownloadHandler) CreateDownload(c *gin.Context) {
	var input struct {
		URL   string `json:"url" binding:"required"`
		Name  string `json:"name" binding:"required"`
		Split bool   `json:"split"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	job, err := h.downloads.Submit(input.URL, input.Name, input.Split)
	if err != nil {
		if errors.Is(err, apperrors.ErrQueueFull) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
			return
		}
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusAccepted, job)
}

// GetDownload returns the current state of a download job
func (h *DownloadHandler) GetDownload(c *gin.Context) {
	job, err := h.downloads.Get(c.Param("id"))
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, job)
}
