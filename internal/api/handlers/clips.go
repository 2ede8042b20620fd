package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"

	apperrors "github.com/tuanphamm/ytsplit/internal/errors"
	"github.com/tuanphamm/ytsplit/internal/services/media"
	"github.com/tuanphamm/ytsplit/internal/validation"
)

// ClipsHandler handles trim/concat/gif requests over existing media files
type ClipsHandler struct {
	transformer *media.Transformer
	mediaDir    string
}

// NewClipsHandler creates a new ClipsHandler instance
func NewClipsHandler(transformer *media.Transformer, mediaDir string) *ClipsHandler {
	return &ClipsHandler{transformer: transformer, mediaDir: mediaDir}
}

// Trim cuts a clip out of an existing media file
func (h *ClipsHandler) Trim(c *gin.Context) {
	var input struct {
		File     string  `json:"file" binding:"required"`
		ClipName string  `json:"clip_name" binding:"required"`
		Start    float64 `json:"start"`
		End      float64 `json:"end" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := validation.ValidateBaseName(input.ClipName); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	inputPath, err := h.resolve(input.File)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	clipName := validation.SanitizeBaseName(input.ClipName)
	outputPath, err := h.transformer.Trim(c.Request.Context(), inputPath, clipName, input.Start, input.End)
	if err != nil {
		c.JSON(statusForTool(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Clip created", "path": filepath.Base(outputPath)})
}

// Concat joins existing media files into one output
func (h *ClipsHandler) Concat(c *gin.Context) {
	var input struct {
		Files  []string `json:"files" binding:"required,min=1"`
		Output string   `json:"output" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := validation.ValidateBaseName(input.Output); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	paths := make([]string, 0, len(input.Files))
	for _, f := range input.Files {
		path, err := h.resolve(f)
		if err != nil {
			c.JSON(statusFor(err), gin.H{"error": err.Error()})
			return
		}
		paths = append(paths, path)
	}

	output := validation.SanitizeBaseName(input.Output)
	outputPath, err := h.transformer.Concat(c.Request.Context(), paths, output)
	if err != nil {
		c.JSON(statusForTool(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Files combined", "path": filepath.Base(outputPath)})
}

// GIF converts an existing mp4 into a gif
func (h *ClipsHandler) GIF(c *gin.Context) {
	var input struct {
		File string `json:"file" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	inputPath, err := h.resolve(input.File)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	outputPath, err := h.transformer.GIF(c.Request.Context(), inputPath)
	if err != nil {
		c.JSON(statusForTool(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "GIF created", "path": filepath.Base(outputPath)})
}

// resolve maps a bare filename onto the media directory and checks it exists
func (h *ClipsHandler) resolve(filename string) (string, error) {
	if filename != filepath.Base(filename) {
		return "", apperrors.Wrap(apperrors.ErrInvalidName, "filename cannot contain path separators")
	}

	path := filepath.Join(h.mediaDir, filename)
	if _, err := os.Stat(path); err != nil {
		return "", apperrors.Wrap(apperrors.ErrFileNotFound, "%s", filename)
	}
	return path, nil
}

// statusForTool maps transform errors: invalid windows are the caller's
// fault, everything else is the external tool's
func statusForTool(err error) int {
	if isInvalidInput(err) {
		return http.StatusBadRequest
	}
	return http.StatusBadGateway
}
