package validation

import (
	"net/url"
	"regexp"
	"strings"

	apperrors "github.com/tuanphamm/ytsplit/internal/errors"
)

var (
	youtubePattern  = regexp.MustCompile(`^(https?://)?(www\.)?(youtube\.com|youtu\.be)/.+$`)
	baseNamePattern = regexp.MustCompile(`^[A-Za-z0-9 ._-]+$`)
)

// ValidateURL validates if a string is a well-formed URL
func ValidateURL(input string) error {
	if input == "" {
		return apperrors.Wrap(apperrors.ErrInvalidURL, "URL cannot be empty")
	}

	if _, err := url.ParseRequestURI(input); err != nil {
		return apperrors.Wrap(apperrors.ErrInvalidURL, "%v", err)
	}

	return nil
}

// IsYouTubeURL checks if URL is a YouTube URL
func IsYouTubeURL(input string) bool {
	return youtubePattern.MatchString(input)
}

// IsYouTubePlaylistURL checks if URL addresses a whole playlist rather than
// a single video (autoplay "radio" lists on watch URLs do not count)
func IsYouTubePlaylistURL(input string) bool {
	return IsYouTubeURL(input) && strings.Contains(input, "playlist?list=")
}

// ValidateBaseName checks a user-supplied output base name. It becomes part
// of a filename, so path separators and traversal sequences are rejected.
func ValidateBaseName(name string) error {
	if name == "" {
		return apperrors.Wrap(apperrors.ErrInvalidName, "name cannot be empty")
	}
	if strings.Contains(name, "..") {
		return apperrors.Wrap(apperrors.ErrInvalidName, "name cannot contain '..'")
	}
	if !baseNamePattern.MatchString(name) {
		return apperrors.Wrap(apperrors.ErrInvalidName, "name contains unsupported characters")
	}
	return nil
}

// SanitizeBaseName converts a base name into its on-disk form
func SanitizeBaseName(name string) string {
	return strings.ReplaceAll(strings.TrimSpace(name), " ", "_")
}
