package validation

import "testing"

func TestIsYouTubePlaylistURL(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		expected bool
	}{
		{
			name:     "Actual playlist URL",
			url:      "https://www.youtube.com/playlist?list=PLrAXtmErZgOeiKm4sgNOknGvNjby9efdf",
			expected: true,
		},
		{
			name:     "Video URL with autoplay list parameter",
			url:      "https://www.youtube.com/watch?v=D8OCBS2UZOk&list=RDD8OCBS2UZOk&start_radio=1",
			expected: false,
		},
		{
			name:     "Single video URL",
			url:      "https://www.youtube.com/watch?v=D8OCBS2UZOk",
			expected: false,
		},
		{
			name:     "Short YouTube URL",
			url:      "https://youtu.be/D8OCBS2UZOk",
			expected: false,
		},
		{
			name:     "Non-YouTube URL",
			url:      "https://soundcloud.com/artist/track",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsYouTubePlaylistURL(tt.url)
			if result != tt.expected {
				t.Errorf("IsYouTubePlaylistURL(%s) = %v, expected %v", tt.url, result, tt.expected)
			}
		})
	}
}

func TestIsYouTubeURL(t *testing.T) {
	tests := []struct {
		url      string
		expected bool
	}{
		{"https://www.youtube.com/watch?v=D8OCBS2UZOk", true},
		{"https://youtu.be/D8OCBS2UZOk", true},
		{"http://youtube.com/watch?v=x", true},
		{"https://vimeo.com/12345", false},
		{"not a url", false},
	}

	for _, tt := range tests {
		if got := IsYouTubeURL(tt.url); got != tt.expected {
			t.Errorf("IsYouTubeURL(%s) = %v, expected %v", tt.url, got, tt.expected)
		}
	}
}

func TestValidateBaseName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"Simple name", "myVideo", false},
		{"Name with spaces", "my video 2", false},
		{"Name with dots and dashes", "ep-01.part2", false},
		{"Empty name", "", true},
		{"Path traversal", "../etc/passwd", true},
		{"Path separator", "a/b", true},
		{"Shell metacharacters", "a;rm -rf", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateBaseName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateBaseName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestSanitizeBaseName(t *testing.T) {
	if got := SanitizeBaseName("  my video "); got != "my_video" {
		t.Errorf("SanitizeBaseName = %q, want %q", got, "my_video")
	}
}
