package entities

// Playlist represents a named, ordered collection of media filenames.
// The JSON shape is the persisted record format and must round-trip
// exactly (order and content of Songs preserved).
type Playlist struct {
	Name  string   `json:"name"`
	Songs []string `json:"songs"`
}

// NewPlaylist creates a new empty playlist
func NewPlaylist(name string) *Playlist {
	return &Playlist{
		Name:  name,
		Songs: make([]string, 0),
	}
}

// AddSong appends a filename to the playlist.
// Returns false if the filename is already present (duplicates are forbidden).
func (p *Playlist) AddSong(filename string) bool {
	if p.HasSong(filename) {
		return false
	}
	p.Songs = append(p.Songs, filename)
	return true
}

// RemoveSong removes the single matching filename (exact string match).
// Returns false if the filename is not in the playlist.
func (p *Playlist) RemoveSong(filename string) bool {
	for i, song := range p.Songs {
		if song == filename {
			p.Songs = append(p.Songs[:i], p.Songs[i+1:]...)
			return true
		}
	}
	return false
}

// HasSong checks if a filename is in the playlist
func (p *Playlist) HasSong(filename string) bool {
	for _, song := range p.Songs {
		if song == filename {
			return true
		}
	}
	return false
}

// TotalSongs returns the number of songs in the playlist
func (p *Playlist) TotalSongs() int {
	return len(p.Songs)
}
