package entities

import "testing"

func TestPlaylistAddSong(t *testing.T) {
	p := NewPlaylist("Rock")

	if !p.AddSong("a.mp4") {
		t.Error("Expected first add to succeed")
	}
	if p.AddSong("a.mp4") {
		t.Error("Expected duplicate add to fail")
	}
	if p.TotalSongs() != 1 {
		t.Errorf("Expected 1 song, got %d", p.TotalSongs())
	}
}

func TestPlaylistRemoveSong(t *testing.T) {
	p := NewPlaylist("Rock")
	p.AddSong("a.mp4")
	p.AddSong("b.mp4")
	p.AddSong("c.mp4")

	if !p.RemoveSong("b.mp4") {
		t.Error("Expected remove of existing song to succeed")
	}
	if p.RemoveSong("b.mp4") {
		t.Error("Expected remove of missing song to fail")
	}

	want := []string{"a.mp4", "c.mp4"}
	if len(p.Songs) != len(want) {
		t.Fatalf("Expected %d songs, got %d", len(want), len(p.Songs))
	}
	for i, song := range want {
		if p.Songs[i] != song {
			t.Errorf("Songs[%d] = %q, want %q", i, p.Songs[i], song)
		}
	}
}

func TestPlaylistHasSong(t *testing.T) {
	p := NewPlaylist("Jazz")
	p.AddSong("a.mp4")

	if !p.HasSong("a.mp4") {
		t.Error("Expected HasSong to find a.mp4")
	}
	if p.HasSong("b.mp4") {
		t.Error("Expected HasSong to miss b.mp4")
	}
}
