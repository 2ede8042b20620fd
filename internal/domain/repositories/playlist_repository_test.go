package repositories

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"testing"

	"github.com/tuanphamm/ytsplit/internal/domain/entities"
	apperrors "github.com/tuanphamm/ytsplit/internal/errors"
)

func TestFileRepositoryRoundTrip(t *testing.T) {
	repo := NewFilePlaylistRepository(t.TempDir())

	playlist := entities.NewPlaylist("Rock")
	playlist.AddSong("a.mp4")
	playlist.AddSong("b.mp4")
	playlist.AddSong("c.mp4")

	if err := repo.Save(playlist); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := repo.Load("Rock")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded == nil {
		t.Fatal("Expected playlist to exist")
	}

	if loaded.Name != playlist.Name {
		t.Errorf("Name = %q, want %q", loaded.Name, playlist.Name)
	}
	if !reflect.DeepEqual(loaded.Songs, playlist.Songs) {
		t.Errorf("Songs = %v, want %v", loaded.Songs, playlist.Songs)
	}
}

func TestFileRepositoryLoadMissing(t *testing.T) {
	repo := NewFilePlaylistRepository(t.TempDir())

	playlist, err := repo.Load("Ghost")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if playlist != nil {
		t.Error("Expected nil playlist for missing record")
	}
}

func TestFileRepositoryCorruptRecord(t *testing.T) {
	dir := t.TempDir()
	repo := NewFilePlaylistRepository(dir)

	tests := []struct {
		name string
		data string
	}{
		{"Broken", "{not json"},
		{"NoSongs", `{"name": "NoSongs"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name+".json")
			if err := os.WriteFile(path, []byte(tt.data), 0644); err != nil {
				t.Fatal(err)
			}

			_, err := repo.Load(tt.name)
			if !errors.Is(err, apperrors.ErrPlaylistCorrupt) {
				t.Errorf("Load error = %v, want ErrPlaylistCorrupt", err)
			}
		})
	}
}

func TestFileRepositoryDelete(t *testing.T) {
	repo := NewFilePlaylistRepository(t.TempDir())

	if err := repo.Save(entities.NewPlaylist("Rock")); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := repo.Delete("Rock"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if repo.Exists("Rock") {
		t.Error("Expected playlist to be gone after delete")
	}

	err := repo.Delete("Rock")
	if !errors.Is(err, apperrors.ErrPlaylistNotFound) {
		t.Errorf("Delete error = %v, want ErrPlaylistNotFound", err)
	}
}

func TestFileRepositoryList(t *testing.T) {
	dir := t.TempDir()
	repo := NewFilePlaylistRepository(dir)

	for _, name := range []string{"Rock", "Jazz"} {
		if err := repo.Save(entities.NewPlaylist(name)); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
	}
	// Non-playlist files are ignored
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	names, err := repo.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}

	sort.Strings(names)
	want := []string{"Jazz", "Rock"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("List = %v, want %v", names, want)
	}
}

func TestFileRepositoryNameWithSpaces(t *testing.T) {
	repo := NewFilePlaylistRepository(t.TempDir())

	if err := repo.Save(entities.NewPlaylist("Road Trip")); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if !repo.Exists("Road Trip") {
		t.Error("Expected playlist with spaces in name to exist")
	}

	loaded, err := repo.Load("Road Trip")
	if err != nil || loaded == nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Name != "Road Trip" {
		t.Errorf("Name = %q, want %q", loaded.Name, "Road Trip")
	}
}
