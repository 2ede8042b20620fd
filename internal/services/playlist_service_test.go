package services

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"testing"

	"github.com/tuanphamm/ytsplit/internal/domain/repositories"
	apperrors "github.com/tuanphamm/ytsplit/internal/errors"
	"github.com/tuanphamm/ytsplit/pkg/logger"
)

func newTestPlaylistService(t *testing.T) (*PlaylistService, string) {
	t.Helper()
	dir := t.TempDir()
	log := logger.New(logger.Config{Level: "error", Output: io.Discard})
	return NewPlaylistService(repositories.NewFilePlaylistRepository(dir), log), dir
}

func TestCreatePlaylist(t *testing.T) {
	svc, _ := newTestPlaylistService(t)

	if err := svc.Create("Rock"); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	names, err := svc.ListAll()
	if err != nil {
		t.Fatalf("ListAll failed: %v", err)
	}
	if len(names) != 1 || names[0] != "Rock" {
		t.Errorf("ListAll = %v, want [Rock]", names)
	}

	songs, err := svc.GetSongs("Rock")
	if err != nil {
		t.Fatalf("GetSongs failed: %v", err)
	}
	if len(songs) != 0 {
		t.Errorf("New playlist has songs: %v", songs)
	}

	err = svc.Create("Rock")
	if !errors.Is(err, apperrors.ErrPlaylistExists) {
		t.Errorf("Second create error = %v, want ErrPlaylistExists", err)
	}
}

func TestCreatePlaylistEmptyName(t *testing.T) {
	svc, _ := newTestPlaylistService(t)

	if err := svc.Create(""); !errors.Is(err, apperrors.ErrInvalidName) {
		t.Errorf("Create(\"\") error = %v, want ErrInvalidName", err)
	}
}

func TestAddSongDuplicate(t *testing.T) {
	svc, _ := newTestPlaylistService(t)

	if err := svc.AddSong("Rock", "a.mp4"); err != nil {
		t.Fatalf("First AddSong failed: %v", err)
	}

	err := svc.AddSong("Rock", "a.mp4")
	if !errors.Is(err, apperrors.ErrSongAlreadyInPlaylist) {
		t.Errorf("Duplicate AddSong error = %v, want ErrSongAlreadyInPlaylist", err)
	}

	songs, err := svc.GetSongs("Rock")
	if err != nil {
		t.Fatalf("GetSongs failed: %v", err)
	}
	if !reflect.DeepEqual(songs, []string{"a.mp4"}) {
		t.Errorf("GetSongs = %v, want [a.mp4]", songs)
	}
}

func TestAddSongImplicitCreate(t *testing.T) {
	svc, _ := newTestPlaylistService(t)

	// Adding to a playlist that was never created creates it
	if err := svc.AddSong("Fresh", "a.mp4"); err != nil {
		t.Fatalf("AddSong failed: %v", err)
	}

	names, _ := svc.ListAll()
	if len(names) != 1 || names[0] != "Fresh" {
		t.Errorf("ListAll = %v, want [Fresh]", names)
	}
}

func TestRemoveSongPreservesOrder(t *testing.T) {
	svc, _ := newTestPlaylistService(t)

	svc.AddSong("Rock", "a.mp4")
	svc.AddSong("Rock", "b.mp4")

	if err := svc.RemoveSong("Rock", "a.mp4"); err != nil {
		t.Fatalf("RemoveSong failed: %v", err)
	}

	songs, _ := svc.GetSongs("Rock")
	if !reflect.DeepEqual(songs, []string{"b.mp4"}) {
		t.Errorf("GetSongs = %v, want [b.mp4]", songs)
	}
}

func TestRemoveSongErrors(t *testing.T) {
	svc, _ := newTestPlaylistService(t)

	err := svc.RemoveSong("Ghost", "a.mp4")
	if !errors.Is(err, apperrors.ErrPlaylistNotFound) {
		t.Errorf("RemoveSong on missing playlist error = %v, want ErrPlaylistNotFound", err)
	}

	svc.AddSong("Rock", "a.mp4")
	err = svc.RemoveSong("Rock", "b.mp4")
	if !errors.Is(err, apperrors.ErrSongNotInPlaylist) {
		t.Errorf("RemoveSong of missing song error = %v, want ErrSongNotInPlaylist", err)
	}
}

func TestDeleteMissingPlaylist(t *testing.T) {
	svc, _ := newTestPlaylistService(t)

	err := svc.Delete("Ghost")
	if !errors.Is(err, apperrors.ErrPlaylistNotFound) {
		t.Errorf("Delete error = %v, want ErrPlaylistNotFound", err)
	}
}

func TestGetSongsMissingPlaylist(t *testing.T) {
	svc, _ := newTestPlaylistService(t)

	// A lookup miss is not an error, unlike Delete/RemoveSong
	songs, err := svc.GetSongs("Ghost")
	if err != nil {
		t.Fatalf("GetSongs returned error: %v", err)
	}
	if len(songs) != 0 {
		t.Errorf("GetSongs = %v, want empty", songs)
	}
}

func TestFindContaining(t *testing.T) {
	svc, _ := newTestPlaylistService(t)

	svc.AddSong("Rock", "a.mp4")
	svc.AddSong("Jazz", "a.mp4")
	svc.AddSong("Jazz", "b.mp4")

	names, err := svc.FindContaining("a.mp4")
	if err != nil {
		t.Fatalf("FindContaining failed: %v", err)
	}

	sort.Strings(names)
	if !reflect.DeepEqual(names, []string{"Jazz", "Rock"}) {
		t.Errorf("FindContaining = %v, want [Jazz Rock]", names)
	}
}

func TestGetSongsCorruptRecord(t *testing.T) {
	svc, dir := newTestPlaylistService(t)

	if err := os.WriteFile(filepath.Join(dir, "Broken.json"), []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	// A corrupt record that is the direct target of an operation surfaces the
	// error instead of being skipped
	_, err := svc.GetSongs("Broken")
	if !errors.Is(err, apperrors.ErrPlaylistCorrupt) {
		t.Errorf("GetSongs error = %v, want ErrPlaylistCorrupt", err)
	}
}

func TestFindContainingSkipsCorruptRecords(t *testing.T) {
	svc, dir := newTestPlaylistService(t)

	svc.AddSong("Rock", "a.mp4")
	if err := os.WriteFile(filepath.Join(dir, "Broken.json"), []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	names, err := svc.FindContaining("a.mp4")
	if err != nil {
		t.Fatalf("FindContaining failed: %v", err)
	}
	if !reflect.DeepEqual(names, []string{"Rock"}) {
		t.Errorf("FindContaining = %v, want [Rock]", names)
	}
}
