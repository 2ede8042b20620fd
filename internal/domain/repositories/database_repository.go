package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/tuanphamm/ytsplit/internal/database"
	"github.com/tuanphamm/ytsplit/internal/domain/entities"
	apperrors "github.com/tuanphamm/ytsplit/internal/errors"
)

// DatabasePlaylistRepository implements PlaylistRepository using PostgreSQL
type DatabasePlaylistRepository struct {
	db *database.DB
}

// NewDatabasePlaylistRepository creates a new database-backed playlist repository
func NewDatabasePlaylistRepository(db *database.DB) *DatabasePlaylistRepository {
	return &DatabasePlaylistRepository{
		db: db,
	}
}

// List returns all playlist names
func (r *DatabasePlaylistRepository) List() ([]string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	rows, err := r.db.Pool.Query(ctx, `SELECT name FROM playlists ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list playlists: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan playlist name: %w", err)
		}
		names = append(names, name)
	}

	return names, rows.Err()
}

// Load loads a playlist by name
func (r *DatabasePlaylistRepository) Load(name string) (*entities.Playlist, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var id int
	err := r.db.Pool.QueryRow(ctx, `SELECT id FROM playlists WHERE name = $1`, name).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // Playlist doesn't exist
		}
		return nil, fmt.Errorf("failed to load playlist: %w", err)
	}

	rows, err := r.db.Pool.Query(ctx,
		`SELECT filename FROM playlist_songs WHERE playlist_id = $1 ORDER BY position`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load playlist songs: %w", err)
	}
	defer rows.Close()

	playlist := entities.NewPlaylist(name)
	for rows.Next() {
		var filename string
		if err := rows.Scan(&filename); err != nil {
			return nil, fmt.Errorf("failed to scan song: %w", err)
		}
		playlist.Songs = append(playlist.Songs, filename)
	}

	return playlist, rows.Err()
}

// Save persists a playlist, replacing the song list in one transaction
func (r *DatabasePlaylistRepository) Save(playlist *entities.Playlist) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	tx, err := r.db.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var id int
	err = tx.QueryRow(ctx, `
		INSERT INTO playlists (name) VALUES ($1)
		ON CONFLICT (name) DO UPDATE SET updated_at = now()
		RETURNING id`, playlist.Name).Scan(&id)
	if err != nil {
		return fmt.Errorf("failed to upsert playlist: %w", err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM playlist_songs WHERE playlist_id = $1`, id); err != nil {
		return fmt.Errorf("failed to clear playlist songs: %w", err)
	}

	for i, filename := range playlist.Songs {
		_, err := tx.Exec(ctx,
			`INSERT INTO playlist_songs (playlist_id, position, filename) VALUES ($1, $2, $3)`,
			id, i, filename)
		if err != nil {
			return fmt.Errorf("failed to insert song %q: %w", filename, err)
		}
	}

	return tx.Commit(ctx)
}

// Delete removes a playlist record
func (r *DatabasePlaylistRepository) Delete(name string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tag, err := r.db.Pool.Exec(ctx, `DELETE FROM playlists WHERE name = $1`, name)
	if err != nil {
		return fmt.Errorf("failed to delete playlist: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.Wrap(apperrors.ErrPlaylistNotFound, "%s", name)
	}

	return nil
}

// Exists checks if a playlist exists
func (r *DatabasePlaylistRepository) Exists(name string) bool {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var exists bool
	err := r.db.Pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM playlists WHERE name = $1)`, name).Scan(&exists)
	return err == nil && exists
}
