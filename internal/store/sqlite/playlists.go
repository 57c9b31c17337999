package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/harmoura/harmoura-server/internal/domain"
	"github.com/harmoura/harmoura-server/internal/store"
)

// playlistColumns is the ordered list of columns selected in playlist queries.
// Must match the scan order in scanPlaylist.
const playlistColumns = `id, user_id, name, cover_path, created_at, updated_at`

// scanPlaylist scans a sql.Row (or sql.Rows via its Scan method) into a domain.Playlist.
func scanPlaylist(scanner interface{ Scan(dest ...any) error }) (*domain.Playlist, error) {
	var (
		p         domain.Playlist
		coverPath sql.NullString
		createdAt string
		updatedAt string
	)

	err := scanner.Scan(
		&p.ID,
		&p.UserID,
		&p.Name,
		&coverPath,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	p.CoverPath = coverPath.String

	p.CreatedAt, err = parseTime(createdAt)
	if err != nil {
		return nil, err
	}
	p.UpdatedAt, err = parseTime(updatedAt)
	if err != nil {
		return nil, err
	}

	return &p, nil
}

// CreatePlaylist inserts a new playlist and its song associations.
// Returns store.ErrAlreadyExists on duplicate ID.
func (s *Store) CreatePlaylist(ctx context.Context, playlist *domain.Playlist) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO playlists (
			id, user_id, name, cover_path, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?)`,
		playlist.ID,
		playlist.UserID,
		playlist.Name,
		nullString(playlist.CoverPath),
		formatTime(playlist.CreatedAt),
		formatTime(playlist.UpdatedAt),
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return store.ErrAlreadyExists
		}
		return err
	}

	for i, song := range playlist.Songs {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO playlist_songs (playlist_id, song_id, sort_order)
			VALUES (?, ?, ?)`,
			playlist.ID, song.ID, i,
		)
		if err != nil {
			return fmt.Errorf("insert playlist_song %s: %w", song.ID, err)
		}
	}

	return tx.Commit()
}

// GetPlaylist retrieves a playlist by ID, including its member songs in order.
// Returns store.ErrPlaylistNotFound if the playlist does not exist.
func (s *Store) GetPlaylist(ctx context.Context, id string) (*domain.Playlist, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+playlistColumns+` FROM playlists WHERE id = ?`, id)

	p, err := scanPlaylist(row)
	if err == sql.ErrNoRows {
		return nil, store.ErrPlaylistNotFound
	}
	if err != nil {
		return nil, err
	}

	p.Songs, err = s.ListPlaylistSongs(ctx, id)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// SetPlaylistSongs replaces the playlist's membership with the given song IDs,
// preserving their order. Returns store.ErrPlaylistNotFound if the playlist
// does not exist.
func (s *Store) SetPlaylistSongs(ctx context.Context, playlistID string, songIDs []string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var exists int
	err = tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM playlists WHERE id = ?`, playlistID).Scan(&exists)
	if err != nil {
		return err
	}
	if exists == 0 {
		return store.ErrPlaylistNotFound
	}

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM playlist_songs WHERE playlist_id = ?`, playlistID); err != nil {
		return err
	}

	for i, songID := range songIDs {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO playlist_songs (playlist_id, song_id, sort_order)
			VALUES (?, ?, ?)`,
			playlistID, songID, i,
		)
		if err != nil {
			return fmt.Errorf("insert playlist_song %s: %w", songID, err)
		}
	}

	return tx.Commit()
}

// ListPlaylistSongs returns the playlist's member songs in sort order.
// Songs deleted from the catalog drop out of the result without error.
func (s *Store) ListPlaylistSongs(ctx context.Context, playlistID string) ([]*domain.Song, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+prefixColumns("s", songColumns)+`
		FROM playlist_songs ps
		JOIN songs s ON s.id = ps.song_id
		WHERE ps.playlist_id = ?
		ORDER BY ps.sort_order, s.id`, playlistID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectSongs(rows)
}

// prefixColumns qualifies each column in a comma-separated list with a table alias.
func prefixColumns(alias, columns string) string {
	parts := strings.Split(columns, ", ")
	for i, c := range parts {
		parts[i] = alias + "." + c
	}
	return strings.Join(parts, ", ")
}
