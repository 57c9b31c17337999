package sqlite

import (
	"context"
	"database/sql"
	"strings"

	"github.com/harmoura/harmoura-server/internal/domain"
	"github.com/harmoura/harmoura-server/internal/store"
)

// songColumns is the ordered list of columns selected in song queries.
// Must match the scan order in scanSong.
const songColumns = `id, title, artist, src_path, cover_path, emotion, language, created_at, updated_at`

// scanSong scans a sql.Row (or sql.Rows via its Scan method) into a domain.Song.
func scanSong(scanner interface{ Scan(dest ...any) error }) (*domain.Song, error) {
	var (
		song      domain.Song
		coverPath sql.NullString
		emotion   sql.NullString
		language  sql.NullString
		createdAt string
		updatedAt string
	)

	err := scanner.Scan(
		&song.ID,
		&song.Title,
		&song.Artist,
		&song.SrcPath,
		&coverPath,
		&emotion,
		&language,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	song.CoverPath = coverPath.String
	song.Emotion = domain.Emotion(emotion.String)
	song.Language = language.String

	song.CreatedAt, err = parseTime(createdAt)
	if err != nil {
		return nil, err
	}
	song.UpdatedAt, err = parseTime(updatedAt)
	if err != nil {
		return nil, err
	}

	return &song, nil
}

// CreateSong inserts a new song into the catalog.
// Returns store.ErrAlreadyExists on duplicate ID.
func (s *Store) CreateSong(ctx context.Context, song *domain.Song) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO songs (
			id, title, artist, src_path, cover_path, emotion, language, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		song.ID,
		song.Title,
		song.Artist,
		song.SrcPath,
		nullString(song.CoverPath),
		nullString(string(song.Emotion)),
		nullString(song.Language),
		formatTime(song.CreatedAt),
		formatTime(song.UpdatedAt),
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return store.ErrAlreadyExists
		}
		return err
	}
	return nil
}

// GetSong retrieves a song by ID.
// Returns store.ErrSongNotFound if the song does not exist.
func (s *Store) GetSong(ctx context.Context, id string) (*domain.Song, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+songColumns+` FROM songs WHERE id = ?`, id)

	song, err := scanSong(row)
	if err == sql.ErrNoRows {
		return nil, store.ErrSongNotFound
	}
	if err != nil {
		return nil, err
	}
	return song, nil
}

// ListSongs returns the full catalog ordered by title.
func (s *Store) ListSongs(ctx context.Context) ([]*domain.Song, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+songColumns+` FROM songs ORDER BY title, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectSongs(rows)
}

// ListSongsByLanguage returns all songs tagged with the given language,
// ordered by title. The match is exact; callers normalize language labels
// before storage and lookup.
func (s *Store) ListSongsByLanguage(ctx context.Context, language string) ([]*domain.Song, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+songColumns+` FROM songs WHERE language = ? ORDER BY title, id`, language)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectSongs(rows)
}

// collectSongs drains rows into a slice of songs.
func collectSongs(rows *sql.Rows) ([]*domain.Song, error) {
	var songs []*domain.Song
	for rows.Next() {
		song, err := scanSong(rows)
		if err != nil {
			return nil, err
		}
		songs = append(songs, song)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return songs, nil
}
