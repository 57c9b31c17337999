package sqlite

import (
	"context"
	"database/sql"

	"github.com/harmoura/harmoura-server/internal/domain"
	"github.com/harmoura/harmoura-server/internal/store"
)

// activityColumns is the ordered list of columns selected in activity queries.
// Must match the scan order in scanActivity.
const activityColumns = `user_id, playlist_id, last_opened, open_count`

// scanActivity scans a sql.Row (or sql.Rows via its Scan method) into a
// domain.PlaylistActivity.
func scanActivity(scanner interface{ Scan(dest ...any) error }) (*domain.PlaylistActivity, error) {
	var (
		a          domain.PlaylistActivity
		lastOpened string
	)

	err := scanner.Scan(
		&a.UserID,
		&a.PlaylistID,
		&lastOpened,
		&a.OpenCount,
	)
	if err != nil {
		return nil, err
	}

	if lastOpened != "" {
		a.LastOpened, err = parseTime(lastOpened)
		if err != nil {
			return nil, err
		}
	}

	return &a, nil
}

// GetPlaylistActivity retrieves a user's activity record for one playlist.
// Returns store.ErrActivityNotFound if the user has never opened the playlist.
func (s *Store) GetPlaylistActivity(ctx context.Context, userID, playlistID string) (*domain.PlaylistActivity, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+activityColumns+` FROM playlist_activity WHERE user_id = ? AND playlist_id = ?`,
		userID, playlistID)

	a, err := scanActivity(row)
	if err == sql.ErrNoRows {
		return nil, store.ErrActivityNotFound
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

// UpdatePlaylistActivity applies fn to the user's activity record for the
// playlist inside a write transaction and persists the result. A zero-count
// record is created first if none exists, so concurrent opens of the same
// playlist serialize and every open is counted.
func (s *Store) UpdatePlaylistActivity(ctx context.Context, userID, playlistID string, fn func(*domain.PlaylistActivity) error) (*domain.PlaylistActivity, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO playlist_activity (user_id, playlist_id)
		VALUES (?, ?)
		ON CONFLICT(user_id, playlist_id) DO NOTHING`,
		userID, playlistID,
	)
	if err != nil {
		return nil, err
	}

	row := tx.QueryRowContext(ctx,
		`SELECT `+activityColumns+` FROM playlist_activity WHERE user_id = ? AND playlist_id = ?`,
		userID, playlistID)
	a, err := scanActivity(row)
	if err != nil {
		return nil, err
	}

	if err := fn(a); err != nil {
		return nil, err
	}

	lastOpened := ""
	if !a.LastOpened.IsZero() {
		lastOpened = formatTime(a.LastOpened)
	}
	_, err = tx.ExecContext(ctx, `
		UPDATE playlist_activity
		SET last_opened = ?, open_count = ?
		WHERE user_id = ? AND playlist_id = ?`,
		lastOpened, a.OpenCount, userID, playlistID,
	)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return a, nil
}

// ListUserActivities returns every activity record the user has, unordered.
// Callers apply their own recency or frequency ordering.
func (s *Store) ListUserActivities(ctx context.Context, userID string) ([]*domain.PlaylistActivity, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+activityColumns+` FROM playlist_activity WHERE user_id = ?`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var activities []*domain.PlaylistActivity
	for rows.Next() {
		a, err := scanActivity(rows)
		if err != nil {
			return nil, err
		}
		activities = append(activities, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return activities, nil
}
