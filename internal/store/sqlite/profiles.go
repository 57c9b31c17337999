package sqlite

import (
	"context"
	"database/sql"
	"encoding/json/jsontext"
	"encoding/json/v2"
	"fmt"
	"time"

	"github.com/harmoura/harmoura-server/internal/domain"
)

// profileColumns is the ordered list of columns selected in profile queries.
// Must match the scan order in scanProfile.
const profileColumns = `user_id, emotion_stats, artist_stats, language_stats, last_played_language, portrait_data, created_at, updated_at`

// scanProfile scans a sql.Row (or sql.Rows via its Scan method) into a domain.UserProfile.
// The three stats columns hold JSON objects mapping label to play count.
func scanProfile(scanner interface{ Scan(dest ...any) error }) (*domain.UserProfile, error) {
	var (
		p            domain.UserProfile
		emotionStats string
		artistStats  string
		langStats    string
		portrait     sql.NullString
		createdAt    string
		updatedAt    string
	)

	err := scanner.Scan(
		&p.UserID,
		&emotionStats,
		&artistStats,
		&langStats,
		&p.LastPlayedLanguage,
		&portrait,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(emotionStats), &p.EmotionStats); err != nil {
		return nil, fmt.Errorf("decode emotion stats: %w", err)
	}
	if err := json.Unmarshal([]byte(artistStats), &p.ArtistStats); err != nil {
		return nil, fmt.Errorf("decode artist stats: %w", err)
	}
	if err := json.Unmarshal([]byte(langStats), &p.LanguageStats); err != nil {
		return nil, fmt.Errorf("decode language stats: %w", err)
	}
	if p.EmotionStats == nil {
		p.EmotionStats = make(map[string]int)
	}
	if p.ArtistStats == nil {
		p.ArtistStats = make(map[string]int)
	}
	if p.LanguageStats == nil {
		p.LanguageStats = make(map[string]int)
	}

	if portrait.Valid && portrait.String != "" {
		p.PortraitData = jsontext.Value(portrait.String)
	}

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

// encodeStats marshals a stats map to its JSON column representation.
func encodeStats(stats map[string]int) (string, error) {
	if stats == nil {
		return "{}", nil
	}
	b, err := json.Marshal(stats)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// GetOrCreateUserProfile retrieves a user's profile, creating an empty one
// if the user has no listening history yet.
func (s *Store) GetOrCreateUserProfile(ctx context.Context, userID string) (*domain.UserProfile, error) {
	if err := s.ensureProfileRow(ctx, s.db, userID); err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx,
		`SELECT `+profileColumns+` FROM user_profiles WHERE user_id = ?`, userID)
	return scanProfile(row)
}

// UpdateUserProfile applies fn to the user's profile inside a write
// transaction and persists the result. The row is created first if missing,
// so the transaction holds the write lock before the read; concurrent updates
// to the same profile serialize and no increment is lost.
func (s *Store) UpdateUserProfile(ctx context.Context, userID string, fn func(*domain.UserProfile) error) (*domain.UserProfile, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	if err := s.ensureProfileRow(ctx, tx, userID); err != nil {
		return nil, err
	}

	row := tx.QueryRowContext(ctx,
		`SELECT `+profileColumns+` FROM user_profiles WHERE user_id = ?`, userID)
	p, err := scanProfile(row)
	if err != nil {
		return nil, err
	}

	if err := fn(p); err != nil {
		return nil, err
	}
	p.UpdatedAt = time.Now().UTC()

	emotionStats, err := encodeStats(p.EmotionStats)
	if err != nil {
		return nil, fmt.Errorf("encode emotion stats: %w", err)
	}
	artistStats, err := encodeStats(p.ArtistStats)
	if err != nil {
		return nil, fmt.Errorf("encode artist stats: %w", err)
	}
	langStats, err := encodeStats(p.LanguageStats)
	if err != nil {
		return nil, fmt.Errorf("encode language stats: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE user_profiles
		SET emotion_stats = ?, artist_stats = ?, language_stats = ?,
		    last_played_language = ?, portrait_data = ?, updated_at = ?
		WHERE user_id = ?`,
		emotionStats,
		artistStats,
		langStats,
		p.LastPlayedLanguage,
		nullString(string(p.PortraitData)),
		formatTime(p.UpdatedAt),
		userID,
	)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return p, nil
}

// execer covers both *sql.DB and *sql.Tx.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// ensureProfileRow inserts an empty profile row if none exists. Inside a
// transaction this is the first write, which acquires the write lock up front.
func (s *Store) ensureProfileRow(ctx context.Context, db execer, userID string) error {
	now := formatTime(time.Now())
	_, err := db.ExecContext(ctx, `
		INSERT INTO user_profiles (user_id, created_at, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(user_id) DO NOTHING`,
		userID, now, now,
	)
	return err
}
