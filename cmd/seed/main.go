// Package main provides a tool to seed the database with a song catalog.
//
// This reads a JSON catalog file and inserts its songs (and optional
// playlists) into the database, normalizing artist names and language
// labels the same way the API does.
//
// Usage:
//
//	DB_PATH=~/harmoura/harmoura.db go run ./cmd/seed catalog.json
//	DB_PATH=~/harmoura/harmoura.db go run ./cmd/seed --user u_demo catalog.json
package main

import (
	"context"
	"encoding/json/v2"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/harmoura/harmoura-server/internal/domain"
	"github.com/harmoura/harmoura-server/internal/id"
	"github.com/harmoura/harmoura-server/internal/normalize"
	"github.com/harmoura/harmoura-server/internal/store/sqlite"
)

var seedUser = flag.String("user", "", "Owner user ID for seeded playlists (default: generated)")

// catalogFile is the shape of the JSON input.
type catalogFile struct {
	Songs []struct {
		Title     string `json:"title"`
		Artist    string `json:"artist"`
		SrcPath   string `json:"src_path"`
		CoverPath string `json:"cover_path"`
		Emotion   string `json:"emotion"`
		Language  string `json:"language"`
	} `json:"songs"`
	Playlists []struct {
		Name      string `json:"name"`
		CoverPath string `json:"cover_path"`
		// Songs references catalog entries by title.
		Songs []string `json:"songs"`
	} `json:"playlists"`
}

func main() {
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: seed [--user ID] <catalog.json>")
		os.Exit(1)
	}

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = os.ExpandEnv("$HOME/harmoura/harmoura.db")
	}

	data, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		log.Fatalf("Failed to read catalog file: %v", err)
	}

	var catalog catalogFile
	if err := json.Unmarshal(data, &catalog); err != nil {
		log.Fatalf("Failed to parse catalog file: %v", err)
	}

	fmt.Printf("Opening database at: %s\n", dbPath)

	s, err := sqlite.Open(dbPath, slog.New(slog.DiscardHandler))
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	defer s.Close()

	ctx := context.Background()
	now := time.Now().UTC()

	// Insert songs, remembering IDs by title so playlists can reference them.
	songIDs := make(map[string]string, len(catalog.Songs))
	created := 0
	for _, entry := range catalog.Songs {
		emotion := domain.Emotion(entry.Emotion)
		if entry.Emotion != "" && !emotion.Valid() {
			log.Fatalf("Song %q has unknown emotion %q", entry.Title, entry.Emotion)
		}

		song := &domain.Song{
			ID:        id.MustGenerate(id.PrefixSong),
			Title:     entry.Title,
			Artist:    normalize.Artist(entry.Artist),
			SrcPath:   entry.SrcPath,
			CoverPath: entry.CoverPath,
			Emotion:   emotion,
			Language:  normalize.Language(entry.Language),
			CreatedAt: now,
			UpdatedAt: now,
		}

		if err := s.CreateSong(ctx, song); err != nil {
			log.Fatalf("Failed to create song %q: %v", entry.Title, err)
		}
		songIDs[entry.Title] = song.ID
		created++
	}
	fmt.Printf("Created %d songs\n", created)

	if len(catalog.Playlists) == 0 {
		return
	}

	owner := *seedUser
	if owner == "" {
		owner = id.MustGenerate(id.PrefixUser)
		fmt.Printf("Generated playlist owner: %s\n", owner)
	}

	for _, entry := range catalog.Playlists {
		playlist := &domain.Playlist{
			ID:        id.MustGenerate(id.PrefixPlaylist),
			UserID:    owner,
			Name:      entry.Name,
			CoverPath: entry.CoverPath,
			CreatedAt: now,
			UpdatedAt: now,
		}
		for _, title := range entry.Songs {
			songID, ok := songIDs[title]
			if !ok {
				log.Fatalf("Playlist %q references unknown song %q", entry.Name, title)
			}
			playlist.Songs = append(playlist.Songs, &domain.Song{ID: songID})
		}

		if err := s.CreatePlaylist(ctx, playlist); err != nil {
			log.Fatalf("Failed to create playlist %q: %v", entry.Name, err)
		}
		fmt.Printf("Created playlist %q with %d songs\n", entry.Name, len(playlist.Songs))
	}
}
