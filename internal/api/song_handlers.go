package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/harmoura/harmoura-server/internal/service"
)

func (s *Server) registerSongRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "listSongs",
		Method:      http.MethodGet,
		Path:        "/api/v1/songs",
		Summary:     "List songs",
		Description: "Returns the full song catalog",
		Tags:        []string{"Songs"},
	}, s.handleListSongs)

	huma.Register(s.api, huma.Operation{
		OperationID: "getSong",
		Method:      http.MethodGet,
		Path:        "/api/v1/songs/{id}",
		Summary:     "Get song",
		Description: "Returns a song by ID",
		Tags:        []string{"Songs"},
	}, s.handleGetSong)

	huma.Register(s.api, huma.Operation{
		OperationID: "listSongsByLanguage",
		Method:      http.MethodGet,
		Path:        "/api/v1/songs/language/{language}",
		Summary:     "List songs by language",
		Description: "Returns all songs in a language; the label is canonicalized before lookup",
		Tags:        []string{"Songs"},
	}, s.handleListSongsByLanguage)
}

// === DTOs ===

type ListSongsInput struct {
	UserID string `header:"X-User-ID" doc:"Requesting user ID"`
}

type ListSongsResponse struct {
	Songs []service.SongView `json:"songs" doc:"List of songs"`
}

type ListSongsOutput struct {
	Body ListSongsResponse
}

type GetSongInput struct {
	UserID string `header:"X-User-ID" doc:"Requesting user ID"`
	ID     string `path:"id" doc:"Song ID"`
}

type SongOutput struct {
	Body service.SongView
}

type ListSongsByLanguageInput struct {
	UserID   string `header:"X-User-ID" doc:"Requesting user ID"`
	Language string `path:"language" doc:"Language name or ISO code"`
}

// === Handlers ===

func (s *Server) handleListSongs(ctx context.Context, input *ListSongsInput) (*ListSongsOutput, error) {
	if err := requireIdentity(input.UserID); err != nil {
		return nil, err
	}

	songs, err := s.services.Catalog.ListSongs(ctx)
	if err != nil {
		return nil, err
	}

	return &ListSongsOutput{Body: ListSongsResponse{Songs: songs}}, nil
}

func (s *Server) handleGetSong(ctx context.Context, input *GetSongInput) (*SongOutput, error) {
	if err := requireIdentity(input.UserID); err != nil {
		return nil, err
	}

	song, err := s.services.Catalog.GetSong(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	return &SongOutput{Body: *song}, nil
}

func (s *Server) handleListSongsByLanguage(ctx context.Context, input *ListSongsByLanguageInput) (*ListSongsOutput, error) {
	if err := requireIdentity(input.UserID); err != nil {
		return nil, err
	}

	songs, err := s.services.Catalog.ListSongsByLanguage(ctx, input.Language)
	if err != nil {
		return nil, err
	}

	return &ListSongsOutput{Body: ListSongsResponse{Songs: songs}}, nil
}

// requireIdentity rejects requests whose X-User-ID header is missing.
func requireIdentity(userID string) error {
	if userID == "" {
		return huma.Error401Unauthorized("User identity required")
	}
	return nil
}
