package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/harmoura/harmoura-server/internal/http/response"
	"github.com/harmoura/harmoura-server/internal/service"
)

// FrequentResponse is the top-frequency playlist listing.
type FrequentResponse struct {
	Playlists []service.PlaylistView `json:"playlists"`
}

// handleRecordOpen records that the requesting user opened a playlist and
// returns the playlist with the updated activity.
func (s *Server) handleRecordOpen(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := getUserID(ctx)
	playlistID := chi.URLParam(r, "id")

	if userID == "" {
		response.Unauthorized(w, "User identity required", s.logger)
		return
	}

	playlist, err := s.services.Activity.RecordOpen(ctx, userID, playlistID)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, playlist, s.logger)
}

// handleListRecentAndFrequent returns the recents-and-frequents listing for
// the requesting user.
func (s *Server) handleListRecentAndFrequent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := getUserID(ctx)

	if userID == "" {
		response.Unauthorized(w, "User identity required", s.logger)
		return
	}

	listing, err := s.services.Activity.ListRecentAndFrequent(ctx, userID)
	if err != nil {
		s.logger.Error("Failed to list playlist activity", "error", err, "user_id", userID)
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, listing, s.logger)
}

// handleListFrequent returns the requesting user's most opened playlists.
func (s *Server) handleListFrequent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := getUserID(ctx)

	if userID == "" {
		response.Unauthorized(w, "User identity required", s.logger)
		return
	}

	playlists, err := s.services.Activity.ListFrequent(ctx, userID)
	if err != nil {
		s.logger.Error("Failed to list frequent playlists", "error", err, "user_id", userID)
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, FrequentResponse{Playlists: playlists}, s.logger)
}
