package api

import (
	"encoding/json/v2"
	"net/http"

	"github.com/harmoura/harmoura-server/internal/http/response"
	"github.com/harmoura/harmoura-server/internal/service"
)

// PlayRequest is the body of a play submission.
type PlayRequest struct {
	SongID string `json:"song_id"`
}

// ProfileStatsResponse is the statistics slice of a user profile returned
// after a play is recorded.
type ProfileStatsResponse struct {
	EmotionStats       map[string]int `json:"emotion_stats"`
	ArtistStats        map[string]int `json:"artist_stats"`
	LanguageStats      map[string]int `json:"language_stats"`
	LastPlayedLanguage string         `json:"last_played_language,omitempty"`
}

// handleRecordPlay records a song play for the requesting user and returns
// the updated statistics.
func (s *Server) handleRecordPlay(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := getUserID(ctx)

	if userID == "" {
		response.Unauthorized(w, "User identity required", s.logger)
		return
	}

	var req PlayRequest
	if err := json.UnmarshalRead(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid request body", s.logger)
		return
	}

	profile, err := s.services.Stats.RecordPlay(ctx, userID, service.RecordPlayRequest{
		SongID: req.SongID,
	})
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, ProfileStatsResponse{
		EmotionStats:       profile.EmotionStats,
		ArtistStats:        profile.ArtistStats,
		LanguageStats:      profile.LanguageStats,
		LastPlayedLanguage: profile.LastPlayedLanguage,
	}, s.logger)
}
