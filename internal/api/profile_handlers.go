package api

import (
	"encoding/json/jsontext"
	"encoding/json/v2"
	"net/http"
	"time"

	"github.com/harmoura/harmoura-server/internal/color"
	"github.com/harmoura/harmoura-server/internal/http/response"
	"github.com/harmoura/harmoura-server/internal/service"
)

// ProfileResponse is the full user profile.
type ProfileResponse struct {
	UserID             string         `json:"user_id"`
	AvatarColor        string         `json:"avatar_color"`
	EmotionStats       map[string]int `json:"emotion_stats"`
	ArtistStats        map[string]int `json:"artist_stats"`
	LanguageStats      map[string]int `json:"language_stats"`
	LastPlayedLanguage string         `json:"last_played_language,omitempty"`
	PortraitData       jsontext.Value `json:"portrait_data,omitempty"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
}

// handleGetProfile returns the requesting user's listening profile.
func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := getUserID(ctx)

	if userID == "" {
		response.Unauthorized(w, "User identity required", s.logger)
		return
	}

	profile, err := s.services.Stats.GetProfile(ctx, userID)
	if err != nil {
		s.logger.Error("Failed to get profile", "error", err, "user_id", userID)
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, ProfileResponse{
		UserID:             profile.UserID,
		AvatarColor:        color.ForUser(profile.UserID),
		EmotionStats:       profile.EmotionStats,
		ArtistStats:        profile.ArtistStats,
		LanguageStats:      profile.LanguageStats,
		LastPlayedLanguage: profile.LastPlayedLanguage,
		PortraitData:       profile.PortraitData,
		CreatedAt:          profile.CreatedAt,
		UpdatedAt:          profile.UpdatedAt,
	}, s.logger)
}

// handleUpdatePortrait replaces the requesting user's portrait data with the
// request body, an opaque JSON document owned by the frontend.
func (s *Server) handleUpdatePortrait(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := getUserID(ctx)

	if userID == "" {
		response.Unauthorized(w, "User identity required", s.logger)
		return
	}

	var data jsontext.Value
	if err := json.UnmarshalRead(r.Body, &data); err != nil {
		response.BadRequest(w, "Portrait data must be valid JSON", s.logger)
		return
	}

	profile, err := s.services.Stats.UpdatePortrait(ctx, userID, service.UpdatePortraitRequest{
		Data: data,
	})
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, map[string]any{
		"user_id":       profile.UserID,
		"portrait_data": profile.PortraitData,
	}, s.logger)
}
