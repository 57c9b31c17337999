package api

import (
	"net/http"

	"github.com/harmoura/harmoura-server/internal/http/response"
	"github.com/harmoura/harmoura-server/internal/service"
)

// RecommendationsResponse is the ranked recommendation list.
type RecommendationsResponse struct {
	Songs []service.SongView `json:"songs"`
}

// handleRecommendations returns the ranked song recommendations for the
// requesting user.
func (s *Server) handleRecommendations(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := getUserID(ctx)

	if userID == "" {
		response.Unauthorized(w, "User identity required", s.logger)
		return
	}

	songs, err := s.services.Recommendation.Recommend(ctx, userID)
	if err != nil {
		s.logger.Error("Failed to build recommendations", "error", err, "user_id", userID)
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, RecommendationsResponse{Songs: songs}, s.logger)
}
