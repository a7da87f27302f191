package handler

import (
	"net/http"

	"github.com/osse101/gachabox/internal/achievement"
	"github.com/osse101/gachabox/internal/domain"
	"github.com/osse101/gachabox/internal/logger"
)

// AchievementHandler serves achievement progress and reward claims
type AchievementHandler struct {
	service achievement.Service
}

// NewAchievementHandler creates an AchievementHandler
func NewAchievementHandler(service achievement.Service) *AchievementHandler {
	return &AchievementHandler{service: service}
}

// AchievementsResponse lists the rule catalog
type AchievementsResponse struct {
	Achievements []domain.AchievementRule `json:"achievements"`
}

// ProgressResponse lists a user's progress on every rule
type ProgressResponse struct {
	UserID       string                     `json:"user_id"`
	Achievements []domain.AchievementStatus `json:"achievements"`
}

// CheckResponse lists the rules completed by an evaluation
type CheckResponse struct {
	UserID    string                   `json:"user_id"`
	Completed []domain.AchievementRule `json:"completed"`
	Warning   string                   `json:"warning,omitempty"`
}

// HandleListAchievements returns the rule catalog with secret rules masked
// @Summary List achievements
// @Tags achievements
// @Produce json
// @Success 200 {object} AchievementsResponse
// @Router /api/v1/achievements [get]
func (h *AchievementHandler) HandleListAchievements(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, AchievementsResponse{Achievements: h.service.Catalog()})
}

// HandleGetProgress returns the user's progress on every rule
// @Summary Get achievement progress
// @Tags achievements
// @Produce json
// @Param userID path string true "User ID"
// @Success 200 {object} ProgressResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/users/{userID}/achievements [get]
func (h *AchievementHandler) HandleGetProgress(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetPathID(r, w, "userID")
	if !ok {
		return
	}

	statuses, err := h.service.ListProgress(r.Context(), userID)
	if err != nil {
		respondServiceError(w, r, "Get achievement progress", err)
		return
	}
	respondJSON(w, http.StatusOK, ProgressResponse{UserID: userID, Achievements: statuses})
}

// HandleCheck evaluates every rule for the user and returns the newly completed ones
// @Summary Evaluate achievements
// @Tags achievements
// @Produce json
// @Param userID path string true "User ID"
// @Success 200 {object} CheckResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/users/{userID}/achievements/check [post]
func (h *AchievementHandler) HandleCheck(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetPathID(r, w, "userID")
	if !ok {
		return
	}

	completed, err := h.service.Evaluate(r.Context(), userID)
	if err != nil && completed == nil {
		respondServiceError(w, r, "Evaluate achievements", err)
		return
	}

	resp := CheckResponse{UserID: userID, Completed: completed}
	if err != nil {
		logger.FromContext(r.Context()).Warn("Achievement evaluation partially failed", "user_id", userID, "error", err)
		resp.Warning = ErrMsgEvaluationIncomplete
	}
	respondJSON(w, http.StatusOK, resp)
}

// HandleClaim pays out a completed achievement's reward
// @Summary Claim achievement reward
// @Tags achievements
// @Produce json
// @Param userID path string true "User ID"
// @Param achievementID path string true "Achievement ID"
// @Success 200 {object} domain.ClaimResult
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/users/{userID}/achievements/{achievementID}/claim [post]
func (h *AchievementHandler) HandleClaim(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetPathID(r, w, "userID")
	if !ok {
		return
	}
	achievementID, ok := GetPathID(r, w, "achievementID")
	if !ok {
		return
	}

	result, err := h.service.Claim(r.Context(), userID, achievementID)
	if err != nil {
		respondServiceError(w, r, "Claim reward", err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}
