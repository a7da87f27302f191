package handler

import (
	"net/http"

	"github.com/osse101/gachabox/internal/domain"
	"github.com/osse101/gachabox/internal/gacha"
	"github.com/osse101/gachabox/internal/logger"
)

// GachaHandler serves the box catalog, rolls and inventories
type GachaHandler struct {
	service gacha.Service
}

// NewGachaHandler creates a GachaHandler
func NewGachaHandler(service gacha.Service) *GachaHandler {
	return &GachaHandler{service: service}
}

// RollRequest is the body of a roll. An empty BoxID rolls the default box.
type RollRequest struct {
	UserID string `json:"user_id" validate:"required,max=64,entityid"`
	BoxID  string `json:"box_id" validate:"omitempty,max=64,entityid"`
}

// BoxesResponse lists every box
type BoxesResponse struct {
	Boxes []domain.Box `json:"boxes"`
}

// InventoryResponse lists a user's inventory entries
type InventoryResponse struct {
	UserID string                  `json:"user_id"`
	Items  []domain.InventoryEntry `json:"items"`
}

// HandleListBoxes returns every box with its item pool
// @Summary List boxes
// @Tags gacha
// @Produce json
// @Success 200 {object} BoxesResponse
// @Router /api/v1/boxes [get]
func (h *GachaHandler) HandleListBoxes(w http.ResponseWriter, r *http.Request) {
	boxes, err := h.service.ListBoxes(r.Context())
	if err != nil {
		respondServiceError(w, r, "List boxes", err)
		return
	}
	respondJSON(w, http.StatusOK, BoxesResponse{Boxes: boxes})
}

// HandleGetBox returns one box with its item pool
// @Summary Get box
// @Tags gacha
// @Produce json
// @Param boxID path string true "Box ID"
// @Success 200 {object} domain.Box
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/boxes/{boxID} [get]
func (h *GachaHandler) HandleGetBox(w http.ResponseWriter, r *http.Request) {
	boxID, ok := GetPathID(r, w, "boxID")
	if !ok {
		return
	}

	box, err := h.service.GetBox(r.Context(), boxID)
	if err != nil {
		respondServiceError(w, r, "Get box", err)
		return
	}
	respondJSON(w, http.StatusOK, box)
}

// HandleRoll spends the box cost and returns the drawn item
// @Summary Roll a box
// @Tags gacha
// @Accept json
// @Produce json
// @Param request body RollRequest true "Roll request"
// @Success 200 {object} domain.RollResult
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/gacha/roll [post]
func (h *GachaHandler) HandleRoll(w http.ResponseWriter, r *http.Request) {
	var req RollRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Roll"); err != nil {
		return
	}

	result, err := h.service.Roll(r.Context(), req.UserID, req.BoxID)
	if err != nil {
		respondServiceError(w, r, "Roll", err)
		return
	}

	logger.FromContext(r.Context()).Debug("Roll served", "user_id", req.UserID, "pull_number", result.PullNumber)
	respondJSON(w, http.StatusOK, result)
}

// HandleGetInventory returns the user's inventory
// @Summary Get inventory
// @Tags gacha
// @Produce json
// @Param userID path string true "User ID"
// @Success 200 {object} InventoryResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/users/{userID}/inventory [get]
func (h *GachaHandler) HandleGetInventory(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetPathID(r, w, "userID")
	if !ok {
		return
	}

	items, err := h.service.GetInventory(r.Context(), userID)
	if err != nil {
		respondServiceError(w, r, "Get inventory", err)
		return
	}
	respondJSON(w, http.StatusOK, InventoryResponse{UserID: userID, Items: items})
}
