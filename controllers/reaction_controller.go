package controllers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"hotspot_server/services"
)

// ReactionController struct
type ReactionController struct {
	ReactionService *services.ReactionService
}

// NewReactionController initializes the reaction controller
func NewReactionController(service *services.ReactionService) *ReactionController {
	return &ReactionController{ReactionService: service}
}

// HandleToggleReaction - Toggle a user's emoji reaction on a message
func (c *ReactionController) HandleToggleReaction(w http.ResponseWriter, r *http.Request) {
	var request struct {
		HotspotID string `json:"hotspotId"`
		CreatedAt string `json:"createdAt"`
		UserID    string `json:"userId"`
		Emoji     string `json:"emoji"`
	}

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	if request.HotspotID == "" || request.CreatedAt == "" || request.UserID == "" || request.Emoji == "" {
		http.Error(w, `{"error": "Missing required fields: hotspotId, createdAt, userId, emoji"}`, http.StatusBadRequest)
		return
	}

	reactions, err := c.ReactionService.ToggleReaction(context.TODO(), request.HotspotID, request.CreatedAt, request.UserID, request.Emoji)
	if err != nil {
		log.Printf("❌ Failed to toggle reaction: %v", err)
		http.Error(w, `{"error": "Failed to toggle reaction"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(reactions)
}
