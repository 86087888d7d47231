package controllers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"hotspot_server/models"
	"hotspot_server/services"
)

// PresenceController struct
type PresenceController struct {
	PresenceService *services.PresenceService
}

// NewPresenceController initializes the presence controller
func NewPresenceController(service *services.PresenceService) *PresenceController {
	return &PresenceController{PresenceService: service}
}

// HandleHeartbeat - Refresh the caller's presence record at a hotspot
func (c *PresenceController) HandleHeartbeat(w http.ResponseWriter, r *http.Request) {
	var record models.PresenceRecord

	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	if record.HotspotID == "" || record.UserID == "" {
		http.Error(w, `{"error": "Missing required fields: hotspotId, userId"}`, http.StatusBadRequest)
		return
	}

	if err := c.PresenceService.Heartbeat(context.TODO(), record); err != nil {
		log.Printf("❌ Heartbeat failed: %v", err)
		http.Error(w, `{"error": "Failed to refresh presence"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "success"})
}

// HandleLeave - Explicit leave, deletes the presence record
func (c *PresenceController) HandleLeave(w http.ResponseWriter, r *http.Request) {
	var request struct {
		HotspotID string `json:"hotspotId"`
		UserID    string `json:"userId"`
	}

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	if request.HotspotID == "" || request.UserID == "" {
		http.Error(w, `{"error": "Missing required fields: hotspotId, userId"}`, http.StatusBadRequest)
		return
	}

	if err := c.PresenceService.Leave(context.TODO(), request.HotspotID, request.UserID); err != nil {
		http.Error(w, `{"error": "Failed to leave hotspot"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "success"})
}

// HandleListActive - Who is currently at a hotspot
func (c *PresenceController) HandleListActive(w http.ResponseWriter, r *http.Request) {
	hotspotID := r.URL.Query().Get("hotspotId")
	if hotspotID == "" {
		http.Error(w, `{"error": "hotspotId is required"}`, http.StatusBadRequest)
		return
	}

	active, err := c.PresenceService.ListActive(context.TODO(), hotspotID)
	if err != nil {
		log.Printf("❌ Error listing active users: %v", err)
		http.Error(w, `{"error": "Failed to fetch active users"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(active)
}

// HandleActiveCount - How many users are currently at a hotspot
func (c *PresenceController) HandleActiveCount(w http.ResponseWriter, r *http.Request) {
	hotspotID := r.URL.Query().Get("hotspotId")
	if hotspotID == "" {
		http.Error(w, `{"error": "hotspotId is required"}`, http.StatusBadRequest)
		return
	}

	count, err := c.PresenceService.CountActive(context.TODO(), hotspotID)
	if err != nil {
		http.Error(w, `{"error": "Failed to count active users"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]int{"activeCount": count})
}
