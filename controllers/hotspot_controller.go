package controllers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"hotspot_server/models"
	"hotspot_server/services"

	"github.com/gorilla/mux"
)

// HotspotController struct
type HotspotController struct {
	HotspotService *services.HotspotService
}

// NewHotspotController initializes the hotspot controller
func NewHotspotController(service *services.HotspotService) *HotspotController {
	return &HotspotController{HotspotService: service}
}

// HandleCreateHotspot - Create a new hotspot
func (c *HotspotController) HandleCreateHotspot(w http.ResponseWriter, r *http.Request) {
	var hotspot models.Hotspot

	if err := json.NewDecoder(r.Body).Decode(&hotspot); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	if hotspot.Name == "" {
		http.Error(w, `{"error": "name is required"}`, http.StatusBadRequest)
		return
	}

	created, err := c.HotspotService.CreateHotspot(context.TODO(), hotspot)
	if err != nil {
		log.Printf("❌ Failed to create hotspot: %v", err)
		http.Error(w, `{"error": "Failed to create hotspot"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(created)
}

// HandleGetHotspot - Fetch a hotspot by id
func (c *HotspotController) HandleGetHotspot(w http.ResponseWriter, r *http.Request) {
	hotspotID := mux.Vars(r)["hotspotId"]

	hotspot, err := c.HotspotService.GetHotspot(context.TODO(), hotspotID)
	if err != nil {
		http.Error(w, `{"error": "Hotspot not found"}`, http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(hotspot)
}

// HandleListHotspots - List all hotspots
func (c *HotspotController) HandleListHotspots(w http.ResponseWriter, r *http.Request) {
	hotspots, err := c.HotspotService.ListHotspots(context.TODO())
	if err != nil {
		http.Error(w, `{"error": "Failed to list hotspots"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(hotspots)
}
