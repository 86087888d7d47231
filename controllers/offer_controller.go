package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"hotspot_server/services"
)

// OfferController struct
type OfferController struct {
	OfferService *services.OfferService
}

// NewOfferController initializes the offer controller
func NewOfferController(service *services.OfferService) *OfferController {
	return &OfferController{OfferService: service}
}

// HandleListOffers - Fetch offers available at a hotspot
func (c *OfferController) HandleListOffers(w http.ResponseWriter, r *http.Request) {
	hotspotID := r.URL.Query().Get("hotspotId")
	if hotspotID == "" {
		http.Error(w, `{"error": "hotspotId is required"}`, http.StatusBadRequest)
		return
	}

	offers, err := c.OfferService.ListOffers(context.TODO(), hotspotID)
	if err != nil {
		log.Printf("❌ Error fetching offers: %v", err)
		http.Error(w, `{"error": "Failed to fetch offers"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(offers)
}

// HandleRedeem - One-shot redemption of an offer by a user
func (c *OfferController) HandleRedeem(w http.ResponseWriter, r *http.Request) {
	var request struct {
		OfferID    string `json:"offerId"`
		UserID     string `json:"userId"`
		BusinessID string `json:"businessId"`
		HotspotID  string `json:"hotspotId"`
	}

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	if request.OfferID == "" || request.UserID == "" {
		http.Error(w, `{"error": "Missing required fields: offerId, userId"}`, http.StatusBadRequest)
		return
	}

	redemption, err := c.OfferService.Redeem(context.TODO(), request.OfferID, request.UserID, request.BusinessID, request.HotspotID)
	if errors.Is(err, services.ErrAlreadyRedeemed) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error":      "Offer already redeemed",
			"redemption": redemption,
		})
		return
	}
	if err != nil {
		log.Printf("❌ Failed to redeem offer: %v", err)
		http.Error(w, `{"error": "Failed to redeem offer"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(redemption)
}
