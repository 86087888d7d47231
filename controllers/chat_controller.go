package controllers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"hotspot_server/models"
	"hotspot_server/services"
)

// ChatController struct
type ChatController struct {
	ChatService *services.ChatService
}

// NewChatController initializes the chat controller
func NewChatController(service *services.ChatService) *ChatController {
	return &ChatController{ChatService: service}
}

// HandleGetMessages - Fetch persisted message history for a hotspot
func (c *ChatController) HandleGetMessages(w http.ResponseWriter, r *http.Request) {
	hotspotID := r.URL.Query().Get("hotspotId")
	limitStr := r.URL.Query().Get("limit")

	if hotspotID == "" {
		http.Error(w, `{"error": "hotspotId is required"}`, http.StatusBadRequest)
		return
	}

	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit <= 0 {
		limit = 50
	}

	messages, err := c.ChatService.GetMessages(context.TODO(), hotspotID, limit)
	if err != nil {
		log.Printf("❌ Error fetching messages: %v", err)
		http.Error(w, `{"error": "Failed to fetch messages"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(messages)
}

// HandleGetLiveMessages - Fetch the reconciled in-memory view for a hotspot
func (c *ChatController) HandleGetLiveMessages(w http.ResponseWriter, r *http.Request) {
	hotspotID := r.URL.Query().Get("hotspotId")
	if hotspotID == "" {
		http.Error(w, `{"error": "hotspotId is required"}`, http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(c.ChatService.LiveMessages(hotspotID))
}

// HandleSendMessage - Handles sending a new hotspot message
func (c *ChatController) HandleSendMessage(w http.ResponseWriter, r *http.Request) {
	var message models.ChatMessage

	if err := json.NewDecoder(r.Body).Decode(&message); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	if message.HotspotID == "" || message.SenderID == "" {
		http.Error(w, `{"error": "Missing required fields: hotspotId or senderId"}`, http.StatusBadRequest)
		return
	}

	stored, err := c.ChatService.SendMessage(context.TODO(), message)
	if err != nil {
		log.Printf("❌ Failed to send message: %v", err)
		http.Error(w, `{"error": "Failed to send message"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if stored == nil {
		// Empty body after trimming is a silent no-op
		json.NewEncoder(w).Encode(map[string]string{"status": "ignored"})
		return
	}
	json.NewEncoder(w).Encode(stored)
}

// HandleModerateMessage - Approve or reject a message
func (c *ChatController) HandleModerateMessage(w http.ResponseWriter, r *http.Request) {
	var request struct {
		HotspotID string `json:"hotspotId"`
		CreatedAt string `json:"createdAt"`
		Status    string `json:"status"`
	}

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	if request.HotspotID == "" || request.CreatedAt == "" {
		http.Error(w, `{"error": "Missing required fields: hotspotId, createdAt"}`, http.StatusBadRequest)
		return
	}

	if err := c.ChatService.ModerateMessage(context.TODO(), request.HotspotID, request.CreatedAt, request.Status); err != nil {
		log.Printf("❌ Failed to moderate message: %v", err)
		http.Error(w, `{"error": "Failed to moderate message"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "success"})
}

// HandleDeleteMessage - Delete a message from a hotspot
func (c *ChatController) HandleDeleteMessage(w http.ResponseWriter, r *http.Request) {
	var request struct {
		HotspotID string `json:"hotspotId"`
		CreatedAt string `json:"createdAt"`
		MessageID string `json:"messageId"`
	}

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	if request.HotspotID == "" || request.CreatedAt == "" {
		http.Error(w, `{"error": "Missing required fields: hotspotId, createdAt"}`, http.StatusBadRequest)
		return
	}

	if err := c.ChatService.DeleteMessage(context.TODO(), request.HotspotID, request.CreatedAt, request.MessageID); err != nil {
		http.Error(w, `{"error": "Failed to delete message"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "success"})
}
