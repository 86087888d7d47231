package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"hotspot_server/models"
	"hotspot_server/services"
)

// ConnectionController struct
type ConnectionController struct {
	ConnectionService *services.ConnectionService
}

// NewConnectionController initializes the connection controller
func NewConnectionController(service *services.ConnectionService) *ConnectionController {
	return &ConnectionController{ConnectionService: service}
}

// HandleCreateConnection - Connect two users for direct messaging
func (c *ConnectionController) HandleCreateConnection(w http.ResponseWriter, r *http.Request) {
	var request struct {
		UserA string `json:"userA"`
		UserB string `json:"userB"`
	}

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	connection, err := c.ConnectionService.CreateConnection(context.TODO(), request.UserA, request.UserB)
	if errors.Is(err, services.ErrConnectionExists) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error":      "Connection already exists",
			"connection": connection,
		})
		return
	}
	if err != nil {
		log.Printf("❌ Failed to create connection: %v", err)
		http.Error(w, `{"error": "Failed to create connection"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(connection)
}

// HandleSendDirectMessage - Send a message inside a connection
func (c *ConnectionController) HandleSendDirectMessage(w http.ResponseWriter, r *http.Request) {
	var message models.DirectMessage

	if err := json.NewDecoder(r.Body).Decode(&message); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	if message.SenderID == "" || message.ReceiverID == "" {
		http.Error(w, `{"error": "Missing required fields: senderId, receiverId"}`, http.StatusBadRequest)
		return
	}

	stored, err := c.ConnectionService.SendDirectMessage(context.TODO(), message)
	if err != nil {
		log.Printf("❌ Failed to send direct message: %v", err)
		http.Error(w, `{"error": "Failed to send direct message"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if stored == nil {
		json.NewEncoder(w).Encode(map[string]string{"status": "ignored"})
		return
	}
	json.NewEncoder(w).Encode(stored)
}

// HandleGetDirectMessages - Fetch the conversation between two users
func (c *ConnectionController) HandleGetDirectMessages(w http.ResponseWriter, r *http.Request) {
	userA := r.URL.Query().Get("userA")
	userB := r.URL.Query().Get("userB")
	limitStr := r.URL.Query().Get("limit")

	if userA == "" || userB == "" {
		http.Error(w, `{"error": "userA and userB are required"}`, http.StatusBadRequest)
		return
	}

	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit <= 0 {
		limit = 50
	}

	messages, err := c.ConnectionService.GetDirectMessages(context.TODO(), userA, userB, limit)
	if err != nil {
		log.Printf("❌ Error fetching direct messages: %v", err)
		http.Error(w, `{"error": "Failed to fetch direct messages"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(messages)
}

// HandleMarkMessagesAsRead - Mark messages received by a user as read
func (c *ConnectionController) HandleMarkMessagesAsRead(w http.ResponseWriter, r *http.Request) {
	var request struct {
		UserA  string `json:"userA"`
		UserB  string `json:"userB"`
		UserID string `json:"userId"`
	}

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	if err := c.ConnectionService.MarkMessagesAsRead(context.TODO(), request.UserA, request.UserB, request.UserID); err != nil {
		http.Error(w, `{"error": "Failed to mark messages as read"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "success"})
}
