package reconcile

import "hotspot_server/models"

// EventType identifies an inbound broadcast row-change notification
type EventType string

const (
	EventInserted EventType = "INSERT"
	EventUpdated  EventType = "UPDATE"
	EventDeleted  EventType = "DELETE"
)

// Event is one row-change notification delivered by the broadcast stream
// for a hotspot's message scope. For deletes only MessageID is meaningful.
type Event struct {
	Type      EventType          `json:"type"`
	Message   models.ChatMessage `json:"message"`
	MessageID string             `json:"messageId"`
}
