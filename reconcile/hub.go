package reconcile

import (
	"sync"

	"hotspot_server/models"
)

// Hub holds the live reconciled message list for every hotspot the server
// is currently fanning out. HTTP handlers and socket callbacks touch it
// from different goroutines, so access is serialized here; the MessageList
// transitions themselves stay single-threaded and pure.
type Hub struct {
	mu    sync.Mutex
	lists map[string]*MessageList
}

// NewHub returns an empty hub
func NewHub() *Hub {
	return &Hub{lists: make(map[string]*MessageList)}
}

func (h *Hub) list(hotspotID string) *MessageList {
	l, ok := h.lists[hotspotID]
	if !ok {
		l = NewMessageList()
		h.lists[hotspotID] = l
	}
	return l
}

// OptimisticInsert appends an unconfirmed message to the hotspot's list
func (h *Hub) OptimisticInsert(hotspotID string, msg models.ChatMessage) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.list(hotspotID).ApplyOptimisticInsert(msg)
}

// Confirm swaps a temporary id for the server-assigned one in place
func (h *Hub) Confirm(hotspotID, tempID, messageID, createdAt string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.list(hotspotID).ConfirmInsert(tempID, messageID, createdAt)
}

// Drop removes an optimistic entry after a failed send
func (h *Hub) Drop(hotspotID, tempID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.list(hotspotID).DropOptimistic(tempID)
}

// Dispatch routes a broadcast event into the hotspot's list
func (h *Hub) Dispatch(hotspotID string, ev Event) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.list(hotspotID).Dispatch(ev)
}

// Messages returns a copy of the hotspot's visible message sequence
func (h *Hub) Messages(hotspotID string) []models.ChatMessage {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.list(hotspotID).Messages()
}
