package socket

import (
	"context"
	"log"
	"sync"

	"hotspot_server/models"
	"hotspot_server/reconcile"
	"hotspot_server/services"

	socketio "github.com/googollee/go-socket.io"
)

// Broadcast event names delivered into hotspot rooms
const (
	EventMessageNew    = "message:new"
	EventMessageUpdate = "message:update"
	EventMessageDelete = "message:delete"
	EventPresenceJoin  = "presence:join"
	EventPresenceLeave = "presence:leave"
)

func eventName(t reconcile.EventType) string {
	switch t {
	case reconcile.EventUpdated:
		return EventMessageUpdate
	case reconcile.EventDeleted:
		return EventMessageDelete
	default:
		return EventMessageNew
	}
}

// Broadcaster adapts the Socket.IO server into the fan-out hook the
// services emit row-change events through.
func Broadcaster(server *socketio.Server) services.BroadcastFunc {
	return func(hotspotID string, ev reconcile.Event) {
		server.BroadcastToRoom("/", hotspotID, eventName(ev.Type), ev)
	}
}

type joinPayload struct {
	HotspotID   string `json:"hotspotId"`
	UserID      string `json:"userId"`
	DisplayName string `json:"displayName"`
	AvatarKey   string `json:"avatarKey"`
	StatusLabel string `json:"statusLabel"`
}

type leavePayload struct {
	HotspotID string `json:"hotspotId"`
	UserID    string `json:"userId"`
}

// NewSocketServer initializes the Socket.IO server that carries the
// broadcast stream. Rooms are keyed by hotspot id; joining a room starts
// the presence heartbeat for that user. A disconnect only stops the
// heartbeat — the presence record is deleted on an explicit leave and
// otherwise ages out of the active window on its own.
func NewSocketServer(chat *services.ChatService, presence *services.PresenceService) *socketio.Server {
	server := socketio.NewServer(nil)

	var mu sync.Mutex
	heartbeats := map[string]map[string]func(){} // conn id -> hotspot id -> stop

	server.OnConnect("/", func(s socketio.Conn) error {
		log.Println("✅ Socket connected:", s.ID())
		return nil
	})

	server.OnEvent("/", "join", func(s socketio.Conn, payload joinPayload) {
		if payload.HotspotID == "" || payload.UserID == "" {
			log.Println("❌ Invalid join payload, hotspotId and userId are required")
			return
		}

		s.Join(payload.HotspotID)
		stop := presence.Begin(models.PresenceRecord{
			HotspotID:   payload.HotspotID,
			UserID:      payload.UserID,
			DisplayName: payload.DisplayName,
			AvatarKey:   payload.AvatarKey,
			StatusLabel: payload.StatusLabel,
		})

		mu.Lock()
		if heartbeats[s.ID()] == nil {
			heartbeats[s.ID()] = map[string]func(){}
		}
		if old := heartbeats[s.ID()][payload.HotspotID]; old != nil {
			old()
		}
		heartbeats[s.ID()][payload.HotspotID] = stop
		mu.Unlock()

		log.Printf("👥 %s joined hotspot %s", payload.UserID, payload.HotspotID)
		server.BroadcastToRoom("/", payload.HotspotID, EventPresenceJoin, payload)
	})

	server.OnEvent("/", "leave", func(s socketio.Conn, payload leavePayload) {
		if payload.HotspotID == "" || payload.UserID == "" {
			return
		}

		mu.Lock()
		if stop := heartbeats[s.ID()][payload.HotspotID]; stop != nil {
			stop()
			delete(heartbeats[s.ID()], payload.HotspotID)
		}
		mu.Unlock()

		// Explicit leave is the only path that deletes the record
		if err := presence.Leave(context.Background(), payload.HotspotID, payload.UserID); err != nil {
			log.Printf("⚠️ Presence delete failed on leave: %v", err)
		}
		s.Leave(payload.HotspotID)
		server.BroadcastToRoom("/", payload.HotspotID, EventPresenceLeave, payload)
	})

	server.OnEvent("/", "message:send", func(s socketio.Conn, msg models.ChatMessage) {
		if msg.HotspotID == "" || msg.SenderID == "" {
			log.Println("❌ Invalid message payload, hotspotId and senderId are required")
			return
		}
		if _, err := chat.SendMessage(context.Background(), msg); err != nil {
			log.Printf("❌ Failed to send message over socket: %v", err)
		}
	})

	server.OnError("/", func(s socketio.Conn, e error) {
		log.Println("⚠️ Socket error:", e)
	})

	server.OnDisconnect("/", func(s socketio.Conn, reason string) {
		mu.Lock()
		for _, stop := range heartbeats[s.ID()] {
			stop()
		}
		delete(heartbeats, s.ID())
		mu.Unlock()
		log.Println("❌ Socket disconnected:", s.ID(), reason)
	})

	return server
}
