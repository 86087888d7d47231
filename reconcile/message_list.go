package reconcile

import (
	"fmt"
	"strings"
	"sync/atomic"

	"hotspot_server/models"
)

// MessageList is the reconciled view of one hotspot's chat: an ordered
// sequence of messages merged from three sources that may race with each
// other — optimistic local inserts, server confirmations of those inserts,
// and broadcast-delivered row changes (which include echoes of this
// client's own writes, since delivery is at-least-once).
//
// The sequence is strictly FIFO by arrival. Confirmation replaces an entry
// in place; nothing ever re-sorts by timestamp after the fact. At most one
// live entry exists per logical message id, and a rejected message is
// never visible.
type MessageList struct {
	messages []models.ChatMessage
}

// MaxLiveMessages bounds the reconciled view per hotspot. The live list
// backs the in-session scrollback, not history; once it fills, the oldest
// entries fall off as new ones arrive. History stays queryable from the
// message table.
const MaxLiveMessages = 200

// NewMessageList returns an empty reconciled message list
func NewMessageList() *MessageList {
	return &MessageList{}
}

var tempCounter atomic.Int64

// NextTempID returns a monotonically-unique client token used as the id
// of an optimistic message until the server assigns the real one.
func NextTempID() string {
	return fmt.Sprintf("temp-%d", tempCounter.Add(1))
}

// IsTempID reports whether id is a client token from NextTempID
func IsTempID(id string) bool {
	return strings.HasPrefix(id, "temp-")
}

// ApplyOptimisticInsert appends msg at the tail immediately, before the
// remote write completes. The message keeps its temporary id until
// ConfirmInsert or DropOptimistic resolves it.
func (l *MessageList) ApplyOptimisticInsert(msg models.ChatMessage) {
	l.messages = append(l.messages, msg)
	l.trim()
}

// ConfirmInsert locates the optimistic entry by its temporary id and
// swaps in the server-assigned id and timestamp, preserving its position
// and content. Returns false if the entry is gone (e.g. already dropped).
func (l *MessageList) ConfirmInsert(tempID, messageID, createdAt string) bool {
	for i := range l.messages {
		if l.messages[i].MessageID == tempID {
			l.messages[i].MessageID = messageID
			l.messages[i].CreatedAt = createdAt
			return true
		}
	}
	return false
}

// DropOptimistic removes the optimistic entry after a failed send
func (l *MessageList) DropOptimistic(tempID string) {
	l.remove(tempID)
}

// ApplyBroadcastInsert adds a broadcast-delivered message unless an entry
// with the same final id already exists — the echo of this client's own
// write is discarded rather than duplicated. Rejected messages are never
// admitted. Returns true if the message was added.
func (l *MessageList) ApplyBroadcastInsert(msg models.ChatMessage) bool {
	if msg.ModerationStatus == models.ModerationRejected {
		return false
	}
	for i := range l.messages {
		if l.messages[i].MessageID == msg.MessageID {
			return false
		}
	}
	l.messages = append(l.messages, msg)
	l.trim()
	return true
}

// ApplyBroadcastUpdate handles a row update. A message moderated to
// rejected is delisted entirely; any other update patches only the
// reactions of the matching entry, leaving all other fields untouched.
// A missing entry is not an error.
func (l *MessageList) ApplyBroadcastUpdate(msg models.ChatMessage) {
	if msg.ModerationStatus == models.ModerationRejected {
		l.remove(msg.MessageID)
		return
	}
	for i := range l.messages {
		if l.messages[i].MessageID == msg.MessageID {
			l.messages[i].Reactions = msg.Reactions
			return
		}
	}
}

// ApplyBroadcastDelete removes the entry with the deleted id. The entry
// may already be gone; that is not an error.
func (l *MessageList) ApplyBroadcastDelete(messageID string) {
	l.remove(messageID)
}

// Dispatch routes an inbound broadcast event into the matching transition
func (l *MessageList) Dispatch(ev Event) {
	switch ev.Type {
	case EventInserted:
		l.ApplyBroadcastInsert(ev.Message)
	case EventUpdated:
		l.ApplyBroadcastUpdate(ev.Message)
	case EventDeleted:
		l.ApplyBroadcastDelete(ev.MessageID)
	}
}

// Messages returns a copy of the visible sequence in arrival order
func (l *MessageList) Messages() []models.ChatMessage {
	out := make([]models.ChatMessage, len(l.messages))
	copy(out, l.messages)
	return out
}

// Len returns the number of visible messages
func (l *MessageList) Len() int {
	return len(l.messages)
}

// trim drops the oldest entries once the list exceeds MaxLiveMessages.
// Appends happen at the tail, so an unconfirmed optimistic entry is only
// evicted after MaxLiveMessages newer arrivals.
func (l *MessageList) trim() {
	if excess := len(l.messages) - MaxLiveMessages; excess > 0 {
		l.messages = append(l.messages[:0], l.messages[excess:]...)
	}
}

func (l *MessageList) remove(messageID string) {
	for i := range l.messages {
		if l.messages[i].MessageID == messageID {
			l.messages = append(l.messages[:i], l.messages[i+1:]...)
			return
		}
	}
}
