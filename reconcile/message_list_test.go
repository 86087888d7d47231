package reconcile

import (
	"fmt"
	"testing"

	"hotspot_server/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMessage(id, content string) models.ChatMessage {
	return models.ChatMessage{
		HotspotID: "hotspot-1",
		MessageID: id,
		SenderID:  "user-a",
		Content:   content,
		CreatedAt: "2026-08-31T12:00:00Z",
	}
}

func TestOptimisticInsertThenConfirm(t *testing.T) {
	l := NewMessageList()
	l.ApplyOptimisticInsert(newMessage("temp-1", "first"))
	l.ApplyOptimisticInsert(newMessage("temp-2", "hi"))

	ok := l.ConfirmInsert("temp-2", "42", "2026-08-31T12:00:05Z")
	require.True(t, ok)

	msgs := l.Messages()
	require.Len(t, msgs, 2)
	// Confirmed in place: same position, same content, server id and timestamp
	assert.Equal(t, "temp-1", msgs[0].MessageID)
	assert.Equal(t, "42", msgs[1].MessageID)
	assert.Equal(t, "hi", msgs[1].Content)
	assert.Equal(t, "2026-08-31T12:00:05Z", msgs[1].CreatedAt)
}

func TestConfirmMissingEntry(t *testing.T) {
	l := NewMessageList()
	assert.False(t, l.ConfirmInsert("temp-9", "42", "2026-08-31T12:00:00Z"))
	assert.Equal(t, 0, l.Len())
}

func TestDropOptimisticAfterFailedSend(t *testing.T) {
	l := NewMessageList()
	l.ApplyOptimisticInsert(newMessage("temp-1", "will fail"))
	l.ApplyOptimisticInsert(newMessage("temp-2", "stays"))

	l.DropOptimistic("temp-1")

	msgs := l.Messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, "temp-2", msgs[0].MessageID)
}

func TestBroadcastInsertDeduplicatesOwnEcho(t *testing.T) {
	l := NewMessageList()
	l.ApplyOptimisticInsert(newMessage("temp-1", "hi"))
	require.True(t, l.ConfirmInsert("temp-1", "42", "2026-08-31T12:00:05Z"))

	// The at-least-once stream echoes our own write back
	added := l.ApplyBroadcastInsert(newMessage("42", "hi"))
	assert.False(t, added)
	assert.Equal(t, 1, l.Len())
}

func TestBroadcastInsertFromOtherUserAppends(t *testing.T) {
	l := NewMessageList()
	l.ApplyOptimisticInsert(newMessage("temp-1", "mine"))

	added := l.ApplyBroadcastInsert(newMessage("77", "theirs"))
	assert.True(t, added)

	// FIFO by arrival, not re-sorted by timestamp
	msgs := l.Messages()
	require.Len(t, msgs, 2)
	assert.Equal(t, "temp-1", msgs[0].MessageID)
	assert.Equal(t, "77", msgs[1].MessageID)
}

func TestBroadcastInsertRejectedNeverVisible(t *testing.T) {
	l := NewMessageList()
	msg := newMessage("13", "spam")
	msg.ModerationStatus = models.ModerationRejected

	assert.False(t, l.ApplyBroadcastInsert(msg))
	assert.Equal(t, 0, l.Len())
}

func TestBroadcastUpdateRejectionDelists(t *testing.T) {
	l := NewMessageList()
	l.ApplyBroadcastInsert(newMessage("1", "keep"))
	l.ApplyBroadcastInsert(newMessage("2", "remove"))

	rejected := newMessage("2", "remove")
	rejected.ModerationStatus = models.ModerationRejected
	l.ApplyBroadcastUpdate(rejected)

	msgs := l.Messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, "1", msgs[0].MessageID)
}

func TestBroadcastUpdateApprovedKeepsShowing(t *testing.T) {
	l := NewMessageList()
	l.ApplyBroadcastInsert(newMessage("1", "hello"))

	approved := newMessage("1", "hello")
	approved.ModerationStatus = models.ModerationApproved
	l.ApplyBroadcastUpdate(approved)

	assert.Equal(t, 1, l.Len())
}

func TestBroadcastUpdatePatchesOnlyReactions(t *testing.T) {
	l := NewMessageList()
	l.ApplyBroadcastInsert(newMessage("1", "original"))

	update := newMessage("1", "tampered body")
	update.SenderID = "someone-else"
	update.Reactions = []models.Reaction{{Emoji: "😂", Count: 1, ReactorIDs: []string{"user-b"}}}
	l.ApplyBroadcastUpdate(update)

	msgs := l.Messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, "original", msgs[0].Content)
	assert.Equal(t, "user-a", msgs[0].SenderID)
	require.Len(t, msgs[0].Reactions, 1)
	assert.Equal(t, "😂", msgs[0].Reactions[0].Emoji)
}

func TestBroadcastUpdateMissingEntryIsNoop(t *testing.T) {
	l := NewMessageList()
	l.ApplyBroadcastUpdate(newMessage("404", "ghost"))
	assert.Equal(t, 0, l.Len())
}

func TestBroadcastDeleteIsIdempotent(t *testing.T) {
	l := NewMessageList()
	l.ApplyBroadcastInsert(newMessage("1", "bye"))

	l.ApplyBroadcastDelete("1")
	assert.Equal(t, 0, l.Len())

	// Already removed, absence is not an error
	l.ApplyBroadcastDelete("1")
	assert.Equal(t, 0, l.Len())
}

func TestDispatchRoutesEvents(t *testing.T) {
	l := NewMessageList()

	l.Dispatch(Event{Type: EventInserted, Message: newMessage("1", "a")})
	assert.Equal(t, 1, l.Len())

	update := newMessage("1", "a")
	update.Reactions = []models.Reaction{{Emoji: "🔥", Count: 1, ReactorIDs: []string{"user-b"}}}
	l.Dispatch(Event{Type: EventUpdated, Message: update})
	assert.Len(t, l.Messages()[0].Reactions, 1)

	l.Dispatch(Event{Type: EventDeleted, MessageID: "1"})
	assert.Equal(t, 0, l.Len())
}

func TestLiveViewIsBounded(t *testing.T) {
	l := NewMessageList()
	for i := 0; i < MaxLiveMessages+50; i++ {
		l.ApplyBroadcastInsert(newMessage(fmt.Sprintf("%d", i), "chatter"))
	}

	assert.Equal(t, MaxLiveMessages, l.Len())

	// Oldest entries fall off the front; the newest survive in order
	msgs := l.Messages()
	assert.Equal(t, "50", msgs[0].MessageID)
	assert.Equal(t, fmt.Sprintf("%d", MaxLiveMessages+49), msgs[len(msgs)-1].MessageID)
}

func TestOptimisticInsertRespectsBound(t *testing.T) {
	l := NewMessageList()
	for i := 0; i < MaxLiveMessages; i++ {
		l.ApplyBroadcastInsert(newMessage(fmt.Sprintf("%d", i), "chatter"))
	}

	l.ApplyOptimisticInsert(newMessage("temp-new", "mine"))

	msgs := l.Messages()
	require.Len(t, msgs, MaxLiveMessages)
	// The fresh optimistic entry sits at the tail and can still confirm
	assert.Equal(t, "temp-new", msgs[len(msgs)-1].MessageID)
	assert.True(t, l.ConfirmInsert("temp-new", "real-id", "2026-08-31T12:00:05Z"))
}

func TestNextTempIDIsUnique(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := NextTempID()
		assert.True(t, IsTempID(id))
		assert.False(t, seen[id], "temp id %s repeated", id)
		seen[id] = true
	}
}
