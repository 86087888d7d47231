package reconcile

import (
	"testing"

	"hotspot_server/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHubKeepsHotspotsIsolated(t *testing.T) {
	h := NewHub()

	h.OptimisticInsert("hotspot-1", models.ChatMessage{MessageID: "temp-1", Content: "a"})
	h.Dispatch("hotspot-2", Event{Type: EventInserted, Message: models.ChatMessage{MessageID: "9", Content: "b"}})

	assert.Len(t, h.Messages("hotspot-1"), 1)
	assert.Len(t, h.Messages("hotspot-2"), 1)
	assert.Empty(t, h.Messages("hotspot-3"))
}

func TestHubSendLifecycle(t *testing.T) {
	h := NewHub()

	h.OptimisticInsert("hotspot-1", models.ChatMessage{MessageID: "temp-1", Content: "hi"})
	require.True(t, h.Confirm("hotspot-1", "temp-1", "42", "2026-08-31T12:00:05Z"))

	// Echo of our own write comes back over the stream and is discarded
	h.Dispatch("hotspot-1", Event{Type: EventInserted, Message: models.ChatMessage{MessageID: "42", Content: "hi"}})

	msgs := h.Messages("hotspot-1")
	require.Len(t, msgs, 1)
	assert.Equal(t, "42", msgs[0].MessageID)
}

func TestHubDropAfterFailedSend(t *testing.T) {
	h := NewHub()

	h.OptimisticInsert("hotspot-1", models.ChatMessage{MessageID: "temp-1", Content: "lost"})
	h.Drop("hotspot-1", "temp-1")

	assert.Empty(t, h.Messages("hotspot-1"))
}

func TestHubMessagesReturnsCopy(t *testing.T) {
	h := NewHub()
	h.OptimisticInsert("hotspot-1", models.ChatMessage{MessageID: "temp-1", Content: "hi"})

	msgs := h.Messages("hotspot-1")
	msgs[0].Content = "mutated"

	assert.Equal(t, "hi", h.Messages("hotspot-1")[0].Content)
}
