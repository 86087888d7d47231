package reconcile

import (
	"testing"

	"hotspot_server/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggleOnEmptyList(t *testing.T) {
	out := ToggleReaction(nil, "user-a", "😂")

	require.Len(t, out, 1)
	assert.Equal(t, "😂", out[0].Emoji)
	assert.Equal(t, 1, out[0].Count)
	assert.Equal(t, []string{"user-a"}, out[0].ReactorIDs)
}

func TestToggleTwiceReturnsToOriginal(t *testing.T) {
	initial := []models.Reaction{{Emoji: "🔥", Count: 1, ReactorIDs: []string{"user-b"}}}

	once := ToggleReaction(initial, "user-a", "🔥")
	twice := ToggleReaction(once, "user-a", "🔥")

	assert.Equal(t, initial, twice)
}

func TestToggleOffLastReactorRemovesEntry(t *testing.T) {
	initial := []models.Reaction{
		{Emoji: "❤️", Count: 1, ReactorIDs: []string{"user-a"}},
		{Emoji: "👍", Count: 1, ReactorIDs: []string{"user-b"}},
	}

	out := ToggleReaction(initial, "user-a", "❤️")

	// No zero-count entries persist
	require.Len(t, out, 1)
	assert.Equal(t, "👍", out[0].Emoji)
}

func TestTwoUsersToggleSameEmoji(t *testing.T) {
	out := ToggleReaction(nil, "A", "😂")
	out = ToggleReaction(out, "B", "😂")

	require.Len(t, out, 1)
	assert.Equal(t, 2, out[0].Count)
	assert.ElementsMatch(t, []string{"A", "B"}, out[0].ReactorIDs)
}

func TestCountAlwaysMatchesReactorSet(t *testing.T) {
	out := ToggleReaction(nil, "A", "😮")
	out = ToggleReaction(out, "B", "😮")
	out = ToggleReaction(out, "A", "😮")
	out = ToggleReaction(out, "C", "😢")

	for _, r := range out {
		assert.Equal(t, len(r.ReactorIDs), r.Count, "count drifted for %s", r.Emoji)
	}
}

func TestToggleDoesNotMutateInput(t *testing.T) {
	initial := []models.Reaction{{Emoji: "🔥", Count: 1, ReactorIDs: []string{"user-b"}}}

	_ = ToggleReaction(initial, "user-a", "🔥")

	assert.Equal(t, 1, initial[0].Count)
	assert.Equal(t, []string{"user-b"}, initial[0].ReactorIDs)
}

func TestToggleLeavesOtherEmojisAlone(t *testing.T) {
	initial := []models.Reaction{
		{Emoji: "❤️", Count: 2, ReactorIDs: []string{"x", "y"}},
	}

	out := ToggleReaction(initial, "user-a", "😂")

	require.Len(t, out, 2)
	assert.Equal(t, "❤️", out[0].Emoji)
	assert.Equal(t, 2, out[0].Count)
	assert.Equal(t, "😂", out[1].Emoji)
}
