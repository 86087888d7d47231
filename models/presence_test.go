package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestActiveAtWithinWindow(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	rec := PresenceRecord{LastSeen: now.Add(-5 * time.Minute).Format(time.RFC3339)}

	assert.True(t, rec.ActiveAt(now, 10*time.Minute))
}

func TestActiveAtOutsideWindow(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	rec := PresenceRecord{LastSeen: now.Add(-30 * time.Minute).Format(time.RFC3339)}

	assert.False(t, rec.ActiveAt(now, 10*time.Minute))
}

func TestActiveAtBoundaryIsStale(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	rec := PresenceRecord{LastSeen: now.Add(-10 * time.Minute).Format(time.RFC3339)}

	// now − lastSeen must be strictly less than the window
	assert.False(t, rec.ActiveAt(now, 10*time.Minute))
}

func TestActiveAtUnparseableLastSeen(t *testing.T) {
	rec := PresenceRecord{LastSeen: "not-a-timestamp"}
	assert.False(t, rec.ActiveAt(time.Now(), 10*time.Minute))
}

func TestAllStaleRecordsCountZero(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	window := 10 * time.Minute
	records := []PresenceRecord{
		{UserID: "a", LastSeen: now.Add(-11 * time.Minute).Format(time.RFC3339)},
		{UserID: "b", LastSeen: now.Add(-2 * time.Hour).Format(time.RFC3339)},
	}

	count := 0
	for _, rec := range records {
		if rec.ActiveAt(now, window) {
			count++
		}
	}
	assert.Equal(t, 0, count)
}
