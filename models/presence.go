package models

import "time"

// PresenceRecord is the liveness record for one user at one hotspot,
// refreshed by the heartbeat. Records are only hard-deleted on an explicit
// leave; otherwise they passively age out of the active window.
type PresenceRecord struct {
	HotspotID   string `dynamodbav:"hotspotId" json:"hotspotId"` // Partition Key
	UserID      string `dynamodbav:"userId" json:"userId"`       // Sort Key
	DisplayName string `dynamodbav:"displayName" json:"displayName"`
	AvatarKey   string `dynamodbav:"avatarKey,omitempty" json:"avatarKey,omitempty"`
	StatusLabel string `dynamodbav:"statusLabel,omitempty" json:"statusLabel,omitempty"`
	LastSeen    string `dynamodbav:"lastSeen" json:"lastSeen"` // RFC3339
}

// ActiveAt reports whether the record counts as present: now − lastSeen
// must be strictly inside the window. An unparseable lastSeen is stale.
func (p PresenceRecord) ActiveAt(now time.Time, window time.Duration) bool {
	lastSeen, err := time.Parse(time.RFC3339, p.LastSeen)
	if err != nil {
		return false
	}
	return now.Sub(lastSeen) < window
}

// PresenceTable is the DynamoDB table name for presence records
const PresenceTable = "HotspotPresence"
