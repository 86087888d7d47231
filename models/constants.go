package models

// ✅ Moderation states for hotspot chat messages
const (
	ModerationUnset    = ""
	ModerationApproved = "approved"
	ModerationRejected = "rejected"
)
