package models

// Reaction is the aggregate view of one emoji on one message: how many
// users reacted and who they are. Count must always equal the number of
// reactor ids; an entry whose reactor set drains to empty is removed from
// the message rather than kept at zero.
type Reaction struct {
	Emoji      string   `dynamodbav:"emoji" json:"emoji"`
	Count      int      `dynamodbav:"count" json:"count"`
	ReactorIDs []string `dynamodbav:"reactorIds" json:"reactorIds"`
}

// HasReactor reports whether userID is in the reactor set
func (r Reaction) HasReactor(userID string) bool {
	for _, id := range r.ReactorIDs {
		if id == userID {
			return true
		}
	}
	return false
}

// AllowedReactionEmojis is the fixed emoji palette offered in hotspot chat
var AllowedReactionEmojis = []string{"❤️", "😂", "🔥", "👍", "😮", "😢"}

// IsAllowedReactionEmoji reports whether emoji belongs to the palette
func IsAllowedReactionEmoji(emoji string) bool {
	for _, e := range AllowedReactionEmojis {
		if e == emoji {
			return true
		}
	}
	return false
}
