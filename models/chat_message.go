package models

// ReplyRef points at the message a chat message replies to. Only a snippet
// of the original body is carried so the client can render the quote
// without another fetch.
type ReplyRef struct {
	MessageID  string `dynamodbav:"messageId" json:"messageId"`
	SenderName string `dynamodbav:"senderName" json:"senderName"`
	Snippet    string `dynamodbav:"snippet" json:"snippet"`
}

// ChatMessage represents a hotspot chat message stored in DynamoDB
type ChatMessage struct {
	HotspotID        string     `dynamodbav:"hotspotId" json:"hotspotId"` // Partition Key (Hotspot Identifier)
	CreatedAt        string     `dynamodbav:"createdAt" json:"createdAt"` // Sort Key (Timestamp)
	MessageID        string     `dynamodbav:"messageId" json:"messageId"` // Temporary client token until confirmed, then UUID
	SenderID         string     `dynamodbav:"senderId" json:"senderId"`
	SenderName       string     `dynamodbav:"senderName" json:"senderName"`
	SenderAvatar     string     `dynamodbav:"senderAvatar,omitempty" json:"senderAvatar,omitempty"`
	Content          string     `dynamodbav:"content" json:"content"`
	ReplyTo          *ReplyRef  `dynamodbav:"replyTo,omitempty" json:"replyTo,omitempty"`
	Reactions        []Reaction `dynamodbav:"reactions,omitempty" json:"reactions,omitempty"`
	ModerationStatus string     `dynamodbav:"moderationStatus,omitempty" json:"moderationStatus,omitempty"`
}

// MessagesTable is the DynamoDB table name for hotspot chat messages
const MessagesTable = "HotspotMessages"

// MaxMessageLength bounds the body of a chat message
const MaxMessageLength = 1000
