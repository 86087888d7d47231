package models

import "strings"

// Connection is a symmetric relation between two users that unlocks direct
// messaging. Created once per pair, never duplicated.
type Connection struct {
	ConnectionID string `dynamodbav:"connectionId" json:"connectionId"` // Partition Key (canonical pair id)
	UserA        string `dynamodbav:"userA" json:"userA"`
	UserB        string `dynamodbav:"userB" json:"userB"`
	CreatedAt    string `dynamodbav:"createdAt" json:"createdAt"`
}

// DirectMessage is a directed message inside one connection pair
type DirectMessage struct {
	ConnectionID string `dynamodbav:"connectionId" json:"connectionId"` // Partition Key
	CreatedAt    string `dynamodbav:"createdAt" json:"createdAt"`       // Sort Key (Timestamp)
	MessageID    string `dynamodbav:"messageId" json:"messageId"`
	SenderID     string `dynamodbav:"senderId" json:"senderId"`
	ReceiverID   string `dynamodbav:"receiverId" json:"receiverId"`
	Content      string `dynamodbav:"content" json:"content"`
	IsRead       bool   `dynamodbav:"isRead" json:"isRead"`
}

// PairConnectionID derives the canonical connection id for two users.
// The ids are sorted first so (a,b) and (b,a) map to the same connection.
func PairConnectionID(userA, userB string) string {
	if strings.Compare(userA, userB) > 0 {
		userA, userB = userB, userA
	}
	return userA + "#" + userB
}

// ConnectionsTable is the DynamoDB table name for user connections
const ConnectionsTable = "Connections"

// DirectMessagesTable is the DynamoDB table name for direct messages
const DirectMessagesTable = "DirectMessages"
