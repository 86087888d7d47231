package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"hotspot_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

// ErrConnectionExists is returned when the pair is already connected
var ErrConnectionExists = errors.New("connection already exists")

// ConnectionService manages the symmetric user-pair relation that unlocks
// direct messaging, and the messages exchanged inside it.
type ConnectionService struct {
	Dynamo DynamoAPI
}

// GetConnection fetches the connection for a user pair, in either order.
// Returns ErrItemNotFound when the pair is not connected.
func (s *ConnectionService) GetConnection(ctx context.Context, userA, userB string) (*models.Connection, error) {
	key := map[string]types.AttributeValue{
		"connectionId": &types.AttributeValueMemberS{Value: models.PairConnectionID(userA, userB)},
	}

	item, err := s.Dynamo.GetItem(ctx, models.ConnectionsTable, key)
	if err != nil {
		return nil, err
	}

	var connection models.Connection
	if err := attributevalue.UnmarshalMap(item, &connection); err != nil {
		return nil, fmt.Errorf("failed to parse connection: %w", err)
	}
	return &connection, nil
}

// CreateConnection connects two users. The pair id is canonical, so
// (a,b) and (b,a) resolve to the same connection; an existence check
// before the insert keeps the relation from being duplicated.
func (s *ConnectionService) CreateConnection(ctx context.Context, userA, userB string) (*models.Connection, error) {
	if userA == "" || userB == "" || userA == userB {
		return nil, fmt.Errorf("invalid user pair (%q, %q)", userA, userB)
	}

	existing, err := s.GetConnection(ctx, userA, userB)
	if err != nil && !errors.Is(err, ErrItemNotFound) {
		log.Printf("❌ Failed to check existing connection: %v", err)
		return nil, fmt.Errorf("failed to check connection: %w", err)
	}
	if existing != nil {
		log.Printf("⚠️ Connection between %s and %s already exists", userA, userB)
		return existing, ErrConnectionExists
	}

	if strings.Compare(userA, userB) > 0 {
		userA, userB = userB, userA
	}
	connection := models.Connection{
		ConnectionID: models.PairConnectionID(userA, userB),
		UserA:        userA,
		UserB:        userB,
		CreatedAt:    time.Now().Format(time.RFC3339),
	}

	if err := s.Dynamo.PutItem(ctx, models.ConnectionsTable, connection); err != nil {
		log.Printf("❌ Failed to create connection: %v", err)
		return nil, fmt.Errorf("failed to create connection: %w", err)
	}

	log.Printf("🤝 Connection created: %s <-> %s", userA, userB)
	return &connection, nil
}

// SendDirectMessage stores a new message inside a connection. An empty
// body after trimming is a silent no-op.
func (s *ConnectionService) SendDirectMessage(ctx context.Context, msg models.DirectMessage) (*models.DirectMessage, error) {
	msg.Content = strings.TrimSpace(msg.Content)
	if msg.Content == "" {
		return nil, nil
	}

	msg.ConnectionID = models.PairConnectionID(msg.SenderID, msg.ReceiverID)
	msg.MessageID = uuid.New().String()
	msg.CreatedAt = time.Now().Format(time.RFC3339)
	msg.IsRead = false

	if err := s.Dynamo.PutItem(ctx, models.DirectMessagesTable, msg); err != nil {
		log.Printf("❌ Failed to store direct message: %v", err)
		return nil, fmt.Errorf("failed to store direct message: %w", err)
	}

	log.Printf("📩 Direct message %s stored for connection %s", msg.MessageID, msg.ConnectionID)
	return &msg, nil
}

// GetDirectMessages fetches the latest messages for a connection, oldest
// first in the returned slice.
func (s *ConnectionService) GetDirectMessages(ctx context.Context, userA, userB string, limit int) ([]models.DirectMessage, error) {
	connectionID := models.PairConnectionID(userA, userB)

	keyCondition := "connectionId = :connectionId"
	expressionValues := map[string]types.AttributeValue{
		":connectionId": &types.AttributeValueMemberS{Value: connectionID},
	}

	items, err := s.Dynamo.QueryItemsWithOptions(ctx, models.DirectMessagesTable, keyCondition, expressionValues, nil, int32(limit), true)
	if err != nil {
		log.Printf("❌ Error querying direct messages: %v", err)
		return nil, fmt.Errorf("failed to fetch direct messages: %w", err)
	}

	var messages []models.DirectMessage
	if err := attributevalue.UnmarshalListOfMaps(items, &messages); err != nil {
		log.Printf("❌ Error unmarshalling direct messages: %v", err)
		return nil, fmt.Errorf("failed to parse direct messages: %w", err)
	}

	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}

	log.Printf("✅ Found %d direct messages for connection %s", len(messages), connectionID)
	return messages, nil
}

// MarkMessagesAsRead marks every message addressed to userID in the
// connection as read. Individual update failures are logged and skipped.
func (s *ConnectionService) MarkMessagesAsRead(ctx context.Context, userA, userB, userID string) error {
	connectionID := models.PairConnectionID(userA, userB)
	log.Printf("🔄 Marking messages as read in connection %s for %s", connectionID, userID)

	keyCondition := "connectionId = :connectionId"
	expressionValues := map[string]types.AttributeValue{
		":connectionId": &types.AttributeValueMemberS{Value: connectionID},
	}

	items, err := s.Dynamo.QueryItems(ctx, models.DirectMessagesTable, keyCondition, expressionValues, nil, 100)
	if err != nil {
		log.Printf("❌ Error fetching direct messages: %v", err)
		return fmt.Errorf("failed to fetch direct messages: %w", err)
	}

	for _, item := range items {
		var msg models.DirectMessage
		if err := attributevalue.UnmarshalMap(item, &msg); err != nil {
			continue
		}
		if msg.ReceiverID != userID || msg.IsRead {
			continue
		}

		key := map[string]types.AttributeValue{
			"connectionId": &types.AttributeValueMemberS{Value: connectionID},
			"createdAt":    &types.AttributeValueMemberS{Value: msg.CreatedAt},
		}
		updateExpression := "SET isRead = :true"
		updateValues := map[string]types.AttributeValue{
			":true": &types.AttributeValueMemberBOOL{Value: true},
		}

		if _, err := s.Dynamo.UpdateItem(ctx, models.DirectMessagesTable, updateExpression, key, updateValues, nil); err != nil {
			log.Printf("❌ Failed to mark message %s as read: %v", msg.MessageID, err)
		}
	}

	log.Printf("✅ Messages marked as read in connection %s for %s", connectionID, userID)
	return nil
}
