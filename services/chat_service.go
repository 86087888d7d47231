package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"hotspot_server/models"
	"hotspot_server/reconcile"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

// BroadcastFunc fans an event out to every client in a hotspot's room.
// The socket layer provides the implementation at wiring time.
type BroadcastFunc func(hotspotID string, ev reconcile.Event)

// ChatService owns hotspot chat: persistence in DynamoDB, the live
// reconciled view in the hub, and fan-out over the broadcast stream.
type ChatService struct {
	Dynamo    DynamoAPI
	Hub       *reconcile.Hub
	Broadcast BroadcastFunc
}

// SendMessage inserts the message optimistically into the live view,
// persists it, and reconciles the outcome: on success the temporary id is
// replaced in place by the server-assigned one and the message is fanned
// out; on failure the optimistic entry is removed again.
//
// An empty (or over-long) body is a silent no-op, not an error.
func (s *ChatService) SendMessage(ctx context.Context, msg models.ChatMessage) (*models.ChatMessage, error) {
	msg.Content = strings.TrimSpace(msg.Content)
	if msg.Content == "" || len(msg.Content) > models.MaxMessageLength {
		log.Printf("⚠️ Dropping invalid message body for hotspot %s", msg.HotspotID)
		return nil, nil
	}

	tempID := reconcile.NextTempID()
	msg.MessageID = tempID
	msg.CreatedAt = time.Now().Format(time.RFC3339)
	msg.ModerationStatus = models.ModerationUnset

	// Optimistic display before the write completes
	s.Hub.OptimisticInsert(msg.HotspotID, msg)

	confirmed := msg
	confirmed.MessageID = uuid.New().String()
	confirmed.CreatedAt = time.Now().Format(time.RFC3339)

	if err := s.Dynamo.PutItem(ctx, models.MessagesTable, confirmed); err != nil {
		log.Printf("❌ Failed to store message, dropping optimistic entry: %v", err)
		s.Hub.Drop(msg.HotspotID, tempID)
		return nil, fmt.Errorf("failed to store message: %w", err)
	}

	s.Hub.Confirm(msg.HotspotID, tempID, confirmed.MessageID, confirmed.CreatedAt)
	log.Printf("📩 Message %s stored for hotspot %s", confirmed.MessageID, confirmed.HotspotID)

	if s.Broadcast != nil {
		s.Broadcast(confirmed.HotspotID, reconcile.Event{Type: reconcile.EventInserted, Message: confirmed})
	}
	return &confirmed, nil
}

// GetMessages fetches the latest messages for a hotspot (oldest first in
// the returned slice, so the newest message lands at the bottom in UI).
// Rejected messages are never returned.
func (s *ChatService) GetMessages(ctx context.Context, hotspotID string, limit int) ([]models.ChatMessage, error) {
	keyCondition := "hotspotId = :hotspotId"
	expressionValues := map[string]types.AttributeValue{
		":hotspotId": &types.AttributeValueMemberS{Value: hotspotID},
	}

	items, err := s.Dynamo.QueryItemsWithOptions(ctx, models.MessagesTable, keyCondition, expressionValues, nil, int32(limit), true)
	if err != nil {
		log.Printf("❌ Error querying messages: %v", err)
		return nil, fmt.Errorf("failed to fetch messages: %w", err)
	}

	var fetched []models.ChatMessage
	if err := attributevalue.UnmarshalListOfMaps(items, &fetched); err != nil {
		log.Printf("❌ Error unmarshalling messages: %v", err)
		return nil, fmt.Errorf("failed to parse messages: %w", err)
	}

	messages := make([]models.ChatMessage, 0, len(fetched))
	for i := len(fetched) - 1; i >= 0; i-- {
		if fetched[i].ModerationStatus == models.ModerationRejected {
			continue
		}
		messages = append(messages, fetched[i])
	}

	log.Printf("✅ Found %d messages for hotspot %s", len(messages), hotspotID)
	return messages, nil
}

// LiveMessages returns the reconciled in-memory view for a hotspot
func (s *ChatService) LiveMessages(hotspotID string) []models.ChatMessage {
	return s.Hub.Messages(hotspotID)
}

// ModerateMessage sets the moderation status of a message and fans the
// update out. A message moderated to rejected disappears from every live
// view; an approved one keeps showing.
func (s *ChatService) ModerateMessage(ctx context.Context, hotspotID, createdAt, status string) error {
	if status != models.ModerationApproved && status != models.ModerationRejected {
		return fmt.Errorf("invalid moderation status %q", status)
	}

	key := map[string]types.AttributeValue{
		"hotspotId": &types.AttributeValueMemberS{Value: hotspotID},
		"createdAt": &types.AttributeValueMemberS{Value: createdAt},
	}
	updateExpression := "SET moderationStatus = :status"
	expressionValues := map[string]types.AttributeValue{
		":status": &types.AttributeValueMemberS{Value: status},
	}

	attrs, err := s.Dynamo.UpdateItem(ctx, models.MessagesTable, updateExpression, key, expressionValues, nil)
	if err != nil {
		log.Printf("❌ Failed to update moderation status: %v", err)
		return fmt.Errorf("failed to update moderation status: %w", err)
	}

	var updated models.ChatMessage
	if err := attributevalue.UnmarshalMap(attrs, &updated); err != nil {
		log.Printf("❌ Error unmarshalling moderated message: %v", err)
		return fmt.Errorf("failed to parse moderated message: %w", err)
	}

	s.Hub.Dispatch(hotspotID, reconcile.Event{Type: reconcile.EventUpdated, Message: updated})
	if s.Broadcast != nil {
		s.Broadcast(hotspotID, reconcile.Event{Type: reconcile.EventUpdated, Message: updated})
	}
	log.Printf("🛡️ Message at %s in hotspot %s moderated to %s", createdAt, hotspotID, status)
	return nil
}

// DeleteMessage removes a message and fans the delete out. Deleting a
// message that is already gone is not an error.
func (s *ChatService) DeleteMessage(ctx context.Context, hotspotID, createdAt, messageID string) error {
	key := map[string]types.AttributeValue{
		"hotspotId": &types.AttributeValueMemberS{Value: hotspotID},
		"createdAt": &types.AttributeValueMemberS{Value: createdAt},
	}
	if err := s.Dynamo.DeleteItem(ctx, models.MessagesTable, key); err != nil {
		log.Printf("❌ Failed to delete message %s: %v", messageID, err)
		return fmt.Errorf("failed to delete message: %w", err)
	}

	s.Hub.Dispatch(hotspotID, reconcile.Event{Type: reconcile.EventDeleted, MessageID: messageID})
	if s.Broadcast != nil {
		s.Broadcast(hotspotID, reconcile.Event{Type: reconcile.EventDeleted, MessageID: messageID})
	}
	log.Printf("🗑️ Message %s deleted from hotspot %s", messageID, hotspotID)
	return nil
}
