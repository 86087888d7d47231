package services

import (
	"context"
	"fmt"
	"log"

	"hotspot_server/models"
	"hotspot_server/reconcile"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// ReactionService toggles emoji reactions on hotspot chat messages.
//
// Unlike message sends, reactions are not optimistic: the remote store is
// read, the toggle is applied, and the whole reactions sequence is written
// back last-write-wins. Only after the write succeeds is the identical
// mutation applied to the live view. Two concurrent toggles on the same
// message can therefore lose an update; that read-modify-write window is a
// known property of this flow, kept as-is rather than papered over here.
type ReactionService struct {
	Dynamo    DynamoAPI
	Hub       *reconcile.Hub
	Broadcast BroadcastFunc
}

// ToggleReaction flips userID's reaction with emoji on the message keyed
// by (hotspotId, createdAt). On any read or write failure the operation is
// abandoned and local state is left untouched.
func (s *ReactionService) ToggleReaction(ctx context.Context, hotspotID, createdAt, userID, emoji string) ([]models.Reaction, error) {
	if !models.IsAllowedReactionEmoji(emoji) {
		return nil, fmt.Errorf("emoji %q is not in the reaction palette", emoji)
	}

	key := map[string]types.AttributeValue{
		"hotspotId": &types.AttributeValueMemberS{Value: hotspotID},
		"createdAt": &types.AttributeValueMemberS{Value: createdAt},
	}

	item, err := s.Dynamo.GetItem(ctx, models.MessagesTable, key)
	if err != nil {
		log.Printf("❌ Failed to read message for reaction toggle: %v", err)
		return nil, fmt.Errorf("failed to fetch message: %w", err)
	}

	var msg models.ChatMessage
	if err := attributevalue.UnmarshalMap(item, &msg); err != nil {
		log.Printf("❌ Error unmarshalling message: %v", err)
		return nil, fmt.Errorf("failed to parse message: %w", err)
	}

	updated := reconcile.ToggleReaction(msg.Reactions, userID, emoji)

	reactionsAttr, err := attributevalue.Marshal(updated)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal reactions: %w", err)
	}

	updateExpression := "SET reactions = :reactions"
	expressionValues := map[string]types.AttributeValue{
		":reactions": reactionsAttr,
	}

	if _, err := s.Dynamo.UpdateItem(ctx, models.MessagesTable, updateExpression, key, expressionValues, nil); err != nil {
		log.Printf("❌ Failed to write reactions for message %s: %v", msg.MessageID, err)
		return nil, fmt.Errorf("failed to store reactions: %w", err)
	}

	// Remote write succeeded, now apply the same mutation locally
	msg.Reactions = updated
	s.Hub.Dispatch(hotspotID, reconcile.Event{Type: reconcile.EventUpdated, Message: msg})
	if s.Broadcast != nil {
		s.Broadcast(hotspotID, reconcile.Event{Type: reconcile.EventUpdated, Message: msg})
	}

	log.Printf("✅ Reaction %s toggled by %s on message %s", emoji, userID, msg.MessageID)
	return updated, nil
}
