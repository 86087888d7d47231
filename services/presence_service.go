package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"hotspot_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// DefaultPresenceWindow is how long a presence record counts as active
// after its last heartbeat.
const DefaultPresenceWindow = 10 * time.Minute

// DefaultHeartbeatInterval is how often a joined user's record is refreshed
const DefaultHeartbeatInterval = 30 * time.Second

// PresenceService maintains liveness records per (hotspot, user). A user
// is "here" iff their record was refreshed within the window; records are
// hard-deleted only on an explicit leave and otherwise age out passively,
// so presence survives an app suspension until the natural timeout.
type PresenceService struct {
	Dynamo   DynamoAPI
	Window   time.Duration
	Interval time.Duration
}

func (s *PresenceService) window() time.Duration {
	if s.Window > 0 {
		return s.Window
	}
	return DefaultPresenceWindow
}

func (s *PresenceService) interval() time.Duration {
	if s.Interval > 0 {
		return s.Interval
	}
	return DefaultHeartbeatInterval
}

// Heartbeat upserts the presence record with lastSeen = now
func (s *PresenceService) Heartbeat(ctx context.Context, rec models.PresenceRecord) error {
	rec.LastSeen = time.Now().Format(time.RFC3339)
	if err := s.Dynamo.PutItem(ctx, models.PresenceTable, rec); err != nil {
		log.Printf("❌ Heartbeat upsert failed for %s@%s: %v", rec.UserID, rec.HotspotID, err)
		return fmt.Errorf("failed to upsert presence: %w", err)
	}
	return nil
}

// Begin writes an immediate heartbeat and then keeps the record fresh on
// a fixed interval until the returned stop function is called. Stopping
// only ends the refresh; it never deletes the record — that is what Leave
// is for.
func (s *PresenceService) Begin(rec models.PresenceRecord) func() {
	if err := s.Heartbeat(context.Background(), rec); err != nil {
		log.Printf("⚠️ Initial heartbeat failed for %s@%s: %v", rec.UserID, rec.HotspotID, err)
	}

	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(s.interval())
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := s.Heartbeat(context.Background(), rec); err != nil {
					log.Printf("⚠️ Heartbeat failed for %s@%s: %v", rec.UserID, rec.HotspotID, err)
				}
			case <-done:
				return
			}
		}
	}()

	log.Printf("💓 Presence heartbeat started for %s@%s", rec.UserID, rec.HotspotID)
	return func() { close(done) }
}

// Leave deletes the presence record for an explicit user-initiated leave
func (s *PresenceService) Leave(ctx context.Context, hotspotID, userID string) error {
	key := map[string]types.AttributeValue{
		"hotspotId": &types.AttributeValueMemberS{Value: hotspotID},
		"userId":    &types.AttributeValueMemberS{Value: userID},
	}
	if err := s.Dynamo.DeleteItem(ctx, models.PresenceTable, key); err != nil {
		log.Printf("❌ Failed to delete presence for %s@%s: %v", userID, hotspotID, err)
		return fmt.Errorf("failed to delete presence: %w", err)
	}
	log.Printf("👋 %s left hotspot %s", userID, hotspotID)
	return nil
}

// ListActive returns the presence records at a hotspot whose lastSeen is
// inside the active window. Stale records are skipped, not deleted.
func (s *PresenceService) ListActive(ctx context.Context, hotspotID string) ([]models.PresenceRecord, error) {
	keyCondition := "hotspotId = :hotspotId"
	expressionValues := map[string]types.AttributeValue{
		":hotspotId": &types.AttributeValueMemberS{Value: hotspotID},
	}

	items, err := s.Dynamo.QueryItems(ctx, models.PresenceTable, keyCondition, expressionValues, nil, 200)
	if err != nil {
		log.Printf("❌ Error querying presence: %v", err)
		return nil, fmt.Errorf("failed to fetch presence records: %w", err)
	}

	var records []models.PresenceRecord
	if err := attributevalue.UnmarshalListOfMaps(items, &records); err != nil {
		log.Printf("❌ Error unmarshalling presence records: %v", err)
		return nil, fmt.Errorf("failed to parse presence records: %w", err)
	}

	now := time.Now()
	active := make([]models.PresenceRecord, 0, len(records))
	for _, rec := range records {
		if rec.ActiveAt(now, s.window()) {
			active = append(active, rec)
		}
	}

	log.Printf("✅ %d of %d presence records active at hotspot %s", len(active), len(records), hotspotID)
	return active, nil
}

// CountActive returns how many users are currently present at a hotspot
func (s *PresenceService) CountActive(ctx context.Context, hotspotID string) (int, error) {
	active, err := s.ListActive(ctx, hotspotID)
	if err != nil {
		return 0, err
	}
	return len(active), nil
}
