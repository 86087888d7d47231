package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"hotspot_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/google/uuid"
)

// HotspotService manages the named location scopes users join
type HotspotService struct {
	Dynamo DynamoAPI
}

// CreateHotspot stores a new hotspot
func (s *HotspotService) CreateHotspot(ctx context.Context, hotspot models.Hotspot) (*models.Hotspot, error) {
	if hotspot.HotspotID == "" {
		hotspot.HotspotID = uuid.New().String()
	}
	hotspot.CreatedAt = time.Now().Format(time.RFC3339)

	if err := s.Dynamo.PutItem(ctx, models.HotspotsTable, hotspot); err != nil {
		log.Printf("❌ Failed to create hotspot: %v", err)
		return nil, fmt.Errorf("failed to create hotspot: %w", err)
	}

	log.Printf("📍 Hotspot %s (%s) created", hotspot.Name, hotspot.HotspotID)
	return &hotspot, nil
}

// GetHotspot fetches a hotspot by id
func (s *HotspotService) GetHotspot(ctx context.Context, hotspotID string) (*models.Hotspot, error) {
	key := map[string]types.AttributeValue{
		"hotspotId": &types.AttributeValueMemberS{Value: hotspotID},
	}

	item, err := s.Dynamo.GetItem(ctx, models.HotspotsTable, key)
	if err != nil {
		return nil, err
	}

	var hotspot models.Hotspot
	if err := attributevalue.UnmarshalMap(item, &hotspot); err != nil {
		return nil, fmt.Errorf("failed to parse hotspot: %w", err)
	}
	return &hotspot, nil
}

// ListHotspots returns all hotspots
func (s *HotspotService) ListHotspots(ctx context.Context) ([]models.Hotspot, error) {
	var hotspots []models.Hotspot
	if err := s.Dynamo.ScanWithFilter(ctx, models.HotspotsTable, nil, nil, &hotspots); err != nil {
		log.Printf("❌ Error scanning hotspots: %v", err)
		return nil, fmt.Errorf("failed to list hotspots: %w", err)
	}

	log.Printf("✅ Found %d hotspots", len(hotspots))
	return hotspots, nil
}
