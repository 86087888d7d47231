package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"time"

	"hotspot_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// ErrAlreadyRedeemed is returned when a user has already redeemed an offer
var ErrAlreadyRedeemed = errors.New("offer already redeemed")

// OfferService handles merchant offers and their one-shot redemptions
type OfferService struct {
	Dynamo DynamoAPI
}

const redemptionCodeCharset = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// RedemptionCodeLength is the length of generated redemption codes
const RedemptionCodeLength = 8

// NewRedemptionCode generates a short uppercase alphanumeric token shown
// to the merchant at the counter. Not globally unique; collision odds are
// small at the expected volume.
func NewRedemptionCode(length int) string {
	code := make([]byte, length)
	for i := range code {
		code[i] = redemptionCodeCharset[rand.Intn(len(redemptionCodeCharset))]
	}
	return string(code)
}

// ListOffers fetches the offers available at a hotspot
func (s *OfferService) ListOffers(ctx context.Context, hotspotID string) ([]models.Offer, error) {
	keyCondition := "hotspotId = :hotspotId"
	expressionValues := map[string]types.AttributeValue{
		":hotspotId": &types.AttributeValueMemberS{Value: hotspotID},
	}

	items, err := s.Dynamo.QueryItems(ctx, models.OffersTable, keyCondition, expressionValues, nil, 100)
	if err != nil {
		log.Printf("❌ Error querying offers: %v", err)
		return nil, fmt.Errorf("failed to fetch offers: %w", err)
	}

	var offers []models.Offer
	if err := attributevalue.UnmarshalListOfMaps(items, &offers); err != nil {
		log.Printf("❌ Error unmarshalling offers: %v", err)
		return nil, fmt.Errorf("failed to parse offers: %w", err)
	}

	log.Printf("✅ Found %d offers for hotspot %s", len(offers), hotspotID)
	return offers, nil
}

// GetRedemption returns the existing redemption for (offerId, userId),
// or ErrItemNotFound when the user has not redeemed the offer.
func (s *OfferService) GetRedemption(ctx context.Context, offerID, userID string) (*models.OfferRedemption, error) {
	key := map[string]types.AttributeValue{
		"offerId": &types.AttributeValueMemberS{Value: offerID},
		"userId":  &types.AttributeValueMemberS{Value: userID},
	}

	item, err := s.Dynamo.GetItem(ctx, models.OfferRedemptionsTable, key)
	if err != nil {
		return nil, err
	}

	var redemption models.OfferRedemption
	if err := attributevalue.UnmarshalMap(item, &redemption); err != nil {
		return nil, fmt.Errorf("failed to parse redemption: %w", err)
	}
	return &redemption, nil
}

// Redeem performs the one-shot not-redeemed → redeemed transition: an
// existence check on (offerId, userId), then the insert with a freshly
// generated code. The check and the insert are two separate calls, so two
// truly concurrent submissions can both pass the check; exactly-once is
// not guaranteed under that race.
func (s *OfferService) Redeem(ctx context.Context, offerID, userID, businessID, hotspotID string) (*models.OfferRedemption, error) {
	existing, err := s.GetRedemption(ctx, offerID, userID)
	if err != nil && !errors.Is(err, ErrItemNotFound) {
		log.Printf("❌ Failed to check existing redemption: %v", err)
		return nil, fmt.Errorf("failed to check redemption: %w", err)
	}
	if existing != nil {
		log.Printf("⚠️ Offer %s already redeemed by %s", offerID, userID)
		return existing, ErrAlreadyRedeemed
	}

	redemption := models.OfferRedemption{
		OfferID:        offerID,
		UserID:         userID,
		BusinessID:     businessID,
		HotspotID:      hotspotID,
		RedemptionCode: NewRedemptionCode(RedemptionCodeLength),
		RedeemedAt:     time.Now().Format(time.RFC3339),
	}

	if err := s.Dynamo.PutItem(ctx, models.OfferRedemptionsTable, redemption); err != nil {
		log.Printf("❌ Failed to store redemption: %v", err)
		return nil, fmt.Errorf("failed to store redemption: %w", err)
	}

	log.Printf("🎟️ Offer %s redeemed by %s, code %s", offerID, userID, redemption.RedemptionCode)
	return &redemption, nil
}
