package models

// Offer is a merchant offer scoped to a hotspot
type Offer struct {
	HotspotID   string `dynamodbav:"hotspotId" json:"hotspotId"` // Partition Key
	OfferID     string `dynamodbav:"offerId" json:"offerId"`     // Sort Key
	BusinessID  string `dynamodbav:"businessId" json:"businessId"`
	Title       string `dynamodbav:"title" json:"title"`
	Description string `dynamodbav:"description,omitempty" json:"description,omitempty"`
	ExpiresAt   string `dynamodbav:"expiresAt,omitempty" json:"expiresAt,omitempty"`
}

// OfferRedemption records a single user redeeming a single offer.
// At most one redemption per (offerId, userId) pair, enforced by an
// existence check before insert.
type OfferRedemption struct {
	OfferID        string `dynamodbav:"offerId" json:"offerId"` // Partition Key
	UserID         string `dynamodbav:"userId" json:"userId"`   // Sort Key
	BusinessID     string `dynamodbav:"businessId" json:"businessId"`
	HotspotID      string `dynamodbav:"hotspotId" json:"hotspotId"`
	RedemptionCode string `dynamodbav:"redemptionCode" json:"redemptionCode"`
	RedeemedAt     string `dynamodbav:"redeemedAt" json:"redeemedAt"`
}

// OffersTable is the DynamoDB table name for merchant offers
const OffersTable = "Offers"

// OfferRedemptionsTable is the DynamoDB table name for redemptions
const OfferRedemptionsTable = "OfferRedemptions"
