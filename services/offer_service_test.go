package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedeemFirstCallSucceeds(t *testing.T) {
	svc := &OfferService{Dynamo: newFakeDynamo()}

	redemption, err := svc.Redeem(context.Background(), "offer-1", "user-a", "biz-1", "hotspot-1")
	require.NoError(t, err)
	require.NotNil(t, redemption)

	assert.Equal(t, "offer-1", redemption.OfferID)
	assert.Equal(t, "user-a", redemption.UserID)
	assert.Len(t, redemption.RedemptionCode, RedemptionCodeLength)
	assert.NotEmpty(t, redemption.RedeemedAt)
}

func TestRedeemTwiceReportsAlreadyRedeemed(t *testing.T) {
	svc := &OfferService{Dynamo: newFakeDynamo()}

	first, err := svc.Redeem(context.Background(), "offer-1", "user-a", "biz-1", "hotspot-1")
	require.NoError(t, err)

	second, err := svc.Redeem(context.Background(), "offer-1", "user-a", "biz-1", "hotspot-1")
	assert.ErrorIs(t, err, ErrAlreadyRedeemed)
	require.NotNil(t, second)
	assert.Equal(t, first.RedemptionCode, second.RedemptionCode)

	// These calls are sequential. Two truly concurrent submissions could
	// both pass the existence check and insert twice; exactly-once under
	// that race is a known gap and is deliberately not asserted.
}

func TestRedeemDifferentUsersAreIndependent(t *testing.T) {
	svc := &OfferService{Dynamo: newFakeDynamo()}

	_, err := svc.Redeem(context.Background(), "offer-1", "user-a", "biz-1", "hotspot-1")
	require.NoError(t, err)

	other, err := svc.Redeem(context.Background(), "offer-1", "user-b", "biz-1", "hotspot-1")
	require.NoError(t, err)
	assert.Equal(t, "user-b", other.UserID)
}

func TestNewRedemptionCodeShape(t *testing.T) {
	for i := 0; i < 50; i++ {
		code := NewRedemptionCode(RedemptionCodeLength)

		assert.Len(t, code, RedemptionCodeLength)
		assert.Equal(t, strings.ToUpper(code), code)
		for _, ch := range code {
			assert.Contains(t, redemptionCodeCharset, string(ch))
		}
	}
}

func TestNewRedemptionCodeVaries(t *testing.T) {
	// Codes are random, not unique by construction; a duplicate-free run
	// of this size is still the overwhelmingly likely outcome.
	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		seen[NewRedemptionCode(RedemptionCodeLength)] = true
	}
	assert.Greater(t, len(seen), 1)
}
