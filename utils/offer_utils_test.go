package utils

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/Keerthana-08/GemNest/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func festiveOffer() models.Offer {
	now := time.Now()
	return models.Offer{
		ID:          1,
		Title:       "Diwali Glow",
		Rate:        10,
		MaxDiscount: 500,
		OrderTotal:  1000,
		StartDate:   now.AddDate(0, 0, -7),
		EndDate:     now.AddDate(0, 0, 7),
		Status:      models.OfferStatusActive,
	}
}

func TestEvaluateOffer_DiscountClampedAtMax(t *testing.T) {
	offer := festiveOffer()

	// 10% of 5000 is 500, right at the cap.
	result, err := EvaluateOffer(offer, 5000, time.Now())
	require.NoError(t, err)
	assert.Equal(t, 500.00, result.DiscountAmount)

	// 10% of 10000 would be 1000, cap wins.
	result, err = EvaluateOffer(offer, 10000, time.Now())
	require.NoError(t, err)
	assert.Equal(t, 500.00, result.DiscountAmount)
}

func TestEvaluateOffer_PercentageBelowCap(t *testing.T) {
	result, err := EvaluateOffer(festiveOffer(), 2000, time.Now())
	require.NoError(t, err)
	assert.Equal(t, 200.00, result.DiscountAmount)
	assert.Equal(t, 10.0, result.AppliedRatePercent)
	assert.Equal(t, 500.0, result.MaxDiscount)
}

func TestEvaluateOffer_BelowMinimumOrder(t *testing.T) {
	_, err := EvaluateOffer(festiveOffer(), 500, time.Now())
	require.Error(t, err)

	var belowMin *BelowMinimumOrderError
	require.True(t, errors.As(err, &belowMin))
	assert.Equal(t, 1000.0, belowMin.MinOrder)
}

func TestEvaluateOffer_SubtotalEqualToMinimumPasses(t *testing.T) {
	result, err := EvaluateOffer(festiveOffer(), 1000, time.Now())
	require.NoError(t, err)
	assert.Equal(t, 100.00, result.DiscountAmount)
}

func TestEvaluateOffer_ExpiredOffer(t *testing.T) {
	offer := festiveOffer()
	offer.EndDate = time.Now().AddDate(0, 0, -1)

	_, err := EvaluateOffer(offer, 5000, time.Now())
	assert.ErrorIs(t, err, ErrOfferNotFound)
}

func TestEvaluateOffer_NotYetStarted(t *testing.T) {
	offer := festiveOffer()
	offer.StartDate = time.Now().AddDate(0, 0, 1)

	_, err := EvaluateOffer(offer, 5000, time.Now())
	assert.ErrorIs(t, err, ErrOfferNotFound)
}

func TestEvaluateOffer_EndDateIsInclusive(t *testing.T) {
	now := time.Now()
	offer := festiveOffer()
	offer.EndDate = now

	result, err := EvaluateOffer(offer, 2000, now)
	require.NoError(t, err)
	assert.Equal(t, 200.00, result.DiscountAmount)
}

func TestEvaluateOffer_StartDateIsInclusive(t *testing.T) {
	now := time.Now()
	offer := festiveOffer()
	offer.StartDate = now

	_, err := EvaluateOffer(offer, 2000, now)
	assert.NoError(t, err)
}

func TestEvaluateOffer_InactiveOffer(t *testing.T) {
	offer := festiveOffer()
	offer.Status = models.OfferStatusInactive

	_, err := EvaluateOffer(offer, 5000, time.Now())
	assert.ErrorIs(t, err, ErrOfferNotFound)
}

func TestEvaluateOffer_ZeroRateGivesZeroDiscount(t *testing.T) {
	offer := festiveOffer()
	offer.Rate = 0

	result, err := EvaluateOffer(offer, 5000, time.Now())
	require.NoError(t, err)
	assert.Equal(t, 0.00, result.DiscountAmount)
}

func TestEvaluateOffer_RoundsOnlyTheResult(t *testing.T) {
	offer := festiveOffer()
	offer.Rate = 7.5

	// 7.5% of 1333.33 = 99.99975, rounds to 100.00.
	result, err := EvaluateOffer(offer, 1333.33, time.Now())
	require.NoError(t, err)
	assert.Equal(t, 100.00, result.DiscountAmount)
}

func TestEvaluateOffer_InvalidSubtotal(t *testing.T) {
	offer := festiveOffer()

	for _, subtotal := range []float64{-1, math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := EvaluateOffer(offer, subtotal, time.Now())
		assert.ErrorIs(t, err, ErrInvalidSubtotal)
	}
}

func TestEvaluateOffer_ZeroSubtotalBelowMinimum(t *testing.T) {
	_, err := EvaluateOffer(festiveOffer(), 0, time.Now())

	var belowMin *BelowMinimumOrderError
	require.True(t, errors.As(err, &belowMin))
}

func TestEvaluateOffer_ZeroSubtotalNoMinimum(t *testing.T) {
	offer := festiveOffer()
	offer.OrderTotal = 0

	result, err := EvaluateOffer(offer, 0, time.Now())
	require.NoError(t, err)
	assert.Equal(t, 0.00, result.DiscountAmount)
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 10.56, Round2(10.556))
	assert.Equal(t, 10.55, Round2(10.554))
	assert.Equal(t, 0.00, Round2(0))
	assert.Equal(t, 100.00, Round2(99.999))
}
