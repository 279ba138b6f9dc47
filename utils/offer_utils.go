package utils

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/Keerthana-08/GemNest/models"
	"gorm.io/gorm"
)

// Business failures of offer evaluation. These are deliberate, frequent
// outcomes and must stay distinguishable from store failures (which come
// back wrapped via WrapError) so callers never retry a rule rejection.
var (
	// ErrEmptyOfferCode means the caller supplied no code to look up.
	ErrEmptyOfferCode = errors.New("offer code is required")
	// ErrInvalidSubtotal means the cart subtotal was negative or not a number.
	ErrInvalidSubtotal = errors.New("cart total must be a valid non-negative amount")
	// ErrOfferNotFound means no active offer matches the code inside its
	// date window right now.
	ErrOfferNotFound = errors.New("offer not found or expired")
)

// BelowMinimumOrderError rejects an offer whose minimum order threshold
// the cart does not meet. It carries the threshold so the storefront can
// tell the customer the exact shortfall.
type BelowMinimumOrderError struct {
	MinOrder float64
}

func (e *BelowMinimumOrderError) Error() string {
	return fmt.Sprintf("cart total is below the minimum order of %.2f for this offer", e.MinOrder)
}

// OfferEvaluation is the successful outcome of applying an offer to a
// cart subtotal.
type OfferEvaluation struct {
	Offer              models.Offer
	DiscountAmount     float64 // rounded to 2 decimals
	AppliedRatePercent float64
	MaxDiscount        float64
}

// Round2 rounds a currency amount to 2 decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// EvaluateOffer decides whether the offer is redeemable against the given
// subtotal at the given instant and computes the discount:
//
//	discount = min(subtotal * rate/100, maxDiscount)
//
// The minimum order check is inclusive (subtotal == threshold passes) and
// both date bounds are inclusive. Intermediate arithmetic keeps full float
// precision; only the returned amount is rounded. A zero rate yields a
// zero discount rather than an error.
func EvaluateOffer(offer models.Offer, cartSubtotal float64, now time.Time) (OfferEvaluation, error) {
	if math.IsNaN(cartSubtotal) || math.IsInf(cartSubtotal, 0) || cartSubtotal < 0 {
		return OfferEvaluation{}, ErrInvalidSubtotal
	}
	if !offer.Redeemable(now) {
		return OfferEvaluation{}, ErrOfferNotFound
	}
	if cartSubtotal < offer.OrderTotal {
		return OfferEvaluation{}, &BelowMinimumOrderError{MinOrder: offer.OrderTotal}
	}

	raw := cartSubtotal * offer.Rate / 100
	discount := raw
	if discount > offer.MaxDiscount {
		discount = offer.MaxDiscount
	}

	return OfferEvaluation{
		Offer:              offer,
		DiscountAmount:     Round2(discount),
		AppliedRatePercent: offer.Rate,
		MaxDiscount:        offer.MaxDiscount,
	}, nil
}

// FindRedeemableOffer looks up the active, in-window offer whose code
// matches the supplied one. Codes are matched case-insensitively with
// whitespace stripped, in Go rather than via a database collation, so the
// rule stays explicit and portable.
func FindRedeemableOffer(db *gorm.DB, code string, now time.Time) (models.Offer, error) {
	normalized := models.NormalizeOfferCode(code)
	if normalized == "" {
		return models.Offer{}, ErrEmptyOfferCode
	}

	var offers []models.Offer
	if err := db.Where("status = ? AND start_date <= ? AND end_date >= ?",
		models.OfferStatusActive, now, now).Find(&offers).Error; err != nil {
		return models.Offer{}, WrapError(err, "offer lookup failed")
	}

	for _, offer := range offers {
		if offer.Code() == normalized {
			return offer, nil
		}
	}
	return models.Offer{}, ErrOfferNotFound
}

// ApplyOfferCode combines lookup and evaluation: resolve the code, then
// compute the discount for the subtotal.
func ApplyOfferCode(db *gorm.DB, code string, cartSubtotal float64, now time.Time) (OfferEvaluation, error) {
	offer, err := FindRedeemableOffer(db, code, now)
	if err != nil {
		return OfferEvaluation{}, err
	}
	return EvaluateOffer(offer, cartSubtotal, now)
}
