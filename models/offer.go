package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// Offer status values
const (
	OfferStatusActive   = "Active"
	OfferStatusInactive = "Inactive"
)

// Offer is a time-boxed percentage discount with an absolute cap and a
// minimum order threshold. Customers redeem it by quoting its code at
// checkout; admins manage the full lifecycle.
type Offer struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Title       string         `json:"title"`
	Rate        float64        `json:"rate"`         // percentage, 0 < rate <= 100
	MaxDiscount float64        `json:"max_discount"` // absolute cap in rupees
	OrderTotal  float64        `json:"order_total"`  // minimum cart subtotal to redeem
	StartDate   time.Time      `json:"start_date"`
	EndDate     time.Time      `json:"end_date"`
	Status      string         `json:"status"` // Active or Inactive
	Banner      string         `json:"banner,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// Code returns the redeem code for the offer: the title uppercased with
// all whitespace stripped. The code is derived, never stored, so renaming
// an offer renames its code.
func (o Offer) Code() string {
	return NormalizeOfferCode(o.Title)
}

// NormalizeOfferCode uppercases a code and strips all whitespace so that
// "diwali glow" and "DIWALIGLOW" compare equal.
func NormalizeOfferCode(code string) string {
	return strings.ToUpper(strings.Join(strings.Fields(code), ""))
}

// OfferCodeTaken reports whether any offer other than excludeID derives
// the given normalized code. Codes come from titles, so creating and
// renaming both have to rule out a collision through this check.
func OfferCodeTaken(offers []Offer, code string, excludeID uint) bool {
	for _, o := range offers {
		if o.ID != excludeID && o.Code() == code {
			return true
		}
	}
	return false
}

// Redeemable reports whether the offer can be applied at the given
// instant. Both window bounds are inclusive: an offer whose end date
// equals now to the second is still live.
func (o Offer) Redeemable(now time.Time) bool {
	if o.Status != OfferStatusActive {
		return false
	}
	return !now.Before(o.StartDate) && !now.After(o.EndDate)
}
