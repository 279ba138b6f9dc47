package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOfferCodeDerivedFromTitle(t *testing.T) {
	cases := []struct {
		title string
		code  string
	}{
		{"Diwali Glow", "DIWALIGLOW"},
		{"diwali glow", "DIWALIGLOW"},
		{"  Festive   Season  Sale ", "FESTIVESEASONSALE"},
		{"GOLD10", "GOLD10"},
		{"", ""},
	}
	for _, tc := range cases {
		offer := Offer{Title: tc.title}
		assert.Equal(t, tc.code, offer.Code(), "title %q", tc.title)
	}
}

func TestNormalizeOfferCodeMatchesDerivedCode(t *testing.T) {
	offer := Offer{Title: "Diwali Glow"}

	assert.Equal(t, offer.Code(), NormalizeOfferCode("diwaliglow"))
	assert.Equal(t, offer.Code(), NormalizeOfferCode("  DiWaLi  gLoW  "))
	assert.NotEqual(t, offer.Code(), NormalizeOfferCode("diwali-glow"))
}

func TestOfferCodeTaken(t *testing.T) {
	offers := []Offer{
		{ID: 1, Title: "Diwali Glow"},
		{ID: 2, Title: "Festive Season Sale"},
	}

	// Creating a third offer whose title normalizes to an existing code.
	assert.True(t, OfferCodeTaken(offers, NormalizeOfferCode("diwali  glow"), 0))
	assert.False(t, OfferCodeTaken(offers, NormalizeOfferCode("Summer Sparkle"), 0))

	// Renaming offer 2 onto offer 1's code must collide; an offer never
	// collides with its own current code.
	assert.True(t, OfferCodeTaken(offers, NormalizeOfferCode("Diwali Glow"), 2))
	assert.False(t, OfferCodeTaken(offers, NormalizeOfferCode("Festive Season Sale"), 2))
}

func TestOfferRedeemableWindow(t *testing.T) {
	now := time.Now()
	offer := Offer{
		Status:    OfferStatusActive,
		StartDate: now.AddDate(0, 0, -1),
		EndDate:   now.AddDate(0, 0, 1),
	}

	assert.True(t, offer.Redeemable(now))

	// Both bounds are inclusive.
	assert.True(t, offer.Redeemable(offer.StartDate))
	assert.True(t, offer.Redeemable(offer.EndDate))

	assert.False(t, offer.Redeemable(offer.StartDate.Add(-time.Second)))
	assert.False(t, offer.Redeemable(offer.EndDate.Add(time.Second)))
}

func TestOfferRedeemableRequiresActiveStatus(t *testing.T) {
	now := time.Now()
	offer := Offer{
		Status:    OfferStatusInactive,
		StartDate: now.AddDate(0, 0, -1),
		EndDate:   now.AddDate(0, 0, 1),
	}
	assert.False(t, offer.Redeemable(now))
}
