package controllers

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/Keerthana-08/GemNest/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatActiveOffers_EmptySerialisesAsArray(t *testing.T) {
	offers := formatActiveOffers(nil)

	require.NotNil(t, offers)
	data, err := json.Marshal(offers)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestFormatActiveOffers_Fields(t *testing.T) {
	end := time.Date(2026, 11, 14, 23, 59, 59, 0, time.UTC)
	offers := formatActiveOffers([]models.Offer{{
		Title:       "Diwali Glow",
		Rate:        10,
		MaxDiscount: 500,
		OrderTotal:  1000,
		EndDate:     end,
	}})

	require.Len(t, offers, 1)
	assert.Equal(t, "DIWALIGLOW", offers[0]["code"])
	assert.Equal(t, "2026-11-14", offers[0]["ends_at"])
	assert.Equal(t, 500.0, offers[0]["max_discount"])
}
