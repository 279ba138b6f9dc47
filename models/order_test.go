package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaymentConfirmable(t *testing.T) {
	assert.True(t, (&Order{PaymentStatus: PaymentStatusPending}).PaymentConfirmable())

	// Completed and Failed are terminal; a verified callback must not
	// move either of them.
	assert.False(t, (&Order{PaymentStatus: PaymentStatusCompleted}).PaymentConfirmable())
	assert.False(t, (&Order{PaymentStatus: PaymentStatusFailed}).PaymentConfirmable())
}
