package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputePaymentSignature(t *testing.T) {
	secret := "test_key_secret"
	orderID := "order_MkWoXW7vExy1ab"
	paymentID := "pay_MkWpQ9vExy2cd"

	got := ComputePaymentSignature(secret, orderID, paymentID)

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	want := hex.EncodeToString(mac.Sum(nil))

	assert.Equal(t, want, got)
	assert.Len(t, got, 64) // hex of a 32 byte digest
}

func TestVerifyPaymentSignature_RoundTrip(t *testing.T) {
	secret := "test_key_secret"
	sig := ComputePaymentSignature(secret, "order_abc", "pay_xyz")

	assert.True(t, VerifyPaymentSignature(secret, "order_abc", "pay_xyz", sig))
}

func TestVerifyPaymentSignature_TamperedSignature(t *testing.T) {
	secret := "test_key_secret"
	sig := ComputePaymentSignature(secret, "order_abc", "pay_xyz")

	// Flip one hex character.
	tampered := []byte(sig)
	if tampered[0] == 'a' {
		tampered[0] = 'b'
	} else {
		tampered[0] = 'a'
	}

	assert.False(t, VerifyPaymentSignature(secret, "order_abc", "pay_xyz", string(tampered)))
}

func TestVerifyPaymentSignature_WrongSecret(t *testing.T) {
	sig := ComputePaymentSignature("secret_one", "order_abc", "pay_xyz")
	assert.False(t, VerifyPaymentSignature("secret_two", "order_abc", "pay_xyz", sig))
}

func TestVerifyPaymentSignature_SwappedIDs(t *testing.T) {
	secret := "test_key_secret"
	sig := ComputePaymentSignature(secret, "order_abc", "pay_xyz")

	assert.False(t, VerifyPaymentSignature(secret, "pay_xyz", "order_abc", sig))
}

func TestVerifyPaymentSignature_EmptySignature(t *testing.T) {
	assert.False(t, VerifyPaymentSignature("test_key_secret", "order_abc", "pay_xyz", ""))
}

func TestAmountToPaise(t *testing.T) {
	cases := map[string]struct {
		amount float64
		want   int
	}{
		// 19.99*100 is 1998.999... in float64; truncation would lose a paisa
		"float sits below integer": {19.99, 1999},
		"exact rupees":             {2500, 250000},
		"typical total":            {1499.70, 149970},
		"discounted total":         {2599.35, 259935},
		"single paisa":             {0.01, 1},
		"zero":                     {0, 0},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, AmountToPaise(tc.amount))
		})
	}
}

func TestComputePaymentSignature_DistinctInputsDistinctSignatures(t *testing.T) {
	secret := "test_key_secret"
	a := ComputePaymentSignature(secret, "order_1", "pay_1")
	b := ComputePaymentSignature(secret, "order_1", "pay_2")
	require.NotEqual(t, a, b)
}
