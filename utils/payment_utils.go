package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"math"
)

// AmountToPaise converts a rupee amount to whole paise for the gateway.
// Rounds to the nearest paisa; truncation would undercharge amounts
// whose float representation sits just below the integer.
func AmountToPaise(amount float64) int {
	return int(math.Round(amount * 100))
}

// ComputePaymentSignature recomputes the signature Razorpay attaches to a
// payment callback: hex-encoded HMAC-SHA256 over "orderID|paymentID" with
// the key secret. The gateway is never called back to re-verify.
func ComputePaymentSignature(secret, gatewayOrderID, gatewayPaymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(gatewayOrderID + "|" + gatewayPaymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifyPaymentSignature reports whether the supplied signature matches
// the expected one. The comparison is constant time; a length mismatch
// and a content mismatch are indistinguishable to the caller.
func VerifyPaymentSignature(secret, gatewayOrderID, gatewayPaymentID, suppliedSignature string) bool {
	expected := ComputePaymentSignature(secret, gatewayOrderID, gatewayPaymentID)
	return hmac.Equal([]byte(expected), []byte(suppliedSignature))
}
