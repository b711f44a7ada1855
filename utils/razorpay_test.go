package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func signPayload(orderID, paymentID, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifyRazorpaySignature(t *testing.T) {
	secret := "test_secret_key"
	orderID := "order_Mj8kT3pQxYz1a2"
	paymentID := "pay_Nk9lU4qRyZa3b4"

	signature := signPayload(orderID, paymentID, secret)

	assert.True(t, VerifyRazorpaySignature(orderID, paymentID, signature, secret))
}

func TestVerifyRazorpaySignatureRejectsTampered(t *testing.T) {
	secret := "test_secret_key"
	orderID := "order_Mj8kT3pQxYz1a2"
	paymentID := "pay_Nk9lU4qRyZa3b4"

	signature := signPayload(orderID, paymentID, secret)

	// Flip a single hex character
	tampered := []byte(signature)
	if tampered[0] == 'a' {
		tampered[0] = 'b'
	} else {
		tampered[0] = 'a'
	}

	assert.False(t, VerifyRazorpaySignature(orderID, paymentID, string(tampered), secret))
	assert.False(t, VerifyRazorpaySignature(orderID, paymentID, signature, "wrong_secret"))
	assert.False(t, VerifyRazorpaySignature("order_other", paymentID, signature, secret))
	assert.False(t, VerifyRazorpaySignature(orderID, "pay_other", signature, secret))
	assert.False(t, VerifyRazorpaySignature(orderID, paymentID, "", secret))
}
