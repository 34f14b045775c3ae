package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yashsingh9651/arvan-backend/config"
)

func signPayload(secret, orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifySignature(t *testing.T) {
	client := NewRazorpayClient(&config.Config{
		RazorpayKeyID:     "rzp_test_key",
		RazorpayKeySecret: "rzp_test_secret",
	})

	orderID := "order_ABC123"
	paymentID := "pay_XYZ789"
	good := signPayload("rzp_test_secret", orderID, paymentID)

	assert.True(t, client.VerifySignature(orderID, paymentID, good))
	assert.False(t, client.VerifySignature(orderID, paymentID, good+"00"))
	assert.False(t, client.VerifySignature(orderID, "pay_other", good))
	assert.False(t, client.VerifySignature(orderID, paymentID, signPayload("wrong_secret", orderID, paymentID)))
	assert.False(t, client.VerifySignature(orderID, paymentID, ""))
}
