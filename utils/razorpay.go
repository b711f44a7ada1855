package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/Tej-ashwani/StudyNotion/config"

	"github.com/go-resty/resty/v2"
)

// RazorpayOrder is the order descriptor returned by the gateway. It is passed
// through to the frontend, which opens the checkout with it.
type RazorpayOrder struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}

var razorpayClient = resty.New().SetBaseURL("https://api.razorpay.com/v1")

// CreateRazorpayOrder requests a new order from the Razorpay orders API.
// Amount is in minor currency units (paise).
func CreateRazorpayOrder(amount int64, currency, receipt string) (*RazorpayOrder, error) {
	var order RazorpayOrder

	resp, err := razorpayClient.R().
		SetBasicAuth(config.AppConfig.RazorpayKey, config.AppConfig.RazorpaySecret).
		SetBody(map[string]interface{}{
			"amount":   amount,
			"currency": currency,
			"receipt":  receipt,
		}).
		SetResult(&order).
		Post("/orders")
	if err != nil {
		return nil, fmt.Errorf("razorpay order request failed: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("razorpay order creation failed: %s", resp.Status())
	}

	return &order, nil
}

// VerifyRazorpaySignature recomputes the callback signature and compares it
// against the supplied one. The signature is HMAC-SHA256 over
// "order_id|payment_id" keyed with the gateway secret, hex encoded. This
// check is the sole proof of payment; the gateway is never polled for status.
func VerifyRazorpaySignature(orderID, paymentID, signature, secret string) bool {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(signature))
}
