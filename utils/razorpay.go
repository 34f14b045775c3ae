package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/go-resty/resty/v2"

	"github.com/yashsingh9651/arvan-backend/config"
)

// RazorpayOrder is the subset of the gateway's order entity the frontend needs.
type RazorpayOrder struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}

// RazorpayClient wraps the Razorpay Orders API.
type RazorpayClient struct {
	http      *resty.Client
	keySecret string
}

func NewRazorpayClient(cfg *config.Config) *RazorpayClient {
	client := resty.New().
		SetBaseURL("https://api.razorpay.com/v1").
		SetBasicAuth(cfg.RazorpayKeyID, cfg.RazorpayKeySecret)

	return &RazorpayClient{http: client, keySecret: cfg.RazorpayKeySecret}
}

// CreateOrder registers a payable order with the gateway. Amount is in the
// smallest currency unit (paise for INR).
func (r *RazorpayClient) CreateOrder(amountPaise int64, currency, receipt string) (*RazorpayOrder, error) {
	var order RazorpayOrder

	resp, err := r.http.R().
		SetBody(map[string]interface{}{
			"amount":   amountPaise,
			"currency": currency,
			"receipt":  receipt,
		}).
		SetResult(&order).
		Post("/orders")
	if err != nil {
		return nil, fmt.Errorf("razorpay order create failed: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("razorpay order create failed: %s", resp.String())
	}

	return &order, nil
}

// VerifySignature checks the checkout callback signature:
// HMAC-SHA256(order_id + "|" + payment_id) keyed with the API secret.
func (r *RazorpayClient) VerifySignature(orderID, paymentID, signature string) bool {
	mac := hmac.New(sha256.New, []byte(r.keySecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(signature))
}
