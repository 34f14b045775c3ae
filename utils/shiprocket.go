package utils

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/go-resty/resty/v2"

	"github.com/yashsingh9651/arvan-backend/config"
)

// ShiprocketClient relays orders to the Shiprocket external API. Tokens are
// fetched per call; Shiprocket tokens live for days but the volume here does
// not justify caching one.
type ShiprocketClient struct {
	http     *resty.Client
	email    string
	password string
}

func NewShiprocketClient(cfg *config.Config) *ShiprocketClient {
	client := resty.New().
		SetBaseURL("https://apiv2.shiprocket.in/v1/external")

	return &ShiprocketClient{
		http:     client,
		email:    cfg.ShiprocketEmail,
		password: cfg.ShiprocketPassword,
	}
}

func (s *ShiprocketClient) authToken() (string, error) {
	var result struct {
		Token string `json:"token"`
	}

	resp, err := s.http.R().
		SetBody(map[string]string{"email": s.email, "password": s.password}).
		SetResult(&result).
		Post("/auth/login")
	if err != nil {
		log.Printf("Shiprocket auth error: %v", err)
		return "", err
	}
	if resp.IsError() || result.Token == "" {
		return "", fmt.Errorf("shiprocket auth failed: %s", resp.String())
	}

	return result.Token, nil
}

// CreateOrder relays an adhoc shipment order and returns the provider's raw
// response payload.
func (s *ShiprocketClient) CreateOrder(order interface{}) (map[string]interface{}, error) {
	token, err := s.authToken()
	if err != nil {
		return nil, err
	}

	resp, err := s.http.R().
		SetAuthToken(token).
		SetBody(order).
		Post("/orders/create/adhoc")
	if err != nil {
		return nil, fmt.Errorf("shiprocket order create failed: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("shiprocket order create failed: %s", resp.String())
	}

	var data map[string]interface{}
	if err := json.Unmarshal(resp.Body(), &data); err != nil {
		return nil, fmt.Errorf("shiprocket response parse failed: %w", err)
	}

	return data, nil
}
