package utils

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/yashsingh9651/arvan-backend/config"
)

// CloudinaryClient uploads images to Cloudinary using signed requests.
type CloudinaryClient struct {
	http      *resty.Client
	apiKey    string
	apiSecret string
}

func NewCloudinaryClient(cfg *config.Config) *CloudinaryClient {
	client := resty.New().
		SetBaseURL(fmt.Sprintf("https://api.cloudinary.com/v1_1/%s", cfg.CloudinaryCloudName))

	return &CloudinaryClient{
		http:      client,
		apiKey:    cfg.CloudinaryAPIKey,
		apiSecret: cfg.CloudinaryAPISecret,
	}
}

// signature is SHA-1 over the sorted upload params joined with the API secret,
// per Cloudinary's signed-upload scheme.
func (c *CloudinaryClient) signature(folder string, timestamp int64) string {
	toSign := fmt.Sprintf("folder=%s&timestamp=%d%s", folder, timestamp, c.apiSecret)
	sum := sha1.Sum([]byte(toSign))
	return hex.EncodeToString(sum[:])
}

// Upload streams one file to the "uploads" folder and returns its secure URL.
func (c *CloudinaryClient) Upload(filename string, file io.Reader) (string, error) {
	timestamp := time.Now().Unix()
	folder := "uploads"

	var result struct {
		SecureURL string `json:"secure_url"`
	}

	resp, err := c.http.R().
		SetFileReader("file", filename, file).
		SetFormData(map[string]string{
			"api_key":   c.apiKey,
			"timestamp": strconv.FormatInt(timestamp, 10),
			"folder":    folder,
			"signature": c.signature(folder, timestamp),
		}).
		SetResult(&result).
		Post("/auto/upload")
	if err != nil {
		return "", fmt.Errorf("cloudinary upload failed: %w", err)
	}
	if resp.IsError() || result.SecureURL == "" {
		return "", fmt.Errorf("cloudinary upload failed: %s", resp.String())
	}

	return result.SecureURL, nil
}
