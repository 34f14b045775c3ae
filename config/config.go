package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port      string
	Env       string
	JWTKey    string
	SaltRound int

	FrontendURL string

	TwilioAccountSID  string
	TwilioAuthToken   string
	TwilioWhatsAppNum string

	RazorpayKeyID     string
	RazorpayKeySecret string

	ShiprocketEmail    string
	ShiprocketPassword string

	SendgridAPIKey string
	ContactEmail   string
	SenderEmail    string

	CloudinaryCloudName string
	CloudinaryAPIKey    string
	CloudinaryAPISecret string
}

// Load initializes configuration from environment variables or defaults
func Load() *Config {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	cfg := &Config{
		Port:      getEnv("PORT", "3000"),
		Env:       getEnv("NODE_ENV", "development"),
		JWTKey:    getEnv("AUTH_SECRET", "defaultSecret"),
		SaltRound: getEnvInt("SALT_ROUND", 10),

		FrontendURL: getEnv("FRONTENDURL", "http://localhost:5173"),

		TwilioAccountSID:  getEnv("TWILIO_ACCOUNT_SID", ""),
		TwilioAuthToken:   getEnv("TWILIO_AUTH_TOKEN", ""),
		TwilioWhatsAppNum: getEnv("TWILIO_WHATSAPP_FROM", ""),

		RazorpayKeyID:     getEnv("RAZORPAY_KEY_ID", ""),
		RazorpayKeySecret: getEnv("RAZORPAY_KEY_SECRET", ""),

		ShiprocketEmail:    getEnv("SHIPROCKET_EMAIL", ""),
		ShiprocketPassword: getEnv("SHIPROCKET_PASSWORD", ""),

		SendgridAPIKey: getEnv("SENDGRID_API_KEY", ""),
		ContactEmail:   getEnv("CONTACT_EMAIL", ""),
		SenderEmail:    getEnv("SENDER_EMAIL", ""),

		CloudinaryCloudName: getEnv("CLOUDINARY_CLOUD_NAME", ""),
		CloudinaryAPIKey:    getEnv("CLOUDINARY_API_KEY", ""),
		CloudinaryAPISecret: getEnv("CLOUDINARY_API_SECRET", ""),
	}

	if cfg.JWTKey == "defaultSecret" {
		log.Println("Warning: Using default AUTH_SECRET. Update it in your environment.")
	}

	return cfg
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}
