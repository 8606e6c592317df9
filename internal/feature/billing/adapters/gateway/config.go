// Package gateway provides the HTTP client for the external payment gateway.
package gateway

import (
	"os"
	"time"
)

// Config holds configuration for the payment gateway client.
type Config struct {
	KeyID         string        // API key id for basic auth
	KeySecret     string        // API key secret; also signs callbacks
	WebhookSecret string        // configured for parity; webhook ingestion lives elsewhere
	BaseURL       string        // e.g. "https://api.gateway.example"
	Timeout       time.Duration // HTTP request timeout
}

// LoadConfig loads payment gateway configuration from environment variables.
func LoadConfig() Config {
	return Config{
		KeyID:         os.Getenv("PAYMENT_KEY_ID"),
		KeySecret:     os.Getenv("PAYMENT_KEY_SECRET"),
		WebhookSecret: os.Getenv("PAYMENT_WEBHOOK_SECRET"),
		BaseURL:       os.Getenv("PAYMENT_BASE_URL"),
		Timeout:       10 * time.Second,
	}
}
