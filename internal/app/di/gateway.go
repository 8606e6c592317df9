// Package di provides dependency injection factories for creating application components.
package di

import (
	"marketlens/internal/feature/billing/adapters/gateway"
	infrahttp "marketlens/internal/platform/http"
)

// NewPaymentGateway creates a fully configured payment gateway client with HTTP client.
func NewPaymentGateway() *gateway.Client {
	cfg := gateway.LoadConfig()
	httpClient := infrahttp.NewHTTPClient(cfg.Timeout)
	return gateway.NewClient(cfg, httpClient)
}
