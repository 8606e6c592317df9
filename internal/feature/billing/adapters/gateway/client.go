package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
)

// Client calls the payment gateway's order API.
type Client struct {
	cfg    Config
	client *http.Client
}

// NewClient creates a gateway client with the given configuration and HTTP
// client.
func NewClient(cfg Config, client *http.Client) *Client {
	return &Client{cfg: cfg, client: client}
}

type createOrderRequest struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}

type createOrderResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	Error  struct {
		Description string `json:"description"`
	} `json:"error"`
}

// CreateOrder registers an order with the gateway and returns the gateway
// order id the client-side checkout widget is initialized with.
func (g *Client) CreateOrder(ctx context.Context, amount int64, currency, receipt string) (string, error) {
	body, err := json.Marshal(createOrderRequest{
		Amount:   amount,
		Currency: currency,
		Receipt:  receipt,
	})
	if err != nil {
		return "", err
	}

	u := fmt.Sprintf("%s/v1/orders", g.cfg.BaseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(g.cfg.KeyID, g.cfg.KeySecret)

	res, err := g.client.Do(req)
	if err != nil {
		return "", err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 400 {
		return "", fmt.Errorf("payment gateway http %d", res.StatusCode)
	}

	var out createOrderResponse
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return "", err
	}
	if out.ID == "" {
		return "", fmt.Errorf("payment gateway: %s", out.Error.Description)
	}
	return out.ID, nil
}

// Secret exposes the signing secret for callback verification.
func (g *Client) Secret() string {
	return g.cfg.KeySecret
}
