// Package entity defines the domain entities of the billing feature.
package entity

import "time"

// Payment order statuses.
const (
	OrderCreated = "CREATED"
	OrderPaid    = "PAID"
	OrderFailed  = "FAILED"
)

// Plan is a purchasable subscription tier. The catalog is static; prices
// are minor units (e.g. cents) as the gateway expects.
type Plan struct {
	Code     string   `json:"code"`
	Name     string   `json:"name"`
	Amount   int64    `json:"amount"`
	Currency string   `json:"currency"`
	Features []string `json:"features"`
}

// PaymentOrder tracks one checkout attempt against the payment gateway.
// GatewayOrderID is the id the client-side widget is initialized with;
// Receipt is our own idempotency handle.
type PaymentOrder struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	UserID         uint      `gorm:"not null;index" json:"user_id"`
	Plan           string    `gorm:"size:20;not null" json:"plan"`
	Amount         int64     `gorm:"not null" json:"amount"`
	Currency       string    `gorm:"size:8;not null" json:"currency"`
	GatewayOrderID string    `gorm:"size:64;not null;uniqueIndex" json:"gateway_order_id"`
	Receipt        string    `gorm:"size:36;not null" json:"receipt"`
	Status         string    `gorm:"size:20;not null;default:CREATED" json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
