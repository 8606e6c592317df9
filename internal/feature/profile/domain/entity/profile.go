// Package entity defines the domain entities of the profile feature.
package entity

import (
	"strings"
	"time"
)

// Subscription roles. Stored free-case; always compare through NormalizeRole.
const (
	RoleFreemium   = "FREEMIUM"
	RolePremium    = "PREMIUM"
	RoleEnterprise = "ENTERPRISE"
	RoleAdmin      = "ADMIN"
)

// Profile holds the per-user presentation data and subscription role.
// AvatarKey references a blob in the external object store; the blob itself
// never passes through this service.
type Profile struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    uint   `gorm:"not null;uniqueIndex"`
	FullName  string `gorm:"size:120"`
	Company   string `gorm:"size:120"`
	Role      string `gorm:"size:20;not null;default:FREEMIUM"`
	AvatarKey string `gorm:"size:256"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NormalizeRole upper-cases and trims a stored role string. Unknown values
// normalize to FREEMIUM so a corrupt row can never grant access.
func NormalizeRole(role string) string {
	switch strings.ToUpper(strings.TrimSpace(role)) {
	case RolePremium:
		return RolePremium
	case RoleEnterprise:
		return RoleEnterprise
	case RoleAdmin:
		return RoleAdmin
	default:
		return RoleFreemium
	}
}
