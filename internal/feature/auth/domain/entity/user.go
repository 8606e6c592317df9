// Package entity defines the domain entities of the auth feature.
package entity

import "time"

// User represents a registered account. The password field always holds a
// bcrypt hash, never plaintext.
type User struct {
	ID        uint   `gorm:"primaryKey"`
	Email     string `gorm:"size:255;not null;uniqueIndex"`
	Password  string `gorm:"size:255;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
