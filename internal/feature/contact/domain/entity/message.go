// Package entity defines the domain entities of the contact feature.
package entity

import "time"

// Moderation statuses for contact messages.
const (
	StatusNew      = "NEW"
	StatusRead     = "READ"
	StatusResolved = "RESOLVED"
)

// ContactMessage is a message submitted through the public contact form.
type ContactMessage struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:120;not null" json:"name"`
	Email     string    `gorm:"size:255;not null" json:"email"`
	Subject   string    `gorm:"size:200;not null" json:"subject"`
	Body      string    `gorm:"type:text;not null" json:"body"`
	Status    string    `gorm:"size:20;not null;default:NEW;index" json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ValidStatus reports whether s is one of the moderation statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusNew, StatusRead, StatusResolved:
		return true
	}
	return false
}
