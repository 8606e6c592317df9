// Package entity defines the domain entities of the watchlist feature.
package entity

import "time"

// Watchlist is a user-owned named collection of companies.
type Watchlist struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	Name      string    `gorm:"size:80;not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// WatchlistCompany is the membership row linking a watchlist to a company.
// The pair is unique; re-adding an existing member is a validation error.
type WatchlistCompany struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	WatchlistID uint      `gorm:"not null;uniqueIndex:wl_company,priority:1" json:"watchlist_id"`
	CompanyID   uint      `gorm:"not null;uniqueIndex:wl_company,priority:2" json:"company_id"`
	CreatedAt   time.Time `json:"created_at"`
}
