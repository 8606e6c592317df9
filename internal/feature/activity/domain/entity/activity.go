// Package entity defines the domain entities of the activity feature.
package entity

import "time"

// Actions recorded in the activity log.
const (
	ActionLogin         = "LOGIN"
	ActionSearch        = "SEARCH"
	ActionExport        = "EXPORT"
	ActionComparison    = "COMPARISON"
	ActionWatchlistEdit = "WATCHLIST_EDIT"
	ActionProfileUpdate = "PROFILE_UPDATE"
	ActionPlanUpgrade   = "PLAN_UPGRADE"
)

// ActivityLog is one recorded user action. Metadata holds a small JSON
// object describing the action's parameters (filter values, target ids).
type ActivityLog struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	Action    string    `gorm:"size:40;not null" json:"action"`
	Target    string    `gorm:"size:200" json:"target"`
	Metadata  string    `gorm:"type:text" json:"metadata,omitempty"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}
