// Package usecase implements the business logic of the activity feature.
package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"marketlens/internal/feature/activity/domain/entity"
)

const (
	// DefaultListLimit is the activity page size when none is requested.
	DefaultListLimit = 50
	// MaxListLimit caps the activity page size.
	MaxListLimit = 200
)

// ActivityRepository abstracts activity-log persistence. Consumer-defined.
type ActivityRepository interface {
	Insert(ctx context.Context, log *entity.ActivityLog) error
	ListByUser(ctx context.Context, userID uint, limit int) ([]entity.ActivityLog, error)
}

// activityUsecase implements activity recording and listing.
type activityUsecase struct {
	logs ActivityRepository
	now  func() time.Time
}

// NewActivityUsecase creates an activityUsecase instance. now defaults to
// time.Now.
func NewActivityUsecase(logs ActivityRepository, now func() time.Time) *activityUsecase {
	if now == nil {
		now = time.Now
	}
	return &activityUsecase{logs: logs, now: now}
}

// Record persists one user action. Recording is best effort: a failed
// insert is logged and swallowed so it can never fail the triggering
// request.
func (u *activityUsecase) Record(ctx context.Context, userID uint, action, target, metadata string) {
	log := &entity.ActivityLog{
		ID:        uuid.NewString(),
		UserID:    userID,
		Action:    action,
		Target:    target,
		Metadata:  metadata,
		CreatedAt: u.now(),
	}
	if err := u.logs.Insert(ctx, log); err != nil {
		slog.Warn("activity record failed", "error", err, "user_id", userID, "action", action)
	}
}

// ListRecent returns the newest activity entries of a user.
func (u *activityUsecase) ListRecent(ctx context.Context, userID uint, limit int) ([]entity.ActivityLog, error) {
	if limit <= 0 || limit > MaxListLimit {
		limit = DefaultListLimit
	}
	return u.logs.ListByUser(ctx, userID, limit)
}
