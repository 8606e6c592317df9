package di

import (
	"time"

	profileadapters "marketlens/internal/feature/profile/adapters"
	"marketlens/internal/platform/cache"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// NewProfileStore creates the shared profile cache backed by the profile
// repository. A nil Redis client degrades the store to in-memory only.
func NewProfileStore(rdb *redis.Client, db *gorm.DB) *cache.ProfileStore {
	repo := profileadapters.NewProfileRepository(db)
	return cache.NewProfileStore(rdb, 30*time.Minute, repo, "profile")
}
