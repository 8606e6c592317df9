// Package cache provides the session-wide profile store: an in-memory map
// backed by Redis, with an explicit invalidation contract.
//
// Readers never block on writers beyond the map lock; writers overwrite
// then notify subscribers. There is no ambient global state: every consumer
// goes through this store's API.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"marketlens/internal/feature/profile/domain/entity"
)

// ProfileSource loads a profile when both cache layers miss. Defined on the
// consumer side; the profile GORM adapter is the production implementation.
type ProfileSource interface {
	FindByUserID(ctx context.Context, userID uint) (*entity.Profile, error)
}

// ProfileStore caches user profiles across the whole service, keyed by user
// id. A nil Redis client degrades it to the in-memory layer only.
type ProfileStore struct {
	source    ProfileSource
	rdb       *redis.Client
	ttl       time.Duration
	namespace string

	mu   sync.RWMutex
	mem  map[uint]*entity.Profile
	subs []func(userID uint)
}

// NewProfileStore builds a ProfileStore. If ttl is 0 it defaults to
// 30 minutes; if namespace is empty it uses "profile".
func NewProfileStore(rdb *redis.Client, ttl time.Duration, source ProfileSource, namespace string) *ProfileStore {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	if namespace == "" {
		namespace = "profile"
	}
	return &ProfileStore{
		source:    source,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
		mem:       map[uint]*entity.Profile{},
	}
}

func (s *ProfileStore) key(userID uint) string {
	return fmt.Sprintf("%s:%s", s.namespace, strconv.FormatUint(uint64(userID), 10))
}

// Get returns the profile for userID, checking memory, then Redis, then the
// underlying source. A source hit repopulates both cache layers. The result
// is a private copy: mutating it does not touch the cached entry, which
// changes only through Put and Invalidate.
func (s *ProfileStore) Get(ctx context.Context, userID uint) (*entity.Profile, error) {
	s.mu.RLock()
	if p, ok := s.mem[userID]; ok {
		cp := *p
		s.mu.RUnlock()
		return &cp, nil
	}
	s.mu.RUnlock()

	if s.rdb != nil {
		if b, err := s.rdb.Get(ctx, s.key(userID)).Bytes(); err == nil && len(b) > 0 {
			var p entity.Profile
			if err := json.Unmarshal(b, &p); err == nil {
				s.mu.Lock()
				s.mem[userID] = &p
				s.mu.Unlock()
				cp := p
				return &cp, nil
			}
			// Delete corrupted cache entry
			_ = s.rdb.Del(ctx, s.key(userID)).Err()
		}
	}

	p, err := s.source.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	s.store(ctx, p)
	return p, nil
}

// Put overwrites both cache layers with p and notifies subscribers. Called
// after profile or avatar updates so stale reads cannot outlive the write.
func (s *ProfileStore) Put(ctx context.Context, p *entity.Profile) {
	s.store(ctx, p)
	s.notify(p.UserID)
}

// Invalidate clears both the in-memory and the persistent entry for userID
// and notifies subscribers. Called on logout and on external profile
// mutations.
func (s *ProfileStore) Invalidate(ctx context.Context, userID uint) {
	s.mu.Lock()
	delete(s.mem, userID)
	s.mu.Unlock()

	if s.rdb != nil {
		_ = s.rdb.Del(ctx, s.key(userID)).Err() // Best effort
	}
	s.notify(userID)
}

// Subscribe registers fn to run after every Put or Invalidate. Callbacks
// run synchronously on the mutating goroutine and must not call back into
// the store's write methods.
func (s *ProfileStore) Subscribe(fn func(userID uint)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

// Role resolves the normalized subscription role of userID. Satisfies
// rolegate.RoleSource.
func (s *ProfileStore) Role(ctx context.Context, userID uint) (string, error) {
	p, err := s.Get(ctx, userID)
	if err != nil {
		return "", err
	}
	return entity.NormalizeRole(p.Role), nil
}

// store keeps its own copy of p so later mutations by the caller cannot
// reach the cached entry.
func (s *ProfileStore) store(ctx context.Context, p *entity.Profile) {
	cp := *p
	s.mu.Lock()
	s.mem[p.UserID] = &cp
	s.mu.Unlock()

	if s.rdb == nil {
		return
	}
	if b, err := json.Marshal(p); err == nil {
		_ = s.rdb.Set(ctx, s.key(p.UserID), b, s.ttl).Err() // Best effort
	}
}

func (s *ProfileStore) notify(userID uint) {
	s.mu.RLock()
	subs := make([]func(uint), len(s.subs))
	copy(subs, s.subs)
	s.mu.RUnlock()
	for _, fn := range subs {
		fn(userID)
	}
}
