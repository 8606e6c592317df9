package cache

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"

	"marketlens/internal/feature/profile/domain/entity"
)

// mockProfileSource is a mock implementation of the ProfileSource interface.
type mockProfileSource struct {
	findFn func(ctx context.Context, userID uint) (*entity.Profile, error)
	calls  int
}

func (m *mockProfileSource) FindByUserID(ctx context.Context, userID uint) (*entity.Profile, error) {
	m.calls++
	if m.findFn != nil {
		return m.findFn(ctx, userID)
	}
	return nil, errors.New("profile not found")
}

func TestNewProfileStore_Defaults(t *testing.T) {
	tests := []struct {
		name              string
		ttl               time.Duration
		namespace         string
		expectedTTL       time.Duration
		expectedNamespace string
	}{
		{
			name:              "default values when zero/empty",
			ttl:               0,
			namespace:         "",
			expectedTTL:       30 * time.Minute,
			expectedNamespace: "profile",
		},
		{
			name:              "custom values preserved",
			ttl:               10 * time.Minute,
			namespace:         "custom",
			expectedTTL:       10 * time.Minute,
			expectedNamespace: "custom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewProfileStore(nil, tt.ttl, &mockProfileSource{}, tt.namespace)

			if store.ttl != tt.expectedTTL {
				t.Errorf("expected TTL %v, got %v", tt.expectedTTL, store.ttl)
			}
			if store.namespace != tt.expectedNamespace {
				t.Errorf("expected namespace %q, got %q", tt.expectedNamespace, store.namespace)
			}
		})
	}
}

func TestProfileStore_Get_NilRedis(t *testing.T) {
	profile := &entity.Profile{UserID: 1, FullName: "Test User", Role: entity.RolePremium}
	source := &mockProfileSource{
		findFn: func(ctx context.Context, userID uint) (*entity.Profile, error) {
			return profile, nil
		},
	}

	store := NewProfileStore(nil, time.Minute, source, "profile")

	got, err := store.Get(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.FullName != "Test User" {
		t.Errorf("FullName = %q, want Test User", got.FullName)
	}

	// Second read must hit the in-memory layer, not the source.
	if _, err := store.Get(context.Background(), 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if source.calls != 1 {
		t.Errorf("source called %d times, want 1", source.calls)
	}
}

func TestProfileStore_Get_RedisHit(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	profile := &entity.Profile{UserID: 1, FullName: "Cached User", Role: entity.RoleFreemium}
	b, err := json.Marshal(profile)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	mock.ExpectGet("profile:1").SetVal(string(b))

	source := &mockProfileSource{}
	store := NewProfileStore(rdb, time.Minute, source, "profile")

	got, err := store.Get(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.FullName != "Cached User" {
		t.Errorf("FullName = %q, want Cached User", got.FullName)
	}
	if source.calls != 0 {
		t.Errorf("source called %d times on a Redis hit, want 0", source.calls)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet redis expectations: %v", err)
	}
}

func TestProfileStore_Get_RedisMissFallsThrough(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	profile := &entity.Profile{UserID: 2, FullName: "DB User"}
	b, err := json.Marshal(profile)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mock.ExpectGet("profile:2").RedisNil()
	// The source hit repopulates the Redis layer.
	mock.ExpectSet("profile:2", b, time.Minute).SetVal("OK")

	source := &mockProfileSource{
		findFn: func(ctx context.Context, userID uint) (*entity.Profile, error) {
			return profile, nil
		},
	}
	store := NewProfileStore(rdb, time.Minute, source, "profile")

	got, err := store.Get(context.Background(), 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.FullName != "DB User" {
		t.Errorf("FullName = %q, want DB User", got.FullName)
	}
	if source.calls != 1 {
		t.Errorf("source called %d times, want 1", source.calls)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet redis expectations: %v", err)
	}
}

func TestProfileStore_Get_SourceError(t *testing.T) {
	srcErr := errors.New("db down")
	source := &mockProfileSource{
		findFn: func(ctx context.Context, userID uint) (*entity.Profile, error) {
			return nil, srcErr
		},
	}
	store := NewProfileStore(nil, time.Minute, source, "profile")

	_, err := store.Get(context.Background(), 1)

	if !errors.Is(err, srcErr) {
		t.Errorf("expected source error, got: %v", err)
	}
}

func TestProfileStore_PutOverwritesAndNotifies(t *testing.T) {
	store := NewProfileStore(nil, time.Minute, &mockProfileSource{}, "profile")

	var notified []uint
	store.Subscribe(func(userID uint) {
		notified = append(notified, userID)
	})

	store.Put(context.Background(), &entity.Profile{UserID: 1, FullName: "First"})
	store.Put(context.Background(), &entity.Profile{UserID: 1, FullName: "Second"})

	got, err := store.Get(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// The write overwrites; readers never see the older value afterwards.
	if got.FullName != "Second" {
		t.Errorf("FullName = %q, want Second", got.FullName)
	}
	if len(notified) != 2 || notified[0] != 1 || notified[1] != 1 {
		t.Errorf("notifications = %v, want [1 1]", notified)
	}
}

func TestProfileStore_Invalidate(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	profile := &entity.Profile{UserID: 3, FullName: "Going Away"}
	b, err := json.Marshal(profile)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	mock.ExpectSet("profile:3", b, time.Minute).SetVal("OK")
	mock.ExpectDel("profile:3").SetVal(1)
	// After invalidation the next Get misses both layers.
	mock.ExpectGet("profile:3").RedisNil()
	mock.ExpectSet("profile:3", b, time.Minute).SetVal("OK")

	source := &mockProfileSource{
		findFn: func(ctx context.Context, userID uint) (*entity.Profile, error) {
			return profile, nil
		},
	}
	store := NewProfileStore(rdb, time.Minute, source, "profile")

	var notified []uint
	store.Subscribe(func(userID uint) {
		notified = append(notified, userID)
	})

	store.Put(context.Background(), profile)
	store.Invalidate(context.Background(), 3)

	if _, err := store.Get(context.Background(), 3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if source.calls != 1 {
		t.Errorf("source called %d times after invalidation, want 1", source.calls)
	}
	if len(notified) != 2 {
		t.Errorf("got %d notifications, want 2 (put + invalidate)", len(notified))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet redis expectations: %v", err)
	}
}

func TestProfileStore_Role(t *testing.T) {
	tests := []struct {
		name     string
		stored   string
		expected string
	}{
		{name: "premium", stored: "premium", expected: entity.RolePremium},
		{name: "admin", stored: "ADMIN", expected: entity.RoleAdmin},
		{name: "unknown degrades to freemium", stored: "platinum", expected: entity.RoleFreemium},
		{name: "blank degrades to freemium", stored: "", expected: entity.RoleFreemium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source := &mockProfileSource{
				findFn: func(ctx context.Context, userID uint) (*entity.Profile, error) {
					return &entity.Profile{UserID: userID, Role: tt.stored}, nil
				},
			}
			store := NewProfileStore(nil, time.Minute, source, "profile")

			role, err := store.Role(context.Background(), 1)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if role != tt.expected {
				t.Errorf("Role = %q, want %q", role, tt.expected)
			}
		})
	}
}

func TestProfileStore_GetReturnsPrivateCopy(t *testing.T) {
	store := NewProfileStore(nil, time.Minute, &mockProfileSource{}, "profile")
	store.Put(context.Background(), &entity.Profile{UserID: 1, FullName: "Original", Role: entity.RolePremium})

	first, err := store.Get(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	first.FullName = "Mutated"

	second, err := store.Get(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second.FullName != "Original" {
		t.Errorf("cached entry changed through a Get result: FullName = %q, want %q", second.FullName, "Original")
	}
}

func TestProfileStore_PutKeepsItsOwnCopy(t *testing.T) {
	store := NewProfileStore(nil, time.Minute, &mockProfileSource{}, "profile")

	p := &entity.Profile{UserID: 1, FullName: "Original", Role: entity.RolePremium}
	store.Put(context.Background(), p)
	p.FullName = "Mutated"

	got, err := store.Get(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.FullName != "Original" {
		t.Errorf("cached entry changed through the Put argument: FullName = %q, want %q", got.FullName, "Original")
	}
}
