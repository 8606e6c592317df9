// Package usecase implements the business logic of the profile feature.
package usecase

import (
	"context"
	"errors"

	authentity "marketlens/internal/feature/auth/domain/entity"
	"marketlens/internal/feature/profile/domain/entity"
)

// ErrProfileNotFound is returned when no profile row exists for a user.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileRepository abstracts profile persistence. Consumer-defined.
type ProfileRepository interface {
	// FindByUserID returns the profile of userID, or ErrProfileNotFound.
	FindByUserID(ctx context.Context, userID uint) (*entity.Profile, error)
	// Save upserts the profile keyed by UserID.
	Save(ctx context.Context, p *entity.Profile) error
	// UpdateRole replaces the subscription role of userID.
	UpdateRole(ctx context.Context, userID uint, role string) error
}

// UserSource looks up account data owned by the auth feature.
type UserSource interface {
	FindByID(ctx context.Context, id uint) (*authentity.User, error)
}

// ProfileCache is the session-wide observable profile store. Writers
// overwrite-then-notify; Invalidate clears both cache layers.
type ProfileCache interface {
	Get(ctx context.Context, userID uint) (*entity.Profile, error)
	Put(ctx context.Context, p *entity.Profile)
	Invalidate(ctx context.Context, userID uint)
}

// profileUsecase implements the profile operations.
type profileUsecase struct {
	profiles ProfileRepository
	users    UserSource
	cache    ProfileCache
}

// NewProfileUsecase creates a profileUsecase instance.
func NewProfileUsecase(profiles ProfileRepository, users UserSource, cache ProfileCache) *profileUsecase {
	return &profileUsecase{profiles: profiles, users: users, cache: cache}
}

// Get returns the profile and account email of userID. A missing profile
// row is materialized as a default FREEMIUM profile, so every signed-up
// user always has one.
func (u *profileUsecase) Get(ctx context.Context, userID uint) (*entity.Profile, string, error) {
	user, err := u.users.FindByID(ctx, userID)
	if err != nil {
		return nil, "", err
	}

	p, err := u.cache.Get(ctx, userID)
	if errors.Is(err, ErrProfileNotFound) {
		p = &entity.Profile{UserID: userID, Role: entity.RoleFreemium}
		if err := u.profiles.Save(ctx, p); err != nil {
			return nil, "", err
		}
		u.cache.Put(ctx, p)
	} else if err != nil {
		return nil, "", err
	}
	return p, user.Email, nil
}

// Update replaces the editable profile fields and refreshes the cache.
func (u *profileUsecase) Update(ctx context.Context, userID uint, fullName, company string) (*entity.Profile, error) {
	p, _, err := u.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	p.FullName = fullName
	p.Company = company
	if err := u.profiles.Save(ctx, p); err != nil {
		return nil, err
	}
	u.cache.Put(ctx, p)
	return p, nil
}

// UpdateAvatar points the profile at a new object-storage key and
// refreshes the cache so subscribers repaint immediately.
func (u *profileUsecase) UpdateAvatar(ctx context.Context, userID uint, avatarKey string) (*entity.Profile, error) {
	p, _, err := u.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	p.AvatarKey = avatarKey
	if err := u.profiles.Save(ctx, p); err != nil {
		return nil, err
	}
	u.cache.Put(ctx, p)
	return p, nil
}

// UpgradeRole moves userID onto a new subscription role and invalidates
// the cached profile. Satisfies the billing feature's ProfileRoles.
func (u *profileUsecase) UpgradeRole(ctx context.Context, userID uint, role string) error {
	if err := u.profiles.UpdateRole(ctx, userID, entity.NormalizeRole(role)); err != nil {
		return err
	}
	u.cache.Invalidate(ctx, userID)
	return nil
}

// Logout drops the cached profile for userID. The JWT itself is stateless;
// this only honors the cache invalidation contract.
func (u *profileUsecase) Logout(ctx context.Context, userID uint) {
	u.cache.Invalidate(ctx, userID)
}
