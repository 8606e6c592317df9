// Package usecase implements the business logic of the watchlist feature.
package usecase

import (
	"context"
	"errors"

	companyentity "marketlens/internal/feature/companies/domain/entity"
	"marketlens/internal/feature/watchlist/domain/entity"
)

var (
	// ErrWatchlistNotFound is returned when the watchlist does not exist or
	// belongs to another user.
	ErrWatchlistNotFound = errors.New("watchlist not found")

	// ErrAlreadyInWatchlist is returned when re-adding an existing member.
	ErrAlreadyInWatchlist = errors.New("company is already in the watchlist")

	// ErrNotInWatchlist is returned when removing a company that is not a
	// member.
	ErrNotInWatchlist = errors.New("company is not in the watchlist")
)

// WatchlistRepository abstracts watchlist persistence. Consumer-defined.
type WatchlistRepository interface {
	Create(ctx context.Context, wl *entity.Watchlist) error
	ListByUser(ctx context.Context, userID uint) ([]entity.Watchlist, error)
	// FindOwned returns the watchlist only when it belongs to userID;
	// otherwise ErrWatchlistNotFound.
	FindOwned(ctx context.Context, id, userID uint) (*entity.Watchlist, error)
	Rename(ctx context.Context, id uint, name string) error
	Delete(ctx context.Context, id uint) error

	// AddCompany returns ErrAlreadyInWatchlist on duplicate membership.
	AddCompany(ctx context.Context, watchlistID, companyID uint) error
	// RemoveCompany returns ErrNotInWatchlist when the pair is absent.
	RemoveCompany(ctx context.Context, watchlistID, companyID uint) error
	// Companies returns the member companies of a watchlist.
	Companies(ctx context.Context, watchlistID uint) ([]companyentity.Company, error)
}

// ActivityRecorder records a user action. Nil disables recording.
type ActivityRecorder interface {
	Record(ctx context.Context, userID uint, action, target, metadata string)
}

// watchlistUsecase implements the watchlist operations.
type watchlistUsecase struct {
	watchlists WatchlistRepository
	activity   ActivityRecorder
}

// NewWatchlistUsecase creates a watchlistUsecase instance.
func NewWatchlistUsecase(watchlists WatchlistRepository, activity ActivityRecorder) *watchlistUsecase {
	return &watchlistUsecase{watchlists: watchlists, activity: activity}
}

// Create adds a named watchlist for userID.
func (u *watchlistUsecase) Create(ctx context.Context, userID uint, name string) (*entity.Watchlist, error) {
	wl := &entity.Watchlist{UserID: userID, Name: name}
	if err := u.watchlists.Create(ctx, wl); err != nil {
		return nil, err
	}
	u.record(ctx, userID, "created watchlist "+name)
	return wl, nil
}

// List returns the user's watchlists.
func (u *watchlistUsecase) List(ctx context.Context, userID uint) ([]entity.Watchlist, error) {
	return u.watchlists.ListByUser(ctx, userID)
}

// Rename renames an owned watchlist.
func (u *watchlistUsecase) Rename(ctx context.Context, userID, id uint, name string) error {
	if _, err := u.watchlists.FindOwned(ctx, id, userID); err != nil {
		return err
	}
	return u.watchlists.Rename(ctx, id, name)
}

// Delete removes an owned watchlist and its memberships.
func (u *watchlistUsecase) Delete(ctx context.Context, userID, id uint) error {
	if _, err := u.watchlists.FindOwned(ctx, id, userID); err != nil {
		return err
	}
	return u.watchlists.Delete(ctx, id)
}

// AddCompany adds a company to an owned watchlist.
func (u *watchlistUsecase) AddCompany(ctx context.Context, userID, id, companyID uint) error {
	if _, err := u.watchlists.FindOwned(ctx, id, userID); err != nil {
		return err
	}
	if err := u.watchlists.AddCompany(ctx, id, companyID); err != nil {
		return err
	}
	u.record(ctx, userID, "added company to watchlist")
	return nil
}

// RemoveCompany removes a company from an owned watchlist.
func (u *watchlistUsecase) RemoveCompany(ctx context.Context, userID, id, companyID uint) error {
	if _, err := u.watchlists.FindOwned(ctx, id, userID); err != nil {
		return err
	}
	return u.watchlists.RemoveCompany(ctx, id, companyID)
}

// Companies lists the member companies of an owned watchlist.
func (u *watchlistUsecase) Companies(ctx context.Context, userID, id uint) ([]companyentity.Company, error) {
	if _, err := u.watchlists.FindOwned(ctx, id, userID); err != nil {
		return nil, err
	}
	return u.watchlists.Companies(ctx, id)
}

func (u *watchlistUsecase) record(ctx context.Context, userID uint, target string) {
	if u.activity != nil {
		u.activity.Record(ctx, userID, "WATCHLIST_EDIT", target, "")
	}
}
