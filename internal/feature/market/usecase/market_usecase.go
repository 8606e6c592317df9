// Package usecase implements the market analysis pipeline: the concurrent
// row fetch and the aggregation of the fetched rows into snapshots.
package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"marketlens/internal/feature/market/domain"
)

// statementTrailingYears bounds the financial statements fetched per run.
const statementTrailingYears = 2

// recentFoundingMonths is the trailing window of the new-companies fetch.
const recentFoundingMonths = 6

// MarketRows abstracts the four filtered reads one refresh needs.
// Following Go convention, the interface is defined by the consumer
// (usecase), not the provider (adapters).
type MarketRows interface {
	// ActiveCompanies returns active companies matching the sector, type
	// and size dimensions of f.
	ActiveCompanies(ctx context.Context, f domain.Filter) ([]domain.CompanyRow, error)

	// FundingRoundsSince returns rounds of active companies in the sector
	// with a funding date at or after since.
	FundingRoundsSince(ctx context.Context, sector string, since time.Time) ([]domain.FundingRoundRow, error)

	// StatementsSinceYear returns statements of active companies in the
	// sector with a financial year at or after minYear.
	StatementsSinceYear(ctx context.Context, sector string, minYear int) ([]domain.StatementRow, error)

	// CompaniesFoundedSince returns active companies in the sector founded
	// at or after since.
	CompaniesFoundedSince(ctx context.Context, sector string, since time.Time) ([]domain.CompanyRow, error)
}

// marketUsecase runs market refreshes and keeps the latest snapshot.
type marketUsecase struct {
	rows  MarketRows
	now   func() time.Time
	store snapshotStore
}

// NewMarketUsecase creates a marketUsecase. now defaults to time.Now and is
// injectable for deterministic tests.
func NewMarketUsecase(rows MarketRows, now func() time.Time) *marketUsecase {
	if now == nil {
		now = time.Now
	}
	return &marketUsecase{rows: rows, now: now}
}

// Refresh runs one full fetch-and-aggregate cycle for f.
//
// The four fetches are fanned out concurrently; none depends on another's
// result. Any single failure cancels the rest and aborts the whole refresh
// with one error, so partial aggregates can never be observed. Publication
// follows latest-wins: when a newer refresh has started in the meantime,
// the finished snapshot is returned to the caller but not installed as the
// shared latest state.
func (m *marketUsecase) Refresh(ctx context.Context, f domain.Filter) (*domain.Snapshot, error) {
	f = f.Normalize()
	gen := m.store.begin()
	now := m.now()

	var rows domain.RowSet
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		rows.Companies, err = m.rows.ActiveCompanies(gctx, f)
		return err
	})
	g.Go(func() error {
		var err error
		rows.FundingRounds, err = m.rows.FundingRoundsSince(gctx, f.Sector, LowerBound(now, f.TimeRange))
		return err
	})
	g.Go(func() error {
		var err error
		rows.Statements, err = m.rows.StatementsSinceYear(gctx, f.Sector, now.Year()-statementTrailingYears)
		return err
	})
	g.Go(func() error {
		var err error
		rows.RecentCompanies, err = m.rows.CompaniesFoundedSince(gctx, f.Sector, now.AddDate(0, -recentFoundingMonths, 0))
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("market refresh: %w", err)
	}

	snap := Aggregate(rows, f, now)
	if !m.store.publish(gen, snap) {
		slog.Debug("stale market refresh discarded", "generation", gen)
	}
	return snap, nil
}

// Latest returns the most recently published snapshot, if any.
func (m *marketUsecase) Latest() (*domain.Snapshot, bool) {
	return m.store.latest()
}
