package usecase

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"marketlens/internal/feature/market/domain"
)

const (
	// sectorDistributionN is the truncation point of the sector distribution.
	sectorDistributionN = 8
	// topSectorsN is the truncation point of the top-sectors summary.
	// Distinct from sectorDistributionN; the two must not be conflated.
	topSectorsN = 5
	// recentDealsN is the number of ranked recent deals.
	recentDealsN = 10
	// fundingTrendMonths is the dense trailing window of the funding trend.
	fundingTrendMonths = 12
)

var oneMillion = decimal.NewFromInt(1_000_000)

// Aggregate folds one fetched row set into an immutable snapshot.
//
// It is a pure function of rows, filter and now: malformed-but-present data
// (null decimals, blank sectors, missing names) degrades to zero-safe
// defaults and never produces an error. Re-running with identical inputs
// yields an identical snapshot.
func Aggregate(rows domain.RowSet, filter domain.Filter, now time.Time) *domain.Snapshot {
	snap := &domain.Snapshot{
		GeneratedAt:  now,
		Filter:       filter,
		NewCompanies: len(rows.RecentCompanies),
	}

	aggregateCompanies(snap, rows.Companies, now)
	snap.FundingTrend = fundingTrend(rows.FundingRounds, now)
	snap.RecentDeals = recentDeals(rows.FundingRounds)
	snap.FundingByType = fundingByType(rows.FundingRounds)
	aggregateStatements(snap, rows.Statements)

	return snap
}

// aggregateCompanies fills the whole-market totals, the per-sector
// summaries and the founding growth metric.
//
// Blank-sector companies are excluded from grouping but still count toward
// the whole-market totals, so the per-sector market caps may sum to less
// than TotalMarketCap.
func aggregateCompanies(snap *domain.Snapshot, companies []domain.CompanyRow, now time.Time) {
	bySector := map[string]*domain.SectorSummary{}
	foundedThisYear, foundedLastYear := 0, 0

	for _, c := range companies {
		snap.TotalCompanies++
		if c.MarketCap.Valid {
			snap.TotalMarketCap = snap.TotalMarketCap.Add(c.MarketCap.Decimal)
		}
		if c.IsListed {
			snap.ListedTotal++
		}

		switch c.FoundedDate.Year() {
		case now.Year():
			foundedThisYear++
		case now.Year() - 1:
			foundedLastYear++
		}

		sector := strings.TrimSpace(c.Sector)
		if sector == "" {
			continue
		}
		s, ok := bySector[sector]
		if !ok {
			s = &domain.SectorSummary{Sector: sector}
			bySector[sector] = s
		}
		s.CompanyCount++
		if c.MarketCap.Valid {
			s.TotalMarketCap = s.TotalMarketCap.Add(c.MarketCap.Decimal)
		}
		if c.IsListed {
			s.ListedCount++
		}
		s.TotalEmployees += c.EmployeeCount
	}

	// Derived fields only after accumulation completes.
	sectors := make([]domain.SectorSummary, 0, len(bySector))
	for _, s := range bySector {
		if s.CompanyCount > 0 {
			n := decimal.NewFromInt(int64(s.CompanyCount))
			s.AvgMarketCap = s.TotalMarketCap.Div(n)
			s.AvgEmployees = float64(s.TotalEmployees) / float64(s.CompanyCount)
			s.ListingRate = float64(s.ListedCount) / float64(s.CompanyCount) * 100
		}
		sectors = append(sectors, *s)
	}

	sort.Slice(sectors, func(i, j int) bool {
		if sectors[i].CompanyCount != sectors[j].CompanyCount {
			return sectors[i].CompanyCount > sectors[j].CompanyCount
		}
		return sectors[i].Sector < sectors[j].Sector
	})

	snap.SectorDistribution = truncateSectors(sectors, sectorDistributionN)
	snap.TopSectors = truncateSectors(sectors, topSectorsN)

	if foundedLastYear > 0 {
		snap.CompanyGrowth = float64(foundedThisYear-foundedLastYear) / float64(foundedLastYear) * 100
	}
	// Only negative growth reads as "down"; zero, including the no-data
	// case, reads as "up".
	if snap.CompanyGrowth < 0 {
		snap.GrowthTrend = "down"
	} else {
		snap.GrowthTrend = "up"
	}
}

func truncateSectors(sectors []domain.SectorSummary, n int) []domain.SectorSummary {
	if len(sectors) > n {
		sectors = sectors[:n]
	}
	out := make([]domain.SectorSummary, len(sectors))
	copy(out, sectors)
	return out
}

// fundingTrend buckets rounds into the trailing 12 calendar months, oldest
// first. The series is dense: months without rounds carry 0. Amounts are
// reported in millions.
func fundingTrend(rounds []domain.FundingRoundRow, now time.Time) []domain.FundingTrendPoint {
	type monthKey struct{ year, month int }

	sums := map[monthKey]decimal.Decimal{}
	for _, r := range rounds {
		if !r.AmountRaised.Valid {
			continue
		}
		k := monthKey{r.FundingDate.Year(), int(r.FundingDate.Month())}
		sums[k] = sums[k].Add(r.AmountRaised.Decimal)
	}

	points := make([]domain.FundingTrendPoint, 0, fundingTrendMonths)
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).
		AddDate(0, -(fundingTrendMonths - 1), 0)
	for i := 0; i < fundingTrendMonths; i++ {
		m := start.AddDate(0, i, 0)
		sum := sums[monthKey{m.Year(), int(m.Month())}]
		points = append(points, domain.FundingTrendPoint{
			Month:  m.Format("2006-01"),
			Amount: sum.Div(oneMillion).InexactFloat64(),
		})
	}
	return points
}

// recentDeals ranks disclosed deals (amount strictly positive) by funding
// date, newest first, truncated to ten.
func recentDeals(rounds []domain.FundingRoundRow) []domain.RecentDeal {
	disclosed := make([]domain.FundingRoundRow, 0, len(rounds))
	for _, r := range rounds {
		if r.AmountRaised.Valid && r.AmountRaised.Decimal.IsPositive() {
			disclosed = append(disclosed, r)
		}
	}

	sort.Slice(disclosed, func(i, j int) bool {
		if !disclosed[i].FundingDate.Equal(disclosed[j].FundingDate) {
			return disclosed[i].FundingDate.After(disclosed[j].FundingDate)
		}
		return disclosed[i].CompanyID < disclosed[j].CompanyID
	})
	if len(disclosed) > recentDealsN {
		disclosed = disclosed[:recentDealsN]
	}

	deals := make([]domain.RecentDeal, 0, len(disclosed))
	for _, r := range disclosed {
		deals = append(deals, domain.RecentDeal{
			CompanyName: fallback(r.CompanyName, "Unknown"),
			Sector:      fallback(strings.TrimSpace(r.Sector), "Unknown"),
			Amount:      r.AmountRaised.Decimal,
			RoundType:   r.RoundType,
			FundingDate: r.FundingDate,
		})
	}
	return deals
}

// fundingByType groups rounds by round type, the untyped ones under
// "Other", sorted by total amount descending.
func fundingByType(rounds []domain.FundingRoundRow) []domain.RoundTypeSummary {
	byType := map[string]*domain.RoundTypeSummary{}
	for _, r := range rounds {
		name := fallback(strings.TrimSpace(r.RoundType), "Other")
		s, ok := byType[name]
		if !ok {
			s = &domain.RoundTypeSummary{RoundType: name}
			byType[name] = s
		}
		s.DealCount++
		if r.AmountRaised.Valid {
			s.TotalAmount = s.TotalAmount.Add(r.AmountRaised.Decimal)
		}
	}

	out := make([]domain.RoundTypeSummary, 0, len(byType))
	for _, s := range byType {
		if s.DealCount > 0 {
			s.AvgDealSize = s.TotalAmount.Div(decimal.NewFromInt(int64(s.DealCount)))
		}
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].TotalAmount.Equal(out[j].TotalAmount) {
			return out[i].TotalAmount.GreaterThan(out[j].TotalAmount)
		}
		return out[i].RoundType < out[j].RoundType
	})
	return out
}

// aggregateStatements derives the revenue summary figures from the fetched
// trailing statements.
func aggregateStatements(snap *domain.Snapshot, statements []domain.StatementRow) {
	if len(statements) == 0 {
		return
	}
	var totalRevenue, totalProfit decimal.Decimal
	for _, s := range statements {
		totalRevenue = totalRevenue.Add(s.Revenue)
		totalProfit = totalProfit.Add(s.NetProfit)
	}
	snap.AvgRevenue = totalRevenue.Div(decimal.NewFromInt(int64(len(statements))))
	if totalRevenue.IsPositive() {
		snap.AvgNetMargin = totalProfit.Div(totalRevenue).InexactFloat64() * 100
	}
}

func fallback(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
