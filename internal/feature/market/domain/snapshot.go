// Package domain defines the filter and snapshot types of the market feature.
//
// A Snapshot is the immutable result of one aggregation run. It is a pure
// function of the fetched rows plus the reference time the run was started
// with; nothing in it is patched incrementally after construction.
package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Time-range filter values.
const (
	Range3Months = "3months"
	Range6Months = "6months"
	Range1Year   = "1year"
	Range2Years  = "2years"
	Range5Years  = "5years"
	RangeAll     = "all"
)

// FilterAll is the wildcard value accepted by every filter dimension.
const FilterAll = "all"

// Company-size bands, by employee count.
const (
	SizeStartup = "startup" // <= 50
	SizeSmall   = "small"   // 51 - 200
	SizeMedium  = "medium"  // 201 - 1000
	SizeLarge   = "large"   // >= 1001
)

// Filter is the market-analysis filter tuple. Zero values are normalized to
// the wildcard by Normalize.
type Filter struct {
	Sector      string `json:"sector"`
	TimeRange   string `json:"time_range"`
	CompanyType string `json:"company_type"`
	CompanySize string `json:"company_size"`
}

// Normalize fills empty dimensions with the wildcard and defaults the time
// range to one year.
func (f Filter) Normalize() Filter {
	if f.Sector == "" {
		f.Sector = FilterAll
	}
	if f.TimeRange == "" {
		f.TimeRange = Range1Year
	}
	if f.CompanyType == "" {
		f.CompanyType = FilterAll
	}
	if f.CompanySize == "" {
		f.CompanySize = FilterAll
	}
	return f
}

// CompanyRow is the slice of a company row the aggregator consumes.
type CompanyRow struct {
	ID            uint
	Name          string
	Sector        string
	CompanyType   string
	EmployeeCount int
	MarketCap     decimal.NullDecimal
	FoundedDate   time.Time
	IsListed      bool
}

// FundingRoundRow is a funding round joined with its company's name and
// sector, as the deal rankings need both.
type FundingRoundRow struct {
	CompanyID    uint
	CompanyName  string
	Sector       string
	AmountRaised decimal.NullDecimal
	RoundType    string
	FundingDate  time.Time
}

// StatementRow is a financial statement joined with its company's sector.
type StatementRow struct {
	CompanyID     uint
	Sector        string
	FinancialYear int
	Revenue       decimal.Decimal
	NetProfit     decimal.Decimal
}

// RowSet is the joint result of the four concurrent fetches that feed one
// aggregation run.
type RowSet struct {
	Companies       []CompanyRow
	FundingRounds   []FundingRoundRow
	Statements      []StatementRow
	RecentCompanies []CompanyRow
}

// SectorSummary accumulates per-sector figures. Only companies with a
// non-blank trimmed sector contribute. The derived fields (averages,
// listing rate) are computed once after accumulation, never incrementally.
type SectorSummary struct {
	Sector         string          `json:"sector"`
	CompanyCount   int             `json:"company_count"`
	TotalMarketCap decimal.Decimal `json:"total_market_cap"`
	AvgMarketCap   decimal.Decimal `json:"avg_market_cap"`
	ListedCount    int             `json:"listed_count"`
	ListingRate    float64         `json:"listing_rate"`
	TotalEmployees int             `json:"total_employees"`
	AvgEmployees   float64         `json:"avg_employees"`
}

// FundingTrendPoint is one calendar month of the dense trailing-12-month
// funding series. Amount is in millions; months without rounds carry 0.
type FundingTrendPoint struct {
	Month  string  `json:"month"` // YYYY-MM
	Amount float64 `json:"amount"`
}

// RecentDeal is one entry of the top-10 ranking of disclosed deals.
type RecentDeal struct {
	CompanyName string          `json:"company_name"`
	Sector      string          `json:"sector"`
	Amount      decimal.Decimal `json:"amount"`
	RoundType   string          `json:"round_type"`
	FundingDate time.Time       `json:"funding_date"`
}

// RoundTypeSummary groups funding rounds by round type.
type RoundTypeSummary struct {
	RoundType   string          `json:"round_type"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	DealCount   int             `json:"deal_count"`
	AvgDealSize decimal.Decimal `json:"avg_deal_size"`
}

// Snapshot is the immutable output of one aggregation run.
//
// TotalMarketCap spans every fetched company, including those with a blank
// sector, while the sector summaries exclude them; the two totals are
// allowed to differ and that asymmetry is load-bearing for the dashboard.
type Snapshot struct {
	GeneratedAt time.Time `json:"generated_at"`
	Filter      Filter    `json:"filter"`

	TotalCompanies int             `json:"total_companies"`
	TotalMarketCap decimal.Decimal `json:"total_market_cap"`
	ListedTotal    int             `json:"listed_total"`
	NewCompanies   int             `json:"new_companies"` // founded in the trailing 6 months

	SectorDistribution []SectorSummary `json:"sector_distribution"` // top 8 by company count
	TopSectors         []SectorSummary `json:"top_sectors"`         // top 5 by company count

	FundingTrend  []FundingTrendPoint `json:"funding_trend"`
	RecentDeals   []RecentDeal        `json:"recent_deals"`
	FundingByType []RoundTypeSummary  `json:"funding_by_type"`

	AvgRevenue    decimal.Decimal `json:"avg_revenue"`
	AvgNetMargin  float64         `json:"avg_net_margin"`
	CompanyGrowth float64         `json:"company_growth"`
	GrowthTrend   string          `json:"growth_trend"` // "up" or "down"
}
