// Package export flattens aggregated snapshots into downloadable JSON
// report documents.
//
// Serialization is a pure read of the snapshot passed in: nothing is
// refetched or recomputed, so the exported numbers always match what the
// caller had on screen.
package export

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	comparisonusecase "marketlens/internal/feature/comparison/usecase"
	"marketlens/internal/feature/market/domain"
)

// Report types used in document headers and filenames.
const (
	TypeMarket     = "market-analysis"
	TypeComparison = "company-comparison"
)

// MarketSummary is the headline block of a market report.
type MarketSummary struct {
	TotalCompanies int             `json:"total_companies"`
	TotalMarketCap decimal.Decimal `json:"total_market_cap"`
	ListedTotal    int             `json:"listed_total"`
	NewCompanies   int             `json:"new_companies"`
	CompanyGrowth  float64         `json:"company_growth"`
	GrowthTrend    string          `json:"growth_trend"`
	AvgRevenue     decimal.Decimal `json:"avg_revenue"`
	AvgNetMargin   float64         `json:"avg_net_margin"`
}

// MarketReport is the exported market-analysis document.
type MarketReport struct {
	ReportType  string        `json:"report_type"`
	GeneratedAt time.Time     `json:"generated_at"`
	Filter      domain.Filter `json:"filter"`
	Summary     MarketSummary `json:"summary"`

	SectorDistribution []domain.SectorSummary     `json:"sector_distribution"`
	TopSectors         []domain.SectorSummary     `json:"top_sectors"`
	FundingTrend       []domain.FundingTrendPoint `json:"funding_trend"`
	RecentDeals        []domain.RecentDeal        `json:"recent_deals"`
	FundingByType      []domain.RoundTypeSummary  `json:"funding_by_type"`
}

// ComparisonSummary is the headline block of a comparison report.
type ComparisonSummary struct {
	CompanyCount     int                        `json:"company_count"`
	HighestMarketCap comparisonusecase.Extremum `json:"highest_market_cap"`
	LowestMarketCap  comparisonusecase.Extremum `json:"lowest_market_cap"`
	AvgEmployees     float64                    `json:"avg_employees"`
	TotalFunding     decimal.Decimal            `json:"total_funding"`
}

// ComparisonReport is the exported comparison document.
type ComparisonReport struct {
	ReportType  string            `json:"report_type"`
	GeneratedAt time.Time         `json:"generated_at"`
	Summary     ComparisonSummary `json:"summary"`

	Companies []comparisonusecase.CompanyMetrics `json:"companies"`
}

// BuildMarketReport assembles the market document from an existing
// snapshot. now stamps the export itself; the snapshot's own timestamp is
// preserved inside the filter echo semantics via the summary numbers.
func BuildMarketReport(snap *domain.Snapshot, now time.Time) *MarketReport {
	return &MarketReport{
		ReportType:  TypeMarket,
		GeneratedAt: now,
		Filter:      snap.Filter,
		Summary: MarketSummary{
			TotalCompanies: snap.TotalCompanies,
			TotalMarketCap: snap.TotalMarketCap,
			ListedTotal:    snap.ListedTotal,
			NewCompanies:   snap.NewCompanies,
			CompanyGrowth:  snap.CompanyGrowth,
			GrowthTrend:    snap.GrowthTrend,
			AvgRevenue:     snap.AvgRevenue,
			AvgNetMargin:   snap.AvgNetMargin,
		},
		SectorDistribution: snap.SectorDistribution,
		TopSectors:         snap.TopSectors,
		FundingTrend:       snap.FundingTrend,
		RecentDeals:        snap.RecentDeals,
		FundingByType:      snap.FundingByType,
	}
}

// BuildComparisonReport assembles the comparison document from an existing
// result.
func BuildComparisonReport(result *comparisonusecase.Result, now time.Time) *ComparisonReport {
	return &ComparisonReport{
		ReportType:  TypeComparison,
		GeneratedAt: now,
		Summary: ComparisonSummary{
			CompanyCount:     result.CompanyCount,
			HighestMarketCap: result.HighestMarketCap,
			LowestMarketCap:  result.LowestMarketCap,
			AvgEmployees:     result.AvgEmployees,
			TotalFunding:     result.TotalFunding,
		},
		Companies: result.Companies,
	}
}

// Marshal renders a report document as indented UTF-8 JSON.
func Marshal(report any) ([]byte, error) {
	b, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal report: %w", err)
	}
	return b, nil
}

// MarketFilename builds the download name for a market report:
// market-analysis_{sector}-{timeRange}-{type}-{size}_{YYYY-MM-DD}.json
func MarketFilename(f domain.Filter, now time.Time) string {
	filters := strings.Join([]string{
		slugify(f.Sector),
		slugify(f.TimeRange),
		slugify(f.CompanyType),
		slugify(f.CompanySize),
	}, "-")
	return fmt.Sprintf("%s_%s_%s.json", TypeMarket, filters, now.Format("2006-01-02"))
}

// ComparisonFilename builds the download name for a comparison report.
func ComparisonFilename(companyCount int, now time.Time) string {
	return fmt.Sprintf("%s_%d-companies_%s.json", TypeComparison, companyCount, now.Format("2006-01-02"))
}

// slugify lowercases a filter value and replaces separators so the result
// is filename-safe.
func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return "all"
	}
	s = strings.ReplaceAll(s, " ", "-")
	s = strings.ReplaceAll(s, "_", "-")
	s = strings.ReplaceAll(s, "/", "-")
	return s
}
