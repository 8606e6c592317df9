// Package charts maps market and comparison snapshots onto chart-ready
// payloads for the client-side renderer.
//
// Every builder is stateless and rebuilds its full payload on each call;
// nothing here remembers a prior draw or mutates the consumed snapshot.
// Builders consume aggregated snapshots only, never raw rows.
package charts

import (
	comparisonusecase "marketlens/internal/feature/comparison/usecase"
	"marketlens/internal/feature/market/domain"
)

// PieSlice is one sector of the distribution pie.
type PieSlice struct {
	Label   string  `json:"label"`
	Value   int     `json:"value"`
	Percent float64 `json:"percent"`
}

// TrendPoint is one month of the funding area+line series.
type TrendPoint struct {
	X string  `json:"x"` // YYYY-MM
	Y float64 `json:"y"` // millions
}

// TrendSeries is the funding trend encoding.
type TrendSeries struct {
	Name   string       `json:"name"`
	Points []TrendPoint `json:"points"`
}

// BubblePoint is one sector of the valuation bubble chart: employees on x,
// average market cap on y, total market cap as radius weight.
type BubblePoint struct {
	Label string  `json:"label"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	R     float64 `json:"r"`
}

// HeatmapCell is one sector of the growth heatmap, shaded by listing rate.
type HeatmapCell struct {
	Sector    string  `json:"sector"`
	Companies int     `json:"companies"`
	Intensity float64 `json:"intensity"` // 0-100
}

// BarGroup is one metric of the comparison bar charts, with one bar per
// compared company.
type BarGroup struct {
	Metric string    `json:"metric"`
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
}

// SectorPie builds the sector distribution pie from the snapshot's top-8
// distribution.
func SectorPie(snap *domain.Snapshot) []PieSlice {
	total := 0
	for _, s := range snap.SectorDistribution {
		total += s.CompanyCount
	}
	slices := make([]PieSlice, 0, len(snap.SectorDistribution))
	for _, s := range snap.SectorDistribution {
		pct := 0.0
		if total > 0 {
			pct = float64(s.CompanyCount) / float64(total) * 100
		}
		slices = append(slices, PieSlice{Label: s.Sector, Value: s.CompanyCount, Percent: pct})
	}
	return slices
}

// FundingTrend builds the area+line series from the dense monthly buckets.
func FundingTrend(snap *domain.Snapshot) TrendSeries {
	points := make([]TrendPoint, 0, len(snap.FundingTrend))
	for _, p := range snap.FundingTrend {
		points = append(points, TrendPoint{X: p.Month, Y: p.Amount})
	}
	return TrendSeries{Name: "Funding (millions)", Points: points}
}

// ValuationBubbles builds one bubble per distributed sector.
func ValuationBubbles(snap *domain.Snapshot) []BubblePoint {
	points := make([]BubblePoint, 0, len(snap.SectorDistribution))
	for _, s := range snap.SectorDistribution {
		points = append(points, BubblePoint{
			Label: s.Sector,
			X:     s.AvgEmployees,
			Y:     s.AvgMarketCap.InexactFloat64(),
			R:     s.TotalMarketCap.InexactFloat64(),
		})
	}
	return points
}

// GrowthHeatmap shades each distributed sector by its listing rate.
func GrowthHeatmap(snap *domain.Snapshot) []HeatmapCell {
	cells := make([]HeatmapCell, 0, len(snap.SectorDistribution))
	for _, s := range snap.SectorDistribution {
		cells = append(cells, HeatmapCell{
			Sector:    s.Sector,
			Companies: s.CompanyCount,
			Intensity: s.ListingRate,
		})
	}
	return cells
}

// ComparisonBars builds the three comparison bar charts: market cap,
// total funding and employee count, one bar per company.
func ComparisonBars(result *comparisonusecase.Result) []BarGroup {
	labels := make([]string, 0, len(result.Companies))
	marketCaps := make([]float64, 0, len(result.Companies))
	funding := make([]float64, 0, len(result.Companies))
	employees := make([]float64, 0, len(result.Companies))
	for _, c := range result.Companies {
		labels = append(labels, c.Name)
		marketCaps = append(marketCaps, c.MarketCap.InexactFloat64())
		funding = append(funding, c.TotalFunding.InexactFloat64())
		employees = append(employees, float64(c.EmployeeCount))
	}
	return []BarGroup{
		{Metric: "Market Cap", Labels: labels, Values: marketCaps},
		{Metric: "Total Funding", Labels: labels, Values: funding},
		{Metric: "Employees", Labels: labels, Values: employees},
	}
}
