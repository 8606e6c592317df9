package charts

import (
	"testing"

	"github.com/shopspring/decimal"

	comparisonusecase "marketlens/internal/feature/comparison/usecase"
	"marketlens/internal/feature/market/domain"
)

func TestSectorPie(t *testing.T) {
	t.Run("percentages against distributed total", func(t *testing.T) {
		snap := &domain.Snapshot{
			SectorDistribution: []domain.SectorSummary{
				{Sector: "Fintech", CompanyCount: 6},
				{Sector: "SaaS", CompanyCount: 2},
			},
		}

		slices := SectorPie(snap)

		if len(slices) != 2 {
			t.Fatalf("got %d slices, want 2", len(slices))
		}
		if slices[0].Label != "Fintech" || slices[0].Percent != 75 {
			t.Errorf("slices[0] = %+v, want Fintech/75", slices[0])
		}
		if slices[1].Percent != 25 {
			t.Errorf("slices[1].Percent = %v, want 25", slices[1].Percent)
		}
	})

	t.Run("empty distribution yields empty pie", func(t *testing.T) {
		slices := SectorPie(&domain.Snapshot{})
		if len(slices) != 0 {
			t.Errorf("got %d slices, want 0", len(slices))
		}
	})
}

func TestFundingTrend(t *testing.T) {
	snap := &domain.Snapshot{
		FundingTrend: []domain.FundingTrendPoint{
			{Month: "2024-05", Amount: 0},
			{Month: "2024-06", Amount: 3.5},
		},
	}

	series := FundingTrend(snap)

	if series.Name != "Funding (millions)" {
		t.Errorf("Name = %q", series.Name)
	}
	if len(series.Points) != 2 {
		t.Fatalf("got %d points, want 2", len(series.Points))
	}
	// Zero months are kept; the renderer needs the dense series.
	if series.Points[0].X != "2024-05" || series.Points[0].Y != 0 {
		t.Errorf("Points[0] = %+v, want 2024-05/0", series.Points[0])
	}
	if series.Points[1].Y != 3.5 {
		t.Errorf("Points[1].Y = %v, want 3.5", series.Points[1].Y)
	}
}

func TestValuationBubbles(t *testing.T) {
	snap := &domain.Snapshot{
		SectorDistribution: []domain.SectorSummary{
			{
				Sector:         "Fintech",
				AvgEmployees:   40,
				AvgMarketCap:   decimal.NewFromInt(2000),
				TotalMarketCap: decimal.NewFromInt(8000),
			},
		},
	}

	points := ValuationBubbles(snap)

	if len(points) != 1 {
		t.Fatalf("got %d points, want 1", len(points))
	}
	p := points[0]
	if p.Label != "Fintech" || p.X != 40 || p.Y != 2000 || p.R != 8000 {
		t.Errorf("bubble = %+v", p)
	}
}

func TestGrowthHeatmap(t *testing.T) {
	snap := &domain.Snapshot{
		SectorDistribution: []domain.SectorSummary{
			{Sector: "Fintech", CompanyCount: 4, ListingRate: 50},
			{Sector: "SaaS", CompanyCount: 2, ListingRate: 0},
		},
	}

	cells := GrowthHeatmap(snap)

	if len(cells) != 2 {
		t.Fatalf("got %d cells, want 2", len(cells))
	}
	if cells[0].Intensity != 50 || cells[1].Intensity != 0 {
		t.Errorf("intensities = %v/%v, want 50/0", cells[0].Intensity, cells[1].Intensity)
	}
}

func TestComparisonBars(t *testing.T) {
	result := &comparisonusecase.Result{
		Companies: []comparisonusecase.CompanyMetrics{
			{Name: "Big", MarketCap: decimal.NewFromInt(9000), TotalFunding: decimal.NewFromInt(400), EmployeeCount: 300},
			{Name: "Small", MarketCap: decimal.NewFromInt(1000), TotalFunding: decimal.NewFromInt(100), EmployeeCount: 50},
		},
	}

	groups := ComparisonBars(result)

	if len(groups) != 3 {
		t.Fatalf("got %d bar groups, want 3", len(groups))
	}

	wantMetrics := []string{"Market Cap", "Total Funding", "Employees"}
	for i, g := range groups {
		if g.Metric != wantMetrics[i] {
			t.Errorf("groups[%d].Metric = %q, want %q", i, g.Metric, wantMetrics[i])
		}
		if len(g.Labels) != 2 || g.Labels[0] != "Big" || g.Labels[1] != "Small" {
			t.Errorf("groups[%d].Labels = %v", i, g.Labels)
		}
		if len(g.Values) != 2 {
			t.Errorf("groups[%d] has %d values, want 2", i, len(g.Values))
		}
	}

	if groups[0].Values[0] != 9000 || groups[1].Values[1] != 100 || groups[2].Values[0] != 300 {
		t.Errorf("bar values wrong: %+v", groups)
	}
}
