package usecase

import (
	"testing"
	"time"

	"marketlens/internal/feature/market/domain"
)

func TestLowerBound(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		timeRange string
		expected  time.Time
	}{
		{name: "three months", timeRange: domain.Range3Months, expected: now.AddDate(0, -3, 0)},
		{name: "six months", timeRange: domain.Range6Months, expected: now.AddDate(0, -6, 0)},
		{name: "one year", timeRange: domain.Range1Year, expected: now.AddDate(-1, 0, 0)},
		{name: "two years", timeRange: domain.Range2Years, expected: now.AddDate(-2, 0, 0)},
		{name: "five years", timeRange: domain.Range5Years, expected: now.AddDate(-5, 0, 0)},
		{name: "all maps to far past", timeRange: domain.RangeAll, expected: farPast},
		{name: "unknown value maps to far past", timeRange: "last-fortnight", expected: farPast},
		{name: "empty value maps to far past", timeRange: "", expected: farPast},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LowerBound(now, tt.timeRange)
			if !got.Equal(tt.expected) {
				t.Errorf("LowerBound(%q) = %v, want %v", tt.timeRange, got, tt.expected)
			}
		})
	}
}

func TestLowerBound_Deterministic(t *testing.T) {
	now := time.Date(2023, 1, 31, 0, 0, 0, 0, time.UTC)
	first := LowerBound(now, domain.Range6Months)
	second := LowerBound(now, domain.Range6Months)
	if !first.Equal(second) {
		t.Errorf("same inputs produced different bounds: %v vs %v", first, second)
	}
}

func TestSizeBounds(t *testing.T) {
	tests := []struct {
		name        string
		band        string
		expectedMin int
		expectedMax int
		expectedOK  bool
	}{
		{name: "startup", band: domain.SizeStartup, expectedMin: 0, expectedMax: 50, expectedOK: true},
		{name: "small", band: domain.SizeSmall, expectedMin: 51, expectedMax: 200, expectedOK: true},
		{name: "medium", band: domain.SizeMedium, expectedMin: 201, expectedMax: 1000, expectedOK: true},
		{name: "large", band: domain.SizeLarge, expectedMin: 1001, expectedMax: int(^uint(0) >> 1), expectedOK: true},
		{name: "wildcard has no bounds", band: domain.FilterAll, expectedOK: false},
		{name: "unknown band has no bounds", band: "gigantic", expectedOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			min, max, ok := SizeBounds(tt.band)
			if ok != tt.expectedOK {
				t.Fatalf("SizeBounds(%q) ok = %v, want %v", tt.band, ok, tt.expectedOK)
			}
			if !ok {
				return
			}
			if min != tt.expectedMin || max != tt.expectedMax {
				t.Errorf("SizeBounds(%q) = (%d, %d), want (%d, %d)", tt.band, min, max, tt.expectedMin, tt.expectedMax)
			}
		})
	}
}
