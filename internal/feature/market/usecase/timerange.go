package usecase

import (
	"time"

	"marketlens/internal/feature/market/domain"
)

// farPast is the lower-bound sentinel for the "all" time range. Unix epoch
// is early enough for any funding or founding date in the dataset.
var farPast = time.Unix(0, 0).UTC()

// LowerBound maps a time-range filter value onto the inclusive lower bound
// of the query window. The function is total: unknown values fall through
// to the far-past sentinel, matching "all". For a fixed now the result is
// deterministic.
func LowerBound(now time.Time, timeRange string) time.Time {
	switch timeRange {
	case domain.Range3Months:
		return now.AddDate(0, -3, 0)
	case domain.Range6Months:
		return now.AddDate(0, -6, 0)
	case domain.Range1Year:
		return now.AddDate(-1, 0, 0)
	case domain.Range2Years:
		return now.AddDate(-2, 0, 0)
	case domain.Range5Years:
		return now.AddDate(-5, 0, 0)
	default:
		return farPast
	}
}

// SizeBounds maps a company-size band onto an inclusive employee-count
// range. The wildcard and unknown bands return ok=false, meaning no
// employee predicate applies.
func SizeBounds(band string) (min, max int, ok bool) {
	switch band {
	case domain.SizeStartup:
		return 0, 50, true
	case domain.SizeSmall:
		return 51, 200, true
	case domain.SizeMedium:
		return 201, 1000, true
	case domain.SizeLarge:
		return 1001, int(^uint(0) >> 1), true
	default:
		return 0, 0, false
	}
}
