package usecase

import (
	"context"
	"time"

	companyentity "marketlens/internal/feature/companies/domain/entity"
)

// CompanyReader loads fully hydrated companies (statements, rounds,
// officials) for a comparison run. Consumer-defined, per Go convention.
type CompanyReader interface {
	FindByIDsWithDetails(ctx context.Context, ids []uint) ([]companyentity.Company, error)
}

// ActivityRecorder records a user action. A nil recorder disables recording.
type ActivityRecorder interface {
	Record(ctx context.Context, userID uint, action, target, metadata string)
}

// comparisonUsecase validates selections and builds comparison metrics.
type comparisonUsecase struct {
	companies CompanyReader
	activity  ActivityRecorder
	now       func() time.Time
}

// NewComparisonUsecase creates a comparisonUsecase. now defaults to
// time.Now and is injectable for deterministic tests.
func NewComparisonUsecase(companies CompanyReader, activity ActivityRecorder, now func() time.Time) *comparisonUsecase {
	if now == nil {
		now = time.Now
	}
	return &comparisonUsecase{companies: companies, activity: activity, now: now}
}

// Compare validates ids through a ComparisonSet (capacity and duplicate
// rules), loads the hydrated rows and derives the metrics. Validation
// failures (too few, too many, duplicates) come back as sentinel errors for
// the handler to render inline; they never abort the request pipeline.
func (u *comparisonUsecase) Compare(ctx context.Context, userID uint, ids []uint) (*Result, error) {
	if len(ids) < 2 {
		return nil, ErrTooFewCompanies
	}
	var set ComparisonSet
	for _, id := range ids {
		if err := set.Add(id); err != nil {
			return nil, err
		}
	}

	companies, err := u.companies.FindByIDsWithDetails(ctx, set.IDs())
	if err != nil {
		return nil, err
	}
	if len(companies) != set.Len() {
		return nil, ErrCompanyNotFound
	}

	result := BuildMetrics(companies, u.now())
	set.SetMetrics(result)

	if u.activity != nil {
		u.activity.Record(ctx, userID, "COMPARISON", "", "")
	}
	return result, nil
}
