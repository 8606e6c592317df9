// Package usecase implements the business logic of the companies feature.
package usecase

import (
	"context"
	"errors"

	"marketlens/internal/feature/companies/domain/entity"
)

const (
	// DefaultPageSize is the search page size when none is requested.
	DefaultPageSize = 20
	// MaxPageSize caps the search page size.
	MaxPageSize = 100
)

// ErrCompanyNotFound is returned when no active company matches the id.
var ErrCompanyNotFound = errors.New("company not found")

// SearchQuery is the company search filter. Empty string dimensions mean
// no predicate; Size takes the band names of the market filter.
type SearchQuery struct {
	Text        string
	Sector      string
	CompanyType string
	Size        string
	ListedOnly  bool
	Limit       int
	Offset      int
}

// CompanyRepository abstracts company reads. Consumer-defined, per Go
// convention.
type CompanyRepository interface {
	// Search returns active companies matching q plus the total match count.
	Search(ctx context.Context, q SearchQuery) ([]entity.Company, int64, error)

	// FindByIDWithDetails returns one active company hydrated with
	// statements (financial_year descending), rounds (funding_date
	// descending) and officials. Returns ErrCompanyNotFound when absent.
	FindByIDWithDetails(ctx context.Context, id uint) (*entity.Company, error)

	// Sectors returns the distinct non-blank sectors of active companies.
	Sectors(ctx context.Context) ([]string, error)
}

// companyUsecase implements the companies operations.
type companyUsecase struct {
	companies CompanyRepository
}

// NewCompanyUsecase creates a companyUsecase instance.
func NewCompanyUsecase(companies CompanyRepository) *companyUsecase {
	return &companyUsecase{companies: companies}
}

// Search normalizes pagination and runs the filtered search.
func (u *companyUsecase) Search(ctx context.Context, q SearchQuery) ([]entity.Company, int64, error) {
	if q.Limit <= 0 || q.Limit > MaxPageSize {
		q.Limit = DefaultPageSize
	}
	if q.Offset < 0 {
		q.Offset = 0
	}
	return u.companies.Search(ctx, q)
}

// Get returns one hydrated company.
func (u *companyUsecase) Get(ctx context.Context, id uint) (*entity.Company, error) {
	return u.companies.FindByIDWithDetails(ctx, id)
}

// Sectors returns the sector list for filter dropdowns.
func (u *companyUsecase) Sectors(ctx context.Context) ([]string, error) {
	return u.companies.Sectors(ctx)
}
