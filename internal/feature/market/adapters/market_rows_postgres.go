// Package adapters provides the row-fetching repository of the market feature.
package adapters

import (
	"context"
	"time"

	"gorm.io/gorm"

	companyentity "marketlens/internal/feature/companies/domain/entity"
	"marketlens/internal/feature/market/domain"
	"marketlens/internal/feature/market/usecase"
)

// marketRowsPostgres implements usecase.MarketRows over the companies,
// funding_rounds and financial_statements tables.
type marketRowsPostgres struct {
	db *gorm.DB
}

var _ usecase.MarketRows = (*marketRowsPostgres)(nil)

// NewMarketRowsRepository creates a marketRowsPostgres bound to db.
func NewMarketRowsRepository(db *gorm.DB) *marketRowsPostgres {
	return &marketRowsPostgres{db: db}
}

// activeCompanies is the base predicate shared by every fetch: only ACTIVE
// companies participate in analysis.
func (r *marketRowsPostgres) activeCompanies(ctx context.Context, sector string) *gorm.DB {
	q := r.db.WithContext(ctx).
		Model(&companyentity.Company{}).
		Where("companies.status = ?", companyentity.StatusActive)
	if sector != domain.FilterAll {
		q = q.Where("companies.sector = ?", sector)
	}
	return q
}

func (r *marketRowsPostgres) ActiveCompanies(ctx context.Context, f domain.Filter) ([]domain.CompanyRow, error) {
	q := r.activeCompanies(ctx, f.Sector)
	if f.CompanyType != domain.FilterAll {
		q = q.Where("companies.company_type = ?", f.CompanyType)
	}
	if min, max, ok := usecase.SizeBounds(f.CompanySize); ok {
		q = q.Where("companies.employee_count BETWEEN ? AND ?", min, max)
	}

	var rows []companyentity.Company
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	return toCompanyRows(rows), nil
}

func (r *marketRowsPostgres) FundingRoundsSince(ctx context.Context, sector string, since time.Time) ([]domain.FundingRoundRow, error) {
	q := r.db.WithContext(ctx).
		Model(&companyentity.FundingRound{}).
		Select("funding_rounds.company_id, companies.name AS company_name, companies.sector, funding_rounds.amount_raised, funding_rounds.round_type, funding_rounds.funding_date").
		Joins("JOIN companies ON companies.id = funding_rounds.company_id").
		Where("companies.status = ?", companyentity.StatusActive).
		Where("funding_rounds.funding_date >= ?", since)
	if sector != domain.FilterAll {
		q = q.Where("companies.sector = ?", sector)
	}

	var rows []domain.FundingRoundRow
	if err := q.Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *marketRowsPostgres) StatementsSinceYear(ctx context.Context, sector string, minYear int) ([]domain.StatementRow, error) {
	q := r.db.WithContext(ctx).
		Model(&companyentity.FinancialStatement{}).
		Select("financial_statements.company_id, companies.sector, financial_statements.financial_year, financial_statements.revenue, financial_statements.net_profit").
		Joins("JOIN companies ON companies.id = financial_statements.company_id").
		Where("companies.status = ?", companyentity.StatusActive).
		Where("financial_statements.financial_year >= ?", minYear)
	if sector != domain.FilterAll {
		q = q.Where("companies.sector = ?", sector)
	}

	var rows []domain.StatementRow
	if err := q.Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *marketRowsPostgres) CompaniesFoundedSince(ctx context.Context, sector string, since time.Time) ([]domain.CompanyRow, error) {
	var rows []companyentity.Company
	if err := r.activeCompanies(ctx, sector).
		Where("companies.founded_date >= ?", since).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return toCompanyRows(rows), nil
}

func toCompanyRows(rows []companyentity.Company) []domain.CompanyRow {
	out := make([]domain.CompanyRow, 0, len(rows))
	for _, c := range rows {
		out = append(out, domain.CompanyRow{
			ID:            c.ID,
			Name:          c.Name,
			Sector:        c.Sector,
			CompanyType:   c.CompanyType,
			EmployeeCount: c.EmployeeCount,
			MarketCap:     c.MarketCap,
			FoundedDate:   c.FoundedDate,
			IsListed:      c.IsListed,
		})
	}
	return out
}
