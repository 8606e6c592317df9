// Package adapters provides the repository implementations of the companies feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"marketlens/internal/feature/companies/domain/entity"
	"marketlens/internal/feature/companies/usecase"
	marketusecase "marketlens/internal/feature/market/usecase"
)

// companyPostgres implements usecase.CompanyRepository with GORM. It also
// satisfies the comparison feature's CompanyReader.
type companyPostgres struct {
	db *gorm.DB
}

var _ usecase.CompanyRepository = (*companyPostgres)(nil)

// NewCompanyRepository creates a companyPostgres bound to db.
func NewCompanyRepository(db *gorm.DB) *companyPostgres {
	return &companyPostgres{db: db}
}

func (r *companyPostgres) active(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&entity.Company{}).
		Where("status = ?", entity.StatusActive)
}

// Search returns active companies matching q, name-ordered, plus the total
// match count for pagination.
func (r *companyPostgres) Search(ctx context.Context, q usecase.SearchQuery) ([]entity.Company, int64, error) {
	query := r.active(ctx)
	if q.Text != "" {
		// LOWER/LIKE instead of ILIKE keeps the predicate portable to the
		// SQLite test database.
		query = query.Where("LOWER(name) LIKE LOWER(?)", "%"+q.Text+"%")
	}
	if q.Sector != "" && q.Sector != "all" {
		query = query.Where("sector = ?", q.Sector)
	}
	if q.CompanyType != "" && q.CompanyType != "all" {
		query = query.Where("company_type = ?", q.CompanyType)
	}
	if min, max, ok := marketusecase.SizeBounds(q.Size); ok {
		query = query.Where("employee_count BETWEEN ? AND ?", min, max)
	}
	if q.ListedOnly {
		query = query.Where("is_listed = ?", true)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []entity.Company
	if err := query.Order("name ASC").Limit(q.Limit).Offset(q.Offset).Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

// FindByIDWithDetails returns one active company with ordered preloads.
// Statements are ordered by financial year descending so "latest" never
// depends on insertion order.
func (r *companyPostgres) FindByIDWithDetails(ctx context.Context, id uint) (*entity.Company, error) {
	var c entity.Company
	err := r.withDetails(r.active(ctx)).
		Where("id = ?", id).
		First(&c).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrCompanyNotFound
		}
		return nil, err
	}
	return &c, nil
}

// FindByIDsWithDetails returns the active companies among ids, hydrated.
// Satisfies the comparison feature's CompanyReader.
func (r *companyPostgres) FindByIDsWithDetails(ctx context.Context, ids []uint) ([]entity.Company, error) {
	var rows []entity.Company
	err := r.withDetails(r.active(ctx)).
		Where("id IN ?", ids).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// Sectors returns the distinct non-blank sectors of active companies.
func (r *companyPostgres) Sectors(ctx context.Context) ([]string, error) {
	var sectors []string
	err := r.active(ctx).
		Distinct("sector").
		Where("TRIM(sector) <> ''").
		Order("sector ASC").
		Pluck("sector", &sectors).Error
	if err != nil {
		return nil, err
	}
	return sectors, nil
}

func (r *companyPostgres) withDetails(q *gorm.DB) *gorm.DB {
	return q.
		Preload("FinancialStatements", func(db *gorm.DB) *gorm.DB {
			return db.Order("financial_year DESC")
		}).
		Preload("FundingRounds", func(db *gorm.DB) *gorm.DB {
			return db.Order("funding_date DESC")
		}).
		Preload("KeyOfficials")
}
