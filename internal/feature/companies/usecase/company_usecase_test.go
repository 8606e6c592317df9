package usecase

import (
	"context"
	"testing"

	"marketlens/internal/feature/companies/domain/entity"
)

// mockCompanyRepository is a mock implementation of the CompanyRepository interface.
type mockCompanyRepository struct {
	SearchFunc              func(ctx context.Context, q SearchQuery) ([]entity.Company, int64, error)
	FindByIDWithDetailsFunc func(ctx context.Context, id uint) (*entity.Company, error)
	SectorsFunc             func(ctx context.Context) ([]string, error)
}

func (m *mockCompanyRepository) Search(ctx context.Context, q SearchQuery) ([]entity.Company, int64, error) {
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, q)
	}
	return nil, 0, nil
}

func (m *mockCompanyRepository) FindByIDWithDetails(ctx context.Context, id uint) (*entity.Company, error) {
	if m.FindByIDWithDetailsFunc != nil {
		return m.FindByIDWithDetailsFunc(ctx, id)
	}
	return nil, ErrCompanyNotFound
}

func (m *mockCompanyRepository) Sectors(ctx context.Context) ([]string, error) {
	if m.SectorsFunc != nil {
		return m.SectorsFunc(ctx)
	}
	return nil, nil
}

func TestCompanyUsecase_Search_PaginationNormalization(t *testing.T) {
	tests := []struct {
		name           string
		limit          int
		offset         int
		expectedLimit  int
		expectedOffset int
	}{
		{name: "zero limit defaults", limit: 0, offset: 0, expectedLimit: DefaultPageSize, expectedOffset: 0},
		{name: "negative limit defaults", limit: -5, offset: 0, expectedLimit: DefaultPageSize, expectedOffset: 0},
		{name: "oversized limit defaults", limit: 500, offset: 0, expectedLimit: DefaultPageSize, expectedOffset: 0},
		{name: "valid limit preserved", limit: 50, offset: 40, expectedLimit: 50, expectedOffset: 40},
		{name: "negative offset clamped", limit: 10, offset: -3, expectedLimit: 10, expectedOffset: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockCompanyRepository{
				SearchFunc: func(ctx context.Context, q SearchQuery) ([]entity.Company, int64, error) {
					if q.Limit != tt.expectedLimit {
						t.Errorf("Limit = %d, want %d", q.Limit, tt.expectedLimit)
					}
					if q.Offset != tt.expectedOffset {
						t.Errorf("Offset = %d, want %d", q.Offset, tt.expectedOffset)
					}
					return nil, 0, nil
				},
			}

			uc := NewCompanyUsecase(repo)
			if _, _, err := uc.Search(context.Background(), SearchQuery{Limit: tt.limit, Offset: tt.offset}); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}
