// Package handler provides the HTTP handlers of the companies feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"marketlens/internal/api"
	"marketlens/internal/feature/companies/domain/entity"
	"marketlens/internal/feature/companies/usecase"
)

// CompanyUsecase defines the companies operations the handler needs.
type CompanyUsecase interface {
	Search(ctx context.Context, q usecase.SearchQuery) ([]entity.Company, int64, error)
	Get(ctx context.Context, id uint) (*entity.Company, error)
	Sectors(ctx context.Context) ([]string, error)
}

// CompanyHandler handles HTTP requests for company search and detail.
type CompanyHandler struct {
	uc CompanyUsecase
}

// NewCompanyHandler creates a new CompanyHandler instance.
func NewCompanyHandler(uc CompanyUsecase) *CompanyHandler {
	return &CompanyHandler{uc: uc}
}

// searchResponse wraps one page of results with the total match count.
type searchResponse struct {
	Companies []entity.Company `json:"companies"`
	Total     int64            `json:"total"`
	Limit     int              `json:"limit"`
	Offset    int              `json:"offset"`
}

// Search handles the filtered company search.
//
// GET /companies?q=acme&sector=Tech&company_type=all&company_size=small&listed=true&limit=20&offset=0
func (h *CompanyHandler) Search(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	q := usecase.SearchQuery{
		Text:        c.Query("q"),
		Sector:      c.Query("sector"),
		CompanyType: c.Query("company_type"),
		Size:        c.Query("company_size"),
		ListedOnly:  c.Query("listed") == "true",
		Limit:       limit,
		Offset:      offset,
	}

	companies, total, err := h.uc.Search(c.Request.Context(), q)
	if err != nil {
		slog.Error("company search failed", "error", err)
		c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: err.Error()})
		return
	}
	// Zero rows is a legitimate empty state, not an error.
	if companies == nil {
		companies = []entity.Company{}
	}
	c.JSON(http.StatusOK, searchResponse{
		Companies: companies,
		Total:     total,
		Limit:     q.Limit,
		Offset:    q.Offset,
	})
}

// Get handles the hydrated company detail.
//
// GET /companies/:id
func (h *CompanyHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid company id"})
		return
	}
	company, err := h.uc.Get(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, usecase.ErrCompanyNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "company not found"})
			return
		}
		slog.Error("company fetch failed", "error", err, "id", id)
		c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, company)
}

// Sectors returns the distinct sector values for filter dropdowns.
//
// GET /companies/sectors
func (h *CompanyHandler) Sectors(c *gin.Context) {
	sectors, err := h.uc.Sectors(c.Request.Context())
	if err != nil {
		slog.Error("sector listing failed", "error", err)
		c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: err.Error()})
		return
	}
	if sectors == nil {
		sectors = []string{}
	}
	c.JSON(http.StatusOK, gin.H{"sectors": sectors})
}
