// Package handler provides the HTTP handlers of the market feature.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"marketlens/internal/api"
	"marketlens/internal/feature/market/domain"
)

// MarketUsecase defines the operations the handler needs.
// Consumer-defined, per Go convention.
type MarketUsecase interface {
	Refresh(ctx context.Context, f domain.Filter) (*domain.Snapshot, error)
	Latest() (*domain.Snapshot, bool)
}

// MarketHandler handles HTTP requests for market analysis.
type MarketHandler struct {
	uc MarketUsecase
}

// NewMarketHandler creates a new MarketHandler instance.
func NewMarketHandler(uc MarketUsecase) *MarketHandler {
	return &MarketHandler{uc: uc}
}

// filterFromQuery reads the filter tuple off the query string; missing
// dimensions normalize to the wildcard inside the usecase.
func filterFromQuery(c *gin.Context) domain.Filter {
	return domain.Filter{
		Sector:      c.Query("sector"),
		TimeRange:   c.Query("time_range"),
		CompanyType: c.Query("company_type"),
		CompanySize: c.Query("company_size"),
	}
}

// Overview runs a full refresh for the requested filter tuple and returns
// the snapshot.
//
// GET /market/overview?sector=Tech&time_range=1year&company_type=all&company_size=all
//
// A fetch failure surfaces as one 502 with the error message; there are no
// partial aggregates.
func (h *MarketHandler) Overview(c *gin.Context) {
	snap, err := h.uc.Refresh(c.Request.Context(), filterFromQuery(c))
	if err != nil {
		slog.Error("market refresh failed", "error", err)
		c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, snap)
}

// Latest returns the most recently published snapshot without refetching.
//
// GET /market/latest
func (h *MarketHandler) Latest(c *gin.Context) {
	snap, ok := h.uc.Latest()
	if !ok {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "no snapshot yet"})
		return
	}
	c.JSON(http.StatusOK, snap)
}
