// Package handler provides the HTTP handlers of the charts feature.
package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"marketlens/internal/api"
	"marketlens/internal/feature/charts"
	comparisonusecase "marketlens/internal/feature/comparison/usecase"
	"marketlens/internal/feature/market/domain"
	jwtmw "marketlens/internal/platform/jwt"
)

// SnapshotSource serves the latest published market snapshot without
// refetching. Consumer-defined, per Go convention.
type SnapshotSource interface {
	Latest() (*domain.Snapshot, bool)
}

// Comparer runs a comparison for the requested ids.
type Comparer interface {
	Compare(ctx context.Context, userID uint, ids []uint) (*comparisonusecase.Result, error)
}

// ChartsHandler serves chart-ready payloads for the dashboard renderer.
type ChartsHandler struct {
	snapshots SnapshotSource
	comparer  Comparer
}

// NewChartsHandler creates a new ChartsHandler instance.
func NewChartsHandler(snapshots SnapshotSource, comparer Comparer) *ChartsHandler {
	return &ChartsHandler{snapshots: snapshots, comparer: comparer}
}

// Market returns every market chart payload built from the latest snapshot.
//
// GET /market/charts
func (h *ChartsHandler) Market(c *gin.Context) {
	snap, ok := h.snapshots.Latest()
	if !ok {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "no snapshot available; refresh the market view first"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"generated_at":   snap.GeneratedAt,
		"sector_pie":     charts.SectorPie(snap),
		"funding_trend":  charts.FundingTrend(snap),
		"bubbles":        charts.ValuationBubbles(snap),
		"growth_heatmap": charts.GrowthHeatmap(snap),
	})
}

// Comparison runs a comparison and returns its bar chart payloads.
//
// POST /comparison/charts  {"company_ids": [1, 2]}
func (h *ChartsHandler) Comparison(c *gin.Context) {
	userID, _ := jwtmw.UserID(c)

	var req api.CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	result, err := h.comparer.Compare(c.Request.Context(), userID, req.CompanyIDs)
	if err != nil {
		if errors.Is(err, comparisonusecase.ErrSetFull) ||
			errors.Is(err, comparisonusecase.ErrDuplicateCompany) ||
			errors.Is(err, comparisonusecase.ErrTooFewCompanies) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
			return
		}
		if errors.Is(err, comparisonusecase.ErrCompanyNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"generated_at": result.GeneratedAt,
		"bars":         charts.ComparisonBars(result),
	})
}
