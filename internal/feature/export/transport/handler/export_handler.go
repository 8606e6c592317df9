// Package handler provides the HTTP handlers of the export feature.
package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"marketlens/internal/api"
	comparisonusecase "marketlens/internal/feature/comparison/usecase"
	"marketlens/internal/feature/export"
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

// ActivityRecorder records a user action. Nil disables recording.
type ActivityRecorder interface {
	Record(ctx context.Context, userID uint, action, target, metadata string)
}

// ExportHandler serves downloadable report documents.
type ExportHandler struct {
	snapshots SnapshotSource
	comparer  Comparer
	activity  ActivityRecorder
	now       func() time.Time
}

// NewExportHandler creates a new ExportHandler instance. now defaults to
// time.Now and is injectable for deterministic tests.
func NewExportHandler(snapshots SnapshotSource, comparer Comparer, activity ActivityRecorder, now func() time.Time) *ExportHandler {
	if now == nil {
		now = time.Now
	}
	return &ExportHandler{snapshots: snapshots, comparer: comparer, activity: activity, now: now}
}

// Market exports the latest market snapshot as a JSON download.
//
// GET /market/export
//
// Strictly a read of the already-published snapshot: no refetch, no
// recomputation, so the document matches what was on screen.
func (h *ExportHandler) Market(c *gin.Context) {
	snap, ok := h.snapshots.Latest()
	if !ok {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "no snapshot to export; refresh the market view first"})
		return
	}

	now := h.now()
	report := export.BuildMarketReport(snap, now)
	body, err := export.Marshal(report)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
		return
	}

	if userID, ok := jwtmw.UserID(c); ok && h.activity != nil {
		h.activity.Record(c.Request.Context(), userID, "EXPORT", export.TypeMarket, "")
	}

	h.download(c, export.MarketFilename(snap.Filter, now), body)
}

// Comparison exports a comparison result as a JSON download.
//
// POST /comparison/export  {"company_ids": [1, 2]}
func (h *ExportHandler) Comparison(c *gin.Context) {
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
		c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: err.Error()})
		return
	}

	now := h.now()
	report := export.BuildComparisonReport(result, now)
	body, err := export.Marshal(report)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
		return
	}

	if h.activity != nil {
		h.activity.Record(c.Request.Context(), userID, "EXPORT", export.TypeComparison, "")
	}

	h.download(c, export.ComparisonFilename(result.CompanyCount, now), body)
}

func (h *ExportHandler) download(c *gin.Context, filename string, body []byte) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/json; charset=utf-8", body)
}
