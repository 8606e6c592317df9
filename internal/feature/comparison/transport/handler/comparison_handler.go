// Package handler provides the HTTP handlers of the comparison feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"marketlens/internal/api"
	"marketlens/internal/feature/comparison/usecase"
	jwtmw "marketlens/internal/platform/jwt"
)

// ComparisonUsecase defines the operations the handler needs.
type ComparisonUsecase interface {
	Compare(ctx context.Context, userID uint, ids []uint) (*usecase.Result, error)
}

// ComparisonHandler handles HTTP requests for company comparison.
type ComparisonHandler struct {
	uc ComparisonUsecase
}

// NewComparisonHandler creates a new ComparisonHandler instance.
func NewComparisonHandler(uc ComparisonUsecase) *ComparisonHandler {
	return &ComparisonHandler{uc: uc}
}

// Compare builds comparison metrics for 2-4 selected companies.
//
// POST /comparison  {"company_ids": [1, 2, 3]}
//
// Selection violations (capacity, duplicates, too few) are 400-level
// validation responses, not server failures.
func (h *ComparisonHandler) Compare(c *gin.Context) {
	userID, _ := jwtmw.UserID(c)

	var req api.CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	result, err := h.uc.Compare(c.Request.Context(), userID, req.CompanyIDs)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, result)
	case errors.Is(err, usecase.ErrSetFull),
		errors.Is(err, usecase.ErrDuplicateCompany),
		errors.Is(err, usecase.ErrTooFewCompanies):
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
	case errors.Is(err, usecase.ErrCompanyNotFound):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: err.Error()})
	default:
		slog.Error("comparison failed", "error", err, "user_id", userID)
		c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: "comparison failed"})
	}
}
