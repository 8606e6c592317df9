// Package handler provides the HTTP handlers of the watchlist feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"marketlens/internal/api"
	companyentity "marketlens/internal/feature/companies/domain/entity"
	"marketlens/internal/feature/watchlist/domain/entity"
	"marketlens/internal/feature/watchlist/usecase"
	jwtmw "marketlens/internal/platform/jwt"
)

// WatchlistUsecase defines the watchlist operations the handler needs.
type WatchlistUsecase interface {
	Create(ctx context.Context, userID uint, name string) (*entity.Watchlist, error)
	List(ctx context.Context, userID uint) ([]entity.Watchlist, error)
	Rename(ctx context.Context, userID, id uint, name string) error
	Delete(ctx context.Context, userID, id uint) error
	AddCompany(ctx context.Context, userID, id, companyID uint) error
	RemoveCompany(ctx context.Context, userID, id, companyID uint) error
	Companies(ctx context.Context, userID, id uint) ([]companyentity.Company, error)
}

// WatchlistHandler handles HTTP requests for watchlists.
type WatchlistHandler struct {
	uc WatchlistUsecase
}

// NewWatchlistHandler creates a new WatchlistHandler instance.
func NewWatchlistHandler(uc WatchlistUsecase) *WatchlistHandler {
	return &WatchlistHandler{uc: uc}
}

func pathID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid id"})
		return 0, false
	}
	return uint(id), true
}

// Create handles POST /watchlists.
func (h *WatchlistHandler) Create(c *gin.Context) {
	userID, _ := jwtmw.UserID(c)
	var req api.CreateWatchlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}
	wl, err := h.uc.Create(c.Request.Context(), userID, req.Name)
	if err != nil {
		slog.Error("watchlist create failed", "error", err, "user_id", userID)
		c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, wl)
}

// List handles GET /watchlists.
func (h *WatchlistHandler) List(c *gin.Context) {
	userID, _ := jwtmw.UserID(c)
	lists, err := h.uc.List(c.Request.Context(), userID)
	if err != nil {
		slog.Error("watchlist listing failed", "error", err, "user_id", userID)
		c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: err.Error()})
		return
	}
	if lists == nil {
		lists = []entity.Watchlist{}
	}
	c.JSON(http.StatusOK, gin.H{"watchlists": lists})
}

// Rename handles PUT /watchlists/:id.
func (h *WatchlistHandler) Rename(c *gin.Context) {
	userID, _ := jwtmw.UserID(c)
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req api.RenameWatchlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}
	if err := h.uc.Rename(c.Request.Context(), userID, id, req.Name); err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: "renamed"})
}

// Delete handles DELETE /watchlists/:id.
func (h *WatchlistHandler) Delete(c *gin.Context) {
	userID, _ := jwtmw.UserID(c)
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.uc.Delete(c.Request.Context(), userID, id); err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: "deleted"})
}

// AddCompany handles POST /watchlists/:id/companies.
func (h *WatchlistHandler) AddCompany(c *gin.Context) {
	userID, _ := jwtmw.UserID(c)
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req api.WatchlistCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}
	if err := h.uc.AddCompany(c.Request.Context(), userID, id, req.CompanyID); err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, api.MessageResponse{Message: "added"})
}

// RemoveCompany handles DELETE /watchlists/:id/companies/:companyID.
func (h *WatchlistHandler) RemoveCompany(c *gin.Context) {
	userID, _ := jwtmw.UserID(c)
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	companyID, ok := pathID(c, "companyID")
	if !ok {
		return
	}
	if err := h.uc.RemoveCompany(c.Request.Context(), userID, id, companyID); err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: "removed"})
}

// Companies handles GET /watchlists/:id/companies.
func (h *WatchlistHandler) Companies(c *gin.Context) {
	userID, _ := jwtmw.UserID(c)
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	companies, err := h.uc.Companies(c.Request.Context(), userID, id)
	if err != nil {
		h.renderError(c, err)
		return
	}
	if companies == nil {
		companies = []companyentity.Company{}
	}
	c.JSON(http.StatusOK, gin.H{"companies": companies})
}

func (h *WatchlistHandler) renderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrWatchlistNotFound):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: err.Error()})
	case errors.Is(err, usecase.ErrAlreadyInWatchlist),
		errors.Is(err, usecase.ErrNotInWatchlist):
		c.JSON(http.StatusConflict, api.ErrorResponse{Error: err.Error()})
	default:
		slog.Error("watchlist operation failed", "error", err)
		c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: err.Error()})
	}
}
