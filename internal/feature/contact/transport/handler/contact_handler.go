// Package handler provides the HTTP handlers of the contact feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"marketlens/internal/api"
	"marketlens/internal/feature/contact/domain/entity"
	"marketlens/internal/feature/contact/usecase"
)

// ContactUsecase defines the contact operations the handler needs.
type ContactUsecase interface {
	Submit(ctx context.Context, name, email, subject, body string) (*entity.ContactMessage, error)
	List(ctx context.Context, status string) ([]entity.ContactMessage, error)
	UpdateStatus(ctx context.Context, id uint, status string) error
}

// ContactHandler handles HTTP requests for contact messages.
type ContactHandler struct {
	uc ContactUsecase
}

// NewContactHandler creates a new ContactHandler instance.
func NewContactHandler(uc ContactUsecase) *ContactHandler {
	return &ContactHandler{uc: uc}
}

// Submit handles the public contact form.
//
// POST /contact
func (h *ContactHandler) Submit(c *gin.Context) {
	var req api.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}
	msg, err := h.uc.Submit(c.Request.Context(), req.Name, req.Email, req.Subject, req.Body)
	if err != nil {
		slog.Error("contact submit failed", "error", err)
		c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: "message could not be saved"})
		return
	}
	c.JSON(http.StatusCreated, msg)
}

// List handles the admin message view.
//
// GET /admin/contact-messages?status=NEW
func (h *ContactHandler) List(c *gin.Context) {
	msgs, err := h.uc.List(c.Request.Context(), c.Query("status"))
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidStatus) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
			return
		}
		slog.Error("contact listing failed", "error", err)
		c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: err.Error()})
		return
	}
	if msgs == nil {
		msgs = []entity.ContactMessage{}
	}
	c.JSON(http.StatusOK, gin.H{"messages": msgs})
}

// UpdateStatus handles admin moderation.
//
// PUT /admin/contact-messages/:id
func (h *ContactHandler) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid id"})
		return
	}
	var req api.UpdateContactStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}
	if err := h.uc.UpdateStatus(c.Request.Context(), uint(id), req.Status); err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		case errors.Is(err, usecase.ErrMessageNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: err.Error()})
		default:
			slog.Error("contact status update failed", "error", err, "id", id)
			c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: "status updated"})
}
