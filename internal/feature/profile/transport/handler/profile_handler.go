// Package handler provides the HTTP handlers of the profile feature.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"marketlens/internal/api"
	"marketlens/internal/feature/profile/domain/entity"
	jwtmw "marketlens/internal/platform/jwt"
)

// ProfileUsecase defines the profile operations the handler needs.
type ProfileUsecase interface {
	Get(ctx context.Context, userID uint) (*entity.Profile, string, error)
	Update(ctx context.Context, userID uint, fullName, company string) (*entity.Profile, error)
	UpdateAvatar(ctx context.Context, userID uint, avatarKey string) (*entity.Profile, error)
	Logout(ctx context.Context, userID uint)
}

// ProfileHandler handles HTTP requests for user profiles.
type ProfileHandler struct {
	uc ProfileUsecase
}

// NewProfileHandler creates a new ProfileHandler instance.
func NewProfileHandler(uc ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{uc: uc}
}

func toResponse(p *entity.Profile, email string) api.ProfileResponse {
	return api.ProfileResponse{
		UserID:    p.UserID,
		Email:     email,
		FullName:  p.FullName,
		Company:   p.Company,
		Role:      entity.NormalizeRole(p.Role),
		AvatarKey: p.AvatarKey,
	}
}

// Get handles GET /profile.
func (h *ProfileHandler) Get(c *gin.Context) {
	userID, _ := jwtmw.UserID(c)
	p, email, err := h.uc.Get(c.Request.Context(), userID)
	if err != nil {
		slog.Error("profile fetch failed", "error", err, "user_id", userID)
		c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, toResponse(p, email))
}

// Update handles PUT /profile.
func (h *ProfileHandler) Update(c *gin.Context) {
	userID, _ := jwtmw.UserID(c)
	var req api.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}
	p, err := h.uc.Update(c.Request.Context(), userID, req.FullName, req.Company)
	if err != nil {
		slog.Error("profile update failed", "error", err, "user_id", userID)
		c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, toResponse(p, ""))
}

// UpdateAvatar handles PUT /profile/avatar.
func (h *ProfileHandler) UpdateAvatar(c *gin.Context) {
	userID, _ := jwtmw.UserID(c)
	var req api.UpdateAvatarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}
	p, err := h.uc.UpdateAvatar(c.Request.Context(), userID, req.AvatarKey)
	if err != nil {
		slog.Error("avatar update failed", "error", err, "user_id", userID)
		c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, toResponse(p, ""))
}

// Logout handles POST /logout. The token stays valid until expiry; this
// clears the cached profile per the invalidation contract.
func (h *ProfileHandler) Logout(c *gin.Context) {
	userID, _ := jwtmw.UserID(c)
	h.uc.Logout(c.Request.Context(), userID)
	c.JSON(http.StatusOK, api.MessageResponse{Message: "logged out"})
}
