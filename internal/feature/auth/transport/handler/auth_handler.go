// Package handler provides the HTTP handlers of the auth feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"marketlens/internal/api"
	"marketlens/internal/feature/auth/usecase"
	jwtmw "marketlens/internal/platform/jwt"
)

// AuthUsecase defines the auth operations the handler needs.
// Following Go convention, the interface is defined by the consumer
// (handler), not the provider (usecase).
type AuthUsecase interface {
	Signup(ctx context.Context, email, password string) error
	Login(ctx context.Context, email, password string) (string, error)
	UpdatePassword(ctx context.Context, userID uint, current, next string) error
}

// AuthHandler handles HTTP requests for authentication operations.
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler creates a new AuthHandler instance.
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Signup handles the user registration endpoint.
//   - 400 on validation failure
//   - 409 on any creation failure (duplicate email and the like)
//   - 201 on success
func (h *AuthHandler) Signup(c *gin.Context) {
	var req api.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("signup validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}
	if err := h.auth.Signup(c.Request.Context(), req.Email, req.Password); err != nil {
		// Don't expose the concrete failure; it would enable user enumeration
		slog.Warn("signup failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
		c.JSON(http.StatusConflict, api.ErrorResponse{Error: "signup failed"})
		return
	}
	slog.Info("user signup successful", "email", req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, api.MessageResponse{Message: "ok"})
}

// Login handles the user login endpoint.
//   - 400 on validation failure
//   - 401 on authentication failure
//   - 200 with a JWT token on success
func (h *AuthHandler) Login(c *gin.Context) {
	var req api.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}
	token, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		slog.Warn("login failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "invalid email or password"})
		return
	}
	slog.Info("user login successful", "email", req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, api.TokenResponse{Token: token})
}

// UpdatePassword handles the authenticated password-change endpoint.
//   - 400 on validation failure or weak new password
//   - 401 when the current password does not match
//   - 200 on success
func (h *AuthHandler) UpdatePassword(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "authentication required"})
		return
	}
	var req api.UpdatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}
	if err := h.auth.UpdatePassword(c.Request.Context(), userID, req.CurrentPassword, req.NewPassword); err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "current password is incorrect"})
			return
		}
		slog.Warn("password update failed", "error", err, "user_id", userID)
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: "password updated"})
}
