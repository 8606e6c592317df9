// Package handler provides the HTTP handlers of the activity feature.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"marketlens/internal/api"
	"marketlens/internal/feature/activity/domain/entity"
	jwtmw "marketlens/internal/platform/jwt"
)

// ActivityUsecase defines the operations the handler needs.
type ActivityUsecase interface {
	ListRecent(ctx context.Context, userID uint, limit int) ([]entity.ActivityLog, error)
}

// ActivityHandler handles HTTP requests for the activity log.
type ActivityHandler struct {
	uc ActivityUsecase
}

// NewActivityHandler creates a new ActivityHandler instance.
func NewActivityHandler(uc ActivityUsecase) *ActivityHandler {
	return &ActivityHandler{uc: uc}
}

// List returns the current user's recent activity.
//
// GET /activity?limit=50
func (h *ActivityHandler) List(c *gin.Context) {
	userID, _ := jwtmw.UserID(c)
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	logs, err := h.uc.ListRecent(c.Request.Context(), userID, limit)
	if err != nil {
		slog.Error("activity listing failed", "error", err, "user_id", userID)
		c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: err.Error()})
		return
	}
	if logs == nil {
		logs = []entity.ActivityLog{}
	}
	c.JSON(http.StatusOK, gin.H{"activity": logs})
}
