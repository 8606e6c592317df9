// Package handler provides the HTTP handlers of the billing feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"marketlens/internal/api"
	"marketlens/internal/feature/billing/domain/entity"
	"marketlens/internal/feature/billing/usecase"
	jwtmw "marketlens/internal/platform/jwt"
)

// BillingUsecase defines the billing operations the handler needs.
type BillingUsecase interface {
	Plans() []entity.Plan
	CreateOrder(ctx context.Context, userID uint, planCode string) (*entity.PaymentOrder, error)
	VerifyPayment(ctx context.Context, userID uint, gatewayOrderID, paymentID, signature string) error
}

// BillingHandler handles HTTP requests for plans and payments.
type BillingHandler struct {
	uc BillingUsecase
}

// NewBillingHandler creates a new BillingHandler instance.
func NewBillingHandler(uc BillingUsecase) *BillingHandler {
	return &BillingHandler{uc: uc}
}

// Plans handles GET /billing/plans.
func (h *BillingHandler) Plans(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"plans": h.uc.Plans()})
}

// CreateOrder handles POST /billing/orders.
func (h *BillingHandler) CreateOrder(c *gin.Context) {
	userID, _ := jwtmw.UserID(c)
	var req api.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	order, err := h.uc.CreateOrder(c.Request.Context(), userID, req.Plan)
	switch {
	case err == nil:
		c.JSON(http.StatusCreated, api.CreateOrderResponse{
			OrderID:  order.GatewayOrderID,
			Amount:   order.Amount,
			Currency: order.Currency,
			Plan:     order.Plan,
		})
	case errors.Is(err, usecase.ErrUnknownPlan), errors.Is(err, usecase.ErrPlanNotPurchasable):
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
	default:
		slog.Error("order creation failed", "error", err, "user_id", userID)
		c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: "order creation failed"})
	}
}

// VerifyPayment handles POST /billing/verify. The gateway's success
// callback is never trusted without this server-side signature check.
func (h *BillingHandler) VerifyPayment(c *gin.Context) {
	userID, _ := jwtmw.UserID(c)
	var req api.VerifyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	err := h.uc.VerifyPayment(c.Request.Context(), userID, req.OrderID, req.PaymentID, req.Signature)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, api.MessageResponse{Message: "payment verified"})
	case errors.Is(err, usecase.ErrInvalidSignature):
		slog.Warn("payment signature rejected", "user_id", userID, "order_id", req.OrderID)
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
	case errors.Is(err, usecase.ErrOrderNotFound):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: err.Error()})
	default:
		slog.Error("payment verification failed", "error", err, "user_id", userID)
		c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: "payment verification failed"})
	}
}
