// Package usecase implements the business logic of the billing feature.
package usecase

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"marketlens/internal/feature/billing/domain/entity"
	profileentity "marketlens/internal/feature/profile/domain/entity"
)

var (
	// ErrUnknownPlan is returned for a plan code outside the catalog.
	ErrUnknownPlan = errors.New("unknown plan")

	// ErrPlanNotPurchasable is returned when checking out the free tier.
	ErrPlanNotPurchasable = errors.New("plan cannot be purchased")

	// ErrOrderNotFound is returned when no order matches the gateway id.
	ErrOrderNotFound = errors.New("payment order not found")

	// ErrInvalidSignature is returned when callback verification fails.
	ErrInvalidSignature = errors.New("payment signature verification failed")
)

// catalog is the static plan catalog. Amounts are minor units.
var catalog = []entity.Plan{
	{
		Code:     profileentity.RoleFreemium,
		Name:     "Freemium",
		Amount:   0,
		Currency: "USD",
		Features: []string{"Company search", "Watchlists", "Activity log"},
	},
	{
		Code:     profileentity.RolePremium,
		Name:     "Premium",
		Amount:   2900,
		Currency: "USD",
		Features: []string{"Everything in Freemium", "Market analysis", "Company comparison", "Report export"},
	},
	{
		Code:     profileentity.RoleEnterprise,
		Name:     "Enterprise",
		Amount:   9900,
		Currency: "USD",
		Features: []string{"Everything in Premium", "Priority support", "Team seats"},
	},
}

// PaymentGateway registers orders with the external gateway.
// Consumer-defined, per Go convention.
type PaymentGateway interface {
	CreateOrder(ctx context.Context, amount int64, currency, receipt string) (string, error)
	// Secret returns the signing secret used for callback verification.
	Secret() string
}

// OrderRepository abstracts payment-order persistence.
type OrderRepository interface {
	Create(ctx context.Context, o *entity.PaymentOrder) error
	FindByGatewayOrderID(ctx context.Context, gatewayOrderID string) (*entity.PaymentOrder, error)
	UpdateStatus(ctx context.Context, id uint, status string) error
}

// ProfileRoles upgrades a user's subscription role after a verified
// payment.
type ProfileRoles interface {
	UpgradeRole(ctx context.Context, userID uint, role string) error
}

// ActivityRecorder records a user action. Nil disables recording.
type ActivityRecorder interface {
	Record(ctx context.Context, userID uint, action, target, metadata string)
}

// billingUsecase implements the billing operations.
type billingUsecase struct {
	gateway  PaymentGateway
	orders   OrderRepository
	profiles ProfileRoles
	activity ActivityRecorder
}

// NewBillingUsecase creates a billingUsecase instance.
func NewBillingUsecase(gateway PaymentGateway, orders OrderRepository, profiles ProfileRoles, activity ActivityRecorder) *billingUsecase {
	return &billingUsecase{gateway: gateway, orders: orders, profiles: profiles, activity: activity}
}

// Plans returns the plan catalog.
func (u *billingUsecase) Plans() []entity.Plan {
	out := make([]entity.Plan, len(catalog))
	copy(out, catalog)
	return out
}

// CreateOrder registers a gateway order for the plan and persists it as
// CREATED. The returned order carries the gateway order id the client-side
// checkout widget needs.
func (u *billingUsecase) CreateOrder(ctx context.Context, userID uint, planCode string) (*entity.PaymentOrder, error) {
	plan, err := findPlan(planCode)
	if err != nil {
		return nil, err
	}
	if plan.Amount == 0 {
		return nil, ErrPlanNotPurchasable
	}

	receipt := uuid.NewString()
	gatewayOrderID, err := u.gateway.CreateOrder(ctx, plan.Amount, plan.Currency, receipt)
	if err != nil {
		return nil, fmt.Errorf("create gateway order: %w", err)
	}

	order := &entity.PaymentOrder{
		UserID:         userID,
		Plan:           plan.Code,
		Amount:         plan.Amount,
		Currency:       plan.Currency,
		GatewayOrderID: gatewayOrderID,
		Receipt:        receipt,
		Status:         entity.OrderCreated,
	}
	if err := u.orders.Create(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// VerifyPayment checks the success-callback signature server-side before
// trusting it. A valid signature flips the order to PAID and upgrades the
// user's role; an invalid one flips it to FAILED and returns
// ErrInvalidSignature.
func (u *billingUsecase) VerifyPayment(ctx context.Context, userID uint, gatewayOrderID, paymentID, signature string) error {
	order, err := u.orders.FindByGatewayOrderID(ctx, gatewayOrderID)
	if err != nil {
		return err
	}
	if order.UserID != userID {
		return ErrOrderNotFound
	}

	if !validSignature(u.gateway.Secret(), gatewayOrderID, paymentID, signature) {
		_ = u.orders.UpdateStatus(ctx, order.ID, entity.OrderFailed)
		return ErrInvalidSignature
	}

	if err := u.orders.UpdateStatus(ctx, order.ID, entity.OrderPaid); err != nil {
		return err
	}
	if err := u.profiles.UpgradeRole(ctx, userID, order.Plan); err != nil {
		return err
	}
	if u.activity != nil {
		u.activity.Record(ctx, userID, "PLAN_UPGRADE", order.Plan, "")
	}
	return nil
}

// validSignature recomputes HMAC-SHA256(secret, orderID|paymentID) and
// compares in constant time.
func validSignature(secret, orderID, paymentID, signature string) bool {
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%s|%s", orderID, paymentID)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}

func findPlan(code string) (entity.Plan, error) {
	upper := strings.ToUpper(strings.TrimSpace(code))
	for _, p := range catalog {
		if p.Code == upper {
			return p, nil
		}
	}
	return entity.Plan{}, ErrUnknownPlan
}
