package service

import (
	"context"
	"fmt"
	"time"

	"github.com/boutique-dz/storefront-backend/internal/cart"
	"github.com/boutique-dz/storefront-backend/internal/checkout"
	"github.com/boutique-dz/storefront-backend/internal/models"
	"github.com/boutique-dz/storefront-backend/internal/pricing"
	"github.com/google/uuid"
)

// CheckoutService runs the eligibility gate over the session cart and, when
// checkout may proceed, produces the order confirmation payload.
type CheckoutService struct {
	store      *cart.Store
	pricingCfg pricing.Config
	discounter pricing.Discounter
}

// NewCheckoutService creates a new checkout service
func NewCheckoutService(store *cart.Store, pricingCfg pricing.Config, discounter pricing.Discounter) *CheckoutService {
	return &CheckoutService{
		store:      store,
		pricingCfg: pricingCfg,
		discounter: discounter,
	}
}

// OrderConfirmation is handed to the confirmation flow when the gate allows
// checkout. Payment processing itself is an external collaborator.
type OrderConfirmation struct {
	OrderID        string                `json:"orderId"`
	Items          []models.CartLineItem `json:"items"`
	DeliveryOption models.DeliveryOption `json:"deliveryOption"`
	PaymentOption  models.PaymentOption  `json:"paymentOption"`
	Summary        pricing.Summary       `json:"summary"`
	CreatedAt      time.Time             `json:"createdAt"`
}

// Checkout evaluates the gate for the session's current cart and auth
// snapshot. A blocked decision is a business outcome, not an error; the
// confirmation is nil in that case.
func (s *CheckoutService) Checkout(ctx context.Context, sessionToken string, auth models.AuthSnapshot) (models.CheckoutDecision, *OrderConfirmation, error) {
	c := s.store.Get(sessionToken)
	lines := c.Lines()

	decision := checkout.Evaluate(pricing.ItemCount(lines), auth, c.PaymentOption())
	if !decision.Allowed {
		return decision, nil, nil
	}

	summary, err := c.Summary(ctx, s.pricingCfg, s.discounter)
	if err != nil {
		return models.CheckoutDecision{}, nil, fmt.Errorf("cart.Summary: %w", err)
	}

	confirmation := &OrderConfirmation{
		OrderID:        uuid.New().String(),
		Items:          lines,
		DeliveryOption: c.DeliveryOption(),
		PaymentOption:  c.PaymentOption(),
		Summary:        summary,
		CreatedAt:      time.Now().UTC(),
	}

	return decision, confirmation, nil
}
