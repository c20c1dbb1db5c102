package service

import (
	"testing"

	"github.com/boutique-dz/storefront-backend/internal/cart"
	"github.com/boutique-dz/storefront-backend/internal/catalog"
	"github.com/boutique-dz/storefront-backend/internal/models"
	"github.com/boutique-dz/storefront-backend/internal/pricing"
	"golang.org/x/text/currency"
)

func newTestCheckoutService(t *testing.T) (*CheckoutService, *cart.Store, pricing.Config) {
	t.Helper()

	unit := currency.MustParseISO("DZD")

	min, err := models.NewMoney("30000", unit)
	if err != nil {
		t.Fatalf("failed to build pricing config: %v", err)
	}

	cfg := pricing.Config{
		InstallmentMinTotal: min,
		InstallmentMonths:   12,
		Currency:            unit,
	}

	store := cart.NewStore(catalog.DefaultDelivery(unit))

	return NewCheckoutService(store, cfg, pricing.ZeroDiscounter{}), store, cfg
}

func testProduct(t *testing.T, amount string) models.Product {
	t.Helper()

	price, err := models.NewMoney(amount, currency.MustParseISO("DZD"))
	if err != nil {
		t.Fatalf("failed to build product price: %v", err)
	}

	return models.Product{ID: "7", Name: "Olive Wood Shelf", Price: price, Category: "Storage", Supplier: "Bois de l'Atlas"}
}

func TestCheckoutService_Checkout(t *testing.T) {
	authenticated := models.AuthSnapshot{
		IsAuthenticated: true,
		Profile:         &models.Profile{CCPValidated: true, IsIndependent: false},
	}

	tests := []struct {
		name        string
		setup       func(t *testing.T, store *cart.Store, session string)
		auth        models.AuthSnapshot
		wantAllowed bool
		wantReason  models.CheckoutReason
	}{
		{
			name:       "empty cart is blocked",
			setup:      func(t *testing.T, store *cart.Store, session string) {},
			auth:       authenticated,
			wantReason: models.ReasonEmptyCart,
		},
		{
			name: "unauthenticated is blocked",
			setup: func(t *testing.T, store *cart.Store, session string) {
				store.Get(session).AddItem(testProduct(t, "19900"), 1, "90cm", "olive", "")
			},
			auth:       models.AuthSnapshot{},
			wantReason: models.ReasonUnauthenticated,
		},
		{
			name: "installment without validated CCP is blocked",
			setup: func(t *testing.T, store *cart.Store, session string) {
				c := store.Get(session)
				c.AddItem(testProduct(t, "19900"), 2, "90cm", "olive", "")
				if err := c.SetPaymentOption(models.PaymentInstallment); err != nil {
					t.Fatalf("SetPaymentOption() error = %v", err)
				}
			},
			auth: models.AuthSnapshot{
				IsAuthenticated: true,
				Profile:         &models.Profile{CCPValidated: false},
			},
			wantReason: models.ReasonCCPNotValidated,
		},
		{
			name: "one-time payment proceeds",
			setup: func(t *testing.T, store *cart.Store, session string) {
				store.Get(session).AddItem(testProduct(t, "19900"), 1, "90cm", "olive", "")
			},
			auth:        authenticated,
			wantAllowed: true,
			wantReason:  models.ReasonOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, store, _ := newTestCheckoutService(t)
			session := "session-" + tt.name
			tt.setup(t, store, session)

			decision, confirmation, err := svc.Checkout(t.Context(), session, tt.auth)
			if err != nil {
				t.Fatalf("Checkout() unexpected error = %v", err)
			}

			if decision.Allowed != tt.wantAllowed {
				t.Errorf("Checkout() allowed = %v, want %v", decision.Allowed, tt.wantAllowed)
			}

			if decision.Reason != tt.wantReason {
				t.Errorf("Checkout() reason = %s, want %s", decision.Reason, tt.wantReason)
			}

			if tt.wantAllowed {
				if confirmation == nil {
					t.Fatal("Checkout() returned nil confirmation for allowed checkout")
				}
				if confirmation.OrderID == "" {
					t.Error("Checkout() confirmation has empty order id")
				}
				if len(confirmation.Items) == 0 {
					t.Error("Checkout() confirmation has no items")
				}
			} else if confirmation != nil {
				t.Error("Checkout() returned a confirmation for blocked checkout")
			}
		})
	}
}

func TestCheckoutService_InstallmentConfirmationCarriesSchedule(t *testing.T) {
	svc, store, _ := newTestCheckoutService(t)

	c := store.Get("session-schedule")
	c.AddItem(testProduct(t, "60000"), 2, "90cm", "olive", "")
	if err := c.SetPaymentOption(models.PaymentInstallment); err != nil {
		t.Fatalf("SetPaymentOption() error = %v", err)
	}

	auth := models.AuthSnapshot{
		IsAuthenticated: true,
		Profile:         &models.Profile{CCPValidated: true},
	}

	decision, confirmation, err := svc.Checkout(t.Context(), "session-schedule", auth)
	if err != nil {
		t.Fatalf("Checkout() error = %v", err)
	}

	if !decision.Allowed {
		t.Fatalf("Checkout() blocked with reason %s", decision.Reason)
	}

	if confirmation.Summary.Installment == nil {
		t.Fatal("confirmation summary has no installment schedule")
	}

	if confirmation.Summary.Installment.Months != 12 {
		t.Errorf("installment months = %d, want 12", confirmation.Summary.Installment.Months)
	}
}
