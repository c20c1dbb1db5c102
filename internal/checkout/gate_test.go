package checkout

import (
	"testing"

	"github.com/boutique-dz/storefront-backend/internal/models"
)

func TestEvaluate(t *testing.T) {
	authenticated := func(ccpValidated, independent bool) models.AuthSnapshot {
		return models.AuthSnapshot{
			IsAuthenticated: true,
			Profile: &models.Profile{
				CCPValidated:  ccpValidated,
				IsIndependent: independent,
			},
		}
	}

	tests := []struct {
		name        string
		itemCount   int
		auth        models.AuthSnapshot
		payment     models.PaymentOption
		wantAllowed bool
		wantReason  models.CheckoutReason
	}{
		{
			name:       "empty cart blocks regardless of payment option",
			itemCount:  0,
			auth:       authenticated(true, false),
			payment:    models.PaymentOneTime,
			wantReason: models.ReasonEmptyCart,
		},
		{
			name:       "empty cart wins over unauthenticated",
			itemCount:  0,
			auth:       models.AuthSnapshot{},
			payment:    models.PaymentInstallment,
			wantReason: models.ReasonEmptyCart,
		},
		{
			name:       "unauthenticated blocks before payment checks",
			itemCount:  1,
			auth:       models.AuthSnapshot{IsAuthenticated: false, Profile: &models.Profile{CCPValidated: false}},
			payment:    models.PaymentInstallment,
			wantReason: models.ReasonUnauthenticated,
		},
		{
			name:       "installment without validated CCP",
			itemCount:  2,
			auth:       authenticated(false, false),
			payment:    models.PaymentInstallment,
			wantReason: models.ReasonCCPNotValidated,
		},
		{
			name:       "installment with missing profile is blocked",
			itemCount:  2,
			auth:       models.AuthSnapshot{IsAuthenticated: true, Profile: nil},
			payment:    models.PaymentInstallment,
			wantReason: models.ReasonCCPNotValidated,
		},
		{
			name:       "company payment for an independent worker",
			itemCount:  1,
			auth:       authenticated(true, true),
			payment:    models.PaymentCompany,
			wantReason: models.ReasonCompanyUnavailable,
		},
		{
			name:       "company payment with missing profile is blocked",
			itemCount:  1,
			auth:       models.AuthSnapshot{IsAuthenticated: true, Profile: nil},
			payment:    models.PaymentCompany,
			wantReason: models.ReasonCompanyUnavailable,
		},
		{
			name:        "one-time payment proceeds",
			itemCount:   1,
			auth:        authenticated(false, true),
			payment:     models.PaymentOneTime,
			wantAllowed: true,
			wantReason:  models.ReasonOK,
		},
		{
			name:        "installment with validated CCP proceeds",
			itemCount:   3,
			auth:        authenticated(true, false),
			payment:     models.PaymentInstallment,
			wantAllowed: true,
			wantReason:  models.ReasonOK,
		},
		{
			name:        "company payment for an employee proceeds",
			itemCount:   1,
			auth:        authenticated(false, false),
			payment:     models.PaymentCompany,
			wantAllowed: true,
			wantReason:  models.ReasonOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decision := Evaluate(tt.itemCount, tt.auth, tt.payment)

			if decision.Allowed != tt.wantAllowed {
				t.Errorf("Evaluate() allowed = %v, want %v", decision.Allowed, tt.wantAllowed)
			}

			if decision.Reason != tt.wantReason {
				t.Errorf("Evaluate() reason = %s, want %s", decision.Reason, tt.wantReason)
			}

			if decision.Title == "" {
				t.Error("Evaluate() decision has no title")
			}

			if decision.Detail == "" {
				t.Error("Evaluate() decision has no detail")
			}
		})
	}
}
