package checkout

import "github.com/boutique-dz/storefront-backend/internal/models"

// Evaluate decides whether checkout may proceed. Checks run in a fixed
// order — empty cart, authentication, then payment-option gates — and the
// first failing check is the single reason surfaced, even when several
// conditions hold at once.
//
// A nil profile (failed or absent profile fetch) is treated conservatively:
// installment and company-sponsored payment are both blocked.
func Evaluate(itemCount int, auth models.AuthSnapshot, payment models.PaymentOption) models.CheckoutDecision {
	if itemCount == 0 {
		return models.CheckoutDecision{
			Reason: models.ReasonEmptyCart,
			Title:  "Your cart is empty",
			Detail: "Add at least one item before checking out.",
		}
	}

	if !auth.IsAuthenticated {
		return models.CheckoutDecision{
			Reason: models.ReasonUnauthenticated,
			Title:  "Sign in required",
			Detail: "Sign in to continue to checkout.",
		}
	}

	if payment == models.PaymentInstallment {
		if auth.Profile == nil || !auth.Profile.CCPValidated {
			return models.CheckoutDecision{
				Reason: models.ReasonCCPNotValidated,
				Title:  "CCP account not validated",
				Detail: "Validate your CCP account to pay in installments.",
			}
		}
	}

	if payment == models.PaymentCompany {
		if auth.Profile == nil || auth.Profile.IsIndependent {
			return models.CheckoutDecision{
				Reason: models.ReasonCompanyUnavailable,
				Title:  "Company payment unavailable",
				Detail: "Employer-sponsored payment is not available for independent workers.",
			}
		}
	}

	return models.CheckoutDecision{
		Allowed: true,
		Reason:  models.ReasonOK,
		Title:   "Checkout",
		Detail:  "You can proceed to order confirmation.",
	}
}
