package models

// Profile carries the account flags checkout eligibility depends on.
type Profile struct {
	CCPValidated  bool `json:"ccp_validated"`
	IsIndependent bool `json:"is_independent"`
}

// AuthSnapshot is the already-resolved authentication state supplied by the
// session provider. A nil Profile means the profile fetch failed or never
// happened; gated payment options treat that as ineligible.
type AuthSnapshot struct {
	IsAuthenticated bool
	Profile         *Profile
}

// CheckoutReason codes the single blocking condition surfaced to the caller,
// or "ok" when checkout may proceed.
type CheckoutReason string

const (
	ReasonOK                 CheckoutReason = "ok"
	ReasonEmptyCart          CheckoutReason = "empty_cart"
	ReasonUnauthenticated    CheckoutReason = "unauthenticated"
	ReasonCCPNotValidated    CheckoutReason = "ccp_not_validated"
	ReasonCompanyUnavailable CheckoutReason = "company_unavailable"
)

// CheckoutDecision is the eligibility gate's verdict. Title and Detail are
// meant for the notification sink; Reason is the stable machine code.
type CheckoutDecision struct {
	Allowed bool           `json:"allowed"`
	Reason  CheckoutReason `json:"reason"`
	Title   string         `json:"title"`
	Detail  string         `json:"detail"`
}
