package handlers

import (
	"log/slog"
	"net/http"

	"github.com/boutique-dz/storefront-backend/internal/middleware"
	"github.com/boutique-dz/storefront-backend/internal/models"
	"github.com/boutique-dz/storefront-backend/internal/service"
)

// CheckoutHandler handles checkout HTTP requests
type CheckoutHandler struct {
	checkoutService *service.CheckoutService
	log             *slog.Logger
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(checkoutService *service.CheckoutService, log *slog.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: checkoutService,
		log:             log,
	}
}

// checkoutResponse is returned for both outcomes; Confirmation is present
// only when the gate allows checkout.
type checkoutResponse struct {
	Decision     models.CheckoutDecision    `json:"decision"`
	Confirmation *service.OrderConfirmation `json:"confirmation,omitempty"`
}

// Checkout handles POST /api/checkout
// - 200: checkout may proceed, confirmation included
// - 409: blocked, decision carries the single surfaced reason
func (h *CheckoutHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	token := middleware.SessionTokenFrom(ctx)
	auth := middleware.AuthSnapshotFrom(ctx)

	decision, confirmation, err := h.checkoutService.Checkout(ctx, token, auth)
	if err != nil {
		h.log.Error("checkout failed", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}

	if !decision.Allowed {
		h.log.Info("checkout blocked", "reason", decision.Reason)
		WriteJSON(w, http.StatusConflict, checkoutResponse{Decision: decision}, h.log)
		return
	}

	WriteJSON(w, http.StatusOK, checkoutResponse{Decision: decision, Confirmation: confirmation}, h.log)
	h.log.Info("checkout allowed", "order_id", confirmation.OrderID, "items_count", len(confirmation.Items))
}
