package handlers

import (
	"log/slog"
	"net/http"

	"github.com/boutique-dz/storefront-backend/internal/catalog"
)

// DeliveryHandler serves the static delivery option catalog
type DeliveryHandler struct {
	catalog *catalog.Delivery
	log     *slog.Logger
}

// NewDeliveryHandler creates a new delivery handler
func NewDeliveryHandler(c *catalog.Delivery, log *slog.Logger) *DeliveryHandler {
	return &DeliveryHandler{
		catalog: c,
		log:     log,
	}
}

// ListOptions handles GET /api/delivery-options
func (h *DeliveryHandler) ListOptions(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, h.catalog.All(), h.log)
}
