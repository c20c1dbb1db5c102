package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/boutique-dz/storefront-backend/internal/cart"
	"github.com/boutique-dz/storefront-backend/internal/middleware"
	"github.com/boutique-dz/storefront-backend/internal/models"
	"github.com/boutique-dz/storefront-backend/internal/service"
	"github.com/go-chi/chi/v5"
)

// CartHandler handles cart-related HTTP requests
type CartHandler struct {
	cartService *service.CartService
	log         *slog.Logger
}

// NewCartHandler creates a new cart handler
func NewCartHandler(cartService *service.CartService, log *slog.Logger) *CartHandler {
	return &CartHandler{
		cartService: cartService,
		log:         log,
	}
}

// GetCart handles GET /api/cart
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	token := middleware.SessionTokenFrom(r.Context())

	view, err := h.cartService.View(r.Context(), token)
	if err != nil {
		h.log.Error("failed to read cart", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}

	WriteJSON(w, http.StatusOK, view, h.log)
}

// AddItem handles POST /api/cart/items
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	token := middleware.SessionTokenFrom(r.Context())

	var req models.AddItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Error("failed to decode add item request", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	view, err := h.cartService.AddItem(r.Context(), token, req)
	if err != nil {
		h.writeCartError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, view, h.log)
	h.log.Info("item added to cart", "product_id", req.ProductID, "quantity", req.Quantity, "item_count", view.Summary.ItemCount)
}

// UpdateQuantity handles PUT /api/cart/items/{lineId}
func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	token := middleware.SessionTokenFrom(r.Context())
	lineID := chi.URLParam(r, "lineId")

	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Error("failed to decode quantity request", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	view, err := h.cartService.UpdateQuantity(r.Context(), token, lineID, req.Quantity)
	if err != nil {
		h.writeCartError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, view, h.log)
}

// RemoveItem handles DELETE /api/cart/items/{lineId}
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	token := middleware.SessionTokenFrom(r.Context())
	lineID := chi.URLParam(r, "lineId")

	view, err := h.cartService.RemoveItem(r.Context(), token, lineID)
	if err != nil {
		h.writeCartError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, view, h.log)
}

// ClearCart handles DELETE /api/cart
func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	token := middleware.SessionTokenFrom(r.Context())

	view, err := h.cartService.Clear(r.Context(), token)
	if err != nil {
		h.writeCartError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, view, h.log)
}

// SetDeliveryOption handles PUT /api/cart/delivery-option
func (h *CartHandler) SetDeliveryOption(w http.ResponseWriter, r *http.Request) {
	token := middleware.SessionTokenFrom(r.Context())

	var req struct {
		ID models.DeliveryOptionID `json:"id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Error("failed to decode delivery option request", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	view, err := h.cartService.SetDeliveryOption(r.Context(), token, req.ID)
	if err != nil {
		h.writeCartError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, view, h.log)
}

// SetPaymentOption handles PUT /api/cart/payment-option
func (h *CartHandler) SetPaymentOption(w http.ResponseWriter, r *http.Request) {
	token := middleware.SessionTokenFrom(r.Context())

	var req struct {
		Option models.PaymentOption `json:"option"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Error("failed to decode payment option request", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	view, err := h.cartService.SetPaymentOption(r.Context(), token, req.Option)
	if err != nil {
		h.writeCartError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, view, h.log)
}

func (h *CartHandler) writeCartError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidQuantity):
		WriteError(w, http.StatusBadRequest, "Quantity must be positive", h.log)
	case errors.Is(err, service.ErrInvalidProduct):
		WriteError(w, http.StatusBadRequest, "Invalid product", h.log)
	case errors.Is(err, service.ErrInvalidLineID):
		WriteError(w, http.StatusBadRequest, "Invalid line id", h.log)
	case errors.Is(err, cart.ErrUnknownDeliveryOption):
		WriteError(w, http.StatusBadRequest, "Unknown delivery option", h.log)
	case errors.Is(err, cart.ErrInvalidPaymentOption):
		WriteError(w, http.StatusBadRequest, "Invalid payment option", h.log)
	default:
		h.log.Error("cart operation failed", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
	}
}
