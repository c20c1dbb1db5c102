package cart

import (
	"context"
	"errors"
	"sync"

	"github.com/boutique-dz/storefront-backend/internal/models"
	"github.com/boutique-dz/storefront-backend/internal/pricing"
	"github.com/google/uuid"
)

var (
	ErrUnknownDeliveryOption = errors.New("unknown delivery option")
	ErrInvalidPaymentOption  = errors.New("invalid payment option")
)

// DeliveryCatalog resolves delivery option selections against the fixed
// catalog.
type DeliveryCatalog interface {
	Default() models.DeliveryOption
	Get(id models.DeliveryOptionID) (models.DeliveryOption, bool)
}

// Cart is the single source of truth for one session's line items and option
// selections. Derived pricing is recomputed on every read, never stored.
//
// Mutations from a session arrive one UI event at a time, but the HTTP layer
// gives no ordering guarantee, so the cart guards itself with a mutex.
type Cart struct {
	mu       sync.Mutex
	lines    []models.CartLineItem
	delivery models.DeliveryOption
	payment  models.PaymentOption
	catalog  DeliveryCatalog
}

// New creates an empty cart with the catalog's default delivery option and
// one-time payment selected.
func New(catalog DeliveryCatalog) *Cart {
	return &Cart{
		delivery: catalog.Default(),
		payment:  models.PaymentOneTime,
		catalog:  catalog,
	}
}

// AddItem adds a product selection to the cart. An existing line with the
// same product, size and color is merged by summing quantities; otherwise a
// new line with a fresh identifier is appended. Quantities below 1 are
// clamped to 1. Returns the affected line.
func (c *Cart) AddItem(product models.Product, quantity int, size, color, designer string) models.CartLineItem {
	c.mu.Lock()
	defer c.mu.Unlock()

	if quantity < 1 {
		quantity = 1
	}

	for i := range c.lines {
		line := &c.lines[i]
		if line.Product.ID == product.ID && line.Size == size && line.Color == color {
			line.Quantity += quantity
			return *line
		}
	}

	line := models.CartLineItem{
		LineID:   uuid.New(),
		Product:  product,
		Quantity: quantity,
		Size:     size,
		Color:    color,
		Designer: designer,
	}
	c.lines = append(c.lines, line)

	return line
}

// UpdateQuantity sets a line's quantity, clamping values below 1 to 1.
// Unknown line ids are a no-op; removal is the explicit RemoveItem operation.
func (c *Cart) UpdateQuantity(lineID uuid.UUID, quantity int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if quantity < 1 {
		quantity = 1
	}

	for i := range c.lines {
		if c.lines[i].LineID == lineID {
			c.lines[i].Quantity = quantity
			return
		}
	}
}

// RemoveItem deletes a line unconditionally. Unknown ids are a no-op.
func (c *Cart) RemoveItem(lineID uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].LineID == lineID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// Clear empties all line items. Delivery and payment selections are kept.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.lines = nil
}

// SetDeliveryOption selects a delivery option by id. Ids outside the catalog
// are rejected and the current selection is kept.
func (c *Cart) SetDeliveryOption(id models.DeliveryOptionID) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	option, ok := c.catalog.Get(id)
	if !ok {
		return ErrUnknownDeliveryOption
	}

	c.delivery = option
	return nil
}

// SetPaymentOption selects a payment option. Values outside the fixed enum
// are rejected and the current selection is kept.
func (c *Cart) SetPaymentOption(option models.PaymentOption) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !models.ValidPaymentOption(option) {
		return ErrInvalidPaymentOption
	}

	c.payment = option
	return nil
}

// Lines returns a copy of the current line items.
func (c *Cart) Lines() []models.CartLineItem {
	c.mu.Lock()
	defer c.mu.Unlock()

	lines := make([]models.CartLineItem, len(c.lines))
	copy(lines, c.lines)
	return lines
}

// DeliveryOption returns the current delivery selection.
func (c *Cart) DeliveryOption() models.DeliveryOption {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.delivery
}

// PaymentOption returns the current payment selection.
func (c *Cart) PaymentOption() models.PaymentOption {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.payment
}

// Summary recomputes the derived pricing breakdown for the current state.
func (c *Cart) Summary(ctx context.Context, cfg pricing.Config, discounter pricing.Discounter) (pricing.Summary, error) {
	c.mu.Lock()
	lines := make([]models.CartLineItem, len(c.lines))
	copy(lines, c.lines)
	delivery := c.delivery
	payment := c.payment
	c.mu.Unlock()

	return pricing.Summarize(ctx, lines, delivery, payment, cfg, discounter)
}
