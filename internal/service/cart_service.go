package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/boutique-dz/storefront-backend/internal/cart"
	"github.com/boutique-dz/storefront-backend/internal/models"
	"github.com/boutique-dz/storefront-backend/internal/pricing"
	"github.com/google/uuid"
)

var (
	ErrInvalidProduct  = errors.New("invalid product")
	ErrInvalidQuantity = errors.New("quantity must be positive")
	ErrInvalidLineID   = errors.New("invalid line id")
)

// CartService handles cart business logic for the active session's cart.
type CartService struct {
	store       *cart.Store
	productRepo ProductRepository
	pricingCfg  pricing.Config
	discounter  pricing.Discounter
}

// ProductRepository interface for product data access
type ProductRepository interface {
	GetByID(ctx context.Context, id string) (*models.Product, error)
}

// NewCartService creates a new cart service
func NewCartService(store *cart.Store, productRepo ProductRepository, pricingCfg pricing.Config, discounter pricing.Discounter) *CartService {
	return &CartService{
		store:       store,
		productRepo: productRepo,
		pricingCfg:  pricingCfg,
		discounter:  discounter,
	}
}

// CartView is the cart state plus its derived pricing, as served to clients.
type CartView struct {
	Items          []models.CartLineItem `json:"items"`
	DeliveryOption models.DeliveryOption `json:"deliveryOption"`
	PaymentOption  models.PaymentOption  `json:"paymentOption"`
	Summary        pricing.Summary       `json:"summary"`
}

// View returns the session cart with freshly computed pricing.
func (s *CartService) View(ctx context.Context, sessionToken string) (*CartView, error) {
	c := s.store.Get(sessionToken)

	summary, err := c.Summary(ctx, s.pricingCfg, s.discounter)
	if err != nil {
		return nil, fmt.Errorf("cart.Summary: %w", err)
	}

	return &CartView{
		Items:          c.Lines(),
		DeliveryOption: c.DeliveryOption(),
		PaymentOption:  c.PaymentOption(),
		Summary:        summary,
	}, nil
}

// AddItem snapshots the product from the catalog and adds it to the session
// cart. The snapshot keeps the price captured now; catalog changes later in
// the session do not reprice existing lines.
func (s *CartService) AddItem(ctx context.Context, sessionToken string, req models.AddItemRequest) (*CartView, error) {
	if req.Quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	product, err := s.productRepo.GetByID(ctx, req.ProductID)
	if err != nil {
		return nil, ErrInvalidProduct
	}

	c := s.store.Get(sessionToken)
	c.AddItem(*product, req.Quantity, req.Size, req.Color, req.Designer)

	return s.View(ctx, sessionToken)
}

// UpdateQuantity sets a line's quantity. Unknown lines are a no-op in the
// container; quantities below 1 are rejected here before reaching it.
func (s *CartService) UpdateQuantity(ctx context.Context, sessionToken, lineID string, quantity int) (*CartView, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	id, err := uuid.Parse(lineID)
	if err != nil {
		return nil, ErrInvalidLineID
	}

	s.store.Get(sessionToken).UpdateQuantity(id, quantity)

	return s.View(ctx, sessionToken)
}

// RemoveItem deletes a line; removing an unknown line is a no-op.
func (s *CartService) RemoveItem(ctx context.Context, sessionToken, lineID string) (*CartView, error) {
	id, err := uuid.Parse(lineID)
	if err != nil {
		return nil, ErrInvalidLineID
	}

	s.store.Get(sessionToken).RemoveItem(id)

	return s.View(ctx, sessionToken)
}

// Clear empties the session cart, keeping option selections.
func (s *CartService) Clear(ctx context.Context, sessionToken string) (*CartView, error) {
	s.store.Get(sessionToken).Clear()

	return s.View(ctx, sessionToken)
}

// SetDeliveryOption selects a delivery option from the fixed catalog.
func (s *CartService) SetDeliveryOption(ctx context.Context, sessionToken string, id models.DeliveryOptionID) (*CartView, error) {
	if err := s.store.Get(sessionToken).SetDeliveryOption(id); err != nil {
		return nil, err
	}

	return s.View(ctx, sessionToken)
}

// SetPaymentOption selects a payment option from the fixed enum.
func (s *CartService) SetPaymentOption(ctx context.Context, sessionToken string, option models.PaymentOption) (*CartView, error) {
	if err := s.store.Get(sessionToken).SetPaymentOption(option); err != nil {
		return nil, err
	}

	return s.View(ctx, sessionToken)
}
