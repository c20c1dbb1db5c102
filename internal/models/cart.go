package models

import "github.com/google/uuid"

// CartLineItem is one cart entry for a specific product+size+color selection.
// The same product in a different size or color is a separate line.
type CartLineItem struct {
	LineID   uuid.UUID `json:"lineId"`
	Product  Product   `json:"product"`
	Quantity int       `json:"quantity"` // always >= 1
	Size     string    `json:"size"`
	Color    string    `json:"color"`
	Designer string    `json:"designer,omitempty"`
}

// DeliveryOptionID identifies an entry of the fixed delivery catalog.
type DeliveryOptionID string

const (
	DeliveryStandard DeliveryOptionID = "standard"
	DeliveryExpress  DeliveryOptionID = "express"
	DeliveryPickup   DeliveryOptionID = "pickup"
)

// DeliveryOption is an immutable entry of the static delivery catalog.
type DeliveryOption struct {
	ID            DeliveryOptionID `json:"id"`
	Name          string           `json:"name"`
	Price         Money            `json:"price"`
	EstimatedDays string           `json:"estimatedDays"`
}

// PaymentOption selects how the order is paid. Installment and
// company-sponsored payment are gated by account-level eligibility flags.
type PaymentOption string

const (
	PaymentOneTime     PaymentOption = "one-time"
	PaymentInstallment PaymentOption = "installment"
	PaymentCompany     PaymentOption = "company-sponsored"
)

// ValidPaymentOption reports membership in the fixed payment enum.
func ValidPaymentOption(p PaymentOption) bool {
	switch p {
	case PaymentOneTime, PaymentInstallment, PaymentCompany:
		return true
	}
	return false
}

// AddItemRequest describes a line to add to the cart.
type AddItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
	Size      string `json:"size"`
	Color     string `json:"color"`
	Designer  string `json:"designer,omitempty"`
}
