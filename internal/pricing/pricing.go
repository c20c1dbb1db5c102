package pricing

import (
	"context"
	"errors"
	"fmt"

	"github.com/boutique-dz/storefront-backend/internal/models"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

var ErrInvalidMonths = errors.New("installment months must be at least 1")

// Config holds the named pricing thresholds. Values come from application
// configuration, never from literals at call sites.
type Config struct {
	// InstallmentMinTotal is the minimum order total that qualifies for
	// payment in installments.
	InstallmentMinTotal models.Money
	// InstallmentMonths is the fixed number of monthly installments.
	InstallmentMonths int
	// Currency is the store currency, used for empty-cart zero values.
	Currency currency.Unit
}

// Subtotal sums unit price times quantity over all lines. An empty list
// yields zero in the given currency.
func Subtotal(items []models.CartLineItem, unit currency.Unit) models.Money {
	sum := models.Zero(unit)
	for _, item := range items {
		sum = sum.Add(item.Product.Price.MulInt(item.Quantity))
	}
	return sum
}

// ItemCount sums line quantities.
func ItemCount(items []models.CartLineItem) int {
	count := 0
	for _, item := range items {
		count += item.Quantity
	}
	return count
}

// Total computes subtotal + deliveryCost - discount.
func Total(subtotal, deliveryCost, discount models.Money) models.Money {
	return subtotal.Add(deliveryCost).Sub(discount)
}

// EligibleForInstallment reports whether the total meets the configured
// minimum for installment payment.
func EligibleForInstallment(total models.Money, cfg Config) bool {
	return total.GreaterThanOrEqual(cfg.InstallmentMinTotal)
}

// Installment is a fixed monthly schedule. Monthly is the total divided by
// Months rounded down to the centime; Final absorbs the rounding remainder so
// the schedule sums exactly to the total.
type Installment struct {
	Months  int          `json:"months"`
	Monthly models.Money `json:"monthly"`
	Final   models.Money `json:"final"`
}

// InstallmentSchedule splits total into months payments under the documented
// rounding policy.
func InstallmentSchedule(total models.Money, months int) (Installment, error) {
	if months < 1 {
		return Installment{}, ErrInvalidMonths
	}

	monthly := models.Money{
		Amount:   total.Amount.Div(decimal.NewFromInt(int64(months))).RoundFloor(2),
		Currency: total.Currency,
	}
	final := total.Sub(monthly.MulInt(months - 1))

	return Installment{Months: months, Monthly: monthly, Final: final}, nil
}

// Summary is the full derived-pricing breakdown. It is recomputed from cart
// state on every read and never stored.
type Summary struct {
	ItemCount    int          `json:"itemCount"`
	Subtotal     models.Money `json:"subtotal"`
	DeliveryCost models.Money `json:"deliveryCost"`
	Discount     models.Money `json:"discount"`
	Total        models.Money `json:"total"`
	// Installment is set only when the installment option is both selected
	// and the total qualifies.
	Installment *Installment `json:"installment,omitempty"`
}

// Summarize computes the breakdown for the given cart contents and selected
// options. The discounter supplies the discount amount; a nil discounter
// means zero discount.
func Summarize(ctx context.Context, items []models.CartLineItem, delivery models.DeliveryOption, payment models.PaymentOption, cfg Config, discounter Discounter) (Summary, error) {
	subtotal := Subtotal(items, cfg.Currency)

	// No delivery charge on an empty cart; an all-zero summary is what the
	// order summary shows after clearing.
	deliveryCost := models.Zero(cfg.Currency)
	if len(items) > 0 {
		deliveryCost = delivery.Price
	}

	discount := models.Zero(cfg.Currency)
	if discounter != nil {
		amount, err := discounter.Discount(ctx, DiscountInput{
			Subtotal:     subtotal.Amount,
			DeliveryCost: deliveryCost.Amount,
			ItemCount:    ItemCount(items),
		})
		if err != nil {
			return Summary{}, fmt.Errorf("discounter.Discount: %w", err)
		}
		discount = models.Money{Amount: amount, Currency: cfg.Currency}
	}

	// A discount can never push the total below zero.
	if discount.Amount.GreaterThan(subtotal.Amount.Add(deliveryCost.Amount)) {
		discount = subtotal.Add(deliveryCost)
	}

	total := Total(subtotal, deliveryCost, discount)

	summary := Summary{
		ItemCount:    ItemCount(items),
		Subtotal:     subtotal,
		DeliveryCost: deliveryCost,
		Discount:     discount,
		Total:        total,
	}

	if payment == models.PaymentInstallment && EligibleForInstallment(total, cfg) {
		schedule, err := InstallmentSchedule(total, cfg.InstallmentMonths)
		if err != nil {
			return Summary{}, fmt.Errorf("InstallmentSchedule: %w", err)
		}
		summary.Installment = &schedule
	}

	return summary, nil
}
