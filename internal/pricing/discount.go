package pricing

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/diegoholiveira/jsonlogic/v3"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// DiscountInput is the cart context a discount rule evaluates over.
type DiscountInput struct {
	Subtotal     decimal.Decimal
	DeliveryCost decimal.Decimal
	ItemCount    int
}

// Discounter computes the discount applied to the order total. The default
// wiring carries no rules, so the discount is zero; promo logic is added by
// shipping a rule pack, not by touching the total formula.
type Discounter interface {
	Discount(ctx context.Context, in DiscountInput) (decimal.Decimal, error)
}

// ZeroDiscounter always returns zero.
type ZeroDiscounter struct{}

func (ZeroDiscounter) Discount(context.Context, DiscountInput) (decimal.Decimal, error) {
	return decimal.Zero, nil
}

// DiscountRule is one named JsonLogic expression. It evaluates to the
// discount amount it contributes, or null/false for no contribution.
type DiscountRule struct {
	Name  string         `yaml:"name"`
	Logic map[string]any `yaml:"logic"`
}

// RulePack is a YAML-loadable set of discount rules.
type RulePack struct {
	Rules []DiscountRule `yaml:"rules"`
}

// LoadRulePack reads a YAML rule pack from disk.
func LoadRulePack(path string) (RulePack, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return RulePack{}, fmt.Errorf("os.ReadFile: %w", err)
	}

	var pack RulePack
	if err := yaml.Unmarshal(data, &pack); err != nil {
		return RulePack{}, fmt.Errorf("yaml.Unmarshal: %w", err)
	}

	return pack, nil
}

// RuleDiscounter evaluates a rule pack and sums the contributions.
type RuleDiscounter struct {
	pack RulePack
}

func NewRuleDiscounter(pack RulePack) *RuleDiscounter {
	return &RuleDiscounter{pack: pack}
}

// Discount runs every rule against the cart context and sums the numeric
// results. Negative contributions are ignored.
func (d *RuleDiscounter) Discount(ctx context.Context, in DiscountInput) (decimal.Decimal, error) {
	if len(d.pack.Rules) == 0 {
		return decimal.Zero, nil
	}

	subtotal, _ := in.Subtotal.Float64()
	deliveryCost, _ := in.DeliveryCost.Float64()
	data := map[string]any{
		"cart": map[string]any{
			"subtotal":      subtotal,
			"delivery_cost": deliveryCost,
			"item_count":    in.ItemCount,
		},
	}

	total := decimal.Zero
	for _, rule := range d.pack.Rules {
		amount, err := applyRule(rule, data)
		if err != nil {
			return decimal.Zero, fmt.Errorf("rule[%s]: %w", rule.Name, err)
		}
		if amount.IsPositive() {
			total = total.Add(amount)
		}
	}

	return total, nil
}

func applyRule(rule DiscountRule, data map[string]any) (decimal.Decimal, error) {
	ruleJSON, err := json.Marshal(rule.Logic)
	if err != nil {
		return decimal.Zero, fmt.Errorf("json.Marshal logic: %w", err)
	}

	dataJSON, err := json.Marshal(data)
	if err != nil {
		return decimal.Zero, fmt.Errorf("json.Marshal data: %w", err)
	}

	var result bytes.Buffer
	if err := jsonlogic.Apply(bytes.NewReader(ruleJSON), bytes.NewReader(dataJSON), &result); err != nil {
		return decimal.Zero, fmt.Errorf("jsonlogic.Apply: %w", err)
	}

	out := strings.TrimSpace(result.String())
	if out == "" || out == "null" || out == "false" {
		return decimal.Zero, nil
	}

	amount, err := decimal.NewFromString(out)
	if err != nil {
		return decimal.Zero, fmt.Errorf("rule result[%s] is not a number: %w", out, err)
	}

	return amount, nil
}
