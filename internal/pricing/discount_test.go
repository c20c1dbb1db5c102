package pricing_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/boutique-dz/storefront-backend/internal/pricing"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZeroDiscounter(t *testing.T) {
	got, err := pricing.ZeroDiscounter{}.Discount(t.Context(), pricing.DiscountInput{
		Subtotal:  decimal.NewFromInt(99999),
		ItemCount: 42,
	})
	require.NoError(t, err)
	assert.True(t, got.IsZero())
}

func TestRuleDiscounter(t *testing.T) {
	pack := pricing.RulePack{
		Rules: []pricing.DiscountRule{
			{
				Name: "bulk-order",
				// 1000 off when the subtotal reaches 50000
				Logic: map[string]any{
					"if": []any{
						map[string]any{">=": []any{map[string]any{"var": "cart.subtotal"}, 50000}},
						1000,
						0,
					},
				},
			},
		},
	}
	discounter := pricing.NewRuleDiscounter(pack)

	t.Run("rule matches", func(t *testing.T) {
		got, err := discounter.Discount(t.Context(), pricing.DiscountInput{
			Subtotal:  decimal.NewFromInt(60000),
			ItemCount: 3,
		})
		require.NoError(t, err)
		assert.True(t, got.Equal(decimal.NewFromInt(1000)), "discount = %s", got)
	})

	t.Run("rule does not match", func(t *testing.T) {
		got, err := discounter.Discount(t.Context(), pricing.DiscountInput{
			Subtotal:  decimal.NewFromInt(100),
			ItemCount: 1,
		})
		require.NoError(t, err)
		assert.True(t, got.IsZero(), "discount = %s", got)
	})

	t.Run("empty pack returns zero", func(t *testing.T) {
		got, err := pricing.NewRuleDiscounter(pricing.RulePack{}).Discount(t.Context(), pricing.DiscountInput{
			Subtotal: decimal.NewFromInt(60000),
		})
		require.NoError(t, err)
		assert.True(t, got.IsZero())
	})
}

func TestLoadRulePack(t *testing.T) {
	t.Run("valid pack", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "rules.yaml")
		content := `rules:
  - name: bulk-order
    logic:
      if:
        - ">=":
            - var: cart.subtotal
            - 50000
        - 1000
        - 0
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		pack, err := pricing.LoadRulePack(path)
		require.NoError(t, err)
		require.Len(t, pack.Rules, 1)
		assert.Equal(t, "bulk-order", pack.Rules[0].Name)

		got, err := pricing.NewRuleDiscounter(pack).Discount(t.Context(), pricing.DiscountInput{
			Subtotal: decimal.NewFromInt(50000),
		})
		require.NoError(t, err)
		assert.True(t, got.Equal(decimal.NewFromInt(1000)), "discount = %s", got)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := pricing.LoadRulePack(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "rules.yaml")
		require.NoError(t, os.WriteFile(path, []byte("rules: [not: closed"), 0o644))

		_, err := pricing.LoadRulePack(path)
		require.Error(t, err)
	})
}
