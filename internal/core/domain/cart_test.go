package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chronolux/storefront/internal/core/domain"
)

func assertMoney(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, got.Equal(decimal.RequireFromString(want)),
		"want %s, got %s", want, got.String())
}

func TestComputeTotals(t *testing.T) {

	t.Run("EmptyCart", func(t *testing.T) {
		totals := domain.ComputeTotals(nil)
		assertMoney(t, "0", totals.Subtotal)
		assertMoney(t, "250", totals.Shipping)
		assertMoney(t, "0", totals.Tax)
		assertMoney(t, "250", totals.Total)
	})

	t.Run("AboveFreeShippingThreshold", func(t *testing.T) {
		lines := []domain.CartLine{
			{ProductID: "1", Price: 14000, Quantity: 1},
		}
		totals := domain.ComputeTotals(lines)
		assertMoney(t, "14000", totals.Subtotal)
		assertMoney(t, "0", totals.Shipping)
		assertMoney(t, "980", totals.Tax)
		assertMoney(t, "14980", totals.Total)
	})

	t.Run("QuantityCrossesThreshold", func(t *testing.T) {
		lines := []domain.CartLine{
			{ProductID: "4", Price: 5200, Quantity: 2},
		}
		totals := domain.ComputeTotals(lines)
		assertMoney(t, "10400", totals.Subtotal)
		assertMoney(t, "0", totals.Shipping)
		assertMoney(t, "728", totals.Tax)
		assertMoney(t, "11128", totals.Total)
	})

	t.Run("BelowFreeShippingThreshold", func(t *testing.T) {
		lines := []domain.CartLine{
			{ProductID: "x", Price: 3000, Quantity: 1},
		}
		totals := domain.ComputeTotals(lines)
		assertMoney(t, "3000", totals.Subtotal)
		assertMoney(t, "250", totals.Shipping)
		assertMoney(t, "210", totals.Tax)
		assertMoney(t, "3460", totals.Total)
	})

	t.Run("ThresholdIsExclusive", func(t *testing.T) {
		lines := []domain.CartLine{
			{ProductID: "x", Price: 10000, Quantity: 1},
		}
		totals := domain.ComputeTotals(lines)
		assertMoney(t, "250", totals.Shipping)
	})

	t.Run("SubtotalSumsAllLines", func(t *testing.T) {
		lines := []domain.CartLine{
			{ProductID: "a", Price: 1234.5, Quantity: 2},
			{ProductID: "b", Price: 99.99, Quantity: 3},
		}
		totals := domain.ComputeTotals(lines)
		require.Equal(t, "2768.97", totals.Subtotal.String())
		assertMoney(t, "250", totals.Shipping)
		assertMoney(t, "193.8279", totals.Tax)
		assert.True(t, totals.Total.Equal(
			totals.Subtotal.Add(totals.Shipping).Add(totals.Tax),
		))
	})
}
