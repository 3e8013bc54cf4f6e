package domain

import "github.com/shopspring/decimal"

// Pricing constants are fixed by the business, not configurable.
const (
	FreeShippingThreshold = 10000
	ShippingFee           = 250
	TaxRate               = 0.07
)

type (
	// A CartLine holds one product in the cart with the denormalized
	// display fields. Lines are unique per ProductID within a cart.
	CartLine struct {
		ProductID string
		Name      string
		Brand     string
		Price     float64
		Image     string
		Quantity  int
	}

	// A Totals is derived from the cart lines and never stored.
	Totals struct {
		Subtotal decimal.Decimal
		Shipping decimal.Decimal
		Tax      decimal.Decimal
		Total    decimal.Decimal
	}
)

// ComputeTotals derives subtotal, shipping, tax and total from the
// given lines. Shipping is waived when the subtotal exceeds the free
// shipping threshold.
func ComputeTotals(lines []CartLine) Totals {
	subtotal := decimal.Zero
	for _, l := range lines {
		price := decimal.NewFromFloat(l.Price)
		qty := decimal.NewFromInt(int64(l.Quantity))
		subtotal = subtotal.Add(price.Mul(qty))
	}

	shipping := decimal.NewFromInt(ShippingFee)
	if subtotal.GreaterThan(decimal.NewFromInt(FreeShippingThreshold)) {
		shipping = decimal.Zero
	}

	tax := subtotal.Mul(decimal.NewFromFloat(TaxRate))

	return Totals{
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Total:    subtotal.Add(shipping).Add(tax),
	}
}
