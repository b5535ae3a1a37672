package services

import "github.com/shopspring/decimal"

// Pricing holds the checkout pricing rule: flat shipping below the
// free-shipping threshold plus a percentage tax on the subtotal.
type Pricing struct {
	ShippingFee           decimal.Decimal
	FreeShippingThreshold decimal.Decimal
	TaxRate               decimal.Decimal
	// Tolerance is the largest accepted difference between a client-supplied
	// amount and the server's figure.
	Tolerance decimal.Decimal
}

type Quote struct {
	Subtotal decimal.Decimal
	Shipping decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}

func (p Pricing) Quote(subtotal decimal.Decimal) Quote {
	shipping := p.ShippingFee
	if subtotal.GreaterThan(p.FreeShippingThreshold) {
		shipping = decimal.Zero
	}
	tax := subtotal.Mul(p.TaxRate).Round(2)
	return Quote{
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Total:    subtotal.Add(shipping).Add(tax),
	}
}

// Matches reports whether a client amount is within tolerance of want.
func (p Pricing) Matches(client, want decimal.Decimal) bool {
	return client.Sub(want).Abs().LessThanOrEqual(p.Tolerance)
}
