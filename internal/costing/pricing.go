package costing

import "github.com/shopspring/decimal"

// DefaultMarkup is the multiplier applied to the real cost of a sale to
// suggest a price. Callers may pass a different markup to Price, but the
// bakery's standing policy is 3x.
var DefaultMarkup = decimal.NewFromInt(3)

// Quote is the result of pricing a sale of a given quantity of a recipe.
type Quote struct {
	RealCost       decimal.Decimal
	SuggestedPrice decimal.Decimal
	Profit         decimal.Decimal
}

// IsZero reports whether the quote carries no amounts, which is the
// outcome of pricing a non-positive quantity.
func (q Quote) IsZero() bool {
	return q.RealCost.IsZero() && q.SuggestedPrice.IsZero() && q.Profit.IsZero()
}

// Price computes the sale economics for quantitySold yield units at
// costPerUnit. A non-positive quantity produces a zero quote, not an error.
func Price(costPerUnit, quantitySold, markup decimal.Decimal) Quote {
	if !quantitySold.IsPositive() {
		return Quote{RealCost: decimal.Zero, SuggestedPrice: decimal.Zero, Profit: decimal.Zero}
	}
	real := costPerUnit.Mul(quantitySold)
	suggested := real.Mul(markup)
	return Quote{
		RealCost:       real,
		SuggestedPrice: suggested,
		Profit:         suggested.Sub(real),
	}
}

// Ticket is the value handed to a receipt renderer once a sale has been
// priced. It carries display data only; how the printable artifact is
// produced is not this package's concern.
type Ticket struct {
	RecipeName     string
	QuantitySold   decimal.Decimal
	UnitLabel      string
	SuggestedPrice decimal.Decimal
}
