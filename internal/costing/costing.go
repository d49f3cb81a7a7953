// Package costing implements the pure cost model of the bakery: unit
// conversion, per-usage ingredient costs, recipe totals and sale pricing.
// Everything here is deterministic arithmetic over decimals; resolution of
// ingredient references and input validation happen at the service boundary.
package costing

import "github.com/shopspring/decimal"

// Usage is one ingredient line of a recipe with its price already resolved.
// Resolved is false when the referenced ingredient no longer exists; such a
// line stays in the recipe but contributes nothing to the total.
type Usage struct {
	PricePerUnit decimal.Decimal
	Unit         Unit
	QuantityUsed decimal.Decimal
	Resolved     bool
}

// UsageCost computes the cost contribution of quantityUsed (in the
// ingredient's usage unit) for an ingredient priced per purchase unit.
func UsageCost(pricePerUnit decimal.Decimal, unit Unit, quantityUsed decimal.Decimal) decimal.Decimal {
	return pricePerUnit.Div(ConversionFactor(unit)).Mul(quantityUsed)
}

// CostRecipe aggregates usage costs into a recipe total and a cost per
// yield unit. Unresolved usages contribute zero. A non-positive yield
// yields a zero cost-per-unit rather than a division error; callers are
// expected to have validated the yield before persisting.
func CostRecipe(usages []Usage, yield decimal.Decimal) (totalCost, costPerUnit decimal.Decimal) {
	totalCost = decimal.Zero
	for _, u := range usages {
		if !u.Resolved {
			continue
		}
		totalCost = totalCost.Add(UsageCost(u.PricePerUnit, u.Unit, u.QuantityUsed))
	}
	if yield.IsPositive() {
		costPerUnit = totalCost.Div(yield)
	} else {
		costPerUnit = decimal.Zero
	}
	return totalCost, costPerUnit
}
