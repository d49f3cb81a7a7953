package costing

import "github.com/shopspring/decimal"

// Unit is the purchase unit an ingredient is priced in.
type Unit string

const (
	UnitKilogram Unit = "kg"
	UnitGram     Unit = "gr"
	UnitLiter    Unit = "lt"
	UnitCount    Unit = "un"
)

var (
	factorThousand = decimal.NewFromInt(1000)
	factorOne      = decimal.NewFromInt(1)
)

// Valid reports whether u is one of the supported purchase units.
func (u Unit) Valid() bool {
	switch u {
	case UnitKilogram, UnitGram, UnitLiter, UnitCount:
		return true
	}
	return false
}

// ConversionFactor translates a price per purchase unit into a price per
// usage unit: ingredients bought per kilogram or liter are used in grams or
// milliliters, so their factor is 1000. An unrecognized unit gets factor 1
// so that costing over corrupt stored data stays finite instead of failing.
func ConversionFactor(u Unit) decimal.Decimal {
	switch u {
	case UnitKilogram, UnitLiter:
		return factorThousand
	default:
		return factorOne
	}
}

// UsageUnitLabel returns the label of the unit recipe quantities are
// expressed in for an ingredient priced in u.
func UsageUnitLabel(u Unit) string {
	switch u {
	case UnitKilogram, UnitGram:
		return "g"
	case UnitLiter:
		return "ml"
	default:
		return "un"
	}
}
