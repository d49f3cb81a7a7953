package costing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestConversionFactor(t *testing.T) {
	assert.True(t, ConversionFactor(UnitKilogram).Equal(decimal.NewFromInt(1000)))
	assert.True(t, ConversionFactor(UnitLiter).Equal(decimal.NewFromInt(1000)))
	assert.True(t, ConversionFactor(UnitGram).Equal(decimal.NewFromInt(1)))
	assert.True(t, ConversionFactor(UnitCount).Equal(decimal.NewFromInt(1)))
}

func TestConversionFactorAlwaysPositive(t *testing.T) {
	for _, u := range []Unit{UnitKilogram, UnitGram, UnitLiter, UnitCount, Unit("oz"), Unit("")} {
		assert.True(t, ConversionFactor(u).IsPositive(), "factor for %q must be positive", u)
	}
}

func TestConversionFactorUnknownUnitFailsClosed(t *testing.T) {
	// Corrupt persisted units must degrade to no conversion, not an error.
	assert.True(t, ConversionFactor(Unit("bogus")).Equal(decimal.NewFromInt(1)))
}

func TestUnitValid(t *testing.T) {
	assert.True(t, UnitKilogram.Valid())
	assert.True(t, UnitGram.Valid())
	assert.True(t, UnitLiter.Valid())
	assert.True(t, UnitCount.Valid())
	assert.False(t, Unit("oz").Valid())
	assert.False(t, Unit("").Valid())
}

func TestUsageUnitLabel(t *testing.T) {
	assert.Equal(t, "g", UsageUnitLabel(UnitKilogram))
	assert.Equal(t, "g", UsageUnitLabel(UnitGram))
	assert.Equal(t, "ml", UsageUnitLabel(UnitLiter))
	assert.Equal(t, "un", UsageUnitLabel(UnitCount))
}
