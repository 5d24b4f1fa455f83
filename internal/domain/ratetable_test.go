package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFilingTypeDeduction(t *testing.T) {
	tests := []struct {
		filingType FilingType
		expected   int64
	}{
		{FilingBlue65, 650000},
		{FilingBlue55, 550000},
		{FilingBlue10, 100000},
		{FilingWhite, 0},
	}
	for _, tt := range tests {
		assert.True(t, decimal.NewFromInt(tt.expected).Equal(tt.filingType.Deduction()),
			"%s deduction", tt.filingType)
	}
}

func TestFilingTypeValid(t *testing.T) {
	assert.True(t, FilingBlue65.Valid())
	assert.True(t, FilingWhite.Valid())
	assert.False(t, FilingType("blue-99").Valid())
	assert.False(t, FilingType("").Valid())
}

func TestDefaultRateTableBrackets(t *testing.T) {
	table := DefaultRateTable()

	// contiguous and strictly ascending
	for i := 1; i < len(table.ProgressiveBrackets); i++ {
		previous := table.ProgressiveBrackets[i-1]
		current := table.ProgressiveBrackets[i]
		assert.True(t, current.Min.Equal(previous.Max), "bracket %d not contiguous", i)
		assert.True(t, current.Max.GreaterThan(current.Min), "bracket %d inverted", i)
	}
}

func TestInsuranceRateFallback(t *testing.T) {
	table := DefaultRateTable()

	tokyo := table.InsuranceRate("tokyo")
	assert.True(t, decimal.NewFromFloat(0.1033).Equal(tokyo.IncomeRate))

	unknown := table.InsuranceRate("atlantis")
	fallback := table.RegionalInsuranceRates[DefaultRegion]
	assert.Equal(t, fallback, unknown)
}

func TestIsTaxableCategory(t *testing.T) {
	table := DefaultRateTable()
	assert.True(t, table.IsTaxableCategory("design"))
	assert.False(t, table.IsTaxableCategory("writing"))
	assert.False(t, table.IsTaxableCategory(""))
}
