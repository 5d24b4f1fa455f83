package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// TestWithholding tests the two-tier source withholding rule.
func TestWithholding(t *testing.T) {
	calculator := NewWithholdingCalculator()

	tests := []struct {
		name        string
		amount      decimal.Decimal
		includesTax bool
		expected    decimal.Decimal
		description string
	}{
		{
			name:        "Low tier tax exclusive",
			amount:      decimal.NewFromInt(500000),
			includesTax: false,
			expected:    decimal.NewFromInt(51050), // 500000 * 0.1021
			description: "Base under 1,000,000 uses 10.21%",
		},
		{
			name:        "Low tier just below threshold",
			amount:      decimal.NewFromInt(999999),
			includesTax: false,
			expected:    decimal.NewFromInt(102099), // floor(999999 * 0.1021)
			description: "Floor truncation to whole yen",
		},
		{
			name:        "High tier at threshold",
			amount:      decimal.NewFromInt(1000000),
			includesTax: false,
			expected:    decimal.NewFromInt(204200), // 1000000 * 0.2042
			description: "Base at 1,000,000 uses 20.42%",
		},
		{
			name:        "High tier above threshold",
			amount:      decimal.NewFromInt(3000000),
			includesTax: false,
			expected:    decimal.NewFromInt(612600), // 3000000 * 0.2042
			description: "Large base stays on 20.42%",
		},
		{
			name:        "Tax inclusive strips consumption tax first",
			amount:      decimal.NewFromInt(1000000),
			includesTax: true,
			expected:    decimal.NewFromInt(92818), // floor(909090.90... * 0.1021)
			description: "Base 909,090.90 falls under the low tier",
		},
		{
			name:        "Tax inclusive lands exactly on threshold",
			amount:      decimal.NewFromInt(1100000),
			includesTax: true,
			expected:    decimal.NewFromInt(204200), // base exactly 1,000,000
			description: "1,100,000 / 1.1 = 1,000,000 uses the high tier",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calculator.Withhold(tt.amount, tt.includesTax)
			assert.True(t, tt.expected.Equal(got),
				"%s: expected %s, got %s", tt.description, tt.expected, got)
		})
	}
}

// TestWithholdingInclusiveExclusiveAgreement verifies the tax-inclusive and
// tax-exclusive paths agree after normalization.
func TestWithholdingInclusiveExclusiveAgreement(t *testing.T) {
	calculator := NewWithholdingCalculator()
	eleven := decimal.NewFromFloat(1.1)

	for _, amount := range []int64{110000, 550000, 1100000, 2200000, 9876543} {
		a := decimal.NewFromInt(amount)
		inclusive := calculator.Withhold(a, true)
		exclusive := calculator.Withhold(a.Div(eleven), false)
		assert.True(t, inclusive.Equal(exclusive),
			"amount %d: inclusive %s != exclusive %s", amount, inclusive, exclusive)
	}
}
