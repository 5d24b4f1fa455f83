package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/zeirishi/takehome-calculator/internal/domain"
)

// WithholdingCalculator derives the amount a client withholds at source from
// a gross invoice payment. The two statutory rates already carry the
// reconstruction surcharge (10.21% = 10% x 1.021, 20.42% = 20% x 1.021).
type WithholdingCalculator struct {
	Rate          decimal.Decimal
	HighRate      decimal.Decimal
	TierThreshold decimal.Decimal

	// taxDivisor strips embedded consumption tax from a tax-inclusive
	// amount (1 + consumption rate).
	taxDivisor decimal.Decimal
}

// NewWithholdingCalculator creates a withholding calculator with the current
// statutory rates and a 10% consumption tax.
func NewWithholdingCalculator() *WithholdingCalculator {
	return &WithholdingCalculator{
		Rate:          decimal.NewFromFloat(0.1021),
		HighRate:      decimal.NewFromFloat(0.2042),
		TierThreshold: decimal.NewFromInt(1000000),
		taxDivisor:    decimal.NewFromFloat(1.1),
	}
}

// NewWithholdingCalculatorWithConfig derives the consumption-tax divisor from
// the rate table so the two stay consistent.
func NewWithholdingCalculatorWithConfig(table *domain.RateTable) *WithholdingCalculator {
	wc := NewWithholdingCalculator()
	if table != nil && !table.ConsumptionTaxRate.IsZero() {
		wc.taxDivisor = decimal.NewFromInt(1).Add(table.ConsumptionTaxRate)
	}
	return wc
}

// Withhold returns the withheld amount for a payment, floored to whole yen.
// Tax-inclusive amounts are normalized to their tax-exclusive base before the
// tier is chosen. Callers must reject non-positive amounts upstream.
func (wc *WithholdingCalculator) Withhold(amount decimal.Decimal, includesTax bool) decimal.Decimal {
	base := amount
	if includesTax {
		base = amount.Div(wc.taxDivisor)
	}

	rate := wc.Rate
	if base.GreaterThanOrEqual(wc.TierThreshold) {
		rate = wc.HighRate
	}

	return base.Mul(rate).Floor()
}
