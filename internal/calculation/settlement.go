package calculation

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/zeirishi/takehome-calculator/internal/domain"
)

// ErrInvalidAmount is returned when a payment amount is not a positive
// number. No record is produced and no computation is attempted.
var ErrInvalidAmount = errors.New("payment amount must be positive")

// trailingWindow is the number of prior payments averaged when estimating
// monthly income.
const trailingWindow = 3

var twelve = decimal.NewFromInt(12)

// SettlementEngine orchestrates one settlement: withholding, deposit,
// annualized income estimation, the annual breakdown, and the final record.
type SettlementEngine struct {
	Withholding *WithholdingCalculator
	AnnualTax   *AnnualTaxCalculator
	Logger      Logger
}

// NewSettlementEngine creates a settlement engine against a rate table. A nil
// table falls back to the compiled-in defaults.
func NewSettlementEngine(table *domain.RateTable) *SettlementEngine {
	if table == nil {
		table = domain.DefaultRateTable()
	}
	return &SettlementEngine{
		Withholding: NewWithholdingCalculatorWithConfig(table),
		AnnualTax:   NewAnnualTaxCalculator(table),
		Logger:      NopLogger{},
	}
}

// SetLogger sets the logger for the engine. If nil is provided, a no-op
// logger is used.
func (se *SettlementEngine) SetLogger(l Logger) {
	if l == nil {
		se.Logger = NopLogger{}
		return
	}
	se.Logger = l
}

// Settle runs one full settlement for a payment against the user's trailing
// payment history (most-recent-last, current payment not yet appended) and
// deduction profile. The caller appends the returned record to history and
// persists it; the engine itself holds no state.
func (se *SettlementEngine) Settle(payment domain.PaymentInput, trailingHistory []domain.PaymentInput, profile domain.DeductionProfile) (*domain.SettlementRecord, error) {
	if !payment.Amount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	table := se.AnnualTax.Table

	withholding := decimal.Zero
	if payment.HasWithholding {
		withholding = se.Withholding.Withhold(payment.Amount, payment.IncludesTax)
	}

	divisor := decimal.NewFromInt(1).Add(table.ConsumptionTaxRate)
	var consumptionTax, deposit decimal.Decimal
	if payment.IncludesTax {
		consumptionTax = payment.Amount.Sub(payment.Amount.Div(divisor))
		deposit = payment.Amount.Sub(withholding)
	} else {
		consumptionTax = payment.Amount.Mul(table.ConsumptionTaxRate)
		deposit = payment.Amount.Add(consumptionTax).Sub(withholding)
	}

	annualIncome := EstimateAnnualIncome(payment.Amount, trailingHistory)
	breakdown := se.AnnualTax.ComputeAnnualTax(annualIncome, profile)

	// Full precision here; flooring is a presentation concern.
	monthlyBurden := breakdown.Total.Div(twelve)

	// May legitimately go negative when the monthly burden exceeds the
	// deposit. That is a valid answer, not an error.
	takeHome := deposit.Sub(monthlyBurden)

	se.Logger.Debugf("settled payment amount=%s withholding=%s deposit=%s annual=%s total=%s",
		payment.Amount, withholding, deposit, annualIncome, breakdown.Total)

	return &domain.SettlementRecord{
		ID:                   uuid.NewString(),
		CreatedAt:            time.Now().UTC(),
		Payment:              payment,
		WithholdingAmount:    withholding,
		ConsumptionTax:       consumptionTax,
		DepositAmount:        deposit,
		AnnualIncomeEstimate: annualIncome,
		TaxBreakdown:         breakdown,
		MonthlyTaxBurden:     monthlyBurden,
		EstimatedTakeHome:    takeHome,
	}, nil
}

// EstimateAnnualIncome annualizes income from a trailing-window average of
// the most recent gross payment amounts. With no history the current amount
// stands in as the monthly proxy. Deliberately naive: no weighting, no
// seasonal adjustment.
func EstimateAnnualIncome(current decimal.Decimal, trailingHistory []domain.PaymentInput) decimal.Decimal {
	if len(trailingHistory) == 0 {
		return current.Mul(twelve)
	}

	n := len(trailingHistory)
	if n > trailingWindow {
		n = trailingWindow
	}

	sum := decimal.Zero
	for _, p := range trailingHistory[len(trailingHistory)-n:] {
		sum = sum.Add(p.Amount)
	}

	return sum.Div(decimal.NewFromInt(int64(n))).Mul(twelve)
}
