package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// FilingType identifies the bookkeeping regime of a self-employed filer.
// Blue filing grants a flat deduction whose size depends on the quality of
// the books kept; white filing grants none.
type FilingType string

const (
	FilingBlue65 FilingType = "blue-65"
	FilingBlue55 FilingType = "blue-55"
	FilingBlue10 FilingType = "blue-10"
	FilingWhite  FilingType = "white"
)

// Valid reports whether ft is one of the known filing types.
func (ft FilingType) Valid() bool {
	switch ft {
	case FilingBlue65, FilingBlue55, FilingBlue10, FilingWhite:
		return true
	}
	return false
}

// Deduction returns the flat filer-type deduction in yen.
func (ft FilingType) Deduction() decimal.Decimal {
	switch ft {
	case FilingBlue65:
		return decimal.NewFromInt(650000)
	case FilingBlue55:
		return decimal.NewFromInt(550000)
	case FilingBlue10:
		return decimal.NewFromInt(100000)
	default:
		return decimal.Zero
	}
}

// PaymentInput is a single invoice event as entered by the user.
// Amount is the invoiced figure in yen; IncludesTax indicates the amount
// already embeds consumption tax.
type PaymentInput struct {
	Amount         decimal.Decimal `yaml:"amount" json:"amount"`
	IncludesTax    bool            `yaml:"includes_tax" json:"includes_tax"`
	HasWithholding bool            `yaml:"has_withholding" json:"has_withholding"`
}

// DeductionProfile is the user's standing tax posture. It is owned by the
// settings store and read-only to the calculation engine.
type DeductionProfile struct {
	FilingType         FilingType `yaml:"filing_type" json:"filing_type"`
	HasSpouseDeduction bool       `yaml:"has_spouse_deduction" json:"has_spouse_deduction"`
	DependentCount     int        `yaml:"dependent_count" json:"dependent_count"`
	ExpenseRatePercent int        `yaml:"expense_rate_percent" json:"expense_rate_percent"`
	Region             string     `yaml:"region" json:"region"`
	BusinessCategory   string     `yaml:"business_category" json:"business_category"`
}

// TaxBreakdown is the full annual liability picture. Total is always the
// exact sum of the other five components; each component is non-negative.
type TaxBreakdown struct {
	IncomeTax       decimal.Decimal `json:"income_tax"`
	ResidentTax     decimal.Decimal `json:"resident_tax"`
	HealthInsurance decimal.Decimal `json:"health_insurance"`
	Pension         decimal.Decimal `json:"pension"`
	BusinessTax     decimal.Decimal `json:"business_tax"`
	Total           decimal.Decimal `json:"total"`
}

// SettlementRecord is the immutable result of one settlement calculation.
// Records are appended to history and never mutated; removal happens only
// through an explicit user action.
type SettlementRecord struct {
	ID        string       `json:"id"`
	CreatedAt time.Time    `json:"created_at"`
	Payment   PaymentInput `json:"payment"`

	WithholdingAmount decimal.Decimal `json:"withholding_amount"`
	ConsumptionTax    decimal.Decimal `json:"consumption_tax"`
	DepositAmount     decimal.Decimal `json:"deposit_amount"`

	// AnnualIncomeEstimate is the trailing-average annualized income the
	// breakdown was computed from. Documented to the user as a naive
	// approximation, not a projection.
	AnnualIncomeEstimate decimal.Decimal `json:"annual_income_estimate"`
	TaxBreakdown         TaxBreakdown    `json:"tax_breakdown"`

	// MonthlyTaxBurden carries full precision; flooring happens only at
	// presentation time.
	MonthlyTaxBurden  decimal.Decimal `json:"monthly_tax_burden"`
	EstimatedTakeHome decimal.Decimal `json:"estimated_take_home"`
}
