package domain

import (
	"github.com/shopspring/decimal"
)

// DefaultRegion is the rate bucket used when a profile's region key is not
// present in the table. Unknown regions are a leniency case, not an error.
const DefaultRegion = "default"

// TaxBracket is one row of the progressive national income tax schedule.
// Brackets are contiguous: each row's Min equals the previous row's Max,
// and the last row's Max is an unbounded sentinel.
type TaxBracket struct {
	Min  decimal.Decimal `yaml:"min" json:"min"`
	Max  decimal.Decimal `yaml:"max" json:"max"`
	Rate decimal.Decimal `yaml:"rate" json:"rate"`
}

// RegionalInsuranceRate holds the national health insurance parameters for
// one municipality bucket: an income-proportional rate plus a flat per-year
// levy.
type RegionalInsuranceRate struct {
	IncomeRate decimal.Decimal `yaml:"income_rate" json:"income_rate"`
	FlatRate   decimal.Decimal `yaml:"flat_rate" json:"flat_rate"`
}

// RateTable is the injected configuration the annual tax engine computes
// against. It is data, not user state: per-year and per-jurisdiction figures
// live here so they can change without recompilation.
type RateTable struct {
	RegionalInsuranceRates    map[string]RegionalInsuranceRate `yaml:"regional_insurance_rates" json:"regional_insurance_rates"`
	ProgressiveBrackets       []TaxBracket                     `yaml:"progressive_brackets" json:"progressive_brackets"`
	TaxableBusinessCategories []string                         `yaml:"taxable_business_categories" json:"taxable_business_categories"`

	BasicDeduction     decimal.Decimal `yaml:"basic_deduction" json:"basic_deduction"`
	SpouseDeduction    decimal.Decimal `yaml:"spouse_deduction" json:"spouse_deduction"`
	DependentDeduction decimal.Decimal `yaml:"dependent_deduction" json:"dependent_deduction"`

	// PensionPremium doubles as the fixed social-insurance deduction
	// approximation applied when deriving taxable income.
	PensionPremium decimal.Decimal `yaml:"pension_premium" json:"pension_premium"`
	InsuranceCap   decimal.Decimal `yaml:"insurance_cap" json:"insurance_cap"`

	BusinessTaxThreshold decimal.Decimal `yaml:"business_tax_threshold" json:"business_tax_threshold"`
	BusinessTaxRate      decimal.Decimal `yaml:"business_tax_rate" json:"business_tax_rate"`

	// ReconstructionSurcharge is a multiplier (1.021) applied to the
	// bracket-derived income tax subtotal.
	ReconstructionSurcharge decimal.Decimal `yaml:"reconstruction_surcharge" json:"reconstruction_surcharge"`

	ResidentTaxRate  decimal.Decimal `yaml:"resident_tax_rate" json:"resident_tax_rate"`
	ResidentFlatLevy decimal.Decimal `yaml:"resident_flat_levy" json:"resident_flat_levy"`

	ConsumptionTaxRate decimal.Decimal `yaml:"consumption_tax_rate" json:"consumption_tax_rate"`
}

// InsuranceRate looks up the regional bucket for region, falling back to the
// default bucket when the key is unrecognized.
func (rt *RateTable) InsuranceRate(region string) RegionalInsuranceRate {
	if r, ok := rt.RegionalInsuranceRates[region]; ok {
		return r
	}
	return rt.RegionalInsuranceRates[DefaultRegion]
}

// IsTaxableCategory reports whether the business category is subject to
// business tax.
func (rt *RateTable) IsTaxableCategory(category string) bool {
	for _, c := range rt.TaxableBusinessCategories {
		if c == category {
			return true
		}
	}
	return false
}

// unboundedMax is the sentinel upper threshold of the last bracket.
var unboundedMax = decimal.NewFromInt(999999999999)

// DefaultRateTable returns the compiled-in figures for the current year.
// National brackets follow the standard 5/10/20/23/33/40/45 percent
// schedule; regional insurance buckets are per-municipality approximations.
func DefaultRateTable() *RateTable {
	return &RateTable{
		RegionalInsuranceRates: map[string]RegionalInsuranceRate{
			"tokyo":       {IncomeRate: decimal.NewFromFloat(0.1033), FlatRate: decimal.NewFromInt(42100)},
			"osaka":       {IncomeRate: decimal.NewFromFloat(0.1063), FlatRate: decimal.NewFromInt(39500)},
			"aichi":       {IncomeRate: decimal.NewFromFloat(0.0989), FlatRate: decimal.NewFromInt(41800)},
			"fukuoka":     {IncomeRate: decimal.NewFromFloat(0.1079), FlatRate: decimal.NewFromInt(43500)},
			DefaultRegion: {IncomeRate: decimal.NewFromFloat(0.10), FlatRate: decimal.NewFromInt(45000)},
		},
		ProgressiveBrackets: []TaxBracket{
			{decimal.Zero, decimal.NewFromInt(1950000), decimal.NewFromFloat(0.05)},
			{decimal.NewFromInt(1950000), decimal.NewFromInt(3300000), decimal.NewFromFloat(0.10)},
			{decimal.NewFromInt(3300000), decimal.NewFromInt(6950000), decimal.NewFromFloat(0.20)},
			{decimal.NewFromInt(6950000), decimal.NewFromInt(9000000), decimal.NewFromFloat(0.23)},
			{decimal.NewFromInt(9000000), decimal.NewFromInt(18000000), decimal.NewFromFloat(0.33)},
			{decimal.NewFromInt(18000000), decimal.NewFromInt(40000000), decimal.NewFromFloat(0.40)},
			{decimal.NewFromInt(40000000), unboundedMax, decimal.NewFromFloat(0.45)},
		},
		TaxableBusinessCategories: []string{"design", "consulting", "retail", "manufacturing", "real-estate"},

		BasicDeduction:     decimal.NewFromInt(480000),
		SpouseDeduction:    decimal.NewFromInt(380000),
		DependentDeduction: decimal.NewFromInt(380000),

		PensionPremium: decimal.NewFromInt(199200),
		InsuranceCap:   decimal.NewFromInt(1020000),

		BusinessTaxThreshold: decimal.NewFromInt(2900000),
		BusinessTaxRate:      decimal.NewFromFloat(0.05),

		ReconstructionSurcharge: decimal.NewFromFloat(1.021),

		ResidentTaxRate:  decimal.NewFromFloat(0.10),
		ResidentFlatLevy: decimal.NewFromInt(5000),

		ConsumptionTaxRate: decimal.NewFromFloat(0.10),
	}
}
