package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/zeirishi/takehome-calculator/internal/domain"
)

// AnnualTaxCalculator computes the full annual liability breakdown for an
// estimated annual revenue figure and a deduction profile. It is pure: no
// side effects, no I/O, deterministic for identical inputs.
type AnnualTaxCalculator struct {
	Table *domain.RateTable
}

// NewAnnualTaxCalculator creates an annual tax calculator. A nil table falls
// back to the compiled-in defaults.
func NewAnnualTaxCalculator(table *domain.RateTable) *AnnualTaxCalculator {
	if table == nil {
		table = domain.DefaultRateTable()
	}
	return &AnnualTaxCalculator{Table: table}
}

var hundred = decimal.NewFromInt(100)

// ComputeAnnualTax derives every annual liability component and their exact
// sum. Taxable income is clamped at zero; each component is floored only at
// its own truncation point, never eagerly.
func (atc *AnnualTaxCalculator) ComputeAnnualTax(annualRevenueGross decimal.Decimal, profile domain.DeductionProfile) domain.TaxBreakdown {
	t := atc.Table

	expenses := annualRevenueGross.Mul(decimal.NewFromInt(int64(profile.ExpenseRatePercent))).Div(hundred)
	revenue := annualRevenueGross.Sub(expenses)

	taxable := atc.taxableIncome(revenue, profile)

	incomeTax := atc.progressiveIncomeTax(taxable)
	residentTax := taxable.Mul(t.ResidentTaxRate).Floor().Add(t.ResidentFlatLevy)
	healthInsurance := atc.healthInsurance(revenue, profile.Region)
	pension := t.PensionPremium
	businessTax := atc.businessTax(revenue, profile.BusinessCategory)

	total := incomeTax.Add(residentTax).Add(healthInsurance).Add(pension).Add(businessTax)

	return domain.TaxBreakdown{
		IncomeTax:       incomeTax,
		ResidentTax:     residentTax,
		HealthInsurance: healthInsurance,
		Pension:         pension,
		BusinessTax:     businessTax,
		Total:           total,
	}
}

// taxableIncome subtracts the filer-type deduction and the fixed deductions
// from post-expense revenue, clamping at zero.
func (atc *AnnualTaxCalculator) taxableIncome(revenue decimal.Decimal, profile domain.DeductionProfile) decimal.Decimal {
	t := atc.Table

	deductions := profile.FilingType.Deduction().Add(t.BasicDeduction)
	if profile.HasSpouseDeduction {
		deductions = deductions.Add(t.SpouseDeduction)
	}
	if profile.DependentCount > 0 {
		deductions = deductions.Add(t.DependentDeduction.Mul(decimal.NewFromInt(int64(profile.DependentCount))))
	}
	// Social-insurance deduction approximation, equal to the pension premium.
	deductions = deductions.Add(t.PensionPremium)

	taxable := revenue.Sub(deductions)
	if taxable.IsNegative() {
		return decimal.Zero
	}
	return taxable
}

// progressiveIncomeTax accumulates tax across the marginal brackets, then
// applies the reconstruction surcharge and floors to whole yen. Lower
// brackets always tax at their own marginal rate regardless of total income.
func (atc *AnnualTaxCalculator) progressiveIncomeTax(taxable decimal.Decimal) decimal.Decimal {
	var subtotal decimal.Decimal
	for _, bracket := range atc.Table.ProgressiveBrackets {
		if taxable.LessThanOrEqual(bracket.Min) {
			break
		}
		incomeInBracket := decimal.Min(taxable, bracket.Max).Sub(bracket.Min)
		if incomeInBracket.GreaterThan(decimal.Zero) {
			subtotal = subtotal.Add(incomeInBracket.Mul(bracket.Rate))
		}
	}

	return subtotal.Mul(atc.Table.ReconstructionSurcharge).Floor()
}

// healthInsurance applies the regional income rate plus the flat levy,
// capped at the configured annual ceiling. Unknown regions resolve to the
// default bucket.
func (atc *AnnualTaxCalculator) healthInsurance(revenue decimal.Decimal, region string) decimal.Decimal {
	t := atc.Table
	rate := t.InsuranceRate(region)

	premium := revenue.Mul(rate.IncomeRate).Floor().Add(rate.FlatRate)
	if premium.GreaterThan(t.InsuranceCap) {
		return t.InsuranceCap
	}
	return premium
}

// businessTax is zero unless the category is taxable and post-expense
// revenue exceeds the proprietor threshold.
func (atc *AnnualTaxCalculator) businessTax(revenue decimal.Decimal, category string) decimal.Decimal {
	t := atc.Table
	if !t.IsTaxableCategory(category) || revenue.LessThanOrEqual(t.BusinessTaxThreshold) {
		return decimal.Zero
	}
	return revenue.Sub(t.BusinessTaxThreshold).Mul(t.BusinessTaxRate).Floor()
}
