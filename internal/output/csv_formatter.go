package output

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"time"

	"github.com/zeirishi/takehome-calculator/internal/domain"
	"github.com/zeirishi/takehome-calculator/internal/history"
)

// CSVFormatter emits one header row and one data row per settlement record.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(record *domain.SettlementRecord) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"ID", "CreatedAt", "Amount", "IncludesTax", "HasWithholding", "Withholding", "ConsumptionTax", "Deposit", "AnnualIncomeEstimate", "IncomeTax", "ResidentTax", "HealthInsurance", "Pension", "BusinessTax", "TotalTax", "MonthlyBurden", "EstimatedTakeHome"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	row := []string{
		record.ID,
		record.CreatedAt.Format(time.RFC3339),
		record.Payment.Amount.StringFixed(0),
		boolString(record.Payment.IncludesTax),
		boolString(record.Payment.HasWithholding),
		record.WithholdingAmount.StringFixed(0),
		record.ConsumptionTax.StringFixed(2),
		record.DepositAmount.StringFixed(0),
		record.AnnualIncomeEstimate.StringFixed(0),
		record.TaxBreakdown.IncomeTax.StringFixed(0),
		record.TaxBreakdown.ResidentTax.StringFixed(0),
		record.TaxBreakdown.HealthInsurance.StringFixed(0),
		record.TaxBreakdown.Pension.StringFixed(0),
		record.TaxBreakdown.BusinessTax.StringFixed(0),
		record.TaxBreakdown.Total.StringFixed(0),
		record.MonthlyTaxBurden.StringFixed(2),
		record.EstimatedTakeHome.StringFixed(2),
	}
	if err := w.Write(row); err != nil {
		return nil, err
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

// MonthlySummariesCSV renders the monthly history as CSV.
func MonthlySummariesCSV(summaries []history.MonthlySummary) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write([]string{"Month", "Count", "Gross", "Withheld", "Deposit", "TakeHome"}); err != nil {
		return nil, err
	}
	for _, s := range summaries {
		row := []string{
			s.Month,
			strconv.Itoa(s.Count),
			s.GrossAmount.StringFixed(0),
			s.WithholdingAmount.StringFixed(0),
			s.DepositAmount.StringFixed(0),
			s.EstimatedTakeHome.StringFixed(2),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
