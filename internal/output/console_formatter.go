package output

import (
	"bytes"
	"fmt"

	"github.com/zeirishi/takehome-calculator/internal/domain"
	"github.com/zeirishi/takehome-calculator/internal/history"
)

// ConsoleFormatter renders a settlement record as a human-readable summary.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(record *domain.SettlementRecord) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "PROJECT SETTLEMENT")
	fmt.Fprintln(&buf, "================================")
	fmt.Fprintf(&buf, "Invoiced Amount:      %s", FormatYen(record.Payment.Amount))
	if record.Payment.IncludesTax {
		fmt.Fprint(&buf, " (tax included)")
	}
	fmt.Fprintln(&buf)
	fmt.Fprintf(&buf, "Consumption Tax:      %s\n", FormatYen(record.ConsumptionTax))
	fmt.Fprintf(&buf, "Withholding:          %s\n", FormatYen(record.WithholdingAmount))
	fmt.Fprintf(&buf, "Expected Deposit:     %s\n", FormatYen(record.DepositAmount))
	fmt.Fprintln(&buf)
	fmt.Fprintf(&buf, "Annual Income Estimate: %s (trailing average, approximate)\n", FormatYen(record.AnnualIncomeEstimate))
	fmt.Fprintln(&buf, "Annual Tax & Insurance")
	fmt.Fprintf(&buf, "  Income Tax:         %s\n", FormatYen(record.TaxBreakdown.IncomeTax))
	fmt.Fprintf(&buf, "  Resident Tax:       %s\n", FormatYen(record.TaxBreakdown.ResidentTax))
	fmt.Fprintf(&buf, "  Health Insurance:   %s\n", FormatYen(record.TaxBreakdown.HealthInsurance))
	fmt.Fprintf(&buf, "  Pension:            %s\n", FormatYen(record.TaxBreakdown.Pension))
	fmt.Fprintf(&buf, "  Business Tax:       %s\n", FormatYen(record.TaxBreakdown.BusinessTax))
	fmt.Fprintf(&buf, "  Total:              %s\n", FormatYen(record.TaxBreakdown.Total))
	fmt.Fprintln(&buf)
	fmt.Fprintf(&buf, "Monthly Tax Burden:   %s\n", FormatYen(record.MonthlyTaxBurden))
	fmt.Fprintf(&buf, "Estimated Take-Home:  %s\n", FormatYen(record.EstimatedTakeHome))
	return buf.Bytes(), nil
}

// FormatMonthlySummaries renders the monthly history table for the console.
func FormatMonthlySummaries(summaries []history.MonthlySummary) string {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "MONTHLY HISTORY")
	fmt.Fprintln(&buf, "Month    Count  Gross           Withheld        Deposit         Take-Home")
	for _, s := range summaries {
		fmt.Fprintf(&buf, "%-8s %5d  %-15s %-15s %-15s %-15s\n",
			s.Month, s.Count,
			FormatYen(s.GrossAmount),
			FormatYen(s.WithholdingAmount),
			FormatYen(s.DepositAmount),
			FormatYen(s.EstimatedTakeHome),
		)
	}
	return buf.String()
}

// FormatYearlySummaries renders the yearly history table for the console.
func FormatYearlySummaries(summaries []history.YearlySummary) string {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "YEARLY HISTORY")
	fmt.Fprintln(&buf, "Year   Count  Gross           Withheld        Deposit         Take-Home")
	for _, s := range summaries {
		fmt.Fprintf(&buf, "%-6s %5d  %-15s %-15s %-15s %-15s\n",
			s.Year, s.Count,
			FormatYen(s.GrossAmount),
			FormatYen(s.WithholdingAmount),
			FormatYen(s.DepositAmount),
			FormatYen(s.EstimatedTakeHome),
		)
	}
	return buf.String()
}
