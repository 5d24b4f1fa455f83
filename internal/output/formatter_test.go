package output

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeirishi/takehome-calculator/internal/domain"
	"github.com/zeirishi/takehome-calculator/internal/history"
)

func fixtureRecord() *domain.SettlementRecord {
	return &domain.SettlementRecord{
		ID:        "7f6c0b4e-0000-4000-8000-000000000001",
		CreatedAt: time.Date(2026, 8, 15, 9, 30, 0, 0, time.UTC),
		Payment: domain.PaymentInput{
			Amount:         decimal.NewFromInt(1000000),
			IncludesTax:    true,
			HasWithholding: true,
		},
		WithholdingAmount:    decimal.NewFromInt(92818),
		ConsumptionTax:       decimal.RequireFromString("90909.0909090909090909"),
		DepositAmount:        decimal.NewFromInt(907182),
		AnnualIncomeEstimate: decimal.NewFromInt(12000000),
		TaxBreakdown: domain.TaxBreakdown{
			IncomeTax:       decimal.NewFromInt(1011079),
			ResidentTax:     decimal.NewFromInt(712080),
			HealthInsurance: decimal.NewFromInt(885000),
			Pension:         decimal.NewFromInt(199200),
			BusinessTax:     decimal.NewFromInt(275000),
			Total:           decimal.NewFromInt(3082359),
		},
		MonthlyTaxBurden:  decimal.RequireFromString("256863.25"),
		EstimatedTakeHome: decimal.RequireFromString("650318.75"),
	}
}

func TestFormatYen(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"0", "¥0"},
		{"999", "¥999"},
		{"1000", "¥1,000"},
		{"92818", "¥92,818"},
		{"1234567", "¥1,234,567"},
		{"650318.75", "¥650,318"},
		{"-45000", "-¥45,000"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, FormatYen(decimal.RequireFromString(tt.in)))
	}
}

func TestConsoleFormatter(t *testing.T) {
	data, err := ConsoleFormatter{}.Format(fixtureRecord())
	require.NoError(t, err)

	text := string(data)
	assert.Contains(t, text, "PROJECT SETTLEMENT")
	assert.Contains(t, text, "¥1,000,000 (tax included)")
	assert.Contains(t, text, "Withholding:          ¥92,818")
	assert.Contains(t, text, "Expected Deposit:     ¥907,182")
	assert.Contains(t, text, "Estimated Take-Home:  ¥650,318")
}

func TestJSONFormatter(t *testing.T) {
	data, err := JSONFormatter{}.Format(fixtureRecord())
	require.NoError(t, err)

	var decoded domain.SettlementRecord
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "7f6c0b4e-0000-4000-8000-000000000001", decoded.ID)
	assert.True(t, decimal.NewFromInt(3082359).Equal(decoded.TaxBreakdown.Total))
}

func TestCSVFormatter(t *testing.T) {
	data, err := CSVFormatter{}.Format(fixtureRecord())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "ID,CreatedAt,Amount"))
	assert.Contains(t, lines[1], "1000000")
	assert.Contains(t, lines[1], "650318.75")
}

func TestGetFormatterByName(t *testing.T) {
	assert.NotNil(t, GetFormatterByName("console"))
	assert.NotNil(t, GetFormatterByName("JSON"))
	assert.NotNil(t, GetFormatterByName("pretty"), "alias resolves")
	assert.Nil(t, GetFormatterByName("html"))
}

func TestFormatMonthlySummaries(t *testing.T) {
	text := FormatMonthlySummaries([]history.MonthlySummary{
		{
			Month:             "2026-06",
			Count:             2,
			GrossAmount:       decimal.NewFromInt(300000),
			WithholdingAmount: decimal.NewFromInt(30630),
			DepositAmount:     decimal.NewFromInt(330000),
			EstimatedTakeHome: decimal.NewFromInt(250000),
		},
	})
	assert.Contains(t, text, "2026-06")
	assert.Contains(t, text, "¥300,000")
}

func TestMonthlySummariesCSV(t *testing.T) {
	data, err := MonthlySummariesCSV([]history.MonthlySummary{
		{Month: "2026-06", Count: 1, GrossAmount: decimal.NewFromInt(100000)},
	})
	require.NoError(t, err)
	assert.Contains(t, string(data), "2026-06,1,100000")
}
