package history

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/zeirishi/takehome-calculator/internal/domain"
)

// MonthlySummary aggregates the settlement records of one calendar month.
type MonthlySummary struct {
	Month             string          `json:"month"` // YYYY-MM
	Count             int             `json:"count"`
	GrossAmount       decimal.Decimal `json:"gross_amount"`
	WithholdingAmount decimal.Decimal `json:"withholding_amount"`
	DepositAmount     decimal.Decimal `json:"deposit_amount"`
	EstimatedTakeHome decimal.Decimal `json:"estimated_take_home"`
}

// YearlySummary aggregates the settlement records of one calendar year.
type YearlySummary struct {
	Year              string          `json:"year"` // YYYY
	Count             int             `json:"count"`
	GrossAmount       decimal.Decimal `json:"gross_amount"`
	WithholdingAmount decimal.Decimal `json:"withholding_amount"`
	DepositAmount     decimal.Decimal `json:"deposit_amount"`
	EstimatedTakeHome decimal.Decimal `json:"estimated_take_home"`
}

// TrailingPayments extracts the payment inputs of the history in order, for
// feeding the settlement engine's income estimate.
func TrailingPayments(records []domain.SettlementRecord) []domain.PaymentInput {
	payments := make([]domain.PaymentInput, len(records))
	for i, r := range records {
		payments[i] = r.Payment
	}
	return payments
}

// MonthlySummaries reduces an ordered record history into per-month buckets,
// ascending by month. Pure: the input is never modified.
func MonthlySummaries(records []domain.SettlementRecord) []MonthlySummary {
	buckets := make(map[string]*MonthlySummary)
	for _, r := range records {
		month := r.CreatedAt.Format("2006-01")
		b, ok := buckets[month]
		if !ok {
			b = &MonthlySummary{Month: month}
			buckets[month] = b
		}
		b.Count++
		b.GrossAmount = b.GrossAmount.Add(r.Payment.Amount)
		b.WithholdingAmount = b.WithholdingAmount.Add(r.WithholdingAmount)
		b.DepositAmount = b.DepositAmount.Add(r.DepositAmount)
		b.EstimatedTakeHome = b.EstimatedTakeHome.Add(r.EstimatedTakeHome)
	}

	summaries := make([]MonthlySummary, 0, len(buckets))
	for _, b := range buckets {
		summaries = append(summaries, *b)
	}
	sort.Slice(summaries, func(i, j int) bool { return summaries[i].Month < summaries[j].Month })
	return summaries
}

// YearlySummaries reduces an ordered record history into per-year buckets,
// ascending by year.
func YearlySummaries(records []domain.SettlementRecord) []YearlySummary {
	buckets := make(map[string]*YearlySummary)
	for _, r := range records {
		year := r.CreatedAt.Format("2006")
		b, ok := buckets[year]
		if !ok {
			b = &YearlySummary{Year: year}
			buckets[year] = b
		}
		b.Count++
		b.GrossAmount = b.GrossAmount.Add(r.Payment.Amount)
		b.WithholdingAmount = b.WithholdingAmount.Add(r.WithholdingAmount)
		b.DepositAmount = b.DepositAmount.Add(r.DepositAmount)
		b.EstimatedTakeHome = b.EstimatedTakeHome.Add(r.EstimatedTakeHome)
	}

	summaries := make([]YearlySummary, 0, len(buckets))
	for _, b := range buckets {
		summaries = append(summaries, *b)
	}
	sort.Slice(summaries, func(i, j int) bool { return summaries[i].Year < summaries[j].Year })
	return summaries
}
