package compare

import (
	"github.com/shopspring/decimal"

	"github.com/siddharthverma1208/Compare/pkg/enums"
)

// SavingsAmount is what the user kept by choosing chosen over original.
// Negative means the user picked a worse-than-baseline option; downstream
// aggregation treats that as a genuine loss, not an error.
func SavingsAmount(original, chosen decimal.Decimal) decimal.Decimal {
	return original.Sub(chosen)
}

// SavingsEntry is one historical savings data point.
type SavingsEntry struct {
	Domain enums.ComparisonType
	Amount decimal.Decimal
}

// Summary aggregates a user's savings history.
type Summary struct {
	TotalSavings      decimal.Decimal
	TotalTransactions int
	AvgSavings        decimal.Decimal
	ByDomain          map[enums.ComparisonType]decimal.Decimal
}

// Summarize reduces the history into totals. An empty history yields an
// all-zero summary; the average is defined as zero when there is nothing to
// divide by.
func Summarize(entries []SavingsEntry) Summary {
	summary := Summary{
		TotalSavings: decimal.Zero,
		AvgSavings:   decimal.Zero,
		ByDomain:     make(map[enums.ComparisonType]decimal.Decimal),
	}

	for _, entry := range entries {
		summary.TotalSavings = summary.TotalSavings.Add(entry.Amount)
		summary.TotalTransactions++
		summary.ByDomain[entry.Domain] = summary.ByDomain[entry.Domain].Add(entry.Amount)
	}

	if summary.TotalTransactions > 0 {
		summary.AvgSavings = summary.TotalSavings.Div(decimal.NewFromInt(int64(summary.TotalTransactions)))
	}

	return summary
}
