package services

import (
	"github.com/montanaflynn/stats"
	"github.com/shopspring/decimal"
)

// Summary describes a finished BOQ table.
type Summary struct {
	Items       int
	Sections    int
	TotalAmount decimal.Decimal // sum of quantity x rate
	MedianRate  float64
}

// LineAmount returns quantity x rate for one row.
func LineAmount(r Row) decimal.Decimal {
	return decimal.NewFromFloat(r.Quantity).Mul(decimal.NewFromFloat(r.Rate))
}

// Summarize computes item count, distinct sections, total amount and the
// median rate of t.
func Summarize(t Table) Summary {
	s := Summary{Items: len(t.Rows), TotalAmount: decimal.Zero}
	seen := make(map[string]bool)
	rates := make(stats.Float64Data, 0, len(t.Rows))
	for _, r := range t.Rows {
		s.TotalAmount = s.TotalAmount.Add(LineAmount(r))
		rates = append(rates, r.Rate)
		if r.Section != "" && !seen[r.Section] {
			seen[r.Section] = true
			s.Sections++
		}
	}
	if len(rates) > 0 {
		// Median only fails on empty input.
		s.MedianRate, _ = rates.Median()
	}
	return s
}
