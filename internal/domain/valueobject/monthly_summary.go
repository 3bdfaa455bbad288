package valueobject

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/zen-finance/backend/internal/domain/entity"
)

// MonthlySummary holds the spending aggregation for one calendar month.
// Categories with no matching expense are absent from ByCategory.
type MonthlySummary struct {
	Total      decimal.Decimal
	ByCategory map[string]decimal.Decimal
}

// CategoryAmount returns the aggregated amount for a category, defaulting
// to zero when the category has no expenses in the month.
func (s MonthlySummary) CategoryAmount(category string) decimal.Decimal {
	if amount, ok := s.ByCategory[category]; ok {
		return amount
	}
	return decimal.Zero
}

// AggregateMonth filters the given expenses to those sharing calendar month
// and year with referenceDate and sums their amounts, in total and per
// category. It is a pure function of its inputs and its result does not
// depend on the order of the expense slice.
func AggregateMonth(expenses []*entity.Expense, referenceDate time.Time) MonthlySummary {
	summary := MonthlySummary{
		Total:      decimal.Zero,
		ByCategory: make(map[string]decimal.Decimal),
	}

	year, month := referenceDate.Year(), referenceDate.Month()

	for _, e := range expenses {
		if e.Date.Year() != year || e.Date.Month() != month {
			continue
		}
		summary.Total = summary.Total.Add(e.Amount)
		summary.ByCategory[e.Category] = summary.ByCategory[e.Category].Add(e.Amount)
	}

	return summary
}
