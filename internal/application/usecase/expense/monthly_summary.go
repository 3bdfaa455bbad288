// Package expense contains expense-related use cases.
package expense

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/zen-finance/backend/internal/application/adapter"
	"github.com/zen-finance/backend/internal/domain/valueobject"
)

// MonthlySummaryInput represents the input for the monthly summary.
type MonthlySummaryInput struct {
	UserID        uuid.UUID
	ReferenceDate time.Time // any date within the wanted month
}

// MonthlySummaryOutput represents the output of the monthly summary.
type MonthlySummaryOutput struct {
	Month      time.Time
	Total      decimal.Decimal
	ByCategory map[string]decimal.Decimal
}

// MonthlySummaryUseCase aggregates the current month's spending, total and
// per category, over a fully loaded snapshot of the user's expenses.
type MonthlySummaryUseCase struct {
	expenseRepo  adapter.ExpenseRepository
	summaryCache adapter.SummaryCache
}

// NewMonthlySummaryUseCase creates a new MonthlySummaryUseCase instance.
func NewMonthlySummaryUseCase(expenseRepo adapter.ExpenseRepository, summaryCache adapter.SummaryCache) *MonthlySummaryUseCase {
	return &MonthlySummaryUseCase{
		expenseRepo:  expenseRepo,
		summaryCache: summaryCache,
	}
}

// Execute computes the monthly summary, serving from the cache when warm.
// Cache failures degrade to a database read; they are never surfaced.
func (uc *MonthlySummaryUseCase) Execute(ctx context.Context, input MonthlySummaryInput) (*MonthlySummaryOutput, error) {
	month := monthStart(input.ReferenceDate)

	if uc.summaryCache != nil {
		cached, err := uc.summaryCache.Get(ctx, input.UserID, month)
		if err != nil {
			slog.Warn("Summary cache read failed", "error", err, "user_id", input.UserID)
		} else if cached != nil {
			return toOutput(month, *cached), nil
		}
	}

	expenses, err := uc.expenseRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load expenses: %w", err)
	}

	summary := valueobject.AggregateMonth(expenses, input.ReferenceDate)

	if uc.summaryCache != nil {
		if err := uc.summaryCache.Set(ctx, input.UserID, month, summary); err != nil {
			slog.Warn("Summary cache write failed", "error", err, "user_id", input.UserID)
		}
	}

	return toOutput(month, summary), nil
}

func toOutput(month time.Time, summary valueobject.MonthlySummary) *MonthlySummaryOutput {
	return &MonthlySummaryOutput{
		Month:      month,
		Total:      summary.Total,
		ByCategory: summary.ByCategory,
	}
}

// monthStart truncates a date to the first day of its calendar month, UTC.
func monthStart(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, time.UTC)
}
