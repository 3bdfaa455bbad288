// Package expense contains expense-related use cases.
package expense

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/zen-finance/backend/internal/application/adapter"
	"github.com/zen-finance/backend/internal/domain/entity"
	domainerror "github.com/zen-finance/backend/internal/domain/error"
	"github.com/zen-finance/backend/internal/domain/valueobject"
)

// CreateExpenseInput represents the input for expense creation.
type CreateExpenseInput struct {
	UserID      uuid.UUID
	Date        time.Time
	Amount      decimal.Decimal
	Description string
	Category    string
	Photo       string // optional data-URI
}

// CreateExpenseOutput represents the output of expense creation.
type CreateExpenseOutput struct {
	Expense *entity.Expense
	Message string
}

// CreateExpenseUseCase handles expense creation logic.
type CreateExpenseUseCase struct {
	expenseRepo  adapter.ExpenseRepository
	summaryCache adapter.SummaryCache
}

// NewCreateExpenseUseCase creates a new CreateExpenseUseCase instance.
func NewCreateExpenseUseCase(expenseRepo adapter.ExpenseRepository, summaryCache adapter.SummaryCache) *CreateExpenseUseCase {
	return &CreateExpenseUseCase{
		expenseRepo:  expenseRepo,
		summaryCache: summaryCache,
	}
}

// Execute performs the expense creation. Validation happens here, at the
// input boundary: the store itself does not enforce these invariants.
func (uc *CreateExpenseUseCase) Execute(ctx context.Context, input CreateExpenseInput) (*CreateExpenseOutput, error) {
	if err := ValidateExpenseFields(input.Amount, input.Description, input.Category); err != nil {
		return nil, err
	}

	expense := entity.NewExpense(
		input.UserID,
		input.Date,
		input.Amount,
		strings.TrimSpace(input.Description),
		input.Category,
		input.Photo,
	)

	if err := uc.expenseRepo.Create(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	// Best effort: the summary for the expense month is now stale.
	if uc.summaryCache != nil {
		_ = uc.summaryCache.Invalidate(ctx, input.UserID, expense.Date)
	}

	return &CreateExpenseOutput{
		Expense: expense,
		Message: valueobject.ExpenseSavedMessage,
	}, nil
}

// ValidateExpenseFields validates the user-supplied expense fields against
// the boundary invariants: non-negative amount, non-empty description and a
// category label from the fixed enumeration.
func ValidateExpenseFields(amount decimal.Decimal, description, category string) error {
	if amount.IsNegative() {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeNegativeAmount,
			"amount must not be negative",
			domainerror.ErrNegativeAmount,
		)
	}

	if strings.TrimSpace(description) == "" {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeMissingDescription,
			"description is required",
			domainerror.ErrMissingDescription,
		)
	}

	if !valueobject.IsValidCategoryLabel(category) {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeUnknownCategoryLabel,
			"category must be one of the known labels",
			domainerror.ErrUnknownCategoryLabel,
		)
	}

	return nil
}
