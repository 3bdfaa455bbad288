// Package receipt contains the receipt intake use cases.
package receipt

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/zen-finance/backend/internal/application/adapter"
	usecaseexpense "github.com/zen-finance/backend/internal/application/usecase/expense"
	"github.com/zen-finance/backend/internal/domain/entity"
	domainerror "github.com/zen-finance/backend/internal/domain/error"
	"github.com/zen-finance/backend/internal/domain/valueobject"
)

// ConfirmReceiptInput represents the confirmed draft. All four fields are
// required at this point; the user filled in anything extraction missed.
type ConfirmReceiptInput struct {
	UserID      uuid.UUID
	Date        *time.Time
	Amount      *decimal.Decimal
	Description string
	Category    string
	Photo       string // optional data-URI of the original receipt
}

// ConfirmReceiptOutput represents the output of receipt confirmation.
type ConfirmReceiptOutput struct {
	Expense *entity.Expense
	Message string
}

// ConfirmReceiptUseCase persists the confirmed draft as a regular expense.
// This is the only write of the intake flow: cancelling before confirmation
// leaves no expense behind.
type ConfirmReceiptUseCase struct {
	expenseRepo  adapter.ExpenseRepository
	summaryCache adapter.SummaryCache
}

// NewConfirmReceiptUseCase creates a new ConfirmReceiptUseCase instance.
func NewConfirmReceiptUseCase(expenseRepo adapter.ExpenseRepository, summaryCache adapter.SummaryCache) *ConfirmReceiptUseCase {
	return &ConfirmReceiptUseCase{
		expenseRepo:  expenseRepo,
		summaryCache: summaryCache,
	}
}

// Execute validates the confirmed draft and inserts exactly one expense.
func (uc *ConfirmReceiptUseCase) Execute(ctx context.Context, input ConfirmReceiptInput) (*ConfirmReceiptOutput, error) {
	if input.Date == nil || input.Amount == nil ||
		strings.TrimSpace(input.Description) == "" || input.Category == "" {
		return nil, domainerror.NewReceiptError(
			domainerror.ErrCodeIncompleteReceiptDraft,
			"date, amount, description and category are required",
			domainerror.ErrIncompleteReceiptDraft,
		)
	}

	if err := usecaseexpense.ValidateExpenseFields(*input.Amount, input.Description, input.Category); err != nil {
		return nil, err
	}

	expense := entity.NewExpense(
		input.UserID,
		*input.Date,
		*input.Amount,
		strings.TrimSpace(input.Description),
		input.Category,
		input.Photo,
	)

	if err := uc.expenseRepo.Create(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	if uc.summaryCache != nil {
		_ = uc.summaryCache.Invalidate(ctx, input.UserID, expense.Date)
	}

	return &ConfirmReceiptOutput{
		Expense: expense,
		Message: valueobject.ExpenseSavedMessage,
	}, nil
}
