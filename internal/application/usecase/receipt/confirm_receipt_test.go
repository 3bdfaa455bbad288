package receipt

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/zen-finance/backend/internal/domain/entity"
	domainerror "github.com/zen-finance/backend/internal/domain/error"
	"github.com/zen-finance/backend/internal/domain/valueobject"
)

type countingExpenseRepo struct {
	created []*entity.Expense
	err     error
}

func (r *countingExpenseRepo) Create(ctx context.Context, expense *entity.Expense) error {
	if r.err != nil {
		return r.err
	}
	r.created = append(r.created, expense)
	return nil
}

func (r *countingExpenseRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error) {
	return nil, domainerror.ErrExpenseNotFound
}

func (r *countingExpenseRepo) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Expense, error) {
	return nil, nil
}

func (r *countingExpenseRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return nil
}

type recordingSummaryCache struct {
	invalidated []time.Time
}

func (c *recordingSummaryCache) Get(ctx context.Context, userID uuid.UUID, month time.Time) (*valueobject.MonthlySummary, error) {
	return nil, nil
}

func (c *recordingSummaryCache) Set(ctx context.Context, userID uuid.UUID, month time.Time, summary valueobject.MonthlySummary) error {
	return nil
}

func (c *recordingSummaryCache) Invalidate(ctx context.Context, userID uuid.UUID, month time.Time) error {
	c.invalidated = append(c.invalidated, month)
	return nil
}

func TestConfirmReceiptUseCase_Execute(t *testing.T) {
	userID := uuid.New()
	date := time.Date(2026, time.June, 3, 0, 0, 0, 0, time.UTC)
	amount := decimal.NewFromFloat(89.90)

	validInput := func() ConfirmReceiptInput {
		return ConfirmReceiptInput{
			UserID:      userID,
			Date:        &date,
			Amount:      &amount,
			Description: "Jantar em família",
			Category:    valueobject.LabelAlimentacao,
		}
	}

	t.Run("inserts exactly one expense", func(t *testing.T) {
		repo := &countingExpenseRepo{}
		cache := &recordingSummaryCache{}
		uc := NewConfirmReceiptUseCase(repo, cache)

		output, err := uc.Execute(context.Background(), validInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(repo.created) != 1 {
			t.Fatalf("expected exactly one insert, got %d", len(repo.created))
		}
		created := repo.created[0]
		if !created.Amount.Equal(amount) {
			t.Errorf("expected amount %s, got %s", amount, created.Amount)
		}
		if created.Category != valueobject.LabelAlimentacao {
			t.Errorf("unexpected category %q", created.Category)
		}
		if output.Message != valueobject.ExpenseSavedMessage {
			t.Errorf("expected saved message, got %q", output.Message)
		}
		if len(cache.invalidated) != 1 {
			t.Errorf("expected one cache invalidation, got %d", len(cache.invalidated))
		}
	})

	t.Run("rejects incomplete draft", func(t *testing.T) {
		repo := &countingExpenseRepo{}
		uc := NewConfirmReceiptUseCase(repo, nil)

		incomplete := validInput()
		incomplete.Amount = nil

		_, err := uc.Execute(context.Background(), incomplete)

		var receiptErr *domainerror.ReceiptError
		if !errors.As(err, &receiptErr) {
			t.Fatalf("expected ReceiptError, got %v", err)
		}
		if receiptErr.Code != domainerror.ErrCodeIncompleteReceiptDraft {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeIncompleteReceiptDraft, receiptErr.Code)
		}
		if len(repo.created) != 0 {
			t.Errorf("expected no insert, got %d", len(repo.created))
		}
	})

	t.Run("rejects unknown category label", func(t *testing.T) {
		repo := &countingExpenseRepo{}
		uc := NewConfirmReceiptUseCase(repo, nil)

		input := validInput()
		input.Category = "Viagens"

		_, err := uc.Execute(context.Background(), input)

		var expenseErr *domainerror.ExpenseError
		if !errors.As(err, &expenseErr) {
			t.Fatalf("expected ExpenseError, got %v", err)
		}
		if expenseErr.Code != domainerror.ErrCodeUnknownCategoryLabel {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeUnknownCategoryLabel, expenseErr.Code)
		}
		if len(repo.created) != 0 {
			t.Errorf("expected no insert, got %d", len(repo.created))
		}
	})

	t.Run("rejects negative amount", func(t *testing.T) {
		repo := &countingExpenseRepo{}
		uc := NewConfirmReceiptUseCase(repo, nil)

		negative := decimal.NewFromFloat(-5.00)
		input := validInput()
		input.Amount = &negative

		_, err := uc.Execute(context.Background(), input)

		var expenseErr *domainerror.ExpenseError
		if !errors.As(err, &expenseErr) {
			t.Fatalf("expected ExpenseError, got %v", err)
		}
		if expenseErr.Code != domainerror.ErrCodeNegativeAmount {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeNegativeAmount, expenseErr.Code)
		}
	})

	t.Run("repository failure surfaces and nothing is cached", func(t *testing.T) {
		repo := &countingExpenseRepo{err: errors.New("connection reset")}
		cache := &recordingSummaryCache{}
		uc := NewConfirmReceiptUseCase(repo, cache)

		_, err := uc.Execute(context.Background(), validInput())
		if err == nil {
			t.Fatal("expected error")
		}
		if len(cache.invalidated) != 0 {
			t.Errorf("expected no cache invalidation, got %d", len(cache.invalidated))
		}
	})
}
