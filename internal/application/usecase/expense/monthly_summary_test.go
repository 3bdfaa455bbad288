package expense

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

type fakeExpenseRepo struct {
	expenses    []*entity.Expense
	created     []*entity.Expense
	findCalls   int
	findUserErr error
}

func (r *fakeExpenseRepo) Create(ctx context.Context, expense *entity.Expense) error {
	r.created = append(r.created, expense)
	return nil
}

func (r *fakeExpenseRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error) {
	for _, e := range r.expenses {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, domainerror.ErrExpenseNotFound
}

func (r *fakeExpenseRepo) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Expense, error) {
	r.findCalls++
	if r.findUserErr != nil {
		return nil, r.findUserErr
	}
	return r.expenses, nil
}

func (r *fakeExpenseRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return nil
}

type fakeSummaryCache struct {
	entries     map[string]valueobject.MonthlySummary
	getErr      error
	invalidated int
}

func newFakeSummaryCache() *fakeSummaryCache {
	return &fakeSummaryCache{entries: make(map[string]valueobject.MonthlySummary)}
}

func cacheKey(userID uuid.UUID, month time.Time) string {
	return userID.String() + month.Format("2006-01")
}

func (c *fakeSummaryCache) Get(ctx context.Context, userID uuid.UUID, month time.Time) (*valueobject.MonthlySummary, error) {
	if c.getErr != nil {
		return nil, c.getErr
	}
	if summary, ok := c.entries[cacheKey(userID, month)]; ok {
		return &summary, nil
	}
	return nil, nil
}

func (c *fakeSummaryCache) Set(ctx context.Context, userID uuid.UUID, month time.Time, summary valueobject.MonthlySummary) error {
	c.entries[cacheKey(userID, month)] = summary
	return nil
}

func (c *fakeSummaryCache) Invalidate(ctx context.Context, userID uuid.UUID, month time.Time) error {
	c.invalidated++
	delete(c.entries, cacheKey(userID, month))
	return nil
}

func TestMonthlySummaryUseCase_Execute(t *testing.T) {
	userID := uuid.New()
	reference := time.Date(2026, time.April, 20, 12, 0, 0, 0, time.UTC)

	makeExpense := func(day int, amount string, category string) *entity.Expense {
		value, _ := decimal.NewFromString(amount)
		date := time.Date(2026, time.April, day, 0, 0, 0, 0, time.UTC)
		return entity.NewExpense(userID, date, value, "despesa", category, "")
	}

	t.Run("aggregates the reference month from the store", func(t *testing.T) {
		repo := &fakeExpenseRepo{expenses: []*entity.Expense{
			makeExpense(1, "50.00", valueobject.LabelAlimentacao),
			makeExpense(15, "30.00", valueobject.LabelAlimentacao),
			makeExpense(28, "20.00", valueobject.LabelTransporte),
		}}
		uc := NewMonthlySummaryUseCase(repo, nil)

		output, err := uc.Execute(context.Background(), MonthlySummaryInput{UserID: userID, ReferenceDate: reference})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !output.Total.Equal(decimal.NewFromInt(100)) {
			t.Errorf("expected total 100, got %s", output.Total)
		}
		if !output.ByCategory[valueobject.LabelAlimentacao].Equal(decimal.NewFromInt(80)) {
			t.Errorf("expected Alimentação 80, got %s", output.ByCategory[valueobject.LabelAlimentacao])
		}
		if output.Month != time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC) {
			t.Errorf("expected month start, got %s", output.Month)
		}
	})

	t.Run("serves from the cache when warm", func(t *testing.T) {
		repo := &fakeExpenseRepo{expenses: []*entity.Expense{
			makeExpense(1, "10.00", valueobject.LabelLazer),
		}}
		cache := newFakeSummaryCache()
		uc := NewMonthlySummaryUseCase(repo, cache)

		input := MonthlySummaryInput{UserID: userID, ReferenceDate: reference}
		if _, err := uc.Execute(context.Background(), input); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := uc.Execute(context.Background(), input); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if repo.findCalls != 1 {
			t.Errorf("expected a single store read, got %d", repo.findCalls)
		}
	})

	t.Run("cache failure degrades to a store read", func(t *testing.T) {
		repo := &fakeExpenseRepo{expenses: []*entity.Expense{
			makeExpense(2, "7.50", valueobject.LabelSaude),
		}}
		cache := newFakeSummaryCache()
		cache.getErr = errors.New("redis down")
		uc := NewMonthlySummaryUseCase(repo, cache)

		output, err := uc.Execute(context.Background(), MonthlySummaryInput{UserID: userID, ReferenceDate: reference})
		if err != nil {
			t.Fatalf("cache failure must not surface, got %v", err)
		}
		if !output.Total.Equal(decimal.NewFromFloat(7.5)) {
			t.Errorf("expected total 7.5, got %s", output.Total)
		}
	})
}

func TestCreateExpenseUseCase_Execute(t *testing.T) {
	userID := uuid.New()
	date := time.Date(2026, time.April, 5, 0, 0, 0, 0, time.UTC)

	t.Run("creates the expense and invalidates the month", func(t *testing.T) {
		repo := &fakeExpenseRepo{}
		cache := newFakeSummaryCache()
		uc := NewCreateExpenseUseCase(repo, cache)

		output, err := uc.Execute(context.Background(), CreateExpenseInput{
			UserID:      userID,
			Date:        date,
			Amount:      decimal.NewFromFloat(33.33),
			Description: "  Almoço  ",
			Category:    valueobject.LabelAlimentacao,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(repo.created) != 1 {
			t.Fatalf("expected one insert, got %d", len(repo.created))
		}
		if repo.created[0].Description != "Almoço" {
			t.Errorf("expected trimmed description, got %q", repo.created[0].Description)
		}
		if output.Message != valueobject.ExpenseSavedMessage {
			t.Errorf("unexpected message %q", output.Message)
		}
		if cache.invalidated != 1 {
			t.Errorf("expected one invalidation, got %d", cache.invalidated)
		}
	})

	t.Run("zero amount is accepted", func(t *testing.T) {
		repo := &fakeExpenseRepo{}
		uc := NewCreateExpenseUseCase(repo, nil)

		_, err := uc.Execute(context.Background(), CreateExpenseInput{
			UserID:      userID,
			Date:        date,
			Amount:      decimal.Zero,
			Description: "Cortesia",
			Category:    valueobject.LabelOutros,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("rejects negative amount", func(t *testing.T) {
		repo := &fakeExpenseRepo{}
		uc := NewCreateExpenseUseCase(repo, nil)

		_, err := uc.Execute(context.Background(), CreateExpenseInput{
			UserID:      userID,
			Date:        date,
			Amount:      decimal.NewFromInt(-1),
			Description: "inválido",
			Category:    valueobject.LabelOutros,
		})

		var expenseErr *domainerror.ExpenseError
		if !errors.As(err, &expenseErr) {
			t.Fatalf("expected ExpenseError, got %v", err)
		}
		if expenseErr.Code != domainerror.ErrCodeNegativeAmount {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeNegativeAmount, expenseErr.Code)
		}
		if len(repo.created) != 0 {
			t.Errorf("expected no insert, got %d", len(repo.created))
		}
	})
}
