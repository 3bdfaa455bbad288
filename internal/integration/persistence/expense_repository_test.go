package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/zen-finance/backend/internal/domain/entity"
	domainerror "github.com/zen-finance/backend/internal/domain/error"
	"github.com/zen-finance/backend/internal/domain/valueobject"
	"github.com/zen-finance/backend/internal/integration/persistence/model"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(&model.UserModel{}, &model.ExpenseModel{}, &model.GoalModel{}, &model.CategoryModel{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

func TestExpenseRepository(t *testing.T) {
	db := openTestDB(t)
	repo := NewExpenseRepository(db)
	ctx := context.Background()
	userID := uuid.New()

	makeExpense := func(date time.Time, amount string, category string) *entity.Expense {
		value, _ := decimal.NewFromString(amount)
		return entity.NewExpense(userID, date, value, "despesa de teste", category, "")
	}

	t.Run("create and find by id", func(t *testing.T) {
		expense := makeExpense(time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC), "42.90", valueobject.LabelAlimentacao)

		if err := repo.Create(ctx, expense); err != nil {
			t.Fatalf("failed to create expense: %v", err)
		}

		found, err := repo.FindByID(ctx, expense.ID)
		if err != nil {
			t.Fatalf("failed to find expense: %v", err)
		}
		if !found.Amount.Equal(expense.Amount) {
			t.Errorf("expected amount %s, got %s", expense.Amount, found.Amount)
		}
		if found.Category != valueobject.LabelAlimentacao {
			t.Errorf("expected category %s, got %s", valueobject.LabelAlimentacao, found.Category)
		}
	})

	t.Run("find by user returns newest first", func(t *testing.T) {
		older := makeExpense(time.Date(2026, time.August, 2, 0, 0, 0, 0, time.UTC), "10.00", valueobject.LabelLazer)
		newer := makeExpense(time.Date(2026, time.August, 20, 0, 0, 0, 0, time.UTC), "20.00", valueobject.LabelLazer)

		if err := repo.Create(ctx, older); err != nil {
			t.Fatalf("failed to create expense: %v", err)
		}
		if err := repo.Create(ctx, newer); err != nil {
			t.Fatalf("failed to create expense: %v", err)
		}

		expenses, err := repo.FindByUser(ctx, userID)
		if err != nil {
			t.Fatalf("failed to list expenses: %v", err)
		}
		if len(expenses) < 2 {
			t.Fatalf("expected at least 2 expenses, got %d", len(expenses))
		}
		if expenses[0].Date.Before(expenses[1].Date) {
			t.Error("expected newest expense first")
		}
	})

	t.Run("find by user does not leak other users", func(t *testing.T) {
		other := entity.NewExpense(uuid.New(), time.Now().UTC(), decimal.NewFromInt(5), "outra pessoa", valueobject.LabelOutros, "")
		if err := repo.Create(ctx, other); err != nil {
			t.Fatalf("failed to create expense: %v", err)
		}

		expenses, err := repo.FindByUser(ctx, userID)
		if err != nil {
			t.Fatalf("failed to list expenses: %v", err)
		}
		for _, e := range expenses {
			if e.UserID != userID {
				t.Errorf("expense %s belongs to another user", e.ID)
			}
		}
	})

	t.Run("delete is a soft delete", func(t *testing.T) {
		expense := makeExpense(time.Date(2026, time.August, 10, 0, 0, 0, 0, time.UTC), "15.00", valueobject.LabelSaude)
		if err := repo.Create(ctx, expense); err != nil {
			t.Fatalf("failed to create expense: %v", err)
		}

		if err := repo.Delete(ctx, expense.ID); err != nil {
			t.Fatalf("failed to delete expense: %v", err)
		}

		if _, err := repo.FindByID(ctx, expense.ID); !errors.Is(err, domainerror.ErrExpenseNotFound) {
			t.Errorf("expected ErrExpenseNotFound, got %v", err)
		}

		var count int64
		if err := db.Unscoped().Model(&model.ExpenseModel{}).Where("id = ?", expense.ID).Count(&count).Error; err != nil {
			t.Fatalf("failed to count rows: %v", err)
		}
		if count != 1 {
			t.Errorf("expected the row to survive soft delete, got %d rows", count)
		}
	})

	t.Run("find by id misses", func(t *testing.T) {
		if _, err := repo.FindByID(ctx, uuid.New()); !errors.Is(err, domainerror.ErrExpenseNotFound) {
			t.Errorf("expected ErrExpenseNotFound, got %v", err)
		}
	})
}

func TestGoalRepository(t *testing.T) {
	db := openTestDB(t)
	repo := NewGoalRepository(db)
	ctx := context.Background()
	userID := uuid.New()

	t.Run("create and exists by user and category", func(t *testing.T) {
		goal := entity.NewGoal(userID, valueobject.LabelTransporte, decimal.NewFromInt(250))
		if err := repo.Create(ctx, goal); err != nil {
			t.Fatalf("failed to create goal: %v", err)
		}

		exists, err := repo.ExistsByUserAndCategory(ctx, userID, valueobject.LabelTransporte)
		if err != nil {
			t.Fatalf("failed to check existence: %v", err)
		}
		if !exists {
			t.Error("expected goal to exist")
		}

		exists, err = repo.ExistsByUserAndCategory(ctx, userID, valueobject.LabelLazer)
		if err != nil {
			t.Fatalf("failed to check existence: %v", err)
		}
		if exists {
			t.Error("expected no goal for Lazer")
		}
	})

	t.Run("deleted goal no longer exists", func(t *testing.T) {
		goal := entity.NewGoal(userID, valueobject.LabelEducacao, decimal.NewFromInt(100))
		if err := repo.Create(ctx, goal); err != nil {
			t.Fatalf("failed to create goal: %v", err)
		}
		if err := repo.Delete(ctx, goal.ID); err != nil {
			t.Fatalf("failed to delete goal: %v", err)
		}

		exists, err := repo.ExistsByUserAndCategory(ctx, userID, valueobject.LabelEducacao)
		if err != nil {
			t.Fatalf("failed to check existence: %v", err)
		}
		if exists {
			t.Error("expected deleted goal to be gone")
		}

		if _, err := repo.FindByID(ctx, goal.ID); !errors.Is(err, domainerror.ErrGoalNotFound) {
			t.Errorf("expected ErrGoalNotFound, got %v", err)
		}
	})
}
