// Package goal contains goal-related use cases.
package goal

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/zen-finance/backend/internal/application/adapter"
	"github.com/zen-finance/backend/internal/domain/entity"
	"github.com/zen-finance/backend/internal/domain/valueobject"
)

// ListGoalsInput represents the input for listing goals with progress.
type ListGoalsInput struct {
	UserID        uuid.UUID
	ReferenceDate time.Time // any date within the wanted month
}

// GoalWithProgress pairs a goal with its evaluation for the month.
type GoalWithProgress struct {
	Goal     *entity.Goal
	Progress valueobject.GoalProgress
}

// ListGoalsOutput represents the output of listing goals.
type ListGoalsOutput struct {
	Goals []GoalWithProgress
}

// ListGoalsUseCase evaluates every goal of a user against the month's
// spending. All goals are evaluated over the same expense snapshot so the
// numbers are mutually consistent.
type ListGoalsUseCase struct {
	goalRepo    adapter.GoalRepository
	expenseRepo adapter.ExpenseRepository
}

// NewListGoalsUseCase creates a new ListGoalsUseCase instance.
func NewListGoalsUseCase(goalRepo adapter.GoalRepository, expenseRepo adapter.ExpenseRepository) *ListGoalsUseCase {
	return &ListGoalsUseCase{
		goalRepo:    goalRepo,
		expenseRepo: expenseRepo,
	}
}

// Execute lists the user's goals with their progress for the month of the
// reference date.
func (uc *ListGoalsUseCase) Execute(ctx context.Context, input ListGoalsInput) (*ListGoalsOutput, error) {
	goals, err := uc.goalRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load goals: %w", err)
	}

	expenses, err := uc.expenseRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load expenses: %w", err)
	}

	summary := valueobject.AggregateMonth(expenses, input.ReferenceDate)

	result := make([]GoalWithProgress, 0, len(goals))
	for _, g := range goals {
		result = append(result, GoalWithProgress{
			Goal:     g,
			Progress: valueobject.EvaluateGoal(g.Category, g.LimitAmount, summary.ByCategory),
		})
	}

	return &ListGoalsOutput{
		Goals: result,
	}, nil
}
