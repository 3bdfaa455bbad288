// Package goal contains goal-related use cases.
package goal

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/zen-finance/backend/internal/application/adapter"
	"github.com/zen-finance/backend/internal/domain/entity"
	domainerror "github.com/zen-finance/backend/internal/domain/error"
	"github.com/zen-finance/backend/internal/domain/valueobject"
)

// CreateGoalInput represents the input for goal creation.
type CreateGoalInput struct {
	UserID      uuid.UUID
	Category    string
	LimitAmount decimal.Decimal
}

// CreateGoalOutput represents the output of goal creation.
type CreateGoalOutput struct {
	Goal *entity.Goal
}

// CreateGoalUseCase handles goal creation logic.
type CreateGoalUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewCreateGoalUseCase creates a new CreateGoalUseCase instance.
func NewCreateGoalUseCase(goalRepo adapter.GoalRepository) *CreateGoalUseCase {
	return &CreateGoalUseCase{
		goalRepo: goalRepo,
	}
}

// Execute performs the goal creation. A limit must be strictly positive so
// that progress evaluation never divides by zero.
func (uc *CreateGoalUseCase) Execute(ctx context.Context, input CreateGoalInput) (*CreateGoalOutput, error) {
	if !valueobject.IsValidCategoryLabel(input.Category) {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeMissingGoalFields,
			"category must be one of the known labels",
			nil,
		)
	}

	if !input.LimitAmount.IsPositive() {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidLimitAmount,
			"limit amount must be greater than zero",
			domainerror.ErrInvalidLimitAmount,
		)
	}

	exists, err := uc.goalRepo.ExistsByUserAndCategory(ctx, input.UserID, input.Category)
	if err != nil {
		return nil, fmt.Errorf("failed to check goal existence: %w", err)
	}
	if exists {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeGoalAlreadyExists,
			"a goal for this category already exists",
			domainerror.ErrGoalAlreadyExists,
		)
	}

	goal := entity.NewGoal(input.UserID, input.Category, input.LimitAmount)

	if err := uc.goalRepo.Create(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}

	return &CreateGoalOutput{
		Goal: goal,
	}, nil
}
