// Package report contains the monthly report use case.
package report

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/zen-finance/backend/internal/application/adapter"
	"github.com/zen-finance/backend/internal/domain/entity"
	domainerror "github.com/zen-finance/backend/internal/domain/error"
	"github.com/zen-finance/backend/internal/domain/valueobject"
)

// RequestMonthlyReportInput represents the input for a monthly report request.
type RequestMonthlyReportInput struct {
	UserID        uuid.UUID
	ReferenceDate time.Time // any date within the wanted month
}

// RequestMonthlyReportOutput represents the output of a report request.
type RequestMonthlyReportOutput struct {
	JobID uuid.UUID
}

// RequestMonthlyReportUseCase aggregates a month of spending and queues an
// email with the breakdown. Delivery is asynchronous: the worker picks the
// job up from the queue.
type RequestMonthlyReportUseCase struct {
	userRepo    adapter.UserRepository
	expenseRepo adapter.ExpenseRepository
	goalRepo    adapter.GoalRepository
	emailQueue  adapter.EmailQueueRepository
}

// NewRequestMonthlyReportUseCase creates a new RequestMonthlyReportUseCase instance.
func NewRequestMonthlyReportUseCase(
	userRepo adapter.UserRepository,
	expenseRepo adapter.ExpenseRepository,
	goalRepo adapter.GoalRepository,
	emailQueue adapter.EmailQueueRepository,
) *RequestMonthlyReportUseCase {
	return &RequestMonthlyReportUseCase{
		userRepo:    userRepo,
		expenseRepo: expenseRepo,
		goalRepo:    goalRepo,
		emailQueue:  emailQueue,
	}
}

// Execute builds the report data and enqueues the email job.
func (uc *RequestMonthlyReportUseCase) Execute(ctx context.Context, input RequestMonthlyReportInput) (*RequestMonthlyReportOutput, error) {
	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, domainerror.ErrUserNotFound) {
			return nil, domainerror.NewAuthError(
				domainerror.ErrCodeUserNotFound,
				"user not found",
				domainerror.ErrUserNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	expenses, err := uc.expenseRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load expenses: %w", err)
	}

	goals, err := uc.goalRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load goals: %w", err)
	}

	summary := valueobject.AggregateMonth(expenses, input.ReferenceDate)

	categories := make([]map[string]interface{}, 0, len(summary.ByCategory))
	for _, label := range valueobject.CategoryLabels {
		amount, ok := summary.ByCategory[label]
		if !ok {
			continue
		}
		categories = append(categories, map[string]interface{}{
			"name":   label,
			"amount": amount.StringFixed(2),
		})
	}

	exceeded := make([]string, 0)
	for _, g := range goals {
		progress := valueobject.EvaluateGoal(g.Category, g.LimitAmount, summary.ByCategory)
		if progress.Exceeded {
			exceeded = append(exceeded, progress.AlertText)
		}
	}

	month := input.ReferenceDate.Format("01/2006")
	job := entity.NewEmailJob(
		entity.TemplateMonthlyReport,
		user.Email,
		user.Name,
		fmt.Sprintf("Seu resumo financeiro de %s", month),
		map[string]interface{}{
			"name":       user.Name,
			"month":      month,
			"total":      summary.Total.StringFixed(2),
			"categories": categories,
			"alerts":     exceeded,
		},
	)

	if err := uc.emailQueue.Create(ctx, job); err != nil {
		return nil, fmt.Errorf("failed to enqueue report email: %w", err)
	}

	return &RequestMonthlyReportOutput{
		JobID: job.ID,
	}, nil
}
