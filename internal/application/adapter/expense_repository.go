// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/zen-finance/backend/internal/domain/entity"
)

// ExpenseRepository defines the interface for expense persistence operations.
//
// Aggregation never happens in the store: callers load a full snapshot via
// FindByUser and aggregate in memory.
type ExpenseRepository interface {
	// Create creates a new expense in the database.
	Create(ctx context.Context, expense *entity.Expense) error

	// FindByID retrieves an expense by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error)

	// FindByUser retrieves all expenses for a given user, newest first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Expense, error)

	// Delete soft-deletes an expense from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
