// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/zen-finance/backend/internal/domain/entity"
)

// GoalRepository defines the interface for goal persistence operations.
type GoalRepository interface {
	// Create creates a new goal in the database.
	Create(ctx context.Context, goal *entity.Goal) error

	// FindByID retrieves a goal by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Goal, error)

	// FindByUser retrieves all goals for a given user, newest first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Goal, error)

	// ExistsByUserAndCategory checks if a goal exists for the given user and category label.
	ExistsByUserAndCategory(ctx context.Context, userID uuid.UUID, category string) (bool, error)

	// Delete removes a goal from the database (soft delete).
	Delete(ctx context.Context, id uuid.UUID) error
}
