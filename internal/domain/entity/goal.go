// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Goal represents a per-category monthly spending limit in the ZenFinance system.
type Goal struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Category    string // a CategoryLabel; compared by string equality, no FK
	LimitAmount decimal.Decimal
	AlertSent   bool // persisted and surfaced, never written by computed logic
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time // Soft-delete support
}

// NewGoal creates a new Goal entity.
func NewGoal(userID uuid.UUID, category string, limitAmount decimal.Decimal) *Goal {
	now := time.Now().UTC()

	return &Goal{
		ID:          uuid.New(),
		UserID:      userID,
		Category:    category,
		LimitAmount: limitAmount,
		AlertSent:   false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
