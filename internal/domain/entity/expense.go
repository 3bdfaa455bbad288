// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Expense represents a single recorded expenditure in the ZenFinance system.
type Expense struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Date        time.Time // date-only precision
	Amount      decimal.Decimal
	Description string
	Category    string // a CategoryLabel; compared by string equality, no FK
	Photo       string // optional data-URI, set when captured via receipt flow
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time // Soft-delete support
}

// NewExpense creates a new Expense entity.
func NewExpense(
	userID uuid.UUID,
	date time.Time,
	amount decimal.Decimal,
	description string,
	category string,
	photo string,
) *Expense {
	now := time.Now().UTC()

	return &Expense{
		ID:          uuid.New(),
		UserID:      userID,
		Date:        date,
		Amount:      amount,
		Description: description,
		Category:    category,
		Photo:       photo,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
