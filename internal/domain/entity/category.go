// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// CategoryKind represents the kind of category (fixed or variable spending).
type CategoryKind string

const (
	CategoryKindFixed    CategoryKind = "fixed"
	CategoryKindVariable CategoryKind = "variable"
)

// Category represents a user-managed category definition in the ZenFinance system.
//
// Expenses and goals reference categories by label string only; deleting a
// Category row does not cascade into them.
type Category struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	Kind      CategoryKind
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time // Soft-delete support
}

// NewCategory creates a new Category entity.
func NewCategory(userID uuid.UUID, name string, kind CategoryKind) *Category {
	now := time.Now().UTC()

	return &Category{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		Kind:      kind,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
