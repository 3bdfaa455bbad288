// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/zen-finance/backend/internal/domain/entity"
	"github.com/zen-finance/backend/internal/domain/valueobject"
)

// CreateExpenseRequest represents the request body for expense creation.
type CreateExpenseRequest struct {
	Date        string  `json:"date" binding:"required"`
	Amount      float64 `json:"amount" binding:"required"`
	Description string  `json:"description" binding:"required,min=1,max=255"`
	Category    string  `json:"category" binding:"required"`
	Photo       string  `json:"photo,omitempty"`
}

// ExpenseResponse represents a single expense in API responses.
type ExpenseResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Date        string    `json:"date"`
	Amount      string    `json:"amount"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Photo       string    `json:"photo,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ExpenseListResponse represents the response for listing expenses.
type ExpenseListResponse struct {
	Expenses []ExpenseResponse `json:"expenses"`
}

// CreateExpenseResponse represents the response for expense creation.
type CreateExpenseResponse struct {
	Expense ExpenseResponse `json:"expense"`
	Message string          `json:"message"`
}

// MonthlySummaryResponse represents the monthly spending summary.
type MonthlySummaryResponse struct {
	Month      string            `json:"month"`
	Total      string            `json:"total"`
	ByCategory map[string]string `json:"by_category"`
}

// ToExpenseResponse converts a domain Expense entity to an ExpenseResponse DTO.
func ToExpenseResponse(e *entity.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:          e.ID.String(),
		UserID:      e.UserID.String(),
		Date:        e.Date.Format("2006-01-02"),
		Amount:      e.Amount.StringFixed(2),
		Description: e.Description,
		Category:    e.Category,
		Photo:       e.Photo,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

// ToExpenseListResponse converts a list of expenses to ExpenseListResponse.
func ToExpenseListResponse(expenses []*entity.Expense) ExpenseListResponse {
	out := make([]ExpenseResponse, len(expenses))
	for i, e := range expenses {
		out[i] = ToExpenseResponse(e)
	}
	return ExpenseListResponse{
		Expenses: out,
	}
}

// ToMonthlySummaryResponse builds the summary response from aggregated values.
func ToMonthlySummaryResponse(month time.Time, summary valueobject.MonthlySummary) MonthlySummaryResponse {
	byCategory := make(map[string]string, len(summary.ByCategory))
	for label, amount := range summary.ByCategory {
		byCategory[label] = amount.StringFixed(2)
	}

	return MonthlySummaryResponse{
		Month:      month.Format("2006-01"),
		Total:      summary.Total.StringFixed(2),
		ByCategory: byCategory,
	}
}
