// Package error defines domain-specific errors for the ZenFinance application.
package error

import "errors"

// Expense domain errors.
var (
	// ErrExpenseNotFound is returned when an expense is not found in the system.
	ErrExpenseNotFound = errors.New("expense not found")

	// ErrNegativeAmount is returned when an expense amount is negative.
	ErrNegativeAmount = errors.New("amount must not be negative")

	// ErrMissingDescription is returned when an expense description is empty.
	ErrMissingDescription = errors.New("description is required")

	// ErrUnknownCategoryLabel is returned when a category label is not part of the fixed enumeration.
	ErrUnknownCategoryLabel = errors.New("unknown category label")

	// ErrUnauthorizedExpenseAccess is returned when user is not authorized to access an expense.
	ErrUnauthorizedExpenseAccess = errors.New("unauthorized access to expense")
)

// ExpenseErrorCode defines error codes for expense errors.
// Format: EXP-XXYYYY where XX is category and YYYY is specific error.
type ExpenseErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeExpenseNotFound          ExpenseErrorCode = "EXP-010001"
	ErrCodeNegativeAmount           ExpenseErrorCode = "EXP-010002"
	ErrCodeMissingDescription       ExpenseErrorCode = "EXP-010003"
	ErrCodeUnknownCategoryLabel     ExpenseErrorCode = "EXP-010004"
	ErrCodeUnauthorizedExpense      ExpenseErrorCode = "EXP-010005"
	ErrCodeMissingExpenseFields     ExpenseErrorCode = "EXP-010006"
	ErrCodeInvalidExpenseDateFormat ExpenseErrorCode = "EXP-010007"
)

// ExpenseError represents an expense error with code and message.
type ExpenseError struct {
	Code    ExpenseErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ExpenseError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ExpenseError) Unwrap() error {
	return e.Err
}

// NewExpenseError creates a new ExpenseError with the given code and message.
func NewExpenseError(code ExpenseErrorCode, message string, err error) *ExpenseError {
	return &ExpenseError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
