// Package error defines domain-specific errors for the ZenFinance application.
package error

import "errors"

// Receipt intake domain errors.
var (
	// ErrMissingReceiptImage is returned when no image payload was provided.
	ErrMissingReceiptImage = errors.New("receipt image is required")

	// ErrIncompleteReceiptDraft is returned when confirmation is attempted with missing required fields.
	ErrIncompleteReceiptDraft = errors.New("receipt draft is incomplete")
)

// ReceiptErrorCode defines error codes for receipt intake errors.
// Format: RCP-XXYYYY where XX is category and YYYY is specific error.
type ReceiptErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeMissingReceiptImage    ReceiptErrorCode = "RCP-010001"
	ErrCodeIncompleteReceiptDraft ReceiptErrorCode = "RCP-010002"
)

// ReceiptError represents a receipt intake error with code and message.
type ReceiptError struct {
	Code    ReceiptErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ReceiptError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ReceiptError) Unwrap() error {
	return e.Err
}

// NewReceiptError creates a new ReceiptError with the given code and message.
func NewReceiptError(code ReceiptErrorCode, message string, err error) *ReceiptError {
	return &ReceiptError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
