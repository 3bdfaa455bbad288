// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ReceiptStage represents the stage of the receipt intake flow.
type ReceiptStage string

const (
	ReceiptStageUpload       ReceiptStage = "upload"
	ReceiptStageProcessing   ReceiptStage = "processing"
	ReceiptStageConfirmation ReceiptStage = "confirmation"
)

// ReceiptDraft holds the expense fields extracted from a receipt photo,
// awaiting user confirmation. Any field may be empty; confirmation
// validates completeness.
type ReceiptDraft struct {
	Date        *time.Time
	Amount      *decimal.Decimal
	Description string
	Category    string
}

// ExtractionStatus represents the outcome of a single extraction attempt.
type ExtractionStatus string

const (
	ExtractionStatusSucceeded ExtractionStatus = "succeeded"
	ExtractionStatusPartial   ExtractionStatus = "partial"
	ExtractionStatusFailed    ExtractionStatus = "failed"
)

// ReceiptExtraction is an audit record of one extraction attempt.
type ReceiptExtraction struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Status        ExtractionStatus
	Confidence    float64
	MissingFields []string
	CreatedAt     time.Time
}

// NewReceiptExtraction creates a new ReceiptExtraction audit entity.
func NewReceiptExtraction(userID uuid.UUID, status ExtractionStatus, confidence float64, missingFields []string) *ReceiptExtraction {
	return &ReceiptExtraction{
		ID:            uuid.New(),
		UserID:        userID,
		Status:        status,
		Confidence:    confidence,
		MissingFields: missingFields,
		CreatedAt:     time.Now().UTC(),
	}
}
