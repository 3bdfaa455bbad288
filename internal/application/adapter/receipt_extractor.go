// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/zen-finance/backend/internal/domain/entity"
)

// ReceiptFields represents the structured fields extracted from a receipt
// image. Every field except Confidence may be absent; callers must tolerate
// any shape of partial result.
type ReceiptFields struct {
	Amount      *decimal.Decimal
	Date        *time.Time
	Merchant    string
	Description string
	Category    string
	Confidence  float64
}

// ReceiptExtractor defines the interface for the external service that
// converts a receipt image into structured draft fields.
type ReceiptExtractor interface {
	// Extract analyzes a receipt image (base64 data-URI) and returns the
	// extracted fields. Best effort: partial results are valid results.
	Extract(ctx context.Context, imageDataURI string) (*ReceiptFields, error)

	// IsAvailable checks if the extraction service is configured.
	IsAvailable() bool
}

// ReceiptExtractionRepository persists extraction audit records.
type ReceiptExtractionRepository interface {
	// Create stores an extraction audit record.
	Create(ctx context.Context, extraction *entity.ReceiptExtraction) error
}
