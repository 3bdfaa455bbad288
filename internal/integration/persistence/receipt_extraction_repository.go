// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/zen-finance/backend/internal/application/adapter"
	"github.com/zen-finance/backend/internal/domain/entity"
	"github.com/zen-finance/backend/internal/integration/persistence/model"
)

// receiptExtractionRepository implements the adapter.ReceiptExtractionRepository interface.
type receiptExtractionRepository struct {
	db *gorm.DB
}

// NewReceiptExtractionRepository creates a new receipt extraction repository instance.
func NewReceiptExtractionRepository(db *gorm.DB) adapter.ReceiptExtractionRepository {
	return &receiptExtractionRepository{
		db: db,
	}
}

// Create stores an extraction audit record.
func (r *receiptExtractionRepository) Create(ctx context.Context, extraction *entity.ReceiptExtraction) error {
	extractionModel := model.ReceiptExtractionFromEntity(extraction)
	result := r.db.WithContext(ctx).Create(extractionModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}
