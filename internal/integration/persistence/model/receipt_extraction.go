// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/zen-finance/backend/internal/domain/entity"
)

// ReceiptExtractionModel represents the receipt_extractions audit table.
// Records are append-only; there is no update or delete path.
type ReceiptExtractionModel struct {
	ID            uuid.UUID      `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID      `gorm:"type:uuid;not null;index"`
	Status        string         `gorm:"type:varchar(20);not null"`
	Confidence    float64        `gorm:"type:decimal(4,3);not null;default:0"`
	MissingFields pq.StringArray `gorm:"type:text[]"`
	CreatedAt     time.Time      `gorm:"not null;index"`
}

// TableName returns the table name for the ReceiptExtractionModel.
func (ReceiptExtractionModel) TableName() string {
	return "receipt_extractions"
}

// ToEntity converts a ReceiptExtractionModel to a domain ReceiptExtraction entity.
func (m *ReceiptExtractionModel) ToEntity() *entity.ReceiptExtraction {
	return &entity.ReceiptExtraction{
		ID:            m.ID,
		UserID:        m.UserID,
		Status:        entity.ExtractionStatus(m.Status),
		Confidence:    m.Confidence,
		MissingFields: []string(m.MissingFields),
		CreatedAt:     m.CreatedAt,
	}
}

// ReceiptExtractionFromEntity creates a ReceiptExtractionModel from a domain entity.
func ReceiptExtractionFromEntity(extraction *entity.ReceiptExtraction) *ReceiptExtractionModel {
	return &ReceiptExtractionModel{
		ID:            extraction.ID,
		UserID:        extraction.UserID,
		Status:        string(extraction.Status),
		Confidence:    extraction.Confidence,
		MissingFields: pq.StringArray(extraction.MissingFields),
		CreatedAt:     extraction.CreatedAt,
	}
}
