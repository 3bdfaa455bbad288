// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/zen-finance/backend/internal/domain/entity"
)

// ProcessReceiptRequest represents the request body for receipt processing.
type ProcessReceiptRequest struct {
	Image string `json:"image" binding:"required"`
}

// ReceiptDraftResponse represents the pre-filled draft fields. Missing
// fields are null or empty; the client collects them before confirming.
type ReceiptDraftResponse struct {
	Date        *string `json:"date"`
	Amount      *string `json:"amount"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
}

// ProcessReceiptResponse represents the response for receipt processing.
type ProcessReceiptResponse struct {
	Stage  string               `json:"stage"`
	Draft  ReceiptDraftResponse `json:"draft"`
	Notice string               `json:"notice"`
}

// ConfirmReceiptRequest represents the confirmed draft. All fields are
// required; the confirm endpoint rejects incomplete drafts.
type ConfirmReceiptRequest struct {
	Date        string  `json:"date" binding:"required"`
	Amount      float64 `json:"amount" binding:"required"`
	Description string  `json:"description" binding:"required,min=1,max=255"`
	Category    string  `json:"category" binding:"required"`
	Photo       string  `json:"photo,omitempty"`
}

// ToProcessReceiptResponse converts a draft to a ProcessReceiptResponse DTO.
func ToProcessReceiptResponse(stage entity.ReceiptStage, draft entity.ReceiptDraft, notice string) ProcessReceiptResponse {
	response := ProcessReceiptResponse{
		Stage: string(stage),
		Draft: ReceiptDraftResponse{
			Description: draft.Description,
			Category:    draft.Category,
		},
		Notice: notice,
	}

	if draft.Date != nil {
		dateStr := draft.Date.Format("2006-01-02")
		response.Draft.Date = &dateStr
	}

	if draft.Amount != nil {
		amountStr := draft.Amount.StringFixed(2)
		response.Draft.Amount = &amountStr
	}

	return response
}
