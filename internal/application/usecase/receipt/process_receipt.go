// Package receipt contains the receipt intake use cases.
package receipt

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/zen-finance/backend/internal/application/adapter"
	"github.com/zen-finance/backend/internal/domain/entity"
	domainerror "github.com/zen-finance/backend/internal/domain/error"
	"github.com/zen-finance/backend/internal/domain/valueobject"
)

// Notices shown alongside the draft on the confirmation screen.
const (
	NoticeExtractionFailed  = "Não consegui ler o recibo automaticamente. Preencha os dados abaixo para registrar o gasto."
	NoticeExtractionPartial = "Li parte do recibo. Confira e complete os campos antes de confirmar."
	NoticeExtractionOK      = "Prontinho! Confira os dados extraídos do recibo antes de confirmar."
)

// ProcessReceiptInput represents the input for receipt processing.
type ProcessReceiptInput struct {
	UserID       uuid.UUID
	ImageDataURI string
}

// ProcessReceiptOutput represents the output of receipt processing. The flow
// always lands on the confirmation stage; extraction failures only change
// how much of the draft is pre-filled.
type ProcessReceiptOutput struct {
	Stage  entity.ReceiptStage
	Draft  entity.ReceiptDraft
	Notice string
}

// ProcessReceiptUseCase runs the upload-to-confirmation leg of the receipt
// intake flow. Extraction is best effort and never blocks the user from
// registering the expense by hand.
type ProcessReceiptUseCase struct {
	extractor      adapter.ReceiptExtractor
	extractionRepo adapter.ReceiptExtractionRepository
}

// NewProcessReceiptUseCase creates a new ProcessReceiptUseCase instance.
func NewProcessReceiptUseCase(
	extractor adapter.ReceiptExtractor,
	extractionRepo adapter.ReceiptExtractionRepository,
) *ProcessReceiptUseCase {
	return &ProcessReceiptUseCase{
		extractor:      extractor,
		extractionRepo: extractionRepo,
	}
}

// Execute analyzes the uploaded receipt image and returns a draft for the
// confirmation screen.
func (uc *ProcessReceiptUseCase) Execute(ctx context.Context, input ProcessReceiptInput) (*ProcessReceiptOutput, error) {
	if strings.TrimSpace(input.ImageDataURI) == "" {
		return nil, domainerror.NewReceiptError(
			domainerror.ErrCodeMissingReceiptImage,
			"receipt image is required",
			domainerror.ErrMissingReceiptImage,
		)
	}

	if uc.extractor == nil || !uc.extractor.IsAvailable() {
		slog.Warn("Receipt extractor unavailable, falling back to manual entry", "user_id", input.UserID)
		uc.audit(ctx, input.UserID, entity.ExtractionStatusFailed, 0, allDraftFields())
		return failOpen(), nil
	}

	fields, err := uc.extractor.Extract(ctx, input.ImageDataURI)
	if err != nil {
		slog.Warn("Receipt extraction failed, falling back to manual entry", "error", err, "user_id", input.UserID)
		uc.audit(ctx, input.UserID, entity.ExtractionStatusFailed, 0, allDraftFields())
		return failOpen(), nil
	}

	draft, missing := buildDraft(fields)

	status := entity.ExtractionStatusSucceeded
	notice := NoticeExtractionOK
	if len(missing) > 0 {
		status = entity.ExtractionStatusPartial
		notice = NoticeExtractionPartial
	}
	uc.audit(ctx, input.UserID, status, fields.Confidence, missing)

	return &ProcessReceiptOutput{
		Stage:  entity.ReceiptStageConfirmation,
		Draft:  draft,
		Notice: notice,
	}, nil
}

// buildDraft maps extracted fields onto a draft, falling back to keyword
// categorization when the extractor returned no usable category. It reports
// which required fields remain empty.
func buildDraft(fields *adapter.ReceiptFields) (entity.ReceiptDraft, []string) {
	draft := entity.ReceiptDraft{
		Date:        fields.Date,
		Amount:      fields.Amount,
		Description: strings.TrimSpace(fields.Description),
	}

	if draft.Description == "" {
		draft.Description = strings.TrimSpace(fields.Merchant)
	}

	if valueobject.IsValidCategoryLabel(fields.Category) {
		draft.Category = fields.Category
	} else if draft.Description != "" {
		draft.Category = valueobject.DefaultKeywordTable().Categorize(draft.Description)
	}

	var missing []string
	if draft.Date == nil {
		missing = append(missing, "date")
	}
	if draft.Amount == nil {
		missing = append(missing, "amount")
	}
	if draft.Description == "" {
		missing = append(missing, "description")
	}
	if draft.Category == "" {
		missing = append(missing, "category")
	}

	return draft, missing
}

func failOpen() *ProcessReceiptOutput {
	return &ProcessReceiptOutput{
		Stage:  entity.ReceiptStageConfirmation,
		Draft:  entity.ReceiptDraft{},
		Notice: NoticeExtractionFailed,
	}
}

// audit records the extraction attempt. Failures are logged and swallowed:
// the audit trail never blocks the intake flow.
func (uc *ProcessReceiptUseCase) audit(
	ctx context.Context,
	userID uuid.UUID,
	status entity.ExtractionStatus,
	confidence float64,
	missing []string,
) {
	if uc.extractionRepo == nil {
		return
	}

	record := entity.NewReceiptExtraction(userID, status, confidence, missing)
	if err := uc.extractionRepo.Create(ctx, record); err != nil {
		slog.Warn("Failed to persist extraction audit record",
			"error", fmt.Errorf("create extraction: %w", err), "user_id", userID)
	}
}

func allDraftFields() []string {
	return []string{"date", "amount", "description", "category"}
}
