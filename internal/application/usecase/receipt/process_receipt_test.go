package receipt

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/zen-finance/backend/internal/application/adapter"
	"github.com/zen-finance/backend/internal/domain/entity"
	domainerror "github.com/zen-finance/backend/internal/domain/error"
	"github.com/zen-finance/backend/internal/domain/valueobject"
)

type stubExtractor struct {
	fields    *adapter.ReceiptFields
	err       error
	available bool
}

func (s *stubExtractor) Extract(ctx context.Context, imageDataURI string) (*adapter.ReceiptFields, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.fields, nil
}

func (s *stubExtractor) IsAvailable() bool {
	return s.available
}

type recordingExtractionRepo struct {
	records []*entity.ReceiptExtraction
	err     error
}

func (r *recordingExtractionRepo) Create(ctx context.Context, extraction *entity.ReceiptExtraction) error {
	if r.err != nil {
		return r.err
	}
	r.records = append(r.records, extraction)
	return nil
}

const testImage = "data:image/jpeg;base64,dGVzdA=="

func TestProcessReceiptUseCase_Execute(t *testing.T) {
	userID := uuid.New()

	t.Run("rejects empty image", func(t *testing.T) {
		uc := NewProcessReceiptUseCase(&stubExtractor{available: true}, &recordingExtractionRepo{})

		_, err := uc.Execute(context.Background(), ProcessReceiptInput{UserID: userID, ImageDataURI: "   "})

		var receiptErr *domainerror.ReceiptError
		if !errors.As(err, &receiptErr) {
			t.Fatalf("expected ReceiptError, got %v", err)
		}
		if receiptErr.Code != domainerror.ErrCodeMissingReceiptImage {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeMissingReceiptImage, receiptErr.Code)
		}
	})

	t.Run("full extraction lands on confirmation", func(t *testing.T) {
		date := time.Date(2026, time.May, 10, 0, 0, 0, 0, time.UTC)
		amount := decimal.NewFromFloat(42.50)
		repo := &recordingExtractionRepo{}
		uc := NewProcessReceiptUseCase(&stubExtractor{
			available: true,
			fields: &adapter.ReceiptFields{
				Amount:      &amount,
				Date:        &date,
				Merchant:    "Padaria do Zé",
				Description: "Café da manhã",
				Category:    valueobject.LabelAlimentacao,
				Confidence:  0.93,
			},
		}, repo)

		output, err := uc.Execute(context.Background(), ProcessReceiptInput{UserID: userID, ImageDataURI: testImage})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.Stage != entity.ReceiptStageConfirmation {
			t.Errorf("expected confirmation stage, got %s", output.Stage)
		}
		if output.Notice != NoticeExtractionOK {
			t.Errorf("expected notice %q, got %q", NoticeExtractionOK, output.Notice)
		}
		if output.Draft.Description != "Café da manhã" {
			t.Errorf("unexpected description %q", output.Draft.Description)
		}
		if output.Draft.Category != valueobject.LabelAlimentacao {
			t.Errorf("unexpected category %q", output.Draft.Category)
		}
		if len(repo.records) != 1 || repo.records[0].Status != entity.ExtractionStatusSucceeded {
			t.Errorf("expected one succeeded audit record, got %+v", repo.records)
		}
	})

	t.Run("extraction error falls open to manual entry", func(t *testing.T) {
		repo := &recordingExtractionRepo{}
		uc := NewProcessReceiptUseCase(&stubExtractor{
			available: true,
			err:       errors.New("vision service timeout"),
		}, repo)

		output, err := uc.Execute(context.Background(), ProcessReceiptInput{UserID: userID, ImageDataURI: testImage})
		if err != nil {
			t.Fatalf("extraction failure must not surface as an error, got %v", err)
		}

		if output.Stage != entity.ReceiptStageConfirmation {
			t.Errorf("expected confirmation stage, got %s", output.Stage)
		}
		if output.Notice != NoticeExtractionFailed {
			t.Errorf("expected notice %q, got %q", NoticeExtractionFailed, output.Notice)
		}
		if output.Draft.Date != nil || output.Draft.Amount != nil || output.Draft.Description != "" {
			t.Errorf("expected empty draft, got %+v", output.Draft)
		}
		if len(repo.records) != 1 || repo.records[0].Status != entity.ExtractionStatusFailed {
			t.Errorf("expected one failed audit record, got %+v", repo.records)
		}
		if len(repo.records[0].MissingFields) != 4 {
			t.Errorf("expected all four fields missing, got %v", repo.records[0].MissingFields)
		}
	})

	t.Run("unavailable extractor falls open to manual entry", func(t *testing.T) {
		uc := NewProcessReceiptUseCase(&stubExtractor{available: false}, &recordingExtractionRepo{})

		output, err := uc.Execute(context.Background(), ProcessReceiptInput{UserID: userID, ImageDataURI: testImage})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Notice != NoticeExtractionFailed {
			t.Errorf("expected notice %q, got %q", NoticeExtractionFailed, output.Notice)
		}
	})

	t.Run("partial extraction keeps extracted fields and flags the rest", func(t *testing.T) {
		amount := decimal.NewFromFloat(15.00)
		repo := &recordingExtractionRepo{}
		uc := NewProcessReceiptUseCase(&stubExtractor{
			available: true,
			fields: &adapter.ReceiptFields{
				Amount:     &amount,
				Merchant:   "Drogaria Pacheco",
				Confidence: 0.41,
			},
		}, repo)

		output, err := uc.Execute(context.Background(), ProcessReceiptInput{UserID: userID, ImageDataURI: testImage})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.Notice != NoticeExtractionPartial {
			t.Errorf("expected notice %q, got %q", NoticeExtractionPartial, output.Notice)
		}
		if output.Draft.Description != "Drogaria Pacheco" {
			t.Errorf("expected merchant fallback description, got %q", output.Draft.Description)
		}
		if output.Draft.Category != valueobject.LabelSaude {
			t.Errorf("expected keyword categorization to fill %s, got %q", valueobject.LabelSaude, output.Draft.Category)
		}
		if len(repo.records) != 1 || repo.records[0].Status != entity.ExtractionStatusPartial {
			t.Errorf("expected one partial audit record, got %+v", repo.records)
		}
		if len(repo.records[0].MissingFields) != 1 || repo.records[0].MissingFields[0] != "date" {
			t.Errorf("expected only date missing, got %v", repo.records[0].MissingFields)
		}
	})

	t.Run("audit failure never blocks the flow", func(t *testing.T) {
		uc := NewProcessReceiptUseCase(&stubExtractor{available: false}, &recordingExtractionRepo{
			err: errors.New("insert failed"),
		})

		output, err := uc.Execute(context.Background(), ProcessReceiptInput{UserID: userID, ImageDataURI: testImage})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Stage != entity.ReceiptStageConfirmation {
			t.Errorf("expected confirmation stage, got %s", output.Stage)
		}
	})
}
