// Package adapters provides implementations for external service integrations.
package adapters

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"github.com/shopspring/decimal"
	"google.golang.org/api/option"

	"github.com/zen-finance/backend/internal/application/adapter"
	"github.com/zen-finance/backend/internal/domain/valueobject"
)

// GeminiReceiptExtractor implements the ReceiptExtractor using Google Gemini
// vision capabilities.
type GeminiReceiptExtractor struct {
	apiKey    string
	modelName string
}

// NewGeminiReceiptExtractor creates a new Gemini receipt extractor instance.
func NewGeminiReceiptExtractor(apiKey string) *GeminiReceiptExtractor {
	return &GeminiReceiptExtractor{
		apiKey:    apiKey,
		modelName: "gemini-2.5-flash-lite",
	}
}

// IsAvailable checks if the Gemini service is available and properly configured.
func (s *GeminiReceiptExtractor) IsAvailable() bool {
	return s.apiKey != ""
}

// Extract analyzes a receipt image and returns the extracted expense fields.
func (s *GeminiReceiptExtractor) Extract(ctx context.Context, imageDataURI string) (*adapter.ReceiptFields, error) {
	if !s.IsAvailable() {
		return nil, fmt.Errorf("gemini service is not configured")
	}

	format, imageData, err := decodeDataURI(imageDataURI)
	if err != nil {
		return nil, fmt.Errorf("failed to decode receipt image: %w", err)
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(s.modelName)
	model.SetTemperature(0.1)
	model.ResponseMIMEType = "application/json"

	resp, err := model.GenerateContent(ctx,
		genai.ImageData(format, imageData),
		genai.Text(s.buildPrompt()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	fields, err := s.parseResponse(resp)
	if err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return fields, nil
}

// buildPrompt creates the extraction prompt for Gemini.
func (s *GeminiReceiptExtractor) buildPrompt() string {
	var sb strings.Builder

	sb.WriteString(`Voce e um assistente que extrai dados de recibos e notas fiscais brasileiras. Analise a imagem e extraia os campos do gasto.

Responda com um unico objeto JSON:
{
  "amount": "valor total como string decimal, ex: \"142.50\", ou null se ilegivel",
  "date": "data da compra em formato YYYY-MM-DD, ou null se ilegivel",
  "merchant": "nome do estabelecimento, ou \"\" se ilegivel",
  "description": "descricao curta do gasto em Portugues, ou \"\" se ilegivel",
  "category": "uma das categorias abaixo, ou \"\" se incerto",
  "confidence": 0.0-1.0
}

CATEGORIAS VALIDAS (use EXATAMENTE estes nomes):
`)

	for _, label := range valueobject.CategoryLabels {
		sb.WriteString("- " + label + "\n")
	}

	sb.WriteString(`
REGRAS:
- O valor total e o valor final pago, incluindo impostos e taxas
- Use ponto como separador decimal no campo amount
- Nunca invente dados: campos ilegiveis devem ser null ou vazios
- confidence reflete a legibilidade geral do recibo

FORMATO DE RESPOSTA: Retorne apenas o objeto JSON, sem texto adicional.
`)

	return sb.String()
}

// geminiReceiptResponse represents the raw response from Gemini.
type geminiReceiptResponse struct {
	Amount      *string `json:"amount"`
	Date        *string `json:"date"`
	Merchant    string  `json:"merchant"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Confidence  float64 `json:"confidence"`
}

// parseResponse parses the Gemini response into ReceiptFields.
func (s *GeminiReceiptExtractor) parseResponse(resp *genai.GenerateContentResponse) (*adapter.ReceiptFields, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return nil, fmt.Errorf("empty response from gemini")
	}

	var textContent string
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			textContent = string(text)
			break
		}
	}

	if textContent == "" {
		return nil, fmt.Errorf("no text content in response")
	}

	// Clean the response (remove markdown code blocks if present)
	textContent = strings.TrimPrefix(textContent, "```json")
	textContent = strings.TrimPrefix(textContent, "```")
	textContent = strings.TrimSuffix(textContent, "```")
	textContent = strings.TrimSpace(textContent)

	var raw geminiReceiptResponse
	if err := json.Unmarshal([]byte(textContent), &raw); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w, content: %s", err, textContent)
	}

	fields := &adapter.ReceiptFields{
		Merchant:    strings.TrimSpace(raw.Merchant),
		Description: strings.TrimSpace(raw.Description),
		Confidence:  raw.Confidence,
	}

	if raw.Amount != nil && *raw.Amount != "" {
		if amount, err := decimal.NewFromString(*raw.Amount); err == nil && !amount.IsNegative() {
			fields.Amount = &amount
		}
	}

	if raw.Date != nil && *raw.Date != "" {
		if date, err := time.Parse("2006-01-02", *raw.Date); err == nil {
			fields.Date = &date
		}
	}

	// Only pass through labels from the fixed enumeration; anything else is
	// left for the keyword fallback.
	if valueobject.IsValidCategoryLabel(raw.Category) {
		fields.Category = raw.Category
	}

	return fields, nil
}

// decodeDataURI splits a base64 data-URI into its image format and raw bytes.
func decodeDataURI(dataURI string) (string, []byte, error) {
	header, payload, found := strings.Cut(dataURI, ",")
	if !found {
		return "", nil, fmt.Errorf("malformed data URI")
	}

	format := "jpeg"
	if strings.HasPrefix(header, "data:image/") {
		mediaType := strings.TrimPrefix(header, "data:image/")
		if idx := strings.IndexAny(mediaType, ";"); idx >= 0 {
			mediaType = mediaType[:idx]
		}
		if mediaType != "" {
			format = mediaType
		}
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("invalid base64 payload: %w", err)
	}

	return format, data, nil
}
