// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/zen-finance/backend/internal/application/usecase/receipt"
	domainerror "github.com/zen-finance/backend/internal/domain/error"
	"github.com/zen-finance/backend/internal/integration/entrypoint/dto"
	"github.com/zen-finance/backend/internal/integration/entrypoint/middleware"
)

// ReceiptController handles the receipt intake endpoints.
type ReceiptController struct {
	processUseCase *receipt.ProcessReceiptUseCase
	confirmUseCase *receipt.ConfirmReceiptUseCase
}

// NewReceiptController creates a new receipt controller instance.
func NewReceiptController(
	processUseCase *receipt.ProcessReceiptUseCase,
	confirmUseCase *receipt.ConfirmReceiptUseCase,
) *ReceiptController {
	return &ReceiptController{
		processUseCase: processUseCase,
		confirmUseCase: confirmUseCase,
	}
}

// Process handles POST /receipts/process requests. The response always
// carries the confirmation stage draft, even when extraction failed.
func (c *ReceiptController) Process(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.ProcessReceiptRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingReceiptImage),
		})
		return
	}

	input := receipt.ProcessReceiptInput{
		UserID:       userID,
		ImageDataURI: req.Image,
	}

	output, err := c.processUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleReceiptError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProcessReceiptResponse(output.Stage, output.Draft, output.Notice))
}

// Confirm handles POST /receipts/confirm requests. This is the only call in
// the intake flow that writes an expense.
func (c *ReceiptController) Confirm(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.ConfirmReceiptRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeIncompleteReceiptDraft),
		})
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid date format, expected YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeIncompleteReceiptDraft),
		})
		return
	}

	amount := decimal.NewFromFloat(req.Amount)

	input := receipt.ConfirmReceiptInput{
		UserID:      userID,
		Date:        &date,
		Amount:      &amount,
		Description: req.Description,
		Category:    req.Category,
		Photo:       req.Photo,
	}

	output, err := c.confirmUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleReceiptError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.CreateExpenseResponse{
		Expense: dto.ToExpenseResponse(output.Expense),
		Message: output.Message,
	})
}

// handleReceiptError handles receipt errors and returns appropriate HTTP
// responses. Confirmation reuses expense validation, so expense errors can
// surface here as well.
func (c *ReceiptController) handleReceiptError(ctx *gin.Context, err error) {
	var receiptErr *domainerror.ReceiptError
	if errors.As(err, &receiptErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: receiptErr.Message,
			Code:  string(receiptErr.Code),
		})
		return
	}

	var expenseErr *domainerror.ExpenseError
	if errors.As(err, &expenseErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: expenseErr.Message,
			Code:  string(expenseErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
