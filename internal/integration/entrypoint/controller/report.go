// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/zen-finance/backend/internal/application/usecase/report"
	domainerror "github.com/zen-finance/backend/internal/domain/error"
	"github.com/zen-finance/backend/internal/integration/entrypoint/dto"
	"github.com/zen-finance/backend/internal/integration/entrypoint/middleware"
)

// ReportController handles monthly report endpoints.
type ReportController struct {
	requestUseCase *report.RequestMonthlyReportUseCase
}

// NewReportController creates a new report controller instance.
func NewReportController(requestUseCase *report.RequestMonthlyReportUseCase) *ReportController {
	return &ReportController{
		requestUseCase: requestUseCase,
	}
}

// RequestMonthly handles POST /reports/monthly requests. The optional month
// query parameter (YYYY-MM) defaults to the current month. The report email
// is queued and sent asynchronously.
func (c *ReportController) RequestMonthly(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	referenceDate := time.Now().UTC()
	if monthParam := ctx.Query("month"); monthParam != "" {
		parsed, err := time.Parse("2006-01", monthParam)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid month format, expected YYYY-MM",
			})
			return
		}
		referenceDate = parsed
	}

	output, err := c.requestUseCase.Execute(ctx.Request.Context(), report.RequestMonthlyReportInput{
		UserID:        userID,
		ReferenceDate: referenceDate,
	})
	if err != nil {
		var authErr *domainerror.AuthError
		if errors.As(err, &authErr) && authErr.Code == domainerror.ErrCodeUserNotFound {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
				Error: authErr.Message,
				Code:  string(authErr.Code),
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to queue monthly report",
		})
		return
	}

	ctx.JSON(http.StatusAccepted, dto.MonthlyReportResponse{
		JobID:   output.JobID.String(),
		Message: "Seu resumo financeiro está sendo preparado e chegará por email.",
	})
}
