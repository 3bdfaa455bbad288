// Package dto defines data transfer objects for API requests and responses.
package dto

// MonthlyReportResponse represents the response for a queued monthly report.
type MonthlyReportResponse struct {
	JobID   string `json:"job_id"`
	Message string `json:"message"`
}
