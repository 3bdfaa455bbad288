// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/zen-finance/backend/internal/application/usecase/goal"
	"github.com/zen-finance/backend/internal/domain/entity"
)

// CreateGoalRequest represents the request body for goal creation.
type CreateGoalRequest struct {
	Category    string  `json:"category" binding:"required"`
	LimitAmount float64 `json:"limit_amount" binding:"required,gt=0"`
}

// GoalResponse represents a single goal in API responses. Progress fields
// are only populated on list responses, where the month is evaluated.
type GoalResponse struct {
	ID             string    `json:"id"`
	UserID         string    `json:"user_id"`
	Category       string    `json:"category"`
	LimitAmount    string    `json:"limit_amount"`
	AlertSent      bool      `json:"alert_sent"`
	CurrentAmount  string    `json:"current_amount,omitempty"`
	Percent        float64   `json:"percent,omitempty"`
	DisplayPercent float64   `json:"display_percent,omitempty"`
	Exceeded       bool      `json:"exceeded,omitempty"`
	AlertText      string    `json:"alert_text,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// GoalListResponse represents the response for listing goals.
type GoalListResponse struct {
	Goals []GoalResponse `json:"goals"`
}

// ToGoalResponse converts a domain Goal entity to a GoalResponse DTO.
func ToGoalResponse(g *entity.Goal) GoalResponse {
	return GoalResponse{
		ID:          g.ID.String(),
		UserID:      g.UserID.String(),
		Category:    g.Category,
		LimitAmount: g.LimitAmount.StringFixed(2),
		AlertSent:   g.AlertSent,
		CreatedAt:   g.CreatedAt,
		UpdatedAt:   g.UpdatedAt,
	}
}

// ToGoalWithProgressResponse converts a goal and its evaluation to a GoalResponse DTO.
func ToGoalWithProgressResponse(gp goal.GoalWithProgress) GoalResponse {
	response := ToGoalResponse(gp.Goal)
	response.CurrentAmount = gp.Progress.Current.StringFixed(2)
	response.Percent = gp.Progress.Percent
	response.DisplayPercent = gp.Progress.DisplayPercent
	response.Exceeded = gp.Progress.Exceeded
	response.AlertText = gp.Progress.AlertText
	return response
}

// ToGoalListResponse converts evaluated goals to GoalListResponse.
func ToGoalListResponse(goals []goal.GoalWithProgress) GoalListResponse {
	out := make([]GoalResponse, len(goals))
	for i, gp := range goals {
		out[i] = ToGoalWithProgressResponse(gp)
	}
	return GoalListResponse{
		Goals: out,
	}
}
