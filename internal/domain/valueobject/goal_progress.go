package valueobject

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// maxDisplayPercent caps the progress-bar value; the raw percent is never
// clamped.
const maxDisplayPercent = 100.0

// GoalProgress holds the evaluation of a category's spending against its
// configured limit.
type GoalProgress struct {
	Current        decimal.Decimal
	Percent        float64 // raw, can exceed 100
	DisplayPercent float64 // clamped at 100 for progress-bar rendering
	Exceeded       bool
	AlertText      string // empty unless Exceeded
}

// EvaluateGoal computes the progress of a category's monthly spending
// against the configured limit. The limit must be positive; that is
// enforced where goals are constructed, not here.
//
// Spending exactly equal to the limit is not exceeded.
func EvaluateGoal(category string, limit decimal.Decimal, byCategory map[string]decimal.Decimal) GoalProgress {
	current := decimal.Zero
	if amount, ok := byCategory[category]; ok {
		current = amount
	}

	percent, _ := current.Mul(decimal.NewFromInt(100)).Div(limit).Float64()

	displayPercent := percent
	if displayPercent > maxDisplayPercent {
		displayPercent = maxDisplayPercent
	}

	progress := GoalProgress{
		Current:        current,
		Percent:        percent,
		DisplayPercent: displayPercent,
		Exceeded:       current.GreaterThan(limit),
	}

	if progress.Exceeded {
		progress.AlertText = GoalAlertMessage(category)
	}

	return progress
}

// GoalAlertMessage builds the warning shown when a category's limit has
// been exceeded.
func GoalAlertMessage(category string) string {
	return fmt.Sprintf("Atenção! Você ultrapassou a meta da categoria %s.", category)
}

// ExpenseSavedMessage is the notice returned after an expense is persisted.
const ExpenseSavedMessage = "Gasto registrado com sucesso! Já atualizei seu painel financeiro."
