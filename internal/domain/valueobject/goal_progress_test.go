package valueobject

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestEvaluateGoal(t *testing.T) {
	limit := decimal.NewFromInt(100)

	t.Run("no spending yields zero progress", func(t *testing.T) {
		progress := EvaluateGoal(LabelLazer, limit, map[string]decimal.Decimal{})

		if !progress.Current.IsZero() {
			t.Errorf("expected zero current, got %s", progress.Current)
		}
		if progress.Percent != 0 {
			t.Errorf("expected 0 percent, got %f", progress.Percent)
		}
		if progress.Exceeded {
			t.Error("expected not exceeded")
		}
		if progress.AlertText != "" {
			t.Errorf("expected empty alert text, got %q", progress.AlertText)
		}
	})

	t.Run("partial spending", func(t *testing.T) {
		progress := EvaluateGoal(LabelLazer, limit, map[string]decimal.Decimal{
			LabelLazer: decimal.NewFromInt(25),
		})

		if progress.Percent != 25 {
			t.Errorf("expected 25 percent, got %f", progress.Percent)
		}
		if progress.DisplayPercent != 25 {
			t.Errorf("expected display 25, got %f", progress.DisplayPercent)
		}
		if progress.Exceeded {
			t.Error("expected not exceeded")
		}
	})

	t.Run("spending exactly at the limit is not exceeded", func(t *testing.T) {
		progress := EvaluateGoal(LabelLazer, limit, map[string]decimal.Decimal{
			LabelLazer: decimal.NewFromInt(100),
		})

		if progress.Percent != 100 {
			t.Errorf("expected 100 percent, got %f", progress.Percent)
		}
		if progress.Exceeded {
			t.Error("spending equal to the limit must not be exceeded")
		}
		if progress.AlertText != "" {
			t.Errorf("expected empty alert text, got %q", progress.AlertText)
		}
	})

	t.Run("spending over the limit keeps raw percent and clamps display", func(t *testing.T) {
		progress := EvaluateGoal(LabelAlimentacao, limit, map[string]decimal.Decimal{
			LabelAlimentacao: decimal.NewFromInt(150),
		})

		if progress.Percent != 150 {
			t.Errorf("expected raw percent 150, got %f", progress.Percent)
		}
		if progress.DisplayPercent != 100 {
			t.Errorf("expected display percent clamped at 100, got %f", progress.DisplayPercent)
		}
		if !progress.Exceeded {
			t.Error("expected exceeded")
		}

		want := "Atenção! Você ultrapassou a meta da categoria Alimentação."
		if progress.AlertText != want {
			t.Errorf("expected alert %q, got %q", want, progress.AlertText)
		}
	})

	t.Run("only the goal's own category counts", func(t *testing.T) {
		progress := EvaluateGoal(LabelLazer, limit, map[string]decimal.Decimal{
			LabelAlimentacao: decimal.NewFromInt(500),
			LabelLazer:       decimal.NewFromInt(10),
		})

		if progress.Percent != 10 {
			t.Errorf("expected 10 percent, got %f", progress.Percent)
		}
	})
}

func TestGoalAlertMessage(t *testing.T) {
	got := GoalAlertMessage(LabelTransporte)
	want := "Atenção! Você ultrapassou a meta da categoria Transporte."
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}
