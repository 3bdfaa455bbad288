package valueobject

import "testing"

func TestKeywordTable_Categorize(t *testing.T) {
	table := DefaultKeywordTable()

	t.Run("matches a known keyword", func(t *testing.T) {
		got := table.Categorize("Compra no Supermercado Extra")
		if got != LabelAlimentacao {
			t.Errorf("expected %s, got %s", LabelAlimentacao, got)
		}
	})

	t.Run("matching is case-insensitive", func(t *testing.T) {
		got := table.Categorize("FARMÁCIA SÃO PAULO")
		if got != LabelSaude {
			t.Errorf("expected %s, got %s", LabelSaude, got)
		}
	})

	t.Run("keyword anywhere in the text matches", func(t *testing.T) {
		got := table.Categorize("Posto Shell Gasolina")
		if got != LabelTransporte {
			t.Errorf("expected %s, got %s", LabelTransporte, got)
		}
	})

	t.Run("earlier table entry wins when multiple keywords match", func(t *testing.T) {
		// "uber" belongs to Transporte but "mercado" is listed first.
		got := table.Categorize("Uber até o Mercado Central")
		if got != LabelAlimentacao {
			t.Errorf("expected %s, got %s", LabelAlimentacao, got)
		}
	})

	t.Run("unmatched text falls into Outros", func(t *testing.T) {
		got := table.Categorize("transferência pix João")
		if got != LabelOutros {
			t.Errorf("expected %s, got %s", LabelOutros, got)
		}
	})

	t.Run("empty text falls into Outros", func(t *testing.T) {
		got := table.Categorize("")
		if got != LabelOutros {
			t.Errorf("expected %s, got %s", LabelOutros, got)
		}
	})
}

func TestNewKeywordTable_CopiesRules(t *testing.T) {
	keywords := []string{"mercado"}
	table := NewKeywordTable([]KeywordRule{{Label: LabelAlimentacao, Keywords: keywords}})

	keywords[0] = "cinema"

	if got := table.Categorize("mercado da esquina"); got != LabelAlimentacao {
		t.Errorf("expected %s after mutating the source slice, got %s", LabelAlimentacao, got)
	}
}

func TestIsValidCategoryLabel(t *testing.T) {
	for _, label := range CategoryLabels {
		if !IsValidCategoryLabel(label) {
			t.Errorf("expected %s to be valid", label)
		}
	}

	invalid := []string{"", "alimentação", "Mercado", "Viagens"}
	for _, label := range invalid {
		if IsValidCategoryLabel(label) {
			t.Errorf("expected %q to be invalid", label)
		}
	}
}
