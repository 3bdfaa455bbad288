// Package valueobject defines immutable value objects and the pure
// computations of the domain layer.
package valueobject

import "strings"

// Fixed category labels surfaced to users and validated at input boundaries.
const (
	LabelAlimentacao = "Alimentação"
	LabelTransporte  = "Transporte"
	LabelSaude       = "Saúde"
	LabelLazer       = "Lazer"
	LabelContasFixas = "Contas Fixas"
	LabelEducacao    = "Educação"
	LabelOutros      = "Outros"
)

// CategoryLabels lists the fixed category enumeration in display order.
var CategoryLabels = []string{
	LabelAlimentacao,
	LabelTransporte,
	LabelSaude,
	LabelLazer,
	LabelContasFixas,
	LabelEducacao,
	LabelOutros,
}

// IsValidCategoryLabel reports whether the given label is part of the fixed
// category enumeration.
func IsValidCategoryLabel(label string) bool {
	for _, l := range CategoryLabels {
		if l == label {
			return true
		}
	}
	return false
}

// KeywordRule associates a category label with its matching keywords.
type KeywordRule struct {
	Label    string
	Keywords []string
}

// KeywordTable is an ordered, immutable category-to-keywords table.
// Table order is the matching priority order: the first rule owning a
// keyword contained in the input wins.
type KeywordTable struct {
	rules []KeywordRule
}

// NewKeywordTable creates a KeywordTable from the given rules. The rules
// slice is copied so callers cannot mutate the table afterwards.
func NewKeywordTable(rules []KeywordRule) KeywordTable {
	copied := make([]KeywordRule, len(rules))
	for i, r := range rules {
		copied[i] = KeywordRule{
			Label:    r.Label,
			Keywords: append([]string(nil), r.Keywords...),
		}
	}
	return KeywordTable{rules: copied}
}

// DefaultKeywordTable returns the built-in keyword table used for automatic
// categorization of merchant and description text.
func DefaultKeywordTable() KeywordTable {
	return NewKeywordTable([]KeywordRule{
		{Label: LabelAlimentacao, Keywords: []string{"mercado", "supermercado", "padaria", "restaurante", "lanchonete", "açougue", "hortifruti"}},
		{Label: LabelSaude, Keywords: []string{"farmácia", "drogaria", "hospital", "clínica", "médico", "dentista"}},
		{Label: LabelTransporte, Keywords: []string{"uber", "99", "gasolina", "posto", "combustível", "ônibus", "metrô", "estacionamento"}},
		{Label: LabelLazer, Keywords: []string{"shopping", "cinema", "teatro", "parque", "roupas", "calçados", "livro"}},
		{Label: LabelContasFixas, Keywords: []string{"água", "luz", "energia", "aluguel", "telefone", "internet", "condomínio"}},
		{Label: LabelEducacao, Keywords: []string{"escola", "faculdade", "curso", "livro", "material escolar"}},
		{Label: LabelOutros, Keywords: nil},
	})
}

// Categorize maps free text (typically a merchant name) to a category
// label. The text is lowercased and matched against the table in priority
// order; the first category whose keyword list contains a substring of the
// text wins. Text matching no keyword falls into Outros.
func (t KeywordTable) Categorize(text string) string {
	lowered := strings.ToLower(text)

	for _, rule := range t.rules {
		for _, keyword := range rule.Keywords {
			if strings.Contains(lowered, keyword) {
				return rule.Label
			}
		}
	}

	return LabelOutros
}
