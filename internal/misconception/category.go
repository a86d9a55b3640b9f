package misconception

import "strings"

// CategoryRule maps a keyword to a display category. Rules are evaluated in
// order; the first keyword contained in the misconception type wins.
type CategoryRule struct {
	Keyword  string
	Category string
}

// DefaultCategoryRules groups misconception types into display categories.
// Order matters: more specific keywords come first.
func DefaultCategoryRules() []CategoryRule {
	return []CategoryRule{
		{"sign", "signs and negatives"},
		{"negative", "signs and negatives"},
		{"fraction", "fractions"},
		{"decimal", "decimals"},
		{"percent", "percentages"},
		{"unit", "units and conversion"},
		{"conver", "units and conversion"},
		{"order", "order of operations"},
		{"formula", "formulas"},
		{"definition", "definitions"},
		{"confus", "concept confusion"},
		{"overgeneral", "overgeneralization"},
		{"invert", "inversion errors"},
		{"off-by-one", "counting errors"},
		{"count", "counting errors"},
	}
}

// stopWords are skipped when falling back to the first significant word.
var stopWords = map[string]bool{
	"a": true, "an": true, "the": true, "of": true, "in": true, "on": true,
	"to": true, "for": true, "with": true, "and": true, "or": true,
	"misconception": true, "error": true, "mistake": true, "about": true,
}

// Categorize resolves a misconception type to a display category using
// first-match-wins over the rule list. When no rule matches, the first
// significant word of the type becomes its own category; an empty type
// falls back to "general".
func Categorize(misconceptionType string, rules []CategoryRule) string {
	lowered := strings.ToLower(misconceptionType)

	for _, rule := range rules {
		if strings.Contains(lowered, rule.Keyword) {
			return rule.Category
		}
	}

	for _, word := range strings.FieldsFunc(lowered, func(r rune) bool {
		return r == ' ' || r == '-' || r == '_' || r == '/'
	}) {
		if !stopWords[word] {
			return word
		}
	}
	return "general"
}
