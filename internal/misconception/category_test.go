package misconception

import "testing"

func TestCategorize_FirstMatchWins(t *testing.T) {
	rules := []CategoryRule{
		{"sign", "signs and negatives"},
		{"fraction", "fractions"},
	}

	tests := []struct {
		in   string
		want string
	}{
		{"sign error when subtracting", "signs and negatives"},
		{"fraction sign confusion", "signs and negatives"}, // "sign" rule listed first
		{"adds fraction denominators", "fractions"},
		{"Drops Negative Sign", "signs and negatives"}, // case-insensitive
	}
	for _, tt := range tests {
		if got := Categorize(tt.in, rules); got != tt.want {
			t.Errorf("Categorize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCategorize_FallbackFirstSignificantWord(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"the distributive property", "distributive"},
		{"misconception about slope", "slope"},
		{"off_by_one indexing", "off"},
		{"", "general"},
		{"the a of", "general"},
	}
	for _, tt := range tests {
		if got := Categorize(tt.in, nil); got != tt.want {
			t.Errorf("Categorize(%q, nil) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCategorize_DefaultRulesAreDeterministic(t *testing.T) {
	rules := DefaultCategoryRules()
	first := Categorize("unit conversion slip", rules)
	for i := 0; i < 5; i++ {
		if got := Categorize("unit conversion slip", rules); got != first {
			t.Fatalf("Categorize not deterministic: %q vs %q", first, got)
		}
	}
}
