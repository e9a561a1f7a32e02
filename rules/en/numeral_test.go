package en

import (
	"testing"

	"github.com/extractly/duckling/engine"
	"github.com/extractly/duckling/locale"
	"github.com/extractly/duckling/resolve"
	"github.com/extractly/duckling/token"
)

func bestNumeral(text string) (token.Numeral, bool) {
	rules := locale.Rules(locale.English, []token.Dimension{token.NumberDim})
	st := engine.Parse(text, rules)
	var best *token.Node
	for _, n := range st.AllNodes() {
		if _, ok := n.Data.(token.Numeral); ok {
			if best == nil || n.Range.Len() > best.Range.Len() {
				best = n
			}
		}
	}
	if best == nil {
		return token.Numeral{}, false
	}
	return best.Data.(token.Numeral), true
}

// Numeral round-trip invariant (spec.md §8): spelled-out and digit forms
// of the same integer must resolve to the identical value.
func TestNumeralRoundTrip(t *testing.T) {
	cases := []struct {
		text string
		want float64
	}{
		{"five hundred twenty three", 523},
		{"thirty three", 33},
		{"100K", 100000},
		{"forty five", 45},
		{"nine hundred ninety nine", 999},
		{"1,234,567", 1234567},
		{"-42", -42},
		{"1000000000", 1000000000},
	}
	for _, c := range cases {
		num, ok := bestNumeral(c.text)
		if !ok {
			t.Errorf("%q: expected a numeral match", c.text)
			continue
		}
		if num.Value != c.want {
			t.Errorf("%q = %v, want %v", c.text, num.Value, c.want)
		}
	}
}

func TestNegativeNumberRule(t *testing.T) {
	num, ok := bestNumeral("minus 7")
	if !ok || num.Value != -7 {
		t.Fatalf("'minus 7' = (%v, %v), want (-7, true)", num.Value, ok)
	}
}

func TestOrdinalDigits(t *testing.T) {
	rules := locale.Rules(locale.English, []token.Dimension{token.OrdinalDim})
	st := engine.Parse("22nd", rules)
	var found bool
	for _, n := range st.AllNodes() {
		if o, ok := n.Data.(token.Ordinal); ok && o.Value == 22 {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected an ordinal(22) node for '22nd'")
	}
}

func TestOrdinalWords(t *testing.T) {
	rules := locale.Rules(locale.English, []token.Dimension{token.OrdinalDim})
	st := engine.Parse("third", rules)
	var found bool
	for _, n := range st.AllNodes() {
		if o, ok := n.Data.(token.Ordinal); ok && o.Value == 3 {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected an ordinal(3) node for 'third'")
	}
}

func TestDollarAmountResolves(t *testing.T) {
	rules := locale.Rules(locale.English, []token.Dimension{token.AmountOfMoneyDim})
	st := engine.Parse("$42.50", rules)
	nodes := st.AllNodes()
	if len(nodes) == 0 {
		t.Fatalf("expected a money node for '$42.50'")
	}
	ctx := resolve.Context{Locale: locale.English}
	e, ok := resolve.Resolve(nodes[0], ctx, resolve.Options{}, "$42.50")
	if !ok {
		t.Fatalf("expected '$42.50' to resolve")
	}
	if v, _ := e.Value["value"].(float64); v != 42.5 {
		t.Fatalf("value = %v, want 42.5", e.Value["value"])
	}
	if u, _ := e.Value["unit"].(string); u != "USD" {
		t.Fatalf("unit = %v, want USD", e.Value["unit"])
	}
}

func TestDurationCompositeCombinesGrains(t *testing.T) {
	rules := locale.Rules(locale.English, []token.Dimension{token.DurationDim})
	st := engine.Parse("2 hours and 30 minutes", rules)

	var best *token.Node
	for _, n := range st.AllNodes() {
		if _, ok := n.Data.(token.Duration); ok {
			if best == nil || n.Range.Len() > best.Range.Len() {
				best = n
			}
		}
	}
	if best == nil {
		t.Fatalf("expected a composite duration node")
	}
	d := best.Data.(token.Duration)
	if d.Grain != token.Minute || d.Value != 150 {
		t.Fatalf("'2 hours and 30 minutes' = %+v, want {150 Minute}", d)
	}
}
