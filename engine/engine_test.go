package engine

import (
	"testing"

	"github.com/extractly/duckling/rule"
	"github.com/extractly/duckling/token"
)

func digitRule() rule.Rule {
	return rule.Rule{
		Name:    "digit",
		Pattern: []rule.Item{rule.RX(`(\d+)`)},
		Production: func(nodes []*token.Node) (token.Data, bool) {
			m := nodes[0].Data.(token.RegexMatch)
			text, _ := m.Group(1)
			var v float64
			for _, c := range text {
				v = v*10 + float64(c-'0')
			}
			return token.Numeral{Value: v}, true
		},
	}
}

func sumRule() rule.Rule {
	return rule.Rule{
		Name:    "sum",
		Pattern: []rule.Item{rule.D(token.NumberDim), rule.RX(`\+`), rule.D(token.NumberDim)},
		Production: func(nodes []*token.Node) (token.Data, bool) {
			a := nodes[0].Data.(token.Numeral)
			b := nodes[2].Data.(token.Numeral)
			return token.Numeral{Value: a.Value + b.Value}, true
		},
	}
}

func TestParseFindsLeafMatches(t *testing.T) {
	st := Parse("there are 12 apples", []rule.Rule{digitRule()})
	var found bool
	for _, n := range st.AllNodes() {
		if num, ok := n.Data.(token.Numeral); ok && num.Value == 12 {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a Numeral(12) node, got %+v", st.AllNodes())
	}
}

// Composition across rounds: "sum" needs two Numeral nodes that only exist
// once the leaf "digit" rule has already run, so it can only fire on round
// two or later.
func TestParseComposesAcrossRounds(t *testing.T) {
	st := Parse("1+2", []rule.Rule{digitRule(), sumRule()})

	var gotSum bool
	for _, n := range st.AllNodes() {
		if num, ok := n.Data.(token.Numeral); ok && num.Value == 3 && n.RuleName == "sum" {
			gotSum = true
		}
	}
	if !gotSum {
		t.Fatalf("expected a composed sum(3) node, got %+v", st.AllNodes())
	}
}

// The sum rule's middle item is a literal "+" regex matched against the
// document text after the first operand; both it and the trailing Dim item
// must tolerate whitespace before them, matching document.IsAdjacent's
// "gap is all whitespace" rule.
func TestParseAllowsWhitespaceBetweenAdjacentItems(t *testing.T) {
	st := Parse("1 + 2", []rule.Rule{digitRule(), sumRule()})
	var gotSum bool
	for _, n := range st.AllNodes() {
		if num, ok := n.Data.(token.Numeral); ok && num.Value == 3 && n.RuleName == "sum" {
			gotSum = true
		}
	}
	if !gotSum {
		t.Fatalf("expected whitespace-separated operands to still compose, got %+v", st.AllNodes())
	}
}

// The engine dedups by (start, end, rule) across rounds; a rule that keeps
// matching the same span every round (because its own output doesn't
// change its input) must not produce the node more than once.
func TestParseDoesNotDuplicateNodesAcrossRounds(t *testing.T) {
	st := Parse("42", []rule.Rule{digitRule()})
	count := 0
	for _, n := range st.AllNodes() {
		if n.RuleName == "digit" {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("expected exactly one digit node for a single non-ambiguous match, got %d", count)
	}
}

func TestParseWithStatsReportsRoundsRun(t *testing.T) {
	_, rounds := ParseWithStats("1+2", []rule.Rule{digitRule(), sumRule()})
	if rounds < 1 {
		t.Fatalf("expected at least one saturation round, got %d", rounds)
	}
	if rounds > 10 {
		t.Fatalf("rounds = %d, exceeds the saturation ceiling", rounds)
	}
}

func TestParseWithNoMatchesReturnsEmptyStash(t *testing.T) {
	st := Parse("no numbers here", []rule.Rule{digitRule()})
	if !st.IsEmpty() {
		t.Fatalf("expected an empty stash, got %+v", st.AllNodes())
	}
}

func TestExtractAtomSkipsShortRuns(t *testing.T) {
	if _, ok := extractAtom(`\d+`, 3); ok {
		t.Fatalf("a pattern with no literal run >= minLen must report no atom")
	}
	atom, ok := extractAtom(`hello\d+`, 3)
	if !ok || atom != "hello" {
		t.Fatalf("extractAtom(`hello\\d+`) = (%q, %v), want (hello, true)", atom, ok)
	}
}
