package locale

import (
	"testing"

	"github.com/extractly/duckling/token"
)

func TestLocaleString(t *testing.T) {
	if English.String() != "en" {
		t.Fatalf("English.String() = %q, want en", English.String())
	}
	regioned := Locale{Lang: "en", Region: "US"}
	if regioned.String() != "en-US" {
		t.Fatalf("regioned.String() = %q, want en-US", regioned.String())
	}
}

func TestSupportedDimensionsUnknownLocale(t *testing.T) {
	if dims := SupportedDimensions(Locale{Lang: "xx"}); dims != nil {
		t.Fatalf("expected nil dims for an unsupported locale, got %v", dims)
	}
}

// Requesting TimeDim alone must pull in every dimension Time's grammar
// depends on (Number, Ordinal, Duration, TimeGrain), since "from July 13
// to 15" needs Number/Ordinal nodes in the stash before any Time rule can
// consume them.
func TestRulesClosesOverDimensionDependencies(t *testing.T) {
	rules := Rules(English, []token.Dimension{token.TimeDim})

	names := make(map[string]bool)
	for _, r := range rules {
		names[r.Name] = true
	}
	if !names["integer (0..9)"] {
		t.Fatalf("TimeDim's rule set is missing a Number dependency rule")
	}
	if !names["day of week"] {
		t.Fatalf("TimeDim's rule set is missing its own Time rules")
	}
}

func TestRulesEmptyDimsMeansEverySupportedDimension(t *testing.T) {
	all := Rules(Locale{Lang: "en", Region: "empty-dims-test"}, nil)
	explicit := Rules(Locale{Lang: "en", Region: "empty-dims-test"}, SupportedDimensions(English))
	if len(all) != len(explicit) {
		t.Fatalf("Rules(nil) produced %d rules, Rules(every supported dim) produced %d", len(all), len(explicit))
	}
}

// Rules caches by (locale, dims) key; a second call with the same key must
// return the exact same backing slice, not rebuild it.
func TestRulesCachesByKey(t *testing.T) {
	loc := Locale{Lang: "en", Region: "cache-test"}
	dims := []token.Dimension{token.NumberDim}
	first := Rules(loc, dims)
	second := Rules(loc, dims)
	if len(first) != len(second) {
		t.Fatalf("cached Rules() calls returned different lengths")
	}
	if &first[0] != &second[0] {
		t.Fatalf("expected the cache to return the same backing array on a repeat call")
	}
}

func TestRulesDependencyOrderPrecedesDependents(t *testing.T) {
	rules := Rules(Locale{Lang: "en", Region: "order-test"}, []token.Dimension{token.DurationDim})

	numberIdx, durationIdx := -1, -1
	for i, r := range rules {
		switch {
		case numberIdx == -1 && r.Name == "integer (0..9)":
			numberIdx = i
		case durationIdx == -1 && r.Name == "<integer> <unit-of-duration>":
			durationIdx = i
		}
	}
	if numberIdx == -1 {
		t.Fatalf("DurationDim's compiled rules must include its NumberDim dependency")
	}
	if durationIdx != -1 && durationIdx < numberIdx {
		t.Fatalf("a dependent rule (index %d) must not precede its dependency (index %d)", durationIdx, numberIdx)
	}
}
