// Package locale identifies a (language, region) pair and caches the
// compiled rule vector for each (locale, dimension-set) combination a
// process actually uses.
package locale

import (
	"sort"
	"strings"
	"sync"

	"github.com/extractly/duckling/rule"
	"github.com/extractly/duckling/rules/en"
	"github.com/extractly/duckling/token"
)

// Locale is a language tag with an optional region refinement ("en",
// "en-US").
type Locale struct {
	Lang   string
	Region string
}

// English is the zero-region default for lang "en".
var English = Locale{Lang: "en"}

// String renders the BCP-47-flavored tag used in log lines and cache keys.
func (l Locale) String() string {
	if l.Region == "" {
		return l.Lang
	}
	return l.Lang + "-" + l.Region
}

// SupportedDimensions lists every dimension a locale has rules for.
func SupportedDimensions(l Locale) []token.Dimension {
	switch l.Lang {
	case "en":
		return []token.Dimension{
			token.NumberDim, token.OrdinalDim, token.TemperatureDim, token.DistanceDim,
			token.VolumeDim, token.QuantityDim, token.AmountOfMoneyDim, token.EmailDim,
			token.PhoneNumberDim, token.URLDim, token.CreditCardNumberDim,
			token.TimeGrainDim, token.DurationDim, token.TimeDim,
		}
	default:
		return nil
	}
}

// dimensionDependencies lists the dimensions whose rules must also be
// compiled in for dim's own rules to have something to match against
// (Duration's "<integer> <unit>" rule needs TimeGrain nodes in the stash,
// Time's weekday/duration composition rules need Duration and Ordinal, and
// so on up the chain).
func dimensionDependencies(dim token.Dimension) []token.Dimension {
	switch dim {
	case token.TemperatureDim, token.DistanceDim, token.VolumeDim, token.QuantityDim, token.AmountOfMoneyDim:
		return []token.Dimension{token.NumberDim}
	case token.DurationDim:
		return []token.Dimension{token.NumberDim, token.TimeGrainDim}
	case token.TimeDim:
		return []token.Dimension{token.NumberDim, token.OrdinalDim, token.DurationDim, token.TimeGrainDim}
	default:
		return nil
	}
}

func addWithDeps(dim token.Dimension, needed []token.Dimension, seen map[token.Dimension]bool) []token.Dimension {
	if seen[dim] {
		return needed
	}
	for _, dep := range dimensionDependencies(dim) {
		needed = addWithDeps(dep, needed, seen)
	}
	seen[dim] = true
	return append(needed, dim)
}

func rulesForDim(dim token.Dimension) []rule.Rule {
	switch dim {
	case token.NumberDim:
		return en.NumeralRules()
	case token.OrdinalDim:
		return en.OrdinalRules()
	case token.TemperatureDim:
		return en.TemperatureRules()
	case token.DistanceDim:
		return en.DistanceRules()
	case token.VolumeDim:
		return en.VolumeRules()
	case token.QuantityDim:
		return en.QuantityRules()
	case token.AmountOfMoneyDim:
		return en.MoneyRules()
	case token.EmailDim:
		return en.EmailRules()
	case token.PhoneNumberDim:
		return en.PhoneNumberRules()
	case token.URLDim:
		return en.URLRules()
	case token.CreditCardNumberDim:
		return en.CreditCardRules()
	case token.TimeGrainDim:
		return en.TimeGrainRules()
	case token.DurationDim:
		return en.DurationRules()
	case token.TimeDim:
		return en.TimeRules()
	default:
		return nil
	}
}

// rulesUncached closes dims over their dependencies (an empty dims means
// "every supported dimension") and concatenates each needed dimension's
// rule table, in dependency order so base grammars (numeral, time-grain)
// always precede the grammars that build on them.
func rulesUncached(l Locale, dims []token.Dimension) []rule.Rule {
	var needed []token.Dimension
	seen := make(map[token.Dimension]bool)
	for _, d := range dims {
		needed = addWithDeps(d, needed, seen)
	}
	if len(needed) == 0 {
		needed = SupportedDimensions(l)
	}

	var rules []rule.Rule
	for _, d := range needed {
		rules = append(rules, rulesForDim(d)...)
	}
	return rules
}

var (
	ruleCacheMu sync.RWMutex
	ruleCache   = make(map[string][]rule.Rule)
)

func cacheKey(l Locale, dims []token.Dimension) string {
	sorted := make([]string, len(dims))
	for i, d := range dims {
		sorted[i] = string(d)
	}
	sort.Strings(sorted)
	return l.String() + "|" + strings.Join(sorted, ",")
}

// Rules returns the compiled rule vector for (l, dims), building and
// caching it on first use. The returned slice must not be mutated by
// callers; it is shared across every caller that hits the cache.
func Rules(l Locale, dims []token.Dimension) []rule.Rule {
	key := cacheKey(l, dims)

	ruleCacheMu.RLock()
	cached, ok := ruleCache[key]
	ruleCacheMu.RUnlock()
	if ok {
		return cached
	}

	ruleCacheMu.Lock()
	defer ruleCacheMu.Unlock()
	if cached, ok := ruleCache[key]; ok {
		return cached
	}
	built := rulesUncached(l, dims)
	ruleCache[key] = built
	return built
}
