// Package duckling extracts structured, resolved entities from free-form
// text: numbers, ordinals, durations, dates and times, money, measurements,
// phone numbers, URLs, emails and credit card numbers.
//
// Parse is the single public entry point; everything else (the chart
// parser, rule grammars, resolver and ranker) lives in subpackages and is
// wired together here.
package duckling

import (
	"time"

	"github.com/extractly/duckling/engine"
	"github.com/extractly/duckling/entity"
	"github.com/extractly/duckling/locale"
	"github.com/extractly/duckling/metrics"
	"github.com/extractly/duckling/rank"
	"github.com/extractly/duckling/resolve"
	"github.com/extractly/duckling/token"
)

// Options controls resolution-time filtering shared across every dimension.
type Options struct {
	WithLatent bool
}

// Parse saturates text's rule chart for l, ranks the non-dominated
// candidate nodes across every dimension (so a "tomorrow at 3pm" doesn't
// lose to its "3" sub-candidate), resolves the winners against ref, filters
// to dims (empty means every supported dimension), and finally drops any
// entity whose span is strictly contained in another's.
func Parse(text string, l locale.Locale, dims []token.Dimension, ref time.Time, opts Options) []entity.Entity {
	start := time.Now()
	rules := locale.Rules(l, dims)
	st, rounds := engine.ParseWithStats(text, rules)

	m := metrics.Get()
	m.SaturationRounds.WithLabelValues(l.String()).Observe(float64(rounds))

	winners := rank.RankNodes(st.AllNodes(), l, dims)

	ctx := resolve.Context{ReferenceTime: ref, Locale: l}
	rOpts := resolve.Options{WithLatent: opts.WithLatent}

	var entities []entity.Entity
	for _, n := range winners {
		dk, ok := n.DimensionKind()
		if !ok {
			continue
		}
		if len(dims) > 0 && !dimsContain(dims, dk) {
			continue
		}
		e, ok := resolve.Resolve(n, ctx, rOpts, text)
		if !ok {
			continue
		}
		entities = append(entities, e)
	}

	result := rank.RemoveOverlapping(entities)

	dimTags := make([]string, len(result))
	for i, e := range result {
		dimTags[i] = e.Dim
	}
	m.ObserveParse(l.String(), time.Since(start).Seconds(), dimTags)

	return result
}

// ParseEN is Parse pinned to the English locale, the convenience entry
// point most callers reach for.
func ParseEN(text string, dims []token.Dimension, ref time.Time, opts Options) []entity.Entity {
	return Parse(text, locale.English, dims, ref, opts)
}

func dimsContain(dims []token.Dimension, d token.Dimension) bool {
	for _, x := range dims {
		if x == d {
			return true
		}
	}
	return false
}
