package rank

import (
	"fmt"
	"sort"

	"github.com/extractly/duckling/entity"
	"github.com/extractly/duckling/locale"
	"github.com/extractly/duckling/token"
)

// bagOfFeatures counts each distinct feature string's occurrences; in
// practice RankNodes only ever produces at most one feature per kind (rule
// names, grain names) concatenated into a single string, mirroring the
// source exactly.
type bagOfFeatures map[string]int

type candidate struct {
	node   *token.Node
	score  float64
	target bool
}

// timeFormGrain reports the grain a TimeForm should be scored/ranked at,
// recursing into composite forms' bases the way the source's
// time_form_grain does.
func timeFormGrain(form token.TimeForm) (token.Grain, bool) {
	switch f := form.(type) {
	case token.Now:
		return token.Second, true
	case token.Today, token.Tomorrow, token.Yesterday:
		return token.Day, true
	case token.DayOfWeek:
		return token.Day, true
	case token.DayOfMonth:
		return token.Day, true
	case token.Month:
		return token.Month, true
	case token.Year:
		return token.Year, true
	case token.MonthDay:
		return token.Day, true
	case token.TimeOfDay:
		switch {
		case f.Second != nil:
			return token.Second, true
		case f.Minute != nil:
			return token.Minute, true
		default:
			return token.Hour, true
		}
	case token.PartOfDay:
		return token.Hour, true
	case token.RelativeGrain:
		return f.Grain, true
	case token.Composed:
		if f.Date != nil {
			if g, ok := timeFormGrain(f.Date.Form); ok {
				return g, true
			}
		}
		if f.Time != nil {
			return timeFormGrain(f.Time.Form)
		}
		return 0, false
	case token.Interval:
		return token.Hour, true
	case token.NthOf:
		if f.Base != nil {
			return timeFormGrain(f.Base.Form)
		}
		return f.Grain, true
	case token.DurationAfter:
		return f.Grain, true
	case token.GrainEdge:
		return f.Grain, true
	}
	return 0, false
}

func extractFeatures(node *token.Node) bagOfFeatures {
	var ruleFeat string
	for _, c := range node.Children {
		ruleFeat += c.RuleName
	}

	var grainFeat string
	for _, c := range node.Children {
		switch d := c.Data.(type) {
		case token.Duration:
			grainFeat += d.Grain.String()
		case token.TimeToken:
			if g, ok := timeFormGrain(d.Form); ok {
				grainFeat += g.String()
			}
		case token.TimeGrainToken:
			grainFeat += d.Grain.String()
		}
	}

	out := bagOfFeatures{ruleFeat: 1}
	if grainFeat != "" {
		out[grainFeat] = 1
	}
	return out
}

func ll(feats bagOfFeatures, cd ClassData) float64 {
	acc := cd.Prior
	for feat, x := range feats {
		w, ok := cd.Likelihoods[feat]
		if !ok {
			w = cd.Unseen
		}
		acc += float64(x) * w
	}
	return acc
}

func scoreNode(classifiers Classifiers, node *token.Node) float64 {
	var selfScore float64
	if node.RuleName != "" {
		if c, ok := classifiers[node.RuleName]; ok {
			selfScore = ll(extractFeatures(node), c.OKData)
		}
	}
	total := selfScore
	for _, c := range node.Children {
		total += scoreNode(classifiers, c)
	}
	return total
}

// rangeOrder is -1/0/1 for a<b / incomparable / a>b under "wider span wins,
// equal spans tie", matching the source's comp_range three-way result
// (Less/Equal/Greater) folded onto an int.
func rangeOrder(a, b *token.Node) int {
	switch {
	case a.Range.Start == b.Range.Start && a.Range.End == b.Range.End:
		return 0
	case a.Range.Start <= b.Range.Start && b.Range.End <= a.Range.End:
		return 1 // a contains (or equals) b -> a wins
	case b.Range.Start <= a.Range.Start && a.Range.End <= b.Range.End:
		return -1
	default:
		return 0 // incomparable spans
	}
}

func sameDimension(a, b *token.Node) bool {
	da, oka := a.DimensionKind()
	db, okb := b.DimensionKind()
	return oka == okb && da == db
}

// compareCandidate returns -1 if a loses to b (b dominates a), 1 if a
// dominates b, 0 if incomparable/tied.
func compareCandidate(a, b candidate) int {
	if sameDimension(a.node, b.node) {
		switch {
		case a.node.Range.Start == b.node.Range.Start && a.node.Range.End == b.node.Range.End:
			switch {
			case a.score > b.score:
				return 1
			case a.score < b.score:
				return -1
			default:
				return 0
			}
		case a.node.Range.Start <= b.node.Range.Start && b.node.Range.End <= a.node.Range.End:
			return 1
		case b.node.Range.Start <= a.node.Range.Start && a.node.Range.End <= b.node.Range.End:
			return -1
		default:
			return 0
		}
	}

	cr := rangeOrder(a.node, b.node)
	if a.target == b.target {
		return cr
	}
	if a.target && cr > 0 {
		return 1
	}
	if b.target && cr < 0 {
		return -1
	}
	return 0
}

// RankNodes scores every dimension-carrying node, keeps only the
// non-dominated candidates, deduplicates identical (range, rule, dimension)
// results, and returns them sorted by span.
func RankNodes(nodes []*token.Node, loc locale.Locale, dims []token.Dimension) []*token.Node {
	classifiers := ForLocale(loc)

	var candidates []candidate
	for _, n := range nodes {
		dk, ok := n.DimensionKind()
		if !ok {
			continue
		}
		target := len(dims) == 0
		if !target {
			for _, d := range dims {
				if d == dk {
					target = true
					break
				}
			}
		}
		candidates = append(candidates, candidate{node: n, score: scoreNode(classifiers, n), target: target})
	}

	var winners []*token.Node
	for _, x := range candidates {
		dominated := false
		for _, y := range candidates {
			if compareCandidate(x, y) < 0 {
				dominated = true
				break
			}
		}
		if !dominated {
			winners = append(winners, x.node)
		}
	}

	seen := make(map[string]bool)
	var uniq []*token.Node
	for _, n := range winners {
		key := nodeDedupeKey(n)
		if seen[key] {
			continue
		}
		seen[key] = true
		uniq = append(uniq, n)
	}

	sort.SliceStable(uniq, func(i, j int) bool {
		if uniq[i].Range.Start != uniq[j].Range.Start {
			return uniq[i].Range.Start < uniq[j].Range.Start
		}
		return uniq[i].Range.End < uniq[j].Range.End
	})
	return uniq
}

func nodeDedupeKey(n *token.Node) string {
	dk, _ := n.DimensionKind()
	return fmt.Sprintf("%d:%d:%s:%s", n.Range.Start, n.Range.End, n.RuleName, dk)
}

// RemoveOverlapping discards any entity whose span is strictly contained in
// an already-kept entity's span, keeping the maximal spans in input order.
func RemoveOverlapping(entities []entity.Entity) []entity.Entity {
	if len(entities) == 0 {
		return entities
	}

	var result []entity.Entity
	for _, e := range entities {
		dominated := false
		for _, existing := range result {
			if existing.Start <= e.Start && e.End <= existing.End && (existing.Start < e.Start || e.End < existing.End) {
				dominated = true
				break
			}
		}
		if dominated {
			continue
		}

		kept := result[:0]
		for _, existing := range result {
			if e.Start <= existing.Start && existing.End <= e.End && (e.Start < existing.Start || existing.End < e.End) {
				continue
			}
			kept = append(kept, existing)
		}
		result = append(kept, e)
	}
	return result
}
