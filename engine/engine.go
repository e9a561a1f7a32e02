// Package engine runs the saturation parser: it takes a document and a
// language's compiled rule set and grows a stash of candidate token nodes
// until no rule produces anything new (or a round ceiling is hit), without
// resolving any of them to a concrete entity value.
package engine

import (
	ahocorasick "github.com/pgavlin/aho-corasick"

	"github.com/extractly/duckling/document"
	"github.com/extractly/duckling/internal/xlog"
	"github.com/extractly/duckling/rule"
	"github.com/extractly/duckling/stash"
	"github.com/extractly/duckling/token"
)

// maxRounds bounds the saturation loop. Grammars are acyclic in practice
// (every production strictly grows a span or combines distinct spans) so
// this is a safety ceiling, not a tuning knob real grammars should ever hit.
const maxRounds = 10

// minAtomLen is the shortest literal run worth building an Aho-Corasick
// prefilter entry for; shorter runs reject too few candidate positions to
// be worth the lookup.
const minAtomLen = 3

type regexMatch struct {
	Range  token.Range
	Groups []*string
}

// compiled caches, per rule, whatever the rule's first pattern item lets us
// precompute once per Parse call: the document-wide regex match list for a
// regex-leading rule, plus (when an atom was extractable) whether the
// document even contains the literal at all.
type compiled struct {
	regexMatches []regexMatch
	hasAtom      bool
	atomPresent  bool
}

// Parse runs the saturation loop over text using rules and returns every
// node that was built, without filtering by dimension or resolving values.
func Parse(text string, rules []rule.Rule) *stash.Stash {
	st, _ := ParseWithStats(text, rules)
	return st
}

// ParseWithStats is Parse plus the number of saturation rounds actually
// run, for callers (metrics, diagnostics) that care how close a document
// came to the maxRounds ceiling.
func ParseWithStats(text string, rules []rule.Rule) (*stash.Stash, int) {
	doc := document.New(text)
	st := stash.New()

	ac, atomOf := buildAtomFilter(rules)
	matchedAtoms := runAtomFilter(ac, doc)
	precomp := make([]compiled, len(rules))
	for i, r := range rules {
		precomp[i] = precomputeRule(doc, r, atomOf, matchedAtoms, i)
	}

	type seenKey struct {
		start, end int
		rule       string
	}
	seen := make(map[seenKey]bool)

	initial := applyRegexRules(rules, precomp)
	for _, n := range initial.AllNodes() {
		seen[seenKey{n.Range.Start, n.Range.End, n.RuleName}] = true
	}
	st.Merge(initial)

	rounds := 0
	for round := 0; round < maxRounds; round++ {
		rounds = round + 1
		roundStash := applyAllRules(doc, rules, precomp, st)
		actuallyNew := stash.New()
		for _, n := range roundStash.AllNodes() {
			k := seenKey{n.Range.Start, n.Range.End, n.RuleName}
			if seen[k] {
				continue
			}
			seen[k] = true
			actuallyNew.Add(n)
		}
		if actuallyNew.IsEmpty() {
			break
		}
		st.Merge(actuallyNew)
	}
	if rounds >= maxRounds {
		xlog.Warningf("saturation loop hit the %d-round ceiling", maxRounds)
	}

	return st, rounds
}

// buildAtomFilter extracts one literal atom per regex-leading rule (where
// possible) and compiles them into a single Aho-Corasick automaton, so a
// single pass over the document tells us which rules' literals are even
// present before we run any of their regexes. atomOf maps a rule index to
// its pattern index in the automaton, or -1 if no atom could be extracted
// (that rule's regex always runs).
func buildAtomFilter(rules []rule.Rule) (*ahocorasick.AhoCorasick, []int) {
	atomOf := make([]int, len(rules))
	var patterns []string
	for i, r := range rules {
		atomOf[i] = -1
		if len(r.Pattern) == 0 {
			continue
		}
		re, ok := r.Pattern[0].(rule.Regex)
		if !ok {
			continue
		}
		if atom, ok := extractAtom(re.RE.String(), minAtomLen); ok {
			atomOf[i] = len(patterns)
			patterns = append(patterns, atom)
		}
	}
	if len(patterns) == 0 {
		return nil, atomOf
	}
	b := ahocorasick.NewAhoCorasickBuilder()
	ac := b.Build(patterns)
	return &ac, atomOf
}

// runAtomFilter runs the automaton once over the document and returns the
// set of pattern indices that occurred at least once.
func runAtomFilter(ac *ahocorasick.AhoCorasick, doc *document.Document) map[int]bool {
	hits := make(map[int]bool)
	if ac == nil {
		return hits
	}
	for _, m := range ac.FindAll(doc.Lower()) {
		hits[m.Pattern()] = true
	}
	return hits
}

func precomputeRule(doc *document.Document, r rule.Rule, atomOf []int, matchedAtoms map[int]bool, idx int) compiled {
	if len(r.Pattern) == 0 {
		return compiled{}
	}
	re, ok := r.Pattern[0].(rule.Regex)
	if !ok {
		return compiled{}
	}

	if p := atomOf[idx]; p >= 0 {
		if !matchedAtoms[p] {
			return compiled{hasAtom: true, atomPresent: false}
		}
		return compiled{regexMatches: findRegexMatches(doc, re), hasAtom: true, atomPresent: true}
	}

	return compiled{regexMatches: findRegexMatches(doc, re), hasAtom: false, atomPresent: true}
}

func applyRegexRules(rules []rule.Rule, precomp []compiled) *stash.Stash {
	st := stash.New()

	for i, r := range rules {
		if len(r.Pattern) == 0 {
			continue
		}
		if _, ok := r.Pattern[0].(rule.Regex); !ok {
			continue
		}
		if precomp[i].hasAtom && !precomp[i].atomPresent {
			continue
		}

		for _, m := range precomp[i].regexMatches {
			regexNode := &token.Node{Range: m.Range, Data: token.RegexMatch{Groups: m.Groups}}

			if len(r.Pattern) == 1 {
				if data, ok := r.Production([]*token.Node{regexNode}); ok {
					n := token.New(m.Range, data)
					n.RuleName = r.Name
					n.Children = []*token.Node{regexNode}
					st.Add(n)
				}
			} else {
				st.Add(regexNode)
			}
		}
	}

	return st
}

func applyAllRules(doc *document.Document, rules []rule.Rule, precomp []compiled, st *stash.Stash) *stash.Stash {
	newStash := stash.New()

	for i, r := range rules {
		if len(r.Pattern) == 1 {
			if _, ok := r.Pattern[0].(rule.Regex); ok {
				continue
			}
		}
		for _, n := range matchRule(doc, r, precomp[i], st) {
			newStash.Add(n)
		}
	}

	return newStash
}

func matchRule(doc *document.Document, r rule.Rule, pc compiled, st *stash.Stash) []*token.Node {
	var results []*token.Node
	if len(r.Pattern) == 0 {
		return results
	}

	switch item := r.Pattern[0].(type) {
	case rule.Regex:
		if pc.hasAtom && !pc.atomPresent {
			return results
		}
		for _, m := range pc.regexMatches {
			regexNode := &token.Node{Range: m.Range, Data: token.RegexMatch{Groups: m.Groups}}
			if len(r.Pattern) == 1 {
				if data, ok := r.Production([]*token.Node{regexNode}); ok {
					n := token.New(m.Range, data)
					n.RuleName = r.Name
					n.Children = []*token.Node{regexNode}
					results = append(results, n)
				}
			} else {
				results = append(results, matchRemaining(doc, r, st, 1, m.Range.End, []*token.Node{regexNode})...)
			}
		}
	case rule.Dim:
		for _, n := range st.AllNodes() {
			if dk, ok := n.DimensionKind(); !ok || dk != item.Dimension {
				continue
			}
			if len(r.Pattern) == 1 {
				if data, ok := r.Production([]*token.Node{n}); ok {
					out := token.New(n.Range, data)
					out.RuleName = r.Name
					out.Children = []*token.Node{n}
					results = append(results, out)
				}
			} else {
				results = append(results, matchRemaining(doc, r, st, 1, n.Range.End, []*token.Node{n})...)
			}
		}
	case rule.Predicate:
		for _, n := range st.AllNodes() {
			if !item.Test(n.Data) {
				continue
			}
			if len(r.Pattern) == 1 {
				if data, ok := r.Production([]*token.Node{n}); ok {
					out := token.New(n.Range, data)
					out.RuleName = r.Name
					out.Children = []*token.Node{n}
					results = append(results, out)
				}
			} else {
				results = append(results, matchRemaining(doc, r, st, 1, n.Range.End, []*token.Node{n})...)
			}
		}
	}

	return results
}

func matchRemaining(doc *document.Document, r rule.Rule, st *stash.Stash, patternIdx, afterPos int, matchedSoFar []*token.Node) []*token.Node {
	var results []*token.Node

	if patternIdx >= len(r.Pattern) {
		if data, ok := r.Production(matchedSoFar); ok {
			rng := token.Range{Start: matchedSoFar[0].Range.Start, End: matchedSoFar[len(matchedSoFar)-1].Range.End}
			n := token.New(rng, data)
			n.RuleName = r.Name
			n.Children = matchedSoFar
			results = append(results, n)
		}
		return results
	}

	switch item := r.Pattern[patternIdx].(type) {
	case rule.Regex:
		lower := doc.Lower()
		if afterPos > len(lower) {
			return results
		}
		searchText := lower[afterPos:]
		loc := item.RE.FindStringSubmatchIndex(searchText)
		if loc == nil {
			return results
		}
		absStart := afterPos + loc[0]
		absEnd := afterPos + loc[1]
		if !doc.IsAdjacent(afterPos, absStart) {
			return results
		}
		groups := groupsFromSubmatch(doc, afterPos, searchText, loc)
		regexNode := &token.Node{Range: token.Range{Start: absStart, End: absEnd}, Data: token.RegexMatch{Groups: groups}}
		next := append(append([]*token.Node{}, matchedSoFar...), regexNode)
		results = append(results, matchRemaining(doc, r, st, patternIdx+1, absEnd, next)...)

	case rule.Dim:
		for _, n := range st.NodesStartingFrom(afterPos) {
			dk, ok := n.DimensionKind()
			if !ok || dk != item.Dimension || !doc.IsAdjacent(afterPos, n.Range.Start) {
				continue
			}
			next := append(append([]*token.Node{}, matchedSoFar...), n)
			results = append(results, matchRemaining(doc, r, st, patternIdx+1, n.Range.End, next)...)
		}

	case rule.Predicate:
		for _, n := range st.NodesStartingFrom(afterPos) {
			if !item.Test(n.Data) || !doc.IsAdjacent(afterPos, n.Range.Start) {
				continue
			}
			next := append(append([]*token.Node{}, matchedSoFar...), n)
			results = append(results, matchRemaining(doc, r, st, patternIdx+1, n.Range.End, next)...)
		}
	}

	return results
}

// groupsFromSubmatch converts a regexp-style submatch index slice (pairs of
// byte offsets into searchText, -1 for a non-participating group) into
// original-cased group strings anchored at afterPos within the full
// document.
func groupsFromSubmatch(doc *document.Document, afterPos int, searchText string, loc []int) []*string {
	n := len(loc) / 2
	groups := make([]*string, n)
	for i := 0; i < n; i++ {
		s, e := loc[2*i], loc[2*i+1]
		if s < 0 || e < 0 {
			continue
		}
		abs := doc.Substring(afterPos+s, afterPos+e)
		groups[i] = &abs
	}
	return groups
}

func findRegexMatches(doc *document.Document, re rule.Regex) []regexMatch {
	lower := doc.Lower()
	var matches []regexMatch

	idxs := re.RE.FindAllStringSubmatchIndex(lower, -1)
	for _, loc := range idxs {
		rng := token.Range{Start: loc[0], End: loc[1]}
		n := len(loc) / 2
		groups := make([]*string, n)
		for i := 0; i < n; i++ {
			s, e := loc[2*i], loc[2*i+1]
			if s < 0 || e < 0 {
				continue
			}
			g := doc.Substring(s, e)
			groups[i] = &g
		}
		matches = append(matches, regexMatch{Range: rng, Groups: groups})
	}

	return matches
}
