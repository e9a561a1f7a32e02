// Package rule defines the pattern/production building blocks that a
// language's rule grammar (package rules/en and friends) assembles into the
// []Rule slice the engine saturates over.
package rule

import (
	"github.com/wasilibs/go-re2"

	"github.com/extractly/duckling/token"
)

// Item is one element of a Rule's Pattern: a regex leaf, a dimension
// reference, or an arbitrary predicate over a node's payload. A leading
// regex is matched against the whole document; a later regex is searched
// in the text after the previous element and must follow it with at most
// whitespace between. Dim and Predicate elements match nodes already in
// the stash.
type Item interface {
	isPatternItem()
}

// Regex matches raw document text (always against the lowercase view; the
// engine recovers original casing for captured groups from the document).
type Regex struct {
	RE *re2.Regexp
}

func (Regex) isPatternItem() {}

// Dim matches any stash node whose token data carries the given dimension.
type Dim struct {
	Dimension token.Dimension
}

func (Dim) isPatternItem() {}

// Predicate matches any stash node whose token data satisfies an arbitrary
// test, used for constraints a bare dimension tag can't express (grain
// ordering, numeral range checks, and the like).
type Predicate struct {
	Test func(token.Data) bool
}

func (Predicate) isPatternItem() {}

// Production turns a fully matched pattern (one *token.Node per Item, in
// order) into a new token payload. Returning (nil, false) means the
// candidate match is rejected and no node is produced.
type Production func(matches []*token.Node) (token.Data, bool)

// Rule is a single named production in a language's grammar.
type Rule struct {
	Name       string
	Pattern    []Item
	Production Production
}

// RX compiles a case-insensitive-by-convention pattern (callers pass
// lowercase patterns and match against the document's lowercase view) into
// a Regex pattern item. It panics on an invalid pattern, matching the
// teacher's MustCompile-at-init-time convention for rule tables built once
// at package load.
func RX(pattern string) Regex {
	return Regex{RE: re2.MustCompile(pattern)}
}

// D builds a Dim pattern item.
func D(dim token.Dimension) Dim {
	return Dim{Dimension: dim}
}

// P builds a Predicate pattern item.
func P(test func(token.Data) bool) Predicate {
	return Predicate{Test: test}
}
