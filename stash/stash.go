// Package stash holds the engine's growing set of parsed nodes, indexed by
// start position so the saturation loop can look up "what starts at or
// after here" without scanning every node on every rule application.
package stash

import (
	"sort"

	"github.com/extractly/duckling/token"
)

// Stash stores parsed nodes keyed by start position, in ascending key order,
// the Go equivalent of the source's BTreeMap<usize, Vec<Node>>.
type Stash struct {
	byStart map[int][]*token.Node
	starts  []int // kept sorted; rebuilt lazily
	dirty   bool
	count   int
}

// New returns an empty Stash.
func New() *Stash {
	return &Stash{byStart: make(map[int][]*token.Node)}
}

// Add inserts node, bucketed by its range's start offset.
func (s *Stash) Add(node *token.Node) {
	if _, ok := s.byStart[node.Range.Start]; !ok {
		s.starts = append(s.starts, node.Range.Start)
		s.dirty = true
	}
	s.byStart[node.Range.Start] = append(s.byStart[node.Range.Start], node)
	s.count++
}

// IsEmpty reports whether the stash holds no nodes.
func (s *Stash) IsEmpty() bool { return s.count == 0 }

// Len returns the total number of nodes added.
func (s *Stash) Len() int { return s.count }

// Merge copies every node from other into s.
func (s *Stash) Merge(other *Stash) {
	for _, n := range other.AllNodes() {
		s.Add(n)
	}
}

// AllNodes returns every node in the stash, ordered by start position (and
// insertion order within a position).
func (s *Stash) AllNodes() []*token.Node {
	s.ensureSorted()
	out := make([]*token.Node, 0, s.count)
	for _, pos := range s.starts {
		out = append(out, s.byStart[pos]...)
	}
	return out
}

// NodesStartingFrom returns every node whose start position is >= pos,
// ordered by start position, the Go equivalent of the source's
// BTreeMap::range(pos..).
func (s *Stash) NodesStartingFrom(pos int) []*token.Node {
	s.ensureSorted()
	i := sort.SearchInts(s.starts, pos)
	var out []*token.Node
	for _, p := range s.starts[i:] {
		out = append(out, s.byStart[p]...)
	}
	return out
}

func (s *Stash) ensureSorted() {
	if !s.dirty {
		return
	}
	sort.Ints(s.starts)
	s.dirty = false
}
