package stash

import (
	"testing"

	"github.com/extractly/duckling/token"
)

func mustNode(start, end int, v float64) *token.Node {
	return token.New(token.Range{Start: start, End: end}, token.Numeral{Value: v})
}

func TestNewStashIsEmpty(t *testing.T) {
	s := New()
	if !s.IsEmpty() {
		t.Fatalf("a fresh Stash must be empty")
	}
	if s.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", s.Len())
	}
}

// Adding nodes must only ever grow the stash: once a node is in, it stays,
// and Len tracks total additions exactly (the "stash is monotone" property
// the saturation loop's round-termination check relies on).
func TestAddIsMonotone(t *testing.T) {
	s := New()
	s.Add(mustNode(0, 3, 1))
	if s.Len() != 1 || s.IsEmpty() {
		t.Fatalf("after one Add, Len()=%d IsEmpty()=%v", s.Len(), s.IsEmpty())
	}
	s.Add(mustNode(4, 6, 2))
	s.Add(mustNode(0, 3, 1)) // a duplicate-looking node is still appended, not deduped
	if s.Len() != 3 {
		t.Fatalf("Len() = %d, want 3 (stash never removes or merges on Add)", s.Len())
	}
	if len(s.AllNodes()) != 3 {
		t.Fatalf("AllNodes() returned %d nodes, want 3", len(s.AllNodes()))
	}
}

func TestAllNodesOrderedByStart(t *testing.T) {
	s := New()
	s.Add(mustNode(10, 12, 3))
	s.Add(mustNode(0, 2, 1))
	s.Add(mustNode(5, 7, 2))

	nodes := s.AllNodes()
	if len(nodes) != 3 {
		t.Fatalf("expected 3 nodes, got %d", len(nodes))
	}
	for i := 1; i < len(nodes); i++ {
		if nodes[i-1].Range.Start > nodes[i].Range.Start {
			t.Fatalf("AllNodes() not sorted by start: %+v", nodes)
		}
	}
}

func TestNodesStartingFrom(t *testing.T) {
	s := New()
	s.Add(mustNode(0, 2, 1))
	s.Add(mustNode(5, 7, 2))
	s.Add(mustNode(9, 11, 3))

	nodes := s.NodesStartingFrom(5)
	if len(nodes) != 2 {
		t.Fatalf("NodesStartingFrom(5) returned %d nodes, want 2", len(nodes))
	}
	for _, n := range nodes {
		if n.Range.Start < 5 {
			t.Fatalf("NodesStartingFrom(5) returned a node starting at %d", n.Range.Start)
		}
	}

	if len(s.NodesStartingFrom(100)) != 0 {
		t.Fatalf("NodesStartingFrom past every node must return nothing")
	}
}

func TestMergeCopiesEveryNode(t *testing.T) {
	a := New()
	a.Add(mustNode(0, 2, 1))
	b := New()
	b.Add(mustNode(3, 5, 2))
	b.Add(mustNode(6, 8, 3))

	a.Merge(b)
	if a.Len() != 3 {
		t.Fatalf("after Merge, Len() = %d, want 3", a.Len())
	}
	if b.Len() != 2 {
		t.Fatalf("Merge must not mutate its argument; b.Len() = %d, want 2", b.Len())
	}
}
