package token

// Node is a chart cell: a document span, the payload built for it, and the
// children it was composed from (empty for a regex leaf). RuleName is empty
// for regex/dimension leaves that were never passed through a rule
// production.
type Node struct {
	Range    Range
	Data     Data
	Children []*Node
	RuleName string
}

// New wraps a leaf Data value with no children and no producing rule,
// matching the source's `Node::new`.
func New(r Range, d Data) *Node {
	return &Node{Range: r, Data: d}
}

// DimensionKind reports the dimension Data carries, if any.
func (n *Node) DimensionKind() (Dimension, bool) {
	if n == nil || n.Data == nil {
		return "", false
	}
	return n.Data.Dimension()
}
