package token

// Range is a half-open byte interval over a Document: [Start, End).
type Range struct {
	Start int
	End   int
}

// Len returns the number of bytes the range covers.
func (r Range) Len() int { return r.End - r.Start }

// Contains reports whether r strictly contains other (same or wider on at
// least one side, and not identical).
func (r Range) Contains(other Range) bool {
	return r.Start <= other.Start && other.End <= r.End && r != other
}
