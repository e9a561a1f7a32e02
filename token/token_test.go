package token

import "testing"

func TestRangeLenAndContains(t *testing.T) {
	outer := Range{Start: 0, End: 10}
	inner := Range{Start: 2, End: 5}
	if outer.Len() != 10 {
		t.Fatalf("Len() = %d, want 10", outer.Len())
	}
	if !outer.Contains(inner) {
		t.Fatalf("expected %v to contain %v", outer, inner)
	}
	if outer.Contains(outer) {
		t.Fatalf("a range must not contain itself")
	}
	if inner.Contains(outer) {
		t.Fatalf("a narrower range must not contain a wider one")
	}
}

func TestNodeDimensionKind(t *testing.T) {
	n := New(Range{Start: 0, End: 3}, Numeral{Value: 5})
	dk, ok := n.DimensionKind()
	if !ok || dk != NumberDim {
		t.Fatalf("DimensionKind() = (%v, %v), want (number, true)", dk, ok)
	}

	leaf := New(Range{Start: 0, End: 1}, RegexMatch{})
	if _, ok := leaf.DimensionKind(); ok {
		t.Fatalf("a bare RegexMatch node must report no dimension")
	}

	var nilNode *Node
	if _, ok := nilNode.DimensionKind(); ok {
		t.Fatalf("a nil node must report no dimension")
	}
}

func TestGrainStringRoundTrip(t *testing.T) {
	for _, g := range []Grain{Second, Minute, Hour, Day, Week, Month, Quarter, Year} {
		parsed, ok := GrainFromString(g.String())
		if !ok || parsed != g {
			t.Fatalf("GrainFromString(%q) = (%v, %v), want (%v, true)", g.String(), parsed, ok, g)
		}
	}
}

func TestGrainFromStringAliases(t *testing.T) {
	cases := map[string]Grain{
		"d": Day, "days": Day, "hr": Hour, "hrs": Hour, "min": Minute, "mins": Minute,
		"s": Second, "secs": Second, "w": Week, "mo": Month, "q": Quarter, "y": Year, "yrs": Year,
	}
	for alias, want := range cases {
		got, ok := GrainFromString(alias)
		if !ok || got != want {
			t.Errorf("GrainFromString(%q) = (%v, %v), want (%v, true)", alias, got, ok, want)
		}
	}
	if _, ok := GrainFromString("fortnight"); ok {
		t.Fatalf("unrecognized grain word must not parse")
	}
}

func TestDurationCombine(t *testing.T) {
	day := Duration{Value: 1, Grain: Day}
	hours := Duration{Value: 3, Grain: Hour}
	combined, ok := day.Combine(hours)
	if !ok {
		t.Fatalf("expected day+hour to combine")
	}
	if combined.Value != 27 || combined.Grain != Hour {
		t.Fatalf("combined = %+v, want {27 Hour}", combined)
	}

	// Combine requires strictly decreasing grain: same-grain or finer-first
	// must fail rather than silently do the wrong arithmetic.
	if _, ok := hours.Combine(day); ok {
		t.Fatalf("Hour.Combine(Day) must fail: grain must decrease")
	}
	if _, ok := day.Combine(Duration{Value: 1, Grain: Day}); ok {
		t.Fatalf("Day.Combine(Day) must fail: grains must differ")
	}

	// Month/Year have no fixed-ratio conversion to any finer grain.
	if _, ok := (Duration{Value: 1, Grain: Month}).Combine(Duration{Value: 1, Grain: Day}); ok {
		t.Fatalf("Month.Combine(Day) must fail: no fixed ratio across irregular grains")
	}
}

func TestNumeralWithGrainAndMultipliable(t *testing.T) {
	n := Numeral{Value: 100}.WithGrain(2).WithMultipliable(true)
	if n.Grain == nil || *n.Grain != 2 {
		t.Fatalf("WithGrain did not set Grain: %+v", n)
	}
	if !n.Multipliable {
		t.Fatalf("WithMultipliable(true) did not set Multipliable")
	}

	base := Numeral{Value: 5}
	if base.Grain != nil {
		t.Fatalf("zero-value Numeral must have a nil Grain")
	}
}

func TestRegexMatchGroup(t *testing.T) {
	full := "hello"
	m := RegexMatch{Groups: []*string{&full, nil}}
	if v, ok := m.Group(0); !ok || v != "hello" {
		t.Fatalf("Group(0) = (%q, %v), want (hello, true)", v, ok)
	}
	if _, ok := m.Group(1); ok {
		t.Fatalf("a non-participating group must report ok=false")
	}
	if _, ok := m.Group(5); ok {
		t.Fatalf("an out-of-range group must report ok=false")
	}
}

func TestEveryDimensionCarryingTypeReportsItsOwnDimension(t *testing.T) {
	cases := []struct {
		data Data
		want Dimension
	}{
		{Numeral{}, NumberDim},
		{Ordinal{}, OrdinalDim},
		{Duration{}, DurationDim},
		{TimeGrainToken{}, TimeGrainDim},
		{Temperature{}, TemperatureDim},
		{Distance{}, DistanceDim},
		{Volume{}, VolumeDim},
		{Quantity{}, QuantityDim},
		{AmountOfMoney{}, AmountOfMoneyDim},
		{Email{}, EmailDim},
		{PhoneNumber{}, PhoneNumberDim},
		{URLToken{}, URLDim},
		{CreditCardNumber{}, CreditCardNumberDim},
		{TimeToken{}, TimeDim},
	}
	for _, c := range cases {
		dk, ok := c.data.Dimension()
		if !ok || dk != c.want {
			t.Errorf("%T.Dimension() = (%v, %v), want (%v, true)", c.data, dk, ok, c.want)
		}
	}
}
