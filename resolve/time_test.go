package resolve

import (
	"testing"
	"time"

	"github.com/extractly/duckling/token"
)

func TestFinerGrainMapping(t *testing.T) {
	cases := map[token.Grain]token.Grain{
		token.Year:    token.Day,
		token.Quarter: token.Day,
		token.Month:   token.Day,
		token.Week:    token.Day,
		token.Day:     token.Hour,
		token.Hour:    token.Minute,
		token.Minute:  token.Second,
		token.Second:  token.Second,
	}
	for g, want := range cases {
		if got := finerGrain(g); got != want {
			t.Errorf("finerGrain(%v) = %v, want %v", g, got, want)
		}
	}
}

func TestGrainEdgeEndIsOneGrainPastStart(t *testing.T) {
	anchor := time.Date(2013, time.July, 15, 13, 45, 0, 0, time.UTC)
	end := grainEdgeEnd(anchor, token.Day)
	want := time.Date(2013, time.July, 16, 0, 0, 0, 0, time.UTC)
	if !end.Equal(want) {
		t.Fatalf("grainEdgeEnd(day) = %v, want %v", end, want)
	}

	endMonth := grainEdgeEnd(anchor, token.Month)
	wantMonth := time.Date(2013, time.August, 1, 0, 0, 0, 0, time.UTC)
	if !endMonth.Equal(wantMonth) {
		t.Fatalf("grainEdgeEnd(month) = %v, want %v", endMonth, wantMonth)
	}
}

func TestStartOfGrainWeekIsMondayAnchored(t *testing.T) {
	// 2013-02-12 is a Tuesday.
	got := startOfGrain(refTime(), token.Week)
	want := time.Date(2013, time.February, 11, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("startOfGrain(week) = %v, want %v (Monday)", got, want)
	}
}

func TestDurationAfterAnchorsToBase(t *testing.T) {
	base := token.TimeToken{Form: token.MonthDay{Month: time.December, Day: 25, Year: intPtr(2014)}}
	form := token.DurationAfter{Value: 3, Grain: token.Day, Base: &base}
	s, ok := resolveForm(form, refCtx())
	if !ok || s.single == nil {
		t.Fatalf("expected DurationAfter to resolve")
	}
	want := time.Date(2014, time.December, 28, 0, 0, 0, 0, time.UTC)
	if !s.single.t.Equal(want) {
		t.Fatalf("3 days after Dec 25 2014 = %v, want %v", s.single.t, want)
	}
}

func TestNthOfWeekdayOfBase(t *testing.T) {
	// "the 2nd Tuesday of March 2013": March 2013 -> first day is a Friday,
	// first Tuesday is March 5th, second Tuesday is March 12th.
	base := token.TimeToken{Form: token.Month{Month: time.March}}
	wd := time.Tuesday
	form := token.NthOf{N: 2, Weekday: &wd, Base: &base}
	s, ok := resolveForm(form, refCtx())
	if !ok || s.single == nil {
		t.Fatalf("expected NthOf to resolve")
	}
	want := time.Date(2013, time.March, 12, 0, 0, 0, 0, time.UTC)
	if !s.single.t.Equal(want) {
		t.Fatalf("2nd Tuesday of March 2013 = %v, want %v", s.single.t, want)
	}
}

func intPtr(i int) *int { return &i }
