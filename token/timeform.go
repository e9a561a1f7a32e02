package token

import "time"

// TimeForm is the tagged union of unresolved date/time shapes a time rule
// can produce. Resolution against a reference instant happens in package
// resolve; TimeForm itself carries no notion of "now".
type TimeForm interface {
	isTimeForm()
}

// Now is the instant the parse was run.
type Now struct{}

func (Now) isTimeForm() {}

// Today, Tomorrow and Yesterday are the three day offsets common enough to
// warrant their own form instead of RelativeGrain{0/1/-1, Day}.
type Today struct{}
type Tomorrow struct{}
type Yesterday struct{}

func (Today) isTimeForm()     {}
func (Tomorrow) isTimeForm()  {}
func (Yesterday) isTimeForm() {}

// DayOfWeek names a weekday without a date ("Tuesday"); resolution walks
// forward from the reference day to the closest matching weekday, unless
// the reference day itself matches.
type DayOfWeek struct {
	Weekday time.Weekday
}

func (DayOfWeek) isTimeForm() {}

// DayOfMonth names a day within whatever month resolution infers ("the
// 5th").
type DayOfMonth struct {
	Day int
}

func (DayOfMonth) isTimeForm() {}

// Month names a calendar month without a year ("March").
type Month struct {
	Month time.Month
}

func (Month) isTimeForm() {}

// Year names a bare calendar year ("2014").
type Year struct {
	Year int
}

func (Year) isTimeForm() {}

// MonthDay is a month/day pair, optionally with an explicit year
// ("July 13", "July 13th, 2022").
type MonthDay struct {
	Month time.Month
	Day   int
	Year  *int
}

func (MonthDay) isTimeForm() {}

// TimeOfDay is an hour, optionally with minute and second, and an optional
// explicit AM/PM flag ("3pm", "15:04", "3:04:05").
type TimeOfDay struct {
	Hour   int
	Minute *int
	Second *int
	AMPM   *bool // true = PM, false = AM, nil = unspecified (24h or latent)
}

func (TimeOfDay) isTimeForm() {}

// PartOfDay names a coarse daypart used to anchor a following time-of-day
// ("in the morning", "tonight").
type PartOfDay struct {
	Name string
}

func (PartOfDay) isTimeForm() {}

// RelativeGrain is an offset from the reference instant measured in whole
// grains: N days ago (N negative), in N weeks (N positive), next month
// (N=1, Grain=Month).
type RelativeGrain struct {
	N     int
	Grain Grain
}

func (RelativeGrain) isTimeForm() {}

// Composed merges a date-only form with a time-of-day form ("tomorrow at
// 3pm").
type Composed struct {
	Date *TimeToken
	Time *TimeToken
}

func (Composed) isTimeForm() {}

// Interval is an explicit span between two resolved times ("from July 13 to
// 15", "between 2pm and 4pm"). OpenEnd marks an interval with no stated end
// ("since Monday").
type Interval struct {
	From    *TimeToken
	To      *TimeToken
	OpenEnd bool
}

func (Interval) isTimeForm() {}

// NthOf anchors an ordinal occurrence of a grain to a base time ("the third
// Tuesday after Christmas 2014", "the second week of March").
type NthOf struct {
	N       int
	Grain   Grain
	Weekday *time.Weekday // non-nil for "nth <weekday> of <base>"
	Base    *TimeToken
}

func (NthOf) isTimeForm() {}

// DurationAfter anchors a duration's end point to a base time ("3 days
// after Christmas").
type DurationAfter struct {
	Value int64
	Grain Grain
	Base  *TimeToken
}

func (DurationAfter) isTimeForm() {}

// GrainEdge names the start or end of a grain-sized window around a base
// time ("beginning of the year", "end of the month"). When Base is nil the
// window is relative to the reference instant's enclosing grain.
type GrainEdge struct {
	Grain Grain
	Start bool
	Base  *TimeToken
}

func (GrainEdge) isTimeForm() {}
