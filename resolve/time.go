package resolve

import (
	"time"

	"github.com/extractly/duckling/entity"
	"github.com/extractly/duckling/token"
)

// instant is a single resolved point together with the grain of precision
// it was resolved at.
type instant struct {
	t     time.Time
	grain token.Grain
}

// span is either a single instant or a from/to interval; exactly one of
// the two shapes is populated.
type span struct {
	single  *instant
	from    *instant
	to      *instant
	openEnd bool
}

func resolveTime(d token.TimeToken, ctx Context) (entity.Value, bool) {
	s, ok := resolveForm(d.Form, ctx)
	if !ok {
		return nil, false
	}
	return spanToValue(s), true
}

func spanToValue(s span) entity.Value {
	if s.single != nil {
		return instantValue(*s.single)
	}
	v := entity.Value{"type": "interval"}
	if s.from != nil {
		v["from"] = instantValue(*s.from)
	}
	if s.to != nil {
		v["to"] = instantValue(*s.to)
	}
	if s.openEnd {
		v["open_end"] = true
	}
	return v
}

func instantValue(i instant) entity.Value {
	return entity.Value{
		"value": i.t.UTC().Format(time.RFC3339),
		"grain": i.grain.String(),
		"type":  "value",
	}
}

func resolveForm(form token.TimeForm, ctx Context) (span, bool) {
	ref := ctx.ReferenceTime

	switch f := form.(type) {
	case token.Now:
		return single(ref, token.Second), true

	case token.Today:
		return single(startOfDay(ref), token.Day), true

	case token.Tomorrow:
		return single(startOfDay(ref).AddDate(0, 0, 1), token.Day), true

	case token.Yesterday:
		return single(startOfDay(ref).AddDate(0, 0, -1), token.Day), true

	case token.DayOfWeek:
		start := startOfDay(ref)
		delta := (int(f.Weekday) - int(start.Weekday()) + 7) % 7
		return single(start.AddDate(0, 0, delta), token.Day), true

	case token.DayOfMonth:
		start := startOfDay(ref)
		cand := time.Date(start.Year(), start.Month(), f.Day, 0, 0, 0, 0, start.Location())
		if cand.Before(start) {
			cand = cand.AddDate(0, 1, 0)
		}
		return single(cand, token.Day), true

	case token.Month:
		start := startOfDay(ref)
		year := start.Year()
		if f.Month < start.Month() {
			year++
		}
		return single(time.Date(year, f.Month, 1, 0, 0, 0, 0, start.Location()), token.Month), true

	case token.Year:
		start := startOfDay(ref)
		return single(time.Date(f.Year, time.January, 1, 0, 0, 0, 0, start.Location()), token.Year), true

	case token.MonthDay:
		start := startOfDay(ref)
		year := start.Year()
		if f.Year != nil {
			year = *f.Year
		} else {
			cand := time.Date(year, f.Month, f.Day, 0, 0, 0, 0, start.Location())
			if cand.Before(start) {
				year++
			}
		}
		d := time.Date(year, f.Month, f.Day, 0, 0, 0, 0, start.Location())
		if d.Day() != f.Day {
			return span{}, false // e.g. February 30th, which time.Date rolls into March
		}
		return single(d, token.Day), true

	case token.TimeOfDay:
		base := startOfDay(ref)
		cand, grain := applyTimeOfDay(base, f)
		if cand.Before(ref) {
			cand = cand.AddDate(0, 0, 1)
		}
		return single(cand, grain), true

	case token.PartOfDay:
		hour, ok := partOfDayHour(f.Name)
		if !ok {
			return span{}, false
		}
		base := startOfDay(ref)
		cand := base.Add(time.Duration(hour) * time.Hour)
		if cand.Before(ref) {
			cand = cand.AddDate(0, 0, 1)
		}
		return single(cand, token.Hour), true

	case token.RelativeGrain:
		added := addGrain(ref, f.N, f.Grain)
		resultGrain := finerGrain(f.Grain)
		return single(startOfGrain(added, resultGrain), resultGrain), true

	case token.Composed:
		dateSpan, ok := resolveTimeTokenForm(f.Date, ctx)
		if !ok || dateSpan.single == nil {
			return span{}, false
		}
		timeSpan, ok := resolveTimeTokenForm(f.Time, ctx)
		if !ok || timeSpan.single == nil {
			return span{}, false
		}
		d, tm := dateSpan.single.t, timeSpan.single.t
		combined := time.Date(d.Year(), d.Month(), d.Day(), tm.Hour(), tm.Minute(), tm.Second(), 0, d.Location())
		return single(combined, timeSpan.single.grain), true

	case token.Interval:
		var fromI, toI *instant
		if f.From != nil {
			if s, ok := resolveTimeTokenForm(f.From, ctx); ok && s.single != nil {
				fromI = s.single
			}
		}
		if f.To != nil {
			toCtx := ctx
			if fromI != nil {
				if _, isDayOfMonth := f.To.Form.(token.DayOfMonth); isDayOfMonth {
					toCtx.ReferenceTime = fromI.t
				}
			}
			if s, ok := resolveTimeTokenForm(f.To, toCtx); ok && s.single != nil {
				end := grainEdgeEnd(s.single.t, s.single.grain)
				toI = &instant{t: end, grain: s.single.grain}
			}
		}
		if fromI == nil && toI == nil {
			return span{}, false
		}
		return span{from: fromI, to: toI, openEnd: f.OpenEnd}, true

	case token.NthOf:
		anchor := ref
		grain := token.Day
		if f.Base != nil {
			if s, ok := resolveTimeTokenForm(f.Base, ctx); ok && s.single != nil {
				anchor = s.single.t
				grain = s.single.grain
			}
		}
		if f.Weekday != nil {
			first := anchor
			delta := (int(*f.Weekday) - int(first.Weekday()) + 7) % 7
			first = startOfDay(first).AddDate(0, 0, delta)
			nth := first.AddDate(0, 0, 7*(f.N-1))
			return single(nth, token.Day), true
		}
		start := startOfGrain(anchor, f.Grain)
		nth := addGrain(start, f.N-1, f.Grain)
		return single(nth, f.Grain), true

	case token.DurationAfter:
		anchor := ref
		if f.Base != nil {
			if s, ok := resolveTimeTokenForm(f.Base, ctx); ok && s.single != nil {
				anchor = s.single.t
			}
		}
		return single(addGrain(anchor, int(f.Value), f.Grain), f.Grain), true

	case token.GrainEdge:
		anchor := ref
		if f.Base != nil {
			if s, ok := resolveTimeTokenForm(f.Base, ctx); ok && s.single != nil {
				anchor = s.single.t
			}
		}
		if f.Start {
			return single(startOfGrain(anchor, f.Grain), f.Grain), true
		}
		return single(grainEdgeEnd(anchor, f.Grain), f.Grain), true
	}

	return span{}, false
}

// resolveTimeTokenForm is resolveForm applied to a sub-token's Form, used
// by the composite forms (Composed, Interval, NthOf, DurationAfter,
// GrainEdge) to resolve their Base/From/To/Date/Time children.
func resolveTimeTokenForm(tt *token.TimeToken, ctx Context) (span, bool) {
	if tt == nil {
		return span{}, false
	}
	return resolveForm(tt.Form, ctx)
}

func single(t time.Time, g token.Grain) span {
	return span{single: &instant{t: t, grain: g}}
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func startOfGrain(t time.Time, g token.Grain) time.Time {
	switch g {
	case token.Second:
		return t.Truncate(time.Second)
	case token.Minute:
		return t.Truncate(time.Minute)
	case token.Hour:
		return t.Truncate(time.Hour)
	case token.Day:
		return startOfDay(t)
	case token.Week:
		d := startOfDay(t)
		offset := (int(d.Weekday()) + 6) % 7 // Monday-anchored week
		return d.AddDate(0, 0, -offset)
	case token.Month:
		return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	case token.Quarter:
		q := (int(t.Month()) - 1) / 3
		return time.Date(t.Year(), time.Month(q*3+1), 1, 0, 0, 0, 0, t.Location())
	case token.Year:
		return time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location())
	default:
		return t
	}
}

// finerGrain is the grain one notch more precise than g: adding a coarse
// grain (week/month/quarter/year) to a reference instant only pins the
// date, so the result is truncated to day precision; adding a day only
// pins the hour, matching the original source's "in 7 days" → Grain::Hour,
// "in 1 week" → Grain::Day corpus fixtures.
func finerGrain(g token.Grain) token.Grain {
	switch g {
	case token.Year, token.Quarter, token.Month, token.Week:
		return token.Day
	case token.Day:
		return token.Hour
	case token.Hour:
		return token.Minute
	case token.Minute:
		return token.Second
	default:
		return g
	}
}

// grainEdgeEnd is the instant one grain past the start of the grain window
// containing anchor: the exclusive upper bound used by GrainEdge{Start:
// false} and by an interval's "to" bound.
func grainEdgeEnd(anchor time.Time, g token.Grain) time.Time {
	return addGrain(startOfGrain(anchor, g), 1, g)
}

func addGrain(t time.Time, n int, g token.Grain) time.Time {
	switch g {
	case token.Second:
		return t.Add(time.Duration(n) * time.Second)
	case token.Minute:
		return t.Add(time.Duration(n) * time.Minute)
	case token.Hour:
		return t.Add(time.Duration(n) * time.Hour)
	case token.Day:
		return t.AddDate(0, 0, n)
	case token.Week:
		return t.AddDate(0, 0, 7*n)
	case token.Month:
		return t.AddDate(0, n, 0)
	case token.Quarter:
		return t.AddDate(0, 3*n, 0)
	case token.Year:
		return t.AddDate(n, 0, 0)
	default:
		return t
	}
}

func applyTimeOfDay(base time.Time, f token.TimeOfDay) (time.Time, token.Grain) {
	hour := f.Hour
	if f.AMPM != nil {
		pm := *f.AMPM
		hour = hour % 12
		if pm {
			hour += 12
		}
	}
	minute, second := 0, 0
	grain := token.Hour
	if f.Minute != nil {
		minute = *f.Minute
		grain = token.Minute
	}
	if f.Second != nil {
		second = *f.Second
		grain = token.Second
	}
	return time.Date(base.Year(), base.Month(), base.Day(), hour, minute, second, 0, base.Location()), grain
}

func partOfDayHour(name string) (int, bool) {
	switch name {
	case "morning":
		return 9, true
	case "afternoon":
		return 15, true
	case "evening":
		return 18, true
	case "night":
		return 21, true
	default:
		return 0, false
	}
}
