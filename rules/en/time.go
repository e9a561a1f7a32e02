package en

import (
	"strconv"
	"strings"
	"time"

	"github.com/extractly/duckling/rule"
	"github.com/extractly/duckling/token"
)

func timeData(d token.Data) (token.TimeToken, bool) {
	t, ok := d.(token.TimeToken)
	return t, ok
}

func timeNode(n *token.Node) (token.TimeToken, bool) {
	return timeData(n.Data)
}

// TimeRules is the direct port of the English day/month/now/clock-time
// grammar, plus composed forms (at/on, intervals, Nth-of, part-of-day,
// grain edges) that the spec's Time module describes but the distilled
// rule table leaves to the general engine/resolver machinery.
func TimeRules() []rule.Rule {
	return []rule.Rule{
		{
			Name: "day of week",
			Pattern: []rule.Item{rule.RX(`(monday|tuesday|wednesday|thursday|friday|saturday|sunday|` +
				`mon\.?|tue\.?|wed\.?|thu\.?|fri\.?|sat\.?|sun\.?)`)},
			Production: func(nodes []*token.Node) (token.Data, bool) {
				text, ok := regexGroup(nodes[0], 1)
				if !ok {
					return nil, false
				}
				wd, ok := weekdayFromText(text)
				if !ok {
					return nil, false
				}
				return token.TimeToken{Form: token.DayOfWeek{Weekday: wd}}, true
			},
		},
		{
			Name: "month name",
			Pattern: []rule.Item{rule.RX(`(january|february|march|april|may|june|july|august|september|october|november|december|` +
				`jan\.?|feb\.?|mar\.?|apr\.?|jun\.?|jul\.?|aug\.?|sep\.?|oct\.?|nov\.?|dec\.?)`)},
			Production: func(nodes []*token.Node) (token.Data, bool) {
				text, ok := regexGroup(nodes[0], 1)
				if !ok {
					return nil, false
				}
				m, ok := monthFromText(text)
				if !ok {
					return nil, false
				}
				return token.TimeToken{Form: token.Month{Month: m}}, true
			},
		},
		{
			Name:    "now",
			Pattern: []rule.Item{rule.RX(`(now|right now|just now)`)},
			Production: func(nodes []*token.Node) (token.Data, bool) {
				return token.TimeToken{Form: token.Now{}}, true
			},
		},
		{
			Name:    "today",
			Pattern: []rule.Item{rule.RX(`today`)},
			Production: func(nodes []*token.Node) (token.Data, bool) {
				return token.TimeToken{Form: token.Today{}}, true
			},
		},
		{
			Name:    "tomorrow",
			Pattern: []rule.Item{rule.RX(`tomorrow`)},
			Production: func(nodes []*token.Node) (token.Data, bool) {
				return token.TimeToken{Form: token.Tomorrow{}}, true
			},
		},
		{
			Name:    "yesterday",
			Pattern: []rule.Item{rule.RX(`yesterday`)},
			Production: func(nodes []*token.Node) (token.Data, bool) {
				return token.TimeToken{Form: token.Yesterday{}}, true
			},
		},
		{
			Name:    "last <day-of-week/month>",
			Pattern: []rule.Item{rule.RX(`last`), rule.D(token.TimeDim)},
			Production: func(nodes []*token.Node) (token.Data, bool) {
				tt, ok := timeNode(nodes[1])
				if !ok {
					return nil, false
				}
				switch tt.Form.(type) {
				case token.DayOfWeek:
					return token.TimeToken{Form: token.DurationAfter{Value: -7, Grain: token.Day, Base: &tt}}, true
				case token.Month:
					return token.TimeToken{Form: token.DurationAfter{Value: -1, Grain: token.Year, Base: &tt}}, true
				default:
					return nil, false
				}
			},
		},
		{
			Name:    "next <day-of-week/month>",
			Pattern: []rule.Item{rule.RX(`next`), rule.D(token.TimeDim)},
			Production: func(nodes []*token.Node) (token.Data, bool) {
				tt, ok := timeNode(nodes[1])
				if !ok {
					return nil, false
				}
				switch tt.Form.(type) {
				case token.DayOfWeek:
					return token.TimeToken{Form: token.DurationAfter{Value: 7, Grain: token.Day, Base: &tt}}, true
				case token.Month:
					return token.TimeToken{Form: token.DurationAfter{Value: 1, Grain: token.Year, Base: &tt}}, true
				default:
					return nil, false
				}
			},
		},
		{
			Name:    "time HH:MM",
			Pattern: []rule.Item{rule.RX(`(\d{1,2}):(\d{2})`)},
			Production: func(nodes []*token.Node) (token.Data, bool) {
				hText, ok := regexGroup(nodes[0], 1)
				if !ok {
					return nil, false
				}
				mText, ok := regexGroup(nodes[0], 2)
				if !ok {
					return nil, false
				}
				h, err := strconv.Atoi(hText)
				if err != nil || h >= 24 {
					return nil, false
				}
				m, err := strconv.Atoi(mText)
				if err != nil || m >= 60 {
					return nil, false
				}
				return token.TimeToken{Form: token.TimeOfDay{Hour: h, Minute: &m}}, true
			},
		},
		{
			Name:    "<time> am/pm",
			Pattern: []rule.Item{rule.D(token.TimeDim), rule.RX(`(a\.?m\.?|p\.?m\.?)`)},
			Production: func(nodes []*token.Node) (token.Data, bool) {
				ampmText, ok := regexGroup(nodes[1], 1)
				if !ok {
					return nil, false
				}
				pm := strings.HasPrefix(strings.ToLower(ampmText), "p")
				tt, ok := timeNode(nodes[0])
				if !ok {
					return nil, false
				}
				tod, ok := tt.Form.(token.TimeOfDay)
				if !ok {
					return nil, false
				}
				tod.AMPM = &pm
				return token.TimeToken{Form: tod}, true
			},
		},
		{
			Name:    "at <time>",
			Pattern: []rule.Item{rule.RX(`at`), rule.D(token.TimeDim)},
			Production: func(nodes []*token.Node) (token.Data, bool) {
				return nodes[1].Data, true
			},
		},
		{
			Name:    "on <time>",
			Pattern: []rule.Item{rule.RX(`on`), rule.D(token.TimeDim)},
			Production: func(nodes []*token.Node) (token.Data, bool) {
				return nodes[1].Data, true
			},
		},
		{
			Name:    "<integer> o'clock",
			Pattern: []rule.Item{rule.D(token.NumberDim), rule.RX(`o'?\s?clock`)},
			Production: func(nodes []*token.Node) (token.Data, bool) {
				num, ok := numeralData(nodes[0].Data)
				if !ok {
					return nil, false
				}
				if num.Value < 1 || num.Value > 12 || num.Value != float64(int(num.Value)) {
					return nil, false
				}
				return token.TimeToken{Form: token.TimeOfDay{Hour: int(num.Value)}}, true
			},
		},
		{
			Name:    "in <duration>",
			Pattern: []rule.Item{rule.RX(`in`), rule.D(token.DurationDim)},
			Production: func(nodes []*token.Node) (token.Data, bool) {
				dur, ok := durationData(nodes[1].Data)
				if !ok {
					return nil, false
				}
				return token.TimeToken{Form: token.RelativeGrain{N: int(dur.Value), Grain: dur.Grain}}, true
			},
		},
		{
			Name:    "<duration> ago",
			Pattern: []rule.Item{rule.D(token.DurationDim), rule.RX(`ago`)},
			Production: func(nodes []*token.Node) (token.Data, bool) {
				dur, ok := durationData(nodes[0].Data)
				if !ok {
					return nil, false
				}
				return token.TimeToken{Form: token.RelativeGrain{N: -int(dur.Value), Grain: dur.Grain}}, true
			},
		},
		{
			Name:    "date MM/DD(/YYYY)",
			Pattern: []rule.Item{rule.RX(`(\d{1,2})/(\d{1,2})(?:/(\d{2,4}))?`)},
			Production: func(nodes []*token.Node) (token.Data, bool) {
				mText, ok := regexGroup(nodes[0], 1)
				if !ok {
					return nil, false
				}
				dText, ok := regexGroup(nodes[0], 2)
				if !ok {
					return nil, false
				}
				m, err := strconv.Atoi(mText)
				if err != nil || m < 1 || m > 12 {
					return nil, false
				}
				d, err := strconv.Atoi(dText)
				if err != nil || d < 1 || d > 31 {
					return nil, false
				}
				var year *int
				if yText, ok := regexGroup(nodes[0], 3); ok && yText != "" {
					y, err := strconv.Atoi(yText)
					if err != nil {
						return nil, false
					}
					if y < 100 {
						y += 2000
					}
					year = &y
				}
				return token.TimeToken{Form: token.MonthDay{Month: time.Month(m), Day: d, Year: year}}, true
			},
		},
		{
			Name:    "<month> <day>",
			Pattern: []rule.Item{rule.D(token.TimeDim), rule.D(token.NumberDim)},
			Production: func(nodes []*token.Node) (token.Data, bool) {
				monthTT, ok := timeNode(nodes[0])
				if !ok {
					return nil, false
				}
				month, ok := monthTT.Form.(token.Month)
				if !ok {
					return nil, false
				}
				num, ok := numeralData(nodes[1].Data)
				if !ok || num.Value != float64(int(num.Value)) || num.Value < 1 || num.Value > 31 {
					return nil, false
				}
				return token.TimeToken{Form: token.MonthDay{Month: month.Month, Day: int(num.Value)}}, true
			},
		},
		{
			Name:    "<day> of <month>",
			Pattern: []rule.Item{rule.D(token.NumberDim), rule.RX(`of`), rule.D(token.TimeDim)},
			Production: func(nodes []*token.Node) (token.Data, bool) {
				num, ok := numeralData(nodes[0].Data)
				if !ok || num.Value != float64(int(num.Value)) || num.Value < 1 || num.Value > 31 {
					return nil, false
				}
				monthTT, ok := timeNode(nodes[2])
				if !ok {
					return nil, false
				}
				month, ok := monthTT.Form.(token.Month)
				if !ok {
					return nil, false
				}
				return token.TimeToken{Form: token.MonthDay{Month: month.Month, Day: int(num.Value)}}, true
			},
		},
		{
			Name:    "<day-of-month> (ordinal)",
			Pattern: []rule.Item{rule.D(token.OrdinalDim)},
			Production: func(nodes []*token.Node) (token.Data, bool) {
				ord, ok := nodes[0].Data.(token.Ordinal)
				if !ok || ord.Value < 1 || ord.Value > 31 {
					return nil, false
				}
				return token.TimeToken{Form: token.DayOfMonth{Day: int(ord.Value)}}, true
			},
		},
		{
			Name:    "<day-of-month> (number)",
			Pattern: []rule.Item{rule.D(token.NumberDim)},
			Production: func(nodes []*token.Node) (token.Data, bool) {
				num, ok := numeralData(nodes[0].Data)
				if !ok || num.Value != float64(int(num.Value)) || num.Value < 1 || num.Value > 31 {
					return nil, false
				}
				return token.TimeToken{Form: token.DayOfMonth{Day: int(num.Value)}, Latent: true}, true
			},
		},
		{
			Name:    "year (4 digits)",
			Pattern: []rule.Item{rule.RX(`(19\d{2}|20\d{2})`)},
			Production: func(nodes []*token.Node) (token.Data, bool) {
				text, ok := regexGroup(nodes[0], 1)
				if !ok {
					return nil, false
				}
				y, err := strconv.Atoi(text)
				if err != nil {
					return nil, false
				}
				return token.TimeToken{Form: token.Year{Year: y}}, true
			},
		},
		{
			Name: "<part-of-day>",
			Pattern: []rule.Item{rule.RX(`(morning|afternoon|evening|night|tonight)`)},
			Production: func(nodes []*token.Node) (token.Data, bool) {
				text, ok := regexGroup(nodes[0], 1)
				if !ok {
					return nil, false
				}
				name := strings.ToLower(text)
				if name == "tonight" {
					name = "night"
				}
				return token.TimeToken{Form: token.PartOfDay{Name: name}}, true
			},
		},
		{
			Name:    "<time> in the <part-of-day>",
			Pattern: []rule.Item{rule.D(token.TimeDim), rule.RX(`in the|at`), rule.D(token.TimeDim)},
			Production: func(nodes []*token.Node) (token.Data, bool) {
				dateTT, ok := timeNode(nodes[0])
				if !ok {
					return nil, false
				}
				podTT, ok := timeNode(nodes[2])
				if !ok {
					return nil, false
				}
				if _, ok := podTT.Form.(token.PartOfDay); !ok {
					return nil, false
				}
				return token.TimeToken{Form: token.Composed{Date: &dateTT, Time: &podTT}}, true
			},
		},
		{
			Name:    "<date> at <time-of-day>",
			Pattern: []rule.Item{rule.D(token.TimeDim), rule.RX(`at|,`), rule.D(token.TimeDim)},
			Production: func(nodes []*token.Node) (token.Data, bool) {
				dateTT, ok := timeNode(nodes[0])
				if !ok {
					return nil, false
				}
				timeTT, ok := timeNode(nodes[2])
				if !ok {
					return nil, false
				}
				switch timeTT.Form.(type) {
				case token.TimeOfDay, token.PartOfDay:
				default:
					return nil, false
				}
				return token.TimeToken{Form: token.Composed{Date: &dateTT, Time: &timeTT}}, true
			},
		},
		{
			Name:    "from <time> to <time>",
			Pattern: []rule.Item{rule.RX(`(from|between)`), rule.D(token.TimeDim), rule.RX(`(to|and|-)`), rule.D(token.TimeDim)},
			Production: func(nodes []*token.Node) (token.Data, bool) {
				from, ok := timeNode(nodes[1])
				if !ok {
					return nil, false
				}
				to, ok := timeNode(nodes[3])
				if !ok {
					return nil, false
				}
				return token.TimeToken{Form: token.Interval{From: &from, To: &to}}, true
			},
		},
		{
			Name:    "since <time>",
			Pattern: []rule.Item{rule.RX(`since`), rule.D(token.TimeDim)},
			Production: func(nodes []*token.Node) (token.Data, bool) {
				from, ok := timeNode(nodes[1])
				if !ok {
					return nil, false
				}
				return token.TimeToken{Form: token.Interval{From: &from, OpenEnd: true}}, true
			},
		},
		{
			Name:    "beginning/end of <time>",
			Pattern: []rule.Item{rule.RX(`(beginning|start|end) of`), rule.D(token.TimeDim)},
			Production: func(nodes []*token.Node) (token.Data, bool) {
				which, ok := regexGroup(nodes[0], 1)
				if !ok {
					return nil, false
				}
				base, ok := timeNode(nodes[1])
				if !ok {
					return nil, false
				}
				g, ok := timeFormGrainForEdge(base.Form)
				if !ok {
					return nil, false
				}
				return token.TimeToken{Form: token.GrainEdge{Grain: g, Start: strings.ToLower(which) != "end", Base: &base}}, true
			},
		},
		{
			Name:    "the <ordinal> <day-of-week> of <time>",
			Pattern: []rule.Item{rule.D(token.OrdinalDim), rule.D(token.TimeDim), rule.RX(`of`), rule.D(token.TimeDim)},
			Production: func(nodes []*token.Node) (token.Data, bool) {
				ord, ok := nodes[0].Data.(token.Ordinal)
				if !ok {
					return nil, false
				}
				dowTT, ok := timeNode(nodes[1])
				if !ok {
					return nil, false
				}
				dow, ok := dowTT.Form.(token.DayOfWeek)
				if !ok {
					return nil, false
				}
				base, ok := timeNode(nodes[3])
				if !ok {
					return nil, false
				}
				wd := dow.Weekday
				return token.TimeToken{Form: token.NthOf{N: int(ord.Value), Weekday: &wd, Base: &base}}, true
			},
		},
	}
}

func timeFormGrainForEdge(form token.TimeForm) (token.Grain, bool) {
	switch form.(type) {
	case token.Year:
		return token.Year, true
	case token.Month:
		return token.Month, true
	case token.Today, token.Tomorrow, token.Yesterday, token.DayOfWeek, token.MonthDay:
		return token.Day, true
	default:
		return 0, false
	}
}

func weekdayFromText(text string) (time.Weekday, bool) {
	switch strings.TrimSuffix(strings.ToLower(text), ".") {
	case "monday", "mon":
		return time.Monday, true
	case "tuesday", "tue":
		return time.Tuesday, true
	case "wednesday", "wed":
		return time.Wednesday, true
	case "thursday", "thu":
		return time.Thursday, true
	case "friday", "fri":
		return time.Friday, true
	case "saturday", "sat":
		return time.Saturday, true
	case "sunday", "sun":
		return time.Sunday, true
	default:
		return 0, false
	}
}

func monthFromText(text string) (time.Month, bool) {
	switch strings.TrimSuffix(strings.ToLower(text), ".") {
	case "january", "jan":
		return time.January, true
	case "february", "feb":
		return time.February, true
	case "march", "mar":
		return time.March, true
	case "april", "apr":
		return time.April, true
	case "may":
		return time.May, true
	case "june", "jun":
		return time.June, true
	case "july", "jul":
		return time.July, true
	case "august", "aug":
		return time.August, true
	case "september", "sep":
		return time.September, true
	case "october", "oct":
		return time.October, true
	case "november", "nov":
		return time.November, true
	case "december", "dec":
		return time.December, true
	default:
		return 0, false
	}
}
