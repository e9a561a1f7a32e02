package en

import (
	"strconv"
	"strings"

	"github.com/extractly/duckling/rule"
	"github.com/extractly/duckling/token"
)

func isNatural(d token.Data) bool {
	n, ok := numeralData(d)
	return ok && n.Value == float64(int64(n.Value)) && n.Value >= 0
}

func durationData(d token.Data) (token.Duration, bool) {
	dur, ok := d.(token.Duration)
	return dur, ok
}

func isGrain(g token.Grain) func(token.Data) bool {
	return func(d token.Data) bool {
		tg, ok := d.(token.TimeGrainToken)
		return ok && tg.Grain == g
	}
}

// nPlusOneHalf is "n and a half <grain>", expressed as a count of the next
// finer grain: 1.5 hours is 90 minutes, half an hour is 30 minutes (n=0).
func nPlusOneHalf(grain token.Grain, n int64) (token.Duration, bool) {
	switch grain {
	case token.Minute:
		return token.Duration{Value: 60*n + 30, Grain: token.Second}, true
	case token.Hour:
		return token.Duration{Value: 60*n + 30, Grain: token.Minute}, true
	case token.Day:
		return token.Duration{Value: 24*n + 12, Grain: token.Hour}, true
	case token.Month:
		return token.Duration{Value: 30*n + 15, Grain: token.Day}, true
	case token.Year:
		return token.Duration{Value: 12*n + 6, Grain: token.Month}, true
	default:
		return token.Duration{}, false
	}
}

// DurationRules is the direct port of the duration grammar: a base
// "<integer> <unit>" rule plus English-specific idioms (quarter/half/
// three-quarters of an hour, fortnight, quote-mark shorthand, decimal
// hours/minutes, and composite ("2 hours 30 minutes") combination rules.
func DurationRules() []rule.Rule {
	return []rule.Rule{
		{
			Name:    "<integer> <unit-of-duration>",
			Pattern: []rule.Item{rule.P(isNatural), rule.D(token.TimeGrainDim)},
			Production: func(nodes []*token.Node) (token.Data, bool) {
				num, ok := numeralData(nodes[0].Data)
				if !ok {
					return nil, false
				}
				g, ok := nodes[1].Data.(token.TimeGrainToken)
				if !ok {
					return nil, false
				}
				return token.Duration{Value: int64(num.Value), Grain: g.Grain}, true
			},
		},
		{
			Name:    "quarter of an hour",
			Pattern: []rule.Item{rule.RX(`(1/4\s?h(our)?|(a\s)?quarter of an hour)`)},
			Production: func(nodes []*token.Node) (token.Data, bool) {
				return token.Duration{Value: 15, Grain: token.Minute}, true
			},
		},
		{
			Name:    "half an hour (abbrev)",
			Pattern: []rule.Item{rule.RX(`1/2\s?h`)},
			Production: func(nodes []*token.Node) (token.Data, bool) {
				return token.Duration{Value: 30, Grain: token.Minute}, true
			},
		},
		{
			Name:    "three-quarters of an hour",
			Pattern: []rule.Item{rule.RX(`(3/4\s?h(our)?|three(\s|-)quarters of an hour)`)},
			Production: func(nodes []*token.Node) (token.Data, bool) {
				return token.Duration{Value: 45, Grain: token.Minute}, true
			},
		},
		{
			Name:    "fortnight",
			Pattern: []rule.Item{rule.RX(`(a|one)?\s*fortnight`)},
			Production: func(nodes []*token.Node) (token.Data, bool) {
				return token.Duration{Value: 14, Grain: token.Day}, true
			},
		},
		{
			Name:    `<integer> + '"`,
			Pattern: []rule.Item{rule.P(isNatural), rule.RX(`(['"])`)},
			Production: func(nodes []*token.Node) (token.Data, bool) {
				num, ok := numeralData(nodes[0].Data)
				if !ok {
					return nil, false
				}
				quote, ok := regexGroup(nodes[1], 1)
				if !ok {
					return nil, false
				}
				var g token.Grain
				switch quote {
				case "'":
					g = token.Minute
				case `"`:
					g = token.Second
				default:
					return nil, false
				}
				return token.Duration{Value: int64(num.Value), Grain: g}, true
			},
		},
		{
			Name: "<integer> more <unit-of-duration>",
			Pattern: []rule.Item{
				rule.P(isNatural),
				rule.RX(`more|additional|extra|less|fewer`),
				rule.D(token.TimeGrainDim),
			},
			Production: func(nodes []*token.Node) (token.Data, bool) {
				num, ok := numeralData(nodes[0].Data)
				if !ok {
					return nil, false
				}
				g, ok := nodes[2].Data.(token.TimeGrainToken)
				if !ok {
					return nil, false
				}
				return token.Duration{Value: int64(num.Value), Grain: g.Grain}, true
			},
		},
		{
			Name:    "number.number hours",
			Pattern: []rule.Item{rule.RX(`(\d+)\.(\d+)`), rule.P(isGrain(token.Hour))},
			Production: func(nodes []*token.Node) (token.Data, bool) {
				hText, ok := regexGroup(nodes[0], 1)
				if !ok {
					return nil, false
				}
				mText, ok := regexGroup(nodes[0], 2)
				if !ok {
					return nil, false
				}
				h, err := strconv.ParseInt(hText, 10, 64)
				if err != nil {
					return nil, false
				}
				mNum, err := strconv.ParseInt(mText, 10, 64)
				if err != nil {
					return nil, false
				}
				d := int64(1)
				for i := 0; i < len(mText); i++ {
					d *= 10
				}
				return token.Duration{Value: 60*h + (mNum*60)/d, Grain: token.Minute}, true
			},
		},
		{
			Name:    "number.number minutes",
			Pattern: []rule.Item{rule.RX(`(\d+)\.(\d+)`), rule.P(isGrain(token.Minute))},
			Production: func(nodes []*token.Node) (token.Data, bool) {
				minText, ok := regexGroup(nodes[0], 1)
				if !ok {
					return nil, false
				}
				sText, ok := regexGroup(nodes[0], 2)
				if !ok {
					return nil, false
				}
				mins, err := strconv.ParseInt(minText, 10, 64)
				if err != nil {
					return nil, false
				}
				sNum, err := strconv.ParseInt(sText, 10, 64)
				if err != nil {
					return nil, false
				}
				d := int64(1)
				for i := 0; i < len(sText); i++ {
					d *= 10
				}
				return token.Duration{Value: 60*mins + (sNum*60)/d, Grain: token.Second}, true
			},
		},
		{
			Name:    "<integer> and a half hour",
			Pattern: []rule.Item{rule.P(isNatural), rule.RX(`and (an? )?half hours?`)},
			Production: func(nodes []*token.Node) (token.Data, bool) {
				num, ok := numeralData(nodes[0].Data)
				if !ok {
					return nil, false
				}
				v := int64(num.Value)
				return token.Duration{Value: 60*v + 30, Grain: token.Minute}, true
			},
		},
		{
			Name:    "<integer> and a half minute",
			Pattern: []rule.Item{rule.P(isNatural), rule.RX(`and (an? )?half min(ute)?s?`)},
			Production: func(nodes []*token.Node) (token.Data, bool) {
				num, ok := numeralData(nodes[0].Data)
				if !ok {
					return nil, false
				}
				v := int64(num.Value)
				return token.Duration{Value: 60*v + 30, Grain: token.Second}, true
			},
		},
		{
			Name:    "a <unit-of-duration>",
			Pattern: []rule.Item{rule.RX(`an?`), rule.D(token.TimeGrainDim)},
			Production: func(nodes []*token.Node) (token.Data, bool) {
				g, ok := nodes[1].Data.(token.TimeGrainToken)
				if !ok {
					return nil, false
				}
				return token.Duration{Value: 1, Grain: g.Grain}, true
			},
		},
		{
			Name:    "half a <time-grain>",
			Pattern: []rule.Item{rule.RX(`(1/2|half)( an?)?`), rule.D(token.TimeGrainDim)},
			Production: func(nodes []*token.Node) (token.Data, bool) {
				g, ok := nodes[1].Data.(token.TimeGrainToken)
				if !ok {
					return nil, false
				}
				dd, ok := nPlusOneHalf(g.Grain, 0)
				if !ok {
					return nil, false
				}
				return dd, true
			},
		},
		{
			Name: "a <unit-of-duration> and a half",
			Pattern: []rule.Item{
				rule.RX(`an?|one`),
				rule.D(token.TimeGrainDim),
				rule.RX(`and (a )?half`),
			},
			Production: func(nodes []*token.Node) (token.Data, bool) {
				g, ok := nodes[1].Data.(token.TimeGrainToken)
				if !ok {
					return nil, false
				}
				dd, ok := nPlusOneHalf(g.Grain, 1)
				if !ok {
					return nil, false
				}
				return dd, true
			},
		},
		{
			Name: "<integer> hour and <integer>",
			Pattern: []rule.Item{
				rule.P(isNatural),
				rule.RX(`hours?( and)?`),
				rule.P(func(d token.Data) bool {
					n, ok := numeralData(d)
					return ok && isNatural(d) && n.Value >= 1 && n.Value < 60
				}),
			},
			Production: func(nodes []*token.Node) (token.Data, bool) {
				h, ok := numeralData(nodes[0].Data)
				if !ok {
					return nil, false
				}
				m, ok := numeralData(nodes[2].Data)
				if !ok {
					return nil, false
				}
				return token.Duration{Value: 60*int64(h.Value) + int64(m.Value), Grain: token.Minute}, true
			},
		},
		{
			Name:    "about|exactly <duration>",
			Pattern: []rule.Item{rule.RX(`(about|around|approximately|exactly)`), rule.D(token.DurationDim)},
			Production: func(nodes []*token.Node) (token.Data, bool) {
				return nodes[1].Data, true
			},
		},
		{
			Name: "<integer> and <integer> quarter of hour",
			Pattern: []rule.Item{
				rule.P(isNatural),
				rule.RX(`and (a |an |one |two |three )?quarters?( of)?( an)?`),
				rule.P(isGrain(token.Hour)),
			},
			Production: func(nodes []*token.Node) (token.Data, bool) {
				h, ok := numeralData(nodes[0].Data)
				if !ok {
					return nil, false
				}
				qMatch, _ := regexGroup(nodes[1], 1)
				var q int64
				switch strings.ToLower(strings.TrimSpace(qMatch)) {
				case "a", "an", "one", "":
					q = 1
				case "two":
					q = 2
				case "three":
					q = 3
				default:
					q = 1
				}
				return token.Duration{Value: 15*q + 60*int64(h.Value), Grain: token.Minute}, true
			},
		},
		{
			Name: "composite <duration> (with ,/and)",
			Pattern: []rule.Item{
				rule.P(isNatural),
				rule.D(token.TimeGrainDim),
				rule.RX(`,|and`),
				rule.D(token.DurationDim),
			},
			Production: func(nodes []*token.Node) (token.Data, bool) {
				num, ok := numeralData(nodes[0].Data)
				if !ok {
					return nil, false
				}
				g, ok := nodes[1].Data.(token.TimeGrainToken)
				if !ok {
					return nil, false
				}
				dd, ok := durationData(nodes[3].Data)
				if !ok {
					return nil, false
				}
				if g.Grain <= dd.Grain {
					return nil, false
				}
				d1 := token.Duration{Value: int64(num.Value), Grain: g.Grain}
				return d1.Combine(dd)
			},
		},
		{
			Name: "composite <duration>",
			Pattern: []rule.Item{
				rule.P(isNatural),
				rule.D(token.TimeGrainDim),
				rule.D(token.DurationDim),
			},
			Production: func(nodes []*token.Node) (token.Data, bool) {
				num, ok := numeralData(nodes[0].Data)
				if !ok {
					return nil, false
				}
				g, ok := nodes[1].Data.(token.TimeGrainToken)
				if !ok {
					return nil, false
				}
				dd, ok := durationData(nodes[2].Data)
				if !ok {
					return nil, false
				}
				if g.Grain <= dd.Grain {
					return nil, false
				}
				d1 := token.Duration{Value: int64(num.Value), Grain: g.Grain}
				return d1.Combine(dd)
			},
		},
		{
			Name: "composite <duration> and <duration>",
			Pattern: []rule.Item{
				rule.D(token.DurationDim),
				rule.RX(`,|and`),
				rule.D(token.DurationDim),
			},
			Production: func(nodes []*token.Node) (token.Data, bool) {
				d1, ok := durationData(nodes[0].Data)
				if !ok {
					return nil, false
				}
				d2, ok := durationData(nodes[2].Data)
				if !ok {
					return nil, false
				}
				if d1.Grain <= d2.Grain {
					return nil, false
				}
				return d1.Combine(d2)
			},
		},
	}
}
