// Package en holds the English rule grammar: one Rules function per
// dimension, assembled into a locale's compiled rule vector by package
// locale.
package en

import (
	"strconv"
	"strings"

	"github.com/extractly/duckling/rule"
	"github.com/extractly/duckling/token"
)

func numeralData(d token.Data) (token.Numeral, bool) {
	n, ok := d.(token.Numeral)
	return n, ok
}

func isMultipliable(d token.Data) bool {
	n, ok := numeralData(d)
	return ok && n.Multipliable
}

func regexGroup(node *token.Node, i int) (string, bool) {
	m, ok := node.Data.(token.RegexMatch)
	if !ok {
		return "", false
	}
	return m.Group(i)
}

// NumeralRules is the direct English numeral grammar: cardinals zero
// through ninety-nine (spelled and digit forms), scale words (hundred
// through billion) with their multiplier composition, K/M/G/B suffixes,
// comma grouping, decimals, negatives, and informal "a pair"/"a dozen".
func NumeralRules() []rule.Rule {
	return []rule.Rule{
		{
			Name:    "integer (0..9)",
			Pattern: []rule.Item{rule.RX(`(zero|naught|nought|nil|one|two|three|four|five|six|seven|eight|nine)`)},
			Production: func(nodes []*token.Node) (token.Data, bool) {
				text, ok := regexGroup(nodes[0], 1)
				if !ok {
					return nil, false
				}
				vals := map[string]float64{
					"zero": 0, "naught": 0, "nought": 0, "nil": 0,
					"one": 1, "two": 2, "three": 3, "four": 4,
					"five": 5, "six": 6, "seven": 7, "eight": 8, "nine": 9,
				}
				v, ok := vals[strings.ToLower(text)]
				if !ok {
					return nil, false
				}
				return token.Numeral{Value: v}, true
			},
		},
		{
			Name:    "integer (10..19)",
			Pattern: []rule.Item{rule.RX(`(ten|eleven|twelve|thirteen|fourteen|fifteen|sixteen|seventeen|eighteen|nineteen)`)},
			Production: func(nodes []*token.Node) (token.Data, bool) {
				text, ok := regexGroup(nodes[0], 1)
				if !ok {
					return nil, false
				}
				vals := map[string]float64{
					"ten": 10, "eleven": 11, "twelve": 12, "thirteen": 13, "fourteen": 14,
					"fifteen": 15, "sixteen": 16, "seventeen": 17, "eighteen": 18, "nineteen": 19,
				}
				v, ok := vals[strings.ToLower(text)]
				if !ok {
					return nil, false
				}
				return token.Numeral{Value: v}, true
			},
		},
		{
			Name:    "integer (20..90)",
			Pattern: []rule.Item{rule.RX(`(twenty|thirty|forty|fifty|sixty|seventy|eighty|ninety)`)},
			Production: func(nodes []*token.Node) (token.Data, bool) {
				text, ok := regexGroup(nodes[0], 1)
				if !ok {
					return nil, false
				}
				vals := map[string]float64{
					"twenty": 20, "thirty": 30, "forty": 40, "fifty": 50,
					"sixty": 60, "seventy": 70, "eighty": 80, "ninety": 90,
				}
				v, ok := vals[strings.ToLower(text)]
				if !ok {
					return nil, false
				}
				return token.Numeral{Value: v, Multipliable: false}, true
			},
		},
		{
			Name: "integer (21..99)",
			Pattern: []rule.Item{
				rule.P(func(d token.Data) bool {
					n, ok := numeralData(d)
					return ok && n.Value >= 20 && n.Value <= 90 && int64(n.Value)%10 == 0
				}),
				rule.RX(`-`),
				rule.P(func(d token.Data) bool {
					n, ok := numeralData(d)
					return ok && n.Value >= 1 && n.Value <= 9
				}),
			},
			Production: func(nodes []*token.Node) (token.Data, bool) {
				tens, ok := numeralData(nodes[0].Data)
				if !ok {
					return nil, false
				}
				units, ok := numeralData(nodes[2].Data)
				if !ok {
					return nil, false
				}
				return token.Numeral{Value: tens.Value + units.Value}, true
			},
		},
		{
			Name: "integer compose (tens + units)",
			Pattern: []rule.Item{
				rule.P(func(d token.Data) bool {
					n, ok := numeralData(d)
					return ok && n.Value >= 20 && n.Value <= 90 && int64(n.Value)%10 == 0
				}),
				rule.P(func(d token.Data) bool {
					n, ok := numeralData(d)
					return ok && n.Value >= 1 && n.Value <= 9
				}),
			},
			Production: func(nodes []*token.Node) (token.Data, bool) {
				tens, ok := numeralData(nodes[0].Data)
				if !ok {
					return nil, false
				}
				units, ok := numeralData(nodes[1].Data)
				if !ok {
					return nil, false
				}
				return token.Numeral{Value: tens.Value + units.Value}, true
			},
		},
		{
			Name:    "integer (numeric)",
			Pattern: []rule.Item{rule.RX(`(\d{1,18})`)},
			Production: func(nodes []*token.Node) (token.Data, bool) {
				text, ok := regexGroup(nodes[0], 1)
				if !ok {
					return nil, false
				}
				v, err := strconv.ParseFloat(text, 64)
				if err != nil {
					return nil, false
				}
				return token.Numeral{Value: v}, true
			},
		},
		{
			Name:    "decimal number",
			Pattern: []rule.Item{rule.RX(`(\d*\.\d+)`)},
			Production: func(nodes []*token.Node) (token.Data, bool) {
				text, ok := regexGroup(nodes[0], 1)
				if !ok {
					return nil, false
				}
				v, err := strconv.ParseFloat(text, 64)
				if err != nil {
					return nil, false
				}
				return token.Numeral{Value: v}, true
			},
		},
		{
			Name: "negative number",
			Pattern: []rule.Item{
				rule.RX(`(-|minus|negative)\s?`),
				rule.D(token.NumberDim),
			},
			Production: func(nodes []*token.Node) (token.Data, bool) {
				n, ok := numeralData(nodes[1].Data)
				if !ok {
					return nil, false
				}
				return token.Numeral{Value: -n.Value}, true
			},
		},
		{
			Name:    "hundred",
			Pattern: []rule.Item{rule.RX(`(hundred|hundreds)`)},
			Production: func(nodes []*token.Node) (token.Data, bool) {
				return token.Numeral{Value: 100}.WithGrain(2).WithMultipliable(true), true
			},
		},
		{
			Name:    "thousand",
			Pattern: []rule.Item{rule.RX(`(thousand|thousands)`)},
			Production: func(nodes []*token.Node) (token.Data, bool) {
				return token.Numeral{Value: 1000}.WithGrain(3).WithMultipliable(true), true
			},
		},
		{
			Name:    "million",
			Pattern: []rule.Item{rule.RX(`(million|millions)`)},
			Production: func(nodes []*token.Node) (token.Data, bool) {
				return token.Numeral{Value: 1_000_000}.WithGrain(6).WithMultipliable(true), true
			},
		},
		{
			Name:    "billion",
			Pattern: []rule.Item{rule.RX(`(billion|billions)`)},
			Production: func(nodes []*token.Node) (token.Data, bool) {
				return token.Numeral{Value: 1_000_000_000}.WithGrain(9).WithMultipliable(true), true
			},
		},
		{
			Name:    "number suffixes (K, M, G)",
			Pattern: []rule.Item{rule.RX(`(\d+(?:\.\d+)?)\s*(k|m|g|b)`)},
			Production: func(nodes []*token.Node) (token.Data, bool) {
				numText, ok := regexGroup(nodes[0], 1)
				if !ok {
					return nil, false
				}
				suffix, ok := regexGroup(nodes[0], 2)
				if !ok {
					return nil, false
				}
				num, err := strconv.ParseFloat(numText, 64)
				if err != nil {
					return nil, false
				}
				var mult float64
				switch strings.ToLower(suffix) {
				case "k":
					mult = 1_000
				case "m":
					mult = 1_000_000
				case "g", "b":
					mult = 1_000_000_000
				default:
					return nil, false
				}
				return token.Numeral{Value: num * mult}, true
			},
		},
		{
			Name: "compose (multiplier)",
			Pattern: []rule.Item{
				rule.P(func(d token.Data) bool {
					n, ok := numeralData(d)
					return ok && n.Value >= 1 && n.Value <= 99
				}),
				rule.P(isMultipliable),
			},
			Production: func(nodes []*token.Node) (token.Data, bool) {
				base, ok := numeralData(nodes[0].Data)
				if !ok {
					return nil, false
				}
				mult, ok := numeralData(nodes[1].Data)
				if !ok {
					return nil, false
				}
				grain := 0
				if mult.Grain != nil {
					grain = *mult.Grain
				}
				return token.Numeral{Value: base.Value * mult.Value}.WithGrain(grain), true
			},
		},
		{
			Name:    "number with commas",
			Pattern: []rule.Item{rule.RX(`(\d{1,3}(?:,\d{3})+)`)},
			Production: func(nodes []*token.Node) (token.Data, bool) {
				text, ok := regexGroup(nodes[0], 1)
				if !ok {
					return nil, false
				}
				cleaned := strings.ReplaceAll(text, ",", "")
				v, err := strconv.ParseFloat(cleaned, 64)
				if err != nil {
					return nil, false
				}
				return token.Numeral{Value: v}, true
			},
		},
		{
			Name:    "a pair / a couple",
			Pattern: []rule.Item{rule.RX(`(a\s+)?(pair|couple)(\s+of)?`)},
			Production: func(nodes []*token.Node) (token.Data, bool) {
				return token.Numeral{Value: 2}, true
			},
		},
		{
			Name:    "a dozen",
			Pattern: []rule.Item{rule.RX(`(a\s+)?dozen`)},
			Production: func(nodes []*token.Node) (token.Data, bool) {
				return token.Numeral{Value: 12}, true
			},
		},
		{
			Name: "sum composite",
			Pattern: []rule.Item{
				rule.P(func(d token.Data) bool {
					n, ok := numeralData(d)
					return ok && n.Value >= 100 && n.Grain != nil
				}),
				rule.P(func(d token.Data) bool {
					n, ok := numeralData(d)
					return ok && n.Value >= 1 && n.Value <= 99
				}),
			},
			Production: func(nodes []*token.Node) (token.Data, bool) {
				big, ok := numeralData(nodes[0].Data)
				if !ok {
					return nil, false
				}
				small, ok := numeralData(nodes[1].Data)
				if !ok {
					return nil, false
				}
				if big.Value <= small.Value {
					return nil, false
				}
				return token.Numeral{Value: big.Value + small.Value}, true
			},
		},
	}
}
