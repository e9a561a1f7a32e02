package en

import (
	"strconv"
	"strings"

	"github.com/extractly/duckling/rule"
	"github.com/extractly/duckling/token"
)

// MoneyRules has no dedicated source rule table either; it follows the
// same "<number> <unit>" shape as measure.go, plus symbol-prefixed amounts
// ("$42.50") since currency symbols precede rather than follow the number.
func MoneyRules() []rule.Rule {
	return []rule.Rule{
		{
			Name:    "$<amount>",
			Pattern: []rule.Item{rule.RX(`\$\s?(\d+(?:,\d{3})*(?:\.\d+)?)`)},
			Production: func(nodes []*token.Node) (token.Data, bool) {
				text, ok := regexGroup(nodes[0], 1)
				if !ok {
					return nil, false
				}
				v, err := strconv.ParseFloat(strings.ReplaceAll(text, ",", ""), 64)
				if err != nil {
					return nil, false
				}
				unit := "USD"
				return token.AmountOfMoney{Value: v, Unit: &unit}, true
			},
		},
		{
			Name:    "£<amount>",
			Pattern: []rule.Item{rule.RX(`£\s?(\d+(?:,\d{3})*(?:\.\d+)?)`)},
			Production: func(nodes []*token.Node) (token.Data, bool) {
				text, ok := regexGroup(nodes[0], 1)
				if !ok {
					return nil, false
				}
				v, err := strconv.ParseFloat(strings.ReplaceAll(text, ",", ""), 64)
				if err != nil {
					return nil, false
				}
				unit := "GBP"
				return token.AmountOfMoney{Value: v, Unit: &unit}, true
			},
		},
		{
			Name:    "€<amount>",
			Pattern: []rule.Item{rule.RX(`€\s?(\d+(?:,\d{3})*(?:\.\d+)?)`)},
			Production: func(nodes []*token.Node) (token.Data, bool) {
				text, ok := regexGroup(nodes[0], 1)
				if !ok {
					return nil, false
				}
				v, err := strconv.ParseFloat(strings.ReplaceAll(text, ",", ""), 64)
				if err != nil {
					return nil, false
				}
				unit := "EUR"
				return token.AmountOfMoney{Value: v, Unit: &unit}, true
			},
		},
		{
			Name: "<amount> dollars/cents",
			Pattern: []rule.Item{
				rule.D(token.NumberDim),
				rule.RX(`(dollars?|bucks?|usd|cents?)`),
			},
			Production: func(nodes []*token.Node) (token.Data, bool) {
				num, ok := numeralData(nodes[0].Data)
				if !ok {
					return nil, false
				}
				word, ok := regexGroup(nodes[1], 1)
				if !ok {
					return nil, false
				}
				v := num.Value
				unit := "USD"
				if strings.HasPrefix(strings.ToLower(word), "cent") {
					v /= 100
				}
				return token.AmountOfMoney{Value: v, Unit: &unit}, true
			},
		},
		{
			Name: "<amount> euros",
			Pattern: []rule.Item{
				rule.D(token.NumberDim),
				rule.RX(`(euros?|eur)`),
			},
			Production: func(nodes []*token.Node) (token.Data, bool) {
				num, ok := numeralData(nodes[0].Data)
				if !ok {
					return nil, false
				}
				unit := "EUR"
				return token.AmountOfMoney{Value: num.Value, Unit: &unit}, true
			},
		},
		{
			Name: "<amount> pounds",
			Pattern: []rule.Item{
				rule.D(token.NumberDim),
				rule.RX(`(pounds?|quid|gbp)`),
			},
			Production: func(nodes []*token.Node) (token.Data, bool) {
				num, ok := numeralData(nodes[0].Data)
				if !ok {
					return nil, false
				}
				unit := "GBP"
				return token.AmountOfMoney{Value: num.Value, Unit: &unit}, true
			},
		},
		{
			Name:    "about|exactly <amount-of-money>",
			Pattern: []rule.Item{rule.RX(`(about|around|approximately|exactly)`), rule.D(token.AmountOfMoneyDim)},
			Production: func(nodes []*token.Node) (token.Data, bool) {
				return nodes[1].Data, true
			},
		},
	}
}
