package en

import (
	"strconv"
	"strings"

	"github.com/extractly/duckling/rule"
	"github.com/extractly/duckling/token"
)

// OrdinalRules recognizes written ordinals ("first" through "twentieth")
// and digit-suffix ordinals ("1st", "22nd"), grounded in the same
// regex-leaf/spelled-word style as the numeral grammar.
func OrdinalRules() []rule.Rule {
	words := map[string]int64{
		"first": 1, "second": 2, "third": 3, "fourth": 4, "fifth": 5,
		"sixth": 6, "seventh": 7, "eighth": 8, "ninth": 9, "tenth": 10,
		"eleventh": 11, "twelfth": 12, "thirteenth": 13, "fourteenth": 14,
		"fifteenth": 15, "sixteenth": 16, "seventeenth": 17, "eighteenth": 18,
		"nineteenth": 19, "twentieth": 20,
	}

	return []rule.Rule{
		{
			Name: "ordinal (words)",
			Pattern: []rule.Item{rule.RX(`(first|second|third|fourth|fifth|sixth|seventh|eighth|ninth|tenth|` +
				`eleventh|twelfth|thirteenth|fourteenth|fifteenth|sixteenth|seventeenth|eighteenth|nineteenth|twentieth)`)},
			Production: func(nodes []*token.Node) (token.Data, bool) {
				text, ok := regexGroup(nodes[0], 1)
				if !ok {
					return nil, false
				}
				v, ok := words[strings.ToLower(text)]
				if !ok {
					return nil, false
				}
				return token.Ordinal{Value: v}, true
			},
		},
		{
			Name:    "ordinal (digits)",
			Pattern: []rule.Item{rule.RX(`(\d{1,4})(st|nd|rd|th)`)},
			Production: func(nodes []*token.Node) (token.Data, bool) {
				text, ok := regexGroup(nodes[0], 1)
				if !ok {
					return nil, false
				}
				v, err := strconv.ParseInt(text, 10, 64)
				if err != nil {
					return nil, false
				}
				return token.Ordinal{Value: v}, true
			},
		},
	}
}
