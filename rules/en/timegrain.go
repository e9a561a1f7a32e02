package en

import (
	"github.com/extractly/duckling/rule"
	"github.com/extractly/duckling/token"
)

// TimeGrainRules recognizes a bare grain word ("second" through "year").
func TimeGrainRules() []rule.Rule {
	grains := []struct {
		name    string
		pattern string
		grain   token.Grain
	}{
		{"grain (second)", `seconds?`, token.Second},
		{"grain (minute)", `minutes?`, token.Minute},
		{"grain (hour)", `hours?`, token.Hour},
		{"grain (day)", `days?`, token.Day},
		{"grain (week)", `weeks?`, token.Week},
		{"grain (month)", `months?`, token.Month},
		{"grain (quarter)", `quarters?`, token.Quarter},
		{"grain (year)", `years?`, token.Year},
	}

	rules := make([]rule.Rule, 0, len(grains))
	for _, g := range grains {
		g := g
		rules = append(rules, rule.Rule{
			Name:    g.name,
			Pattern: []rule.Item{rule.RX(g.pattern)},
			Production: func(nodes []*token.Node) (token.Data, bool) {
				return token.TimeGrainToken{Grain: g.grain}, true
			},
		})
	}
	return rules
}
