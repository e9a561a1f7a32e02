package en

import (
	"strings"

	"github.com/extractly/duckling/rule"
	"github.com/extractly/duckling/token"
)

// MeasureRules covers temperature, distance, volume and quantity: units
// that, unlike money and duration, have no dedicated rule table to port
// from, so the grammar follows the numeral/duration rules' own
// "<number> <unit-word>" shape rather than a source file.
func MeasureRules() []rule.Rule {
	var rules []rule.Rule
	rules = append(rules, TemperatureRules()...)
	rules = append(rules, DistanceRules()...)
	rules = append(rules, VolumeRules()...)
	rules = append(rules, QuantityRules()...)
	return rules
}

// TemperatureRules recognizes bare-degree latent amounts and
// fahrenheit/celsius/kelvin-suffixed temperatures.
func TemperatureRules() []rule.Rule {
	return []rule.Rule{
		{
			Name:    "<latent temp> degrees",
			Pattern: []rule.Item{rule.D(token.NumberDim), rule.RX(`(degrees?|°)`)},
			Production: func(nodes []*token.Node) (token.Data, bool) {
				num, ok := numeralData(nodes[0].Data)
				if !ok {
					return nil, false
				}
				return token.Temperature{Value: num.Value, Latent: true}, true
			},
		},
		{
			Name:    "<temp> fahrenheit",
			Pattern: []rule.Item{rule.D(token.NumberDim), rule.RX(`(degrees?\s*)?(f\.?|fahrenheit)\.?`)},
			Production: func(nodes []*token.Node) (token.Data, bool) {
				num, ok := numeralData(nodes[0].Data)
				if !ok {
					return nil, false
				}
				unit := "fahrenheit"
				return token.Temperature{Value: num.Value, Unit: &unit}, true
			},
		},
		{
			Name:    "<temp> celsius",
			Pattern: []rule.Item{rule.D(token.NumberDim), rule.RX(`(degrees?\s*)?(c\.?|celsius|centigrade)\.?`)},
			Production: func(nodes []*token.Node) (token.Data, bool) {
				num, ok := numeralData(nodes[0].Data)
				if !ok {
					return nil, false
				}
				unit := "celsius"
				return token.Temperature{Value: num.Value, Unit: &unit}, true
			},
		},
		{
			Name:    "<temp> kelvin",
			Pattern: []rule.Item{rule.D(token.NumberDim), rule.RX(`(degrees?\s*)?(k\.?|kelvin)\.?`)},
			Production: func(nodes []*token.Node) (token.Data, bool) {
				num, ok := numeralData(nodes[0].Data)
				if !ok {
					return nil, false
				}
				unit := "kelvin"
				return token.Temperature{Value: num.Value, Unit: &unit}, true
			},
		},
		{
			Name:    "below zero <temp>",
			Pattern: []rule.Item{rule.RX(`(-|minus|below zero)\s?`), rule.D(token.TemperatureDim)},
			Production: func(nodes []*token.Node) (token.Data, bool) {
				t, ok := nodes[1].Data.(token.Temperature)
				if !ok {
					return nil, false
				}
				t.Value = -t.Value
				t.Latent = false
				return t, true
			},
		},
	}
}

func distanceUnitTable() []struct {
	pattern string
	unit    string
} {
	return []struct {
		pattern string
		unit    string
	}{
		{`km|kilometers?`, "kilometre"},
		{`m|meters?|metres?`, "metre"},
		{`cm|centimeters?`, "centimetre"},
		{`mm|millimeters?`, "millimetre"},
		{`mi|miles?`, "mile"},
		{`yd|yards?`, "yard"},
		{`ft|foot|feet`, "foot"},
		{`in|inch(es)?`, "inch"},
	}
}

// DistanceRules recognizes a number followed by a distance unit word.
func DistanceRules() []rule.Rule {
	var rules []rule.Rule
	for _, u := range distanceUnitTable() {
		u := u
		rules = append(rules, rule.Rule{
			Name:    "<distance> " + u.unit,
			Pattern: []rule.Item{rule.D(token.NumberDim), rule.RX(`(` + u.pattern + `)\.?`)},
			Production: func(nodes []*token.Node) (token.Data, bool) {
				num, ok := numeralData(nodes[0].Data)
				if !ok {
					return nil, false
				}
				return token.Distance{Value: num.Value, Unit: u.unit}, true
			},
		})
	}
	return rules
}

func volumeUnitTable() []struct {
	pattern string
	unit    string
} {
	return []struct {
		pattern string
		unit    string
	}{
		{`l|liters?|litres?`, "litre"},
		{`ml|milliliters?`, "millilitre"},
		{`gal|gallons?`, "gallon"},
		{`qt|quarts?`, "quart"},
		{`pt|pints?`, "pint"},
		{`fl\.?\s?oz|fluid ounces?`, "fluid-ounce"},
	}
}

// VolumeRules recognizes a number followed by a volume unit word.
func VolumeRules() []rule.Rule {
	var rules []rule.Rule
	for _, u := range volumeUnitTable() {
		u := u
		rules = append(rules, rule.Rule{
			Name:    "<volume> " + u.unit,
			Pattern: []rule.Item{rule.D(token.NumberDim), rule.RX(`(` + u.pattern + `)\.?`)},
			Production: func(nodes []*token.Node) (token.Data, bool) {
				num, ok := numeralData(nodes[0].Data)
				if !ok {
					return nil, false
				}
				return token.Volume{Value: num.Value, Unit: u.unit}, true
			},
		})
	}
	return rules
}

func quantityUnitTable() []struct {
	pattern string
	unit    string
} {
	return []struct {
		pattern string
		unit    string
	}{
		{`lbs?|pounds?`, "pound"},
		{`kg|kilograms?|kilos?`, "kilogram"},
		{`g|grams?`, "gram"},
		{`oz|ounces?`, "ounce"},
		{`cups?`, "cup"},
		{`dozen`, "dozen"},
	}
}

// QuantityRules recognizes a number followed by a count-noun unit word,
// plus an "of <product>" suffix composition.
func QuantityRules() []rule.Rule {
	var rules []rule.Rule
	for _, u := range quantityUnitTable() {
		u := u
		rules = append(rules, rule.Rule{
			Name:    "<quantity> " + u.unit,
			Pattern: []rule.Item{rule.D(token.NumberDim), rule.RX(`(` + u.pattern + `)\.?`)},
			Production: func(nodes []*token.Node) (token.Data, bool) {
				num, ok := numeralData(nodes[0].Data)
				if !ok {
					return nil, false
				}
				unit := u.unit
				return token.Quantity{Value: num.Value, Unit: &unit}, true
			},
		})
	}
	rules = append(rules, rule.Rule{
		Name:    "<quantity> of <product>",
		Pattern: []rule.Item{rule.D(token.QuantityDim), rule.RX(`of`), rule.RX(`([a-z]+(\s[a-z]+)?)`)},
		Production: func(nodes []*token.Node) (token.Data, bool) {
			q, ok := nodes[0].Data.(token.Quantity)
			if !ok {
				return nil, false
			}
			product, ok := regexGroup(nodes[2], 1)
			if !ok {
				return nil, false
			}
			product = strings.TrimSpace(product)
			q.Product = &product
			return q, true
		},
	})
	return rules
}
