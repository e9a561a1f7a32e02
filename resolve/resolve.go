// Package resolve turns a saturated chart node into a language-neutral
// entity.Value. It never mutates its input; every function here is a pure
// projection from a token.Node (plus the ambient Context) to an
// entity.Entity.
package resolve

import (
	"time"

	"github.com/extractly/duckling/entity"
	"github.com/extractly/duckling/locale"
	"github.com/extractly/duckling/token"
)

// Context anchors resolution: ReferenceTime is "now" for relative
// expressions ("tomorrow", "in 3 days"). Locale records the caller's
// locale; no resolver in this package reads it, so weeks always start on
// Monday whatever the locale.
type Context struct {
	ReferenceTime time.Time
	Locale        locale.Locale
}

// Options controls resolution-time filtering.
type Options struct {
	WithLatent bool
}

// Resolve converts node into an Entity, or returns (Entity{}, false) when
// the node's payload has no resolved value (a bare RegexMatch leaf, or a
// token whose value turned out to be ill-formed, e.g. February 30th).
func Resolve(node *token.Node, ctx Context, opts Options, text string) (entity.Entity, bool) {
	dk, hasDim := node.DimensionKind()
	if !hasDim {
		return entity.Entity{}, false
	}

	value, latent, ok := resolveToken(node.Data, ctx)
	if !ok {
		return entity.Entity{}, false
	}
	if latent && !opts.WithLatent {
		return entity.Entity{}, false
	}

	e := entity.Entity{
		Body:  text[node.Range.Start:node.Range.End],
		Start: node.Range.Start,
		End:   node.Range.End,
		Dim:   string(dk),
		Value: value,
	}
	if latent {
		t := true
		e.Latent = &t
	}
	return e, true
}

func resolveToken(data token.Data, ctx Context) (entity.Value, bool, bool) {
	switch d := data.(type) {
	case token.Numeral:
		return resolveNumeral(d), d.Latent, true
	case token.Ordinal:
		return resolveOrdinal(d), false, true
	case token.Temperature:
		v, ok := resolveTemperature(d)
		return v, d.Latent, ok
	case token.Distance:
		return resolveDistance(d), false, true
	case token.Volume:
		return resolveVolume(d), false, true
	case token.Quantity:
		return resolveQuantity(d), false, true
	case token.AmountOfMoney:
		return resolveAmountOfMoney(d), false, true
	case token.Email:
		return resolveEmail(d), false, true
	case token.PhoneNumber:
		return resolvePhoneNumber(d), false, true
	case token.URLToken:
		return resolveURL(d), false, true
	case token.CreditCardNumber:
		return resolveCreditCardNumber(d), false, true
	case token.TimeGrainToken:
		return resolveTimeGrain(d), false, true
	case token.Duration:
		return resolveDuration(d), false, true
	case token.TimeToken:
		v, ok := resolveTime(d, ctx)
		return v, d.Latent, ok
	default:
		return nil, false, false
	}
}

func resolveNumeral(d token.Numeral) entity.Value {
	return entity.Value{"value": d.Value, "type": "value"}
}

func resolveOrdinal(d token.Ordinal) entity.Value {
	return entity.Value{"value": d.Value, "type": "value"}
}

func resolveTemperature(d token.Temperature) (entity.Value, bool) {
	v := entity.Value{"value": d.Value, "type": "value"}
	if d.Unit != nil {
		v["unit"] = *d.Unit
	}
	return v, true
}

func resolveDistance(d token.Distance) entity.Value {
	return entity.Value{"value": d.Value, "unit": d.Unit, "type": "value"}
}

func resolveVolume(d token.Volume) entity.Value {
	return entity.Value{"value": d.Value, "unit": d.Unit, "type": "value"}
}

func resolveQuantity(d token.Quantity) entity.Value {
	v := entity.Value{"value": d.Value, "type": "value"}
	if d.Unit != nil {
		v["unit"] = *d.Unit
	}
	if d.Product != nil {
		v["product"] = *d.Product
	}
	return v
}

func resolveAmountOfMoney(d token.AmountOfMoney) entity.Value {
	v := entity.Value{"value": d.Value, "type": "value"}
	if d.Unit != nil {
		v["unit"] = *d.Unit
	}
	return v
}

func resolveEmail(d token.Email) entity.Value {
	return entity.Value{"value": d.Value}
}

func resolvePhoneNumber(d token.PhoneNumber) entity.Value {
	return entity.Value{"value": d.Value}
}

func resolveURL(d token.URLToken) entity.Value {
	return entity.Value{"value": d.Value, "domain": d.Domain}
}

func resolveCreditCardNumber(d token.CreditCardNumber) entity.Value {
	v := entity.Value{"value": d.Value}
	if d.Issuer != nil {
		v["issuer"] = *d.Issuer
	}
	return v
}

func resolveTimeGrain(d token.TimeGrainToken) entity.Value {
	return entity.Value{"value": d.Grain.String(), "type": "value"}
}

func resolveDuration(d token.Duration) entity.Value {
	return entity.Value{
		"value": d.Value,
		"unit":  d.Grain.String(),
		"normalized": entity.Value{
			"value": normalizeToSeconds(d),
			"unit":  "second",
		},
	}
}

// normalizeToSeconds converts a duration to seconds using fixed ratios for
// the regular grains and the source's calendar approximations (30-day
// months, 365-day years) for the irregular ones, purely for the
// "normalized" convenience field.
func normalizeToSeconds(d token.Duration) int64 {
	perUnit := map[token.Grain]int64{
		token.Second:  1,
		token.Minute:  60,
		token.Hour:    3600,
		token.Day:     86400,
		token.Week:    7 * 86400,
		token.Month:   30 * 86400,
		token.Quarter: 91 * 86400,
		token.Year:    365 * 86400,
	}
	return d.Value * perUnit[d.Grain]
}
