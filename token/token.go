// Package token defines the tagged union of per-dimension token payloads
// produced by rule productions, plus the generic regex-capture payload and
// the chart node that wraps a payload with its span and derivation.
package token

// Dimension identifies a top-level entity kind. A Data value carries exactly
// one of these (or none, for a bare RegexMatch leaf). Constants use a Dim
// suffix so they never collide with the Go type name of the same concept
// (DurationDim the tag, Duration the payload struct).
type Dimension string

const (
	NumberDim           Dimension = "number"
	OrdinalDim          Dimension = "ordinal"
	DurationDim         Dimension = "duration"
	TimeGrainDim        Dimension = "time-grain"
	TimeDim             Dimension = "time"
	TemperatureDim      Dimension = "temperature"
	DistanceDim         Dimension = "distance"
	VolumeDim           Dimension = "volume"
	QuantityDim         Dimension = "quantity"
	AmountOfMoneyDim    Dimension = "amount-of-money"
	EmailDim            Dimension = "email"
	PhoneNumberDim      Dimension = "phone-number"
	URLDim              Dimension = "url"
	CreditCardNumberDim Dimension = "credit-card-number"
)

// AllDimensions lists every dimension the engine knows. The locale layer
// resolves "dims empty means all" from its own per-locale list instead.
var AllDimensions = []Dimension{
	NumberDim, OrdinalDim, DurationDim, TimeGrainDim, TimeDim, TemperatureDim,
	DistanceDim, VolumeDim, QuantityDim, AmountOfMoneyDim, EmailDim,
	PhoneNumberDim, URLDim, CreditCardNumberDim,
}

// Data is the tagged union of token payloads. Every dimension-carrying
// variant plus RegexMatch implements it; Dimension returns (kind, true) for
// dimension-carrying variants and (_, false) for RegexMatch, mirroring the
// source's `token_data.dimension_kind() -> Option<DimensionKind>`.
type Data interface {
	isToken()
	Dimension() (Dimension, bool)
}

// RegexMatch is the leaf payload produced by a regex pattern item: the
// captured groups from the original (case-preserving) text. Groups[0] is
// the full match when present; a nil entry means that group did not
// participate in the match.
type RegexMatch struct {
	Groups []*string
}

func (RegexMatch) isToken()                     {}
func (RegexMatch) Dimension() (Dimension, bool) { return "", false }

// Group returns the i-th captured group, or ("", false) if it did not
// participate in the match or is out of range.
func (m RegexMatch) Group(i int) (string, bool) {
	if i < 0 || i >= len(m.Groups) || m.Groups[i] == nil {
		return "", false
	}
	return *m.Groups[i], true
}

// Numeral is the resolved value of a numeric expression, written or spelled
// out. Grain and Multipliable support composition: "five hundred" combines a
// base numeral with a multiplier numeral whose Grain is 2 (hundred), and
// "twenty" is not itself multipliable.
type Numeral struct {
	Value        float64
	Grain        *int
	Multipliable bool
	Latent       bool
}

func (Numeral) isToken()                     {}
func (Numeral) Dimension() (Dimension, bool) { return NumberDim, true }
func (n Numeral) IsLatent() bool             { return n.Latent }

// WithGrain returns a copy with Grain set.
func (n Numeral) WithGrain(g int) Numeral { n.Grain = &g; return n }

// WithMultipliable returns a copy with Multipliable set.
func (n Numeral) WithMultipliable(m bool) Numeral { n.Multipliable = m; return n }

// Ordinal is a resolved ordinal number ("third", "3rd" -> 3).
type Ordinal struct {
	Value int64
}

func (Ordinal) isToken()                     {}
func (Ordinal) Dimension() (Dimension, bool) { return OrdinalDim, true }

// Duration is a resolved span of time expressed as a count of a single
// grain (durations of mixed grain are resolved into the finest grain via
// Combine, matching the source's DurationData::combine).
type Duration struct {
	Value int64
	Grain Grain
}

func (Duration) isToken()                     {}
func (Duration) Dimension() (Dimension, bool) { return DurationDim, true }

// Combine merges a larger-grain duration with a smaller-grain one. Exact
// conversion across irregular grains (months, years) is not possible without
// a calendar, so Combine only succeeds when both grains convert via the
// fixed-ratio table below.
func (d Duration) Combine(other Duration) (Duration, bool) {
	if d.Grain <= other.Grain {
		return Duration{}, false
	}
	factor, ok := fixedRatio(d.Grain, other.Grain)
	if !ok {
		return Duration{}, false
	}
	return Duration{Value: d.Value*factor + other.Value, Grain: other.Grain}, true
}

func fixedRatio(coarse, fine Grain) (int64, bool) {
	ratios := map[[2]Grain]int64{
		{Minute, Second}: 60,
		{Hour, Minute}:   60,
		{Hour, Second}:   3600,
		{Day, Hour}:      24,
		{Day, Minute}:    1440,
		{Day, Second}:    86400,
		{Week, Day}:      7,
	}
	if r, ok := ratios[[2]Grain{coarse, fine}]; ok {
		return r, true
	}
	return 0, false
}

// TimeGrainToken is a bare grain word ("day", "week") before it composes
// into a Duration or a Time relative expression.
type TimeGrainToken struct {
	Grain Grain
}

func (TimeGrainToken) isToken()                     {}
func (TimeGrainToken) Dimension() (Dimension, bool) { return TimeGrainDim, true }

// Temperature is a resolved temperature value; Unit is nil for a bare
// "3 degrees" (latent, unit resolved only in context).
type Temperature struct {
	Value  float64
	Unit   *string
	Latent bool
}

func (Temperature) isToken()                     {}
func (Temperature) Dimension() (Dimension, bool) { return TemperatureDim, true }

// Distance is a resolved length measurement.
type Distance struct {
	Value float64
	Unit  string
}

func (Distance) isToken()                     {}
func (Distance) Dimension() (Dimension, bool) { return DistanceDim, true }

// Volume is a resolved volume measurement.
type Volume struct {
	Value float64
	Unit  string
}

func (Volume) isToken()                     {}
func (Volume) Dimension() (Dimension, bool) { return VolumeDim, true }

// Quantity is a resolved count of some product ("5 pounds of flour").
type Quantity struct {
	Value   float64
	Unit    *string
	Product *string
}

func (Quantity) isToken()                     {}
func (Quantity) Dimension() (Dimension, bool) { return QuantityDim, true }

// AmountOfMoney is a resolved monetary amount.
type AmountOfMoney struct {
	Value float64
	Unit  *string
}

func (AmountOfMoney) isToken()                     {}
func (AmountOfMoney) Dimension() (Dimension, bool) { return AmountOfMoneyDim, true }

// Email is a resolved email address.
type Email struct {
	Value string
}

func (Email) isToken()                     {}
func (Email) Dimension() (Dimension, bool) { return EmailDim, true }

// PhoneNumber is a resolved phone number.
type PhoneNumber struct {
	Value string
}

func (PhoneNumber) isToken()                     {}
func (PhoneNumber) Dimension() (Dimension, bool) { return PhoneNumberDim, true }

// URLToken is a resolved URL.
type URLToken struct {
	Value  string
	Domain string
}

func (URLToken) isToken()                     {}
func (URLToken) Dimension() (Dimension, bool) { return URLDim, true }

// CreditCardNumber is a resolved credit card number with an optional issuer
// guess from the IIN range.
type CreditCardNumber struct {
	Value  string
	Issuer *string
}

func (CreditCardNumber) isToken()                     {}
func (CreditCardNumber) Dimension() (Dimension, bool) { return CreditCardNumberDim, true }

// TimeToken wraps a TimeForm, the unresolved shape of a date/time
// expression; resolution against a Context happens in package resolve.
type TimeToken struct {
	Form   TimeForm
	Latent bool
}

func (TimeToken) isToken()                     {}
func (TimeToken) Dimension() (Dimension, bool) { return TimeDim, true }
