package duckling

import (
	"testing"
	"time"

	"github.com/extractly/duckling/entity"
	"github.com/extractly/duckling/token"
)

func refTime() time.Time {
	return time.Date(2013, time.February, 12, 4, 30, 0, 0, time.UTC)
}

func findDim(entities []entity.Entity, dim string) (entity.Entity, bool) {
	for _, e := range entities {
		if e.Dim == dim {
			return e, true
		}
	}
	return entity.Entity{}, false
}

func TestParseNumeral(t *testing.T) {
	es := ParseEN("thirty three", []token.Dimension{token.NumberDim}, refTime(), Options{})
	e, ok := findDim(es, "number")
	if !ok {
		t.Fatalf("expected a number entity, got %+v", es)
	}
	if v, _ := e.Value["value"].(float64); v != 33 {
		t.Fatalf("expected 33, got %v", e.Value["value"])
	}
}

func TestParse100K(t *testing.T) {
	es := ParseEN("100K", []token.Dimension{token.NumberDim}, refTime(), Options{})
	e, ok := findDim(es, "number")
	if !ok {
		t.Fatalf("expected a number entity, got %+v", es)
	}
	if v, _ := e.Value["value"].(float64); v != 100000 {
		t.Fatalf("expected 100000, got %v", e.Value["value"])
	}
}

func TestParseTemperature(t *testing.T) {
	es := ParseEN("80 degrees fahrenheit", []token.Dimension{token.TemperatureDim}, refTime(), Options{})
	e, ok := findDim(es, "temperature")
	if !ok {
		t.Fatalf("expected a temperature entity, got %+v", es)
	}
	if v, _ := e.Value["value"].(float64); v != 80 {
		t.Fatalf("expected 80, got %v", e.Value["value"])
	}
	if u, _ := e.Value["unit"].(string); u != "fahrenheit" {
		t.Fatalf("expected fahrenheit, got %v", e.Value["unit"])
	}
}

func TestParseEmail(t *testing.T) {
	es := ParseEN("contact me at jane.doe@example.com please", []token.Dimension{token.EmailDim}, refTime(), Options{})
	e, ok := findDim(es, "email")
	if !ok {
		t.Fatalf("expected an email entity, got %+v", es)
	}
	if v, _ := e.Value["value"].(string); v != "jane.doe@example.com" {
		t.Fatalf("expected jane.doe@example.com, got %v", e.Value["value"])
	}
}

func TestParseMixedNumeralAndTemperature(t *testing.T) {
	// A bare "98.6 degrees" is a latent temperature, so latent entities are kept.
	es := ParseEN("set it to 5 for 10 minutes or 98.6 degrees", nil, refTime(), Options{WithLatent: true})
	if _, ok := findDim(es, "temperature"); !ok {
		t.Fatalf("expected a temperature entity among %+v", es)
	}
	if _, ok := findDim(es, "duration"); !ok {
		t.Fatalf("expected a duration entity among %+v", es)
	}
}

func TestParseURL(t *testing.T) {
	es := ParseEN("see https://www.example.com/docs for details", []token.Dimension{token.URLDim}, refTime(), Options{})
	e, ok := findDim(es, "url")
	if !ok {
		t.Fatalf("expected a url entity, got %+v", es)
	}
	if d, _ := e.Value["domain"].(string); d != "example.com" {
		t.Fatalf("expected domain example.com, got %v", e.Value["domain"])
	}
}

func TestParseMoney(t *testing.T) {
	es := ParseEN("it costs $42.50", []token.Dimension{token.AmountOfMoneyDim}, refTime(), Options{})
	e, ok := findDim(es, "amount-of-money")
	if !ok {
		t.Fatalf("expected a money entity, got %+v", es)
	}
	if v, _ := e.Value["value"].(float64); v != 42.5 {
		t.Fatalf("expected 42.5, got %v", e.Value["value"])
	}
	if u, _ := e.Value["unit"].(string); u != "USD" {
		t.Fatalf("expected USD, got %v", e.Value["unit"])
	}
}

func TestParseOrdinal(t *testing.T) {
	es := ParseEN("the 3rd", []token.Dimension{token.OrdinalDim}, refTime(), Options{})
	e, ok := findDim(es, "ordinal")
	if !ok {
		t.Fatalf("expected an ordinal entity, got %+v", es)
	}
	if v, _ := e.Value["value"].(int64); v != 3 {
		t.Fatalf("expected 3, got %v", e.Value["value"])
	}
}

func TestParseDuration(t *testing.T) {
	es := ParseEN("3 days", []token.Dimension{token.DurationDim}, refTime(), Options{})
	e, ok := findDim(es, "duration")
	if !ok {
		t.Fatalf("expected a duration entity, got %+v", es)
	}
	if v, _ := e.Value["value"].(int64); v != 3 {
		t.Fatalf("expected 3, got %v", e.Value["value"])
	}
	if u, _ := e.Value["unit"].(string); u != "day" {
		t.Fatalf("expected day, got %v", e.Value["unit"])
	}
}

func TestParseTimeToday(t *testing.T) {
	es := ParseEN("today", []token.Dimension{token.TimeDim}, refTime(), Options{})
	if _, ok := findDim(es, "time"); !ok {
		t.Fatalf("expected a time entity, got %+v", es)
	}
}

func TestParseDistance(t *testing.T) {
	es := ParseEN("5 miles", []token.Dimension{token.DistanceDim}, refTime(), Options{})
	e, ok := findDim(es, "distance")
	if !ok {
		t.Fatalf("expected a distance entity, got %+v", es)
	}
	if v, _ := e.Value["value"].(float64); v != 5 {
		t.Fatalf("expected 5, got %v", e.Value["value"])
	}
	if u, _ := e.Value["unit"].(string); u != "mile" {
		t.Fatalf("expected mile, got %v", e.Value["unit"])
	}
}

func TestParseVolume(t *testing.T) {
	es := ParseEN("2 gallons", []token.Dimension{token.VolumeDim}, refTime(), Options{})
	e, ok := findDim(es, "volume")
	if !ok {
		t.Fatalf("expected a volume entity, got %+v", es)
	}
	if u, _ := e.Value["unit"].(string); u != "gallon" {
		t.Fatalf("expected gallon, got %v", e.Value["unit"])
	}
}

func TestParseQuantity(t *testing.T) {
	es := ParseEN("5 pounds", []token.Dimension{token.QuantityDim}, refTime(), Options{})
	e, ok := findDim(es, "quantity")
	if !ok {
		t.Fatalf("expected a quantity entity, got %+v", es)
	}
	if v, _ := e.Value["value"].(float64); v != 5 {
		t.Fatalf("expected 5, got %v", e.Value["value"])
	}
}

func TestAllDimensionsAtOnce(t *testing.T) {
	es := ParseEN("tomorrow at 3pm for $50", nil, refTime(), Options{})
	if _, ok := findDim(es, "time"); !ok {
		t.Fatalf("expected a time entity among %+v", es)
	}
	if _, ok := findDim(es, "amount-of-money"); !ok {
		t.Fatalf("expected a money entity among %+v", es)
	}
}
