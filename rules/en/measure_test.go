package en

import (
	"testing"

	"github.com/extractly/duckling/engine"
	"github.com/extractly/duckling/locale"
	"github.com/extractly/duckling/token"
)

func parseDim(text string, dim token.Dimension) []*token.Node {
	rules := locale.Rules(locale.English, []token.Dimension{dim})
	st := engine.Parse(text, rules)
	var out []*token.Node
	for _, n := range st.AllNodes() {
		if dk, ok := n.DimensionKind(); ok && dk == dim {
			out = append(out, n)
		}
	}
	return out
}

func TestTemperatureFahrenheit(t *testing.T) {
	nodes := parseDim("72 degrees fahrenheit", token.TemperatureDim)
	var found bool
	for _, n := range nodes {
		temp := n.Data.(token.Temperature)
		if temp.Value == 72 && temp.Unit != nil && *temp.Unit == "fahrenheit" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a 72 fahrenheit node among %+v", nodes)
	}
}

func TestTemperatureBareDegreesIsLatent(t *testing.T) {
	nodes := parseDim("72 degrees", token.TemperatureDim)
	var found bool
	for _, n := range nodes {
		temp := n.Data.(token.Temperature)
		if temp.Value == 72 {
			if !temp.Latent {
				t.Fatalf("a bare-degree temperature must be latent")
			}
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a 72-degree node among %+v", nodes)
	}
}

func TestTemperatureBelowZero(t *testing.T) {
	nodes := parseDim("minus 5 celsius", token.TemperatureDim)
	var found bool
	for _, n := range nodes {
		temp := n.Data.(token.Temperature)
		if temp.Value == -5 && temp.Unit != nil && *temp.Unit == "celsius" {
			if temp.Latent {
				t.Fatalf("a signed unit-bearing temperature must not be latent")
			}
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a -5 celsius node among %+v", nodes)
	}
}

func TestDistanceKilometers(t *testing.T) {
	nodes := parseDim("5 km", token.DistanceDim)
	var found bool
	for _, n := range nodes {
		d := n.Data.(token.Distance)
		if d.Value == 5 && d.Unit == "kilometre" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a 5 kilometre node among %+v", nodes)
	}
}

func TestVolumeLiters(t *testing.T) {
	nodes := parseDim("2 liters", token.VolumeDim)
	var found bool
	for _, n := range nodes {
		v := n.Data.(token.Volume)
		if v.Value == 2 && v.Unit == "litre" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a 2 litre node among %+v", nodes)
	}
}

func TestQuantityOfProduct(t *testing.T) {
	nodes := parseDim("3 cups of flour", token.QuantityDim)
	var found bool
	for _, n := range nodes {
		q := n.Data.(token.Quantity)
		if q.Value == 3 && q.Unit != nil && *q.Unit == "cup" && q.Product != nil && *q.Product == "flour" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a 3-cup-of-flour node among %+v", nodes)
	}
}
