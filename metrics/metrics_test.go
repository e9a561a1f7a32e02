package metrics

import "testing"

func TestGetIsASingleton(t *testing.T) {
	a := Get()
	b := Get()
	if a != b {
		t.Error("Get() should return the same *Metrics instance every call")
	}
}

func TestObserveParseDoesNotPanic(t *testing.T) {
	m := Get()
	m.ObserveParse("en", 0.01, []string{"number", "time"})
	m.ObserveParse("en", 0.0, nil)
}
