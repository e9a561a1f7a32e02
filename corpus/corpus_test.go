package corpus

import "testing"

const sample = `lang: en
ref_time: "2013-02-12T04:30:00Z"

example "tomorrow" -> time
example "five hundred twenty three" -> number: "523"
`

func TestParse(t *testing.T) {
	c, err := Parse(sample)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(c.Examples) != 2 {
		t.Fatalf("len(Examples) = %d, want 2", len(c.Examples))
	}
	if c.Examples[0].Text != "tomorrow" {
		t.Errorf("Examples[0].Text = %q", c.Examples[0].Text)
	}
	if c.Context.Locale.Lang != "en" {
		t.Errorf("Locale.Lang = %q, want en", c.Context.Locale.Lang)
	}
	if c.Context.ReferenceTime.Year() != 2013 {
		t.Errorf("ReferenceTime.Year() = %d, want 2013", c.Context.ReferenceTime.Year())
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	if _, err := Parse("not a valid corpus file"); err == nil {
		t.Error("expected an error parsing garbage input")
	}
}
