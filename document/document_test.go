package document

import "testing"

func TestBasicDocument(t *testing.T) {
	d := New("hello world")
	if d.Text() != "hello world" {
		t.Errorf("Text() = %q", d.Text())
	}
	if d.Lower() != "hello world" {
		t.Errorf("Lower() = %q", d.Lower())
	}
	if d.Len() != 11 {
		t.Errorf("Len() = %d", d.Len())
	}
}

func TestAdjacency(t *testing.T) {
	d := New("hello world")
	if !d.IsAdjacent(5, 6) {
		t.Error("expected adjacency across single space")
	}
	if !d.IsAdjacent(5, 5) {
		t.Error("expected adjacency for empty gap")
	}
	if !d.IsAdjacent(0, 0) {
		t.Error("expected adjacency at start")
	}
	if d.IsAdjacent(6, 5) {
		t.Error("did not expect adjacency when endA > startB")
	}
}

func TestAdjacencyRejectsNonWhitespace(t *testing.T) {
	d := New("hello,world")
	if d.IsAdjacent(5, 6) {
		t.Error("did not expect adjacency across a comma")
	}
}

func TestWordBoundary(t *testing.T) {
	d := New("hello world")
	if !d.IsWordBoundary(0) {
		t.Error("expected boundary at 0")
	}
	if !d.IsWordBoundary(5) {
		t.Error("expected boundary at the space")
	}
	if !d.IsWordBoundary(6) {
		t.Error("expected boundary after the space")
	}
	if d.IsWordBoundary(3) {
		t.Error("did not expect boundary inside 'hello'")
	}
	if !d.IsWordBoundary(len(d.Text())) {
		t.Error("expected boundary at end of text")
	}
}

func TestCasePreservedInSubstring(t *testing.T) {
	d := New("Visit HTTPS://Example.COM now")
	if got := d.Substring(6, 25); got != "HTTPS://Example.COM" {
		t.Errorf("Substring() = %q", got)
	}
	if got := d.Lower()[6:25]; got != "https://example.com" {
		t.Errorf("Lower()[6:25] = %q", got)
	}
}
