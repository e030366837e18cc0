package world

import (
	"errors"
	"testing"
)

func TestGraphLookupFirstMatch(t *testing.T) {
	g := NewGraph([]Connection{
		{From: "D00", To: "D01", Room: "b", Offset: Vec{X: 40}},
		{From: "D01", To: "D00", Room: "a", Offset: Vec{X: -60}},
		{From: "D00", To: "D02", Room: "c"},
	})

	c, err := g.Lookup("D00")
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if c.To != "D01" || c.Room != "b" || c.Offset.X != 40 {
		t.Errorf("Lookup returned %+v, want the first declared D00 connection", c)
	}

	if _, err := g.Lookup("D05"); !errors.Is(err, ErrNoConnection) {
		t.Errorf("Lookup of unconnected door: error = %v, want ErrNoConnection", err)
	}
}

func TestGraphLint(t *testing.T) {
	g := NewGraph([]Connection{
		{From: "D00", To: "D01", Room: "b"},
		{From: "D01", To: "D00", Room: "a"},
		{From: "D00", To: "D02", Room: "c"},
	})

	warnings := g.Lint()
	if len(warnings) != 1 {
		t.Fatalf("Expected 1 warning, got %d: %v", len(warnings), warnings)
	}

	clean := NewGraph([]Connection{{From: "D00", To: "D01", Room: "b"}})
	if w := clean.Lint(); len(w) != 0 {
		t.Errorf("Expected no warnings, got %v", w)
	}
}
