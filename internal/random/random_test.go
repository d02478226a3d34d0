package random

import "testing"

func TestNewSeededIsDeterministic(t *testing.T) {
	a := NewSeeded(42)
	b := NewSeeded(42)
	for i := 0; i < 20; i++ {
		if x, y := a.Intn(1000), b.Intn(1000); x != y {
			t.Fatalf("draw %d: got %d and %d from equal seeds", i, x, y)
		}
	}
}

func TestPick(t *testing.T) {
	src := NewSeeded(7)
	if _, ok := Pick[string](src, nil); ok {
		t.Fatal("expected ok=false for empty slice")
	}
	items := []string{"A", "B", "C"}
	for i := 0; i < 50; i++ {
		got, ok := Pick(src, items)
		if !ok {
			t.Fatal("expected ok=true")
		}
		if got != "A" && got != "B" && got != "C" {
			t.Fatalf("unexpected pick %q", got)
		}
	}
}

func TestNewSeed(t *testing.T) {
	if _, err := NewSeed(); err != nil {
		t.Fatalf("NewSeed: %v", err)
	}
}
