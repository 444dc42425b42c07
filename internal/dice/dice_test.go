package dice

import (
	"testing"
)

func TestRollRange(t *testing.T) {
	r := New(nil)
	for i := 0; i < 1000; i++ {
		v := r.Roll(6)
		if v < 1 || v > 6 {
			t.Fatalf("roll %d outside [1,6]", v)
		}
	}
}

func TestSeededRollersMatch(t *testing.T) {
	a := New(&Config{Seed: 42})
	b := New(&Config{Seed: 42})
	for i := 0; i < 100; i++ {
		va, vb := a.Roll(6), b.Roll(6)
		if va != vb {
			t.Fatalf("roll %d: %d != %d", i, va, vb)
		}
	}
}

func TestRollInvalidSides(t *testing.T) {
	r := New(&Config{Seed: 1})
	if v := r.Roll(0); v < 1 || v > 6 {
		t.Errorf("roll with 0 sides = %d, want a d6 roll", v)
	}
}

func TestSequenceWraps(t *testing.T) {
	s := NewSequence(6, 3, 1)
	want := []int{6, 3, 1, 6, 3, 1}
	for i, w := range want {
		if v := s.Roll(6); v != w {
			t.Errorf("roll %d = %d, want %d", i, v, w)
		}
	}
}

func TestEmptySequencePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for empty sequence")
		}
	}()
	NewSequence()
}
