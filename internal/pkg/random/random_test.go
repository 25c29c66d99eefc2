package random

import "testing"

func TestSeededSourceIsReproducible(t *testing.T) {
	a, b := New(99), New(99)
	for i := 0; i < 100; i++ {
		if x, y := a.Intn(37), b.Intn(37); x != y {
			t.Fatalf("draw %d differs: %d vs %d", i, x, y)
		}
	}
}

func TestIntnRange(t *testing.T) {
	src := New(0)
	for i := 0; i < 1000; i++ {
		if v := src.Intn(37); v < 0 || v > 36 {
			t.Fatalf("out of range: %d", v)
		}
	}
}
