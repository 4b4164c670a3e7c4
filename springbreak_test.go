package springy

import (
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestSpringBreak_Default(t *testing.T) {
	b := DefaultSpringBreak()
	if b.Tear != 0 || b.TearForce != 1 || b.TearStep != 0.01 || b.HealStep != 0.01 {
		t.Errorf("Unexpected defaults: %+v", b)
	}
}

func TestSpringBreak_TearAndHeal(t *testing.T) {
	b := SpringBreak{TearForce: 10, TearStep: 0.2, HealStep: 0.05}

	if broke := b.Impulse(10); broke {
		t.Error("Broke on first overload")
	}
	if b.Tear != 0.2 {
		t.Errorf("Expected tear 0.2, got %v", b.Tear)
	}

	// below the threshold it heals back
	b.Impulse(9.99)
	if !scalar.EqualWithinAbs(b.Tear, 0.15, 1e-12) {
		t.Errorf("Expected tear 0.15, got %v", b.Tear)
	}
}

// Tear stays inside [0,1] for any impulse sequence and only moves in the
// direction the threshold dictates.
func TestSpringBreak_MonotonicClamp(t *testing.T) {
	b := SpringBreak{TearForce: 5, TearStep: 0.3, HealStep: 0.4}
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 1000; i++ {
		before := b.Tear
		magnitude := rng.Float64() * 10
		b.Impulse(magnitude)

		if b.Tear < 0 || b.Tear > 1 {
			t.Fatalf("Tear escaped [0,1]: %v", b.Tear)
		}
		if magnitude >= b.TearForce && b.Tear < before {
			t.Fatalf("Tear decreased under overload: %v -> %v", before, b.Tear)
		}
		if magnitude < b.TearForce && b.Tear > before {
			t.Fatalf("Tear increased while relaxed: %v -> %v", before, b.Tear)
		}
	}
}

func TestSpringBreak_HealNeverBelowZero(t *testing.T) {
	b := SpringBreak{TearForce: 1, TearStep: 0.01, HealStep: 0.5}
	for i := 0; i < 5; i++ {
		if broke := b.Impulse(0); broke {
			t.Fatal("Broke while idle")
		}
	}
	if b.Tear != 0 {
		t.Errorf("Expected tear 0, got %v", b.Tear)
	}
}
