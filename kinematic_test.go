package springy

import (
	"math"
	"testing"
)

func TestInverse_NonNormal(t *testing.T) {
	cases := []struct {
		in, out float64
	}{
		{0, 0},
		{math.Inf(1), 0},
		{math.Inf(-1), 0},
		{math.NaN(), 0},
		{2, 0.5},
		{-4, -0.25},
	}
	for _, c := range cases {
		if got := inverse(c.in); got != c.out {
			t.Errorf("inverse(%v) = %v, want %v", c.in, got, c.out)
		}
	}
}

func TestScalar_NormalizeOrZero(t *testing.T) {
	if got := Scalar(0).NormalizeOrZero(); got != 0 {
		t.Errorf("Expected zero, got %v", got)
	}
	if got := Scalar(-5).NormalizeOrZero(); got != 1 {
		t.Errorf("Expected 1, got %v", got)
	}
	// unit * length reconstructs the signed value
	s := Scalar(-5)
	if got := s.NormalizeOrZero().Mult(s.Length()); got != s {
		t.Errorf("Expected %v, got %v", s, got)
	}
}

func TestScalar_Ops(t *testing.T) {
	if got := Scalar(3).Add(4); got != 7 {
		t.Errorf("Expected 7, got %v", got)
	}
	if got := Scalar(3).Sub(4); got != -1 {
		t.Errorf("Expected -1, got %v", got)
	}
	if got := Scalar(3).Neg(); got != -3 {
		t.Errorf("Expected -3, got %v", got)
	}
	if got := Scalar(3).Mult(2); got != 6 {
		t.Errorf("Expected 6, got %v", got)
	}
	if got := Scalar(3).MulElem(4); got != 12 {
		t.Errorf("Expected 12, got %v", got)
	}
	if got := Scalar(3).Dot(4); got != 12 {
		t.Errorf("Expected 12, got %v", got)
	}
	if got := Scalar(4).Inverse(); got != 0.25 {
		t.Errorf("Expected 0.25, got %v", got)
	}
}
