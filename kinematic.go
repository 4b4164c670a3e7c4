package springy

import "math"

// Kinematic is the capability set the spring math needs from a quantity
// type: a vector space over the reals plus length, zero-safe normalization,
// dot product and a per-axis reciprocal. Scalar, Vec2 and Vec3 implement it,
// so the same impulse formula runs over 1D, 2D and 3D springs.
//
// Inverse must return exactly 0 on any axis whose value is zero, infinite
// or NaN. This is how infinite mass is represented: a fixed body's inverse
// inertia is zero, which drops it out of the reduced-inertia sum without
// branching anywhere else.
type Kinematic[K any] interface {
	Add(K) K
	Sub(K) K
	Neg() K
	Mult(s float64) K
	// MulElem multiplies componentwise. Inertia is carried per axis, so
	// scaling a displacement by a reduced inertia is an elementwise product.
	MulElem(K) K
	Length() float64
	NormalizeOrZero() K
	Dot(K) float64
	Inverse() K
}

// Scalar adapts a single float64 to Kinematic for 1D springs.
//
// Length keeps the sign so that a scalar displacement reconstructs as
// unit*length; the "unit vector" of any non-zero scalar is 1.
type Scalar float64

func (s Scalar) Add(other Scalar) Scalar { return s + other }

func (s Scalar) Sub(other Scalar) Scalar { return s - other }

func (s Scalar) Neg() Scalar { return -s }

func (s Scalar) Mult(f float64) Scalar { return Scalar(float64(s) * f) }

func (s Scalar) MulElem(other Scalar) Scalar { return s * other }

func (s Scalar) Length() float64 { return float64(s) }

func (s Scalar) NormalizeOrZero() Scalar {
	if s == 0 {
		return 0
	}
	return 1
}

func (s Scalar) Dot(other Scalar) float64 { return float64(s * other) }

func (s Scalar) Inverse() Scalar { return Scalar(inverse(float64(s))) }

// inverse returns 1/v, or exactly 0 when v is zero, infinite or NaN.
func inverse(v float64) float64 {
	if v == 0 || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0
	}
	return 1.0 / v
}

func Clamp(f, min, max float64) float64 {
	return math.Min(math.Max(f, min), max)
}

func Clamp01(f float64) float64 {
	return math.Max(0, math.Min(f, 1))
}
