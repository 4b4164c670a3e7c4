package springy

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// Vec2 is a 2D kinematic quantity backed by mgl64.
type Vec2 mgl64.Vec2

func (v Vec2) String() string {
	return fmt.Sprintf("%f,%f", v[0], v[1])
}

func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2(mgl64.Vec2(v).Add(mgl64.Vec2(other)))
}

func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2(mgl64.Vec2(v).Sub(mgl64.Vec2(other)))
}

func (v Vec2) Neg() Vec2 {
	return Vec2(mgl64.Vec2(v).Mul(-1))
}

func (v Vec2) Mult(s float64) Vec2 {
	return Vec2(mgl64.Vec2(v).Mul(s))
}

func (v Vec2) MulElem(other Vec2) Vec2 {
	return Vec2{v[0] * other[0], v[1] * other[1]}
}

func (v Vec2) Length() float64 {
	return mgl64.Vec2(v).Len()
}

func (v Vec2) NormalizeOrZero() Vec2 {
	length := mgl64.Vec2(v).Len()
	if length == 0 {
		return Vec2{}
	}
	return v.Mult(1.0 / length)
}

func (v Vec2) Dot(other Vec2) float64 {
	return mgl64.Vec2(v).Dot(mgl64.Vec2(other))
}

// Cross is the 2D cross product analog: the magnitude of the z component of
// the 3D cross product.
func (v Vec2) Cross(other Vec2) float64 {
	return v[0]*other[1] - v[1]*other[0]
}

// Perp returns v rotated by 90 degrees counter-clockwise.
func (v Vec2) Perp() Vec2 {
	return Vec2{-v[1], v[0]}
}

func (v Vec2) Inverse() Vec2 {
	return Vec2{inverse(v[0]), inverse(v[1])}
}

// Vec3 is a 3D kinematic quantity backed by mgl64.
type Vec3 mgl64.Vec3

func (v Vec3) String() string {
	return fmt.Sprintf("%f,%f,%f", v[0], v[1], v[2])
}

func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3(mgl64.Vec3(v).Add(mgl64.Vec3(other)))
}

func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3(mgl64.Vec3(v).Sub(mgl64.Vec3(other)))
}

func (v Vec3) Neg() Vec3 {
	return Vec3(mgl64.Vec3(v).Mul(-1))
}

func (v Vec3) Mult(s float64) Vec3 {
	return Vec3(mgl64.Vec3(v).Mul(s))
}

func (v Vec3) MulElem(other Vec3) Vec3 {
	return Vec3{v[0] * other[0], v[1] * other[1], v[2] * other[2]}
}

func (v Vec3) Length() float64 {
	return mgl64.Vec3(v).Len()
}

func (v Vec3) NormalizeOrZero() Vec3 {
	length := mgl64.Vec3(v).Len()
	if length == 0 {
		return Vec3{}
	}
	return v.Mult(1.0 / length)
}

func (v Vec3) Dot(other Vec3) float64 {
	return mgl64.Vec3(v).Dot(mgl64.Vec3(other))
}

func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3(mgl64.Vec3(v).Cross(mgl64.Vec3(other)))
}

func (v Vec3) Inverse() Vec3 {
	return Vec3{inverse(v[0]), inverse(v[1]), inverse(v[2])}
}

// Splat3 returns the vector {s, s, s}, handy for isotropic mass and inertia.
func Splat3(s float64) Vec3 {
	return Vec3{s, s, s}
}
