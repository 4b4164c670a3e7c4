package springy

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Particle is one endpoint of a spring: a resistance to motion and the
// kinematic state at the anchor point. It is built fresh every evaluation,
// never retained.
//
// Inertia is carried per axis. An axis whose inertia is zero, infinite or
// NaN inverts to zero and therefore constrains nothing along that axis.
type Particle[K Kinematic[K]] struct {
	Inertia  K
	Position K
	Velocity K
}

// Instant is the per-step reduction of two endpoints into the quantities
// the impulse formula consumes.
type Instant[K Kinematic[K]] struct {
	// ReducedInertia is (1/a + 1/b)^-1 per axis. Infinite inertia on one
	// side yields the other side's inertia alone; infinite on both sides
	// yields zero and the spring exerts nothing.
	ReducedInertia K
	Displacement   K
	Velocity       K
}

// Instant reduces the two endpoints a and b. Displacement and velocity are
// measured from a to b, so the resulting impulse is added to b and
// subtracted from a.
func (a Particle[K]) Instant(b Particle[K]) Instant[K] {
	return Instant[K]{
		ReducedInertia: a.Inertia.Inverse().Add(b.Inertia.Inverse()).Inverse(),
		Displacement:   b.Position.Sub(a.Position),
		Velocity:       b.Velocity.Sub(a.Velocity),
	}
}

// AngularParticle is the rotational endpoint of a 3D angular spring.
// Axis is the body's reference axis rotated into world space and Velocity
// is the body's angular velocity.
type AngularParticle struct {
	Inertia  Vec3
	Axis     Vec3
	Velocity Vec3
}

// Instant reduces two angular endpoints. The angular displacement is
// approximated by the cross product of the two world axes, which is
// proportional to the rotational error only for small relative rotations.
// For large rotations use ExactAngularInstant.
func (a AngularParticle) Instant(b AngularParticle) Instant[Vec3] {
	return Instant[Vec3]{
		ReducedInertia: a.Inertia.Inverse().Add(b.Inertia.Inverse()).Inverse(),
		Displacement:   a.Axis.Cross(b.Axis),
		Velocity:       b.Velocity.Sub(a.Velocity),
	}
}

// ExactAngularInstant replaces the cross product approximation with the
// shortest-path rotation vector between the two bodies' full world
// rotations. It stays accurate at large relative rotations but does not
// reproduce the cross product variant's numbers.
func ExactAngularInstant(a, b AngularParticle, qa, qb mgl64.Quat) Instant[Vec3] {
	instant := a.Instant(b)
	instant.Displacement = RotationVector(qa, qb)
	return instant
}

// RotationVector returns axis*angle of the relative rotation qa^-1 * qb,
// sign corrected so the angle takes the shortest path.
func RotationVector(qa, qb mgl64.Quat) Vec3 {
	rel := qa.Inverse().Mul(qb)
	if rel.W < 0 {
		rel = rel.Scale(-1)
	}
	sin := rel.V.Len()
	if sin == 0 {
		return Vec3{}
	}
	angle := 2.0 * math.Atan2(sin, rel.W)
	return Vec3(rel.V.Mul(angle / sin))
}
