package springy

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"
)

// INFINITY is the mass and inertia assigned to bodies that springs must not
// perturb. Its Inverse is exactly zero, which removes the body from the
// reduced-inertia sum.
var INFINITY = math.Inf(1)

// Body motion kinds, as classified by the host physics engine.
const (
	// BODY_DYNAMIC bodies are simulated by the host and perturbable.
	BODY_DYNAMIC = iota
	// BODY_KINEMATIC_VELOCITY bodies are driven by explicit velocities.
	BODY_KINEMATIC_VELOCITY
	// BODY_KINEMATIC_POSITION bodies are driven by explicit positions.
	BODY_KINEMATIC_POSITION
	// BODY_STATIC bodies never move.
	BODY_STATIC
)

func bodyTypeName(bodyType int) string {
	switch bodyType {
	case BODY_DYNAMIC:
		return "dynamic"
	case BODY_KINEMATIC_VELOCITY:
		return "kinematic-velocity"
	case BODY_KINEMATIC_POSITION:
		return "kinematic-position"
	case BODY_STATIC:
		return "static"
	}
	return "unknown"
}

// BodyVelocity is a 3D rigid body's velocity pair.
type BodyVelocity struct {
	Linear  Vec3
	Angular Vec3
}

// MassProperties is a 3D rigid body's mass state. Inertia is the diagonal
// approximation of the world space inertia tensor; CenterOfMass is in the
// body's local space.
type MassProperties struct {
	Mass         float64
	Inertia      Vec3
	CenterOfMass Vec3
}

// RigidBody is the record a host physics engine exposes per 3D body. Only
// the pose is mandatory: Velocity and Mass are optional and are defaulted
// under the policy documented on each producer, with a diagnostic on the
// given logger when the default loses accuracy. A nil logger silences the
// diagnostics; the defaults still apply.
type RigidBody struct {
	Type     int
	Position Vec3
	Rotation mgl64.Quat
	Velocity *BodyVelocity
	Mass     *MassProperties
}

// velocity resolves the body's velocity. Missing velocity means "currently
// at rest", which is a safe fallback, but dynamic and velocity-driven
// bodies are expected to carry one, so those warn.
func (body *RigidBody) velocity(log *zap.Logger) BodyVelocity {
	if body.Velocity != nil {
		return *body.Velocity
	}
	if body.Type == BODY_DYNAMIC || body.Type == BODY_KINEMATIC_VELOCITY {
		warn(log, "body has no velocity, spring damping treats it as at rest", body.Type)
	}
	return BodyVelocity{}
}

// massProperties resolves the effective mass state under the infinite-mass
// policy: static and kinematically driven bodies are forced to INFINITY no
// matter what mass data is present, because spring impulses must not
// perturb them. A dynamic body without mass data falls back to unit mass so
// the solver still produces a bounded impulse.
func (body *RigidBody) massProperties(log *zap.Logger) MassProperties {
	if body.Type != BODY_DYNAMIC {
		props := MassProperties{Mass: INFINITY, Inertia: Splat3(INFINITY)}
		if body.Mass != nil {
			props.CenterOfMass = body.Mass.CenterOfMass
		}
		return props
	}
	if body.Mass == nil {
		warn(log, "dynamic body has no mass properties, defaulting to unit mass", body.Type)
		return MassProperties{Mass: 1, Inertia: Splat3(1)}
	}
	return *body.Mass
}

// WorldCenterOfMass returns the body's center of mass in world space.
func (body *RigidBody) WorldCenterOfMass(log *zap.Logger) Vec3 {
	return body.worldPoint(body.massProperties(log).CenterOfMass)
}

func (body *RigidBody) worldPoint(local Vec3) Vec3 {
	return body.Position.Add(Vec3(body.Rotation.Rotate(mgl64.Vec3(local))))
}

// TranslationParticle reduces the body to a point mass at its center of
// mass.
func (body *RigidBody) TranslationParticle(log *zap.Logger) Particle[Vec3] {
	velocity := body.velocity(log)
	props := body.massProperties(log)
	return Particle[Vec3]{
		Inertia:  Splat3(props.Mass),
		Position: body.worldPoint(props.CenterOfMass),
		Velocity: velocity.Linear,
	}
}

// TranslationParticleAt anchors the spring at a world point that is
// generally not the center of mass. The point's velocity picks up the
// angular contribution w x r, with r from the world center of mass to the
// anchor.
func (body *RigidBody) TranslationParticleAt(anchor Vec3, log *zap.Logger) Particle[Vec3] {
	velocity := body.velocity(log)
	props := body.massProperties(log)
	r := anchor.Sub(body.worldPoint(props.CenterOfMass))
	return Particle[Vec3]{
		Inertia:  Splat3(props.Mass),
		Position: anchor,
		Velocity: velocity.Linear.Add(velocity.Angular.Cross(r)),
	}
}

// AngularParticle exposes the body's rotational state around the given
// local reference axis rotated into world space.
func (body *RigidBody) AngularParticle(axis Vec3, log *zap.Logger) AngularParticle {
	velocity := body.velocity(log)
	props := body.massProperties(log)
	return AngularParticle{
		Inertia:  props.Inertia,
		Axis:     Vec3(body.Rotation.Rotate(mgl64.Vec3(axis))),
		Velocity: velocity.Angular,
	}
}

// BodyVelocity2 is a 2D rigid body's velocity pair; Angular is the signed
// rotation speed about z.
type BodyVelocity2 struct {
	Linear  Vec2
	Angular float64
}

// MassProperties2 is a 2D rigid body's mass state; Moment is the moment of
// inertia about z and CenterOfMass is in the body's local space.
type MassProperties2 struct {
	Mass         float64
	Moment       float64
	CenterOfMass Vec2
}

// RigidBody2 is the 2D counterpart of RigidBody, with the same defaulting
// and infinite-mass policy.
type RigidBody2 struct {
	Type     int
	Position Vec2
	Angle    float64
	Velocity *BodyVelocity2
	Mass     *MassProperties2
}

func (body *RigidBody2) velocity(log *zap.Logger) BodyVelocity2 {
	if body.Velocity != nil {
		return *body.Velocity
	}
	if body.Type == BODY_DYNAMIC || body.Type == BODY_KINEMATIC_VELOCITY {
		warn(log, "body has no velocity, spring damping treats it as at rest", body.Type)
	}
	return BodyVelocity2{}
}

func (body *RigidBody2) massProperties(log *zap.Logger) MassProperties2 {
	if body.Type != BODY_DYNAMIC {
		props := MassProperties2{Mass: INFINITY, Moment: INFINITY}
		if body.Mass != nil {
			props.CenterOfMass = body.Mass.CenterOfMass
		}
		return props
	}
	if body.Mass == nil {
		warn(log, "dynamic body has no mass properties, defaulting to unit mass", body.Type)
		return MassProperties2{Mass: 1, Moment: 1}
	}
	return *body.Mass
}

func (body *RigidBody2) worldPoint(local Vec2) Vec2 {
	cos, sin := math.Cos(body.Angle), math.Sin(body.Angle)
	rotated := Vec2{local[0]*cos - local[1]*sin, local[0]*sin + local[1]*cos}
	return body.Position.Add(rotated)
}

// WorldCenterOfMass returns the body's center of mass in world space.
func (body *RigidBody2) WorldCenterOfMass(log *zap.Logger) Vec2 {
	return body.worldPoint(body.massProperties(log).CenterOfMass)
}

// TranslationParticle reduces the body to a point mass at its center of
// mass.
func (body *RigidBody2) TranslationParticle(log *zap.Logger) Particle[Vec2] {
	velocity := body.velocity(log)
	props := body.massProperties(log)
	return Particle[Vec2]{
		Inertia:  Vec2{props.Mass, props.Mass},
		Position: body.worldPoint(props.CenterOfMass),
		Velocity: velocity.Linear,
	}
}

// TranslationParticleAt anchors the spring at a world point away from the
// center of mass. In 2D the w x r term becomes w * perp(r).
func (body *RigidBody2) TranslationParticleAt(anchor Vec2, log *zap.Logger) Particle[Vec2] {
	velocity := body.velocity(log)
	props := body.massProperties(log)
	r := anchor.Sub(body.worldPoint(props.CenterOfMass))
	return Particle[Vec2]{
		Inertia:  Vec2{props.Mass, props.Mass},
		Position: anchor,
		Velocity: velocity.Linear.Add(r.Perp().Mult(velocity.Angular)),
	}
}

// AngularParticle exposes the body's rotational state about z as a 1D
// particle: inertia is the moment, position the angle, velocity the
// rotation speed.
func (body *RigidBody2) AngularParticle(log *zap.Logger) Particle[Scalar] {
	velocity := body.velocity(log)
	props := body.massProperties(log)
	return Particle[Scalar]{
		Inertia:  Scalar(props.Moment),
		Position: Scalar(body.Angle),
		Velocity: Scalar(velocity.Angular),
	}
}

func warn(log *zap.Logger, msg string, bodyType int) {
	if log == nil {
		return
	}
	log.Warn(msg, zap.String("body", bodyTypeName(bodyType)))
}
