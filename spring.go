package springy

import "math"

// Spring holds the tunable parameters of a damped spring. Fields may be
// assigned freely, out of range values included; the accessors clamp on
// read, so a Spring can never be invalid.
type Spring struct {
	// Strength of the spring impulse in [0, 1], where 1 brings the spring
	// to its rest configuration in a single timestep.
	Strength float64
	// DampRatio in [0, 20]. 1 is approximately critical damping for the
	// given Strength: the spring settles without overshooting. Below 1 it
	// oscillates, above 1 it converges slower.
	DampRatio float64
	// RestDistance is the separation at which the restoring impulse is
	// exactly zero. Closer than this the spring pushes the endpoints apart.
	RestDistance float64
	// LimpDistance is the separation below which the spring goes limp and
	// stops pushing outward. Set equal to RestDistance for a pull-only
	// spring, zero for a rigid one.
	LimpDistance float64
}

func (s Spring) strength() float64 {
	return Clamp01(s.Strength)
}

func (s Spring) dampRatio() float64 {
	return Clamp(s.DampRatio, 0, 20)
}

// Damping is the coefficient actually multiplied into the velocity term,
// derived from the damp ratio and clamped so that a symplectic Euler
// integrator stays stable no matter how extreme the user set the fields.
// The approximation trades physical correctness for that guarantee.
func (s Spring) Damping() float64 {
	return Clamp01(s.dampRatio() * 2.0 * math.Sqrt(s.strength()))
}

// Impulse computes the impulse that pulls an instant's endpoints toward the
// spring's rest configuration. It returns the impulse and the displacement
// unit vector; the caller applies the impulse with opposite signs to the
// two endpoints and remembers the unit vector as lastUnit for the next
// step.
//
// lastUnit is the previous step's displacement axis, nil before the first
// evaluation. Damping opposes velocity along that remembered axis rather
// than the instantaneous one, so the damping direction does not flip every
// step while the displacement crosses zero.
//
// timestep must be greater than zero; callers skip evaluation entirely on a
// zero-dt frame.
func Impulse[K Kinematic[K]](spring Spring, timestep float64, instant Instant[K], lastUnit *K) (K, K) {
	unit := instant.Displacement.NormalizeOrZero()

	distance := instant.Displacement.Length()
	errDistance := 0.0
	if distance >= spring.LimpDistance {
		errDistance = distance - spring.RestDistance
	}
	distanceError := unit.Mult(errDistance)

	direction := unit
	if lastUnit != nil {
		direction = *lastUnit
	}
	velocityAlong := direction.Mult(instant.Velocity.Dot(direction))

	distanceTerm := distanceError.MulElem(instant.ReducedInertia).Mult(spring.strength() / timestep)
	velocityTerm := velocityAlong.MulElem(instant.ReducedInertia).Mult(spring.Damping())

	return distanceTerm.Add(velocityTerm).Neg(), unit
}
