package springy

import "math"

// SpringState owns the per-spring state that persists between evaluations:
// the previous displacement axis used for damping direction hysteresis and
// the optional tear state machine. Create one per spring when the spring is
// created and discard it when the spring is removed or breaks.
//
// A SpringState must be evaluated at most once per integration step and is
// not safe for concurrent use; the scheduler driving the step owns it.
type SpringState[K Kinematic[K]] struct {
	Spring   Spring
	Breaking *SpringBreak

	// displacement unit vector of the previous evaluation; nil only before
	// the first one.
	lastUnitVector *K
}

func NewSpringState[K Kinematic[K]](spring Spring) *SpringState[K] {
	return &SpringState[K]{Spring: spring}
}

// WithBreak attaches a tear state machine to the spring.
func (s *SpringState[K]) WithBreak(b SpringBreak) *SpringState[K] {
	s.Breaking = &b
	return s
}

// LastUnitVector returns the remembered damping axis, or nil before the
// first evaluation.
func (s *SpringState[K]) LastUnitVector() *K {
	return s.lastUnitVector
}

// Result of one spring evaluation. When Broke is set the tear state machine
// fired; Impulse still carries this step's impulse, so the caller may apply
// it once more before removing the spring.
type Result[K Kinematic[K]] struct {
	Impulse K
	Broke   bool
}

// Impulse evaluates the spring for one fixed timestep, updates the damping
// axis and advances the tear state if one is attached.
//
// timestep must be greater than zero and the two endpoints reduced into
// instant must be distinct bodies; both are caller preconditions.
func (s *SpringState[K]) Impulse(timestep float64, instant Instant[K]) Result[K] {
	impulse, unit := Impulse(s.Spring, timestep, instant, s.lastUnitVector)
	s.lastUnitVector = &unit

	if s.Breaking != nil && s.Breaking.Impulse(math.Abs(impulse.Length())) {
		return Result[K]{Impulse: impulse, Broke: true}
	}
	return Result[K]{Impulse: impulse}
}
