package springy

// SpringBreak accumulates overload into a tear value. Sustained overload
// breaks the spring; brief spikes heal back out, so a single hard impulse
// does not instantly snap it. Material fatigue, not a force threshold.
//
// Tear and heal are applied once per evaluation, which makes the rates
// frame rate dependent. Pre-scale TearStep and HealStep by the fixed
// timestep if rate independence matters.
type SpringBreak struct {
	// Tear is the accumulated fatigue in [0, 1]; the spring breaks at 1.
	Tear float64
	// TearForce is the impulse magnitude at or above which tear grows.
	TearForce float64
	// TearStep is added to Tear on each overloaded evaluation.
	TearStep float64
	// HealStep is subtracted from Tear on each relaxed evaluation.
	HealStep float64
}

func DefaultSpringBreak() SpringBreak {
	return SpringBreak{
		Tear:      0,
		TearForce: 1,
		TearStep:  0.01,
		HealStep:  0.01,
	}
}

// Impulse feeds one evaluation's impulse magnitude into the state machine
// and reports whether the spring has broken.
func (b *SpringBreak) Impulse(magnitude float64) bool {
	if magnitude >= b.TearForce {
		b.Tear += b.TearStep
	} else {
		b.Tear -= b.HealStep
	}
	b.Tear = Clamp01(b.Tear)
	return b.Tear >= 1.0
}
