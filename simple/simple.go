// The smallest possible use of the library: one weight on a critically
// damped 1D spring pinned at the origin, integrated by hand.
package main

import (
	"fmt"
	"math"

	"github.com/jakecoffman/springy"
)

func main() {
	state := springy.NewSpringState[springy.Scalar](springy.Spring{Strength: 0.2, DampRatio: 1})
	anchor := springy.Particle[springy.Scalar]{Inertia: springy.Scalar(math.Inf(1))}

	const dt = 1.0 / 60.0
	position, velocity := 10.0, 0.0

	for i := 0; i < 120; i++ {
		weight := springy.Particle[springy.Scalar]{
			Inertia:  1,
			Position: springy.Scalar(position),
			Velocity: springy.Scalar(velocity),
		}
		result := state.Impulse(dt, anchor.Instant(weight))

		// symplectic Euler: velocity first, then position
		velocity += float64(result.Impulse)
		position += velocity * dt

		if i%10 == 0 {
			fmt.Printf("%3d: position %8.4f velocity %9.4f\n", i, position, velocity)
		}
	}
}
