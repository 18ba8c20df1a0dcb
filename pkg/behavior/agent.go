// Package behavior is the flocking kernel: boids on a toroidal plane steering
// by separation, alignment and cohesion, optionally fleeing a fear point.
//
// Boids is an artificial life program, developed by Craig Reynolds in 1986,
// which simulates the flocking behaviour of birds, and related group motion.
// https://en.wikipedia.org/wiki/Boids
package behavior

import "github.com/lao-tseu-is-alive/go-boids-torus/pkg/geometry"

// Agent represents a single boid.
// Fields are exported so renderers can read them; only Flock mutates them.
type Agent struct {
	Position geometry.Vector2D
	Heading  float64 // radians, kept in (-Pi, Pi]

	// SpeedJitter is added to the shared base speed. It is drawn once when
	// the agent is created and never changes afterwards.
	SpeedJitter float64
}

// Velocity is the displacement the agent would make in one tick at baseSpeed.
func (a Agent) Velocity(baseSpeed float64) geometry.Vector2D {
	return geometry.NewVectorPolar(baseSpeed+a.SpeedJitter, a.Heading)
}

// Integrate turns the agent by headingDelta, moves it one unit of time along
// the new heading and wraps the result into the world.
func (a *Agent) Integrate(headingDelta, baseSpeed float64, world geometry.World) {
	a.Heading = geometry.NormalizeAngle(a.Heading + headingDelta)
	a.Position = world.Wrap(a.Position.Add(a.Velocity(baseSpeed)))
}
