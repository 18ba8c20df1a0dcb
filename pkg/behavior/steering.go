package behavior

import (
	"math"

	"github.com/lao-tseu-is-alive/go-boids-torus/pkg/geometry"
)

// RuleHeadings holds the heading each classic rule suggests for one agent.
// A rule whose summed vector is too short to have a direction (opposed
// neighbors cancelling out, coincident agents) is flagged as not Valid and
// does not steer.
type RuleHeadings struct {
	Separation, Alignment, Cohesion                float64
	SeparationValid, AlignmentValid, CohesionValid bool
}

// ComputeHeadings derives the separation, alignment and cohesion headings of
// self from its neighbors. All offsets go through the world so that a flock
// straddling a seam is treated as one group.
func ComputeHeadings(self Agent, neighbors []Agent, world geometry.World) RuleHeadings {
	var (
		separation geometry.Vector2D
		alignment  geometry.Vector2D
		cohesion   geometry.Vector2D
		h          RuleHeadings
	)
	if len(neighbors) == 0 {
		return h
	}

	for _, b := range neighbors {
		away := world.Delta(self.Position, b.Position)
		if dist := away.Len(); dist > 0 {
			// unit vector scaled by 1/dist: the closer, the stronger
			separation = separation.Add(away.Mul(1 / (dist * dist)))
		}
		alignment = alignment.Add(geometry.NewVector(math.Cos(b.Heading), math.Sin(b.Heading)))
		cohesion = cohesion.Add(world.Delta(b.Position, self.Position))
	}
	n := float64(len(neighbors))
	alignment = alignment.Mul(1 / n)
	cohesion = cohesion.Mul(1 / n)

	h.Separation, h.SeparationValid = separation.Angle(), !separation.IsZero()
	h.Alignment, h.AlignmentValid = alignment.Angle(), !alignment.IsZero()
	h.Cohesion, h.CohesionValid = cohesion.Angle(), !cohesion.IsZero()
	return h
}

// Steer blends the three rules into one heading change for self.
// With no neighbors the result is exactly zero.
func Steer(self Agent, neighbors []Agent, world geometry.World, p TickParameters) float64 {
	if len(neighbors) == 0 {
		return 0
	}
	h := ComputeHeadings(self, neighbors, world)

	delta := 0.0
	if h.SeparationValid {
		delta += geometry.AngleDifference(h.Separation, self.Heading) * p.separationGain()
	}
	if h.AlignmentValid {
		delta += geometry.AngleDifference(h.Alignment, self.Heading) * p.alignmentGain()
	}
	if h.CohesionValid {
		delta += geometry.AngleDifference(h.Cohesion, self.Heading) * p.cohesionGain()
	}
	return delta
}
