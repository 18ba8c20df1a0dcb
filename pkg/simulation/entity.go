package simulation

import (
	"github.com/lao-tseu-is-alive/go-boids-torus/pb"
	"github.com/lao-tseu-is-alive/go-boids-torus/pkg/behavior"
	"github.com/lao-tseu-is-alive/go-boids-torus/pkg/geometry"
)

// VectorToProto converts a kernel vector into its wire form.
func VectorToProto(v geometry.Vector2D) *pb.Vector2D {
	return &pb.Vector2D{X: v.X, Y: v.Y}
}

// VectorFromProto converts back; a missing vector is the origin.
func VectorFromProto(v *pb.Vector2D) geometry.Vector2D {
	return geometry.Vector2D{X: v.GetX(), Y: v.GetY()}
}

// AgentToProto converts a boid into the protobuf "envelope" sent to renderers.
func AgentToProto(a behavior.Agent) *pb.AgentState {
	return &pb.AgentState{
		Position: VectorToProto(a.Position),
		Heading:  a.Heading,
	}
}

func TickParametersToProto(p behavior.TickParameters) *pb.TickParameters {
	return &pb.TickParameters{
		Radius:     p.Radius,
		Separation: p.Separation,
		Alignment:  p.Alignment,
		Cohesion:   p.Cohesion,
		Speed:      p.Speed,
	}
}

// TickParametersFromProto never fails; the kernel validates the result.
func TickParametersFromProto(p *pb.TickParameters) behavior.TickParameters {
	return behavior.TickParameters{
		Radius:     p.GetRadius(),
		Separation: p.GetSeparation(),
		Alignment:  p.GetAlignment(),
		Cohesion:   p.GetCohesion(),
		Speed:      p.GetSpeed(),
	}
}

// RepulsionToProto returns nil when the field was never activated.
func RepulsionToProto(f behavior.RepulsionField, ok bool) *pb.RepulsionState {
	if !ok {
		return nil
	}
	return &pb.RepulsionState{
		Point:    VectorToProto(f.Point),
		Strength: f.Strength,
		Driven:   f.Driven,
		Radius:   f.Settings.Radius,
	}
}

// SnapshotOf copies the flock into a WorldSnapshot. highlighted lists the
// agents to draw in the neighbor color.
func SnapshotOf(f *behavior.Flock, highlighted []int) *pb.WorldSnapshot {
	agents := f.Agents()
	world := f.World()
	snap := &pb.WorldSnapshot{
		Tick:      f.TickCount(),
		Width:     world.Width,
		Height:    world.Height,
		Agents:    make([]*pb.AgentState, len(agents)),
		Repulsion: RepulsionToProto(f.Repulsion()),
	}
	for i, a := range agents {
		snap.Agents[i] = AgentToProto(a)
	}
	if len(highlighted) > 0 {
		snap.Highlighted = make([]int32, len(highlighted))
		for i, idx := range highlighted {
			snap.Highlighted[i] = int32(idx)
		}
	}
	return snap
}
