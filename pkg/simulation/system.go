package simulation

import (
	"context"
	"fmt"

	"github.com/lao-tseu-is-alive/go-boids-torus/pb"
	"github.com/tochemey/goakt/v3/actor"
	golog "github.com/tochemey/goakt/v3/log"
)

// StartSystem creates and starts the local actor system hosting the flock.
func StartSystem(ctx context.Context, logger golog.Logger) (actor.ActorSystem, error) {
	system, err := actor.NewActorSystem("BoidsTorus",
		actor.WithLogger(logger),
		actor.WithActorInitMaxRetries(3))
	if err != nil {
		return nil, fmt.Errorf("failed to create actor system: %w", err)
	}
	if err := system.Start(ctx); err != nil {
		return nil, fmt.Errorf("failed to start actor system: %w", err)
	}
	return system, nil
}

// SpawnFlock starts a FlockActor named "flock" that pushes a snapshot on
// snapshotCh after every tick.
func SpawnFlock(ctx context.Context, system actor.ActorSystem, cfg *Config, snapshotCh chan<- *pb.WorldSnapshot) (*actor.PID, error) {
	flockActor, err := NewFlockActor(snapshotCh, cfg)
	if err != nil {
		return nil, err
	}
	pid, err := system.Spawn(ctx, "flock", flockActor)
	if err != nil {
		return nil, fmt.Errorf("failed to spawn flock: %w", err)
	}
	return pid, nil
}
