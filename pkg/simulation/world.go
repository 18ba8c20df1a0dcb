package simulation

import (
	"time"

	"github.com/lao-tseu-is-alive/go-boids-torus/pb"
	"github.com/lao-tseu-is-alive/go-boids-torus/pkg/behavior"
	"github.com/lao-tseu-is-alive/go-boids-torus/pkg/geometry"
	"github.com/tochemey/goakt/v3/actor"
	"github.com/tochemey/goakt/v3/goaktpb"
)

// FlockActor owns the simulation kernel. Every message is handled on the
// actor's mailbox goroutine, so ticks never overlap and the kernel needs no lock.
type FlockActor struct {
	cfg   *Config
	flock *behavior.Flock

	// Communication with UI
	snapshotCh chan<- *pb.WorldSnapshot

	// settings of the last accepted tick, reused by GetSnapshot
	highlight bool
	radius    float64

	// --- Benchmark Stats ---
	tickCount   int
	dropCount   int
	lastLogTime time.Time
}

var _ actor.Actor = (*FlockActor)(nil)

// NewFlockActor creates the flock logic unit. snapshotCh may be nil when
// snapshots are only pulled with GetSnapshot.
func NewFlockActor(snapshotCh chan<- *pb.WorldSnapshot, cfg *Config) (*FlockActor, error) {
	flock, err := cfg.NewFlock()
	if err != nil {
		return nil, err
	}
	return &FlockActor{
		cfg:         cfg,
		flock:       flock,
		snapshotCh:  snapshotCh,
		highlight:   cfg.Highlight,
		radius:      cfg.PerceptionRadius,
		lastLogTime: time.Now(),
	}, nil
}

func (w *FlockActor) PreStart(ctx *actor.Context) error {
	ctx.ActorSystem().Logger().Infof("flock actor starting on a %.0fx%.0f torus", w.cfg.WorldWidth, w.cfg.WorldHeight)
	return nil
}

func (w *FlockActor) Receive(ctx *actor.ReceiveContext) {
	switch msg := ctx.Message().(type) {
	case *goaktpb.PostStart:
		if err := w.flock.Reset(w.cfg.Population); err != nil {
			ctx.Logger().Errorf("initial population rejected: %v", err)
			return
		}
		ctx.Logger().Infof("flock started with %d boids", w.flock.Len())

	// The main simulation step, driven by the render loop
	case *pb.Tick:
		w.logBenchmarks(ctx)

		p := TickParametersFromProto(msg.GetParameters())
		if err := w.flock.Tick(p); err != nil {
			ctx.Logger().Errorf("tick skipped: %v", err)
			return
		}
		w.tickCount++
		w.highlight, w.radius = msg.GetHighlight(), p.Radius
		w.pushSnapshot()

	case *pb.ResetPopulation:
		if err := w.flock.Reset(int(msg.GetSize())); err != nil {
			ctx.Logger().Errorf("reset rejected: %v", err)
			return
		}
		ctx.Logger().Infof("population reset to %d boids", w.flock.Len())

	case *pb.Resize:
		world := geometry.World{Width: msg.GetWidth(), Height: msg.GetHeight()}
		if err := w.flock.Resize(world); err != nil {
			ctx.Logger().Errorf("resize rejected: %v", err)
			return
		}
		ctx.Logger().Debugf("world resized to %.0fx%.0f", world.Width, world.Height)

	case *pb.ActivateRepulsion:
		if err := w.flock.ActivateRepulsion(VectorFromProto(msg.GetPoint())); err != nil {
			ctx.Logger().Errorf("repulsion rejected: %v", err)
		}

	case *pb.RetargetRepulsion:
		if err := w.flock.RetargetRepulsion(VectorFromProto(msg.GetPoint())); err != nil {
			ctx.Logger().Errorf("repulsion move rejected: %v", err)
		}

	case *pb.DeactivateRepulsion:
		w.flock.DeactivateRepulsion()

	case *pb.GetSnapshot:
		ctx.Response(w.buildSnapshot())

	default:
		ctx.Unhandled()
	}
}

func (w *FlockActor) PostStop(ctx *actor.Context) error {
	ctx.ActorSystem().Logger().Infof("flock actor stopped after %d ticks", w.flock.TickCount())
	return nil
}

func (w *FlockActor) logBenchmarks(ctx *actor.ReceiveContext) {
	if time.Since(w.lastLogTime) >= time.Second {
		ctx.Logger().Infof("📊 TICK RATE: %d/sec (dropped frames: %d) | Boids: %d",
			w.tickCount, w.dropCount, w.flock.Len())
		w.tickCount = 0
		w.dropCount = 0
		w.lastLogTime = time.Now()
	}
}

func (w *FlockActor) pushSnapshot() {
	if w.snapshotCh == nil {
		return
	}
	select {
	case w.snapshotCh <- w.buildSnapshot():
	default:
		// UI busy, skip frame
		w.dropCount++
	}
}

func (w *FlockActor) buildSnapshot() *pb.WorldSnapshot {
	var highlighted []int
	if w.highlight && w.flock.Len() > 0 && w.radius > 0 {
		// the radius was validated by the tick that set it
		highlighted, _ = w.flock.NeighborsOf(0, w.radius)
	}
	return SnapshotOf(w.flock, highlighted)
}
