package behavior

import (
	"fmt"
	"math"
	"math/rand/v2"
	"slices"

	"github.com/lao-tseu-is-alive/go-boids-torus/pkg/geometry"
	"golang.org/x/sync/errgroup"
)

// DefaultSpeedVariation bounds the per-agent speed jitter, drawn in [0, 0.2).
const DefaultSpeedVariation = 0.2

// Flock owns the population and advances it one tick at a time.
// It is not safe for concurrent use: ticks must not overlap, and drivers
// serialize every call (the flock actor does it through its mailbox).
type Flock struct {
	world  geometry.World
	agents []Agent

	// per tick buffers, reused to keep the steady state allocation free
	snapshot []Agent
	deltas   []float64
	scratch  []scratch

	finder         NeighborFinder
	workers        int
	rng            *rand.Rand
	speedVariation float64
	fear           RepulsionSettings
	repulsion      *RepulsionField
	ticks          uint64
}

type scratch struct {
	indices   []int
	neighbors []Agent
}

// Option customizes a Flock at construction.
type Option func(*Flock)

// WithNeighborFinder replaces the default BruteForce neighbor scan.
func WithNeighborFinder(finder NeighborFinder) Option {
	return func(f *Flock) { f.finder = finder }
}

// WithWorkers spreads the steering phase over n goroutines. Results do not
// depend on n.
func WithWorkers(n int) Option {
	return func(f *Flock) { f.workers = n }
}

// WithSeed makes population initialization reproducible.
func WithSeed(seed uint64) Option {
	return func(f *Flock) { f.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)) }
}

// WithSpeedVariation sets the upper bound of the per-agent speed jitter.
func WithSpeedVariation(v float64) Option {
	return func(f *Flock) { f.speedVariation = v }
}

// WithRepulsion sets the fear field constants.
func WithRepulsion(settings RepulsionSettings) Option {
	return func(f *Flock) { f.fear = settings }
}

// NewFlock returns an empty flock living in world.
func NewFlock(world geometry.World, opts ...Option) (*Flock, error) {
	if err := world.Validate(); err != nil {
		return nil, err
	}
	f := &Flock{
		world:          world,
		finder:         &BruteForce{},
		workers:        1,
		speedVariation: DefaultSpeedVariation,
		fear:           DefaultRepulsionSettings(),
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.rng == nil {
		f.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if f.finder == nil {
		return nil, fmt.Errorf("%w: neighbor finder is nil", ErrInvalidParameters)
	}
	if f.workers < 1 {
		f.workers = 1
	}
	if !finite(f.speedVariation) || f.speedVariation < 0 {
		return nil, fmt.Errorf("%w: speed variation must be a non-negative finite number, got %v", ErrInvalidParameters, f.speedVariation)
	}
	if err := f.fear.Validate(); err != nil {
		return nil, err
	}
	return f, nil
}

// Reset replaces the whole population with size freshly randomized agents.
func (f *Flock) Reset(size int) error {
	if size < 0 {
		return fmt.Errorf("%w: population size must be >= 0, got %d", ErrInvalidParameters, size)
	}
	agents := make([]Agent, size)
	for i := range agents {
		agents[i] = Agent{
			Position: geometry.Vector2D{
				X: f.world.Width * f.rng.Float64(),
				Y: f.world.Height * f.rng.Float64(),
			},
			Heading:     geometry.NormalizeAngle(2 * math.Pi * f.rng.Float64()),
			SpeedJitter: f.speedVariation * f.rng.Float64(),
		}
	}
	f.agents = agents
	return nil
}

// SetAgents installs an explicit population, wrapping positions into the world.
func (f *Flock) SetAgents(agents []Agent) error {
	for i, a := range agents {
		if !a.Position.IsFinite() || !finite(a.Heading) || !finite(a.SpeedJitter) {
			return fmt.Errorf("%w: agent %d has non-finite state", ErrInvalidParameters, i)
		}
	}
	f.agents = make([]Agent, len(agents))
	for i, a := range agents {
		a.Position = f.world.Wrap(a.Position)
		a.Heading = geometry.NormalizeAngle(a.Heading)
		f.agents[i] = a
	}
	return nil
}

// Tick advances the simulation by one unit of time. Invalid parameters are
// rejected before anything is touched; otherwise the step cannot fail.
func (f *Flock) Tick(p TickParameters) error {
	if err := p.Validate(); err != nil {
		return err
	}
	n := len(f.agents)

	// 1. Every rule below reads this copy, never the agents being moved
	f.snapshot = append(f.snapshot[:0], f.agents...)
	f.deltas = slices.Grow(f.deltas[:0], n)[:n]

	// 2. Steering from the snapshot only
	f.finder.Index(f.snapshot, f.world, p.Radius)
	f.computeDeltas(p)

	// 3. Scatter
	for i := range f.agents {
		f.agents[i].Integrate(f.deltas[i], p.Speed, f.world)
	}

	// 4. Fear fades once the pointer let go
	if f.repulsion != nil {
		f.repulsion.Decay()
	}
	f.ticks++
	return nil
}

func (f *Flock) computeDeltas(p TickParameters) {
	n := len(f.snapshot)
	workers := min(f.workers, n)
	if workers < 1 {
		return
	}
	if len(f.scratch) < workers {
		f.scratch = append(f.scratch, make([]scratch, workers-len(f.scratch))...)
	}
	if workers == 1 {
		f.steerRange(0, n, &f.scratch[0], p)
		return
	}

	var g errgroup.Group
	g.SetLimit(workers)
	chunk := (n + workers - 1) / workers
	for w := 0; w < workers; w++ {
		lo, hi := w*chunk, min((w+1)*chunk, n)
		if lo >= hi {
			break
		}
		s := &f.scratch[w]
		g.Go(func() error {
			f.steerRange(lo, hi, s, p)
			return nil
		})
	}
	_ = g.Wait()
}

// steerRange writes deltas[lo:hi]; each goroutine owns a disjoint range.
func (f *Flock) steerRange(lo, hi int, s *scratch, p TickParameters) {
	for i := lo; i < hi; i++ {
		self := f.snapshot[i]
		s.indices = f.finder.Neighbors(i, s.indices[:0])
		s.neighbors = s.neighbors[:0]
		for _, j := range s.indices {
			s.neighbors = append(s.neighbors, f.snapshot[j])
		}
		delta := Steer(self, s.neighbors, f.world, p)
		if f.repulsion != nil {
			delta += f.repulsion.Contribution(self, f.world)
		}
		f.deltas[i] = delta
	}
}

// ActivateRepulsion creates the fear field, or moves it, at point.
func (f *Flock) ActivateRepulsion(point geometry.Vector2D) error {
	if !point.IsFinite() {
		return fmt.Errorf("%w: repulsion point %v is not finite", ErrInvalidParameters, point)
	}
	if f.repulsion == nil {
		f.repulsion = NewRepulsionField(f.fear)
	}
	f.repulsion.Activate(f.world.Wrap(point))
	return nil
}

// RetargetRepulsion follows the pointer while it is still pressed.
func (f *Flock) RetargetRepulsion(point geometry.Vector2D) error {
	if !point.IsFinite() {
		return fmt.Errorf("%w: repulsion point %v is not finite", ErrInvalidParameters, point)
	}
	if f.repulsion == nil {
		return nil
	}
	f.repulsion.Retarget(f.world.Wrap(point))
	return nil
}

// DeactivateRepulsion releases the pointer; the field keeps fading on its own.
func (f *Flock) DeactivateRepulsion() {
	if f.repulsion != nil {
		f.repulsion.Deactivate()
	}
}

// Repulsion returns a copy of the fear field, if one was ever activated.
func (f *Flock) Repulsion() (RepulsionField, bool) {
	if f.repulsion == nil {
		return RepulsionField{}, false
	}
	return *f.repulsion, true
}

// Resize changes the world extent and folds agents back inside it.
func (f *Flock) Resize(world geometry.World) error {
	if err := world.Validate(); err != nil {
		return err
	}
	f.world = world
	for i := range f.agents {
		f.agents[i].Position = world.Wrap(f.agents[i].Position)
	}
	if f.repulsion != nil {
		f.repulsion.Point = world.Wrap(f.repulsion.Point)
	}
	return nil
}

// NeighborsOf lists the agents agent i currently sees, for overlays.
func (f *Flock) NeighborsOf(i int, radius float64) ([]int, error) {
	if i < 0 || i >= len(f.agents) {
		return nil, fmt.Errorf("%w: agent index %d out of range [0, %d)", ErrInvalidParameters, i, len(f.agents))
	}
	if !finite(radius) || radius <= 0 {
		return nil, fmt.Errorf("%w: radius must be a positive finite number, got %v", ErrInvalidParameters, radius)
	}
	var b BruteForce
	b.Index(f.agents, f.world, radius)
	return b.Neighbors(i, nil), nil
}

// Agents returns a copy of the population, safe to read while ticking continues.
func (f *Flock) Agents() []Agent {
	return slices.Clone(f.agents)
}

// Len is the population size.
func (f *Flock) Len() int { return len(f.agents) }

// World returns the current world extent.
func (f *Flock) World() geometry.World { return f.world }

// TickCount is the number of completed ticks.
func (f *Flock) TickCount() uint64 { return f.ticks }
