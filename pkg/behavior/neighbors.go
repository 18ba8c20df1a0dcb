package behavior

import (
	"slices"

	"github.com/lao-tseu-is-alive/go-boids-torus/pkg/geometry"
)

// NeighborFinder answers "which agents can agent i see" for one tick.
// Index is called once per tick with the snapshot; Neighbors may then be
// called concurrently and must only read the indexed data.
type NeighborFinder interface {
	Index(agents []Agent, world geometry.World, radius float64)
	// Neighbors appends to dst the indices, in ascending order, of every
	// agent other than self closer than radius to agents[self].
	Neighbors(self int, dst []int) []int
}

// sees is the single neighborhood predicate shared by every finder, so that
// all of them agree even on exact-radius ties.
func sees(world geometry.World, p, q geometry.Vector2D, radius float64) bool {
	return world.Distance(p, q) < radius
}

// BruteForce scans the whole population for each query, O(n) per agent.
type BruteForce struct {
	agents []Agent
	world  geometry.World
	radius float64
}

var _ NeighborFinder = (*BruteForce)(nil)

func (b *BruteForce) Index(agents []Agent, world geometry.World, radius float64) {
	b.agents, b.world, b.radius = agents, world, radius
}

func (b *BruteForce) Neighbors(self int, dst []int) []int {
	me := b.agents[self].Position
	for i := range b.agents {
		if i == self {
			continue
		}
		if sees(b.world, me, b.agents[i].Position, b.radius) {
			dst = append(dst, i)
		}
	}
	return dst
}

type gridKey struct {
	x, y int
}

// Grid is a toroidal spatial hash. Cells are at least one radius wide so a
// 3x3 block of wrapped cells around an agent holds all of its neighbors.
// Worlds narrower than three cells on an axis fall back to BruteForce.
type Grid struct {
	brute      BruteForce
	cols, rows int
	cellW      float64
	cellH      float64
	cells      map[gridKey][]int
}

var _ NeighborFinder = (*Grid)(nil)

// NewGrid returns an empty grid; it sizes itself on every Index call.
func NewGrid() *Grid {
	return &Grid{cells: make(map[gridKey][]int)}
}

func (g *Grid) Index(agents []Agent, world geometry.World, radius float64) {
	g.brute.Index(agents, world, radius)

	g.cols = int(world.Width / radius)
	g.rows = int(world.Height / radius)
	if g.fallback() {
		return
	}
	g.cellW = world.Width / float64(g.cols)
	g.cellH = world.Height / float64(g.rows)

	// Reset slices to length 0 but keep their capacity between ticks
	for k := range g.cells {
		g.cells[k] = g.cells[k][:0]
	}
	for i := range agents {
		key := g.cellOf(agents[i].Position)
		g.cells[key] = append(g.cells[key], i)
	}
}

func (g *Grid) Neighbors(self int, dst []int) []int {
	if g.fallback() {
		return g.brute.Neighbors(self, dst)
	}
	me := g.brute.agents[self].Position
	center := g.cellOf(me)
	start := len(dst)

	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			key := gridKey{
				x: (center.x + dx + g.cols) % g.cols,
				y: (center.y + dy + g.rows) % g.rows,
			}
			for _, i := range g.cells[key] {
				if i == self {
					continue
				}
				if sees(g.brute.world, me, g.brute.agents[i].Position, g.brute.radius) {
					dst = append(dst, i)
				}
			}
		}
	}
	slices.Sort(dst[start:])
	return dst
}

func (g *Grid) fallback() bool {
	return g.cols < 3 || g.rows < 3
}

func (g *Grid) cellOf(p geometry.Vector2D) gridKey {
	return gridKey{x: clampCell(int(p.X/g.cellW), g.cols), y: clampCell(int(p.Y/g.cellH), g.rows)}
}

func clampCell(c, n int) int {
	if c < 0 {
		return 0
	}
	if c >= n {
		return n - 1
	}
	return c
}
