// Package term draws the flock in a terminal with tcell and maps keys and
// mouse drags onto the same commands the window front end sends.
package term

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lao-tseu-is-alive/go-boids-torus/pb"
	"github.com/lao-tseu-is-alive/go-boids-torus/pkg/geometry"
)

// arrows indexed by heading octant, clockwise from +X with y growing down
var arrows = [8]rune{'→', '↘', '↓', '↙', '←', '↖', '↑', '↗'}

var (
	boidStyle     = tcell.StyleDefault.Foreground(tcell.NewRGBColor(0xcc, 0xcc, 0xcc))
	focusStyle    = tcell.StyleDefault.Foreground(tcell.NewRGBColor(0xff, 0x00, 0x77)).Bold(true)
	neighborStyle = tcell.StyleDefault.Foreground(tcell.NewRGBColor(0x00, 0x88, 0xff))
	fearStyle     = tcell.StyleDefault.Background(tcell.NewRGBColor(0x1a, 0x33, 0x00))
	statusStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Reverse(true)
)

// Glyph returns the arrow closest to heading.
func Glyph(heading float64) rune {
	octant := int(math.Round(heading/(math.Pi/4))) % 8
	if octant < 0 {
		octant += 8
	}
	return arrows[octant]
}

// Renderer scales the world onto every terminal row but the last, which
// holds the status line.
type Renderer struct {
	screen tcell.Screen
}

func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// field is the number of columns and rows available to the world.
func (r *Renderer) field() (cols, rows int) {
	cols, rows = r.screen.Size()
	return cols, rows - 1
}

// CellOf maps a world position onto a terminal cell.
func (r *Renderer) CellOf(snap *pb.WorldSnapshot, p *pb.Vector2D) (col, row int) {
	cols, rows := r.field()
	col = scaleDown(p.GetX(), snap.GetWidth(), cols)
	row = scaleDown(p.GetY(), snap.GetHeight(), rows)
	return col, row
}

// WorldPoint maps the center of a cell back into the world.
func (r *Renderer) WorldPoint(snap *pb.WorldSnapshot, col, row int) *pb.Vector2D {
	cols, rows := r.field()
	return &pb.Vector2D{
		X: (float64(col) + 0.5) / float64(max(cols, 1)) * snap.GetWidth(),
		Y: (float64(row) + 0.5) / float64(max(rows, 1)) * snap.GetHeight(),
	}
}

func scaleDown(v, extent float64, cells int) int {
	if extent <= 0 || cells <= 0 {
		return 0
	}
	c := int(v / extent * float64(cells))
	return min(max(c, 0), cells-1)
}

// Draw paints snap and the status line, then shows the screen.
func (r *Renderer) Draw(snap *pb.WorldSnapshot, highlight bool, status string) {
	r.screen.Clear()
	cols, rows := r.field()
	if snap != nil && cols > 0 && rows > 0 {
		if highlight {
			r.drawFear(snap, cols, rows)
		}
		agents := snap.GetAgents()
		for _, a := range agents {
			r.put(snap, a, boidStyle)
		}
		if highlight && len(agents) > 0 {
			for _, i := range snap.GetHighlighted() {
				if int(i) < len(agents) {
					r.put(snap, agents[i], neighborStyle)
				}
			}
			r.put(snap, agents[0], focusStyle)
		}
	}
	r.drawStatus(status)
	r.screen.Show()
}

func (r *Renderer) put(snap *pb.WorldSnapshot, a *pb.AgentState, style tcell.Style) {
	col, row := r.CellOf(snap, a.GetPosition())
	_, _, bg, _ := r.screen.GetContent(col, row)
	_, cellBg, _ := bg.Decompose()
	if cellBg != tcell.ColorDefault {
		style = style.Background(cellBg)
	}
	r.screen.SetContent(col, row, Glyph(a.GetHeading()), nil, style)
}

// drawFear shades the cells inside the shrinking fear circle.
func (r *Renderer) drawFear(snap *pb.WorldSnapshot, cols, rows int) {
	fear := snap.GetRepulsion()
	if fear == nil || fear.GetStrength() <= 0.01 {
		return
	}
	world := geometry.World{Width: snap.GetWidth(), Height: snap.GetHeight()}
	center := geometry.Vector2D{X: fear.GetPoint().GetX(), Y: fear.GetPoint().GetY()}
	radius := fear.GetRadius() * fear.GetStrength()
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			p := r.WorldPoint(snap, col, row)
			if world.Distance(geometry.Vector2D{X: p.X, Y: p.Y}, center) < radius {
				r.screen.SetContent(col, row, ' ', nil, fearStyle)
			}
		}
	}
}

func (r *Renderer) drawStatus(status string) {
	cols, rows := r.screen.Size()
	if rows == 0 {
		return
	}
	line := fmt.Sprintf("%-*s", cols, status)
	for i, ch := range []rune(line) {
		if i >= cols {
			break
		}
		r.screen.SetContent(i, rows-1, ch, nil, statusStyle)
	}
}
