package simulation

import (
	"context"
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lao-tseu-is-alive/go-boids-torus/pb"
	"github.com/lao-tseu-is-alive/go-boids-torus/pkg/behavior"
	"github.com/lao-tseu-is-alive/go-boids-torus/pkg/ui"
	"github.com/tochemey/goakt/v3/actor"
	"google.golang.org/protobuf/proto"
)

var (
	backgroundColor = color.RGBA{R: 10, G: 10, B: 30, A: 255}
	boidColor       = color.NRGBA{R: 0xcc, G: 0xcc, B: 0xcc, A: 0xff}
	focusColor      = color.NRGBA{R: 0xff, G: 0x00, B: 0x77, A: 0xff}
	neighborColor   = color.NRGBA{R: 0x00, G: 0x88, B: 0xff, A: 0xff}
	fearColor       = color.NRGBA{R: 0x99, G: 0xff, B: 0x00, A: 0x11}
)

// boid outline in body coordinates, nose on +X
var boidShape = [3][2]float64{{8, 0}, {-8, -4}, {-8, 4}}

type Game struct {
	ctx        context.Context
	System     actor.ActorSystem
	flockPID   *actor.PID
	snapshotCh chan *pb.WorldSnapshot
	lastState  *pb.WorldSnapshot

	// UI Controls
	panel *ui.UIPanel

	// Widget references for easy access
	widgetPopulation *ui.Slider
	widgetRadius     *ui.Slider
	widgetSpeed      *ui.Slider
	widgetCohesion   *ui.Slider
	widgetSeparation *ui.Slider
	widgetAlignment  *ui.Slider
	widgetHighlight  *ui.Checkbox

	cfg            *Config
	fear           fearDrag
	resetRequested bool

	// window size reported by Layout, and the world size last sent to the actor
	layoutW, layoutH int
	worldW, worldH   int

	// Timing instrumentation
	lastUpdateDuration time.Duration
	lastDrawDuration   time.Duration
	updateAvg          float64 // Rolling average in ms
	drawAvg            float64 // Rolling average in ms
}

// GetNewGame spawns the flock actor in system and builds the control panel.
func GetNewGame(ctx context.Context, cfg *Config, system actor.ActorSystem) (*Game, error) {
	// Buffer to avoid blocking the actor
	snapshotCh := make(chan *pb.WorldSnapshot, 10)

	flockPID, err := SpawnFlock(ctx, system, cfg, snapshotCh)
	if err != nil {
		return nil, err
	}

	g := &Game{
		ctx:        ctx,
		System:     system,
		flockPID:   flockPID,
		snapshotCh: snapshotCh,
		lastState:  &pb.WorldSnapshot{Width: cfg.WorldWidth, Height: cfg.WorldHeight},
		cfg:        cfg,
		worldW:     int(cfg.WorldWidth),
		worldH:     int(cfg.WorldHeight),
	}

	panel := ui.NewUIPanel(10, 10, 220, cfg.WorldHeight-20)
	panel.Title = "Boids"

	panel.AddSection("Flock")
	g.widgetPopulation = panel.AddSlider("Boids", 0, math.Max(2000, float64(cfg.Population)), float64(cfg.Population))
	g.widgetPopulation.Step = 1
	g.widgetRadius = panel.AddSlider("Range", 10, math.Max(200, cfg.PerceptionRadius), cfg.PerceptionRadius)
	g.widgetSpeed = panel.AddSlider("Speed", 0.3, math.Max(6, cfg.BaseSpeed), cfg.BaseSpeed)
	panel.EndSection()

	panel.AddSection("Rules")
	g.widgetCohesion = weightSlider(panel, "Cohesion", cfg.Cohesion)
	g.widgetSeparation = weightSlider(panel, "Separation", cfg.Separation)
	g.widgetAlignment = weightSlider(panel, "Alignment", cfg.Alignment)
	panel.EndSection()

	panel.AddSection("Display")
	g.widgetHighlight = panel.AddCheckbox("Highlight", cfg.Highlight)
	panel.AddButton("Reset", func() { g.resetRequested = true })
	panel.EndSection()

	panel.Fit()
	g.panel = panel
	return g, nil
}

func weightSlider(panel *ui.UIPanel, label string, value float64) *ui.Slider {
	s := panel.AddSlider(label, 0, 100, value)
	s.Step = 1
	return s
}

func (g *Game) Update() error {
	start := time.Now()
	defer func() {
		g.lastUpdateDuration = time.Since(start)
		// Rolling average (exponential moving average)
		g.updateAvg = g.updateAvg*0.95 + float64(g.lastUpdateDuration.Microseconds())/1000.0*0.05
	}()

	return g.update(ui.ReadPointer())
}

// update runs one frame of input handling and asks the actor for the next tick.
func (g *Game) update(ptr ui.Pointer) error {
	g.panel.HandlePointer(ptr)

	// Retrieve the latest state, keep the previous one if none is ready
	select {
	case snap := <-g.snapshotCh:
		g.lastState = snap
	default:
	}

	if g.layoutW > 0 && g.layoutH > 0 && (g.layoutW != g.worldW || g.layoutH != g.worldH) {
		g.worldW, g.worldH = g.layoutW, g.layoutH
		if err := g.tell(&pb.Resize{Width: float64(g.worldW), Height: float64(g.worldH)}); err != nil {
			return err
		}
	}

	if g.widgetPopulation.Changed() {
		g.resetRequested = true
	}
	if g.resetRequested {
		g.resetRequested = false
		if err := g.tell(&pb.ResetPopulation{Size: int32(g.widgetPopulation.Value)}); err != nil {
			return err
		}
	}

	inWindow := ptr.X >= 0 && ptr.Y >= 0 && ptr.X < float64(g.worldW) && ptr.Y < float64(g.worldH)
	if msg := g.fear.update(ptr, g.panel.Contains(ptr.X, ptr.Y), inWindow); msg != nil {
		if err := g.tell(msg); err != nil {
			return err
		}
	}

	// Trigger Simulation Step
	return g.tell(&pb.Tick{
		Parameters: TickParametersToProto(g.tickParameters()),
		Highlight:  g.widgetHighlight.Value,
	})
}

func (g *Game) tell(msg proto.Message) error {
	if err := actor.Tell(g.ctx, g.flockPID, msg); err != nil {
		return fmt.Errorf("sending %T to flock: %w", msg, err)
	}
	return nil
}

// tickParameters reads the current slider positions.
func (g *Game) tickParameters() behavior.TickParameters {
	return behavior.TickParameters{
		Radius:     g.widgetRadius.Value,
		Separation: g.widgetSeparation.Value,
		Alignment:  g.widgetAlignment.Value,
		Cohesion:   g.widgetCohesion.Value,
		Speed:      g.widgetSpeed.Value,
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	start := time.Now()
	defer func() {
		g.lastDrawDuration = time.Since(start)
		g.drawAvg = g.drawAvg*0.95 + float64(g.lastDrawDuration.Microseconds())/1000.0*0.05
	}()

	screen.Fill(backgroundColor)
	state := g.lastState

	if g.widgetHighlight.Value {
		if r := state.GetRepulsion(); r != nil && r.GetStrength() > g.cfg.FearThreshold {
			p := r.GetPoint()
			vector.FillCircle(screen, float32(p.GetX()), float32(p.GetY()),
				float32(r.GetRadius()*r.GetStrength()), fearColor, true)
		}
	}

	for _, a := range state.GetAgents() {
		drawBoid(screen, a, boidColor)
	}

	if g.widgetHighlight.Value && len(state.GetAgents()) > 0 {
		g.drawHighlight(screen, state)
	}

	g.panel.Draw(screen)

	label := fmt.Sprintf("Boids: %d", len(state.GetAgents()))
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	ebitenutil.DebugPrintAt(screen, label, w-6*len(label)-10, h-26)

	// Display timing breakdown for performance analysis
	msg := fmt.Sprintf("FPS: %.2f\nTPS: %.2f\n\nUpdate: %.2fms\nDraw:   %.2fms\nTotal:  %.2fms",
		ebiten.ActualFPS(),
		ebiten.ActualTPS(),
		g.updateAvg,
		g.drawAvg,
		g.updateAvg+g.drawAvg)
	ebitenutil.DebugPrintAt(screen, msg, w-150, 10)
}

// drawHighlight marks boid 0, its perception range and its neighbors. The
// range is drawn once per seam so the part that wrapped stays visible.
func (g *Game) drawHighlight(screen *ebiten.Image, state *pb.WorldSnapshot) {
	agents := state.GetAgents()
	for _, i := range state.GetHighlighted() {
		if int(i) < len(agents) {
			drawBoid(screen, agents[i], neighborColor)
		}
	}

	focus := agents[0]
	drawBoid(screen, focus, focusColor)

	x, y := focus.GetPosition().GetX(), focus.GetPosition().GetY()
	w, h := state.GetWidth(), state.GetHeight()
	radius := float32(g.widgetRadius.Value)
	for _, off := range [][2]float64{{0, 0}, {-w, 0}, {w, 0}, {0, -h}, {0, h}} {
		vector.StrokeCircle(screen, float32(x+off[0]), float32(y+off[1]), radius, 1, focusColor, true)
	}
}

// drawBoid strokes the outline of a boid rotated to its heading.
func drawBoid(screen *ebiten.Image, a *pb.AgentState, clr color.Color) {
	sin, cos := math.Sincos(a.GetHeading())
	px, py := a.GetPosition().GetX(), a.GetPosition().GetY()

	var pts [3][2]float32
	for i, v := range boidShape {
		pts[i][0] = float32(px + v[0]*cos - v[1]*sin)
		pts[i][1] = float32(py + v[0]*sin + v[1]*cos)
	}
	for i := range pts {
		j := (i + 1) % len(pts)
		vector.StrokeLine(screen, pts[i][0], pts[i][1], pts[j][0], pts[j][1], 1, clr, true)
	}
}

// Layout follows the window, the world is resized on the next Update.
func (g *Game) Layout(w, h int) (int, int) {
	g.layoutW, g.layoutH = w, h
	return w, h
}

// fearDrag turns the left button into repulsion commands. A press that
// starts on the panel belongs to the widgets.
type fearDrag struct {
	down   bool
	active bool
	x, y   float64
}

func (f *fearDrag) update(p ui.Pointer, onPanel, inWindow bool) proto.Message {
	justPressed := p.Pressed && !f.down
	f.down = p.Pressed

	switch {
	case f.active && (!p.Pressed || !inWindow):
		f.active = false
		return &pb.DeactivateRepulsion{}
	case f.active:
		if p.X == f.x && p.Y == f.y {
			return nil
		}
		f.x, f.y = p.X, p.Y
		return &pb.RetargetRepulsion{Point: &pb.Vector2D{X: p.X, Y: p.Y}}
	case justPressed && inWindow && !onPanel:
		f.active = true
		f.x, f.y = p.X, p.Y
		return &pb.ActivateRepulsion{Point: &pb.Vector2D{X: p.X, Y: p.Y}}
	}
	return nil
}
