package term

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lao-tseu-is-alive/go-boids-torus/pb"
	"google.golang.org/protobuf/proto"
)

// populationStep is how many boids + and - add or remove.
const populationStep = 50

// Sender delivers a command to whatever owns the flock.
type Sender func(msg proto.Message) error

// Settings are the starting values of the terminal controls.
type Settings struct {
	Population     int
	Parameters     *pb.TickParameters
	Highlight      bool
	TicksPerSecond int
}

// App is the terminal front end: one ticker drives the simulation and the
// redraw, tcell events arrive on a channel fed by PollEvent.
type App struct {
	screen    tcell.Screen
	renderer  *Renderer
	send      Sender
	snapshots <-chan *pb.WorldSnapshot

	params     *pb.TickParameters
	population int
	highlight  bool
	interval   time.Duration

	last     *pb.WorldSnapshot
	dragging bool
}

func NewApp(screen tcell.Screen, send Sender, snapshots <-chan *pb.WorldSnapshot, s Settings) *App {
	tps := s.TicksPerSecond
	if tps <= 0 {
		tps = 30
	}
	params := s.Parameters
	if params == nil {
		params = &pb.TickParameters{}
	}
	return &App{
		screen:     screen,
		renderer:   NewRenderer(screen),
		send:       send,
		snapshots:  snapshots,
		params:     proto.Clone(params).(*pb.TickParameters),
		population: s.Population,
		highlight:  s.Highlight,
		interval:   time.Second / time.Duration(tps),
	}
}

// Run loops until the user quits, ctx is done or a command cannot be sent.
func (a *App) Run(ctx context.Context) error {
	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()

	done := make(chan struct{})
	defer close(done)
	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return // screen finalized
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			keepGoing, err := a.HandleEvent(ev)
			if err != nil {
				return err
			}
			if !keepGoing {
				return nil
			}
		case <-ticker.C:
			if err := a.Step(); err != nil {
				return err
			}
		}
	}
}

// Step draws the newest snapshot and requests the next tick.
func (a *App) Step() error {
drain:
	for {
		select {
		case snap := <-a.snapshots:
			a.last = snap
		default:
			break drain
		}
	}
	a.renderer.Draw(a.last, a.highlight, a.status())
	return a.send(&pb.Tick{Parameters: a.params, Highlight: a.highlight})
}

func (a *App) status() string {
	n, tick := 0, uint64(0)
	if a.last != nil {
		n, tick = len(a.last.GetAgents()), a.last.GetTick()
	}
	return fmt.Sprintf(" Boids: %d  tick %d  range %.0f speed %.1f | r reset  +/- boids  h highlight  drag to scare  q quit",
		n, tick, a.params.GetRadius(), a.params.GetSpeed())
}

// HandleEvent applies one terminal event. It returns false when the user quits.
func (a *App) HandleEvent(ev tcell.Event) (bool, error) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.handleKey(ev)
	case *tcell.EventMouse:
		return true, a.handleMouse(ev)
	case *tcell.EventResize:
		a.screen.Sync()
	}
	return true, nil
}

func (a *App) handleKey(ev *tcell.EventKey) (bool, error) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false, nil
	case tcell.KeyRune:
	default:
		return true, nil
	}

	switch ev.Rune() {
	case 'q':
		return false, nil
	case 'r':
		return true, a.reset()
	case '+', '=':
		a.population += populationStep
		return true, a.reset()
	case '-':
		a.population = max(a.population-populationStep, 0)
		return true, a.reset()
	case 'h':
		a.highlight = !a.highlight
	}
	return true, nil
}

func (a *App) reset() error {
	return a.send(&pb.ResetPopulation{Size: int32(a.population)})
}

// handleMouse mirrors a pointer drag: press scares, motion drags the
// scare point, release lets it fade.
func (a *App) handleMouse(ev *tcell.EventMouse) error {
	if a.last == nil {
		return nil
	}
	col, row := ev.Position()
	pressed := ev.Buttons()&tcell.Button1 != 0
	_, rows := a.renderer.field()

	switch {
	case pressed && !a.dragging:
		if row >= rows {
			return nil // status line
		}
		a.dragging = true
		return a.send(&pb.ActivateRepulsion{Point: a.renderer.WorldPoint(a.last, col, row)})
	case pressed:
		return a.send(&pb.RetargetRepulsion{Point: a.renderer.WorldPoint(a.last, col, row)})
	case a.dragging:
		a.dragging = false
		return a.send(&pb.DeactivateRepulsion{})
	}
	return nil
}

// Population is the size the next reset asks for.
func (a *App) Population() int { return a.population }

// Highlight reports whether boid 0 and its neighbors are marked.
func (a *App) Highlight() bool { return a.highlight }
