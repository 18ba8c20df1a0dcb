package simulation

import (
	"context"
	"testing"

	"github.com/lao-tseu-is-alive/go-boids-torus/pb"
	"github.com/lao-tseu-is-alive/go-boids-torus/pkg/ui"
	golog "github.com/tochemey/goakt/v3/log"
	"google.golang.org/protobuf/proto"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	ctx := context.Background()

	system, err := StartSystem(ctx, golog.DiscardLogger)
	if err != nil {
		t.Fatalf("StartSystem: %v", err)
	}
	t.Cleanup(func() { _ = system.Stop(ctx) })

	g, err := GetNewGame(ctx, testConfig(), system)
	if err != nil {
		t.Fatalf("GetNewGame: %v", err)
	}
	g.Layout(400, 300)
	return g
}

func TestFearDrag(t *testing.T) {
	var f fearDrag
	steps := []struct {
		name     string
		p        ui.Pointer
		onPanel  bool
		inWindow bool
		want     proto.Message
	}{
		{"Idle", ui.Pointer{X: 5, Y: 5}, false, true, nil},
		{"Press on panel", ui.Pointer{X: 5, Y: 5, Pressed: true}, true, true, nil},
		{"Drag off the panel", ui.Pointer{X: 50, Y: 5, Pressed: true}, false, true, nil},
		{"Release", ui.Pointer{X: 50, Y: 5}, false, true, nil},
		{"Press", ui.Pointer{X: 60, Y: 70, Pressed: true}, false, true,
			&pb.ActivateRepulsion{Point: &pb.Vector2D{X: 60, Y: 70}}},
		{"Hold still", ui.Pointer{X: 60, Y: 70, Pressed: true}, false, true, nil},
		{"Drag", ui.Pointer{X: 61, Y: 72, Pressed: true}, true, true,
			&pb.RetargetRepulsion{Point: &pb.Vector2D{X: 61, Y: 72}}},
		{"Leave window", ui.Pointer{X: -1, Y: 72, Pressed: true}, false, false, &pb.DeactivateRepulsion{}},
		{"Come back still pressed", ui.Pointer{X: 10, Y: 72, Pressed: true}, false, true, nil},
		{"Release again", ui.Pointer{X: 10, Y: 72}, false, true, nil},
	}
	for _, s := range steps {
		got := f.update(s.p, s.onPanel, s.inWindow)
		if (got == nil) != (s.want == nil) || (got != nil && !proto.Equal(got, s.want)) {
			t.Fatalf("%s: update(%+v) = %v; want %v", s.name, s.p, got, s.want)
		}
	}
}

func TestGame_UpdateDrainsSnapshots(t *testing.T) {
	g := newTestGame(t)

	if err := g.update(ui.Pointer{}); err != nil {
		t.Fatalf("update: %v", err)
	}
	// the Ask is queued behind the tick, so the snapshot is in the channel afterwards
	askSnapshot(t, g.ctx, g.flockPID)
	if err := g.update(ui.Pointer{}); err != nil {
		t.Fatalf("update: %v", err)
	}
	if g.lastState.GetTick() != 1 || len(g.lastState.GetAgents()) != 40 {
		t.Errorf("lastState tick %d with %d agents; want tick 1 with 40",
			g.lastState.GetTick(), len(g.lastState.GetAgents()))
	}
}

func TestGame_MouseDrivesRepulsion(t *testing.T) {
	g := newTestGame(t)

	if err := g.update(ui.Pointer{X: 350, Y: 50, Pressed: true}); err != nil {
		t.Fatalf("update: %v", err)
	}
	r := askSnapshot(t, g.ctx, g.flockPID).GetRepulsion()
	if r == nil || !r.GetDriven() {
		t.Fatalf("repulsion after press = %v; want a driven field", r)
	}
	if r.GetPoint().GetX() != 350 || r.GetPoint().GetY() != 50 {
		t.Errorf("repulsion point = %v; want (350, 50)", r.GetPoint())
	}

	if err := g.update(ui.Pointer{X: 350, Y: 50}); err != nil {
		t.Fatalf("update: %v", err)
	}
	r = askSnapshot(t, g.ctx, g.flockPID).GetRepulsion()
	if r.GetDriven() || r.GetStrength() != g.cfg.FearDecay {
		t.Errorf("repulsion after release: driven %v strength %v; want false %v",
			r.GetDriven(), r.GetStrength(), g.cfg.FearDecay)
	}
}

func TestGame_PressOnPanelIsNotFear(t *testing.T) {
	g := newTestGame(t)
	s := g.widgetSpeed
	if err := g.update(ui.Pointer{X: s.X + s.W/2, Y: s.Y + 1, Pressed: true}); err != nil {
		t.Fatalf("update: %v", err)
	}
	if r := askSnapshot(t, g.ctx, g.flockPID).GetRepulsion(); r != nil {
		t.Errorf("press on the panel activated repulsion: %v", r)
	}
}

func TestGame_PopulationSliderResets(t *testing.T) {
	g := newTestGame(t)
	s := g.widgetPopulation

	// drag the population slider to its left end and let go
	if err := g.update(ui.Pointer{X: s.X, Y: s.Y + 1, Pressed: true}); err != nil {
		t.Fatalf("update: %v", err)
	}
	if err := g.update(ui.Pointer{X: s.X, Y: s.Y + 1}); err != nil {
		t.Fatalf("update: %v", err)
	}
	if n := len(askSnapshot(t, g.ctx, g.flockPID).GetAgents()); n != 0 {
		t.Errorf("agents after dragging population to 0 = %d; want 0", n)
	}
}

func TestGame_LayoutResizesWorld(t *testing.T) {
	g := newTestGame(t)
	g.Layout(500, 200)
	if err := g.update(ui.Pointer{}); err != nil {
		t.Fatalf("update: %v", err)
	}
	snap := askSnapshot(t, g.ctx, g.flockPID)
	if snap.GetWidth() != 500 || snap.GetHeight() != 200 {
		t.Errorf("world after Layout(500, 200) = %vx%v", snap.GetWidth(), snap.GetHeight())
	}
	for _, a := range snap.GetAgents() {
		if x, y := a.GetPosition().GetX(), a.GetPosition().GetY(); x < 0 || x >= 500 || y < 0 || y >= 200 {
			t.Fatalf("agent at (%v, %v) outside the resized world", x, y)
		}
	}
}

func TestGame_TickParametersFollowSliders(t *testing.T) {
	g := newTestGame(t)
	g.widgetCohesion.SetValue(73)
	g.widgetRadius.SetValue(42)
	p := g.tickParameters()
	if p.Cohesion != 73 || p.Radius != 42 || p.Speed != g.cfg.BaseSpeed {
		t.Errorf("tickParameters() = %+v", p)
	}
}
