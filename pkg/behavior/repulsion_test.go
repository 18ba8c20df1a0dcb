package behavior

import (
	"math"
	"testing"

	"github.com/lao-tseu-is-alive/go-boids-torus/pkg/geometry"
)

func TestRepulsionField_Pull(t *testing.T) {
	f := NewRepulsionField(DefaultRepulsionSettings())
	f.Activate(geometry.Vector2D{X: 50, Y: 50})

	tests := []struct {
		name     string
		distance float64
		want     float64
	}{
		{"At the point", 0, 0.5},
		{"Half way", 100, 0.25},
		{"On the radius", 200, 0},
		{"Outside", 250, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := f.Pull(tt.distance); !almost(got, tt.want) {
				t.Errorf("Pull(%v) = %v; want %v", tt.distance, got, tt.want)
			}
		})
	}
}

func TestRepulsionField_Lifecycle(t *testing.T) {
	f := NewRepulsionField(DefaultRepulsionSettings())
	if f.Active() {
		t.Fatal("new field should be inactive")
	}

	// retargeting a field that was never pressed does nothing
	f.Retarget(geometry.Vector2D{X: 1, Y: 1})
	if f.Active() || f.Point != (geometry.Vector2D{}) {
		t.Fatalf("Retarget on released field changed it: %+v", f)
	}

	f.Activate(geometry.Vector2D{X: 10, Y: 10})
	f.Decay()
	if f.Strength != 1 {
		t.Errorf("driven field decayed to %v; want 1", f.Strength)
	}

	f.Retarget(geometry.Vector2D{X: 20, Y: 30})
	if f.Point != (geometry.Vector2D{X: 20, Y: 30}) {
		t.Errorf("Retarget point = %v; want (20, 30)", f.Point)
	}

	f.Deactivate()
	f.Retarget(geometry.Vector2D{X: 99, Y: 99})
	if f.Point != (geometry.Vector2D{X: 20, Y: 30}) {
		t.Errorf("Retarget after release moved the field to %v", f.Point)
	}

	f.Decay()
	if !almost(f.Strength, 0.95) {
		t.Errorf("strength after one decay = %v; want 0.95", f.Strength)
	}

	// 0.95^n drops under 0.01 after 90 ticks
	ticks := 1
	for f.Active() {
		f.Decay()
		ticks++
		if ticks > 1000 {
			t.Fatal("field never went inactive")
		}
	}
	wantTicks := int(math.Ceil(math.Log(DefaultFearThreshold) / math.Log(DefaultFearDecay)))
	if ticks != wantTicks {
		t.Errorf("field went inactive after %d ticks; want %d", ticks, wantTicks)
	}
	strength := f.Strength
	f.Decay()
	if f.Strength != strength {
		t.Error("inactive field kept decaying")
	}
	if got := f.Pull(0); got != 0 {
		t.Errorf("inactive field Pull(0) = %v; want 0", got)
	}
}

func TestRepulsionField_Contribution(t *testing.T) {
	world := geometry.World{Width: 1000, Height: 1000}
	f := NewRepulsionField(DefaultRepulsionSettings())
	f.Activate(geometry.Vector2D{X: 500, Y: 500})

	// agent right of the point heading up: flee heading is 0, so it turns clockwise
	a := Agent{Position: geometry.Vector2D{X: 600, Y: 500}, Heading: math.Pi / 2}
	want := -math.Pi / 2 * 0.25
	if got := f.Contribution(a, world); !almost(got, want) {
		t.Errorf("Contribution = %v; want %v", got, want)
	}

	far := Agent{Position: geometry.Vector2D{X: 900, Y: 500}}
	if got := f.Contribution(far, world); got != 0 {
		t.Errorf("Contribution outside radius = %v; want 0", got)
	}

	var nilField *RepulsionField
	if nilField.Active() {
		t.Error("nil field reported active")
	}
}

func TestRepulsionSettings_Validate(t *testing.T) {
	tests := []struct {
		name    string
		s       RepulsionSettings
		wantErr bool
	}{
		{"Defaults", DefaultRepulsionSettings(), false},
		{"Zero radius", RepulsionSettings{Radius: 0, Decay: 0.9, Threshold: 0.01}, true},
		{"Decay one", RepulsionSettings{Radius: 10, Decay: 1, Threshold: 0.01}, true},
		{"Negative threshold", RepulsionSettings{Radius: 10, Decay: 0.9, Threshold: -1}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.s.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v; wantErr %v", err, tt.wantErr)
			}
		})
	}
}
