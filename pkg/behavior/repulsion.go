package behavior

import (
	"fmt"

	"github.com/lao-tseu-is-alive/go-boids-torus/pkg/geometry"
)

// Defaults of the fear field.
const (
	DefaultFearRadius    = 200.0
	DefaultFearDecay     = 0.95
	DefaultFearThreshold = 0.01
)

// RepulsionSettings are the constants of the fear field.
type RepulsionSettings struct {
	Radius    float64 // agents farther than this are not affected
	Decay     float64 // strength multiplier applied each undriven tick, in (0, 1)
	Threshold float64 // below this strength the field is inactive
}

// DefaultRepulsionSettings returns a 200 wide field losing 5% per tick until 0.01.
func DefaultRepulsionSettings() RepulsionSettings {
	return RepulsionSettings{
		Radius:    DefaultFearRadius,
		Decay:     DefaultFearDecay,
		Threshold: DefaultFearThreshold,
	}
}

// Validate checks the settings ranges.
func (s RepulsionSettings) Validate() error {
	if !finite(s.Radius) || s.Radius <= 0 {
		return fmt.Errorf("%w: fear radius must be a positive finite number, got %v", ErrInvalidParameters, s.Radius)
	}
	if !finite(s.Decay) || s.Decay <= 0 || s.Decay >= 1 {
		return fmt.Errorf("%w: fear decay must be in (0, 1), got %v", ErrInvalidParameters, s.Decay)
	}
	if !finite(s.Threshold) || s.Threshold < 0 || s.Threshold >= 1 {
		return fmt.Errorf("%w: fear threshold must be in [0, 1), got %v", ErrInvalidParameters, s.Threshold)
	}
	return nil
}

// RepulsionField is a transient fear point, typically dragged by a pointer.
// While Driven it keeps full strength; once released it fades every tick.
type RepulsionField struct {
	Point    geometry.Vector2D
	Strength float64
	Driven   bool
	Settings RepulsionSettings
}

// NewRepulsionField returns an inactive field.
func NewRepulsionField(settings RepulsionSettings) *RepulsionField {
	return &RepulsionField{Settings: settings}
}

// Activate places the field at point with full strength and marks it driven.
func (f *RepulsionField) Activate(point geometry.Vector2D) {
	f.Point = point
	f.Strength = 1
	f.Driven = true
}

// Retarget moves a driven field and restores its strength. A released
// field ignores the call.
func (f *RepulsionField) Retarget(point geometry.Vector2D) {
	if !f.Driven {
		return
	}
	f.Point = point
	f.Strength = 1
}

// Deactivate releases the pointer; the field then decays on its own.
func (f *RepulsionField) Deactivate() {
	f.Driven = false
}

// Active reports whether the field still exerts a force.
func (f *RepulsionField) Active() bool {
	return f != nil && f.Strength > f.Settings.Threshold
}

// Pull is the fraction of the flee turn applied to an agent at distance.
func (f *RepulsionField) Pull(distance float64) float64 {
	if !f.Active() || distance >= f.Settings.Radius {
		return 0
	}
	return f.Strength * (1 - distance/f.Settings.Radius) * 0.5
}

// Contribution is the heading change pushing agent away from the field.
func (f *RepulsionField) Contribution(agent Agent, world geometry.World) float64 {
	if !f.Active() {
		return 0
	}
	flee := world.Delta(agent.Position, f.Point)
	pull := f.Pull(flee.Len())
	if pull == 0 {
		return 0
	}
	return geometry.AngleDifference(flee.Angle(), agent.Heading) * pull
}

// Decay fades a released, still active field by one tick.
func (f *RepulsionField) Decay() {
	if f.Driven || !f.Active() {
		return
	}
	f.Strength *= f.Settings.Decay
}
