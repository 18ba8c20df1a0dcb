package behavior

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidParameters is wrapped by every validation failure of the kernel.
var ErrInvalidParameters = errors.New("invalid parameters")

// TickParameters is the configuration snapshot consumed by one Tick.
// Rule weights use the slider scale: 100 means "fully adopt the rule's
// heading in one tick", so each weight is divided by 100 when steering.
type TickParameters struct {
	Radius     float64 // perception radius
	Separation float64
	Alignment  float64
	Cohesion   float64
	Speed      float64 // base speed shared by the population
}

// Validate rejects configurations that would push NaN or Inf into agents.
func (p TickParameters) Validate() error {
	if !finite(p.Radius) || p.Radius <= 0 {
		return fmt.Errorf("%w: radius must be a positive finite number, got %v", ErrInvalidParameters, p.Radius)
	}
	for _, f := range []struct {
		name  string
		value float64
	}{
		{"separation", p.Separation},
		{"alignment", p.Alignment},
		{"cohesion", p.Cohesion},
		{"speed", p.Speed},
	} {
		if !finite(f.value) || f.value < 0 {
			return fmt.Errorf("%w: %s must be a non-negative finite number, got %v", ErrInvalidParameters, f.name, f.value)
		}
	}
	return nil
}

func (p TickParameters) separationGain() float64 { return p.Separation / 100 }
func (p TickParameters) alignmentGain() float64  { return p.Alignment / 100 }
func (p TickParameters) cohesionGain() float64   { return p.Cohesion / 100 }

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
