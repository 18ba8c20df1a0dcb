package ui

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// Slider is a horizontal value picker. A drag must start on the slider;
// after that the value follows the pointer until the button is released.
type Slider struct {
	Label    string
	Value    float64
	Min, Max float64
	Step     float64 // 0 means continuous
	X, Y     float64
	W, H     float64

	press
	dragging   bool
	startValue float64
	changed    bool
}

// NewSlider creates a slider 10 pixels high.
func NewSlider(x, y, w float64, label string, min, max, value float64) *Slider {
	s := &Slider{
		Label: label,
		Min:   min, Max: max,
		X: x, Y: y, W: w, H: 10,
	}
	s.SetValue(value)
	return s
}

// Update checks for mouse interaction
func (s *Slider) Update() {
	s.HandlePointer(ReadPointer())
}

func (s *Slider) HandlePointer(p Pointer) {
	s.changed = false
	justPressed := s.press.update(p)

	if !p.Pressed {
		if s.dragging {
			s.dragging = false
			s.changed = s.Value != s.startValue
		}
		return
	}
	if justPressed && p.In(s.X, s.Y, s.W, s.H) {
		s.dragging = true
		s.startValue = s.Value
	}
	if s.dragging {
		s.SetValue(s.Min + (p.X-s.X)/s.W*(s.Max-s.Min))
	}
}

// SetValue clamps v into [Min, Max] and snaps it to Step.
func (s *Slider) SetValue(v float64) {
	if s.Step > 0 {
		v = s.Min + math.Round((v-s.Min)/s.Step)*s.Step
	}
	s.Value = math.Max(s.Min, math.Min(s.Max, v))
}

// Changed is true on the frame a drag ends with a different value, like
// an HTML range input "change" event.
func (s *Slider) Changed() bool { return s.changed }

// Dragging reports whether the slider currently owns the pointer.
func (s *Slider) Dragging() bool { return s.dragging }

// Draw renders the track and the filled part up to Value.
func (s *Slider) Draw(screen *ebiten.Image) {
	box(screen, s.X, s.Y, s.W, s.H, ColorTrack, nil)
	ratio := 0.0
	if s.Max > s.Min {
		ratio = (s.Value - s.Min) / (s.Max - s.Min)
	}
	box(screen, s.X, s.Y, s.W*ratio, s.H, ColorFill, nil)
}
