package ui

import "github.com/hajimehoshi/ebiten/v2"

// Pointer is the mouse state sampled once per frame. Widgets only see this
// value, which keeps them testable without a window.
type Pointer struct {
	X, Y    float64
	Pressed bool    // left button held
	WheelY  float64 // vertical wheel delta of this frame
}

// ReadPointer samples ebiten's cursor, left button and wheel.
func ReadPointer() Pointer {
	mx, my := ebiten.CursorPosition()
	_, wy := ebiten.Wheel()
	return Pointer{
		X:       float64(mx),
		Y:       float64(my),
		Pressed: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		WheelY:  wy,
	}
}

// In reports whether the pointer is inside the given rectangle, edges included.
func (p Pointer) In(x, y, w, h float64) bool {
	return p.X >= x && p.X <= x+w && p.Y >= y && p.Y <= y+h
}

// press tracks button edges so a widget reacts to the click, not the hold.
type press struct {
	down bool
}

// update returns true only on the frame the button goes down.
func (s *press) update(p Pointer) bool {
	justPressed := p.Pressed && !s.down
	s.down = p.Pressed
	return justPressed
}
