package ui

import "github.com/hajimehoshi/ebiten/v2"

// Checkbox is a square toggle; its label is drawn by the panel.
type Checkbox struct {
	Label string
	Value bool
	X, Y  float64
	Size  float64
	press
}

func NewCheckbox(x, y float64, label string, value bool) *Checkbox {
	return &Checkbox{Label: label, Value: value, X: x, Y: y, Size: 16}
}

func (c *Checkbox) Update() { c.HandlePointer(ReadPointer()) }

// HandlePointer flips Value once per click inside the square.
func (c *Checkbox) HandlePointer(p Pointer) {
	if c.press.update(p) && p.In(c.X, c.Y, c.Size, c.Size) {
		c.Value = !c.Value
	}
}

func (c *Checkbox) Draw(screen *ebiten.Image) {
	box(screen, c.X, c.Y, c.Size, c.Size, nil, ColorBorder)
	if c.Value {
		box(screen, c.X+2, c.Y+2, c.Size-4, c.Size-4, ColorChecked, nil)
	}
}
