package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Button runs OnClick when pressed.
type Button struct {
	Label         string
	X, Y          float64
	Width, Height float64
	OnClick       func()

	BGColor, HoverColor color.RGBA

	press
	hover bool
}

func NewButton(x, y, width, height float64, label string, onClick func()) *Button {
	return &Button{
		Label: label,
		X:     x, Y: y,
		Width: width, Height: height,
		OnClick:    onClick,
		BGColor:    ColorButton,
		HoverColor: ColorHover,
	}
}

func (b *Button) Update() { b.HandlePointer(ReadPointer()) }

// HandlePointer fires OnClick on the frame the button goes down over it,
// so holding the mouse does not repeat the action.
func (b *Button) HandlePointer(p Pointer) {
	b.hover = p.In(b.X, b.Y, b.Width, b.Height)
	if b.press.update(p) && b.hover && b.OnClick != nil {
		b.OnClick()
	}
}

func (b *Button) Draw(screen *ebiten.Image) {
	fill := b.BGColor
	if b.hover {
		fill = b.HoverColor
	}
	box(screen, b.X, b.Y, b.Width, b.Height, fill, ColorBorder)
	centeredText(screen, b.Label, b.X, b.Y, b.Width, b.Height)
}
