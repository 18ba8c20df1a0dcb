package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Colors shared by every widget.
var (
	ColorTrack   = color.RGBA{R: 80, G: 80, B: 80, A: 255}
	ColorFill    = color.RGBA{R: 200, G: 200, B: 200, A: 255}
	ColorBorder  = color.RGBA{R: 200, G: 200, B: 200, A: 255}
	ColorChecked = color.RGBA{R: 100, G: 200, B: 100, A: 255}
	ColorButton  = color.RGBA{R: 80, G: 120, B: 180, A: 255}
	ColorHover   = color.RGBA{R: 100, G: 150, B: 220, A: 255}
	ColorPanel   = color.RGBA{R: 40, G: 40, B: 45, A: 230}
	ColorFrame   = color.RGBA{R: 100, G: 100, B: 110, A: 255}
	ColorSection = color.RGBA{R: 60, G: 60, B: 70, A: 255}
)

// DebugPrint glyph size
const glyphW, glyphH = 6, 16

// box fills a rectangle and, when border is not nil, outlines it 2px wide.
func box(screen *ebiten.Image, x, y, w, h float64, fill, border color.Color) {
	if fill != nil {
		vector.FillRect(screen, float32(x), float32(y), float32(w), float32(h), fill, true)
	}
	if border != nil {
		vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), 2, border, true)
	}
}

// centeredText prints s in the middle of the rectangle.
func centeredText(screen *ebiten.Image, s string, x, y, w, h float64) {
	tx := x + (w-float64(glyphW*len(s)))/2
	ty := y + (h-glyphH)/2
	ebitenutil.DebugPrintAt(screen, s, int(tx), int(ty))
}
