package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

const (
	titleHeight   = 30
	sectionHeight = 25
	scrollStep    = 20
)

// UIWidget is a row of the panel.
type UIWidget interface {
	HandlePointer(p Pointer)
	Draw(screen *ebiten.Image)
	GetHeight() float64
	// place moves the widget so that its row starts at y
	place(y float64)
	// caption is the text the panel prints at the top of the row
	caption() string
}

type sliderRow struct{ *Slider }

func (r sliderRow) GetHeight() float64 { return r.H + 25 }
func (r sliderRow) place(y float64)    { r.Y = y + 15 }
func (r sliderRow) caption() string {
	if r.Step >= 1 {
		return fmt.Sprintf("%s: %.0f", r.Label, r.Value)
	}
	return fmt.Sprintf("%s: %.2f", r.Label, r.Value)
}

type checkboxRow struct{ *Checkbox }

func (r checkboxRow) GetHeight() float64 { return r.Size + 20 }
func (r checkboxRow) place(y float64)    { r.Y = y }
func (r checkboxRow) caption() string    { return "     " + r.Label } // right of the box

type buttonRow struct{ *Button }

func (r buttonRow) GetHeight() float64 { return r.Height + 10 }
func (r buttonRow) place(y float64)    { r.Y = y }
func (r buttonRow) caption() string    { return "" }

// UIPanel stacks widgets under section headers and scrolls them with the wheel.
type UIPanel struct {
	X, Y          float64
	Width, Height float64
	Title         string
	Widgets       []UIWidget
	ScrollOffset  float64

	BGColor     color.RGBA
	BorderColor color.RGBA

	sections []PanelSection
}

// PanelSection is a header drawn above Widgets[StartIndex:EndIndex].
type PanelSection struct {
	Title      string
	StartIndex int
	EndIndex   int
}

func NewUIPanel(x, y, width, height float64) *UIPanel {
	return &UIPanel{
		X: x, Y: y,
		Width: width, Height: height,
		Title:       "Configuration",
		BGColor:     ColorPanel,
		BorderColor: ColorFrame,
	}
}

func (p *UIPanel) AddSection(title string) {
	n := len(p.Widgets)
	p.sections = append(p.sections, PanelSection{Title: title, StartIndex: n, EndIndex: n})
}

func (p *UIPanel) EndSection() {
	if len(p.sections) > 0 {
		p.sections[len(p.sections)-1].EndIndex = len(p.Widgets)
	}
}

func (p *UIPanel) AddSlider(label string, min, max, value float64) *Slider {
	s := NewSlider(p.X+10, 0, p.Width-20, label, min, max, value)
	p.add(sliderRow{s})
	return s
}

func (p *UIPanel) AddCheckbox(label string, value bool) *Checkbox {
	c := NewCheckbox(p.X+10, 0, label, value)
	p.add(checkboxRow{c})
	return c
}

// AddButton adds a button as wide as the panel.
func (p *UIPanel) AddButton(label string, onClick func()) *Button {
	b := NewButton(p.X+10, 0, p.Width-20, 20, label, onClick)
	p.add(buttonRow{b})
	return b
}

func (p *UIPanel) add(w UIWidget) {
	p.Widgets = append(p.Widgets, w)
	p.layout()
}

// Fit resizes the panel to its content.
func (p *UIPanel) Fit() {
	p.Height = p.contentHeight() + 5
	p.layout()
}

// Contains reports whether (x, y) is on the panel, so callers can ignore
// clicks meant for the widgets.
func (p *UIPanel) Contains(x, y float64) bool {
	return Pointer{X: x, Y: y}.In(p.X, p.Y, p.Width, p.Height)
}

func (p *UIPanel) Update() { p.HandlePointer(ReadPointer()) }

func (p *UIPanel) HandlePointer(ptr Pointer) {
	if ptr.WheelY != 0 && p.Contains(ptr.X, ptr.Y) {
		maxScroll := max(p.contentHeight()-p.Height, 0)
		p.ScrollOffset = min(max(p.ScrollOffset-ptr.WheelY*scrollStep, 0), maxScroll)
		p.layout()
	}
	for _, w := range p.Widgets {
		w.HandlePointer(ptr)
	}
}

// rows calls fn for every section header and widget, top to bottom, with
// the scrolled y of each. header is nil for widgets and w is nil for headers.
func (p *UIPanel) rows(fn func(y float64, header *PanelSection, w UIWidget)) {
	y := p.Y + titleHeight - p.ScrollOffset
	next := 0
	for i := 0; i <= len(p.Widgets); i++ {
		for next < len(p.sections) && p.sections[next].StartIndex == i {
			fn(y, &p.sections[next], nil)
			y += sectionHeight
			next++
		}
		if i < len(p.Widgets) {
			fn(y, nil, p.Widgets[i])
			y += p.Widgets[i].GetHeight()
		}
	}
}

func (p *UIPanel) layout() {
	p.rows(func(y float64, _ *PanelSection, w UIWidget) {
		if w != nil {
			w.place(y)
		}
	})
}

func (p *UIPanel) Draw(screen *ebiten.Image) {
	box(screen, p.X, p.Y, p.Width, p.Height, p.BGColor, p.BorderColor)
	ebitenutil.DebugPrintAt(screen, p.Title, int(p.X+10), int(p.Y+5))

	p.rows(func(y float64, header *PanelSection, w UIWidget) {
		if !p.visible(y) {
			return
		}
		if header != nil {
			box(screen, p.X+5, y, p.Width-10, 20, ColorSection, nil)
			ebitenutil.DebugPrintAt(screen, header.Title, int(p.X+10), int(y+2))
			return
		}
		if c := w.caption(); c != "" {
			ebitenutil.DebugPrintAt(screen, c, int(p.X+10), int(y-2))
		}
		w.Draw(screen)
	})
}

func (p *UIPanel) visible(y float64) bool {
	return y >= p.Y+20 && y <= p.Y+p.Height-15
}

func (p *UIPanel) contentHeight() float64 {
	h := titleHeight + sectionHeight*float64(len(p.sections))
	for _, w := range p.Widgets {
		h += w.GetHeight()
	}
	return h
}
