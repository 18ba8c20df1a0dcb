package ui

import "testing"

func TestSlider_Drag(t *testing.T) {
	s := NewSlider(10, 10, 100, "Speed", 0, 10, 5)

	// press outside, then slide over: a drag must start on the slider
	s.HandlePointer(Pointer{X: 0, Y: 0, Pressed: true})
	s.HandlePointer(Pointer{X: 60, Y: 15, Pressed: true})
	if s.Value != 5 || s.Dragging() {
		t.Fatalf("slider moved by a drag that started elsewhere: value %v", s.Value)
	}
	s.HandlePointer(Pointer{})

	s.HandlePointer(Pointer{X: 30, Y: 15, Pressed: true})
	if !s.Dragging() || s.Value != 2 {
		t.Fatalf("after press at 30: dragging %v value %v; want true 2", s.Dragging(), s.Value)
	}
	// leaving the slider keeps the drag, and the value is clamped
	s.HandlePointer(Pointer{X: 500, Y: 300, Pressed: true})
	if s.Value != 10 {
		t.Errorf("value dragged past the end = %v; want 10", s.Value)
	}
	if s.Changed() {
		t.Error("Changed before release")
	}
	s.HandlePointer(Pointer{X: 500, Y: 300})
	if !s.Changed() {
		t.Error("Changed is false on the release frame")
	}
	s.HandlePointer(Pointer{})
	if s.Changed() {
		t.Error("Changed stays true after the release frame")
	}
}

func TestSlider_ReleaseWithoutChange(t *testing.T) {
	s := NewSlider(0, 0, 100, "Boids", 0, 100, 50)
	s.HandlePointer(Pointer{X: 50, Y: 5, Pressed: true})
	s.HandlePointer(Pointer{X: 50, Y: 5})
	if s.Changed() {
		t.Error("Changed after a click that kept the value")
	}
}

func TestSlider_SetValueStep(t *testing.T) {
	tests := []struct {
		name string
		step float64
		in   float64
		want float64
	}{
		{"Continuous", 0, 3.3, 3.3},
		{"Step one", 1, 3.4, 3},
		{"Step ten", 10, 46, 50},
		{"Below min", 1, -4, 0},
		{"Above max", 1, 400, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSlider(0, 0, 100, "x", 0, 100, 0)
			s.Step = tt.step
			s.SetValue(tt.in)
			if s.Value != tt.want {
				t.Errorf("SetValue(%v) = %v; want %v", tt.in, s.Value, tt.want)
			}
		})
	}
}

func TestCheckbox_TogglesOncePerClick(t *testing.T) {
	c := NewCheckbox(0, 0, "Highlight", false)
	in := Pointer{X: 8, Y: 8, Pressed: true}
	c.HandlePointer(in)
	c.HandlePointer(in) // held
	if !c.Value {
		t.Fatal("checkbox not toggled by a click")
	}
	c.HandlePointer(Pointer{X: 8, Y: 8})
	c.HandlePointer(in)
	if c.Value {
		t.Error("second click did not toggle back")
	}
	c.HandlePointer(Pointer{})
	c.HandlePointer(Pointer{X: 80, Y: 80, Pressed: true})
	if c.Value {
		t.Error("click outside toggled the checkbox")
	}
}

func TestButton_Click(t *testing.T) {
	clicks := 0
	b := NewButton(0, 0, 50, 20, "Reset", func() { clicks++ })
	b.HandlePointer(Pointer{X: 10, Y: 10, Pressed: true})
	b.HandlePointer(Pointer{X: 10, Y: 10, Pressed: true})
	b.HandlePointer(Pointer{X: 10, Y: 10})
	b.HandlePointer(Pointer{X: 60, Y: 10, Pressed: true})
	if clicks != 1 {
		t.Errorf("clicks = %d; want 1", clicks)
	}
}

func TestUIPanel_Layout(t *testing.T) {
	p := NewUIPanel(10, 10, 200, 50)
	p.AddSection("Flock")
	a := p.AddSlider("A", 0, 1, 0)
	b := p.AddSlider("B", 0, 1, 0)
	p.EndSection()
	p.AddSection("Display")
	c := p.AddCheckbox("C", false)
	reset := p.AddButton("Reset", nil)
	p.EndSection()
	p.Fit()

	if !(a.Y < b.Y && b.Y < c.Y && c.Y < reset.Y) {
		t.Errorf("widgets not stacked: %v %v %v %v", a.Y, b.Y, c.Y, reset.Y)
	}
	if reset.Y+reset.Height > p.Y+p.Height {
		t.Errorf("button bottom %v outside fitted panel bottom %v", reset.Y+reset.Height, p.Y+p.Height)
	}
	if !p.Contains(15, 15) || p.Contains(300, 15) {
		t.Error("Contains does not match the panel rectangle")
	}

	// a click on the slider is routed through the panel
	p.HandlePointer(Pointer{X: a.X + a.W, Y: a.Y + 1, Pressed: true})
	if a.Value != 1 {
		t.Errorf("slider value after click at its right end = %v; want 1", a.Value)
	}
}

func TestUIPanel_Scroll(t *testing.T) {
	p := NewUIPanel(0, 0, 200, 60)
	p.AddSection("Many")
	first := p.AddSlider("first", 0, 1, 0)
	for i := 0; i < 5; i++ {
		p.AddSlider("more", 0, 1, 0)
	}
	p.EndSection()
	y := first.Y

	p.HandlePointer(Pointer{X: 50, Y: 30, WheelY: -1})
	if first.Y != y-20 {
		t.Errorf("slider Y after scrolling down = %v; want %v", first.Y, y-20)
	}
	p.HandlePointer(Pointer{X: 50, Y: 30, WheelY: 10})
	if p.ScrollOffset != 0 || first.Y != y {
		t.Errorf("scroll not clamped at the top: offset %v, Y %v", p.ScrollOffset, first.Y)
	}
}
