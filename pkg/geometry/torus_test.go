package geometry

import (
	"errors"
	"math"
	"math/rand/v2"
	"testing"
)

func TestNewWorld(t *testing.T) {
	tests := []struct {
		name    string
		w, h    float64
		wantErr bool
	}{
		{"Valid", 100, 50, false},
		{"Zero width", 0, 50, true},
		{"Negative height", 100, -1, true},
		{"NaN width", math.NaN(), 50, true},
		{"Infinite height", 100, math.Inf(1), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewWorld(tt.w, tt.h)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewWorld(%v, %v) error = %v; wantErr %v", tt.w, tt.h, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidWorld) {
				t.Errorf("NewWorld(%v, %v) error = %v; want ErrInvalidWorld", tt.w, tt.h, err)
			}
		})
	}
}

func TestWrappedDelta(t *testing.T) {
	tests := []struct {
		name      string
		a, b, ext float64
		want      float64
	}{
		{"Plain", 20, 10, 100, 10},
		{"Plain negative", 10, 20, 100, -10},
		{"Across right seam", 1, 99, 100, 2},
		{"Across left seam", 99, 1, 100, -2},
		{"Exactly half stays", 60, 10, 100, 50},
		{"Exactly minus half stays", 10, 60, 100, -50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WrappedDelta(tt.a, tt.b, tt.ext); !floatEquals(got, tt.want) {
				t.Errorf("WrappedDelta(%v, %v, %v) = %v; want %v", tt.a, tt.b, tt.ext, got, tt.want)
			}
		})
	}
}

func TestWorld_DistanceSeamContinuity(t *testing.T) {
	w := World{Width: 100, Height: 100}

	got := w.Distance(Vector2D{1, 50}, Vector2D{99, 50})
	if !floatEquals(got, 2) {
		t.Errorf("Distance across x seam = %v; want 2", got)
	}

	got = w.Distance(Vector2D{50, 99.5}, Vector2D{50, 0.5})
	if !floatEquals(got, 1) {
		t.Errorf("Distance across y seam = %v; want 1", got)
	}

	got = w.Distance(Vector2D{1, 1}, Vector2D{99, 99})
	if !floatEquals(got, math.Sqrt(8)) {
		t.Errorf("Distance across corner = %v; want %v", got, math.Sqrt(8))
	}
}

func TestWorld_DistanceSymmetry(t *testing.T) {
	w := World{Width: 640, Height: 480}
	rng := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 1000; i++ {
		p := Vector2D{rng.Float64() * w.Width, rng.Float64() * w.Height}
		q := Vector2D{rng.Float64() * w.Width, rng.Float64() * w.Height}
		if d1, d2 := w.Distance(p, q), w.Distance(q, p); d1 != d2 {
			t.Fatalf("Distance(%v, %v) = %v but Distance(%v, %v) = %v", p, q, d1, q, p, d2)
		}
		if d := w.Distance(p, q); d > math.Hypot(w.Width/2, w.Height/2)+Epsilon {
			t.Fatalf("Distance(%v, %v) = %v exceeds half diagonal", p, q, d)
		}
	}
}

func TestWorld_Delta(t *testing.T) {
	w := World{Width: 100, Height: 100}
	got := w.Delta(Vector2D{1, 98}, Vector2D{99, 2})
	want := Vector2D{2, -4}
	if !got.Eq(want) {
		t.Errorf("Delta = %v; want %v", got, want)
	}
}

func TestWorld_Wrap(t *testing.T) {
	w := World{Width: 100, Height: 50}
	tests := []struct {
		name string
		in   Vector2D
		want Vector2D
	}{
		{"Inside", Vector2D{10, 10}, Vector2D{10, 10}},
		{"Past right", Vector2D{101, 10}, Vector2D{1, 10}},
		{"Past left", Vector2D{-1, 10}, Vector2D{99, 10}},
		{"Past bottom", Vector2D{10, 55}, Vector2D{10, 5}},
		{"Past top", Vector2D{10, -5}, Vector2D{10, 45}},
		{"On the edge", Vector2D{100, 50}, Vector2D{0, 0}},
		{"Many laps", Vector2D{1050, -120}, Vector2D{50, 30}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := w.Wrap(tt.in)
			if !got.Eq(tt.want) {
				t.Errorf("Wrap(%v) = %v; want %v", tt.in, got, tt.want)
			}
			if !w.Contains(got) {
				t.Errorf("Wrap(%v) = %v is outside the world", tt.in, got)
			}
		})
	}
}

func TestWorld_WrapTinyNegative(t *testing.T) {
	w := World{Width: 100, Height: 100}
	got := w.Wrap(Vector2D{-1e-17, -1e-17})
	if !w.Contains(got) {
		t.Errorf("Wrap(-1e-17) = %v is outside [0, 100)", got)
	}
}

func TestAngleDifference(t *testing.T) {
	tests := []struct {
		name            string
		target, current float64
		want            float64
	}{
		{"Zero", 1, 1, 0},
		{"Small positive", 0.5, 0.25, 0.25},
		{"Small negative", 0.25, 0.5, -0.25},
		{"Across +Pi boundary", -3, 3, 2*math.Pi - 6},
		{"Across -Pi boundary", 3, -3, 6 - 2*math.Pi},
		{"Full turn", 2 * math.Pi, 0, 0},
		{"Tie resolves to +Pi", math.Pi, 0, math.Pi},
		{"Negative tie resolves to +Pi", -math.Pi, 0, math.Pi},
		{"Large input", 100*math.Pi + 0.5, 0, 0.5},
		{"NaN", math.NaN(), 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AngleDifference(tt.target, tt.current)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("AngleDifference(%v, %v) = %v; want %v", tt.target, tt.current, got, tt.want)
			}
			if got <= -math.Pi || got > math.Pi {
				t.Errorf("AngleDifference(%v, %v) = %v outside (-Pi, Pi]", tt.target, tt.current, got)
			}
		})
	}
}

func TestAngleDifference_Antisymmetry(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	for i := 0; i < 1000; i++ {
		a := rng.Float64()*4*math.Pi - 2*math.Pi
		b := rng.Float64()*4*math.Pi - 2*math.Pi
		d1 := AngleDifference(a, b)
		d2 := AngleDifference(b, a)
		if math.Abs(math.Abs(d1)-math.Pi) < 1e-9 {
			continue // the tie at Pi is reported as +Pi both ways
		}
		if math.Abs(d1+d2) > 1e-9 {
			t.Fatalf("AngleDifference(%v, %v) = %v, reverse = %v; want opposite signs", a, b, d1, d2)
		}
	}
}

func TestNormalizeAngle(t *testing.T) {
	if got := NormalizeAngle(3 * math.Pi / 2); !floatEquals(got, -math.Pi/2) {
		t.Errorf("NormalizeAngle(3Pi/2) = %v; want %v", got, -math.Pi/2)
	}
	if got := NormalizeAngle(-math.Pi); !floatEquals(got, math.Pi) {
		t.Errorf("NormalizeAngle(-Pi) = %v; want %v", got, math.Pi)
	}
}

func BenchmarkWorld_Distance(b *testing.B) {
	w := World{Width: 1000, Height: 800}
	p := Vector2D{X: 5, Y: 790}
	q := Vector2D{X: 990, Y: 10}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		w.Distance(p, q)
	}
}
