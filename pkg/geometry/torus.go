package geometry

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidWorld is returned when a world extent is not a positive finite number.
var ErrInvalidWorld = errors.New("invalid world")

// World is the rectangle the boids live in. Both axes wrap around, so
// topologically it is a torus: leaving on the right re-enters on the left.
type World struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// NewWorld returns a validated world of the given extent.
func NewWorld(width, height float64) (World, error) {
	w := World{Width: width, Height: height}
	if err := w.Validate(); err != nil {
		return World{}, err
	}
	return w, nil
}

// Validate rejects non-positive, NaN or infinite extents.
func (w World) Validate() error {
	if !isFinite(w.Width) || w.Width <= 0 {
		return fmt.Errorf("%w: width must be a positive finite number, got %v", ErrInvalidWorld, w.Width)
	}
	if !isFinite(w.Height) || w.Height <= 0 {
		return fmt.Errorf("%w: height must be a positive finite number, got %v", ErrInvalidWorld, w.Height)
	}
	return nil
}

// Contains reports whether p lies in [0, Width) x [0, Height).
func (w World) Contains(p Vector2D) bool {
	return p.X >= 0 && p.X < w.Width && p.Y >= 0 && p.Y < w.Height
}

// WrappedDelta returns the signed shortest displacement from b to a along
// one axis of length extent.
func WrappedDelta(a, b, extent float64) float64 {
	d := a - b
	if d > extent/2 {
		d -= extent
	}
	if d < -extent/2 {
		d += extent
	}
	return d
}

// Delta returns the shortest vector going from q to p across the seams.
func (w World) Delta(p, q Vector2D) Vector2D {
	return Vector2D{
		X: WrappedDelta(p.X, q.X, w.Width),
		Y: WrappedDelta(p.Y, q.Y, w.Height),
	}
}

// Distance is the toroidal Euclidean distance between p and q.
func (w World) Distance(p, q Vector2D) float64 {
	return w.Delta(p, q).Len()
}

// Wrap folds p back into the world rectangle with modulo arithmetic.
func (w World) Wrap(p Vector2D) Vector2D {
	return Vector2D{X: wrapAxis(p.X, w.Width), Y: wrapAxis(p.Y, w.Height)}
}

func wrapAxis(v, extent float64) float64 {
	v = math.Mod(v, extent)
	if v < 0 {
		v += extent
	}
	// -1e-17 + extent rounds to extent, which is outside [0, extent)
	if v >= extent {
		v = 0
	}
	return v
}

// AngleDifference returns the shortest signed rotation taking current to
// target, in (-Pi, Pi]. A difference of exactly Pi is reported as +Pi.
// Non-finite input yields 0 so that NaN never leaks into a heading.
func AngleDifference(target, current float64) float64 {
	d := target - current
	if !isFinite(d) {
		return 0
	}
	if d > 4*math.Pi || d < -4*math.Pi {
		d = math.Mod(d, 2*math.Pi)
	}
	for d > math.Pi {
		d -= 2 * math.Pi
	}
	for d <= -math.Pi {
		d += 2 * math.Pi
	}
	return d
}

// NormalizeAngle maps any finite angle into (-Pi, Pi].
func NormalizeAngle(a float64) float64 {
	return AngleDifference(a, 0)
}
