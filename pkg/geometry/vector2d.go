// Package geometry holds the plane maths of the flock: a small value type
// for points and displacements, and the toroidal world they live in.
package geometry

import (
	"fmt"
	"math"
)

// Epsilon is the float tolerance shared by comparisons and by the "no
// direction" test on summed steering vectors.
const Epsilon = 1e-9

// Vector2D is a point or a displacement. It is a plain value: copy it freely.
type Vector2D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// NewVector returns the vector (x, y).
func NewVector(x, y float64) Vector2D {
	return Vector2D{X: x, Y: y}
}

// NewVectorPolar builds the vector of length r at angle theta, in radians.
// Components within Epsilon of zero are snapped to zero.
func NewVectorPolar(r, theta float64) Vector2D {
	sin, cos := math.Sincos(theta)
	return Vector2D{X: snap(r * cos), Y: snap(r * sin)}
}

func snap(f float64) float64 {
	if math.Abs(f) < Epsilon {
		return 0
	}
	return f
}

func (v Vector2D) String() string {
	return fmt.Sprintf("(%.2f, %.2f)", v.X, v.Y)
}

func (v Vector2D) Add(w Vector2D) Vector2D { return Vector2D{X: v.X + w.X, Y: v.Y + w.Y} }
func (v Vector2D) Sub(w Vector2D) Vector2D { return Vector2D{X: v.X - w.X, Y: v.Y - w.Y} }
func (v Vector2D) Mul(k float64) Vector2D  { return Vector2D{X: v.X * k, Y: v.Y * k} }

// LenSqr skips the square root, enough to compare against a squared radius.
func (v Vector2D) LenSqr() float64 { return v.X*v.X + v.Y*v.Y }

func (v Vector2D) Len() float64 { return math.Hypot(v.X, v.Y) }

// Angle is the heading of v in [-Pi, Pi]; the zero vector gives 0.
func (v Vector2D) Angle() float64 { return math.Atan2(v.Y, v.X) }

// IsZero reports whether v is too short to carry a direction.
func (v Vector2D) IsZero() bool { return v.Len() < Epsilon }

func (v Vector2D) IsFinite() bool { return isFinite(v.X) && isFinite(v.Y) }

// Eq compares component-wise within Epsilon.
func (v Vector2D) Eq(w Vector2D) bool {
	return math.Abs(v.X-w.X) <= Epsilon && math.Abs(v.Y-w.Y) <= Epsilon
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
