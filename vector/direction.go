package vector

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Direction is a vector quantity that represents a change in Position.
type Direction r3.Vec

// Position is a unique location in space, read as the change of position
// from the origin.
type Position = Direction

var (
	Zero  = Direction{}
	One   = Direction{X: 1, Y: 1, Z: 1}
	UnitX = Direction{X: 1}
	UnitY = Direction{Y: 1}
	UnitZ = Direction{Z: 1}
)

// New returns the Direction (x, y, z).
func New(x, y, z float64) Direction {
	return Direction{X: x, Y: y, Z: z}
}

// FromArray returns the Direction with components a.
func FromArray(a [3]float64) Direction {
	return Direction{X: a[0], Y: a[1], Z: a[2]}
}

// Array returns the components as an array.
func (d Direction) Array() [3]float64 {
	return [3]float64{d.X, d.Y, d.Z}
}

// Vec returns the underlying gonum vector.
func (d Direction) Vec() r3.Vec {
	return r3.Vec(d)
}

// Magnitude returns the length √(x²+y²+z²).
func (d Direction) Magnitude() float64 {
	return r3.Norm(r3.Vec(d))
}

// MagnitudeSquared returns x²+y²+z². Comparing squared magnitudes avoids the
// square root.
func (d Direction) MagnitudeSquared() float64 {
	return r3.Norm2(r3.Vec(d))
}

// Normalize returns the unit vector with the orientation of d.
// The zero vector normalizes to NaN components.
func (d Direction) Normalize() Direction {
	return Direction(r3.Unit(r3.Vec(d)))
}

// Add returns d + o.
func (d Direction) Add(o Direction) Direction {
	return Direction(r3.Add(r3.Vec(d), r3.Vec(o)))
}

// Sub returns d - o.
func (d Direction) Sub(o Direction) Direction {
	return Direction(r3.Sub(r3.Vec(d), r3.Vec(o)))
}

// Scale returns k·d.
func (d Direction) Scale(k float64) Direction {
	return Direction(r3.Scale(k, r3.Vec(d)))
}

// Div returns d / k, dividing each component.
func (d Direction) Div(k float64) Direction {
	return Direction{X: d.X / k, Y: d.Y / k, Z: d.Z / k}
}

// Negate returns -d.
func (d Direction) Negate() Direction {
	return d.Scale(-1)
}

// Dot returns the scalar product d·o.
func (d Direction) Dot(o Direction) float64 {
	return r3.Dot(r3.Vec(d), r3.Vec(o))
}

// Cross returns the vector product d×o, orthogonal to both.
func (d Direction) Cross(o Direction) Direction {
	return Direction(r3.Cross(r3.Vec(d), r3.Vec(o)))
}

// Rotate returns d rotated by angle radians around axis (right-hand rule).
func (d Direction) Rotate(angle float64, axis Direction) Direction {
	return Direction(r3.NewRotation(angle, r3.Vec(axis)).Rotate(r3.Vec(d)))
}

// IsZero reports whether all components are zero.
func (d Direction) IsZero() bool {
	return d.X == 0 && d.Y == 0 && d.Z == 0
}

// IsFinite reports whether no component is NaN or infinite.
func (d Direction) IsFinite() bool {
	for _, c := range d.Array() {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}

func (d Direction) String() string {
	return fmt.Sprintf("[%v, %v, %v]", d.X, d.Y, d.Z)
}
