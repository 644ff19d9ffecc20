// Package vector provides Direction, the three-component vector carried by
// vector quantities.
//
// A Direction stores both magnitude (its length) and orientation. It is a thin
// value type over gonum's spatial/r3 vector; all arithmetic is delegated there.
//
// # Usage
//
//	a := vector.New(2, 3, 4)
//	n := a.Normalize()        // unit vector, |n| = 1
//	d := a.Magnitude()        // √29
//	c := vector.UnitX.Cross(vector.UnitY) // UnitZ
//
// Operations never fail: normalizing the zero vector or dividing by zero yields
// NaN or ±Inf components, following IEEE-754.
package vector
