package units

import (
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/hupe1980/fisika/prefix"
	"github.com/hupe1980/fisika/unit"
	"github.com/hupe1980/fisika/vector"
)

// Magnitude is the value of a quantity in its canonical unit.
type Magnitude = float64

// Quantity is implemented by every scalar and vector quantity.
type Quantity interface {
	// Metadata describes the quantity's units.
	Metadata() *unit.Metadata
	// Magnitude returns the value in the canonical unit; for vector
	// quantities it is the length of the direction.
	Magnitude() Magnitude
	// String renders "<magnitude> <symbol>".
	String() string
	// Long renders "<magnitude> <name>", pluralized unless the magnitude is one.
	Long() string
}

// VectorQuantity is a Quantity that also has an orientation.
type VectorQuantity interface {
	Quantity
	Direction() vector.Direction
}

// Scalar is satisfied by the scalar quantity types, which are all defined on
// Magnitude.
type Scalar interface {
	~float64
	Metadata() *unit.Metadata
}

// In returns x p-prefixed units of Q, e.g. In[Length](prefix.Kilo, 5).
func In[Q Scalar](p prefix.Prefix, x float64) Q {
	var q Q
	return Q(q.Metadata().In(p, x))
}

// As returns the magnitude of q in p-prefixed units.
func As(q Quantity, p prefix.Prefix) Magnitude {
	return q.Metadata().As(p, q.Magnitude())
}

// InUnit returns x units of Q, with the unit given by any of its names,
// e.g. InUnit[Time]("h", 2) or InUnit[Time]("hours", 2).
func InUnit[Q Scalar](name string, x float64) (Q, error) {
	var q Q
	u, err := q.Metadata().Lookup(name)
	if err != nil {
		return 0, err
	}
	return Q(u.In(x)), nil
}

// AsUnit returns the magnitude of q in the named unit.
func AsUnit(q Quantity, name string) (Magnitude, error) {
	u, err := q.Metadata().Lookup(name)
	if err != nil {
		return 0, err
	}
	return u.As(q.Magnitude()), nil
}

// Parse reads "<magnitude> <unit>", e.g. Parse[Length]("5 km"). A missing
// unit means the canonical unit.
func Parse[Q Scalar](s string) (Q, error) {
	var q Q
	v, _, err := q.Metadata().Parse(s)
	if err != nil {
		return 0, err
	}
	return Q(v), nil
}

// Equal reports whether two quantities of the same kind have magnitudes equal
// within absolute tolerance abs or relative tolerance rel.
func Equal(a, b Quantity, abs, rel float64) bool {
	if a.Metadata() != b.Metadata() {
		return false
	}
	return scalar.EqualWithinAbsOrRel(a.Magnitude(), b.Magnitude(), abs, rel)
}

func format(md *unit.Metadata, m Magnitude) string {
	return unit.Format(m, md.Canonical())
}

func formatLong(md *unit.Metadata, m Magnitude) string {
	return unit.FormatLong(m, md.Canonical())
}

// inDirection converts every component of d from p-prefixed units into
// canonical units.
func inDirection(md *unit.Metadata, p prefix.Prefix, d vector.Direction) vector.Direction {
	return vector.New(md.In(p, d.X), md.In(p, d.Y), md.In(p, d.Z))
}

func asDirection(md *unit.Metadata, p prefix.Prefix, d vector.Direction) vector.Direction {
	return vector.New(md.As(p, d.X), md.As(p, d.Y), md.As(p, d.Z))
}

// along returns the direction of length m oriented like axis. A negative m
// reverses axis. Components the axis lacks stay +0; a zero axis yields NaN
// components.
func along(m Magnitude, axis vector.Direction) vector.Direction {
	u := axis.Normalize()
	return vector.New(scaleComponent(u.X, m), scaleComponent(u.Y, m), scaleComponent(u.Z, m))
}

func scaleComponent(c, m float64) float64 {
	if c == 0 {
		return 0
	}
	return c * m
}
