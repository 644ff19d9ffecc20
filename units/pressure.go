package units

import (
	"github.com/hupe1980/fisika/prefix"
	"github.com/hupe1980/fisika/unit"
	"github.com/hupe1980/fisika/vector"
)

var pressureMeta = unit.NewMetadata("Pressure", unit.Scalar, unit.Term{Symbol: "Pa", Singular: "pascal"})

// Pressure is force per unit area, in pascals.
type Pressure Magnitude

// PressureIn returns x p-prefixed pascals.
func PressureIn(p prefix.Prefix, x float64) Pressure {
	return Pressure(pressureMeta.In(p, x))
}

// PressureFromForceArea derives the pressure of f spread over a (P = F / A).
func PressureFromForceArea(f Force, a Area) Pressure {
	return Pressure(f.Magnitude() / float64(a))
}

// PressureFromAreaForce is PressureFromForceArea with the arguments swapped.
func PressureFromAreaForce(a Area, f Force) Pressure {
	return PressureFromForceArea(f, a)
}

// CalcForce returns the force p exerts on a (F = P × A). Pressure has no
// orientation of its own, so the force points along normal.
func (p Pressure) CalcForce(a Area, normal vector.Direction) Force {
	return ForceAlong(float64(p)*float64(a), normal)
}

// CalcArea returns the area over which f exerts p (A = F / P).
func (p Pressure) CalcArea(f Force) Area {
	return Area(f.Magnitude() / float64(p))
}

func (p Pressure) Metadata() *unit.Metadata { return pressureMeta }

func (p Pressure) Magnitude() Magnitude { return Magnitude(p) }

// As returns p in q-prefixed pascals.
func (p Pressure) As(q prefix.Prefix) Magnitude { return pressureMeta.As(q, float64(p)) }

func (p Pressure) String() string { return format(pressureMeta, float64(p)) }

func (p Pressure) Long() string { return formatLong(pressureMeta, float64(p)) }
