package units

import (
	"github.com/hupe1980/fisika/prefix"
	"github.com/hupe1980/fisika/unit"
	"github.com/hupe1980/fisika/vector"
)

var momentumMeta = unit.NewMetadata("Momentum", unit.Vector,
	unit.Term{Symbol: "g m", Unicode: "g·m", Singular: "gram metre", Shift: 3},
	unit.Per(second))

// Momentum is mass in motion, in kilogram metres per second.
type Momentum struct {
	d vector.Direction
}

// NewMomentum returns the momentum d, in kilogram metres per second.
func NewMomentum(d vector.Direction) Momentum {
	return Momentum{d}
}

// MomentumIn returns the momentum d given in p-prefixed gram metres per
// second, so prefix.Kilo reads kg·m/s.
func MomentumIn(p prefix.Prefix, d vector.Direction) Momentum {
	return Momentum{inDirection(momentumMeta, p, d)}
}

// MomentumAlong returns the momentum of magnitude m along axis.
func MomentumAlong(m Magnitude, axis vector.Direction) Momentum {
	return Momentum{along(m, axis)}
}

// MomentumFromMassVelocity returns the momentum of m moving at v (p = m × v),
// oriented like v.
func MomentumFromMassVelocity(m Mass, v Velocity) Momentum {
	return Momentum{v.d.Scale(float64(m))}
}

// MomentumFromVelocityMass is MomentumFromMassVelocity with the arguments
// swapped.
func MomentumFromVelocityMass(v Velocity, m Mass) Momentum {
	return MomentumFromMassVelocity(m, v)
}

// CalcMass returns the mass carrying p at v (m = p / v).
func (p Momentum) CalcMass(v Velocity) Mass {
	return Mass(p.Magnitude() / v.Magnitude())
}

// CalcVelocity returns the velocity at which m carries p (v = p / m),
// oriented like p.
func (p Momentum) CalcVelocity(m Mass) Velocity {
	return Velocity{p.d.Div(float64(m))}
}

func (p Momentum) Direction() vector.Direction { return p.d }

func (p Momentum) Metadata() *unit.Metadata { return momentumMeta }

func (p Momentum) Magnitude() Magnitude { return p.d.Magnitude() }

// As returns p in q-prefixed gram metres per second, as magnitude and
// components.
func (p Momentum) As(q prefix.Prefix) (Magnitude, vector.Direction) {
	return momentumMeta.As(q, p.Magnitude()), asDirection(momentumMeta, q, p.d)
}

func (p Momentum) String() string { return format(momentumMeta, p.Magnitude()) }

func (p Momentum) Long() string { return formatLong(momentumMeta, p.Magnitude()) }
