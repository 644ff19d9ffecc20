package units

import (
	"github.com/hupe1980/fisika/prefix"
	"github.com/hupe1980/fisika/unit"
	"github.com/hupe1980/fisika/vector"
)

var momentMeta = unit.NewMetadata("Moment", unit.Vector,
	unit.Term{Symbol: "Nm", Unicode: "N·m", Singular: "newton metre"})

// Moment is the turning effect of a force about a point, in newton metres.
type Moment struct {
	d vector.Direction
}

// Torque is the moment that rotates a body about an axis.
type Torque = Moment

// NewMoment returns the moment d, in newton metres.
func NewMoment(d vector.Direction) Moment {
	return Moment{d}
}

// MomentIn returns the moment d given in p-prefixed newton metres.
func MomentIn(p prefix.Prefix, d vector.Direction) Moment {
	return Moment{inDirection(momentMeta, p, d)}
}

// MomentAlong returns the moment of magnitude m along axis.
func MomentAlong(m Magnitude, axis vector.Direction) Moment {
	return Moment{along(m, axis)}
}

// MomentFromForceDistance returns the moment of f at lever arm d (M = F × d),
// oriented like f.
func MomentFromForceDistance(f Force, d Length) Moment {
	return Moment{f.d.Scale(float64(d))}
}

// MomentFromDistanceForce is MomentFromForceDistance with the arguments
// swapped.
func MomentFromDistanceForce(d Length, f Force) Moment {
	return MomentFromForceDistance(f, d)
}

// TorqueFromLeverForce returns the torque of f applied at lever arm r, in
// metres from the pivot (τ = r × F). The result is orthogonal to both.
func TorqueFromLeverForce(r vector.Direction, f Force) Torque {
	return Moment{r.Cross(f.d)}
}

// CalcDistance returns the lever arm at which f produces m (d = M / F).
func (m Moment) CalcDistance(f Force) Length {
	return Length(m.Magnitude() / f.Magnitude())
}

// CalcForce returns the force producing m at lever arm d (F = M / d), oriented
// like m.
func (m Moment) CalcForce(d Length) Force {
	return Force{m.d.Div(float64(d))}
}

func (m Moment) Direction() vector.Direction { return m.d }

func (m Moment) Metadata() *unit.Metadata { return momentMeta }

func (m Moment) Magnitude() Magnitude { return m.d.Magnitude() }

// As returns m in p-prefixed newton metres, as magnitude and components.
func (m Moment) As(p prefix.Prefix) (Magnitude, vector.Direction) {
	return momentMeta.As(p, m.Magnitude()), asDirection(momentMeta, p, m.d)
}

func (m Moment) String() string { return format(momentMeta, m.Magnitude()) }

func (m Moment) Long() string { return formatLong(momentMeta, m.Magnitude()) }
