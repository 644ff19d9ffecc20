package units

import (
	"github.com/hupe1980/fisika/prefix"
	"github.com/hupe1980/fisika/unit"
	"github.com/hupe1980/fisika/vector"
)

var accelerationMeta = unit.NewMetadata("Acceleration", unit.Vector, metre,
	unit.Per(unit.Term{Symbol: "s2", Unicode: "s²", Singular: "second squared", Plural: "seconds squared", Power: 2}))

// Acceleration is the rate of change of velocity, in metres per second squared.
type Acceleration struct {
	d vector.Direction
}

// NewAcceleration returns the acceleration d, in metres per second squared.
func NewAcceleration(d vector.Direction) Acceleration {
	return Acceleration{d}
}

// AccelerationIn returns the acceleration d given in p-prefixed metres per
// second squared.
func AccelerationIn(p prefix.Prefix, d vector.Direction) Acceleration {
	return Acceleration{inDirection(accelerationMeta, p, d)}
}

// AccelerationAlong returns the acceleration of magnitude m along axis.
func AccelerationAlong(m Magnitude, axis vector.Direction) Acceleration {
	return Acceleration{along(m, axis)}
}

// AccelerationFromVelocityTime derives the acceleration reaching v from rest
// in t (a = v / t), oriented like v.
func AccelerationFromVelocityTime(v Velocity, t Time) Acceleration {
	return Acceleration{v.d.Div(float64(t))}
}

// AccelerationFromTimeVelocity is AccelerationFromVelocityTime with the
// arguments swapped.
func AccelerationFromTimeVelocity(t Time, v Velocity) Acceleration {
	return AccelerationFromVelocityTime(v, t)
}

// AccelerationFromVelocitiesTime derives the acceleration changing initial
// into final in t (a = Δv / t), oriented like the change of velocity.
func AccelerationFromVelocitiesTime(initial, final Velocity, t Time) Acceleration {
	return Acceleration{final.d.Sub(initial.d).Div(float64(t))}
}

// AccelerationFromTimeVelocities is AccelerationFromVelocitiesTime with the
// time first.
func AccelerationFromTimeVelocities(t Time, initial, final Velocity) Acceleration {
	return AccelerationFromVelocitiesTime(initial, final, t)
}

// AccelerationFromMassForce derives the acceleration f gives m (a = F / m),
// oriented like f.
func AccelerationFromMassForce(m Mass, f Force) Acceleration {
	return Acceleration{f.d.Div(float64(m))}
}

// AccelerationFromForceMass is AccelerationFromMassForce with the arguments
// swapped.
func AccelerationFromForceMass(f Force, m Mass) Acceleration {
	return AccelerationFromMassForce(m, f)
}

// CalcMass returns the mass f accelerates at a (m = F / a).
func (a Acceleration) CalcMass(f Force) Mass {
	return Mass(f.Magnitude() / a.Magnitude())
}

// CalcForce returns the force accelerating m at a (F = m × a), oriented like a.
func (a Acceleration) CalcForce(m Mass) Force {
	return Force{a.d.Scale(float64(m))}
}

// CalcVelocity returns the velocity reached from rest after t (v = a × t).
func (a Acceleration) CalcVelocity(t Time) Velocity {
	return Velocity{a.d.Scale(float64(t))}
}

func (a Acceleration) Direction() vector.Direction { return a.d }

func (a Acceleration) Metadata() *unit.Metadata { return accelerationMeta }

func (a Acceleration) Magnitude() Magnitude { return a.d.Magnitude() }

// As returns a in p-prefixed metres per second squared, as magnitude and
// components.
func (a Acceleration) As(p prefix.Prefix) (Magnitude, vector.Direction) {
	return accelerationMeta.As(p, a.Magnitude()), asDirection(accelerationMeta, p, a.d)
}

func (a Acceleration) String() string { return format(accelerationMeta, a.Magnitude()) }

func (a Acceleration) Long() string { return formatLong(accelerationMeta, a.Magnitude()) }
