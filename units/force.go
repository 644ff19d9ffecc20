package units

import (
	"github.com/hupe1980/fisika/prefix"
	"github.com/hupe1980/fisika/unit"
	"github.com/hupe1980/fisika/vector"
)

var (
	newton = unit.Term{Symbol: "N", Singular: "newton"}

	forceMeta = unit.NewMetadata("Force", unit.Vector, newton)
)

// Force is an interaction that changes the motion of a body, in newtons.
type Force struct {
	d vector.Direction
}

// Weight is the force gravity exerts on a mass.
type Weight = Force

// NewForce returns the force d, in newtons.
func NewForce(d vector.Direction) Force {
	return Force{d}
}

// ForceIn returns the force d given in p-prefixed newtons.
func ForceIn(p prefix.Prefix, d vector.Direction) Force {
	return Force{inDirection(forceMeta, p, d)}
}

// ForceAlong returns the force of magnitude m, in newtons, along axis.
func ForceAlong(m Magnitude, axis vector.Direction) Force {
	return Force{along(m, axis)}
}

// ForceFromMassAcceleration returns the force accelerating m at a
// (F = m × a), oriented like a.
func ForceFromMassAcceleration(m Mass, a Acceleration) Force {
	return Force{a.d.Scale(float64(m))}
}

// ForceFromAccelerationMass is ForceFromMassAcceleration with the arguments
// swapped.
func ForceFromAccelerationMass(a Acceleration, m Mass) Force {
	return ForceFromMassAcceleration(m, a)
}

// ForceFromMomentDistance derives the force producing m at lever arm d
// (F = M / d), oriented like m.
func ForceFromMomentDistance(m Moment, d Length) Force {
	return Force{m.d.Div(float64(d))}
}

// ForceFromDistanceMoment is ForceFromMomentDistance with the arguments
// swapped.
func ForceFromDistanceMoment(d Length, m Moment) Force {
	return ForceFromMomentDistance(m, d)
}

// WeightFromMassGfs returns the weight of m in the field g (W = m × g),
// oriented like g.
func WeightFromMassGfs(m Mass, g GravitationalFieldStrength) Weight {
	return Force{g.d.Scale(float64(m))}
}

// WeightFromGfsMass is WeightFromMassGfs with the arguments swapped.
func WeightFromGfsMass(g GravitationalFieldStrength, m Mass) Weight {
	return WeightFromMassGfs(m, g)
}

// CalcMass returns the mass f accelerates at a (m = F / a).
func (f Force) CalcMass(a Acceleration) Mass {
	return Mass(f.Magnitude() / a.Magnitude())
}

// CalcAcceleration returns the acceleration f gives m (a = F / m), oriented
// like f.
func (f Force) CalcAcceleration(m Mass) Acceleration {
	return Acceleration{f.d.Div(float64(m))}
}

// CalcMoment returns the moment of f at lever arm d (M = F × d), oriented
// like f. Torque gives the moment of a lever arm that is not perpendicular.
func (f Force) CalcMoment(d Length) Moment {
	return Moment{f.d.Scale(float64(d))}
}

// CalcDistance returns the lever arm at which f produces m (d = M / F).
func (f Force) CalcDistance(m Moment) Length {
	return Length(m.Magnitude() / f.Magnitude())
}

// CalcMassFromGfs returns the mass weighing f in the field g (m = W / g).
func (f Force) CalcMassFromGfs(g GravitationalFieldStrength) Mass {
	return Mass(f.Magnitude() / g.Magnitude())
}

// CalcGfs returns the field in which m weighs f (g = W / m), oriented like f.
func (f Force) CalcGfs(m Mass) GravitationalFieldStrength {
	return GravitationalFieldStrength{f.d.Div(float64(m))}
}

// CalcPressure returns the pressure of f spread over a (P = F / A).
func (f Force) CalcPressure(a Area) Pressure {
	return PressureFromForceArea(f, a)
}

// Add returns the resultant of f and o.
func (f Force) Add(o Force) Force {
	return Force{f.d.Add(o.d)}
}

func (f Force) Direction() vector.Direction { return f.d }

func (f Force) Metadata() *unit.Metadata { return forceMeta }

func (f Force) Magnitude() Magnitude { return f.d.Magnitude() }

// As returns f in p-prefixed newtons, as magnitude and components.
func (f Force) As(p prefix.Prefix) (Magnitude, vector.Direction) {
	return forceMeta.As(p, f.Magnitude()), asDirection(forceMeta, p, f.d)
}

func (f Force) String() string { return format(forceMeta, f.Magnitude()) }

func (f Force) Long() string { return formatLong(forceMeta, f.Magnitude()) }
