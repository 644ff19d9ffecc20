package units

import (
	"github.com/hupe1980/fisika/prefix"
	"github.com/hupe1980/fisika/unit"
	"github.com/hupe1980/fisika/vector"
)

var (
	kilometrePerHour = unit.ExtraRatio(unit.Names{
		Symbol:   "km/h",
		Singular: "kilometre per hour",
		Plural:   "kilometres per hour",
	}, 1000, 3600)

	speedMeta = unit.NewMetadata("Speed", unit.Scalar, metre,
		unit.Per(second), unit.WithExtras(kilometrePerHour))
	velocityMeta = unit.NewMetadata("Velocity", unit.Vector, metre, unit.Per(second))
)

// Speed is how fast something moves regardless of heading, in metres per
// second.
type Speed Magnitude

// SpeedIn returns x p-prefixed metres per second.
func SpeedIn(p prefix.Prefix, x float64) Speed {
	return Speed(speedMeta.In(p, x))
}

// SpeedInRatio returns x units with both the metre and the second prefixed,
// e.g. SpeedInRatio(prefix.Milli, prefix.Micro, x) reads x mm/µs.
func SpeedInRatio(num, den prefix.Prefix, x float64) Speed {
	return Speed(speedMeta.InRatio(num, den, x))
}

// SpeedFromDistanceTime derives the speed covering d in t (v = d / t).
func SpeedFromDistanceTime(d Length, t Time) Speed {
	return Speed(float64(d) / float64(t))
}

// SpeedFromTimeDistance is SpeedFromDistanceTime with the arguments swapped.
func SpeedFromTimeDistance(t Time, d Length) Speed {
	return SpeedFromDistanceTime(d, t)
}

// CalcDistance returns the distance covered at s in t (d = v × t).
func (s Speed) CalcDistance(t Time) Length {
	return Length(float64(s) * float64(t))
}

// CalcTime returns the time needed to cover d at s (t = d / v).
func (s Speed) CalcTime(d Length) Time {
	return Time(float64(d) / float64(s))
}

// CalcVelocity returns the velocity of speed s heading along heading.
func (s Speed) CalcVelocity(heading vector.Direction) Velocity {
	return VelocityAlong(float64(s), heading)
}

func (s Speed) Metadata() *unit.Metadata { return speedMeta }

func (s Speed) Magnitude() Magnitude { return Magnitude(s) }

// As returns s in p-prefixed metres per second.
func (s Speed) As(p prefix.Prefix) Magnitude { return speedMeta.As(p, float64(s)) }

// AsRatio returns s in units with both the metre and the second prefixed.
func (s Speed) AsRatio(num, den prefix.Prefix) Magnitude {
	return speedMeta.AsRatio(num, den, float64(s))
}

func (s Speed) String() string { return format(speedMeta, float64(s)) }

func (s Speed) Long() string { return formatLong(speedMeta, float64(s)) }

// Velocity is speed with a heading, in metres per second.
type Velocity struct {
	d vector.Direction
}

// NewVelocity returns the velocity d, in metres per second.
func NewVelocity(d vector.Direction) Velocity {
	return Velocity{d}
}

// VelocityIn returns the velocity d given in p-prefixed metres per second.
func VelocityIn(p prefix.Prefix, d vector.Direction) Velocity {
	return Velocity{inDirection(velocityMeta, p, d)}
}

// VelocityAlong returns the velocity of speed m, in metres per second, along
// axis.
func VelocityAlong(m Magnitude, axis vector.Direction) Velocity {
	return Velocity{along(m, axis)}
}

// VelocityFromDisplacementTime derives the velocity covering the displacement
// s, in metres, in t (v = s / t), oriented like s.
func VelocityFromDisplacementTime(s vector.Direction, t Time) Velocity {
	return Velocity{s.Div(float64(t))}
}

// VelocityFromTimeDisplacement is VelocityFromDisplacementTime with the
// arguments swapped.
func VelocityFromTimeDisplacement(t Time, s vector.Direction) Velocity {
	return VelocityFromDisplacementTime(s, t)
}

// CalcDisplacement returns the displacement, in metres, covered at v in t
// (s = v × t).
func (v Velocity) CalcDisplacement(t Time) vector.Direction {
	return v.d.Scale(float64(t))
}

// CalcMomentum returns the momentum of m moving at v (p = m × v).
func (v Velocity) CalcMomentum(m Mass) Momentum {
	return Momentum{v.d.Scale(float64(m))}
}

// CalcKineticEnergy returns the kinetic energy of m moving at v.
func (v Velocity) CalcKineticEnergy(m Mass) Energy {
	return KineticEnergy(m, v)
}

// Speed returns the speed of v, its magnitude.
func (v Velocity) Speed() Speed {
	return Speed(v.d.Magnitude())
}

// Add returns v + o.
func (v Velocity) Add(o Velocity) Velocity {
	return Velocity{v.d.Add(o.d)}
}

// Sub returns v - o, the change from o to v.
func (v Velocity) Sub(o Velocity) Velocity {
	return Velocity{v.d.Sub(o.d)}
}

func (v Velocity) Direction() vector.Direction { return v.d }

func (v Velocity) Metadata() *unit.Metadata { return velocityMeta }

func (v Velocity) Magnitude() Magnitude { return v.d.Magnitude() }

// As returns v in p-prefixed metres per second, as magnitude and components.
func (v Velocity) As(p prefix.Prefix) (Magnitude, vector.Direction) {
	return velocityMeta.As(p, v.Magnitude()), asDirection(velocityMeta, p, v.d)
}

func (v Velocity) String() string { return format(velocityMeta, v.Magnitude()) }

func (v Velocity) Long() string { return formatLong(velocityMeta, v.Magnitude()) }
