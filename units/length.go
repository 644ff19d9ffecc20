package units

import (
	"github.com/hupe1980/fisika/prefix"
	"github.com/hupe1980/fisika/unit"
)

var (
	astronomicalUnit = unit.Extra(unit.Names{Symbol: "au", Singular: "astronomical unit"}, 1.495978707e11)
	angstrom         = unit.ExtraPow10(unit.Names{
		Symbol:          "A",
		UnicodeSymbol:   "Å",
		Singular:        "angstrom",
		UnicodeSingular: "ångström",
	}, -10)

	metre = unit.Term{Symbol: "m", Singular: "metre"}

	lengthMeta = unit.NewMetadata("Length", unit.Scalar, metre,
		unit.WithExtras(astronomicalUnit, angstrom))
)

// Length is the measure of one spatial dimension, in metres.
type Length Magnitude

// Distance is how far apart objects are.
type Distance = Length

// Height is a vertical Length.
type Height = Length

// LengthIn returns x p-prefixed metres.
func LengthIn(p prefix.Prefix, x float64) Length {
	return Length(lengthMeta.In(p, x))
}

// LengthFromTimeSpeed derives the distance covered at s in t (d = v × t).
func LengthFromTimeSpeed(t Time, s Speed) Length {
	return Length(float64(s) * float64(t))
}

// LengthFromSpeedTime is LengthFromTimeSpeed with the arguments swapped.
func LengthFromSpeedTime(s Speed, t Time) Length {
	return LengthFromTimeSpeed(t, s)
}

// LengthFromMomentForce derives the lever arm at which f produces m (d = M / F).
func LengthFromMomentForce(m Moment, f Force) Length {
	return Length(m.Magnitude() / f.Magnitude())
}

// LengthFromForceMoment is LengthFromMomentForce with the arguments swapped.
func LengthFromForceMoment(f Force, m Moment) Length {
	return LengthFromMomentForce(m, f)
}

// CalcSpeed returns the speed covering d in t (v = d / t).
func (d Length) CalcSpeed(t Time) Speed {
	return Speed(float64(d) / float64(t))
}

// CalcTime returns the time needed to cover d at s (t = d / v).
func (d Length) CalcTime(s Speed) Time {
	return Time(float64(d) / float64(s))
}

// CalcMoment returns the moment of f applied at lever arm d (M = F × d),
// oriented like f.
func (d Length) CalcMoment(f Force) Moment {
	return Moment{f.d.Scale(float64(d))}
}

// CalcForce returns the force producing m at lever arm d (F = M / d),
// oriented like m.
func (d Length) CalcForce(m Moment) Force {
	return Force{m.d.Div(float64(d))}
}

func (d Length) Metadata() *unit.Metadata { return lengthMeta }

func (d Length) Magnitude() Magnitude { return Magnitude(d) }

// As returns d in p-prefixed metres.
func (d Length) As(p prefix.Prefix) Magnitude { return lengthMeta.As(p, float64(d)) }

func (d Length) String() string { return format(lengthMeta, float64(d)) }

func (d Length) Long() string { return formatLong(lengthMeta, float64(d)) }
