package units

import (
	"github.com/hupe1980/fisika/prefix"
	"github.com/hupe1980/fisika/unit"
)

var (
	minute     = unit.Extra(unit.Names{Symbol: "min", Singular: "minute"}, 60)
	hour       = unit.Extra(unit.Names{Symbol: "h", Singular: "hour"}, 3600)
	day        = unit.Extra(unit.Names{Symbol: "d", Singular: "day"}, 86_400)
	week       = unit.Extra(unit.Names{Symbol: "w", Singular: "week"}, 604_800)
	year       = unit.Extra(unit.Names{Symbol: "y", Singular: "year"}, 31_536_000)
	julianYear = unit.Extra(unit.Names{Symbol: "jy", Singular: "julian year"}, 31_557_600)

	second = unit.Term{Symbol: "s", Singular: "second"}

	timeMeta = unit.NewMetadata("Time", unit.Scalar, second,
		unit.WithExtras(minute, hour, day, week, year, julianYear))
)

// Time is the duration of an event, in seconds.
type Time Magnitude

// TimeIn returns x p-prefixed seconds.
func TimeIn(p prefix.Prefix, x float64) Time {
	return Time(timeMeta.In(p, x))
}

// TimeFromDistanceSpeed derives the time needed to cover d at s (t = d / s).
func TimeFromDistanceSpeed(d Length, s Speed) Time {
	return Time(float64(d) / float64(s))
}

// TimeFromSpeedDistance is TimeFromDistanceSpeed with the arguments swapped.
func TimeFromSpeedDistance(s Speed, d Length) Time {
	return TimeFromDistanceSpeed(d, s)
}

// TimeFromEnergyPower derives the time in which p delivers e (t = E / P).
func TimeFromEnergyPower(e Energy, p Power) Time {
	return Time(float64(e) / float64(p))
}

// TimeFromPowerEnergy is TimeFromEnergyPower with the arguments swapped.
func TimeFromPowerEnergy(p Power, e Energy) Time {
	return TimeFromEnergyPower(e, p)
}

// TimeFromChargeCurrent derives the time in which i moves q (t = Q / I).
func TimeFromChargeCurrent(q Charge, i Current) Time {
	return Time(float64(q) / float64(i))
}

// TimeFromCurrentCharge is TimeFromChargeCurrent with the arguments swapped.
func TimeFromCurrentCharge(i Current, q Charge) Time {
	return TimeFromChargeCurrent(q, i)
}

// TimeFromFrequency returns the period of f (t = 1 / f).
func TimeFromFrequency(f Frequency) Time {
	return Time(1 / float64(f))
}

// CalcSpeed returns the speed covering d in t (v = d / t).
func (t Time) CalcSpeed(d Length) Speed {
	return Speed(float64(d) / float64(t))
}

// CalcDistance returns the distance covered at s in t (d = v × t).
func (t Time) CalcDistance(s Speed) Length {
	return Length(float64(s) * float64(t))
}

// CalcPower returns the power delivering e in t (P = E / t).
func (t Time) CalcPower(e Energy) Power {
	return Power(float64(e) / float64(t))
}

// CalcEnergy returns the energy p delivers in t (E = P × t).
func (t Time) CalcEnergy(p Power) Energy {
	return Energy(float64(p) * float64(t))
}

// CalcFrequency returns the frequency of one event per t (f = 1 / t).
func (t Time) CalcFrequency() Frequency {
	return FrequencyFromTime(t)
}

func (t Time) Metadata() *unit.Metadata { return timeMeta }

func (t Time) Magnitude() Magnitude { return Magnitude(t) }

// As returns t in p-prefixed seconds.
func (t Time) As(p prefix.Prefix) Magnitude { return timeMeta.As(p, float64(t)) }

func (t Time) String() string { return format(timeMeta, float64(t)) }

func (t Time) Long() string { return formatLong(timeMeta, float64(t)) }
