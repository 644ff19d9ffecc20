package units

import (
	"github.com/hupe1980/fisika/prefix"
	"github.com/hupe1980/fisika/unit"
)

var (
	currentMeta     = unit.NewMetadata("Current", unit.Scalar, unit.Term{Symbol: "A", Singular: "ampere"})
	temperatureMeta = unit.NewMetadata("Temperature", unit.Scalar, unit.Term{Symbol: "K", Singular: "kelvin"})
	intensityMeta   = unit.NewMetadata("Intensity", unit.Scalar, unit.Term{Symbol: "cd", Singular: "candela"})
	amountMeta      = unit.NewMetadata("Amount", unit.Scalar, unit.Term{Symbol: "mol", Singular: "mole"})
)

// Current is the flow of electric charge, in amperes.
type Current Magnitude

// CurrentIn returns x p-prefixed amperes.
func CurrentIn(p prefix.Prefix, x float64) Current {
	return Current(currentMeta.In(p, x))
}

// CurrentFromChargeTime derives the current moving q in t (I = Q / t).
func CurrentFromChargeTime(q Charge, t Time) Current {
	return Current(float64(q) / float64(t))
}

// CurrentFromTimeCharge is CurrentFromChargeTime with the arguments swapped.
func CurrentFromTimeCharge(t Time, q Charge) Current {
	return CurrentFromChargeTime(q, t)
}

// CalcCharge returns the charge i moves in t (Q = I × t).
func (i Current) CalcCharge(t Time) Charge {
	return Charge(float64(i) * float64(t))
}

// CalcTime returns the time i needs to move q (t = Q / I).
func (i Current) CalcTime(q Charge) Time {
	return Time(float64(q) / float64(i))
}

func (i Current) Metadata() *unit.Metadata { return currentMeta }

func (i Current) Magnitude() Magnitude { return Magnitude(i) }

// As returns i in p-prefixed amperes.
func (i Current) As(p prefix.Prefix) Magnitude { return currentMeta.As(p, float64(i)) }

func (i Current) String() string { return format(currentMeta, float64(i)) }

func (i Current) Long() string { return formatLong(currentMeta, float64(i)) }

// Temperature is thermodynamic temperature, in kelvins.
type Temperature Magnitude

// TemperatureIn returns x p-prefixed kelvins.
func TemperatureIn(p prefix.Prefix, x float64) Temperature {
	return Temperature(temperatureMeta.In(p, x))
}

func (k Temperature) Metadata() *unit.Metadata { return temperatureMeta }

func (k Temperature) Magnitude() Magnitude { return Magnitude(k) }

// As returns k in p-prefixed kelvins.
func (k Temperature) As(p prefix.Prefix) Magnitude { return temperatureMeta.As(p, float64(k)) }

func (k Temperature) String() string { return format(temperatureMeta, float64(k)) }

func (k Temperature) Long() string { return formatLong(temperatureMeta, float64(k)) }

// Intensity is luminous intensity, in candelas.
type Intensity Magnitude

// IntensityIn returns x p-prefixed candelas.
func IntensityIn(p prefix.Prefix, x float64) Intensity {
	return Intensity(intensityMeta.In(p, x))
}

func (c Intensity) Metadata() *unit.Metadata { return intensityMeta }

func (c Intensity) Magnitude() Magnitude { return Magnitude(c) }

// As returns c in p-prefixed candelas.
func (c Intensity) As(p prefix.Prefix) Magnitude { return intensityMeta.As(p, float64(c)) }

func (c Intensity) String() string { return format(intensityMeta, float64(c)) }

func (c Intensity) Long() string { return formatLong(intensityMeta, float64(c)) }

// Amount is an amount of substance, in moles.
type Amount Magnitude

// AmountIn returns x p-prefixed moles.
func AmountIn(p prefix.Prefix, x float64) Amount {
	return Amount(amountMeta.In(p, x))
}

func (n Amount) Metadata() *unit.Metadata { return amountMeta }

func (n Amount) Magnitude() Magnitude { return Magnitude(n) }

// As returns n in p-prefixed moles.
func (n Amount) As(p prefix.Prefix) Magnitude { return amountMeta.As(p, float64(n)) }

func (n Amount) String() string { return format(amountMeta, float64(n)) }

func (n Amount) Long() string { return formatLong(amountMeta, float64(n)) }
