package units

import (
	"github.com/hupe1980/fisika/prefix"
	"github.com/hupe1980/fisika/unit"
)

var frequencyMeta = unit.NewMetadata("Frequency", unit.Scalar,
	unit.Term{Symbol: "Hz", Singular: "hertz", Plural: "hertz"})

// Frequency is the number of occurrences per second, in hertz.
type Frequency Magnitude

// FrequencyIn returns x p-prefixed hertz.
func FrequencyIn(p prefix.Prefix, x float64) Frequency {
	return Frequency(frequencyMeta.In(p, x))
}

// FrequencyFromTime returns the frequency of one event per period t (f = 1 / t).
func FrequencyFromTime(t Time) Frequency {
	return Frequency(1 / float64(t))
}

// CalcTime returns the period of f (t = 1 / f).
func (f Frequency) CalcTime() Time {
	return TimeFromFrequency(f)
}

func (f Frequency) Metadata() *unit.Metadata { return frequencyMeta }

func (f Frequency) Magnitude() Magnitude { return Magnitude(f) }

// As returns f in p-prefixed hertz.
func (f Frequency) As(p prefix.Prefix) Magnitude { return frequencyMeta.As(p, float64(f)) }

func (f Frequency) String() string { return format(frequencyMeta, float64(f)) }

func (f Frequency) Long() string { return formatLong(frequencyMeta, float64(f)) }
