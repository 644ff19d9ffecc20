package units

import (
	"github.com/hupe1980/fisika/prefix"
	"github.com/hupe1980/fisika/unit"
)

var (
	gramPerCubicCentimetre = unit.ExtraPow10(unit.Names{
		Symbol:        "g/cm3",
		UnicodeSymbol: "g/cm³",
		Singular:      "gram per cubic centimetre",
		Plural:        "grams per cubic centimetre",
	}, 3)

	densityMeta = unit.NewMetadata("Density", unit.Scalar, gram,
		unit.Per(cubicMetre), unit.WithExtras(gramPerCubicCentimetre))
)

// Density is mass per unit volume, in kilograms per cubic metre.
//
// Like Mass, the generated units are named after the gram: DensityIn(prefix.Kilo, x)
// reads x kg/m³.
type Density Magnitude

// DensityIn returns x p-prefixed grams per cubic metre.
func DensityIn(p prefix.Prefix, x float64) Density {
	return Density(densityMeta.In(p, x))
}

// DensityInRatio returns x units with both the gram and the metre prefixed,
// e.g. DensityInRatio(prefix.None, prefix.Centi, x) reads x g/cm³.
func DensityInRatio(num, den prefix.Prefix, x float64) Density {
	return Density(densityMeta.InRatio(num, den, x))
}

// DensityFromMassVolume derives the density of m filling v (ρ = m / V).
func DensityFromMassVolume(m Mass, v Volume) Density {
	return Density(float64(m) / float64(v))
}

// DensityFromVolumeMass is DensityFromMassVolume with the arguments swapped.
func DensityFromVolumeMass(v Volume, m Mass) Density {
	return DensityFromMassVolume(m, v)
}

// CalcMass returns the mass of v at density d (m = ρ × V).
func (d Density) CalcMass(v Volume) Mass {
	return Mass(float64(d) * float64(v))
}

// CalcVolume returns the volume m fills at density d (V = m / ρ).
func (d Density) CalcVolume(m Mass) Volume {
	return Volume(float64(m) / float64(d))
}

func (d Density) Metadata() *unit.Metadata { return densityMeta }

func (d Density) Magnitude() Magnitude { return Magnitude(d) }

// As returns d in p-prefixed grams per cubic metre.
func (d Density) As(p prefix.Prefix) Magnitude { return densityMeta.As(p, float64(d)) }

// AsRatio returns d in units with both the gram and the metre prefixed.
func (d Density) AsRatio(num, den prefix.Prefix) Magnitude {
	return densityMeta.AsRatio(num, den, float64(d))
}

func (d Density) String() string { return format(densityMeta, float64(d)) }

func (d Density) Long() string { return formatLong(densityMeta, float64(d)) }
