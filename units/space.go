package units

import (
	"github.com/hupe1980/fisika/prefix"
	"github.com/hupe1980/fisika/unit"
)

var (
	squareMetre = unit.Term{Symbol: "m2", Unicode: "m²", Singular: "metre", Qualifier: "square ", Power: 2}
	cubicMetre  = unit.Term{Symbol: "m3", Unicode: "m³", Singular: "metre", Qualifier: "cubic ", Power: 3}

	litre = unit.ExtraPow10(unit.Names{Symbol: "l", UnicodeSymbol: "L", Singular: "litre"}, -3)

	areaMeta   = unit.NewMetadata("Area", unit.Scalar, squareMetre)
	volumeMeta = unit.NewMetadata("Volume", unit.Scalar, cubicMetre, unit.WithExtras(litre))
)

// Area is the extent of a surface, in square metres.
type Area Magnitude

// AreaIn returns x square p-prefixed metres; prefixes scale squared, so
// AreaIn(prefix.Kilo, 1) is 10⁶ m².
func AreaIn(p prefix.Prefix, x float64) Area {
	return Area(areaMeta.In(p, x))
}

// AreaFromLengths returns the area of an l by w rectangle (A = l × w).
func AreaFromLengths(l, w Length) Area {
	return Area(float64(l) * float64(w))
}

// AreaFromVolumeLength derives the base area of v at height h (A = V / h).
func AreaFromVolumeLength(v Volume, h Length) Area {
	return Area(float64(v) / float64(h))
}

// CalcLength returns the side that makes a with w (l = A / w).
func (a Area) CalcLength(w Length) Length {
	return Length(float64(a) / float64(w))
}

// CalcVolume returns the volume of a prism of base a and height h (V = A × h).
func (a Area) CalcVolume(h Length) Volume {
	return Volume(float64(a) * float64(h))
}

func (a Area) Metadata() *unit.Metadata { return areaMeta }

func (a Area) Magnitude() Magnitude { return Magnitude(a) }

// As returns a in square p-prefixed metres.
func (a Area) As(p prefix.Prefix) Magnitude { return areaMeta.As(p, float64(a)) }

func (a Area) String() string { return format(areaMeta, float64(a)) }

func (a Area) Long() string { return formatLong(areaMeta, float64(a)) }

// Volume is the extent of a region of space, in cubic metres.
type Volume Magnitude

// VolumeIn returns x cubic p-prefixed metres; prefixes scale cubed, so
// VolumeIn(prefix.Kilo, 1) is 10⁹ m³.
func VolumeIn(p prefix.Prefix, x float64) Volume {
	return Volume(volumeMeta.In(p, x))
}

// VolumeFromAreaLength returns the volume of a prism of base a and height h
// (V = A × h).
func VolumeFromAreaLength(a Area, h Length) Volume {
	return Volume(float64(a) * float64(h))
}

// VolumeFromLengthArea is VolumeFromAreaLength with the arguments swapped.
func VolumeFromLengthArea(h Length, a Area) Volume {
	return VolumeFromAreaLength(a, h)
}

// VolumeFromLengths returns the volume of an l by w by h box.
func VolumeFromLengths(l, w, h Length) Volume {
	return Volume(float64(l) * float64(w) * float64(h))
}

// VolumeFromMassDensity derives the volume m fills at density d (V = m / ρ).
func VolumeFromMassDensity(m Mass, d Density) Volume {
	return Volume(float64(m) / float64(d))
}

// VolumeFromDensityMass is VolumeFromMassDensity with the arguments swapped.
func VolumeFromDensityMass(d Density, m Mass) Volume {
	return VolumeFromMassDensity(m, d)
}

// CalcArea returns the base area of v at height h (A = V / h).
func (v Volume) CalcArea(h Length) Area {
	return Area(float64(v) / float64(h))
}

// CalcLength returns the height of v over base a (h = V / A).
func (v Volume) CalcLength(a Area) Length {
	return Length(float64(v) / float64(a))
}

// CalcMass returns the mass of v at density d (m = ρ × V).
func (v Volume) CalcMass(d Density) Mass {
	return Mass(float64(d) * float64(v))
}

// CalcDensity returns the density of m filling v (ρ = m / V).
func (v Volume) CalcDensity(m Mass) Density {
	return Density(float64(m) / float64(v))
}

func (v Volume) Metadata() *unit.Metadata { return volumeMeta }

func (v Volume) Magnitude() Magnitude { return Magnitude(v) }

// As returns v in cubic p-prefixed metres.
func (v Volume) As(p prefix.Prefix) Magnitude { return volumeMeta.As(p, float64(v)) }

func (v Volume) String() string { return format(volumeMeta, float64(v)) }

func (v Volume) Long() string { return formatLong(volumeMeta, float64(v)) }
