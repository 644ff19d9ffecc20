package units

import (
	"github.com/hupe1980/fisika/prefix"
	"github.com/hupe1980/fisika/unit"
)

var (
	// gram names mass units; values are stored in kilograms.
	gram = unit.Term{Symbol: "g", Singular: "gram", Shift: 3}

	massMeta = unit.NewMetadata("Mass", unit.Scalar, gram)
)

// Mass is the quantity of matter in a body, in kilograms.
//
// Units are named after the gram, so MassIn(prefix.None, x) reads x grams and
// MassIn(prefix.Kilo, x) reads x kilograms.
type Mass Magnitude

// MassIn returns x p-prefixed grams.
func MassIn(p prefix.Prefix, x float64) Mass {
	return Mass(massMeta.In(p, x))
}

// MassFromForceAcceleration derives the mass f accelerates at a (m = F / a).
func MassFromForceAcceleration(f Force, a Acceleration) Mass {
	return Mass(f.Magnitude() / a.Magnitude())
}

// MassFromAccelerationForce is MassFromForceAcceleration with the arguments
// swapped.
func MassFromAccelerationForce(a Acceleration, f Force) Mass {
	return MassFromForceAcceleration(f, a)
}

// MassFromWeightGfs derives the mass weighing w in the field g (m = W / g).
func MassFromWeightGfs(w Weight, g GravitationalFieldStrength) Mass {
	return Mass(w.Magnitude() / g.Magnitude())
}

// MassFromGfsWeight is MassFromWeightGfs with the arguments swapped.
func MassFromGfsWeight(g GravitationalFieldStrength, w Weight) Mass {
	return MassFromWeightGfs(w, g)
}

// MassFromEnergy returns the mass equivalent to e (m = E / c²).
func MassFromEnergy(e Energy) Mass {
	return Mass(float64(e) / SpeedOfLightSquared)
}

// MassFromDensityVolume derives the mass of v at density d (m = ρ × V).
func MassFromDensityVolume(d Density, v Volume) Mass {
	return Mass(float64(d) * float64(v))
}

// MassFromVolumeDensity is MassFromDensityVolume with the arguments swapped.
func MassFromVolumeDensity(v Volume, d Density) Mass {
	return MassFromDensityVolume(d, v)
}

// MassFromMomentumVelocity derives the mass carrying p at v (m = p / v).
func MassFromMomentumVelocity(p Momentum, v Velocity) Mass {
	return Mass(p.Magnitude() / v.Magnitude())
}

// MassFromVelocityMomentum is MassFromMomentumVelocity with the arguments
// swapped.
func MassFromVelocityMomentum(v Velocity, p Momentum) Mass {
	return MassFromMomentumVelocity(p, v)
}

// CalcForce returns the force accelerating m at a (F = m × a), oriented like a.
func (m Mass) CalcForce(a Acceleration) Force {
	return Force{a.d.Scale(float64(m))}
}

// CalcAcceleration returns the acceleration f gives m (a = F / m), oriented
// like f.
func (m Mass) CalcAcceleration(f Force) Acceleration {
	return Acceleration{f.d.Div(float64(m))}
}

// CalcWeight returns the weight of m in the field g (W = m × g), oriented
// like g.
func (m Mass) CalcWeight(g GravitationalFieldStrength) Weight {
	return Force{g.d.Scale(float64(m))}
}

// CalcGfs returns the field in which m weighs w (g = W / m), oriented like w.
func (m Mass) CalcGfs(w Weight) GravitationalFieldStrength {
	return GravitationalFieldStrength{w.d.Div(float64(m))}
}

// CalcEnergy returns the energy equivalent to m (E = m × c²).
func (m Mass) CalcEnergy() Energy {
	return EnergyFromMass(m)
}

// CalcDensity returns the density of m filling v (ρ = m / V).
func (m Mass) CalcDensity(v Volume) Density {
	return Density(float64(m) / float64(v))
}

// CalcVolume returns the volume m fills at density d (V = m / ρ).
func (m Mass) CalcVolume(d Density) Volume {
	return Volume(float64(m) / float64(d))
}

// CalcMomentum returns the momentum of m moving at v (p = m × v), oriented
// like v.
func (m Mass) CalcMomentum(v Velocity) Momentum {
	return Momentum{v.d.Scale(float64(m))}
}

func (m Mass) Metadata() *unit.Metadata { return massMeta }

func (m Mass) Magnitude() Magnitude { return Magnitude(m) }

// As returns m in p-prefixed grams.
func (m Mass) As(p prefix.Prefix) Magnitude { return massMeta.As(p, float64(m)) }

func (m Mass) String() string { return format(massMeta, float64(m)) }

func (m Mass) Long() string { return formatLong(massMeta, float64(m)) }
