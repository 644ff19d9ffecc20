package units

import (
	"github.com/hupe1980/fisika/prefix"
	"github.com/hupe1980/fisika/unit"
	"github.com/hupe1980/fisika/vector"
)

var (
	energyMeta = unit.NewMetadata("Energy", unit.Scalar, unit.Term{Symbol: "J", Singular: "joule"})
	powerMeta  = unit.NewMetadata("Power", unit.Scalar, unit.Term{Symbol: "W", Singular: "watt"})
)

// Energy is the capacity to do work, in joules.
type Energy Magnitude

// Work is energy transferred by a force acting along a displacement.
type Work = Energy

// EnergyIn returns x p-prefixed joules.
func EnergyIn(p prefix.Prefix, x float64) Energy {
	return Energy(energyMeta.In(p, x))
}

// EnergyFromForceLength returns the work of f acting along d (W = F × d).
// Only magnitudes count: f is taken to act along d.
func EnergyFromForceLength(f Force, d Length) Energy {
	return Energy(f.Magnitude() * float64(d))
}

// EnergyFromLengthForce is EnergyFromForceLength with the arguments swapped.
func EnergyFromLengthForce(d Length, f Force) Energy {
	return EnergyFromForceLength(f, d)
}

// WorkFromForceDisplacement returns the work of f over the displacement s, in
// metres (W = F · s). Only the component of f along s does work.
func WorkFromForceDisplacement(f Force, s vector.Direction) Work {
	return Energy(f.d.Dot(s))
}

// EnergyFromPowerTime returns the energy p delivers in t (E = P × t).
func EnergyFromPowerTime(p Power, t Time) Energy {
	return Energy(float64(p) * float64(t))
}

// EnergyFromTimePower is EnergyFromPowerTime with the arguments swapped.
func EnergyFromTimePower(t Time, p Power) Energy {
	return EnergyFromPowerTime(p, t)
}

// EnergyFromMass returns the energy equivalent to m (E = m × c²).
func EnergyFromMass(m Mass) Energy {
	return Energy(float64(m) * SpeedOfLightSquared)
}

// KineticEnergy returns the energy of m moving at v (Eₖ = ½ × m × v²).
func KineticEnergy(m Mass, v Velocity) Energy {
	return Energy(0.5 * float64(m) * v.d.MagnitudeSquared())
}

// CalcPower returns the power delivering e in t (P = E / t).
func (e Energy) CalcPower(t Time) Power {
	return Power(float64(e) / float64(t))
}

// CalcTime returns the time in which p delivers e (t = E / P).
func (e Energy) CalcTime(p Power) Time {
	return Time(float64(e) / float64(p))
}

// CalcMass returns the mass equivalent to e (m = E / c²).
func (e Energy) CalcMass() Mass {
	return MassFromEnergy(e)
}

func (e Energy) Metadata() *unit.Metadata { return energyMeta }

func (e Energy) Magnitude() Magnitude { return Magnitude(e) }

// As returns e in p-prefixed joules.
func (e Energy) As(p prefix.Prefix) Magnitude { return energyMeta.As(p, float64(e)) }

func (e Energy) String() string { return format(energyMeta, float64(e)) }

func (e Energy) Long() string { return formatLong(energyMeta, float64(e)) }

// Power is the rate of energy transfer, in watts.
type Power Magnitude

// PowerIn returns x p-prefixed watts.
func PowerIn(p prefix.Prefix, x float64) Power {
	return Power(powerMeta.In(p, x))
}

// PowerFromEnergyTime derives the power delivering e in t (P = E / t).
func PowerFromEnergyTime(e Energy, t Time) Power {
	return Power(float64(e) / float64(t))
}

// PowerFromTimeEnergy is PowerFromEnergyTime with the arguments swapped.
func PowerFromTimeEnergy(t Time, e Energy) Power {
	return PowerFromEnergyTime(e, t)
}

// CalcEnergy returns the energy p delivers in t (E = P × t).
func (p Power) CalcEnergy(t Time) Energy {
	return Energy(float64(p) * float64(t))
}

// CalcTime returns the time in which p delivers e (t = E / P).
func (p Power) CalcTime(e Energy) Time {
	return Time(float64(e) / float64(p))
}

func (p Power) Metadata() *unit.Metadata { return powerMeta }

func (p Power) Magnitude() Magnitude { return Magnitude(p) }

// As returns p in q-prefixed watts.
func (p Power) As(q prefix.Prefix) Magnitude { return powerMeta.As(q, float64(p)) }

func (p Power) String() string { return format(powerMeta, float64(p)) }

func (p Power) Long() string { return formatLong(powerMeta, float64(p)) }
