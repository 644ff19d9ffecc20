package units

import (
	"github.com/hupe1980/fisika/prefix"
	"github.com/hupe1980/fisika/unit"
	"github.com/hupe1980/fisika/vector"
)

var chargeMeta = unit.NewMetadata("Charge", unit.Scalar, unit.Term{Symbol: "C", Singular: "coulomb"})

// Charge is electric charge, in coulombs.
type Charge Magnitude

// ChargeIn returns x p-prefixed coulombs.
func ChargeIn(p prefix.Prefix, x float64) Charge {
	return Charge(chargeMeta.In(p, x))
}

// ChargeFromCurrentTime returns the charge i moves in t (Q = I × t).
func ChargeFromCurrentTime(i Current, t Time) Charge {
	return Charge(float64(i) * float64(t))
}

// ChargeFromTimeCurrent is ChargeFromCurrentTime with the arguments swapped.
func ChargeFromTimeCurrent(t Time, i Current) Charge {
	return ChargeFromCurrentTime(i, t)
}

// CalcCurrent returns the current moving q in t (I = Q / t).
func (q Charge) CalcCurrent(t Time) Current {
	return Current(float64(q) / float64(t))
}

// CalcTime returns the time i needs to move q (t = Q / I).
func (q Charge) CalcTime(i Current) Time {
	return Time(float64(q) / float64(i))
}

// CoulombForce returns the electrostatic force q1 exerts on q2, where r is the
// displacement in metres from q1 to q2 (F = k × q1 × q2 / r², along r̂).
// Like charges repel, so the force points along r; unlike charges attract.
func CoulombForce(q1, q2 Charge, r vector.Direction) Force {
	m := CoulombConstant * float64(q1) * float64(q2) / r.MagnitudeSquared()
	return Force{along(m, r)}
}

func (q Charge) Metadata() *unit.Metadata { return chargeMeta }

func (q Charge) Magnitude() Magnitude { return Magnitude(q) }

// As returns q in p-prefixed coulombs.
func (q Charge) As(p prefix.Prefix) Magnitude { return chargeMeta.As(p, float64(q)) }

func (q Charge) String() string { return format(chargeMeta, float64(q)) }

func (q Charge) Long() string { return formatLong(chargeMeta, float64(q)) }
