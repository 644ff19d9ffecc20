package units

import (
	"math"
	"testing"

	"github.com/hupe1980/fisika/prefix"
	"github.com/hupe1980/fisika/testutil"
	"github.com/hupe1980/fisika/vector"
	"github.com/stretchr/testify/assert"
)

func assertDirection(t *testing.T, want, got vector.Direction) {
	t.Helper()
	assert.InDelta(t, 0, got.Sub(want).Magnitude(), 1e-9*math.Max(1, want.Magnitude()), "want %v, got %v", want, got)
}

func TestSpeedScenario(t *testing.T) {
	s := SpeedFromDistanceTime(LengthIn(prefix.None, 300), TimeIn(prefix.None, 25))
	assert.Equal(t, Speed(12), s)
	assert.Equal(t, s, SpeedFromTimeDistance(Time(25), Length(300)))
	assert.Equal(t, Length(300), s.CalcDistance(Time(25)))
	assert.Equal(t, Time(25), s.CalcTime(Length(300)))

	assert.Equal(t, Length(300), LengthFromSpeedTime(s, Time(25)))
	assert.Equal(t, Time(25), TimeFromDistanceSpeed(Length(300), s))
	assert.Equal(t, Speed(12), Length(300).CalcSpeed(Time(25)))
	assert.Equal(t, Time(25), Length(300).CalcTime(s))
	assert.Equal(t, Speed(12), Time(25).CalcSpeed(Length(300)))
	assert.Equal(t, Length(300), Time(25).CalcDistance(s))
}

func TestForceInvertibility(t *testing.T) {
	rng := testutil.NewRNG(42)

	for range 200 {
		m := Mass(rng.Magnitude(-3, 3))
		a := NewAcceleration(rng.Direction(-3, 3))

		f := ForceFromMassAcceleration(m, a)
		assert.Equal(t, f, ForceFromAccelerationMass(a, m))
		assert.InEpsilon(t, float64(m), float64(f.CalcMass(a)), 1e-9)
		assertDirection(t, a.Direction(), f.CalcAcceleration(m).Direction())

		assert.InEpsilon(t, float64(m), float64(MassFromForceAcceleration(f, a)), 1e-9)
		assertDirection(t, a.Direction(), AccelerationFromForceMass(f, m).Direction())
		assertDirection(t, f.Direction(), m.CalcForce(a).Direction())
		assertDirection(t, f.Direction(), a.CalcForce(m).Direction())
		assert.InEpsilon(t, float64(m), float64(a.CalcMass(f)), 1e-9)
	}
}

func TestDirectionPropagation(t *testing.T) {
	t.Run("ScalarScalesVector", func(t *testing.T) {
		a := NewAcceleration(vector.New(0, -3, 0))
		assert.Equal(t, vector.New(0, -6, 0), ForceFromMassAcceleration(2, a).Direction())

		f := NewForce(vector.New(4, 0, 2))
		assert.Equal(t, vector.New(2, 0, 1), f.CalcAcceleration(2).Direction())
		assert.Equal(t, vector.New(8, 0, 4), f.CalcMoment(2).Direction())
		assert.Equal(t, vector.New(8, 0, 4), MomentFromDistanceForce(2, f).Direction())
		assert.Equal(t, vector.New(8, 0, 4), Length(2).CalcMoment(f).Direction())

		m := NewMoment(vector.New(0, 0, 6))
		assert.Equal(t, vector.New(0, 0, 3), ForceFromMomentDistance(m, 2).Direction())
		assert.Equal(t, vector.New(0, 0, 3), m.CalcForce(2).Direction())
		assert.Equal(t, vector.New(0, 0, 3), Length(2).CalcForce(m).Direction())
	})

	t.Run("VectorsCombine", func(t *testing.T) {
		tau := TorqueFromLeverForce(vector.UnitX, ForceAlong(2, vector.UnitY))
		assert.Equal(t, vector.New(0, 0, 2), tau.Direction())

		a := AccelerationFromVelocitiesTime(NewVelocity(vector.New(1, 0, 0)), NewVelocity(vector.New(1, 4, 0)), 2)
		assert.Equal(t, vector.New(0, 2, 0), a.Direction())
		assert.Equal(t, a, AccelerationFromTimeVelocities(2, NewVelocity(vector.New(1, 0, 0)), NewVelocity(vector.New(1, 4, 0))))

		v := NewVelocity(vector.New(3, 0, 0)).Sub(NewVelocity(vector.New(1, 0, 0)))
		assert.Equal(t, vector.New(2, 0, 0), v.Direction())
		assert.Equal(t, vector.New(4, 0, 0), v.Add(v).Direction())

		sum := ForceAlong(3, vector.UnitX).Add(ForceAlong(4, vector.UnitY))
		assert.Equal(t, 5.0, sum.Magnitude())
	})

	t.Run("ScalarResultUsesMagnitudes", func(t *testing.T) {
		f := NewForce(vector.New(3, 4, 0))
		assert.Equal(t, Energy(10), EnergyFromForceLength(f, 2))
		assert.Equal(t, Energy(10), EnergyFromLengthForce(2, f))
		assert.Equal(t, Length(2), f.CalcDistance(MomentAlong(10, vector.UnitZ)))
		assert.Equal(t, Length(2), LengthFromMomentForce(MomentAlong(10, vector.UnitZ), f))
		assert.Equal(t, Length(2), LengthFromForceMoment(f, MomentAlong(10, vector.UnitZ)))
		assert.Equal(t, Length(2), MomentAlong(10, vector.UnitZ).CalcDistance(f))
		assert.Equal(t, Mass(2), MassFromWeightGfs(ForceAlong(19.6, vector.UnitY), GfsAlong(9.8, vector.UnitX)))
	})
}

func TestWeight(t *testing.T) {
	w := WeightFromMassGfs(10, GfsEarth)
	assert.InEpsilon(t, 98.0, w.Magnitude(), 1e-12)
	assert.Equal(t, 0.0, w.Direction().X)
	assert.Positive(t, w.Direction().Y)
	assert.Equal(t, w, WeightFromGfsMass(GfsEarth, 10))
	assert.Equal(t, w, Mass(10).CalcWeight(GfsEarth))
	assert.Equal(t, w, GfsEarth.CalcWeight(10))

	assert.InEpsilon(t, 10.0, float64(w.CalcMassFromGfs(GfsEarth)), 1e-12)
	assert.InEpsilon(t, 10.0, float64(GfsEarth.CalcMass(w)), 1e-12)
	assert.InEpsilon(t, 10.0, float64(MassFromGfsWeight(GfsEarth, w)), 1e-12)
	assertDirection(t, GfsEarth.Direction(), w.CalcGfs(10).Direction())
	assertDirection(t, GfsEarth.Direction(), Mass(10).CalcGfs(w).Direction())
	assertDirection(t, GfsEarth.Direction(), GfsFromWeightMass(w, 10).Direction())
	assertDirection(t, GfsEarth.Direction(), GfsFromMassWeight(10, w).Direction())

	mars, ok := GfsOn(" Mars ")
	assert.True(t, ok)
	assert.Equal(t, GfsMars, mars)
	_, ok = GfsOn("Vulcan")
	assert.False(t, ok)
}

func TestEnergy(t *testing.T) {
	t.Run("PowerTime", func(t *testing.T) {
		e := EnergyFromPowerTime(50, 4)
		assert.Equal(t, Energy(200), e)
		assert.Equal(t, e, EnergyFromTimePower(4, 50))
		assert.Equal(t, Power(50), e.CalcPower(4))
		assert.Equal(t, Time(4), e.CalcTime(50))
		assert.Equal(t, Power(50), PowerFromEnergyTime(200, 4))
		assert.Equal(t, Power(50), PowerFromTimeEnergy(4, 200))
		assert.Equal(t, Energy(200), Power(50).CalcEnergy(4))
		assert.Equal(t, Time(4), Power(50).CalcTime(200))
		assert.Equal(t, Time(4), TimeFromEnergyPower(200, 50))
		assert.Equal(t, Time(4), TimeFromPowerEnergy(50, 200))
		assert.Equal(t, Power(50), Time(4).CalcPower(200))
		assert.Equal(t, Energy(200), Time(4).CalcEnergy(50))
	})

	t.Run("MassEnergy", func(t *testing.T) {
		assert.Equal(t, Energy(SpeedOfLightSquared), EnergyFromMass(1))
		assert.Equal(t, Energy(SpeedOfLightSquared), Mass(1).CalcEnergy())
		assert.InEpsilon(t, 2.0, float64(MassFromEnergy(EnergyFromMass(2))), 1e-15)
		assert.InEpsilon(t, 2.0, float64(EnergyFromMass(2).CalcMass()), 1e-15)
		assert.Less(t, float64(MassFromEnergy(1)), 1e-16)
	})

	t.Run("Work", func(t *testing.T) {
		f := NewForce(vector.New(3, 4, 0))
		assert.Equal(t, Energy(6), WorkFromForceDisplacement(f, vector.New(2, 0, 0)))
		assert.Equal(t, Energy(0), WorkFromForceDisplacement(f, vector.New(0, 0, 5)))
	})

	t.Run("Kinetic", func(t *testing.T) {
		v := NewVelocity(vector.New(3, 4, 0))
		assert.Equal(t, Energy(25), KineticEnergy(2, v))
		assert.Equal(t, Energy(25), v.CalcKineticEnergy(2))
	})
}

func TestMomentum(t *testing.T) {
	v := NewVelocity(vector.New(3, 0, 0))
	p := MomentumFromMassVelocity(2, v)
	assert.Equal(t, vector.New(6, 0, 0), p.Direction())
	assert.Equal(t, p, MomentumFromVelocityMass(v, 2))
	assert.Equal(t, p, Mass(2).CalcMomentum(v))
	assert.Equal(t, p, v.CalcMomentum(2))
	assert.Equal(t, Mass(2), p.CalcMass(v))
	assert.Equal(t, Mass(2), MassFromMomentumVelocity(p, v))
	assert.Equal(t, Mass(2), MassFromVelocityMomentum(v, p))
	assert.Equal(t, v, p.CalcVelocity(2))
}

func TestKinematics(t *testing.T) {
	s := vector.New(10, 0, 0)
	v := VelocityFromDisplacementTime(s, 5)
	assert.Equal(t, vector.New(2, 0, 0), v.Direction())
	assert.Equal(t, v, VelocityFromTimeDisplacement(5, s))
	assert.Equal(t, s, v.CalcDisplacement(5))
	assert.Equal(t, Speed(2), v.Speed())

	assert.Equal(t, VelocityAlong(12, vector.UnitZ), Speed(12).CalcVelocity(vector.New(0, 0, 3)))

	a := AccelerationFromVelocityTime(v, 2)
	assert.Equal(t, vector.New(1, 0, 0), a.Direction())
	assert.Equal(t, a, AccelerationFromTimeVelocity(2, v))
	assert.Equal(t, v, a.CalcVelocity(2))

	assert.Equal(t, Frequency(4), FrequencyFromTime(0.25))
	assert.Equal(t, Frequency(4), Time(0.25).CalcFrequency())
	assert.Equal(t, Time(0.25), TimeFromFrequency(4))
	assert.Equal(t, Time(0.25), Frequency(4).CalcTime())
}

func TestMatter(t *testing.T) {
	t.Run("Density", func(t *testing.T) {
		d := DensityFromMassVolume(1000, 1)
		assert.Equal(t, Density(1000), d)
		assert.Equal(t, d, DensityFromVolumeMass(1, 1000))
		assert.Equal(t, Mass(500), d.CalcMass(0.5))
		assert.Equal(t, Volume(0.5), d.CalcVolume(500))
		assert.Equal(t, Mass(500), MassFromDensityVolume(d, 0.5))
		assert.Equal(t, Mass(500), MassFromVolumeDensity(0.5, d))
		assert.Equal(t, Volume(0.5), VolumeFromMassDensity(500, d))
		assert.Equal(t, Volume(0.5), VolumeFromDensityMass(d, 500))
		assert.Equal(t, Density(1000), Mass(500).CalcDensity(0.5))
		assert.Equal(t, Volume(0.5), Mass(500).CalcVolume(d))
		assert.Equal(t, Mass(500), Volume(0.5).CalcMass(d))
		assert.Equal(t, Density(1000), Volume(0.5).CalcDensity(500))
	})

	t.Run("Pressure", func(t *testing.T) {
		f := ForceAlong(10, vector.UnitZ)
		p := PressureFromForceArea(f, 2)
		assert.Equal(t, Pressure(5), p)
		assert.Equal(t, p, PressureFromAreaForce(2, f))
		assert.Equal(t, p, f.CalcPressure(2))
		assert.Equal(t, Area(2), p.CalcArea(f))
		assert.Equal(t, vector.New(0, 0, 10), p.CalcForce(2, vector.New(0, 0, 7)).Direction())
	})

	t.Run("Geometry", func(t *testing.T) {
		a := AreaFromLengths(3, 4)
		assert.Equal(t, Area(12), a)
		assert.Equal(t, Length(3), a.CalcLength(4))
		assert.Equal(t, Volume(24), a.CalcVolume(2))
		assert.Equal(t, Volume(24), VolumeFromAreaLength(a, 2))
		assert.Equal(t, Volume(24), VolumeFromLengthArea(2, a))
		assert.Equal(t, Volume(24), VolumeFromLengths(3, 4, 2))
		assert.Equal(t, a, Volume(24).CalcArea(2))
		assert.Equal(t, a, AreaFromVolumeLength(24, 2))
		assert.Equal(t, Length(2), Volume(24).CalcLength(a))
	})
}

func TestElectric(t *testing.T) {
	q := ChargeFromCurrentTime(2, 3)
	assert.Equal(t, Charge(6), q)
	assert.Equal(t, q, ChargeFromTimeCurrent(3, 2))
	assert.Equal(t, Current(2), q.CalcCurrent(3))
	assert.Equal(t, Time(3), q.CalcTime(2))
	assert.Equal(t, Current(2), CurrentFromChargeTime(6, 3))
	assert.Equal(t, Current(2), CurrentFromTimeCharge(3, 6))
	assert.Equal(t, Charge(6), Current(2).CalcCharge(3))
	assert.Equal(t, Time(3), Current(2).CalcTime(6))
	assert.Equal(t, Time(3), TimeFromChargeCurrent(6, 2))
	assert.Equal(t, Time(3), TimeFromCurrentCharge(2, 6))

	t.Run("Coulomb", func(t *testing.T) {
		r := vector.New(2, 0, 0)
		repel := CoulombForce(1, 1, r)
		assert.InEpsilon(t, CoulombConstant/4, repel.Magnitude(), 1e-15)
		assert.Positive(t, repel.Direction().X)

		attract := CoulombForce(1, -1, r)
		assert.InEpsilon(t, CoulombConstant/4, attract.Magnitude(), 1e-15)
		assert.Negative(t, attract.Direction().X)

		e := CoulombForce(ElementaryCharge, ElementaryCharge, vector.New(0, 5.29177210903e-11, 0))
		assert.InEpsilon(t, 8.2387e-8, e.Magnitude(), 1e-4)
	})
}

func TestAlongNegative(t *testing.T) {
	tests := []struct {
		name string
		got  vector.Direction
		want vector.Direction
	}{
		{"ForceX", ForceAlong(-5, vector.UnitX).Direction(), vector.New(-5, 0, 0)},
		{"VelocityY", VelocityAlong(-2, vector.UnitY).Direction(), vector.New(0, -2, 0)},
		{"MomentZ", MomentAlong(-3, vector.UnitZ).Direction(), vector.New(0, 0, -3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
			for i, c := range tt.got.Array() {
				if c == 0 {
					assert.False(t, math.Signbit(c), "component %d is -0", i)
				}
			}
		})
	}

	assert.Equal(t, "5 N", ForceAlong(-5, vector.UnitX).String())
}

func TestDivisionByZero(t *testing.T) {
	assert.True(t, math.IsInf(float64(SpeedFromDistanceTime(1, 0)), 1))
	assert.True(t, math.IsInf(float64(SpeedFromDistanceTime(-1, 0)), -1))
	assert.True(t, math.IsNaN(float64(SpeedFromDistanceTime(0, 0))))
	assert.True(t, math.IsInf(float64(FrequencyFromTime(0)), 1))

	a := NewForce(vector.New(1, 0, 0)).CalcAcceleration(0)
	assert.True(t, math.IsInf(a.Direction().X, 1))
	assert.True(t, math.IsNaN(a.Direction().Y))
	assert.False(t, a.Direction().IsFinite())

	assert.True(t, math.IsNaN(float64(NewForce(vector.Zero).CalcMass(NewAcceleration(vector.Zero)))))
	assert.False(t, ForceAlong(1, vector.Zero).Direction().IsFinite())
	assert.False(t, CoulombForce(1, 1, vector.Zero).Direction().IsFinite())
}
