package units

// Physical constants.
const (
	// SpeedOfLight in vacuum.
	SpeedOfLight Speed = 299_792_458

	// SpeedOfLightSquared is c², in m²/s².
	SpeedOfLightSquared = 89_875_517_873_681_764.0

	// CoulombConstant is the electrostatic constant k, in N·m²/C².
	CoulombConstant = 8_987_551_792.3

	// ElementaryCharge is the charge of a proton.
	ElementaryCharge Charge = 1.602176634e-19

	ElectronMass Mass = 9.1093837015e-31
	ProtonMass   Mass = 1.67262192369e-27
)

// Years and cycles.
const (
	// JulianYear is 365.25 days, the year used in astronomy.
	JulianYear Time = 31_557_600
	// FullMoonCycle is 411 days 18 hours 49 minutes 35 seconds.
	FullMoonCycle Time = 35_578_174.777056
	// DraconicYear is 346 days 14 hours 52 minutes 54 seconds.
	DraconicYear Time = 29_947_974.5562912
	// LunarYear is 354 days 8 hours 48 minutes 34 seconds.
	LunarYear Time = 30_617_314.848
)

// Non-SI units, in canonical units.
const (
	AstronomicalUnit Length = 1.495978707e11
	Angstrom         Length = 1e-10
	Litre            Volume = 1e-3
)

// Lengths by order of magnitude.
const (
	PlanckLength              Length = 1.616255e-35
	WeakForceRange            Length = 1e-17
	ProtonRadius              Length = 8.33e-16
	ElectronRadius            Length = 2.8179403227e-15
	AtomicNucleusDiameterMin  Length = 3e-15
	AtomicNucleusDiameterMax  Length = 1.5e-14
	XRayShortestWavelength    Length = 5e-12
	HeliumRadius              Length = 2.8e-11
	BohrRadius                Length = 5.29177210903e-11
	CovalentBondLengthDiamond Length = 1.54e-10
)

// Speeds by order of magnitude.
const (
	StalactiteGrowth    Speed = 4.12e-12
	HumanHairGrowth     Speed = 4.8e-9
	MilePerHour         Speed = 0.44704
	Knot                Speed = 0.5144
	Running             Speed = 4.98
	HumanFreeFallMax    Speed = 54
	SpeedOfSound        Speed = 340.3
	SpeedOfSoundInWater Speed = 1_500
	EscapeVelocityMoon  Speed = 2_375
	EscapeVelocityEarth Speed = 11_200
	EarthOrbit          Speed = 29_800
	SolarSystemOrbit    Speed = 2e5
	FiberOpticSignal    Speed = 2e8
)
