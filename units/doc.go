// Package units provides typed physical quantities and the formulas relating
// them.
//
// Every quantity stores one magnitude in its canonical unit. Scalar quantities
// are float64 types (Length, Time, Energy, ...); vector quantities (Force,
// Velocity, Acceleration, Moment, Momentum, GravitationalFieldStrength) hold a
// vector.Direction whose length is the magnitude.
//
// # Units
//
// Values are built and read in any SI-prefixed unit:
//
//	d := units.LengthIn(prefix.Kilo, 5)   // 5 km
//	d.As(prefix.None)                     // 5000
//	m := units.MassIn(prefix.None, 250)   // 250 g, stored as 0.25 kg
//	a := units.AreaIn(prefix.Kilo, 1)     // 1 km² = 1e6 m²
//
// or by unit name:
//
//	t, _ := units.InUnit[units.Time]("h", 2)
//	units.AsUnit(t, "minutes") // 120
//	l, _ := units.Parse[units.Length]("5 km")
//
// A few quantities carry units outside the prefix ladder (minutes to Julian
// years, astronomical units, ångströms, litres, km/h, g/cm³), with typed
// constructors such as units.Hours and accessors such as Time.Days.
//
// # Formulas
//
// Formulas are pure functions named after their result and operands, with
// every argument order available (SpeedFromDistanceTime, SpeedFromTimeDistance)
// and one Calc method per inverse (Speed.CalcTime).
//
// A formula that yields a vector takes its orientation from its vector
// operand, scaled or divided by the scalar operand. Formulas combining two
// vectors orient the result by the vector operation itself (cross product,
// difference). Formulas that yield a scalar use operand magnitudes only.
//
// Arithmetic never fails: dividing by a zero quantity yields ±Inf or NaN.
//
// # Display
//
//	units.Length(5).String() // "5 m"
//	units.Length(1).Long()   // "1 metre"
//	units.Length(2).Long()   // "2 metres"
package units
