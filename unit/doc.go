// Package unit turns a quantity's base-unit description into its full set of
// SI-prefixed units.
//
// A quantity declares its canonical unit once, as Metadata built from one
// numerator Term and an optional denominator Term. NewMetadata derives one Unit
// per prefix from the prefix table and indexes every ASCII and Unicode name of
// those units, so no per-prefix code exists anywhere.
//
// # Conversion
//
// Every conversion is one power of ten, computed from exponents:
//
//	e = prefix.Exponent × Power − Shift
//
// Power is the dimensional power (2 for square metres, 3 for cubic metres).
// Shift is the canonical offset of units named in one unit but stored in
// another: mass is named in grams and stored in kilograms, so Shift is 3 and
// the "g" unit converts with e = −3. An exponent of zero is an exact identity.
//
// # Compound units
//
// Ratio units (metres per second) prefix only their numerator. Prefixing the
// denominator goes through InRatio/AsRatio or a unit the quantity lists
// explicitly among its extras.
//
// # Names
//
//	m := unit.NewMetadata("Length", unit.Scalar, unit.Term{Symbol: "m", Singular: "metre"})
//	u, _ := m.Lookup("kilometres") // also "km"
//	u.In(5)                        // 5000
//	unit.FormatLong(2, m.Canonical()) // "2 metres"
package unit
