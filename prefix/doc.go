// Package prefix provides the SI prefix table used by every quantity.
//
// The table holds the twenty magnitude-altering SI prefixes from yotta (10²⁴)
// down to yocto (10⁻²⁴) plus the base entry None. Each prefix carries an ASCII
// and a Unicode symbol/name pair; they differ only for micro (u/µ) and deka
// (deka/deca).
//
// # Usage
//
//	prefix.Kilo.Factor()       // 1000
//	prefix.Kilo.Scale(2)       // 6, the exponent for square units
//	p, ok := prefix.Lookup("µ") // prefix.Micro, true
//
// The table is process-wide immutable data; All returns a copy.
package prefix
