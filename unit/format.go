package unit

import (
	"math"
	"strconv"
)

// Epsilon is the tolerance within which a magnitude reads as exactly one in
// long names: 1 metre, but 1.5 metres.
const Epsilon = 2.220446049250313e-16 // float64 machine epsilon

// IsOne reports whether |m − 1| < Epsilon.
func IsOne(m float64) bool {
	return math.Abs(m-1) < Epsilon
}

// Format renders "<magnitude> <symbol>" with the magnitude given in u,
// e.g. "5 km".
func Format(m float64, u Unit) string {
	return FormatPrec(m, u, -1)
}

// FormatPrec is Format with prec digits after the decimal point; -1 means the
// fewest digits that read back exactly.
func FormatPrec(m float64, u Unit, prec int) string {
	return FormatMagnitude(m, prec) + " " + u.UnicodeSymbol
}

// FormatLong renders "<magnitude> <name>" with the name pluralized unless the
// magnitude is one, e.g. "1 metre" and "2 metres".
func FormatLong(m float64, u Unit) string {
	return FormatLongPrec(m, u, -1)
}

// FormatLongPrec is FormatLong with prec digits after the decimal point.
func FormatLongPrec(m float64, u Unit, prec int) string {
	return FormatMagnitude(m, prec) + " " + LongName(m, u)
}

// LongName returns the singular name of u if m is one, else the plural.
func LongName(m float64, u Unit) string {
	if IsOne(m) {
		return u.UnicodeSingular
	}
	return u.UnicodePlural
}

// FormatMagnitude prints m in positional notation across everyday ranges and
// in exponent notation at extreme magnitudes.
func FormatMagnitude(m float64, prec int) string {
	a := math.Abs(m)
	if m == 0 || (a >= 1e-6 && a < 1e21) || math.IsNaN(m) {
		return strconv.FormatFloat(m, 'f', prec, 64)
	}
	return strconv.FormatFloat(m, 'e', prec, 64)
}
