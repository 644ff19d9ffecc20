package prefix

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Prefix is a power-of-ten scale applied to a base unit.
//
// The zero value is None.
type Prefix struct {
	Symbol        string // ASCII short form, e.g. "u"
	Name          string // ASCII long form, e.g. "micro"
	UnicodeSymbol string // Unicode short form, e.g. "µ"
	UnicodeName   string // Unicode long form, e.g. "micro"
	Exponent      int
}

// Factor returns 10^Exponent.
func (p Prefix) Factor() float64 {
	return math.Pow10(p.Exponent)
}

// Scale returns the exponent of the prefix applied to a unit raised to power,
// e.g. kilo on a square unit scales by 10⁶.
func (p Prefix) Scale(power int) int {
	return p.Exponent * power
}

// IsNone reports whether p is the base entry.
func (p Prefix) IsNone() bool {
	return p.Exponent == 0
}

func (p Prefix) String() string {
	if p.IsNone() {
		return "none"
	}
	return fmt.Sprintf("%s (%s, 10^%d)", p.Name, p.Symbol, p.Exponent)
}

var (
	Yotta = Prefix{"Y", "yotta", "Y", "yotta", 24}
	Zetta = Prefix{"Z", "zetta", "Z", "zetta", 21}
	Exa   = Prefix{"E", "exa", "E", "exa", 18}
	Peta  = Prefix{"P", "peta", "P", "peta", 15}
	Tera  = Prefix{"T", "tera", "T", "tera", 12}
	Giga  = Prefix{"G", "giga", "G", "giga", 9}
	Mega  = Prefix{"M", "mega", "M", "mega", 6}
	Kilo  = Prefix{"k", "kilo", "k", "kilo", 3}
	Hecto = Prefix{"h", "hecto", "h", "hecto", 2}
	Deka  = Prefix{"da", "deka", "da", "deca", 1}
	None  = Prefix{} // base entry, factor 1
	Deci  = Prefix{"d", "deci", "d", "deci", -1}
	Centi = Prefix{"c", "centi", "c", "centi", -2}
	Milli = Prefix{"m", "milli", "m", "milli", -3}
	Micro = Prefix{"u", "micro", "µ", "micro", -6}
	Nano  = Prefix{"n", "nano", "n", "nano", -9}
	Pico  = Prefix{"p", "pico", "p", "pico", -12}
	Femto = Prefix{"f", "femto", "f", "femto", -15}
	Atto  = Prefix{"a", "atto", "a", "atto", -18}
	Zepto = Prefix{"z", "zepto", "z", "zepto", -21}
	Yocto = Prefix{"y", "yocto", "y", "yocto", -24}
)

// table is ordered by strictly decreasing exponent.
var table = [...]Prefix{
	Yotta, Zetta, Exa, Peta, Tera, Giga, Mega, Kilo, Hecto, Deka,
	None,
	Deci, Centi, Milli, Micro, Nano, Pico, Femto, Atto, Zepto, Yocto,
}

// Count is the number of table entries, None included.
const Count = len(table)

// All returns the prefix table ordered from Yotta to Yocto, None included.
func All() []Prefix {
	out := make([]Prefix, Count)
	copy(out, table[:])
	return out
}

// Scaling returns the magnitude-altering prefixes, i.e. All without None.
func Scaling() []Prefix {
	out := make([]Prefix, 0, Count-1)
	for _, p := range table {
		if !p.IsNone() {
			out = append(out, p)
		}
	}
	return out
}

// ByExponent returns the prefix with exponent exp.
func ByExponent(exp int) (Prefix, bool) {
	for _, p := range table {
		if p.Exponent == exp {
			return p, true
		}
	}
	return None, false
}

// Lookup finds a prefix by any of its ASCII or Unicode symbols or names.
// Symbols are case-sensitive ("M" is mega, "m" is milli); names are not.
// Input is NFKC-normalized, so the micro sign and Greek mu both mean micro.
// The empty string resolves to None.
func Lookup(s string) (Prefix, bool) {
	if s == "" {
		return None, true
	}
	s = norm.NFKC.String(s)
	for _, p := range table {
		if p.IsNone() {
			continue
		}
		if s == p.Symbol || s == norm.NFKC.String(p.UnicodeSymbol) {
			return p, true
		}
	}
	for _, p := range table {
		if p.IsNone() {
			continue
		}
		if strings.EqualFold(s, p.Name) || strings.EqualFold(s, p.UnicodeName) {
			return p, true
		}
	}
	return None, false
}
