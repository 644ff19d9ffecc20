package unit

import (
	"math"
	"slices"
	"strings"
)

// Names holds the ASCII and Unicode short and long names of a unit.
type Names struct {
	Symbol          string
	UnicodeSymbol   string
	Singular        string
	Plural          string
	UnicodeSingular string
	UnicodePlural   string
}

func (n Names) filled() Names {
	n.UnicodeSymbol = or(n.UnicodeSymbol, n.Symbol)
	n.Plural = or(n.Plural, n.Singular+"s")
	if n.UnicodePlural == "" && n.UnicodeSingular != "" {
		n.UnicodePlural = n.UnicodeSingular + "s"
	}
	n.UnicodeSingular = or(n.UnicodeSingular, n.Singular)
	n.UnicodePlural = or(n.UnicodePlural, n.Plural)
	return n
}

// all lists every distinct name, short forms first.
func (n Names) all() []string {
	out := make([]string, 0, 6)
	for _, s := range []string{n.Symbol, n.UnicodeSymbol, n.Singular, n.Plural, n.UnicodeSingular, n.UnicodePlural} {
		if s != "" && !slices.Contains(out, s) {
			out = append(out, s)
		}
	}
	return out
}

// Unit is a named unit of one quantity together with its conversion to the
// quantity's canonical unit.
type Unit struct {
	Names
	conv conversion
}

// Extra returns a unit outside the prefix ladder, worth factor canonical
// units, e.g. the minute is Extra(minute, 60).
func Extra(n Names, factor float64) Unit {
	return Unit{Names: n.filled(), conv: conversion{mul: factor, div: 1}}
}

// ExtraPow10 returns a unit outside the prefix ladder worth 10^exp canonical
// units, e.g. the ångström is ExtraPow10(angstrom, -10).
func ExtraPow10(n Names, exp int) Unit {
	return Unit{Names: n.filled(), conv: fromExponent(exp)}
}

// ExtraRatio returns a unit outside the prefix ladder worth num/den canonical
// units, e.g. the kilometre per hour is ExtraRatio(kmh, 1000, 3600).
func ExtraRatio(n Names, num, den float64) Unit {
	return Unit{Names: n.filled(), conv: conversion{mul: num, div: den}}
}

// In converts x of this unit into canonical units.
func (u Unit) In(x float64) float64 {
	return u.conv.in(x)
}

// As converts m canonical units into this unit.
func (u Unit) As(m float64) float64 {
	return u.conv.as(m)
}

// Factor returns how many canonical units one of this unit is worth.
func (u Unit) Factor() float64 {
	return u.conv.factor()
}

// IsCanonical reports whether the unit is the canonical unit itself.
func (u Unit) IsCanonical() bool {
	return u.conv.identity()
}

func (u Unit) String() string {
	return u.UnicodeSymbol
}

// conversion multiplies by mul and divides by div. Powers of ten keep one of
// the two at 1, so every power of ten up to 10²² converts in one correctly
// rounded operation.
type conversion struct {
	mul, div float64
}

func fromExponent(exp int) conversion {
	if exp < 0 {
		return conversion{mul: 1, div: math.Pow10(-exp)}
	}
	return conversion{mul: math.Pow10(exp), div: 1}
}

func (c conversion) identity() bool {
	return c.mul == 1 && c.div == 1
}

func (c conversion) in(x float64) float64 {
	if c.identity() {
		return x
	}
	return x * c.mul / c.div
}

func (c conversion) as(m float64) float64 {
	if c.identity() {
		return m
	}
	return m * c.div / c.mul
}

func (c conversion) factor() float64 {
	return c.mul / c.div
}

// normalizeName folds a long name for case-insensitive lookup, accepting
// identifier spellings such as "kilometres_per_second".
func normalizeName(s string) string {
	return strings.ToLower(strings.ReplaceAll(s, "_", " "))
}
