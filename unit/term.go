package unit

import "github.com/hupe1980/fisika/prefix"

// Term is one prefixable part of a unit, e.g. the "m" of "m/s".
type Term struct {
	Symbol   string // ASCII symbol, e.g. "m2"
	Unicode  string // Unicode symbol, e.g. "m²"; defaults to Symbol
	Singular string // e.g. "metre"
	Plural   string // defaults to Singular + "s"
	// UnicodeSingular and UnicodePlural default to the ASCII names.
	UnicodeSingular string
	UnicodePlural   string
	// Qualifier is written before the prefix in long names ("square ").
	Qualifier string
	// Power is the dimensional power; zero means 1.
	Power int
	// Shift is the exponent of the canonical unit relative to the named one.
	Shift int
	// Base is the prefix the term carries when none is requested, e.g. the
	// kilo of a per-kilogram denominator.
	Base prefix.Prefix
}

func (t Term) power() int {
	if t.Power == 0 {
		return 1
	}
	return t.Power
}

// Exponent returns the power of ten converting one p-prefixed term into the
// canonical term.
func (t Term) Exponent(p prefix.Prefix) int {
	return p.Scale(t.power()) - t.Shift
}

func (t Term) symbol(p prefix.Prefix, unicode bool) string {
	if unicode {
		return p.UnicodeSymbol + or(t.Unicode, t.Symbol)
	}
	return p.Symbol + t.Symbol
}

func (t Term) long(p prefix.Prefix, plural, unicode bool) string {
	name := t.Singular
	if plural {
		name = or(t.Plural, t.Singular+"s")
	}
	if !unicode {
		return t.Qualifier + p.Name + name
	}
	uname := or(t.UnicodeSingular, t.Singular)
	if plural {
		switch {
		case t.UnicodePlural != "":
			uname = t.UnicodePlural
		case t.UnicodeSingular != "":
			uname = t.UnicodeSingular + "s"
		default:
			uname = name
		}
	}
	return t.Qualifier + p.UnicodeName + uname
}

func or(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
