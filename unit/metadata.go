package unit

import (
	"fmt"

	"github.com/hupe1980/fisika/prefix"
)

// Kind tells scalar quantities from vector quantities.
type Kind uint8

const (
	Scalar Kind = iota
	Vector
)

func (k Kind) String() string {
	switch k {
	case Scalar:
		return "scalar"
	case Vector:
		return "vector"
	default:
		return fmt.Sprintf("Unknown(%d)", k)
	}
}

// Metadata describes the canonical unit of one quantity and owns every unit
// generated from it.
//
// Metadata is immutable after NewMetadata and safe for concurrent use.
type Metadata struct {
	quantity string
	kind     Kind
	num      Term
	den      *Term
	extras   []Unit

	units     []Unit // one per prefix, in prefix.All order
	byExp     map[int]int
	canonical Unit
	index     index
}

// Option configures NewMetadata.
type Option func(*Metadata)

// Per makes the unit a ratio with den as denominator, e.g. metres Per second.
func Per(den Term) Option {
	return func(m *Metadata) {
		m.den = &den
	}
}

// WithExtras adds units outside the prefix ladder (minutes, litres, ...).
func WithExtras(units ...Unit) Option {
	return func(m *Metadata) {
		m.extras = append(m.extras, units...)
	}
}

// NewMetadata generates the prefixed units of a quantity.
//
// It panics if two different units of the quantity share a name; the name
// tables are package-level data, so a clash is a programming error.
func NewMetadata(quantity string, kind Kind, num Term, opts ...Option) *Metadata {
	m := &Metadata{
		quantity: quantity,
		kind:     kind,
		num:      num,
		byExp:    make(map[int]int, prefix.Count),
	}
	for _, opt := range opts {
		opt(m)
	}

	for i, p := range prefix.All() {
		u := m.ratioUnit(p, m.denBase())
		m.units = append(m.units, u)
		m.byExp[p.Exponent] = i
		if u.conv.identity() && m.canonical.Symbol == "" {
			m.canonical = u
		}
	}
	if m.canonical.Symbol == "" {
		m.canonical = m.Unit(prefix.None)
	}

	m.index = newIndex(quantity)
	for _, u := range m.Units() {
		if err := m.index.add(u); err != nil {
			panic(err)
		}
	}
	return m
}

// Quantity returns the quantity name, e.g. "Length".
func (m *Metadata) Quantity() string { return m.quantity }

// Kind returns whether the quantity is a scalar or a vector.
func (m *Metadata) Kind() Kind { return m.kind }

// Numerator returns the prefixable term.
func (m *Metadata) Numerator() Term { return m.num }

// Denominator returns the denominator term of a ratio unit.
func (m *Metadata) Denominator() (Term, bool) {
	if m.den == nil {
		return Term{}, false
	}
	return *m.den, true
}

// IsCompound reports whether the unit is a ratio of two terms.
func (m *Metadata) IsCompound() bool { return m.den != nil }

// Canonical returns the unit values are stored in.
func (m *Metadata) Canonical() Unit { return m.canonical }

// Unit returns the unit generated for p.
func (m *Metadata) Unit(p prefix.Prefix) Unit {
	if i, ok := m.byExp[p.Exponent]; ok {
		return m.units[i]
	}
	return m.ratioUnit(p, m.denBase())
}

// Prefixed returns the units generated from the prefix table, Yotta first.
func (m *Metadata) Prefixed() []Unit {
	out := make([]Unit, len(m.units))
	copy(out, m.units)
	return out
}

// Extras returns the units outside the prefix ladder.
func (m *Metadata) Extras() []Unit {
	out := make([]Unit, len(m.extras))
	copy(out, m.extras)
	return out
}

// Units returns every unit of the quantity: prefixed units, then extras.
func (m *Metadata) Units() []Unit {
	return append(m.Prefixed(), m.extras...)
}

// In converts x p-prefixed units into canonical units.
func (m *Metadata) In(p prefix.Prefix, x float64) float64 {
	return fromExponent(m.exponent(p, m.denBase())).in(x)
}

// As converts the canonical magnitude v into p-prefixed units.
func (m *Metadata) As(p prefix.Prefix, v float64) float64 {
	return fromExponent(m.exponent(p, m.denBase())).as(v)
}

// InRatio converts x units with both terms prefixed into canonical units.
// For non-compound units the denominator prefix is ignored.
func (m *Metadata) InRatio(num, den prefix.Prefix, x float64) float64 {
	return fromExponent(m.exponent(num, den)).in(x)
}

// AsRatio converts the canonical magnitude v into units with both terms
// prefixed.
func (m *Metadata) AsRatio(num, den prefix.Prefix, v float64) float64 {
	return fromExponent(m.exponent(num, den)).as(v)
}

// RatioUnit returns the named unit with both terms prefixed, e.g. g/cm³.
// Lookup resolves these by symbol only; long names are indexed for
// numerator prefixes alone.
func (m *Metadata) RatioUnit(num, den prefix.Prefix) Unit {
	return m.ratioUnit(num, den)
}

func (m *Metadata) denBase() prefix.Prefix {
	if m.den == nil {
		return prefix.None
	}
	return m.den.Base
}

func (m *Metadata) exponent(num, den prefix.Prefix) int {
	e := m.num.Exponent(num)
	if m.den != nil {
		e -= m.den.Exponent(den)
	}
	return e
}

func (m *Metadata) ratioUnit(num, den prefix.Prefix) Unit {
	n := Names{
		Symbol:          m.num.symbol(num, false),
		UnicodeSymbol:   m.num.symbol(num, true),
		Singular:        m.num.long(num, false, false),
		Plural:          m.num.long(num, true, false),
		UnicodeSingular: m.num.long(num, false, true),
		UnicodePlural:   m.num.long(num, true, true),
	}
	if m.den != nil {
		d := *m.den
		n.Symbol += "/" + d.symbol(den, false)
		n.UnicodeSymbol += "/" + d.symbol(den, true)
		n.Singular += " per " + d.long(den, false, false)
		n.Plural += " per " + d.long(den, false, false)
		n.UnicodeSingular += " per " + d.long(den, false, true)
		n.UnicodePlural += " per " + d.long(den, false, true)
	}
	return Unit{Names: n, conv: fromExponent(m.exponent(num, den))}
}

func (m *Metadata) String() string {
	return fmt.Sprintf("%s (%s, %s)", m.quantity, m.canonical.UnicodeSymbol, m.kind)
}
