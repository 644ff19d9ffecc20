package unit

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/hupe1980/fisika/prefix"
	"golang.org/x/text/unicode/norm"
)

// index resolves unit names. Symbols are case-sensitive ("Mm" is not "mm");
// long names are not. Every key is NFKC-normalized so that compatibility
// spellings resolve alike: the micro sign and Greek mu, the ångström sign and
// the letter Å, "m²" and "m2".
type index struct {
	quantity string
	symbols  map[string]Unit
	names    map[string]Unit
}

func newIndex(quantity string) index {
	return index{
		quantity: quantity,
		symbols:  make(map[string]Unit),
		names:    make(map[string]Unit),
	}
}

func (ix index) add(u Unit) error {
	for _, s := range []string{u.Symbol, u.UnicodeSymbol} {
		if err := ix.put(ix.symbols, norm.NFKC.String(s), u); err != nil {
			return err
		}
	}
	for _, s := range []string{u.Singular, u.Plural, u.UnicodeSingular, u.UnicodePlural} {
		if err := ix.put(ix.names, normalizeName(norm.NFKC.String(s)), u); err != nil {
			return err
		}
	}
	return nil
}

func (ix index) put(m map[string]Unit, key string, u Unit) error {
	if key == "" {
		return nil
	}
	if prev, ok := m[key]; ok && prev != u {
		return &errDuplicateName{quantity: ix.quantity, name: key, first: prev.Symbol, second: u.Symbol}
	}
	m[key] = u
	return nil
}

func (ix index) lookup(name string) (Unit, bool) {
	key := norm.NFKC.String(strings.TrimSpace(name))
	if u, ok := ix.symbols[key]; ok {
		return u, true
	}
	u, ok := ix.names[normalizeName(key)]
	return u, ok
}

// Lookup resolves any ASCII or Unicode, short or long name of a unit of the
// quantity, e.g. "km", "kilometre", "kilometres" or "kilometres" spelled as
// an identifier ("square_kilometres").
//
// Ratio units also resolve by symbol with both terms prefixed, e.g. "mm/ms"
// or "kg/cm³".
func (m *Metadata) Lookup(name string) (Unit, error) {
	if u, ok := m.index.lookup(name); ok {
		return u, nil
	}
	if u, ok := m.lookupRatio(name); ok {
		return u, nil
	}
	return Unit{}, &ErrUnknownUnit{Quantity: m.quantity, Name: name}
}

// Has reports whether name resolves to a unit of the quantity.
func (m *Metadata) Has(name string) bool {
	_, err := m.Lookup(name)
	return err == nil
}

func (m *Metadata) lookupRatio(name string) (Unit, bool) {
	if m.den == nil {
		return Unit{}, false
	}
	num, den, ok := strings.Cut(norm.NFKC.String(strings.TrimSpace(name)), "/")
	if !ok {
		return Unit{}, false
	}
	np, ok := m.num.prefixOf(num)
	if !ok {
		return Unit{}, false
	}
	dp, ok := m.den.prefixOf(den)
	if !ok {
		return Unit{}, false
	}
	return m.ratioUnit(np, dp), true
}

// prefixOf returns the prefix p for which s is the NFKC-normalized symbol of
// the p-prefixed term.
func (t Term) prefixOf(s string) (prefix.Prefix, bool) {
	for _, sym := range []string{t.Symbol, norm.NFKC.String(or(t.Unicode, t.Symbol))} {
		rest, ok := strings.CutSuffix(s, sym)
		if !ok {
			continue
		}
		p, ok := prefix.Lookup(rest)
		if !ok {
			continue
		}
		if s == norm.NFKC.String(t.symbol(p, false)) || s == norm.NFKC.String(t.symbol(p, true)) {
			return p, true
		}
	}
	return prefix.None, false
}

// Split separates "<magnitude> <unit>" into its number and unit name. The
// unit may contain spaces ("5 square metres") or be omitted ("5"), and may
// follow the number without a space ("5km", "5kg m/s").
func Split(s string) (float64, string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, "", &ErrSyntax{Input: s}
	}

	if i := strings.IndexFunc(s, unicode.IsSpace); i >= 0 {
		if v, err := strconv.ParseFloat(s[:i], 64); err == nil {
			return v, strings.TrimSpace(s[i:]), nil
		}
	}

	num, rest := s, ""
	if i := unitStart(s); i > 0 {
		num, rest = s[:i], strings.TrimSpace(s[i:])
	}

	v, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0, "", &ErrSyntax{Input: s, cause: err}
	}
	return v, rest, nil
}

// unitStart returns the index of the first byte after a leading number.
func unitStart(s string) int {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digits := false
	for i < len(s) && (isDigit(s[i]) || s[i] == '.') {
		digits = true
		i++
	}
	if !digits {
		return -1
	}
	// An exponent only counts when digits follow it, so "5e" stays a unit.
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		if j < len(s) && isDigit(s[j]) {
			for j < len(s) && isDigit(s[j]) {
				j++
			}
			i = j
		}
	}
	return i
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

// Parse reads "<magnitude> <unit>" and returns the magnitude in canonical
// units together with the unit it was written in. A missing unit means the
// canonical unit.
func (m *Metadata) Parse(s string) (float64, Unit, error) {
	v, name, err := Split(s)
	if err != nil {
		return 0, Unit{}, err
	}
	if name == "" {
		return v, m.canonical, nil
	}
	u, err := m.Lookup(name)
	if err != nil {
		return 0, Unit{}, err
	}
	return u.In(v), u, nil
}
