package fisika

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/hupe1980/fisika/unit"
	"github.com/hupe1980/fisika/units"
)

// Converter resolves unit names across the quantity catalogue. It converts
// between named units, parses "<magnitude> <unit>" text into typed quantities
// and renders quantities for display.
//
// A Converter is immutable after New and safe for concurrent use.
type Converter struct {
	defs      []units.Definition
	logger    *Logger
	metrics   MetricsCollector
	precision int
}

// New creates a Converter over the whole catalogue, or over the quantities
// named by WithQuantities.
func New(optFns ...Option) (*Converter, error) {
	o := applyOptions(optFns)

	defs := units.Catalogue()
	if len(o.quantities) > 0 {
		selected := make(map[*unit.Metadata]bool, len(o.quantities))
		for _, name := range o.quantities {
			d, ok := units.Find(name)
			if !ok {
				return nil, fmt.Errorf("%w: %q", ErrUnknownQuantity, name)
			}
			selected[d.Metadata] = true
		}
		defs = slices.DeleteFunc(defs, func(d units.Definition) bool {
			return !selected[d.Metadata]
		})
	}

	return &Converter{
		defs:      defs,
		logger:    o.logger,
		metrics:   o.metricsCollector,
		precision: o.precision,
	}, nil
}

// Quantities returns the names of the quantities the Converter resolves, in
// catalogue order.
func (c *Converter) Quantities() []string {
	names := make([]string, len(c.defs))
	for i, d := range c.defs {
		names[i] = d.Quantity()
	}
	return names
}

// Units lists every unit of the named quantity, prefixed units from yotta
// down to yocto followed by its non-SI units.
func (c *Converter) Units(quantity string) ([]unit.Unit, error) {
	d, err := c.definition(quantity)
	if err != nil {
		return nil, err
	}
	return d.Units(), nil
}

// Convert converts x between two units of the same quantity, e.g.
// Convert(ctx, 5, "km", "m") is 5000.
func (c *Converter) Convert(ctx context.Context, x float64, from, to string) (float64, error) {
	start := time.Now()

	quantity, v, err := c.convert(x, from, to)
	err = translateError(err)

	c.metrics.RecordConvert(quantity, time.Since(start), err)
	c.logger.LogConvert(ctx, quantity, from, to, err)

	return v, err
}

func (c *Converter) convert(x float64, from, to string) (string, float64, error) {
	for _, d := range c.defs {
		fu, ferr := d.Lookup(from)
		tu, terr := d.Lookup(to)
		if ferr == nil && terr == nil {
			return d.Quantity(), tu.As(fu.In(x)), nil
		}
	}

	fd, _, ok := c.resolve(from)
	if !ok {
		return "", 0, &unit.ErrUnknownUnit{Name: from}
	}
	td, _, ok := c.resolve(to)
	if !ok {
		return "", 0, &unit.ErrUnknownUnit{Name: to}
	}
	return "", 0, &ErrIncompatibleUnits{
		From:         from,
		To:           to,
		FromQuantity: fd.Quantity(),
		ToQuantity:   td.Quantity(),
	}
}

// Parse reads "<magnitude> <unit>" into the quantity the unit belongs to,
// e.g. "5 km" into a units.Length of 5000. Vector quantities point along +X,
// or along -X for a negative magnitude: "-5 N" is a Force of (-5, 0, 0), which
// Format renders by its length as "5 N".
//
// A symbol shared by several quantities resolves to an SI-prefixed unit
// before a non-SI one ("1 A" is an ampere, "1 Å" an ångström), then to the
// first quantity in catalogue order ("m/s" is a Speed). ParseAs picks the
// quantity explicitly.
func (c *Converter) Parse(ctx context.Context, s string) (units.Quantity, error) {
	start := time.Now()

	q, err := c.parse(s)
	err = translateError(err)

	quantity := ""
	if q != nil {
		quantity = q.Metadata().Quantity()
	}
	c.metrics.RecordParse(quantity, time.Since(start), err)
	c.logger.LogParse(ctx, s, quantity, err)

	return q, err
}

func (c *Converter) parse(s string) (units.Quantity, error) {
	v, name, err := unit.Split(s)
	if err != nil {
		return nil, err
	}
	if name == "" {
		return nil, &unit.ErrSyntax{Input: s}
	}

	d, u, ok := c.resolve(name)
	if !ok {
		return nil, &unit.ErrUnknownUnit{Name: name}
	}
	return d.New(u.In(v)), nil
}

// ParseAs reads "<magnitude> <unit>" as the named quantity. A missing unit
// means the canonical unit.
func (c *Converter) ParseAs(ctx context.Context, quantity, s string) (units.Quantity, error) {
	start := time.Now()

	var (
		q    units.Quantity
		name string
	)
	d, err := c.definition(quantity)
	if err == nil {
		name = d.Quantity()
		var v float64
		if v, _, err = d.Parse(s); err == nil {
			q = d.New(v)
		}
	}
	err = translateError(err)

	c.metrics.RecordParse(name, time.Since(start), err)
	c.logger.LogParse(ctx, s, name, err)

	return q, err
}

// Format renders q in its canonical unit, by symbol ("5 m") or, if long, by
// pluralized name ("5 metres").
func (c *Converter) Format(q units.Quantity, long bool) string {
	return c.format(q.Magnitude(), q.Metadata().Canonical(), long)
}

// FormatIn renders q in the named unit, e.g. FormatIn(units.Length(5000),
// "km", false) is "5 km".
func (c *Converter) FormatIn(q units.Quantity, name string, long bool) (string, error) {
	u, err := q.Metadata().Lookup(name)
	if err != nil {
		return "", translateError(err)
	}
	return c.format(u.As(q.Magnitude()), u, long), nil
}

func (c *Converter) format(m float64, u unit.Unit, long bool) string {
	if long {
		return unit.FormatLongPrec(m, u, c.precision)
	}
	return unit.FormatPrec(m, u, c.precision)
}

// resolve finds the unit called name, preferring SI-prefixed units over
// non-SI ones across all quantities.
func (c *Converter) resolve(name string) (units.Definition, unit.Unit, bool) {
	var (
		extraDef  units.Definition
		extraUnit unit.Unit
		found     bool
	)
	for _, d := range c.defs {
		u, err := d.Lookup(name)
		if err != nil {
			continue
		}
		if !slices.Contains(d.Extras(), u) {
			return d, u, true
		}
		if !found {
			extraDef, extraUnit, found = d, u, true
		}
	}
	return extraDef, extraUnit, found
}

func (c *Converter) definition(quantity string) (units.Definition, error) {
	d, ok := units.Find(quantity)
	if ok && slices.ContainsFunc(c.defs, func(x units.Definition) bool { return x.Metadata == d.Metadata }) {
		return d, nil
	}
	return units.Definition{}, fmt.Errorf("%w: %q", ErrUnknownQuantity, quantity)
}
