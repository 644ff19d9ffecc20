// Package fisika converts, parses and formats physical quantities by unit
// name.
//
// The typed quantities and the formulas relating them live in the units
// package; SI prefixes in prefix, the unit generator in unit. This package is
// the name-based entry point on top of them:
//
//	c, _ := fisika.New()
//	c.Convert(ctx, 5, "km", "m")   // 5000
//	q, _ := c.Parse(ctx, "36 km/h") // units.Speed(10)
//	c.Format(q, true)               // "10 metres per second"
//
// # Name resolution
//
// Unit names are ASCII or Unicode symbols ("um", "µm") or singular or plural
// long names ("micrometre", "micrometres"). A symbol shared by an SI-prefixed
// unit and a non-SI unit resolves to the prefixed one: "A" is an ampere, "Å"
// an ångström. Speed and Velocity share their units; Parse yields the Speed,
// ParseAs(ctx, "Velocity", ...) the Velocity along +X.
//
// # Observability
//
// WithLogger and WithMetricsCollector observe every Convert and Parse call:
//
//	metrics := &fisika.BasicMetricsCollector{}
//	c, _ := fisika.New(
//	    fisika.WithLogger(fisika.NewJSONLogger(slog.LevelDebug)),
//	    fisika.WithMetricsCollector(metrics),
//	)
//
// Errors wrap ErrUnknownUnit, ErrUnknownQuantity and ErrInvalidValue, or are
// an *ErrIncompatibleUnits; use errors.Is and errors.As.
package fisika
