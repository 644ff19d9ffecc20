package fisika

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"math"
	"testing"
	"time"

	"github.com/hupe1980/fisika/unit"
	"github.com/hupe1980/fisika/units"
	"github.com/hupe1980/fisika/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConverter(t *testing.T) {
	ctx := context.Background()

	c, err := New()
	require.NoError(t, err)
	require.Len(t, c.Quantities(), 22)

	t.Run("Convert", func(t *testing.T) {
		tests := []struct {
			x        float64
			from, to string
			want     float64
		}{
			{5, "km", "m", 5000},
			{1, "kilometre", "millimetres", 1e6},
			{2, "h", "min", 120},
			{1, "km²", "m2", 1e6},
			{1, "l", "cm3", 1000},
			{36, "km/h", "m/s", 10},
			{1, "g/cm³", "kg/m3", 1000},
			{1, "A", "mA", 1000},
			{1, "Å", "nm", 0.1},
			{1, "A", "nm", 0.1},
			{2, "kN", "N", 2000},
			{1, "kg·m/s", "g m/s", 1000},
			{3, "MJ", "kJ", 3000},
			{1, "km/ms", "m/s", 1e6},
			{1, "kg/cm³", "g/cm3", 1000},
		}

		for _, tt := range tests {
			got, err := c.Convert(ctx, tt.x, tt.from, tt.to)
			require.NoError(t, err, "%s -> %s", tt.from, tt.to)
			assert.InEpsilon(t, tt.want, got, 1e-12, "%s -> %s", tt.from, tt.to)
		}
	})

	t.Run("ConvertErrors", func(t *testing.T) {
		_, err := c.Convert(ctx, 1, "m", "s")
		var incompatible *ErrIncompatibleUnits
		require.True(t, errors.As(err, &incompatible))
		assert.Equal(t, "Length", incompatible.FromQuantity)
		assert.Equal(t, "Time", incompatible.ToQuantity)

		_, err = c.Convert(ctx, 1, "parsec", "m")
		assert.ErrorIs(t, err, ErrUnknownUnit)
		assert.ErrorIs(t, err, unit.ErrUnknown)

		_, err = c.Convert(ctx, 1, "m", "furlong")
		assert.ErrorIs(t, err, ErrUnknownUnit)
	})

	t.Run("Parse", func(t *testing.T) {
		tests := []struct {
			in   string
			want units.Quantity
		}{
			{"5 km", units.Length(5000)},
			{"5km", units.Length(5000)},
			{"250 g", units.Mass(0.25)},
			{"2 hours", units.Time(7200)},
			{"1 A", units.Current(1)},
			{"1 Å", units.Angstrom},
			{"36 km/h", units.Speed(10)},
			{"3 square metres", units.Area(3)},
			{"2 kN", units.ForceAlong(2000, vector.UnitX)},
			{"4 N·m", units.MomentAlong(4, vector.UnitX)},
		}

		for _, tt := range tests {
			got, err := c.Parse(ctx, tt.in)
			require.NoError(t, err, tt.in)
			assert.Equal(t, tt.want, got, tt.in)
		}
	})

	t.Run("ParseNegative", func(t *testing.T) {
		q, err := c.Parse(ctx, "-5 N")
		require.NoError(t, err)
		f, ok := q.(units.Force)
		require.True(t, ok)
		assert.Equal(t, vector.New(-5, 0, 0), f.Direction())
		assert.False(t, math.Signbit(f.Direction().Y))
		assert.False(t, math.Signbit(f.Direction().Z))
		assert.Equal(t, "5 N", c.Format(q, false))
	})

	t.Run("ParseErrors", func(t *testing.T) {
		_, err := c.Parse(ctx, "5")
		assert.ErrorIs(t, err, ErrInvalidValue)

		_, err = c.Parse(ctx, "five km")
		assert.ErrorIs(t, err, ErrInvalidValue)

		_, err = c.Parse(ctx, "5 parsecs")
		assert.ErrorIs(t, err, ErrUnknownUnit)
	})

	t.Run("ParseAs", func(t *testing.T) {
		v, err := c.ParseAs(ctx, "Velocity", "3 m/s")
		require.NoError(t, err)
		assert.Equal(t, units.VelocityAlong(3, vector.UnitX), v)

		w, err := c.ParseAs(ctx, "weight", "10")
		require.NoError(t, err)
		assert.Equal(t, units.ForceAlong(10, vector.UnitX), w)

		_, err = c.ParseAs(ctx, "Luminance", "1 nt")
		assert.ErrorIs(t, err, ErrUnknownQuantity)

		_, err = c.ParseAs(ctx, "Time", "1 m")
		assert.ErrorIs(t, err, ErrUnknownUnit)
	})

	t.Run("Format", func(t *testing.T) {
		assert.Equal(t, "5000 m", c.Format(units.Length(5000), false))
		assert.Equal(t, "1 kilogram", c.Format(units.Mass(1), true))
		assert.Equal(t, "5 N", c.Format(units.NewForce(vector.New(3, 4, 0)), false))

		s, err := c.FormatIn(units.Length(5000), "km", false)
		require.NoError(t, err)
		assert.Equal(t, "5 km", s)

		s, err = c.FormatIn(units.Time(90), "minutes", true)
		require.NoError(t, err)
		assert.Equal(t, "1.5 minutes", s)

		s, err = c.FormatIn(units.Time(86400), "d", true)
		require.NoError(t, err)
		assert.Equal(t, "1 day", s)

		_, err = c.FormatIn(units.Time(1), "m", false)
		assert.ErrorIs(t, err, ErrUnknownUnit)
	})

	t.Run("Units", func(t *testing.T) {
		us, err := c.Units("Time")
		require.NoError(t, err)
		assert.Len(t, us, 21+6)
		assert.Equal(t, "Ys", us[0].Symbol)
		assert.Equal(t, "jy", us[len(us)-1].Symbol)

		_, err = c.Units("Luminance")
		assert.ErrorIs(t, err, ErrUnknownQuantity)
	})
}

func TestOptions(t *testing.T) {
	ctx := context.Background()

	t.Run("WithQuantities", func(t *testing.T) {
		c, err := New(WithQuantities("Length", "Torque"))
		require.NoError(t, err)
		assert.Equal(t, []string{"Length", "Moment"}, c.Quantities())

		_, err = c.Convert(ctx, 1, "s", "ms")
		assert.ErrorIs(t, err, ErrUnknownUnit)

		// With Current excluded "A" is the ångström.
		q, err := c.Parse(ctx, "1 A")
		require.NoError(t, err)
		assert.Equal(t, units.Angstrom, q)

		_, err = New(WithQuantities("Luminance"))
		assert.ErrorIs(t, err, ErrUnknownQuantity)
	})

	t.Run("WithPrecision", func(t *testing.T) {
		c, err := New(WithPrecision(3))
		require.NoError(t, err)
		assert.Equal(t, "0.333 s", c.Format(units.Time(1.0/3), false))
	})

	t.Run("NilOptions", func(t *testing.T) {
		c, err := New(nil, WithLogger(nil), WithMetricsCollector(nil))
		require.NoError(t, err)
		got, err := c.Convert(ctx, 1, "km", "m")
		require.NoError(t, err)
		assert.Equal(t, 1000.0, got)
	})
}

func TestObservability(t *testing.T) {
	ctx := context.Background()

	var buf bytes.Buffer
	logger := NewLogger(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	metrics := &BasicMetricsCollector{}

	c, err := New(WithLogger(logger), WithMetricsCollector(metrics))
	require.NoError(t, err)

	_, err = c.Convert(ctx, 1, "km", "m")
	require.NoError(t, err)
	_, err = c.Convert(ctx, 1, "km", "s")
	require.Error(t, err)
	_, err = c.Parse(ctx, "5 kg")
	require.NoError(t, err)
	_, err = c.ParseAs(ctx, "Nope", "5")
	require.Error(t, err)

	stats := metrics.GetStats()
	assert.Equal(t, int64(2), stats.ConvertCount)
	assert.Equal(t, int64(1), stats.ConvertErrors)
	assert.Equal(t, int64(2), stats.ParseCount)
	assert.Equal(t, int64(1), stats.ParseErrors)
	assert.GreaterOrEqual(t, stats.ConvertAvgNanos, int64(0))

	out := buf.String()
	assert.Contains(t, out, `"msg":"convert completed"`)
	assert.Contains(t, out, `"quantity":"Length"`)
	assert.Contains(t, out, `"msg":"convert failed"`)
	assert.Contains(t, out, `"msg":"parse completed"`)
	assert.Contains(t, out, `"msg":"parse failed"`)

	t.Run("ParseAsAlias", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLogger(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		metrics := &quantityRecorder{}

		c, err := New(WithLogger(logger), WithMetricsCollector(metrics))
		require.NoError(t, err)

		_, err = c.ParseAs(ctx, "weight", "10")
		require.NoError(t, err)

		assert.Equal(t, []string{"Force"}, metrics.parses)
		assert.Contains(t, buf.String(), `"quantity":"Force"`)
		assert.NotContains(t, buf.String(), `"quantity":"weight"`)
	})

	t.Run("LoggerFields", func(t *testing.T) {
		var buf bytes.Buffer
		l := NewLogger(slog.NewTextHandler(&buf, nil)).WithQuantity("Mass").WithUnit("kg")
		l.Info("hello")
		assert.Contains(t, buf.String(), "quantity=Mass")
		assert.Contains(t, buf.String(), "unit=kg")
	})

	t.Run("Noop", func(t *testing.T) {
		NoopLogger().LogConvert(ctx, "Length", "m", "km", nil)
		assert.Equal(t, BasicMetricsStats{}, (&BasicMetricsCollector{}).GetStats())
	})
}

type quantityRecorder struct {
	NoopMetricsCollector
	parses []string
}

func (r *quantityRecorder) RecordParse(quantity string, _ time.Duration, _ error) {
	r.parses = append(r.parses, quantity)
}
